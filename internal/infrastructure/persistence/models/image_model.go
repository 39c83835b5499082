package models

import (
	"time"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/images"
)

// ServiceImageModel is the GORM database model for image metadata
type ServiceImageModel struct {
	ID           string  `gorm:"primaryKey;type:uuid"`
	EntityType   string  `gorm:"not null;index:idx_image_entity;type:varchar(32)"`
	EntityID     string  `gorm:"not null;index:idx_image_entity;type:varchar(64)"`
	StoragePath  string  `gorm:"not null;uniqueIndex;type:varchar(512)"`
	URL          string  `gorm:"not null;type:varchar(1024)"`
	AltText      *string `gorm:"type:varchar(125)"`
	DisplayOrder int     `gorm:"not null;default:0"`
	IsPrimary    bool    `gorm:"not null;default:false"`
	FileSize     int64   `gorm:"not null"`
	MimeType     string  `gorm:"not null;type:varchar(50)"`
	UploadedBy   string  `gorm:"not null;type:uuid"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time `gorm:"index"`
}

// TableName specifies the table name for GORM
func (ServiceImageModel) TableName() string {
	return "service_images"
}

// ToDomain converts GORM model to domain entity
func (m *ServiceImageModel) ToDomain() *images.ServiceImage {
	return &images.ServiceImage{
		ID:           m.ID,
		EntityType:   m.EntityType,
		EntityID:     m.EntityID,
		StoragePath:  m.StoragePath,
		URL:          m.URL,
		AltText:      m.AltText,
		DisplayOrder: m.DisplayOrder,
		IsPrimary:    m.IsPrimary,
		FileSize:     m.FileSize,
		MimeType:     m.MimeType,
		UploadedBy:   m.UploadedBy,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		DeletedAt:    m.DeletedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ServiceImageModel) FromDomain(i *images.ServiceImage) {
	m.ID = i.ID
	m.EntityType = i.EntityType
	m.EntityID = i.EntityID
	m.StoragePath = i.StoragePath
	m.URL = i.URL
	m.AltText = i.AltText
	m.DisplayOrder = i.DisplayOrder
	m.IsPrimary = i.IsPrimary
	m.FileSize = i.FileSize
	m.MimeType = i.MimeType
	m.UploadedBy = i.UploadedBy
	m.CreatedAt = i.CreatedAt
	m.UpdatedAt = i.UpdatedAt
	m.DeletedAt = i.DeletedAt
}
