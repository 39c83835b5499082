package models

import (
	"time"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/promos"
)

// PromoCodeModel is the GORM database model for promo codes
type PromoCodeModel struct {
	ID                 string  `gorm:"primaryKey;type:uuid"`
	Code               string  `gorm:"not null;uniqueIndex;type:varchar(50)"`
	Description        *string `gorm:"type:varchar(500)"`
	DiscountType       string  `gorm:"not null;type:varchar(20)"`
	DiscountValue      int64   `gorm:"not null"`
	MaxDiscountAmount  *int64
	MaxUses            *int
	UsesCount          int       `gorm:"not null;default:0"`
	MaxUsesPerUser     int       `gorm:"not null;default:1"`
	ValidFrom          time.Time `gorm:"not null"`
	ValidUntil         *time.Time
	MinOrderAmount     *int64
	FirstBookingOnly   bool     `gorm:"not null;default:false"`
	SpecificServices   []string `gorm:"serializer:json"`
	SpecificCategories []string `gorm:"serializer:json"`
	IsActive           bool     `gorm:"not null;index"`
	CreatedBy          *string  `gorm:"type:uuid"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName specifies the table name for GORM
func (PromoCodeModel) TableName() string {
	return "promo_codes"
}

// ToDomain converts GORM model to domain entity
func (m *PromoCodeModel) ToDomain() *promos.PromoCode {
	return &promos.PromoCode{
		ID:                 m.ID,
		Code:               m.Code,
		Description:        m.Description,
		DiscountType:       promos.DiscountType(m.DiscountType),
		DiscountValue:      m.DiscountValue,
		MaxDiscountAmount:  m.MaxDiscountAmount,
		MaxUses:            m.MaxUses,
		UsesCount:          m.UsesCount,
		MaxUsesPerUser:     m.MaxUsesPerUser,
		ValidFrom:          m.ValidFrom,
		ValidUntil:         m.ValidUntil,
		MinOrderAmount:     m.MinOrderAmount,
		FirstBookingOnly:   m.FirstBookingOnly,
		SpecificServices:   m.SpecificServices,
		SpecificCategories: m.SpecificCategories,
		IsActive:           m.IsActive,
		CreatedBy:          m.CreatedBy,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *PromoCodeModel) FromDomain(p *promos.PromoCode) {
	m.ID = p.ID
	m.Code = p.Code
	m.Description = p.Description
	m.DiscountType = string(p.DiscountType)
	m.DiscountValue = p.DiscountValue
	m.MaxDiscountAmount = p.MaxDiscountAmount
	m.MaxUses = p.MaxUses
	m.UsesCount = p.UsesCount
	m.MaxUsesPerUser = p.MaxUsesPerUser
	m.ValidFrom = p.ValidFrom
	m.ValidUntil = p.ValidUntil
	m.MinOrderAmount = p.MinOrderAmount
	m.FirstBookingOnly = p.FirstBookingOnly
	m.SpecificServices = p.SpecificServices
	m.SpecificCategories = p.SpecificCategories
	m.IsActive = p.IsActive
	m.CreatedBy = p.CreatedBy
	m.CreatedAt = p.CreatedAt
	m.UpdatedAt = p.UpdatedAt
}

// PromoCodeUsageModel is the GORM database model for promo redemptions
type PromoCodeUsageModel struct {
	ID             string    `gorm:"primaryKey;type:uuid"`
	PromoCodeID    string    `gorm:"not null;index;type:uuid"`
	BookingID      string    `gorm:"not null;index;type:uuid"`
	UserID         string    `gorm:"not null;index;type:uuid"`
	OriginalAmount int64     `gorm:"not null"`
	DiscountAmount int64     `gorm:"not null"`
	FinalAmount    int64     `gorm:"not null"`
	UsedAt         time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (PromoCodeUsageModel) TableName() string {
	return "promo_code_usage"
}

// ToDomain converts GORM model to domain entity
func (m *PromoCodeUsageModel) ToDomain() *promos.PromoCodeUsage {
	return &promos.PromoCodeUsage{
		ID:             m.ID,
		PromoCodeID:    m.PromoCodeID,
		BookingID:      m.BookingID,
		UserID:         m.UserID,
		OriginalAmount: m.OriginalAmount,
		DiscountAmount: m.DiscountAmount,
		FinalAmount:    m.FinalAmount,
		UsedAt:         m.UsedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *PromoCodeUsageModel) FromDomain(u *promos.PromoCodeUsage) {
	m.ID = u.ID
	m.PromoCodeID = u.PromoCodeID
	m.BookingID = u.BookingID
	m.UserID = u.UserID
	m.OriginalAmount = u.OriginalAmount
	m.DiscountAmount = u.DiscountAmount
	m.FinalAmount = u.FinalAmount
	m.UsedAt = u.UsedAt
}
