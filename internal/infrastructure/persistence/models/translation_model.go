package models

import (
	"time"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/translations"
)

// TranslationModel is the GORM database model for translations
type TranslationModel struct {
	ID           string `gorm:"primaryKey;type:uuid"`
	EntityType   string `gorm:"not null;uniqueIndex:idx_translation_key;type:varchar(32)"`
	EntityID     string `gorm:"not null;uniqueIndex:idx_translation_key;type:varchar(64)"`
	FieldName    string `gorm:"not null;uniqueIndex:idx_translation_key;type:varchar(64)"`
	LanguageCode string `gorm:"not null;uniqueIndex:idx_translation_key;type:varchar(5)"`
	Value        string `gorm:"not null;type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the table name for GORM
func (TranslationModel) TableName() string {
	return "translations"
}

// ToDomain converts GORM model to domain entity
func (m *TranslationModel) ToDomain() *translations.Translation {
	return &translations.Translation{
		ID:           m.ID,
		EntityType:   m.EntityType,
		EntityID:     m.EntityID,
		FieldName:    m.FieldName,
		LanguageCode: m.LanguageCode,
		Value:        m.Value,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *TranslationModel) FromDomain(t *translations.Translation) {
	m.ID = t.ID
	m.EntityType = t.EntityType
	m.EntityID = t.EntityID
	m.FieldName = t.FieldName
	m.LanguageCode = t.LanguageCode
	m.Value = t.Value
	m.CreatedAt = t.CreatedAt
	m.UpdatedAt = t.UpdatedAt
}
