package models

import (
	"time"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/markets"
)

// MarketModel is the GORM database model for markets
type MarketModel struct {
	ID                 string   `gorm:"primaryKey;type:uuid"`
	Name               string   `gorm:"not null;type:varchar(100)"`
	Code               string   `gorm:"not null;uniqueIndex;type:varchar(3)"`
	CurrencyCode       string   `gorm:"not null;type:varchar(3)"`
	Timezone           string   `gorm:"not null;type:varchar(64)"`
	SupportedLanguages []string `gorm:"serializer:json;not null"`
	IsActive           bool     `gorm:"not null;index"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName specifies the table name for GORM
func (MarketModel) TableName() string {
	return "markets"
}

// ToDomain converts GORM model to domain entity
func (m *MarketModel) ToDomain() *markets.Market {
	return &markets.Market{
		ID:                 m.ID,
		Name:               m.Name,
		Code:               m.Code,
		CurrencyCode:       m.CurrencyCode,
		Timezone:           m.Timezone,
		SupportedLanguages: m.SupportedLanguages,
		IsActive:           m.IsActive,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *MarketModel) FromDomain(mk *markets.Market) {
	m.ID = mk.ID
	m.Name = mk.Name
	m.Code = mk.Code
	m.CurrencyCode = mk.CurrencyCode
	m.Timezone = mk.Timezone
	m.SupportedLanguages = mk.SupportedLanguages
	m.IsActive = mk.IsActive
	m.CreatedAt = mk.CreatedAt
	m.UpdatedAt = mk.UpdatedAt
}
