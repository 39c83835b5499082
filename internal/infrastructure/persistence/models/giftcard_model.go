package models

import (
	"time"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/giftcards"
)

// GiftCardModel is the GORM database model for gift cards
type GiftCardModel struct {
	ID             string  `gorm:"primaryKey;type:uuid"`
	Code           string  `gorm:"not null;uniqueIndex;type:varchar(50)"`
	InitialAmount  int64   `gorm:"not null"`
	CurrentBalance int64   `gorm:"not null"`
	RecipientEmail *string `gorm:"type:varchar(255)"`
	ExpiresAt      *time.Time
	IsActive       bool `gorm:"not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName specifies the table name for GORM
func (GiftCardModel) TableName() string {
	return "gift_cards"
}

// ToDomain converts GORM model to domain entity
func (m *GiftCardModel) ToDomain() *giftcards.GiftCard {
	return &giftcards.GiftCard{
		ID:             m.ID,
		Code:           m.Code,
		InitialAmount:  m.InitialAmount,
		CurrentBalance: m.CurrentBalance,
		RecipientEmail: m.RecipientEmail,
		ExpiresAt:      m.ExpiresAt,
		IsActive:       m.IsActive,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *GiftCardModel) FromDomain(g *giftcards.GiftCard) {
	m.ID = g.ID
	m.Code = g.Code
	m.InitialAmount = g.InitialAmount
	m.CurrentBalance = g.CurrentBalance
	m.RecipientEmail = g.RecipientEmail
	m.ExpiresAt = g.ExpiresAt
	m.IsActive = g.IsActive
	m.CreatedAt = g.CreatedAt
	m.UpdatedAt = g.UpdatedAt
}

// GiftCardTransactionModel is the GORM database model for gift card debits
type GiftCardTransactionModel struct {
	ID         string  `gorm:"primaryKey;type:uuid"`
	GiftCardID string  `gorm:"not null;index;type:uuid"`
	BookingID  *string `gorm:"index;type:uuid"`
	UserID     string  `gorm:"not null;type:uuid"`
	Amount     int64   `gorm:"not null"`
	CreatedAt  time.Time
}

// TableName specifies the table name for GORM
func (GiftCardTransactionModel) TableName() string {
	return "gift_card_transactions"
}

// ToDomain converts GORM model to domain entity
func (m *GiftCardTransactionModel) ToDomain() *giftcards.Transaction {
	return &giftcards.Transaction{
		ID:         m.ID,
		GiftCardID: m.GiftCardID,
		BookingID:  m.BookingID,
		UserID:     m.UserID,
		Amount:     m.Amount,
		CreatedAt:  m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *GiftCardTransactionModel) FromDomain(t *giftcards.Transaction) {
	m.ID = t.ID
	m.GiftCardID = t.GiftCardID
	m.BookingID = t.BookingID
	m.UserID = t.UserID
	m.Amount = t.Amount
	m.CreatedAt = t.CreatedAt
}
