package models

import (
	"time"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/bookings"
)

// BookingModel is the GORM database model for bookings
type BookingModel struct {
	ID                    string    `gorm:"primaryKey;type:uuid"`
	ClientID              string    `gorm:"not null;index;type:uuid"`
	ContractorID          *string   `gorm:"index;type:uuid"`
	ServiceID             string    `gorm:"not null;index;type:uuid"`
	AddressID             string    `gorm:"not null;type:uuid"`
	ScheduledAt           time.Time `gorm:"not null;index"`
	EndsAt                time.Time `gorm:"not null;index"`
	BookingTimezone       string    `gorm:"not null;type:varchar(64)"`
	DurationMinutes       int       `gorm:"not null"`
	Status                string    `gorm:"not null;index;type:varchar(20)"`
	PaymentStatus         string    `gorm:"not null;type:varchar(20)"`
	StripePaymentIntentID *string   `gorm:"index;type:varchar(255)"`
	StripeCustomerID      *string   `gorm:"type:varchar(255)"`
	ServiceAmountOriginal int64     `gorm:"not null"`
	PromoCodeID           *string   `gorm:"type:uuid"`
	PromoDiscountAmount   int64     `gorm:"not null;default:0"`
	GiftCardID            *string   `gorm:"type:uuid"`
	GiftCardAmount        int64     `gorm:"not null;default:0"`
	FinalAmount           int64     `gorm:"not null"`
	AddressStreet         string    `gorm:"type:varchar(255)"`
	AddressCity           string    `gorm:"type:varchar(100)"`
	AddressPostalCode     string    `gorm:"type:varchar(20)"`
	AddressCountry        string    `gorm:"type:varchar(100)"`
	CancellationReason    *string   `gorm:"type:text"`
	CancelledAt           *time.Time
	CompletedAt           *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// TableName specifies the table name for GORM
func (BookingModel) TableName() string {
	return "appointment_bookings"
}

// ToDomain converts GORM model to domain entity
func (m *BookingModel) ToDomain() *bookings.Booking {
	return &bookings.Booking{
		ID:                    m.ID,
		ClientID:              m.ClientID,
		ContractorID:          m.ContractorID,
		ServiceID:             m.ServiceID,
		AddressID:             m.AddressID,
		ScheduledAt:           m.ScheduledAt,
		BookingTimezone:       m.BookingTimezone,
		DurationMinutes:       m.DurationMinutes,
		Status:                bookings.Status(m.Status),
		PaymentStatus:         bookings.PaymentStatus(m.PaymentStatus),
		PaymentIntentID:       m.StripePaymentIntentID,
		StripeCustomerID:      m.StripeCustomerID,
		ServiceAmountOriginal: m.ServiceAmountOriginal,
		PromoCodeID:           m.PromoCodeID,
		PromoDiscountAmount:   m.PromoDiscountAmount,
		GiftCardID:            m.GiftCardID,
		GiftCardAmount:        m.GiftCardAmount,
		FinalAmount:           m.FinalAmount,
		Address: bookings.AddressSnapshot{
			Street:     m.AddressStreet,
			City:       m.AddressCity,
			PostalCode: m.AddressPostalCode,
			Country:    m.AddressCountry,
		},
		CancellationReason: m.CancellationReason,
		CancelledAt:        m.CancelledAt,
		CompletedAt:        m.CompletedAt,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *BookingModel) FromDomain(b *bookings.Booking) {
	m.ID = b.ID
	m.ClientID = b.ClientID
	m.ContractorID = b.ContractorID
	m.ServiceID = b.ServiceID
	m.AddressID = b.AddressID
	m.ScheduledAt = b.ScheduledAt
	m.EndsAt = b.EndsAt()
	m.BookingTimezone = b.BookingTimezone
	m.DurationMinutes = b.DurationMinutes
	m.Status = string(b.Status)
	m.PaymentStatus = string(b.PaymentStatus)
	m.StripePaymentIntentID = b.PaymentIntentID
	m.StripeCustomerID = b.StripeCustomerID
	m.ServiceAmountOriginal = b.ServiceAmountOriginal
	m.PromoCodeID = b.PromoCodeID
	m.PromoDiscountAmount = b.PromoDiscountAmount
	m.GiftCardID = b.GiftCardID
	m.GiftCardAmount = b.GiftCardAmount
	m.FinalAmount = b.FinalAmount
	m.AddressStreet = b.Address.Street
	m.AddressCity = b.Address.City
	m.AddressPostalCode = b.Address.PostalCode
	m.AddressCountry = b.Address.Country
	m.CancellationReason = b.CancellationReason
	m.CancelledAt = b.CancelledAt
	m.CompletedAt = b.CompletedAt
	m.CreatedAt = b.CreatedAt
	m.UpdatedAt = b.UpdatedAt
}

// BookingRequestModel is the GORM database model for contractor booking requests
type BookingRequestModel struct {
	ID                string    `gorm:"primaryKey;type:uuid"`
	BookingID         string    `gorm:"not null;index;type:uuid"`
	ContractorID      string    `gorm:"not null;index;type:uuid"`
	Status            string    `gorm:"not null;index;type:varchar(20)"`
	RefusalReason     *string   `gorm:"type:varchar(500)"`
	ContractorMessage *string   `gorm:"type:text"`
	ExpiresAt         time.Time `gorm:"not null;index"`
	RespondedAt       *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName specifies the table name for GORM
func (BookingRequestModel) TableName() string {
	return "booking_requests"
}

// ToDomain converts GORM model to domain entity
func (m *BookingRequestModel) ToDomain() *bookings.BookingRequest {
	return &bookings.BookingRequest{
		ID:                m.ID,
		BookingID:         m.BookingID,
		ContractorID:      m.ContractorID,
		Status:            bookings.RequestStatus(m.Status),
		RefusalReason:     m.RefusalReason,
		ContractorMessage: m.ContractorMessage,
		ExpiresAt:         m.ExpiresAt,
		RespondedAt:       m.RespondedAt,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *BookingRequestModel) FromDomain(r *bookings.BookingRequest) {
	m.ID = r.ID
	m.BookingID = r.BookingID
	m.ContractorID = r.ContractorID
	m.Status = string(r.Status)
	m.RefusalReason = r.RefusalReason
	m.ContractorMessage = r.ContractorMessage
	m.ExpiresAt = r.ExpiresAt
	m.RespondedAt = r.RespondedAt
	m.CreatedAt = r.CreatedAt
	m.UpdatedAt = r.UpdatedAt
}
