package bookings

import (
	"time"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/pagination"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/validators"
)

// AddressSnapshot copies the client address at booking time
type AddressSnapshot struct {
	Street     string `validate:"required,max=255"`
	City       string `validate:"required,max=100"`
	PostalCode string `validate:"required,max=20"`
	Country    string `validate:"required,max=100"`
}

// Booking entity
type Booking struct {
	ID                    string        `validate:"required,uuid4"`
	ClientID              string        `validate:"required,uuid4"`
	ContractorID          *string       `validate:"omitempty,uuid4"`
	ServiceID             string        `validate:"required,uuid4"`
	AddressID             string        `validate:"required,uuid4"`
	ScheduledAt           time.Time     `validate:"required"`
	BookingTimezone       string        `validate:"required,timezone"`
	DurationMinutes       int           `validate:"required,min=5"`
	Status                Status        `validate:"required,oneof=pending confirmed in_progress completed cancelled"`
	PaymentStatus         PaymentStatus `validate:"required,oneof=pending authorized captured refunded cancelled"`
	PaymentIntentID       *string
	StripeCustomerID      *string
	ServiceAmountOriginal int64   `validate:"min=0"`
	PromoCodeID           *string `validate:"omitempty,uuid4"`
	PromoDiscountAmount   int64   `validate:"min=0"`
	GiftCardID            *string `validate:"omitempty,uuid4"`
	GiftCardAmount        int64   `validate:"min=0"`
	FinalAmount           int64   `validate:"min=0"`
	Address               AddressSnapshot
	CancellationReason    *string
	CancelledAt           *time.Time
	CompletedAt           *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// Validate for validating Booking struct
func (b *Booking) Validate() error {
	return validators.ValidateStruct(b)
}

// EndsAt returns the end of the booked slot
func (b *Booking) EndsAt() time.Time {
	return b.ScheduledAt.Add(time.Duration(b.DurationMinutes) * time.Minute)
}

// HasPaymentIntent reports whether a real gateway intent backs the booking
func (b *Booking) HasPaymentIntent() bool {
	return b.PaymentIntentID != nil && *b.PaymentIntentID != ""
}

// AssignedTo reports whether contractorID is the booking's contractor
func (b *Booking) AssignedTo(contractorID string) bool {
	return contractorID != "" && b.ContractorID != nil && *b.ContractorID == contractorID
}

// CreateInput is a client's request to book a service
type CreateInput struct {
	ClientID        string    `validate:"required,uuid4"`
	ClientEmail     string    `validate:"required,email"`
	ServiceID       string    `validate:"required,uuid4"`
	AddressID       string    `validate:"required,uuid4"`
	ContractorID    *string   `validate:"omitempty,uuid4"`
	ScheduledAt     time.Time `validate:"required"`
	BookingTimezone string    `validate:"required,timezone"`
	PaymentIntentID string    `validate:"omitempty"`
	PromoCode       *string   `validate:"omitempty,max=50"`
	GiftCardCode    *string   `validate:"omitempty,max=50"`
}

// Validate for validating CreateInput struct
func (i *CreateInput) Validate() error {
	return validators.ValidateStruct(i)
}

// Query filters the booking list
type Query struct {
	ClientID     *string `validate:"omitempty,uuid4"`
	ContractorID *string `validate:"omitempty,uuid4"`
	Status       Status  `validate:"omitempty,oneof=pending confirmed in_progress completed cancelled"`
	From         *time.Time
	To           *time.Time
	Page         int `validate:"min=1"`
	Limit        int `validate:"min=1,max=100"`
}

// NewQuery returns the first page of 20 bookings
func NewQuery() *Query {
	return &Query{Page: 1, Limit: 20}
}

// Validate for validating Query struct
func (q *Query) Validate() error {
	return validators.ValidateStruct(q)
}

// BookingPage is one page of bookings
type BookingPage struct {
	Items []*Booking
	Page  pagination.Page
}

// PaymentAction describes what happened to the payment of a cancelled booking
type PaymentAction struct {
	Type   string
	ID     string
	Amount int64
}

// CancelResult is a cancelled booking and the payment action taken
type CancelResult struct {
	Booking       *Booking
	PaymentAction *PaymentAction
}

// BookingRequest asks a contractor to confirm a booking before ExpiresAt
type BookingRequest struct {
	ID                string        `validate:"required,uuid4"`
	BookingID         string        `validate:"required,uuid4"`
	ContractorID      string        `validate:"required,uuid4"`
	Status            RequestStatus `validate:"required,oneof=pending accepted refused expired"`
	RefusalReason     *string       `validate:"omitempty,max=500"`
	ContractorMessage *string       `validate:"omitempty,max=1000"`
	ExpiresAt         time.Time     `validate:"required"`
	RespondedAt       *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Validate for validating BookingRequest struct
func (r *BookingRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// Expired reports whether the request deadline has passed at now
func (r *BookingRequest) Expired(now time.Time) bool {
	return now.After(r.ExpiresAt)
}

// RequestExpiry returns when a request for a booking at scheduledAt lapses.
// It is leadTime before the appointment, but never earlier than createdAt.
func RequestExpiry(scheduledAt, createdAt time.Time, leadTime time.Duration) time.Time {
	expires := scheduledAt.Add(-leadTime)
	if expires.Before(createdAt) {
		return createdAt
	}
	return expires
}

// RequestWithBooking pairs a request with its booking for contractor listings
type RequestWithBooking struct {
	Request *BookingRequest
	Booking *Booking
}
