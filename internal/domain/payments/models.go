package payments

import (
	"errors"
	"strconv"
	"time"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/validators"
)

// NoPaymentRequired marks bookings fully covered by discounts
const NoPaymentRequired = "no-payment-required"

// Intent statuses the booking flow relies on
const (
	IntentRequiresCapture = "requires_capture"
	IntentSucceeded       = "succeeded"
	IntentCanceled        = "canceled"
)

// Refund reasons accepted by the gateway
const (
	RefundRequestedByCustomer = "requested_by_customer"
	RefundDuplicate           = "duplicate"
	RefundFraudulent          = "fraudulent"
)

var (
	// ErrGateway wraps failures reported by the payment provider
	ErrGateway = errors.New("payment gateway error")
	// ErrInvalidPromo is returned when a submitted promo code does not apply
	ErrInvalidPromo = errors.New("invalid promo code")
	// ErrInvalidGiftCard is returned when a submitted gift card cannot be used
	ErrInvalidGiftCard = errors.New("invalid gift card")
	// ErrIntentMismatch is returned when an intent was not authorised for the booking being created
	ErrIntentMismatch = errors.New("payment intent does not match the booking")
)

// Intent is a card authorisation held by the gateway
type Intent struct {
	ID           string
	ClientSecret string
	Amount       int64
	Status       string
	Metadata     map[string]string
}

// AuthorisedFor reports whether the intent is an uncaptured authorisation of
// amount made for userID
func (i *Intent) AuthorisedFor(userID string, amount int64) bool {
	return i.Status == IntentRequiresCapture && i.Metadata["user_id"] == userID && i.Amount == amount
}

// Refund is a refund issued against a captured intent
type Refund struct {
	ID     string
	Amount int64
}

// Customer is the gateway-side customer of a user
type Customer struct {
	ID    string
	Email string
}

// CreateIntentParams describes a manual-capture authorisation
type CreateIntentParams struct {
	Amount      int64 `validate:"required,min=1"`
	CustomerID  string
	Description string
	Metadata    map[string]string
}

// Validate for validating CreateIntentParams struct
func (p *CreateIntentParams) Validate() error {
	return validators.ValidateStruct(p)
}

// IntentRequest is a client's request to authorise payment for a service
type IntentRequest struct {
	UserID       string    `validate:"required,uuid4"`
	Email        string    `validate:"required,email"`
	ServiceID    string    `validate:"required,uuid4"`
	ScheduledAt  time.Time `validate:"required"`
	PromoCode    *string   `validate:"omitempty,max=50"`
	GiftCardCode *string   `validate:"omitempty,max=50"`
}

// Validate for validating IntentRequest struct
func (r *IntentRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// Amounts is the price breakdown of a booking
type Amounts struct {
	Original       int64
	PromoDiscount  int64
	PromoID        string
	GiftCardAmount int64
	GiftCardID     string
	GiftCardCode   string
	Final          int64
}

// Metadata renders the breakdown as gateway metadata
func (a Amounts) Metadata(userID, serviceID string, scheduledAt time.Time) map[string]string {
	return map[string]string{
		"user_id":            userID,
		"service_id":         serviceID,
		"original_amount":    strconv.FormatInt(a.Original, 10),
		"promo_discount":     strconv.FormatInt(a.PromoDiscount, 10),
		"promo_id":           a.PromoID,
		"gift_card_amount":   strconv.FormatInt(a.GiftCardAmount, 10),
		"gift_card_id":       a.GiftCardID,
		"gift_card_code":     a.GiftCardCode,
		"scheduled_datetime": scheduledAt.UTC().Format(time.RFC3339),
	}
}

// IntentResult is returned to the client before confirming a booking.
// PaymentRequired is false when discounts cover the whole price.
type IntentResult struct {
	PaymentRequired bool
	ClientSecret    string
	PaymentIntentID string
	Amounts         Amounts
}

// ApplyDiscounts returns the final amount once promo and gift card are subtracted, never negative
func ApplyDiscounts(original, promoDiscount, giftCardAmount int64) int64 {
	final := original - promoDiscount - giftCardAmount
	if final < 0 {
		return 0
	}
	return final
}
