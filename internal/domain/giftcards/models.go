package giftcards

import (
	"errors"
	"strings"
	"time"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/validators"
)

// Validation error codes returned to clients
const (
	ErrCodeInvalidCode = "invalid_code"
	ErrCodeInactive    = "card_inactive"
	ErrCodeExpired     = "card_expired"
	ErrCodeEmpty       = "card_empty"
	ErrCodeRestricted  = "card_restricted"
)

var (
	// ErrNotFound is returned when no gift card matches
	ErrNotFound = errors.New("gift card not found")
	// ErrInsufficientBalance is returned when a debit exceeds the balance
	ErrInsufficientBalance = errors.New("gift card balance is insufficient")
)

// GiftCard entity
type GiftCard struct {
	ID             string  `validate:"required,uuid4"`
	Code           string  `validate:"required,min=4,max=50"`
	InitialAmount  int64   `validate:"required,min=1"`
	CurrentBalance int64   `validate:"min=0,ltefield=InitialAmount"`
	RecipientEmail *string `validate:"omitempty,email"`
	ExpiresAt      *time.Time
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Validate for validating GiftCard struct
func (g *GiftCard) Validate() error {
	return validators.ValidateStruct(g)
}

// Transaction is a debit of a gift card for a booking
type Transaction struct {
	ID         string  `validate:"required,uuid4"`
	GiftCardID string  `validate:"required,uuid4"`
	BookingID  *string `validate:"omitempty,uuid4"`
	UserID     string  `validate:"required,uuid4"`
	Amount     int64   `validate:"required,min=1"`
	CreatedAt  time.Time
}

// Validate for validating Transaction struct
func (t *Transaction) Validate() error {
	return validators.ValidateStruct(t)
}

// Validation is the outcome of checking a gift card against an amount
type Validation struct {
	Valid            bool
	ErrorCode        string
	GiftCardID       string
	Code             string
	AvailableAmount  int64
	AmountToApply    int64
	RemainingBalance int64
}

// Check applies the gift card rules for a client with userEmail who wants to
// cover requested cents. The card must be active, unexpired, not empty and,
// when it names a recipient, belong to that recipient.
func Check(card *GiftCard, userEmail string, requested int64, now time.Time) *Validation {
	switch {
	case !card.IsActive:
		return &Validation{ErrorCode: ErrCodeInactive}
	case card.ExpiresAt != nil && now.After(*card.ExpiresAt):
		return &Validation{ErrorCode: ErrCodeExpired}
	case card.CurrentBalance <= 0:
		return &Validation{ErrorCode: ErrCodeEmpty}
	case card.RecipientEmail != nil && !strings.EqualFold(strings.TrimSpace(*card.RecipientEmail), strings.TrimSpace(userEmail)):
		return &Validation{ErrorCode: ErrCodeRestricted}
	}

	apply := requested
	if apply > card.CurrentBalance {
		apply = card.CurrentBalance
	}
	if apply < 0 {
		apply = 0
	}

	return &Validation{
		Valid:            true,
		GiftCardID:       card.ID,
		Code:             card.Code,
		AvailableAmount:  card.CurrentBalance,
		AmountToApply:    apply,
		RemainingBalance: card.CurrentBalance - apply,
	}
}

// NormalizeCode upper-cases and trims a user supplied code
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
