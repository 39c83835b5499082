package promos

import (
	"context"
	"time"
)

// PromoValidationService checks whether a client may redeem a code
type PromoValidationService interface {
	// Validate runs the redemption rules for input and returns the discount to apply.
	// Business rejections are reported through Validation.ErrorCode, not as errors.
	// Calls are rate limited per user.
	Validate(ctx context.Context, input ValidateInput) (*Validation, error)

	// Check applies the same rules as Validate without spending the caller's
	// rate limit. Pricing of payment intents and bookings uses it.
	Check(ctx context.Context, input ValidateInput) (*Validation, error)

	// RecordUsage stores a redemption and increments the code's use counter.
	RecordUsage(ctx context.Context, usage *PromoCodeUsage) error
}

// PromoAdminService manages promo codes on behalf of staff
type PromoAdminService interface {
	Create(ctx context.Context, promo *PromoCode) (*PromoCode, error)
	Update(ctx context.Context, promo *PromoCode) (*PromoCode, error)
	GetByID(ctx context.Context, id string) (*PromoCode, error)
	List(ctx context.Context, query *PromoQuery) (*PromoPage, error)
	SetActive(ctx context.Context, id string, active bool) (*PromoCode, error)
	// Delete removes an unused promo code; used codes return ErrInUse.
	Delete(ctx context.Context, id string) error
	ListUsage(ctx context.Context, id string) ([]*PromoCodeUsage, error)
	Analytics(ctx context.Context) (*Analytics, error)
}

// PromoRepository defines persistence for promo codes and their usage
type PromoRepository interface {
	Create(ctx context.Context, promo *PromoCode) error
	GetByID(ctx context.Context, id string) (*PromoCode, error)
	GetByCode(ctx context.Context, code string) (*PromoCode, error)
	List(ctx context.Context, query *PromoQuery) ([]*PromoCode, int64, error)
	Update(ctx context.Context, promo *PromoCode) error
	DeleteByID(ctx context.Context, id string) error
	// RecordUsage inserts usage and increments uses_count in one transaction.
	RecordUsage(ctx context.Context, usage *PromoCodeUsage) error
	CountUserUsage(ctx context.Context, promoID, userID string) (int64, error)
	ListUsage(ctx context.Context, promoID string) ([]*PromoCodeUsage, error)
	CountActive(ctx context.Context, now time.Time) (int64, error)
	UsageTotals(ctx context.Context) (*UsageTotals, error)
}
