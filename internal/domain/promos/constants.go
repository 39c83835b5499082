package promos

// DiscountType selects how DiscountValue is interpreted
type DiscountType string

// Discount types
const (
	DiscountPercentage  DiscountType = "percentage"
	DiscountFixedAmount DiscountType = "fixed_amount"
)

// Status is the lifecycle state of a promo code derived from its fields and the clock
type Status string

// Promo code statuses
const (
	StatusActive    Status = "active"
	StatusInactive  Status = "inactive"
	StatusExpired   Status = "expired"
	StatusScheduled Status = "scheduled"
	StatusExhausted Status = "exhausted"
)

// Validation error codes returned to clients
const (
	ErrCodeInvalidCode         = "invalid_code"
	ErrCodeInactive            = "code_inactive"
	ErrCodeExpired             = "code_expired"
	ErrCodeNotYetValid         = "code_not_yet_valid"
	ErrCodeExhausted           = "code_exhausted"
	ErrCodeUserLimitReached    = "user_limit_reached"
	ErrCodeMinAmountNotMet     = "min_amount_not_met"
	ErrCodeServiceNotEligible  = "service_not_eligible"
	ErrCodeCategoryNotEligible = "category_not_eligible"
	ErrCodeFirstBookingOnly    = "first_booking_only"
	ErrCodeRateLimitExceeded   = "rate_limit_exceeded"
)

// DefaultMaxUsesPerUser applies when a promo code does not set a per-user limit
const DefaultMaxUsesPerUser = 1

// Sortable columns of the promo code list
var sortableColumns = map[string]bool{
	"created_at":  true,
	"updated_at":  true,
	"uses_count":  true,
	"code":        true,
	"valid_until": true,
}
