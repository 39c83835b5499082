package promos

import (
	"fmt"
	"strings"
	"time"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/pagination"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/validators"
)

// PromoCode entity
type PromoCode struct {
	ID                 string       `validate:"required,uuid4"`
	Code               string       `validate:"required,promocode"`
	Description        *string      `validate:"omitempty,max=500"`
	DiscountType       DiscountType `validate:"required,oneof=percentage fixed_amount"`
	DiscountValue      int64        `validate:"required,min=1"`
	MaxDiscountAmount  *int64       `validate:"omitempty,min=1"`
	MaxUses            *int         `validate:"omitempty,min=0"`
	UsesCount          int          `validate:"min=0"`
	MaxUsesPerUser     int          `validate:"required,min=1"`
	ValidFrom          time.Time    `validate:"required"`
	ValidUntil         *time.Time   `validate:"omitempty,gtfield=ValidFrom"`
	MinOrderAmount     *int64       `validate:"omitempty,min=0"`
	FirstBookingOnly   bool
	SpecificServices   []string `validate:"omitempty,dive,uuid4"`
	SpecificCategories []string `validate:"omitempty,dive,uuid4"`
	IsActive           bool
	CreatedBy          *string `validate:"omitempty,uuid4"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Validate for validating PromoCode struct
func (p *PromoCode) Validate() error {
	if err := validators.ValidateStruct(p); err != nil {
		return err
	}
	if p.DiscountType == DiscountPercentage && p.DiscountValue > 100 {
		return fmt.Errorf("%w: percentage discount must be between 1 and 100", validators.ErrValidation)
	}
	return nil
}

// NormalizeCode upper-cases and trims a user supplied code
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// PromoCodeUsage records one redemption of a promo code on a booking
type PromoCodeUsage struct {
	ID             string    `validate:"required,uuid4"`
	PromoCodeID    string    `validate:"required,uuid4"`
	BookingID      string    `validate:"required,uuid4"`
	UserID         string    `validate:"required,uuid4"`
	OriginalAmount int64     `validate:"min=0"`
	DiscountAmount int64     `validate:"min=0"`
	FinalAmount    int64     `validate:"min=0"`
	UsedAt         time.Time `validate:"required"`
}

// Validate for validating PromoCodeUsage struct
func (u *PromoCodeUsage) Validate() error {
	return validators.ValidateStruct(u)
}

// ValidateInput is a redemption attempt for a given service and amount
type ValidateInput struct {
	Code      string `validate:"required,min=1,max=50"`
	UserID    string `validate:"required,uuid4"`
	ServiceID string `validate:"required,uuid4"`
	Amount    int64  `validate:"required,min=1"`
}

// Validate for validating ValidateInput struct
func (v *ValidateInput) Validate() error {
	return validators.ValidateStruct(v)
}

// Validation is the outcome of a redemption attempt. When Valid is false,
// ErrorCode holds one of the ErrCode constants.
type Validation struct {
	Valid          bool
	ErrorCode      string
	PromoID        string
	Code           string
	DiscountType   DiscountType
	DiscountValue  int64
	OriginalAmount int64
	DiscountAmount int64
	FinalAmount    int64
	// Summary is set on valid results only
	Summary *DiscountSummary
}

// Rejected builds an invalid Validation with the given error code
func Rejected(code string, amount int64) *Validation {
	return &Validation{Valid: false, ErrorCode: code, OriginalAmount: amount, FinalAmount: amount}
}

// PromoQuery filters the admin list of promo codes
type PromoQuery struct {
	IsActive      *bool
	DiscountType  DiscountType `validate:"omitempty,oneof=percentage fixed_amount"`
	Search        string       `validate:"omitempty,max=100"`
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
	Page          int    `validate:"min=1"`
	PageSize      int    `validate:"min=1,max=100"`
	SortBy        string `validate:"omitempty"`
	SortOrder     string `validate:"omitempty,oneof=asc desc"`
}

// NewPromoQuery returns the default query: first page of 20, newest first
func NewPromoQuery() *PromoQuery {
	return &PromoQuery{Page: 1, PageSize: 20, SortBy: "created_at", SortOrder: "desc"}
}

// Validate for validating PromoQuery struct
func (q *PromoQuery) Validate() error {
	if err := validators.ValidateStruct(q); err != nil {
		return err
	}
	if q.SortBy != "" && !sortableColumns[q.SortBy] {
		return fmt.Errorf("%w: cannot sort by %q", validators.ErrValidation, q.SortBy)
	}
	return nil
}

// PromoPage is one page of promo codes
type PromoPage struct {
	Items []*PromoCode
	Page  pagination.Page
}

// Analytics aggregates promo usage across the platform
type Analytics struct {
	TotalActiveCodes      int64
	TotalUses             int64
	TotalPlatformCost     int64
	TotalRevenueWithPromo int64
	ROIPercentage         float64
}

// UsageTotals is the raw aggregate read from storage
type UsageTotals struct {
	Uses          int64
	DiscountTotal int64
	RevenueTotal  int64
}
