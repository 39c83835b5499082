package promos

import "time"

// ComputeStatus derives the lifecycle status of p at instant now
func ComputeStatus(p *PromoCode, now time.Time) Status {
	switch {
	case !p.IsActive:
		return StatusInactive
	case now.Before(p.ValidFrom):
		return StatusScheduled
	case p.ValidUntil != nil && now.After(*p.ValidUntil):
		return StatusExpired
	case p.MaxUses != nil && p.UsesCount >= *p.MaxUses:
		return StatusExhausted
	default:
		return StatusActive
	}
}

// RemainingUses returns nil for unlimited codes
func RemainingUses(p *PromoCode) *int {
	if p.MaxUses == nil {
		return nil
	}
	remaining := *p.MaxUses - p.UsesCount
	if remaining < 0 {
		remaining = 0
	}
	return &remaining
}

// UsagePercentage returns how much of the global budget is consumed, capped at 100.
// Unlimited codes report 0.
func UsagePercentage(p *PromoCode) float64 {
	if p.MaxUses == nil {
		return 0
	}
	if *p.MaxUses == 0 {
		return 100
	}
	pct := float64(p.UsesCount) / float64(*p.MaxUses) * 100
	if pct > 100 {
		return 100
	}
	return pct
}

// Rejection returns the error code that makes p unusable at now, or "" when it can be redeemed.
// It covers the rules that depend on the code alone.
func Rejection(p *PromoCode, now time.Time) string {
	switch ComputeStatus(p, now) {
	case StatusInactive:
		return ErrCodeInactive
	case StatusScheduled:
		return ErrCodeNotYetValid
	case StatusExpired:
		return ErrCodeExpired
	case StatusExhausted:
		return ErrCodeExhausted
	}
	return ""
}

// Eligibility holds the per-redemption facts checked after the code itself is usable
type Eligibility struct {
	UserUses          int64
	Amount            int64
	ServiceID         string
	ServiceCategoryID *string
	UserHasBookings   bool
}

// CheckEligibility applies the redemption rules in order and returns the first failing error code
func CheckEligibility(p *PromoCode, e Eligibility, now time.Time) string {
	if code := Rejection(p, now); code != "" {
		return code
	}

	maxPerUser := p.MaxUsesPerUser
	if maxPerUser < 1 {
		maxPerUser = DefaultMaxUsesPerUser
	}
	if e.UserUses >= int64(maxPerUser) {
		return ErrCodeUserLimitReached
	}

	if p.MinOrderAmount != nil && e.Amount < *p.MinOrderAmount {
		return ErrCodeMinAmountNotMet
	}

	if len(p.SpecificServices) > 0 && !contains(p.SpecificServices, e.ServiceID) {
		return ErrCodeServiceNotEligible
	}

	if len(p.SpecificCategories) > 0 {
		if e.ServiceCategoryID == nil || !contains(p.SpecificCategories, *e.ServiceCategoryID) {
			return ErrCodeCategoryNotEligible
		}
	}

	if p.FirstBookingOnly && e.UserHasBookings {
		return ErrCodeFirstBookingOnly
	}

	return ""
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
