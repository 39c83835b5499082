//go:build unit
// +build unit

package promos

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func basePromo(now time.Time) *PromoCode {
	until := now.Add(24 * time.Hour)
	return &PromoCode{
		Code:           "SPRING20",
		DiscountType:   DiscountPercentage,
		DiscountValue:  20,
		MaxUsesPerUser: 1,
		ValidFrom:      now.Add(-time.Hour),
		ValidUntil:     &until,
		IsActive:       true,
	}
}

func TestComputeStatus(t *testing.T) {
	now := time.Date(2025, 4, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		mutate   func(p *PromoCode)
		expected Status
	}{
		{"active", func(p *PromoCode) {}, StatusActive},
		{"inactive wins over everything", func(p *PromoCode) { p.IsActive = false; p.ValidFrom = now.Add(time.Hour) }, StatusInactive},
		{"scheduled", func(p *PromoCode) { p.ValidFrom = now.Add(time.Hour) }, StatusScheduled},
		{"expired", func(p *PromoCode) { past := now.Add(-time.Minute); p.ValidUntil = &past }, StatusExpired},
		{"no end date", func(p *PromoCode) { p.ValidUntil = nil }, StatusActive},
		{"exhausted", func(p *PromoCode) { p.MaxUses = intPtr(10); p.UsesCount = 10 }, StatusExhausted},
		{"below max uses", func(p *PromoCode) { p.MaxUses = intPtr(10); p.UsesCount = 9 }, StatusActive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := basePromo(now)
			tt.mutate(p)
			assert.Equal(t, tt.expected, ComputeStatus(p, now))
		})
	}
}

func TestRemainingUsesAndPercentage(t *testing.T) {
	p := &PromoCode{}
	assert.Nil(t, RemainingUses(p))
	assert.Equal(t, 0.0, UsagePercentage(p))

	p.MaxUses = intPtr(0)
	assert.Equal(t, 100.0, UsagePercentage(p))

	p.MaxUses = intPtr(4)
	p.UsesCount = 1
	assert.Equal(t, 3, *RemainingUses(p))
	assert.Equal(t, 25.0, UsagePercentage(p))

	p.UsesCount = 6
	assert.Equal(t, 0, *RemainingUses(p))
	assert.Equal(t, 100.0, UsagePercentage(p))
}

func TestCheckEligibility(t *testing.T) {
	now := time.Date(2025, 4, 10, 12, 0, 0, 0, time.UTC)
	serviceID := "8d0c6a8e-4a63-4f3b-9d0e-1f3c0b0b7a11"
	categoryID := "0b5b9c3e-13a4-4c38-bf0c-5a0f3c3a2e22"

	tests := []struct {
		name     string
		mutate   func(p *PromoCode)
		facts    Eligibility
		expected string
	}{
		{"eligible", func(p *PromoCode) {}, Eligibility{Amount: 5000, ServiceID: serviceID}, ""},
		{"expired reported before user limit", func(p *PromoCode) { past := now.Add(-time.Hour); p.ValidUntil = &past }, Eligibility{UserUses: 3}, ErrCodeExpired},
		{"not yet valid", func(p *PromoCode) { p.ValidFrom = now.Add(time.Hour) }, Eligibility{}, ErrCodeNotYetValid},
		{"inactive", func(p *PromoCode) { p.IsActive = false }, Eligibility{}, ErrCodeInactive},
		{"exhausted", func(p *PromoCode) { p.MaxUses = intPtr(1); p.UsesCount = 1 }, Eligibility{}, ErrCodeExhausted},
		{"user limit", func(p *PromoCode) {}, Eligibility{UserUses: 1, Amount: 5000}, ErrCodeUserLimitReached},
		{"zero per-user limit falls back to default", func(p *PromoCode) { p.MaxUsesPerUser = 0 }, Eligibility{UserUses: 1}, ErrCodeUserLimitReached},
		{"min amount", func(p *PromoCode) { p.MinOrderAmount = int64Ptr(6000) }, Eligibility{Amount: 5000}, ErrCodeMinAmountNotMet},
		{"service restriction", func(p *PromoCode) { p.SpecificServices = []string{"other"} }, Eligibility{Amount: 5000, ServiceID: serviceID}, ErrCodeServiceNotEligible},
		{"category restriction without category", func(p *PromoCode) { p.SpecificCategories = []string{categoryID} }, Eligibility{Amount: 5000, ServiceID: serviceID}, ErrCodeCategoryNotEligible},
		{"category restriction matches", func(p *PromoCode) { p.SpecificCategories = []string{categoryID} }, Eligibility{Amount: 5000, ServiceID: serviceID, ServiceCategoryID: strPtr(categoryID)}, ""},
		{"first booking only", func(p *PromoCode) { p.FirstBookingOnly = true }, Eligibility{Amount: 5000, UserHasBookings: true}, ErrCodeFirstBookingOnly},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := basePromo(now)
			tt.mutate(p)
			assert.Equal(t, tt.expected, CheckEligibility(p, tt.facts, now))
		})
	}
}
