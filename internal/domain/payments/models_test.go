//go:build unit
// +build unit

package payments

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestApplyDiscounts(t *testing.T) {
	assert.Equal(t, int64(6000), ApplyDiscounts(10000, 1500, 2500))
	assert.Equal(t, int64(0), ApplyDiscounts(5000, 1000, 4500))
	assert.Equal(t, int64(8000), ApplyDiscounts(8000, 0, 0))
}

func TestAmounts_Metadata(t *testing.T) {
	at := time.Date(2025, 3, 2, 14, 0, 0, 0, time.UTC)
	a := Amounts{Original: 9000, PromoDiscount: 900, PromoID: "p1", GiftCardAmount: 100, GiftCardID: "g1", GiftCardCode: "GIFT", Final: 8000}

	md := a.Metadata("u1", "s1", at)
	assert.Equal(t, "9000", md["original_amount"])
	assert.Equal(t, "900", md["promo_discount"])
	assert.Equal(t, "100", md["gift_card_amount"])
	assert.Equal(t, "GIFT", md["gift_card_code"])
	assert.Equal(t, "2025-03-02T14:00:00Z", md["scheduled_datetime"])
	assert.Len(t, md, 9)
}

func TestIntent_AuthorisedFor(t *testing.T) {
	held := func() *Intent {
		return &Intent{ID: "pi_1", Amount: 5000, Status: IntentRequiresCapture, Metadata: map[string]string{"user_id": "u1"}}
	}

	tests := []struct {
		name   string
		mutate func(i *Intent)
		userID string
		amount int64
		want   bool
	}{
		{"matching authorisation", func(*Intent) {}, "u1", 5000, true},
		{"other client", func(*Intent) {}, "u2", 5000, false},
		{"amount changed", func(*Intent) {}, "u1", 4000, false},
		{"already captured", func(i *Intent) { i.Status = IntentSucceeded }, "u1", 5000, false},
		{"no metadata", func(i *Intent) { i.Metadata = nil }, "u1", 5000, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i := held()
			tt.mutate(i)
			assert.Equal(t, tt.want, i.AuthorisedFor(tt.userID, tt.amount))
		})
	}
}
