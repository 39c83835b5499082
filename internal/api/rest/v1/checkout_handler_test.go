//go:build unit
// +build unit

package v1

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/catalog"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/giftcards"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/payments"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCheckoutHandler_ValidateGiftCard_UsesCallerEmail(t *testing.T) {
	mockGiftCards := new(MockGiftCardService)
	handler := NewCheckoutHandler(mockGiftCards, new(MockPaymentIntentService))

	mockGiftCards.On("Validate", mock.Anything, "CADEAU-50", testUserID+"@example.com", int64(8000)).
		Return(&giftcards.Validation{
			Valid:            true,
			GiftCardID:       "card-1",
			AvailableAmount:  5000,
			AmountToApply:    5000,
			RemainingBalance: 0,
		}, nil)

	c, w := newRequestContext(http.MethodPost, "/bookings/validate-gift-card", ValidateGiftCardRequest{
		Code: "CADEAU-50", AmountToApply: 8000,
	}, testUserID, auth.RoleClient)

	handler.ValidateGiftCard(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp ValidateGiftCardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Valid)
	assert.Equal(t, int64(5000), resp.AmountToApply)
	mockGiftCards.AssertExpectations(t)
}

func TestCheckoutHandler_ValidateGiftCard_Rejected(t *testing.T) {
	mockGiftCards := new(MockGiftCardService)
	handler := NewCheckoutHandler(mockGiftCards, new(MockPaymentIntentService))
	mockGiftCards.On("Validate", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&giftcards.Validation{Valid: false, ErrorCode: giftcards.ErrCodeExpired}, nil)

	c, w := newRequestContext(http.MethodPost, "/bookings/validate-gift-card", ValidateGiftCardRequest{
		Code: "OLD", AmountToApply: 100,
	}, testUserID, auth.RoleClient)

	handler.ValidateGiftCard(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), giftcards.ErrCodeExpired)
}

func TestCheckoutHandler_CreatePaymentIntent(t *testing.T) {
	scheduled := time.Date(2025, 7, 14, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name   string
		result *payments.IntentResult
		err    error
		status int
	}{
		{
			name: "Card authorised",
			result: &payments.IntentResult{
				PaymentRequired: true,
				ClientSecret:    "pi_1_secret",
				PaymentIntentID: "pi_1",
				Amounts:         payments.Amounts{Original: 8000, PromoDiscount: 1600, Final: 6400},
			},
			status: http.StatusOK,
		},
		{
			name: "Discounts cover the price",
			result: &payments.IntentResult{
				PaymentRequired: false,
				Amounts:         payments.Amounts{Original: 8000, GiftCardAmount: 8000, Final: 0},
			},
			status: http.StatusOK,
		},
		{"Unknown service", nil, catalog.ErrServiceNotFound, http.StatusNotFound},
		{"Invalid promo", nil, payments.ErrInvalidPromo, http.StatusBadRequest},
		{"Gateway failure", nil, errors.New("card_declined"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockIntents := new(MockPaymentIntentService)
			handler := NewCheckoutHandler(new(MockGiftCardService), mockIntents)

			mockIntents.On("CreatePaymentIntent", mock.Anything, mock.MatchedBy(func(r *payments.IntentRequest) bool {
				return r.UserID == testUserID && r.ServiceID == testServiceID && r.ScheduledAt.Equal(scheduled)
			})).Return(tt.result, tt.err)

			c, w := newRequestContext(http.MethodPost, "/bookings/create-payment-intent", CreatePaymentIntentRequest{
				ServiceID: testServiceID, ScheduledAt: scheduled,
			}, testUserID, auth.RoleClient)

			handler.CreatePaymentIntent(c)

			assert.Equal(t, tt.status, w.Code)
			if tt.result != nil {
				var resp PaymentIntentResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.result.PaymentRequired, resp.PaymentRequired)
				assert.Equal(t, tt.result.Amounts.Final, resp.Amounts.Final)
			}
			mockIntents.AssertExpectations(t)
		})
	}
}

func TestCheckoutHandler_CreatePaymentIntent_InvalidBody(t *testing.T) {
	mockIntents := new(MockPaymentIntentService)
	handler := NewCheckoutHandler(new(MockGiftCardService), mockIntents)

	c, w := newRequestContext(http.MethodPost, "/bookings/create-payment-intent", map[string]string{"service_id": "nope"}, testUserID, auth.RoleClient)

	handler.CreatePaymentIntent(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockIntents.AssertNotCalled(t, "CreatePaymentIntent")
}
