//go:build unit
// +build unit

package app

import (
	"context"
	"testing"
	"time"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/giftcards"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newGiftCardService(t *testing.T) (*MockGiftCardRepository, giftcards.GiftCardService) {
	repo := new(MockGiftCardRepository)
	svc, err := NewGiftCardService(repo, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	return repo, svc
}

func TestGiftCardService_Validate(t *testing.T) {
	repo, svc := newGiftCardService(t)
	card := &giftcards.GiftCard{ID: uuid.NewString(), Code: "GIFT-ABCD", InitialAmount: 5000, CurrentBalance: 3000, IsActive: true}
	repo.On("GetByCode", mock.Anything, "GIFT-ABCD").Return(card, nil)

	res, err := svc.Validate(context.Background(), "gift-abcd", "client@example.com", 4500)
	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.Equal(t, int64(3000), res.AmountToApply)
	assert.Equal(t, int64(0), res.RemainingBalance)
}

func TestGiftCardService_Validate_UnknownCode(t *testing.T) {
	repo, svc := newGiftCardService(t)
	repo.On("GetByCode", mock.Anything, "NOPE").Return(nil, giftcards.ErrNotFound)

	res, err := svc.Validate(context.Background(), "nope", "client@example.com", 1000)
	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.Equal(t, giftcards.ErrCodeInvalidCode, res.ErrorCode)
}

func TestGiftCardService_Apply(t *testing.T) {
	repo, svc := newGiftCardService(t)
	cardID, bookingID, userID := uuid.NewString(), uuid.NewString(), uuid.NewString()

	repo.On("Debit", mock.Anything, mock.MatchedBy(func(txn *giftcards.Transaction) bool {
		return txn.GiftCardID == cardID && *txn.BookingID == bookingID && txn.Amount == 2500 && !txn.CreatedAt.After(time.Now())
	})).Return(nil)

	require.NoError(t, svc.Apply(context.Background(), cardID, bookingID, userID, 2500))
	repo.AssertExpectations(t)
}

func TestGiftCardService_Apply_InsufficientBalance(t *testing.T) {
	repo, svc := newGiftCardService(t)
	repo.On("Debit", mock.Anything, mock.Anything).Return(giftcards.ErrInsufficientBalance)

	err := svc.Apply(context.Background(), uuid.NewString(), uuid.NewString(), uuid.NewString(), 9999)
	assert.ErrorIs(t, err, giftcards.ErrInsufficientBalance)
}

func TestGiftCardService_Apply_ZeroAmount(t *testing.T) {
	repo, svc := newGiftCardService(t)

	require.NoError(t, svc.Apply(context.Background(), uuid.NewString(), uuid.NewString(), uuid.NewString(), 0))
	repo.AssertNotCalled(t, "Debit", mock.Anything, mock.Anything)
}
