package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/giftcards"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/logger"

	"github.com/google/uuid"
)

// giftCardService implements the GiftCardService interface
type giftCardService struct {
	giftCardRepo giftcards.GiftCardRepository
	logger       logger.Logger
	now          func() time.Time
}

// NewGiftCardService creates a new instance of GiftCardService
func NewGiftCardService(giftCardRepo giftcards.GiftCardRepository, logger logger.Logger) (giftcards.GiftCardService, error) {
	return &giftCardService{
		giftCardRepo: giftCardRepo,
		logger:       logger,
		now:          time.Now,
	}, nil
}

func (s *giftCardService) Validate(ctx context.Context, code, userEmail string, amount int64) (*giftcards.Validation, error) {
	card, err := s.giftCardRepo.GetByCode(ctx, giftcards.NormalizeCode(code))
	if err != nil {
		if errors.Is(err, giftcards.ErrNotFound) {
			return &giftcards.Validation{ErrorCode: giftcards.ErrCodeInvalidCode}, nil
		}
		return nil, fmt.Errorf("failed to load gift card: %w", err)
	}
	return giftcards.Check(card, userEmail, amount, s.now()), nil
}

// Apply debits amount from the card. A zero amount is a no-op.
func (s *giftCardService) Apply(ctx context.Context, giftCardID, bookingID, userID string, amount int64) error {
	if amount <= 0 {
		return nil
	}

	txn := &giftcards.Transaction{
		ID:         uuid.NewString(),
		GiftCardID: giftCardID,
		UserID:     userID,
		Amount:     amount,
		CreatedAt:  s.now().UTC(),
	}
	if bookingID != "" {
		txn.BookingID = &bookingID
	}

	if err := s.giftCardRepo.Debit(ctx, txn); err != nil {
		return fmt.Errorf("failed to debit gift card: %w", err)
	}

	s.logger.Info("gift card debited", "gift_card_id", giftCardID, "amount", amount)
	return nil
}
