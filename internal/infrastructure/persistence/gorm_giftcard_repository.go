package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/giftcards"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/infrastructure/persistence/models"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormGiftCardRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormGiftCardRepository creates a new GORM-based GiftCardRepository implementation
func NewGormGiftCardRepository(db *gorm.DB, logger logger.Logger) (giftcards.GiftCardRepository, error) {
	return &gormGiftCardRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormGiftCardRepository) Create(ctx context.Context, card *giftcards.GiftCard) error {
	if err := card.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.GiftCardModel{}
	model.FromDomain(card)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create gift card: %w", err)
	}

	r.logger.Info("Created gift card with id ", card.ID)
	return nil
}

func (r *gormGiftCardRepository) GetByID(ctx context.Context, id string) (*giftcards.GiftCard, error) {
	var model models.GiftCardModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, giftcards.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch gift card: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormGiftCardRepository) GetByCode(ctx context.Context, code string) (*giftcards.GiftCard, error) {
	var model models.GiftCardModel
	if err := r.db.WithContext(ctx).Where("UPPER(code) = ?", code).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, giftcards.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch gift card: %w", err)
	}
	return model.ToDomain(), nil
}

// Debit locks the card row so concurrent bookings cannot overdraw it
func (r *gormGiftCardRepository) Debit(ctx context.Context, txn *giftcards.Transaction) error {
	if err := txn.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var card models.GiftCardModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", txn.GiftCardID).
			Take(&card).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return giftcards.ErrNotFound
			}
			return fmt.Errorf("failed to lock gift card: %w", err)
		}

		if card.CurrentBalance < txn.Amount {
			return giftcards.ErrInsufficientBalance
		}

		if err := tx.Model(&card).Update("current_balance", card.CurrentBalance-txn.Amount).Error; err != nil {
			return fmt.Errorf("failed to debit gift card: %w", err)
		}

		model := &models.GiftCardTransactionModel{}
		model.FromDomain(txn)
		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to record gift card transaction: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("Debited gift card ", txn.GiftCardID, " by ", txn.Amount)
	return nil
}

func (r *gormGiftCardRepository) ListTransactions(ctx context.Context, giftCardID string) ([]*giftcards.Transaction, error) {
	var modelList []*models.GiftCardTransactionModel
	err := r.db.WithContext(ctx).
		Where("gift_card_id = ?", giftCardID).
		Order("created_at asc").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch gift card transactions: %w", err)
	}

	domainList := make([]*giftcards.Transaction, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}
