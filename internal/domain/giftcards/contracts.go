package giftcards

import "context"

// GiftCardService validates and debits gift cards
type GiftCardService interface {
	// Validate reports how much of amount the card identified by code can cover for userEmail.
	// Business rejections are reported through Validation.ErrorCode.
	Validate(ctx context.Context, code, userEmail string, amount int64) (*Validation, error)

	// Apply debits amount from the card and records a transaction for bookingID.
	Apply(ctx context.Context, giftCardID, bookingID, userID string, amount int64) error
}

// GiftCardRepository defines persistence for gift cards
type GiftCardRepository interface {
	Create(ctx context.Context, card *GiftCard) error
	GetByID(ctx context.Context, id string) (*GiftCard, error)
	GetByCode(ctx context.Context, code string) (*GiftCard, error)
	// Debit locks the card row, checks the balance, decrements it and inserts tx.
	Debit(ctx context.Context, tx *Transaction) error
	ListTransactions(ctx context.Context, giftCardID string) ([]*Transaction, error)
}
