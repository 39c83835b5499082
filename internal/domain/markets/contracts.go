package markets

import "context"

// MarketService manages markets on behalf of staff
type MarketService interface {
	List(ctx context.Context, query *Query) (*MarketPage, error)
	GetByID(ctx context.Context, id string) (*Market, error)
	// Create stores a new market; a taken code returns ErrDuplicateCode.
	Create(ctx context.Context, market *Market) (*Market, error)
	// Update applies patch; an empty patch returns ErrEmptyPatch.
	Update(ctx context.Context, id string, patch *Patch) (*Market, error)
	// Delete deactivates the market, or removes it when hard is set.
	Delete(ctx context.Context, id string, hard bool) error
	Stats(ctx context.Context, id string) (*Stats, error)
	// ListActive returns every active market, used for address inference.
	ListActive(ctx context.Context) ([]*Market, error)
}

// MarketRepository defines persistence for markets
type MarketRepository interface {
	Create(ctx context.Context, market *Market) error
	GetByID(ctx context.Context, id string) (*Market, error)
	GetByCode(ctx context.Context, code string) (*Market, error)
	List(ctx context.Context, query *Query) ([]*Market, int64, error)
	Update(ctx context.Context, market *Market) error
	DeleteByID(ctx context.Context, id string) error
}
