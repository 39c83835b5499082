package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/catalog"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/markets"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/pagination"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/logger"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// activeMarketsLimit bounds ListActive; markets are a short, admin-managed list
const activeMarketsLimit = 100

// marketService implements the MarketService interface
type marketService struct {
	marketRepo     markets.MarketRepository
	contractorRepo catalog.ContractorRepository
	serviceRepo    catalog.ServiceRepository
	logger         logger.Logger
	now            func() time.Time
}

// NewMarketService creates a new instance of MarketService
func NewMarketService(
	marketRepo markets.MarketRepository,
	contractorRepo catalog.ContractorRepository,
	serviceRepo catalog.ServiceRepository,
	logger logger.Logger,
) (markets.MarketService, error) {
	return &marketService{
		marketRepo:     marketRepo,
		contractorRepo: contractorRepo,
		serviceRepo:    serviceRepo,
		logger:         logger,
		now:            time.Now,
	}, nil
}

func (s *marketService) List(ctx context.Context, query *markets.Query) (*markets.MarketPage, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	data, total, err := s.marketRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list markets: %w", err)
	}

	return &markets.MarketPage{
		Data:       data,
		Pagination: pagination.NewPage(query.Page, query.Limit, total),
	}, nil
}

func (s *marketService) GetByID(ctx context.Context, id string) (*markets.Market, error) {
	return s.marketRepo.GetByID(ctx, id)
}

func (s *marketService) Create(ctx context.Context, market *markets.Market) (*markets.Market, error) {
	now := s.now().UTC()

	market.ID = uuid.NewString()
	market.Code = strings.ToUpper(strings.TrimSpace(market.Code))
	market.CreatedAt = now
	market.UpdatedAt = now

	if err := market.Validate(); err != nil {
		return nil, err
	}
	if err := s.marketRepo.Create(ctx, market); err != nil {
		return nil, err
	}
	return market, nil
}

// Update applies a partial change. An empty patch is rejected with ErrEmptyPatch.
func (s *marketService) Update(ctx context.Context, id string, patch *markets.Patch) (*markets.Market, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	market, err := s.marketRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(market)
	market.Code = strings.ToUpper(strings.TrimSpace(market.Code))
	market.UpdatedAt = s.now().UTC()

	if err := market.Validate(); err != nil {
		return nil, err
	}
	if err := s.marketRepo.Update(ctx, market); err != nil {
		return nil, err
	}
	return market, nil
}

// Delete deactivates a market, or removes it when hard is set. Neither form
// cascades: contractors still attached to the market block the operation.
func (s *marketService) Delete(ctx context.Context, id string, hard bool) error {
	market, err := s.marketRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if hard {
		count, err := s.contractorRepo.CountByMarket(ctx, id, false)
		if err != nil {
			return fmt.Errorf("failed to count market contractors: %w", err)
		}
		if count > 0 {
			return markets.ErrHasContractors
		}
		if err := s.marketRepo.DeleteByID(ctx, id); err != nil {
			return err
		}
		s.logger.Info("market deleted", "market_id", id, "code", market.Code)
		return nil
	}

	active, err := s.contractorRepo.CountByMarket(ctx, id, true)
	if err != nil {
		return fmt.Errorf("failed to count active market contractors: %w", err)
	}
	if active > 0 {
		return markets.ErrHasActiveContractors
	}

	market.IsActive = false
	market.UpdatedAt = s.now().UTC()
	if err := s.marketRepo.Update(ctx, market); err != nil {
		return err
	}
	s.logger.Info("market deactivated", "market_id", id, "code", market.Code)
	return nil
}

func (s *marketService) Stats(ctx context.Context, id string) (*markets.Stats, error) {
	if _, err := s.marketRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	stats := &markets.Stats{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.contractorRepo.CountByMarket(gctx, id, false)
		stats.TotalContractors = n
		return err
	})
	g.Go(func() error {
		n, err := s.contractorRepo.CountByMarket(gctx, id, true)
		stats.ActiveContractors = n
		return err
	})
	g.Go(func() error {
		n, err := s.serviceRepo.CountAvailableInMarket(gctx, id)
		stats.TotalServices = n
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to compute market stats: %w", err)
	}
	return stats, nil
}

func (s *marketService) ListActive(ctx context.Context) ([]*markets.Market, error) {
	active := true
	query := markets.NewQuery()
	query.IsActive = &active
	query.Limit = activeMarketsLimit
	query.Sort = "name"

	data, _, err := s.marketRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active markets: %w", err)
	}
	return data, nil
}
