package app

import (
	"context"
	"fmt"
	"time"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/catalog"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/markets"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/logger"

	"github.com/google/uuid"
)

// addressService implements the AddressService interface
type addressService struct {
	addressRepo   catalog.AddressRepository
	marketService markets.MarketService
	logger        logger.Logger
	now           func() time.Time
}

// NewAddressService creates a new instance of AddressService
func NewAddressService(
	addressRepo catalog.AddressRepository,
	marketService markets.MarketService,
	logger logger.Logger,
) (catalog.AddressService, error) {
	return &addressService{
		addressRepo:   addressRepo,
		marketService: marketService,
		logger:        logger,
		now:           time.Now,
	}, nil
}

func (s *addressService) List(ctx context.Context, clientID string) ([]*catalog.Address, error) {
	return s.addressRepo.ListByClient(ctx, clientID)
}

func (s *addressService) Create(ctx context.Context, clientID string, input *catalog.AddressInput) (*catalog.Address, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	address := &catalog.Address{
		ID:        uuid.NewString(),
		ClientID:  clientID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	input.Apply(address)
	s.locate(ctx, address)

	if err := s.addressRepo.Create(ctx, address); err != nil {
		return nil, err
	}
	return address, nil
}

func (s *addressService) Update(ctx context.Context, id, clientID string, input *catalog.AddressInput) (*catalog.Address, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	address, err := s.owned(ctx, id, clientID)
	if err != nil {
		return nil, err
	}

	input.Apply(address)
	address.UpdatedAt = s.now().UTC()
	s.locate(ctx, address)

	if err := s.addressRepo.Update(ctx, address); err != nil {
		return nil, err
	}
	return address, nil
}

func (s *addressService) Delete(ctx context.Context, id, clientID string) error {
	address, err := s.owned(ctx, id, clientID)
	if err != nil {
		return err
	}

	now := s.now().UTC()
	address.DeletedAt = &now
	address.IsDefault = false
	address.UpdatedAt = now
	if err := s.addressRepo.Update(ctx, address); err != nil {
		return fmt.Errorf("failed to delete address: %w", err)
	}
	return nil
}

// owned loads a live address of clientID; anything else reads as not found
func (s *addressService) owned(ctx context.Context, id, clientID string) (*catalog.Address, error) {
	address, err := s.addressRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if address.ClientID != clientID || address.Removed() {
		return nil, catalog.ErrAddressNotFound
	}
	return address, nil
}

// locate sets the country code and the active market serving it. A market
// lookup failure leaves the address without market rather than failing the save.
func (s *addressService) locate(ctx context.Context, address *catalog.Address) {
	address.CountryCode = markets.ExtractCountryCode(address.Country)
	address.MarketID = nil

	active, err := s.marketService.ListActive(ctx)
	if err != nil {
		s.logger.Warn("Could not load markets for address", "address_id", address.ID, "error", err)
		return
	}

	market := markets.InferMarketFromAddress(address.Country, active)
	if market != nil {
		address.MarketID = &market.ID
	}
	s.logger.Debug("Located address", "address_id", address.ID, "market", markets.FormatMarketDisplay(market))
}
