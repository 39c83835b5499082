package app

import (
	"context"
	"fmt"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/catalog"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/logger"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/validators"
)

// contractorService implements the ContractorService interface
type contractorService struct {
	contractorRepo catalog.ContractorRepository
	serviceRepo    catalog.ServiceRepository
	logger         logger.Logger
}

// NewContractorService creates a new instance of ContractorService
func NewContractorService(contractorRepo catalog.ContractorRepository, serviceRepo catalog.ServiceRepository, logger logger.Logger) (catalog.ContractorService, error) {
	return &contractorService{
		contractorRepo: contractorRepo,
		serviceRepo:    serviceRepo,
		logger:         logger,
	}, nil
}

// AvailableContractors lists the active contractors offering the service who
// have no pending or confirmed booking overlapping the requested slot.
func (s *contractorService) AvailableContractors(ctx context.Context, query *catalog.AvailabilityQuery) (*catalog.Availability, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	service, err := s.serviceRepo.GetByID(ctx, query.ServiceID)
	if err != nil {
		return nil, err
	}
	if !service.IsActive {
		return nil, catalog.ErrServiceNotFound
	}

	start, err := query.Start()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", validators.ErrValidation, err)
	}
	slot := catalog.NewSlot(start, service.Duration())

	candidates, err := s.contractorRepo.ListActiveOffering(ctx, service.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contractors: %w", err)
	}

	available := make([]*catalog.Contractor, 0, len(candidates))
	if len(candidates) > 0 {
		ids := make([]string, len(candidates))
		for i, c := range candidates {
			ids[i] = c.ID
		}

		busy, err := s.contractorRepo.BusyContractorIDs(ctx, ids, slot, "")
		if err != nil {
			return nil, fmt.Errorf("failed to check contractor schedules: %w", err)
		}
		busySet := make(map[string]struct{}, len(busy))
		for _, id := range busy {
			busySet[id] = struct{}{}
		}

		for _, c := range candidates {
			if _, ok := busySet[c.ID]; !ok {
				available = append(available, c)
			}
		}
	}
	catalog.RankContractors(available)

	s.logger.Debug("contractor availability computed", "service_id", service.ID, "start", slot.Start, "available", len(available))

	return &catalog.Availability{
		Service:     service,
		Slot:        slot,
		Contractors: available,
	}, nil
}

// IsAvailable reports whether an active contractor is free for slot, ignoring
// the booking excludeBookingID.
func (s *contractorService) IsAvailable(ctx context.Context, contractorID string, slot catalog.Slot, excludeBookingID string) (bool, error) {
	contractor, err := s.contractorRepo.GetByID(ctx, contractorID)
	if err != nil {
		return false, err
	}
	if !contractor.IsActive {
		return false, nil
	}

	busy, err := s.contractorRepo.BusyContractorIDs(ctx, []string{contractorID}, slot, excludeBookingID)
	if err != nil {
		return false, fmt.Errorf("failed to check contractor schedule: %w", err)
	}
	return len(busy) == 0, nil
}

func (s *contractorService) GetByUserID(ctx context.Context, userID string) (*catalog.Contractor, error) {
	return s.contractorRepo.GetByUserID(ctx, userID)
}
