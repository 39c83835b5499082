package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/bookings"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/catalog"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/pagination"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/promos"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/logger"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/ratelimit"

	"github.com/google/uuid"
)

// promoValidationService implements the PromoValidationService interface
type promoValidationService struct {
	promoRepo   promos.PromoRepository
	serviceRepo catalog.ServiceRepository
	bookingRepo bookings.BookingRepository
	limiter     *ratelimit.KeyedLimiter
	logger      logger.Logger
	now         func() time.Time
}

// NewPromoValidationService creates a new instance of PromoValidationService.
// A nil limiter disables rate limiting.
func NewPromoValidationService(
	promoRepo promos.PromoRepository,
	serviceRepo catalog.ServiceRepository,
	bookingRepo bookings.BookingRepository,
	limiter *ratelimit.KeyedLimiter,
	logger logger.Logger,
) (promos.PromoValidationService, error) {
	return &promoValidationService{
		promoRepo:   promoRepo,
		serviceRepo: serviceRepo,
		bookingRepo: bookingRepo,
		limiter:     limiter,
		logger:      logger,
		now:         time.Now,
	}, nil
}

// Validate checks a promo code against the caller, the service and the amount,
// spending one token of the caller's rate limit.
// Business rejections come back as a Validation with Valid=false; only
// infrastructure failures are returned as errors.
func (s *promoValidationService) Validate(ctx context.Context, input promos.ValidateInput) (*promos.Validation, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if s.limiter != nil && !s.limiter.Allow(input.UserID) {
		s.logger.Warn("promo validation rate limited", "user_id", input.UserID)
		return promos.Rejected(promos.ErrCodeRateLimitExceeded, input.Amount), nil
	}

	return s.check(ctx, input)
}

// Check runs the redemption rules without touching the rate limit
func (s *promoValidationService) Check(ctx context.Context, input promos.ValidateInput) (*promos.Validation, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	return s.check(ctx, input)
}

func (s *promoValidationService) check(ctx context.Context, input promos.ValidateInput) (*promos.Validation, error) {
	promo, err := s.promoRepo.GetByCode(ctx, promos.NormalizeCode(input.Code))
	if err != nil {
		if errors.Is(err, promos.ErrNotFound) {
			return promos.Rejected(promos.ErrCodeInvalidCode, input.Amount), nil
		}
		return nil, fmt.Errorf("failed to load promo code: %w", err)
	}

	now := s.now()
	if code := promos.Rejection(promo, now); code != "" {
		return promos.Rejected(code, input.Amount), nil
	}

	facts := promos.Eligibility{Amount: input.Amount, ServiceID: input.ServiceID}

	facts.UserUses, err = s.promoRepo.CountUserUsage(ctx, promo.ID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to count promo usage: %w", err)
	}

	if len(promo.SpecificCategories) > 0 {
		service, err := s.serviceRepo.GetByID(ctx, input.ServiceID)
		if err != nil && !errors.Is(err, catalog.ErrServiceNotFound) {
			return nil, fmt.Errorf("failed to load service: %w", err)
		}
		if service != nil {
			facts.ServiceCategoryID = service.CategoryID
		}
	}

	if promo.FirstBookingOnly {
		count, err := s.bookingRepo.CountActiveForClient(ctx, input.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to count bookings: %w", err)
		}
		facts.UserHasBookings = count > 0
	}

	if code := promos.CheckEligibility(promo, facts, now); code != "" {
		return promos.Rejected(code, input.Amount), nil
	}

	summary := promos.CalculateDiscountSummary(input.Amount, promo.DiscountType, promo.DiscountValue, promo.MaxDiscountAmount)

	return &promos.Validation{
		Valid:          true,
		PromoID:        promo.ID,
		Code:           promo.Code,
		DiscountType:   promo.DiscountType,
		DiscountValue:  promo.DiscountValue,
		OriginalAmount: input.Amount,
		DiscountAmount: summary.DiscountAmount,
		FinalAmount:    summary.FinalAmount,
		Summary:        &summary,
	}, nil
}

// RecordUsage stores a redemption and bumps the code's use counter
func (s *promoValidationService) RecordUsage(ctx context.Context, usage *promos.PromoCodeUsage) error {
	if usage.ID == "" {
		usage.ID = uuid.NewString()
	}
	if usage.UsedAt.IsZero() {
		usage.UsedAt = s.now().UTC()
	}
	if err := s.promoRepo.RecordUsage(ctx, usage); err != nil {
		return fmt.Errorf("failed to record promo usage: %w", err)
	}
	s.logger.Info("promo usage recorded", "promo_id", usage.PromoCodeID, "booking_id", usage.BookingID)
	return nil
}

// promoAdminService implements the PromoAdminService interface
type promoAdminService struct {
	promoRepo promos.PromoRepository
	logger    logger.Logger
	now       func() time.Time
}

// NewPromoAdminService creates a new instance of PromoAdminService
func NewPromoAdminService(promoRepo promos.PromoRepository, logger logger.Logger) (promos.PromoAdminService, error) {
	return &promoAdminService{
		promoRepo: promoRepo,
		logger:    logger,
		now:       time.Now,
	}, nil
}

func (s *promoAdminService) Create(ctx context.Context, promo *promos.PromoCode) (*promos.PromoCode, error) {
	now := s.now().UTC()

	promo.ID = uuid.NewString()
	promo.Code = promos.NormalizeCode(promo.Code)
	promo.UsesCount = 0
	if promo.MaxUsesPerUser == 0 {
		promo.MaxUsesPerUser = promos.DefaultMaxUsesPerUser
	}
	if promo.ValidFrom.IsZero() {
		promo.ValidFrom = now
	}
	promo.CreatedAt = now
	promo.UpdatedAt = now

	if err := promo.Validate(); err != nil {
		return nil, err
	}
	if err := s.promoRepo.Create(ctx, promo); err != nil {
		return nil, err
	}
	return promo, nil
}

// Update replaces the editable fields of an existing code. The use counter,
// author and creation time are kept from the stored row.
func (s *promoAdminService) Update(ctx context.Context, promo *promos.PromoCode) (*promos.PromoCode, error) {
	existing, err := s.promoRepo.GetByID(ctx, promo.ID)
	if err != nil {
		return nil, err
	}

	promo.Code = promos.NormalizeCode(promo.Code)
	promo.UsesCount = existing.UsesCount
	promo.CreatedBy = existing.CreatedBy
	promo.CreatedAt = existing.CreatedAt
	if promo.MaxUsesPerUser == 0 {
		promo.MaxUsesPerUser = existing.MaxUsesPerUser
	}
	if promo.ValidFrom.IsZero() {
		promo.ValidFrom = existing.ValidFrom
	}
	promo.UpdatedAt = s.now().UTC()

	if err := promo.Validate(); err != nil {
		return nil, err
	}
	if err := s.promoRepo.Update(ctx, promo); err != nil {
		return nil, err
	}
	return promo, nil
}

func (s *promoAdminService) GetByID(ctx context.Context, id string) (*promos.PromoCode, error) {
	return s.promoRepo.GetByID(ctx, id)
}

func (s *promoAdminService) List(ctx context.Context, query *promos.PromoQuery) (*promos.PromoPage, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items, total, err := s.promoRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list promo codes: %w", err)
	}

	return &promos.PromoPage{
		Items: items,
		Page:  pagination.NewPage(query.Page, query.PageSize, total),
	}, nil
}

func (s *promoAdminService) SetActive(ctx context.Context, id string, active bool) (*promos.PromoCode, error) {
	promo, err := s.promoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	promo.IsActive = active
	promo.UpdatedAt = s.now().UTC()
	if err := s.promoRepo.Update(ctx, promo); err != nil {
		return nil, err
	}

	s.logger.Info("promo code toggled", "promo_id", id, "active", active)
	return promo, nil
}

// Delete removes a code that was never redeemed. Used codes can only be deactivated.
func (s *promoAdminService) Delete(ctx context.Context, id string) error {
	promo, err := s.promoRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if promo.UsesCount > 0 {
		return promos.ErrInUse
	}
	return s.promoRepo.DeleteByID(ctx, id)
}

func (s *promoAdminService) ListUsage(ctx context.Context, id string) ([]*promos.PromoCodeUsage, error) {
	if _, err := s.promoRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.promoRepo.ListUsage(ctx, id)
}

func (s *promoAdminService) Analytics(ctx context.Context) (*promos.Analytics, error) {
	active, err := s.promoRepo.CountActive(ctx, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to count active promo codes: %w", err)
	}

	totals, err := s.promoRepo.UsageTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate promo usage: %w", err)
	}

	return &promos.Analytics{
		TotalActiveCodes:      active,
		TotalUses:             totals.Uses,
		TotalPlatformCost:     totals.DiscountTotal,
		TotalRevenueWithPromo: totals.RevenueTotal,
		ROIPercentage:         promos.CalculateROI(totals.RevenueTotal, totals.DiscountTotal),
	}, nil
}
