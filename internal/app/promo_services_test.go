//go:build unit
// +build unit

package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/catalog"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/promos"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/ratelimit"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var promoClock = time.Date(2025, 5, 12, 10, 0, 0, 0, time.UTC)

type promoFixture struct {
	promoRepo   *MockPromoRepository
	serviceRepo *MockServiceRepository
	bookingRepo *MockBookingRepository
	service     promos.PromoValidationService
}

func newPromoFixture(t *testing.T, limiter *ratelimit.KeyedLimiter) *promoFixture {
	f := &promoFixture{
		promoRepo:   new(MockPromoRepository),
		serviceRepo: new(MockServiceRepository),
		bookingRepo: new(MockBookingRepository),
	}
	svc, err := NewPromoValidationService(f.promoRepo, f.serviceRepo, f.bookingRepo, limiter, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	svc.(*promoValidationService).now = func() time.Time { return promoClock }
	f.service = svc
	return f
}

func activePromo() *promos.PromoCode {
	return &promos.PromoCode{
		ID:             uuid.NewString(),
		Code:           "SPRING20",
		DiscountType:   promos.DiscountPercentage,
		DiscountValue:  20,
		MaxUsesPerUser: 1,
		ValidFrom:      promoClock.Add(-24 * time.Hour),
		IsActive:       true,
	}
}

func validateInput() promos.ValidateInput {
	return promos.ValidateInput{
		Code:      " spring20 ",
		UserID:    uuid.NewString(),
		ServiceID: uuid.NewString(),
		Amount:    10000,
	}
}

func TestPromoValidationService_Validate_Success(t *testing.T) {
	f := newPromoFixture(t, nil)
	promo := activePromo()
	limit := int64(1500)
	promo.MaxDiscountAmount = &limit
	input := validateInput()

	f.promoRepo.On("GetByCode", mock.Anything, "SPRING20").Return(promo, nil)
	f.promoRepo.On("CountUserUsage", mock.Anything, promo.ID, input.UserID).Return(int64(0), nil)

	res, err := f.service.Validate(context.Background(), input)
	require.NoError(t, err)

	assert.True(t, res.Valid)
	assert.Equal(t, promo.ID, res.PromoID)
	assert.Equal(t, int64(1500), res.DiscountAmount)
	assert.Equal(t, int64(8500), res.FinalAmount)
	assert.Equal(t, int64(10000), res.OriginalAmount)
	require.NotNil(t, res.Summary)
	assert.Equal(t, float64(15), res.Summary.SavingsPercentage)
	assert.Equal(t, int64(1500), res.Summary.DiscountAmount)
	f.promoRepo.AssertExpectations(t)
	f.serviceRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	f.bookingRepo.AssertNotCalled(t, "CountActiveForClient", mock.Anything, mock.Anything)
}

func TestPromoValidationService_Validate_Rejections(t *testing.T) {
	categoryID := uuid.NewString()

	tests := []struct {
		name       string
		mutate     func(p *promos.PromoCode)
		userUses   int64
		category   *string
		hasBooking int64
		expected   string
	}{
		{"inactive", func(p *promos.PromoCode) { p.IsActive = false }, 0, nil, 0, promos.ErrCodeInactive},
		{"user limit", func(p *promos.PromoCode) {}, 1, nil, 0, promos.ErrCodeUserLimitReached},
		{"category mismatch", func(p *promos.PromoCode) { p.SpecificCategories = []string{categoryID} }, 0, nil, 0, promos.ErrCodeCategoryNotEligible},
		{"first booking only", func(p *promos.PromoCode) { p.FirstBookingOnly = true }, 0, nil, 2, promos.ErrCodeFirstBookingOnly},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newPromoFixture(t, nil)
			promo := activePromo()
			tt.mutate(promo)
			input := validateInput()

			f.promoRepo.On("GetByCode", mock.Anything, "SPRING20").Return(promo, nil)
			f.promoRepo.On("CountUserUsage", mock.Anything, promo.ID, input.UserID).Return(tt.userUses, nil).Maybe()
			f.serviceRepo.On("GetByID", mock.Anything, input.ServiceID).
				Return(&catalog.Service{ID: input.ServiceID, CategoryID: tt.category}, nil).Maybe()
			f.bookingRepo.On("CountActiveForClient", mock.Anything, input.UserID).Return(tt.hasBooking, nil).Maybe()

			res, err := f.service.Validate(context.Background(), input)
			require.NoError(t, err)
			assert.False(t, res.Valid)
			assert.Equal(t, tt.expected, res.ErrorCode)
			assert.Equal(t, input.Amount, res.FinalAmount)
		})
	}
}

func TestPromoValidationService_Validate_UnknownCode(t *testing.T) {
	f := newPromoFixture(t, nil)
	f.promoRepo.On("GetByCode", mock.Anything, "SPRING20").Return(nil, promos.ErrNotFound)

	res, err := f.service.Validate(context.Background(), validateInput())
	require.NoError(t, err)
	assert.Equal(t, promos.ErrCodeInvalidCode, res.ErrorCode)
}

func TestPromoValidationService_Validate_RepositoryError(t *testing.T) {
	f := newPromoFixture(t, nil)
	f.promoRepo.On("GetByCode", mock.Anything, "SPRING20").Return(nil, errors.New("connection reset"))

	_, err := f.service.Validate(context.Background(), validateInput())
	assert.Error(t, err)
}

func TestPromoValidationService_Validate_RateLimited(t *testing.T) {
	f := newPromoFixture(t, ratelimit.NewPerMinute(1))
	f.promoRepo.On("GetByCode", mock.Anything, "SPRING20").Return(nil, promos.ErrNotFound).Once()

	input := validateInput()
	first, err := f.service.Validate(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, promos.ErrCodeInvalidCode, first.ErrorCode)

	second, err := f.service.Validate(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, promos.ErrCodeRateLimitExceeded, second.ErrorCode)
	f.promoRepo.AssertNumberOfCalls(t, "GetByCode", 1)
}

func TestPromoValidationService_Check_IgnoresRateLimit(t *testing.T) {
	f := newPromoFixture(t, ratelimit.NewPerMinute(1))
	promo := activePromo()
	input := validateInput()
	f.promoRepo.On("GetByCode", mock.Anything, "SPRING20").Return(promo, nil)
	f.promoRepo.On("CountUserUsage", mock.Anything, promo.ID, input.UserID).Return(int64(0), nil)

	first, err := f.service.Validate(context.Background(), input)
	require.NoError(t, err)
	require.True(t, first.Valid)

	// the caller's only token is gone, pricing still sees the code as valid
	for i := 0; i < 3; i++ {
		checked, err := f.service.Check(context.Background(), input)
		require.NoError(t, err)
		assert.True(t, checked.Valid)
		assert.Equal(t, int64(2000), checked.DiscountAmount)
	}

	limited, err := f.service.Validate(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, promos.ErrCodeRateLimitExceeded, limited.ErrorCode)
}

func TestPromoValidationService_Check_InvalidInput(t *testing.T) {
	f := newPromoFixture(t, nil)
	input := validateInput()
	input.Code = ""

	_, err := f.service.Check(context.Background(), input)
	assert.Error(t, err)
	f.promoRepo.AssertNotCalled(t, "GetByCode", mock.Anything, mock.Anything)
}

func TestPromoValidationService_Validate_InvalidInput(t *testing.T) {
	f := newPromoFixture(t, nil)
	input := validateInput()
	input.Amount = 0

	_, err := f.service.Validate(context.Background(), input)
	assert.Error(t, err)
	f.promoRepo.AssertNotCalled(t, "GetByCode", mock.Anything, mock.Anything)
}

func TestPromoValidationService_RecordUsage(t *testing.T) {
	f := newPromoFixture(t, nil)
	usage := &promos.PromoCodeUsage{PromoCodeID: uuid.NewString(), BookingID: uuid.NewString(), UserID: uuid.NewString()}

	f.promoRepo.On("RecordUsage", mock.Anything, mock.MatchedBy(func(u *promos.PromoCodeUsage) bool {
		return u.ID != "" && u.UsedAt.Equal(promoClock)
	})).Return(nil)

	require.NoError(t, f.service.RecordUsage(context.Background(), usage))
	f.promoRepo.AssertExpectations(t)
}

func newPromoAdmin(t *testing.T) (*MockPromoRepository, promos.PromoAdminService) {
	repo := new(MockPromoRepository)
	svc, err := NewPromoAdminService(repo, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	svc.(*promoAdminService).now = func() time.Time { return promoClock }
	return repo, svc
}

func TestPromoAdminService_Create(t *testing.T) {
	repo, svc := newPromoAdmin(t)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*promos.PromoCode")).Return(nil)

	created, err := svc.Create(context.Background(), &promos.PromoCode{
		Code:          "welcome10",
		DiscountType:  promos.DiscountFixedAmount,
		DiscountValue: 1000,
		IsActive:      true,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "WELCOME10", created.Code)
	assert.Equal(t, promos.DefaultMaxUsesPerUser, created.MaxUsesPerUser)
	assert.Equal(t, promoClock, created.ValidFrom)
	repo.AssertExpectations(t)
}

func TestPromoAdminService_Create_Invalid(t *testing.T) {
	repo, svc := newPromoAdmin(t)

	_, err := svc.Create(context.Background(), &promos.PromoCode{
		Code:          "HALF",
		DiscountType:  promos.DiscountPercentage,
		DiscountValue: 150,
	})
	assert.Error(t, err)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPromoAdminService_Update_KeepsCounters(t *testing.T) {
	repo, svc := newPromoAdmin(t)
	existing := activePromo()
	existing.UsesCount = 7
	repo.On("GetByID", mock.Anything, existing.ID).Return(existing, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*promos.PromoCode")).Return(nil)

	updated, err := svc.Update(context.Background(), &promos.PromoCode{
		ID:            existing.ID,
		Code:          "spring25",
		DiscountType:  promos.DiscountPercentage,
		DiscountValue: 25,
		IsActive:      true,
		UsesCount:     0,
	})
	require.NoError(t, err)
	assert.Equal(t, 7, updated.UsesCount)
	assert.Equal(t, "SPRING25", updated.Code)
	assert.Equal(t, existing.ValidFrom, updated.ValidFrom)
}

func TestPromoAdminService_Delete(t *testing.T) {
	t.Run("unused code is deleted", func(t *testing.T) {
		repo, svc := newPromoAdmin(t)
		promo := activePromo()
		repo.On("GetByID", mock.Anything, promo.ID).Return(promo, nil)
		repo.On("DeleteByID", mock.Anything, promo.ID).Return(nil)

		assert.NoError(t, svc.Delete(context.Background(), promo.ID))
		repo.AssertExpectations(t)
	})

	t.Run("used code is refused", func(t *testing.T) {
		repo, svc := newPromoAdmin(t)
		promo := activePromo()
		promo.UsesCount = 1
		repo.On("GetByID", mock.Anything, promo.ID).Return(promo, nil)

		err := svc.Delete(context.Background(), promo.ID)
		assert.ErrorIs(t, err, promos.ErrInUse)
		repo.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
	})
}

func TestPromoAdminService_List(t *testing.T) {
	repo, svc := newPromoAdmin(t)
	query := promos.NewPromoQuery()
	query.PageSize = 2
	repo.On("List", mock.Anything, query).Return([]*promos.PromoCode{activePromo(), activePromo()}, int64(5), nil)

	page, err := svc.List(context.Background(), query)
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, 3, page.Page.Pages)
	assert.True(t, page.Page.HasNext())
}

func TestPromoAdminService_SetActive(t *testing.T) {
	repo, svc := newPromoAdmin(t)
	promo := activePromo()
	repo.On("GetByID", mock.Anything, promo.ID).Return(promo, nil)
	repo.On("Update", mock.Anything, promo).Return(nil)

	out, err := svc.SetActive(context.Background(), promo.ID, false)
	require.NoError(t, err)
	assert.False(t, out.IsActive)
}

func TestPromoAdminService_Analytics(t *testing.T) {
	repo, svc := newPromoAdmin(t)
	repo.On("CountActive", mock.Anything, promoClock).Return(int64(3), nil)
	repo.On("UsageTotals", mock.Anything).Return(&promos.UsageTotals{Uses: 12, DiscountTotal: 10000, RevenueTotal: 50000}, nil)

	a, err := svc.Analytics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), a.TotalActiveCodes)
	assert.Equal(t, int64(12), a.TotalUses)
	assert.InDelta(t, 400.0, a.ROIPercentage, 0.0001)
}
