//go:build unit
// +build unit

package v1

import (
	"context"
	"io"
	"mime/multipart"
	"time"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/bookings"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/catalog"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/giftcards"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/images"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/markets"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/payments"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/promos"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/translations"

	"github.com/stretchr/testify/mock"
)

// MockPromoValidationService is a mock implementation of PromoValidationService
type MockPromoValidationService struct {
	mock.Mock
}

func (m *MockPromoValidationService) Validate(ctx context.Context, input promos.ValidateInput) (*promos.Validation, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*promos.Validation), args.Error(1)
}

func (m *MockPromoValidationService) Check(ctx context.Context, input promos.ValidateInput) (*promos.Validation, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*promos.Validation), args.Error(1)
}

func (m *MockPromoValidationService) RecordUsage(ctx context.Context, usage *promos.PromoCodeUsage) error {
	return m.Called(ctx, usage).Error(0)
}

// MockPromoAdminService is a mock implementation of PromoAdminService
type MockPromoAdminService struct {
	mock.Mock
}

func (m *MockPromoAdminService) Create(ctx context.Context, promo *promos.PromoCode) (*promos.PromoCode, error) {
	args := m.Called(ctx, promo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*promos.PromoCode), args.Error(1)
}

func (m *MockPromoAdminService) Update(ctx context.Context, promo *promos.PromoCode) (*promos.PromoCode, error) {
	args := m.Called(ctx, promo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*promos.PromoCode), args.Error(1)
}

func (m *MockPromoAdminService) GetByID(ctx context.Context, id string) (*promos.PromoCode, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*promos.PromoCode), args.Error(1)
}

func (m *MockPromoAdminService) List(ctx context.Context, query *promos.PromoQuery) (*promos.PromoPage, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*promos.PromoPage), args.Error(1)
}

func (m *MockPromoAdminService) SetActive(ctx context.Context, id string, active bool) (*promos.PromoCode, error) {
	args := m.Called(ctx, id, active)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*promos.PromoCode), args.Error(1)
}

func (m *MockPromoAdminService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockPromoAdminService) ListUsage(ctx context.Context, id string) ([]*promos.PromoCodeUsage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*promos.PromoCodeUsage), args.Error(1)
}

func (m *MockPromoAdminService) Analytics(ctx context.Context) (*promos.Analytics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*promos.Analytics), args.Error(1)
}

// MockGiftCardService is a mock implementation of GiftCardService
type MockGiftCardService struct {
	mock.Mock
}

func (m *MockGiftCardService) Validate(ctx context.Context, code, userEmail string, amount int64) (*giftcards.Validation, error) {
	args := m.Called(ctx, code, userEmail, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*giftcards.Validation), args.Error(1)
}

func (m *MockGiftCardService) Apply(ctx context.Context, giftCardID, bookingID, userID string, amount int64) error {
	return m.Called(ctx, giftCardID, bookingID, userID, amount).Error(0)
}

// MockContractorService is a mock implementation of ContractorService
type MockContractorService struct {
	mock.Mock
}

func (m *MockContractorService) AvailableContractors(ctx context.Context, query *catalog.AvailabilityQuery) (*catalog.Availability, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Availability), args.Error(1)
}

func (m *MockContractorService) IsAvailable(ctx context.Context, contractorID string, slot catalog.Slot, excludeBookingID string) (bool, error) {
	args := m.Called(ctx, contractorID, slot, excludeBookingID)
	return args.Bool(0), args.Error(1)
}

func (m *MockContractorService) GetByUserID(ctx context.Context, userID string) (*catalog.Contractor, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Contractor), args.Error(1)
}

// MockMarketService is a mock implementation of MarketService
type MockMarketService struct {
	mock.Mock
}

func (m *MockMarketService) List(ctx context.Context, query *markets.Query) (*markets.MarketPage, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*markets.MarketPage), args.Error(1)
}

func (m *MockMarketService) GetByID(ctx context.Context, id string) (*markets.Market, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*markets.Market), args.Error(1)
}

func (m *MockMarketService) Create(ctx context.Context, market *markets.Market) (*markets.Market, error) {
	args := m.Called(ctx, market)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*markets.Market), args.Error(1)
}

func (m *MockMarketService) Update(ctx context.Context, id string, patch *markets.Patch) (*markets.Market, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*markets.Market), args.Error(1)
}

func (m *MockMarketService) Delete(ctx context.Context, id string, hard bool) error {
	return m.Called(ctx, id, hard).Error(0)
}

func (m *MockMarketService) Stats(ctx context.Context, id string) (*markets.Stats, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*markets.Stats), args.Error(1)
}

func (m *MockMarketService) ListActive(ctx context.Context) ([]*markets.Market, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*markets.Market), args.Error(1)
}

// MockTranslationService is a mock implementation of TranslationService
type MockTranslationService struct {
	mock.Mock
}

func (m *MockTranslationService) Upsert(ctx context.Context, entityType string, inputs []translations.Input) ([]*translations.Translation, error) {
	args := m.Called(ctx, entityType, inputs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*translations.Translation), args.Error(1)
}

func (m *MockTranslationService) ListByEntity(ctx context.Context, entityType, entityID string) ([]*translations.Translation, error) {
	args := m.Called(ctx, entityType, entityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*translations.Translation), args.Error(1)
}

func (m *MockTranslationService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockTranslationService) Translate(ctx context.Context, req *translations.TranslateRequest) (*translations.TranslateResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*translations.TranslateResult), args.Error(1)
}

// MockImageService is a mock implementation of ImageService
type MockImageService struct {
	mock.Mock
}

func (m *MockImageService) Upload(ctx context.Context, file *multipart.FileHeader, req *images.UploadRequest) (*images.ServiceImage, error) {
	args := m.Called(ctx, file, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*images.ServiceImage), args.Error(1)
}

func (m *MockImageService) List(ctx context.Context, entityType, entityID string) ([]*images.ServiceImage, error) {
	args := m.Called(ctx, entityType, entityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*images.ServiceImage), args.Error(1)
}

func (m *MockImageService) Reorder(ctx context.Context, req *images.ReorderRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *MockImageService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockImageService) Open(ctx context.Context, storagePath string) (io.ReadCloser, string, error) {
	args := m.Called(ctx, storagePath)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.String(1), args.Error(2)
}

func (m *MockImageService) GenerateAltText(ctx context.Context, req *images.AltTextRequest) (*images.AltTextResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*images.AltTextResult), args.Error(1)
}

// MockPaymentIntentService is a mock implementation of PaymentIntentService
type MockPaymentIntentService struct {
	mock.Mock
}

func (m *MockPaymentIntentService) CreatePaymentIntent(ctx context.Context, req *payments.IntentRequest) (*payments.IntentResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payments.IntentResult), args.Error(1)
}

// MockBookingService is a mock implementation of BookingService
type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) Create(ctx context.Context, input *bookings.CreateInput) (*bookings.Booking, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bookings.Booking), args.Error(1)
}

func (m *MockBookingService) GetByID(ctx context.Context, id string, actor bookings.Actor) (*bookings.Booking, error) {
	args := m.Called(ctx, id, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bookings.Booking), args.Error(1)
}

func (m *MockBookingService) List(ctx context.Context, query *bookings.Query, actor bookings.Actor) (*bookings.BookingPage, error) {
	args := m.Called(ctx, query, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bookings.BookingPage), args.Error(1)
}

func (m *MockBookingService) Cancel(ctx context.Context, id string, actor bookings.Actor, reason string) (*bookings.CancelResult, error) {
	args := m.Called(ctx, id, actor, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bookings.CancelResult), args.Error(1)
}

func (m *MockBookingService) CapturePayment(ctx context.Context, id string, actor bookings.Actor, amount *int64) (*bookings.Booking, error) {
	args := m.Called(ctx, id, actor, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bookings.Booking), args.Error(1)
}

func (m *MockBookingService) MarkCompleted(ctx context.Context, id string, actor bookings.Actor) (*bookings.Booking, error) {
	args := m.Called(ctx, id, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bookings.Booking), args.Error(1)
}

func (m *MockBookingService) Confirm(ctx context.Context, id string, actor bookings.Actor) (*bookings.Booking, error) {
	args := m.Called(ctx, id, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bookings.Booking), args.Error(1)
}

func (m *MockBookingService) AssignContractor(ctx context.Context, id, contractorID string) (*bookings.Booking, error) {
	args := m.Called(ctx, id, contractorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bookings.Booking), args.Error(1)
}

// MockBookingRequestService is a mock implementation of BookingRequestService
type MockBookingRequestService struct {
	mock.Mock
}

func (m *MockBookingRequestService) ListForContractor(ctx context.Context, contractorID string, status bookings.RequestStatus) ([]*bookings.RequestWithBooking, error) {
	args := m.Called(ctx, contractorID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*bookings.RequestWithBooking), args.Error(1)
}

func (m *MockBookingRequestService) Accept(ctx context.Context, requestID string, actor bookings.Actor) (*bookings.RequestWithBooking, error) {
	args := m.Called(ctx, requestID, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bookings.RequestWithBooking), args.Error(1)
}

func (m *MockBookingRequestService) Refuse(ctx context.Context, requestID string, actor bookings.Actor, reason string, message *string) (*bookings.RequestWithBooking, error) {
	args := m.Called(ctx, requestID, actor, reason, message)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bookings.RequestWithBooking), args.Error(1)
}

func (m *MockBookingRequestService) ExpirePending(ctx context.Context, now time.Time) (int, error) {
	args := m.Called(ctx, now)
	return args.Int(0), args.Error(1)
}

// MockAddressService is a mock implementation of AddressService
type MockAddressService struct {
	mock.Mock
}

func (m *MockAddressService) List(ctx context.Context, clientID string) ([]*catalog.Address, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Address), args.Error(1)
}

func (m *MockAddressService) Create(ctx context.Context, clientID string, input *catalog.AddressInput) (*catalog.Address, error) {
	args := m.Called(ctx, clientID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Address), args.Error(1)
}

func (m *MockAddressService) Update(ctx context.Context, id, clientID string, input *catalog.AddressInput) (*catalog.Address, error) {
	args := m.Called(ctx, id, clientID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Address), args.Error(1)
}

func (m *MockAddressService) Delete(ctx context.Context, id, clientID string) error {
	return m.Called(ctx, id, clientID).Error(0)
}

// MockProfileService is a mock implementation of ProfileService
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) Get(ctx context.Context, userID string) (*catalog.ClientProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.ClientProfile), args.Error(1)
}

func (m *MockProfileService) Upsert(ctx context.Context, input *catalog.ProfileInput) (*catalog.ClientProfile, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.ClientProfile), args.Error(1)
}
