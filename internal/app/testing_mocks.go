//go:build unit
// +build unit

package app

import (
	"context"
	"io"
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

// MockPromoRepository is a mock implementation of PromoRepository
type MockPromoRepository struct {
	mock.Mock
}

func (m *MockPromoRepository) Create(ctx context.Context, promo *promos.PromoCode) error {
	return m.Called(ctx, promo).Error(0)
}

func (m *MockPromoRepository) GetByID(ctx context.Context, id string) (*promos.PromoCode, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*promos.PromoCode), args.Error(1)
}

func (m *MockPromoRepository) GetByCode(ctx context.Context, code string) (*promos.PromoCode, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*promos.PromoCode), args.Error(1)
}

func (m *MockPromoRepository) List(ctx context.Context, query *promos.PromoQuery) ([]*promos.PromoCode, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*promos.PromoCode), args.Get(1).(int64), args.Error(2)
}

func (m *MockPromoRepository) Update(ctx context.Context, promo *promos.PromoCode) error {
	return m.Called(ctx, promo).Error(0)
}

func (m *MockPromoRepository) DeleteByID(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockPromoRepository) RecordUsage(ctx context.Context, usage *promos.PromoCodeUsage) error {
	return m.Called(ctx, usage).Error(0)
}

func (m *MockPromoRepository) CountUserUsage(ctx context.Context, promoID, userID string) (int64, error) {
	args := m.Called(ctx, promoID, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPromoRepository) ListUsage(ctx context.Context, promoID string) ([]*promos.PromoCodeUsage, error) {
	args := m.Called(ctx, promoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*promos.PromoCodeUsage), args.Error(1)
}

func (m *MockPromoRepository) CountActive(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPromoRepository) UsageTotals(ctx context.Context) (*promos.UsageTotals, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*promos.UsageTotals), args.Error(1)
}

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

// MockGiftCardRepository is a mock implementation of GiftCardRepository
type MockGiftCardRepository struct {
	mock.Mock
}

func (m *MockGiftCardRepository) Create(ctx context.Context, card *giftcards.GiftCard) error {
	return m.Called(ctx, card).Error(0)
}

func (m *MockGiftCardRepository) GetByID(ctx context.Context, id string) (*giftcards.GiftCard, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*giftcards.GiftCard), args.Error(1)
}

func (m *MockGiftCardRepository) GetByCode(ctx context.Context, code string) (*giftcards.GiftCard, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*giftcards.GiftCard), args.Error(1)
}

func (m *MockGiftCardRepository) Debit(ctx context.Context, txn *giftcards.Transaction) error {
	return m.Called(ctx, txn).Error(0)
}

func (m *MockGiftCardRepository) ListTransactions(ctx context.Context, giftCardID string) ([]*giftcards.Transaction, error) {
	args := m.Called(ctx, giftCardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*giftcards.Transaction), args.Error(1)
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

// MockServiceRepository is a mock implementation of ServiceRepository
type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) Create(ctx context.Context, service *catalog.Service) error {
	return m.Called(ctx, service).Error(0)
}

func (m *MockServiceRepository) GetByID(ctx context.Context, id string) (*catalog.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Service), args.Error(1)
}

func (m *MockServiceRepository) CountAvailableInMarket(ctx context.Context, marketID string) (int64, error) {
	args := m.Called(ctx, marketID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockServiceRepository) SetMarketAvailability(ctx context.Context, serviceID, marketID string, available bool) error {
	return m.Called(ctx, serviceID, marketID, available).Error(0)
}

// MockAddressRepository is a mock implementation of AddressRepository
type MockAddressRepository struct {
	mock.Mock
}

func (m *MockAddressRepository) Create(ctx context.Context, address *catalog.Address) error {
	return m.Called(ctx, address).Error(0)
}

func (m *MockAddressRepository) GetByID(ctx context.Context, id string) (*catalog.Address, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Address), args.Error(1)
}

func (m *MockAddressRepository) ListByClient(ctx context.Context, clientID string) ([]*catalog.Address, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Address), args.Error(1)
}

func (m *MockAddressRepository) Update(ctx context.Context, address *catalog.Address) error {
	return m.Called(ctx, address).Error(0)
}

// MockProfileRepository is a mock implementation of ProfileRepository
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Create(ctx context.Context, profile *catalog.ClientProfile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockProfileRepository) GetByID(ctx context.Context, id string) (*catalog.ClientProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.ClientProfile), args.Error(1)
}

func (m *MockProfileRepository) Update(ctx context.Context, profile *catalog.ClientProfile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockProfileRepository) SetStripeCustomerID(ctx context.Context, id, customerID string) error {
	return m.Called(ctx, id, customerID).Error(0)
}

// MockContractorRepository is a mock implementation of ContractorRepository
type MockContractorRepository struct {
	mock.Mock
}

func (m *MockContractorRepository) Create(ctx context.Context, contractor *catalog.Contractor) error {
	return m.Called(ctx, contractor).Error(0)
}

func (m *MockContractorRepository) GetByID(ctx context.Context, id string) (*catalog.Contractor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Contractor), args.Error(1)
}

func (m *MockContractorRepository) GetByUserID(ctx context.Context, userID string) (*catalog.Contractor, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Contractor), args.Error(1)
}

func (m *MockContractorRepository) ListActiveOffering(ctx context.Context, serviceID string) ([]*catalog.Contractor, error) {
	args := m.Called(ctx, serviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Contractor), args.Error(1)
}

func (m *MockContractorRepository) BusyContractorIDs(ctx context.Context, contractorIDs []string, slot catalog.Slot, excludeBookingID string) ([]string, error) {
	args := m.Called(ctx, contractorIDs, slot, excludeBookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockContractorRepository) CountByMarket(ctx context.Context, marketID string, activeOnly bool) (int64, error) {
	args := m.Called(ctx, marketID, activeOnly)
	return args.Get(0).(int64), args.Error(1)
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

// MockMarketRepository is a mock implementation of MarketRepository
type MockMarketRepository struct {
	mock.Mock
}

func (m *MockMarketRepository) Create(ctx context.Context, market *markets.Market) error {
	return m.Called(ctx, market).Error(0)
}

func (m *MockMarketRepository) GetByID(ctx context.Context, id string) (*markets.Market, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*markets.Market), args.Error(1)
}

func (m *MockMarketRepository) GetByCode(ctx context.Context, code string) (*markets.Market, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*markets.Market), args.Error(1)
}

func (m *MockMarketRepository) List(ctx context.Context, query *markets.Query) ([]*markets.Market, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*markets.Market), args.Get(1).(int64), args.Error(2)
}

func (m *MockMarketRepository) Update(ctx context.Context, market *markets.Market) error {
	return m.Called(ctx, market).Error(0)
}

func (m *MockMarketRepository) DeleteByID(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// MockTranslationRepository is a mock implementation of TranslationRepository
type MockTranslationRepository struct {
	mock.Mock
}

func (m *MockTranslationRepository) Upsert(ctx context.Context, translation *translations.Translation) (*translations.Translation, error) {
	args := m.Called(ctx, translation)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*translations.Translation), args.Error(1)
}

func (m *MockTranslationRepository) ListByEntity(ctx context.Context, entityType, entityID string) ([]*translations.Translation, error) {
	args := m.Called(ctx, entityType, entityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*translations.Translation), args.Error(1)
}

func (m *MockTranslationRepository) DeleteByID(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// MockTranslator is a mock implementation of Translator
type MockTranslator struct {
	mock.Mock
}

func (m *MockTranslator) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	args := m.Called(ctx, text, sourceLang, targetLang)
	return args.String(0), args.Error(1)
}

// MockImageRepository is a mock implementation of ImageRepository
type MockImageRepository struct {
	mock.Mock
}

func (m *MockImageRepository) Create(ctx context.Context, image *images.ServiceImage) error {
	return m.Called(ctx, image).Error(0)
}

func (m *MockImageRepository) GetByID(ctx context.Context, id string) (*images.ServiceImage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*images.ServiceImage), args.Error(1)
}

func (m *MockImageRepository) ListLive(ctx context.Context, entityType, entityID string) ([]*images.ServiceImage, error) {
	args := m.Called(ctx, entityType, entityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*images.ServiceImage), args.Error(1)
}

func (m *MockImageRepository) CountLive(ctx context.Context, entityType, entityID string) (int64, error) {
	args := m.Called(ctx, entityType, entityID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockImageRepository) ClearPrimary(ctx context.Context, entityType, entityID, keepID string) error {
	return m.Called(ctx, entityType, entityID, keepID).Error(0)
}

func (m *MockImageRepository) UpdateOrder(ctx context.Context, ids []string) error {
	return m.Called(ctx, ids).Error(0)
}

func (m *MockImageRepository) UpdateAltText(ctx context.Context, id, altText string) error {
	return m.Called(ctx, id, altText).Error(0)
}

func (m *MockImageRepository) SoftDelete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockImageRepository) GetByStoragePath(ctx context.Context, storagePath string) (*images.ServiceImage, error) {
	args := m.Called(ctx, storagePath)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*images.ServiceImage), args.Error(1)
}

// MockImageConnector is a mock implementation of ImageConnector
type MockImageConnector struct {
	mock.Mock
}

func (m *MockImageConnector) Upload(ctx context.Context, storagePath string, content io.Reader, contentType string) error {
	return m.Called(ctx, storagePath, content, contentType).Error(0)
}

func (m *MockImageConnector) Download(ctx context.Context, storagePath string) (io.ReadCloser, error) {
	args := m.Called(ctx, storagePath)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

func (m *MockImageConnector) Delete(ctx context.Context, storagePath string) error {
	return m.Called(ctx, storagePath).Error(0)
}

// MockAltTextGenerator is a mock implementation of AltTextGenerator
type MockAltTextGenerator struct {
	mock.Mock
}

func (m *MockAltTextGenerator) Describe(ctx context.Context, image []byte, mimeType, entityName string) (string, error) {
	args := m.Called(ctx, image, mimeType, entityName)
	return args.String(0), args.Error(1)
}

// MockEntityNameResolver is a mock implementation of EntityNameResolver
type MockEntityNameResolver struct {
	mock.Mock
}

func (m *MockEntityNameResolver) EntityName(ctx context.Context, entityType, entityID string) (string, error) {
	args := m.Called(ctx, entityType, entityID)
	return args.String(0), args.Error(1)
}

// MockPaymentGateway is a mock implementation of PaymentGateway
type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) CreatePaymentIntent(ctx context.Context, params *payments.CreateIntentParams) (*payments.Intent, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payments.Intent), args.Error(1)
}

func (m *MockPaymentGateway) GetPaymentIntent(ctx context.Context, intentID string) (*payments.Intent, error) {
	args := m.Called(ctx, intentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payments.Intent), args.Error(1)
}

func (m *MockPaymentGateway) CapturePaymentIntent(ctx context.Context, intentID string, amount *int64) (*payments.Intent, error) {
	args := m.Called(ctx, intentID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payments.Intent), args.Error(1)
}

func (m *MockPaymentGateway) CancelPaymentIntent(ctx context.Context, intentID string) (*payments.Intent, error) {
	args := m.Called(ctx, intentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payments.Intent), args.Error(1)
}

func (m *MockPaymentGateway) RefundPaymentIntent(ctx context.Context, intentID string, amount *int64, reason string) (*payments.Refund, error) {
	args := m.Called(ctx, intentID, amount, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payments.Refund), args.Error(1)
}

func (m *MockPaymentGateway) UpdateMetadata(ctx context.Context, intentID string, metadata map[string]string) error {
	return m.Called(ctx, intentID, metadata).Error(0)
}

func (m *MockPaymentGateway) GetOrCreateCustomer(ctx context.Context, email, name, userID string) (*payments.Customer, error) {
	args := m.Called(ctx, email, name, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payments.Customer), args.Error(1)
}

// MockBookingRepository is a mock implementation of BookingRepository
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *bookings.Booking) error {
	return m.Called(ctx, booking).Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id string) (*bookings.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bookings.Booking), args.Error(1)
}

func (m *MockBookingRepository) List(ctx context.Context, query *bookings.Query) ([]*bookings.Booking, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*bookings.Booking), args.Get(1).(int64), args.Error(2)
}

func (m *MockBookingRepository) Update(ctx context.Context, booking *bookings.Booking) error {
	return m.Called(ctx, booking).Error(0)
}

func (m *MockBookingRepository) CountActiveForClient(ctx context.Context, clientID string) (int64, error) {
	args := m.Called(ctx, clientID)
	return args.Get(0).(int64), args.Error(1)
}

// MockBookingRequestRepository is a mock implementation of BookingRequestRepository
type MockBookingRequestRepository struct {
	mock.Mock
}

func (m *MockBookingRequestRepository) Create(ctx context.Context, request *bookings.BookingRequest) error {
	return m.Called(ctx, request).Error(0)
}

func (m *MockBookingRequestRepository) GetByID(ctx context.Context, id string) (*bookings.BookingRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bookings.BookingRequest), args.Error(1)
}

func (m *MockBookingRequestRepository) GetPendingByBookingID(ctx context.Context, bookingID string) (*bookings.BookingRequest, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bookings.BookingRequest), args.Error(1)
}

func (m *MockBookingRequestRepository) ListByContractor(ctx context.Context, contractorID string, status bookings.RequestStatus) ([]*bookings.BookingRequest, error) {
	args := m.Called(ctx, contractorID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*bookings.BookingRequest), args.Error(1)
}

func (m *MockBookingRequestRepository) ListExpired(ctx context.Context, now time.Time) ([]*bookings.BookingRequest, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*bookings.BookingRequest), args.Error(1)
}

func (m *MockBookingRequestRepository) Update(ctx context.Context, request *bookings.BookingRequest) error {
	return m.Called(ctx, request).Error(0)
}

func (m *MockBookingRequestRepository) UpdateWithBooking(ctx context.Context, request *bookings.BookingRequest, booking *bookings.Booking) error {
	return m.Called(ctx, request, booking).Error(0)
}

// MockEventPublisher is a mock implementation of EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, routingKey string, event *bookings.Event) error {
	return m.Called(ctx, routingKey, event).Error(0)
}

// MockNotifier is a mock implementation of Notifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) SendEmail(ctx context.Context, to, subject, body string) error {
	return m.Called(ctx, to, subject, body).Error(0)
}

func (m *MockNotifier) SendSMS(ctx context.Context, to, body string) error {
	return m.Called(ctx, to, body).Error(0)
}
