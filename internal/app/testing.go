//go:build integration
// +build integration

package app

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/bookings"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/catalog"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/giftcards"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/markets"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/payments"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/promos"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/infrastructure/persistence"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/config"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/ratelimit"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	PromoValidation promos.PromoValidationService
	PromoAdmin      promos.PromoAdminService
	GiftCards       giftcards.GiftCardService
	Contractors     catalog.ContractorService
	Markets         markets.MarketService
	PaymentIntents  payments.PaymentIntentService
	Bookings        bookings.BookingService
	Requests        bookings.BookingRequestService
	Addresses       catalog.AddressService
	Profiles        catalog.ProfileService

	// Infrastructure
	Gateway   *FakeGateway
	DBContext *persistence.TestContext
}

// SetupTestServices wires every service over a real database and an in-memory payment gateway
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()
	return SetupTestServicesWithLimiter(t, dbType, nil)
}

// SetupTestServicesWithLimiter is SetupTestServices with promo validation rate limited by limiter
func SetupTestServicesWithLimiter(t *testing.T, dbType string, limiter *ratelimit.KeyedLimiter) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)
	db := persistence.SetupTestDB(t, dbType)
	gateway := NewFakeGateway()

	promoValidation, err := NewPromoValidationService(db.PromoRepo, db.ServiceRepo, db.BookingRepo, limiter, logger)
	require.NoError(t, err, "Failed to create PromoValidationService")

	promoAdmin, err := NewPromoAdminService(db.PromoRepo, logger)
	require.NoError(t, err, "Failed to create PromoAdminService")

	giftCards, err := NewGiftCardService(db.GiftCardRepo, logger)
	require.NoError(t, err, "Failed to create GiftCardService")

	contractors, err := NewContractorService(db.ContractorRepo, db.ServiceRepo, logger)
	require.NoError(t, err, "Failed to create ContractorService")

	marketService, err := NewMarketService(db.MarketRepo, db.ContractorRepo, db.ServiceRepo, logger)
	require.NoError(t, err, "Failed to create MarketService")

	addresses, err := NewAddressService(db.AddressRepo, marketService, logger)
	require.NoError(t, err, "Failed to create AddressService")

	profiles, err := NewProfileService(db.ProfileRepo, logger)
	require.NoError(t, err, "Failed to create ProfileService")

	paymentIntents, err := NewPaymentIntentService(db.ServiceRepo, db.ProfileRepo, promoValidation, giftCards, gateway, logger)
	require.NoError(t, err, "Failed to create PaymentIntentService")

	settings := &config.BookingSettings{RequestExpirySweep: time.Minute, RequestLeadTime: 24 * time.Hour}
	bookingService, err := NewBookingService(
		db.BookingRepo, db.RequestRepo, db.ServiceRepo, db.AddressRepo, db.ProfileRepo,
		contractors, promoValidation, giftCards, gateway, nil, settings, logger,
	)
	require.NoError(t, err, "Failed to create BookingService")

	requests, err := NewBookingRequestService(db.RequestRepo, db.BookingRepo, gateway, nil, logger)
	require.NoError(t, err, "Failed to create BookingRequestService")

	return &TestServices{
		PromoValidation: promoValidation,
		PromoAdmin:      promoAdmin,
		GiftCards:       giftCards,
		Contractors:     contractors,
		Markets:         marketService,
		PaymentIntents:  paymentIntents,
		Bookings:        bookingService,
		Requests:        requests,
		Addresses:       addresses,
		Profiles:        profiles,
		Gateway:         gateway,
		DBContext:       db,
	}
}

// FakeGateway is an in-memory PaymentGateway recording intent states
type FakeGateway struct {
	mu      sync.Mutex
	seq     int
	Intents map[string]*payments.Intent
}

// NewFakeGateway creates an empty FakeGateway
func NewFakeGateway() *FakeGateway {
	return &FakeGateway{Intents: make(map[string]*payments.Intent)}
}

func (g *FakeGateway) next(prefix string) string {
	g.seq++
	return fmt.Sprintf("%s_%d", prefix, g.seq)
}

func (g *FakeGateway) CreatePaymentIntent(_ context.Context, params *payments.CreateIntentParams) (*payments.Intent, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.next("pi")
	intent := &payments.Intent{
		ID:           id,
		ClientSecret: id + "_secret",
		Amount:       params.Amount,
		Status:       payments.IntentRequiresCapture,
		Metadata:     params.Metadata,
	}
	g.Intents[id] = intent
	return intent, nil
}

func (g *FakeGateway) GetPaymentIntent(_ context.Context, intentID string) (*payments.Intent, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	intent, ok := g.Intents[intentID]
	if !ok {
		return nil, fmt.Errorf("%w: no such intent %s", payments.ErrGateway, intentID)
	}
	copied := *intent
	return &copied, nil
}

func (g *FakeGateway) CapturePaymentIntent(_ context.Context, intentID string, _ *int64) (*payments.Intent, error) {
	return g.transition(intentID, payments.IntentRequiresCapture, payments.IntentSucceeded)
}

func (g *FakeGateway) CancelPaymentIntent(_ context.Context, intentID string) (*payments.Intent, error) {
	return g.transition(intentID, payments.IntentRequiresCapture, payments.IntentCanceled)
}

func (g *FakeGateway) RefundPaymentIntent(_ context.Context, intentID string, _ *int64, _ string) (*payments.Refund, error) {
	intent, err := g.transition(intentID, payments.IntentSucceeded, "refunded")
	if err != nil {
		return nil, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return &payments.Refund{ID: g.next("re"), Amount: intent.Amount}, nil
}

func (g *FakeGateway) UpdateMetadata(_ context.Context, intentID string, _ map[string]string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.Intents[intentID]; !ok {
		return fmt.Errorf("%w: no such intent %s", payments.ErrGateway, intentID)
	}
	return nil
}

func (g *FakeGateway) GetOrCreateCustomer(_ context.Context, email, _, _ string) (*payments.Customer, error) {
	return &payments.Customer{ID: "cus_" + email, Email: email}, nil
}

// Status returns the state of an intent, or "" when unknown
func (g *FakeGateway) Status(intentID string) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if intent, ok := g.Intents[intentID]; ok {
		return intent.Status
	}
	return ""
}

func (g *FakeGateway) transition(intentID, from, to string) (*payments.Intent, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	intent, ok := g.Intents[intentID]
	if !ok {
		return nil, fmt.Errorf("%w: no such intent %s", payments.ErrGateway, intentID)
	}
	if intent.Status != from {
		return nil, fmt.Errorf("%w: intent %s is %s", payments.ErrGateway, intentID, intent.Status)
	}
	intent.Status = to
	return intent, nil
}
