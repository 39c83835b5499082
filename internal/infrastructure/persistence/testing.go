//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"
	"time"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/bookings"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/catalog"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/giftcards"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/images"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/markets"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/promos"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/translations"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/infrastructure/persistence/models"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/config"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Test constants
const (
	TestServicePrice    = 8000
	TestServiceDuration = 60
	TestTimezone        = "Europe/Paris"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB              *gorm.DB
	PromoRepo       promos.PromoRepository
	GiftCardRepo    giftcards.GiftCardRepository
	ServiceRepo     catalog.ServiceRepository
	AddressRepo     catalog.AddressRepository
	ProfileRepo     catalog.ProfileRepository
	ContractorRepo  catalog.ContractorRepository
	MarketRepo      markets.MarketRepository
	BookingRepo     bookings.BookingRepository
	RequestRepo     bookings.BookingRequestRepository
	TranslationRepo translations.TranslationRepository
	ImageRepo       images.ImageRepository
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}
		cleanupFunc = func() {
			// SQLite in-memory cleanup is automatic
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	err = db.AutoMigrate(models.All()...)
	require.NoError(t, err, "Failed to migrate schema")

	logger := testutil.SetupTestLogger(t)
	tc := &TestContext{DB: db}

	tc.PromoRepo, err = NewGormPromoRepository(db, logger)
	require.NoError(t, err, "Failed to create promo repository")
	tc.GiftCardRepo, err = NewGormGiftCardRepository(db, logger)
	require.NoError(t, err, "Failed to create gift card repository")
	tc.ServiceRepo, err = NewGormServiceRepository(db, logger)
	require.NoError(t, err, "Failed to create service repository")
	tc.AddressRepo, err = NewGormAddressRepository(db, logger)
	require.NoError(t, err, "Failed to create address repository")
	tc.ProfileRepo, err = NewGormProfileRepository(db, logger)
	require.NoError(t, err, "Failed to create profile repository")
	tc.ContractorRepo, err = NewGormContractorRepository(db, logger)
	require.NoError(t, err, "Failed to create contractor repository")
	tc.MarketRepo, err = NewGormMarketRepository(db, logger)
	require.NoError(t, err, "Failed to create market repository")
	tc.BookingRepo, err = NewGormBookingRepository(db, logger)
	require.NoError(t, err, "Failed to create booking repository")
	tc.RequestRepo, err = NewGormBookingRequestRepository(db, logger)
	require.NoError(t, err, "Failed to create booking request repository")
	tc.TranslationRepo, err = NewGormTranslationRepository(db, logger)
	require.NoError(t, err, "Failed to create translation repository")
	tc.ImageRepo, err = NewGormImageRepository(db, logger)
	require.NoError(t, err, "Failed to create image repository")

	return tc
}

// CreateTestService creates an active service with default price and duration
func CreateTestService(t *testing.T, name string) *catalog.Service {
	t.Helper()

	now := time.Now().UTC()
	return &catalog.Service{
		ID:                  uuid.NewString(),
		Name:                name,
		BasePrice:           TestServicePrice,
		BaseDurationMinutes: TestServiceDuration,
		IsActive:            true,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}

// CreateTestProfile creates a client profile for email
func CreateTestProfile(t *testing.T, email string) *catalog.ClientProfile {
	t.Helper()

	now := time.Now().UTC()
	return &catalog.ClientProfile{
		ID:        uuid.NewString(),
		Email:     email,
		FirstName: "Camille",
		LastName:  "Durand",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CreateTestAddress creates a Paris address of clientID
func CreateTestAddress(t *testing.T, clientID string) *catalog.Address {
	t.Helper()

	return &catalog.Address{
		ID:         uuid.NewString(),
		ClientID:   clientID,
		Street:     "12 rue de Rivoli",
		City:       "Paris",
		PostalCode: "75001",
		Country:    "France",
		CreatedAt:  time.Now().UTC(),
	}
}

// CreateTestContractor creates an active contractor offering serviceIDs
func CreateTestContractor(t *testing.T, name string, rating float64, serviceIDs ...string) *catalog.Contractor {
	t.Helper()

	now := time.Now().UTC()
	return &catalog.Contractor{
		ID:           uuid.NewString(),
		UserID:       uuid.NewString(),
		BusinessName: name,
		Slug:         strings.ToLower(strings.ReplaceAll(name, " ", "-")),
		Rating:       rating,
		IsActive:     true,
		ServiceIDs:   serviceIDs,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// CreateTestMarket creates an active EUR market
func CreateTestMarket(t *testing.T, code, name string) *markets.Market {
	t.Helper()

	now := time.Now().UTC()
	return &markets.Market{
		ID:                 uuid.NewString(),
		Name:               name,
		Code:               code,
		CurrencyCode:       "EUR",
		Timezone:           TestTimezone,
		SupportedLanguages: []string{"fr", "en"},
		IsActive:           true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// CreateTestPromo creates an active percentage promo code
func CreateTestPromo(t *testing.T, code string, percent int64) *promos.PromoCode {
	t.Helper()

	now := time.Now().UTC()
	return &promos.PromoCode{
		ID:             uuid.NewString(),
		Code:           code,
		DiscountType:   promos.DiscountPercentage,
		DiscountValue:  percent,
		MaxUsesPerUser: 1,
		ValidFrom:      now.Add(-time.Hour),
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// CreateTestGiftCard creates an active gift card holding balance cents
func CreateTestGiftCard(t *testing.T, code string, balance int64) *giftcards.GiftCard {
	t.Helper()

	now := time.Now().UTC()
	return &giftcards.GiftCard{
		ID:             uuid.NewString(),
		Code:           code,
		InitialAmount:  balance,
		CurrentBalance: balance,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// CreateTestBooking creates a pending booking of service at scheduledAt
func CreateTestBooking(t *testing.T, clientID string, service *catalog.Service, address *catalog.Address, contractorID *string, scheduledAt time.Time) *bookings.Booking {
	t.Helper()

	now := time.Now().UTC()
	return &bookings.Booking{
		ID:                    uuid.NewString(),
		ClientID:              clientID,
		ContractorID:          contractorID,
		ServiceID:             service.ID,
		AddressID:             address.ID,
		ScheduledAt:           scheduledAt.UTC(),
		BookingTimezone:       TestTimezone,
		DurationMinutes:       service.BaseDurationMinutes,
		Status:                bookings.StatusPending,
		PaymentStatus:         bookings.PaymentAuthorized,
		ServiceAmountOriginal: service.BasePrice,
		FinalAmount:           service.BasePrice,
		Address: bookings.AddressSnapshot{
			Street:     address.Street,
			City:       address.City,
			PostalCode: address.PostalCode,
			Country:    address.Country,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CreateTestImage creates image metadata for an entity
func CreateTestImage(t *testing.T, entityType, entityID string, order int) *images.ServiceImage {
	t.Helper()

	id := uuid.NewString()
	storagePath := images.StoragePath(entityType, entityID, id, "png")
	now := time.Now().UTC()
	return &images.ServiceImage{
		ID:           id,
		EntityType:   entityType,
		EntityID:     entityID,
		StoragePath:  storagePath,
		URL:          "/api/v1/images/" + storagePath,
		DisplayOrder: order,
		FileSize:     2048,
		MimeType:     "image/png",
		UploadedBy:   uuid.NewString(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
