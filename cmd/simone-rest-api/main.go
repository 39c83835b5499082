// cmd/simone-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	v1 "github.com/maebaconsulting/simonebeauty-sub003/internal/api/rest/v1"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/app"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/bookings"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/catalog"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/giftcards"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/images"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/markets"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/payments"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/promos"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/translations"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/infrastructure/ai"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/infrastructure/connector"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/infrastructure/messaging"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/infrastructure/notifier"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/infrastructure/payment"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/infrastructure/persistence"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/infrastructure/persistence/models"
	translator "github.com/maebaconsulting/simonebeauty-sub003/internal/infrastructure/translation"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/auth"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/config"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/logger"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/ratelimit"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/tracing"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	shutdownTracer, err := tracing.InitTracer(context.Background(), &restConfig.Tracing)
	if err != nil {
		return fmt.Errorf("failed to initialize tracing: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracer(ctx); err != nil {
			log.Warn("tracer shutdown failed", "error", err)
		}
	}()

	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer deps.close(log)

	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	db        *gorm.DB
	services  *v1.Services
	tokens    *auth.TokenManager
	consumer  *messaging.NotificationConsumer
	publisher *messaging.AMQPPublisher
}

func (d *appDependencies) close(log logger.Logger) {
	if d.consumer != nil {
		d.consumer.Close()
	}
	if d.publisher != nil {
		if err := d.publisher.Close(); err != nil {
			log.Warn("publisher close failed", "error", err)
		}
	}
	if err := persistence.CloseDB(d.db); err != nil {
		log.Warn("database close failed", "error", err)
	}
}

type repositories struct {
	promos       promos.PromoRepository
	giftCards    giftcards.GiftCardRepository
	bookings     bookings.BookingRepository
	requests     bookings.BookingRequestRepository
	services     catalog.ServiceRepository
	addresses    catalog.AddressRepository
	profiles     catalog.ProfileRepository
	contractors  catalog.ContractorRepository
	markets      markets.MarketRepository
	translations translations.TranslationRepository
	images       images.ImageRepository
}

type integrations struct {
	images     images.ImageConnector
	gateway    payments.PaymentGateway
	translator translations.Translator
	altText    images.AltTextGenerator
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	if err := db.AutoMigrate(models.All()...); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	repos, err := initializeRepositories(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize repositories: %w", err)
	}

	ctx := context.Background()
	externals, err := initializeIntegrations(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize integrations: %w", err)
	}

	deps := &appDependencies{db: db}

	var publisher bookings.EventPublisher
	if cfg.Messaging.Enabled() {
		amqpPublisher, err := messaging.NewAMQPPublisher(&cfg.Messaging, log)
		if err != nil {
			return nil, fmt.Errorf("failed to create event publisher: %w", err)
		}
		deps.publisher = amqpPublisher
		publisher = amqpPublisher
	} else {
		log.Warn("Messaging disabled, booking events are only logged")
		publisher = messaging.NewNoopPublisher(log)
	}

	services, err := initializeApplicationServices(cfg, repos, externals, publisher, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}
	deps.services = services

	if cfg.Messaging.Enabled() {
		notificationService, err := app.NewNotificationService(notifier.NewLogNotifier(log), repos.profiles, repos.services, repos.bookings, log)
		if err != nil {
			return nil, fmt.Errorf("failed to create notification service: %w", err)
		}
		consumer := messaging.NewNotificationConsumer(cfg.Messaging, notificationService, log)
		if err := consumer.Connect(); err != nil {
			return nil, fmt.Errorf("failed to connect notification consumer: %w", err)
		}
		deps.consumer = consumer
	}

	tokens, err := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to create token manager: %w", err)
	}
	deps.tokens = tokens

	return deps, nil
}

func initializeRepositories(db *gorm.DB, log logger.Logger) (*repositories, error) {
	var (
		repos repositories
		err   error
	)

	if repos.promos, err = persistence.NewGormPromoRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create promo repository: %w", err)
	}
	if repos.giftCards, err = persistence.NewGormGiftCardRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create gift card repository: %w", err)
	}
	if repos.bookings, err = persistence.NewGormBookingRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create booking repository: %w", err)
	}
	if repos.requests, err = persistence.NewGormBookingRequestRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create booking request repository: %w", err)
	}
	if repos.services, err = persistence.NewGormServiceRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create service repository: %w", err)
	}
	if repos.addresses, err = persistence.NewGormAddressRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create address repository: %w", err)
	}
	if repos.profiles, err = persistence.NewGormProfileRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create profile repository: %w", err)
	}
	if repos.contractors, err = persistence.NewGormContractorRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create contractor repository: %w", err)
	}
	if repos.markets, err = persistence.NewGormMarketRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create market repository: %w", err)
	}
	if repos.translations, err = persistence.NewGormTranslationRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create translation repository: %w", err)
	}
	if repos.images, err = persistence.NewGormImageRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create image repository: %w", err)
	}

	return &repos, nil
}

// initializeIntegrations sets up blob storage, payments and the optional Google clients
func initializeIntegrations(ctx context.Context, cfg *config.RestConfig, log logger.Logger) (*integrations, error) {
	if cfg.BlobConnector.CloudProvider != config.AzureCloudProvider {
		return nil, fmt.Errorf("unsupported cloud provider: %s (only Azure is supported)", cfg.BlobConnector.CloudProvider)
	}

	imageConnector, err := connector.NewAzureImageConnector(ctx, &cfg.BlobConnector, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create Azure image connector: %w", err)
	}

	gateway, err := payment.NewStripeGateway(&cfg.Stripe, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create Stripe gateway: %w", err)
	}

	externals := &integrations{images: imageConnector, gateway: gateway}

	if cfg.Translation.APIKey != "" {
		if externals.translator, err = translator.NewGoogleTranslator(ctx, cfg.Translation.APIKey, log); err != nil {
			return nil, fmt.Errorf("failed to create Google translator: %w", err)
		}
	} else {
		log.Warn("Translation API key not set, translations will be mocked")
	}

	if cfg.AI.APIKey != "" {
		if externals.altText, err = ai.NewGeminiAltTextGenerator(ctx, cfg.AI.APIKey, cfg.AI.Model, log, nil); err != nil {
			return nil, fmt.Errorf("failed to create Gemini alt text generator: %w", err)
		}
	} else {
		log.Warn("AI API key not set, alt text falls back to entity names")
	}

	log.Info("Integrations initialized successfully")
	return externals, nil
}

// initializeApplicationServices sets up all application services
func initializeApplicationServices(
	cfg *config.RestConfig,
	repos *repositories,
	externals *integrations,
	publisher bookings.EventPublisher,
	log logger.Logger,
) (*v1.Services, error) {
	promoValidation, err := app.NewPromoValidationService(
		repos.promos, repos.services, repos.bookings,
		ratelimit.NewPerMinute(cfg.Promo.ValidationsPerMinute), log,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create promo validation service: %w", err)
	}

	promoAdmin, err := app.NewPromoAdminService(repos.promos, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create promo admin service: %w", err)
	}

	giftCards, err := app.NewGiftCardService(repos.giftCards, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create gift card service: %w", err)
	}

	contractors, err := app.NewContractorService(repos.contractors, repos.services, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create contractor service: %w", err)
	}

	marketService, err := app.NewMarketService(repos.markets, repos.contractors, repos.services, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create market service: %w", err)
	}

	addressService, err := app.NewAddressService(repos.addresses, marketService, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create address service: %w", err)
	}

	profileService, err := app.NewProfileService(repos.profiles, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile service: %w", err)
	}

	translationService, err := app.NewTranslationService(repos.translations, externals.translator, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create translation service: %w", err)
	}

	imageService, err := app.NewImageService(
		repos.images, externals.images, externals.altText,
		app.NewEntityNameResolver(repos.services), log,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create image service: %w", err)
	}

	paymentIntents, err := app.NewPaymentIntentService(
		repos.services, repos.profiles, promoValidation, giftCards, externals.gateway, log,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent service: %w", err)
	}

	bookingService, err := app.NewBookingService(
		repos.bookings, repos.requests, repos.services, repos.addresses, repos.profiles,
		contractors, promoValidation, giftCards, externals.gateway, publisher,
		&cfg.Booking, log,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create booking service: %w", err)
	}

	requestService, err := app.NewBookingRequestService(repos.requests, repos.bookings, externals.gateway, publisher, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create booking request service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &v1.Services{
		PromoValidation: promoValidation,
		PromoAdmin:      promoAdmin,
		GiftCards:       giftCards,
		Contractors:     contractors,
		Markets:         marketService,
		Translations:    translationService,
		Images:          imageService,
		PaymentIntents:  paymentIntents,
		Bookings:        bookingService,
		Requests:        requestService,
		Addresses:       addressService,
		Profiles:        profileService,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and the background
// workers, then stops all of them on SIGINT or SIGTERM
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	v1.SetupRoutes(r, deps.services, deps.tokens)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()
	workers, workerCtx := errgroup.WithContext(workerCtx)

	workers.Go(func() error {
		sweepExpiredRequests(workerCtx, deps.services.Requests, cfg.Booking.RequestExpirySweep, log)
		return nil
	})
	if deps.consumer != nil {
		workers.Go(func() error {
			return deps.consumer.Run(workerCtx)
		})
	}

	serverErrors := make(chan error, 1)

	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	var runErr error
	select {
	case runErr = <-serverErrors:
	case <-workerCtx.Done():
		log.Warn("Background worker stopped, initiating shutdown")
	case sig := <-quit:
		log.Info("Received signal, initiating graceful shutdown", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil && runErr == nil {
		runErr = fmt.Errorf("server forced to shutdown: %w", err)
	}

	stopWorkers()
	if err := workers.Wait(); err != nil && runErr == nil {
		runErr = fmt.Errorf("background worker failed: %w", err)
	}

	if runErr == nil {
		log.Info("Server stopped gracefully")
	}
	return runErr
}

// sweepExpiredRequests expires stale booking requests every interval until ctx is done
func sweepExpiredRequests(ctx context.Context, requests bookings.BookingRequestService, interval time.Duration, log logger.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			expired, err := requests.ExpirePending(ctx, time.Now().UTC())
			if err != nil {
				log.Error("booking request expiry sweep failed", "error", err)
				continue
			}
			if expired > 0 {
				log.Info("Expired pending booking requests", "count", expired)
			}
		}
	}
}
