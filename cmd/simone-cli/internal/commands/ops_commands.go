package commands

import (
	"fmt"
	"time"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/app"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/bookings"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/infrastructure/messaging"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/infrastructure/payment"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/infrastructure/persistence"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/infrastructure/persistence/models"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/auth"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/config"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// OpsCommandHandler groups the operational commands: schema migration,
// booking request expiry and token issuing
type OpsCommandHandler struct {
	logger logger.Logger
	now    func() time.Time
}

// NewOpsCommandHandler initializes an OpsCommandHandler with a console logger
func NewOpsCommandHandler() (*OpsCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	return &OpsCommandHandler{logger: loggerInstance, now: time.Now}, nil
}

// MigrateCmd creates or updates every table
func (h *OpsCommandHandler) MigrateCmd(cmd *cobra.Command, _ []string) error {
	return withDatabase(cmd, func(_ *config.RestConfig, db *gorm.DB) error {
		if err := db.AutoMigrate(models.All()...); err != nil {
			return fmt.Errorf("failed to migrate schema: %w", err)
		}
		h.logger.Info("Database migrations completed successfully")
		return nil
	})
}

// ExpireRequestsCmd runs one booking request expiry sweep
func (h *OpsCommandHandler) ExpireRequestsCmd(cmd *cobra.Command, _ []string) error {
	return withDatabase(cmd, func(cfg *config.RestConfig, db *gorm.DB) error {
		if err := cfg.Stripe.Validate(); err != nil {
			return err
		}

		requestRepo, err := persistence.NewGormBookingRequestRepository(db, h.logger)
		if err != nil {
			return fmt.Errorf("failed to create booking request repository: %w", err)
		}
		bookingRepo, err := persistence.NewGormBookingRepository(db, h.logger)
		if err != nil {
			return fmt.Errorf("failed to create booking repository: %w", err)
		}
		gateway, err := payment.NewStripeGateway(&cfg.Stripe, h.logger)
		if err != nil {
			return fmt.Errorf("failed to create Stripe gateway: %w", err)
		}

		var publisher bookings.EventPublisher = messaging.NewNoopPublisher(h.logger)
		if cfg.Messaging.Enabled() {
			amqpPublisher, err := messaging.NewAMQPPublisher(&cfg.Messaging, h.logger)
			if err != nil {
				return fmt.Errorf("failed to create event publisher: %w", err)
			}
			defer func() { _ = amqpPublisher.Close() }()
			publisher = amqpPublisher
		}

		svc, err := app.NewBookingRequestService(requestRepo, bookingRepo, gateway, publisher, h.logger)
		if err != nil {
			return fmt.Errorf("failed to create booking request service: %w", err)
		}

		expired, err := svc.ExpirePending(cmd.Context(), h.now().UTC())
		if err != nil {
			return err
		}
		h.logger.Info("Expired pending booking requests", "count", expired)
		return nil
	})
}

// IssueTokenCmd prints a signed access token, handy for local testing
func (h *OpsCommandHandler) IssueTokenCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPathFlag(cmd))
	if err != nil {
		return err
	}
	if err := cfg.Auth.Validate(); err != nil {
		return err
	}

	caller := auth.Caller{}
	caller.UserID, _ = cmd.Flags().GetString("sub")
	caller.Role, _ = cmd.Flags().GetString("role")
	caller.Email, _ = cmd.Flags().GetString("email")
	if caller.UserID == "" {
		caller.UserID = uuid.NewString()
	}

	tokens, err := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		return fmt.Errorf("failed to create token manager: %w", err)
	}
	token, err := tokens.CreateAccessToken(caller)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}

func configPathFlag(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString(ConfigFlag)
	return path
}

// InitOpsCommands registers the migrate, requests and token commands
func InitOpsCommands(rootCmd *cobra.Command) error {
	handler, err := NewOpsCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create ops command handler %w", err)
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE:  handler.MigrateCmd,
	})

	requestsCmd := &cobra.Command{
		Use:   "requests",
		Short: "Operate on contractor booking requests",
	}
	requestsCmd.AddCommand(&cobra.Command{
		Use:   "expire",
		Short: "Expire pending requests past their deadline and cancel their bookings",
		RunE:  handler.ExpireRequestsCmd,
	})
	rootCmd.AddCommand(requestsCmd)

	tokenCmd := &cobra.Command{
		Use:   "token",
		Short: "Manage access tokens",
	}
	issueCmd := &cobra.Command{
		Use:   "issue",
		Short: "Issue a signed access token",
		RunE:  handler.IssueTokenCmd,
	}
	issueCmd.Flags().String("sub", "", "User id (random when empty)")
	issueCmd.Flags().String("role", auth.RoleAdmin, "Role: admin, manager, contractor or client")
	issueCmd.Flags().String("email", "", "Email claim")
	tokenCmd.AddCommand(issueCmd)
	rootCmd.AddCommand(tokenCmd)

	return nil
}
