package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/catalog"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/giftcards"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/infrastructure/persistence"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/config"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// CatalogCommandHandler seeds the records bookings depend on: services,
// contractors and gift cards
type CatalogCommandHandler struct {
	logger logger.Logger
	now    func() time.Time
}

// NewCatalogCommandHandler initializes a CatalogCommandHandler with a console logger
func NewCatalogCommandHandler() (*CatalogCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	return &CatalogCommandHandler{logger: loggerInstance, now: time.Now}, nil
}

// CreateServiceCmd creates a service and makes it available in the given markets
func (h *CatalogCommandHandler) CreateServiceCmd(cmd *cobra.Command, _ []string) error {
	service, err := serviceFromFlags(cmd, h.now().UTC())
	if err != nil {
		return err
	}
	marketIDs, _ := cmd.Flags().GetStringSlice("markets")

	return withDatabase(cmd, func(_ *config.RestConfig, db *gorm.DB) error {
		repo, err := persistence.NewGormServiceRepository(db, h.logger)
		if err != nil {
			return fmt.Errorf("failed to create service repository: %w", err)
		}
		if err := repo.Create(cmd.Context(), service); err != nil {
			return err
		}
		for _, marketID := range marketIDs {
			if err := repo.SetMarketAvailability(cmd.Context(), service.ID, marketID, true); err != nil {
				return err
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), service.ID)
		return nil
	})
}

// CreateContractorCmd creates an active contractor offering the given services
func (h *CatalogCommandHandler) CreateContractorCmd(cmd *cobra.Command, _ []string) error {
	contractor, err := contractorFromFlags(cmd, h.now().UTC())
	if err != nil {
		return err
	}

	return withDatabase(cmd, func(_ *config.RestConfig, db *gorm.DB) error {
		repo, err := persistence.NewGormContractorRepository(db, h.logger)
		if err != nil {
			return fmt.Errorf("failed to create contractor repository: %w", err)
		}
		if err := repo.Create(cmd.Context(), contractor); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), contractor.ID)
		return nil
	})
}

// IssueGiftCardCmd creates an active gift card
func (h *CatalogCommandHandler) IssueGiftCardCmd(cmd *cobra.Command, _ []string) error {
	card, err := giftCardFromFlags(cmd, h.now().UTC())
	if err != nil {
		return err
	}

	return withDatabase(cmd, func(_ *config.RestConfig, db *gorm.DB) error {
		repo, err := persistence.NewGormGiftCardRepository(db, h.logger)
		if err != nil {
			return fmt.Errorf("failed to create gift card repository: %w", err)
		}
		if err := repo.Create(cmd.Context(), card); err != nil {
			return err
		}
		h.logger.Info("Issued gift card", "code", card.Code, "amount", card.InitialAmount)
		return nil
	})
}

func serviceFromFlags(cmd *cobra.Command, now time.Time) (*catalog.Service, error) {
	flags := cmd.Flags()

	name, err := flags.GetString("name")
	if err != nil {
		return nil, fmt.Errorf("invalid name flag: %w", err)
	}
	price, err := flags.GetInt64("price")
	if err != nil {
		return nil, fmt.Errorf("invalid price flag: %w", err)
	}
	duration, err := flags.GetInt("duration")
	if err != nil {
		return nil, fmt.Errorf("invalid duration flag: %w", err)
	}

	service := &catalog.Service{
		ID:                  uuid.NewString(),
		Name:                strings.TrimSpace(name),
		BasePrice:           price,
		BaseDurationMinutes: duration,
		IsActive:            true,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	return service, service.Validate()
}

func contractorFromFlags(cmd *cobra.Command, now time.Time) (*catalog.Contractor, error) {
	flags := cmd.Flags()

	userID, _ := flags.GetString("user-id")
	name, _ := flags.GetString("name")
	serviceIDs, _ := flags.GetStringSlice("services")
	marketID, _ := flags.GetString("market")
	title, _ := flags.GetString("title")

	contractor := &catalog.Contractor{
		ID:           uuid.NewString(),
		UserID:       userID,
		BusinessName: strings.TrimSpace(name),
		Slug:         slugify(name),
		IsActive:     true,
		ServiceIDs:   serviceIDs,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if marketID != "" {
		contractor.MarketID = &marketID
	}
	if title != "" {
		contractor.ProfessionalTitle = &title
	}
	return contractor, contractor.Validate()
}

func giftCardFromFlags(cmd *cobra.Command, now time.Time) (*giftcards.GiftCard, error) {
	flags := cmd.Flags()

	code, _ := flags.GetString("code")
	amount, err := flags.GetInt64("amount")
	if err != nil {
		return nil, fmt.Errorf("invalid amount flag: %w", err)
	}
	recipient, _ := flags.GetString("recipient")
	expires, _ := flags.GetString("expires")

	card := &giftcards.GiftCard{
		ID:             uuid.NewString(),
		Code:           strings.ToUpper(strings.TrimSpace(code)),
		InitialAmount:  amount,
		CurrentBalance: amount,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if recipient != "" {
		card.RecipientEmail = &recipient
	}
	if expires != "" {
		t, err := parseDate(expires)
		if err != nil {
			return nil, fmt.Errorf("invalid expires flag: %w", err)
		}
		card.ExpiresAt = &t
	}
	return card, card.Validate()
}

// slugify lowercases name and joins its words with dashes
func slugify(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

// InitCatalogCommands registers the service, contractor and gift card commands
func InitCatalogCommands(rootCmd *cobra.Command) error {
	handler, err := NewCatalogCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create catalog command handler %w", err)
	}

	serviceCmd := &cobra.Command{
		Use:   "service",
		Short: "Manage bookable services",
	}
	createServiceCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a service and print its id",
		RunE:  handler.CreateServiceCmd,
	}
	createServiceCmd.Flags().String("name", "", "Service name")
	createServiceCmd.Flags().Int64("price", 0, "Base price in cents")
	createServiceCmd.Flags().Int("duration", 60, "Duration in minutes")
	createServiceCmd.Flags().StringSlice("markets", nil, "Market ids the service is sold in")
	_ = createServiceCmd.MarkFlagRequired("name")
	_ = createServiceCmd.MarkFlagRequired("price")
	serviceCmd.AddCommand(createServiceCmd)
	rootCmd.AddCommand(serviceCmd)

	contractorCmd := &cobra.Command{
		Use:   "contractor",
		Short: "Manage contractors",
	}
	createContractorCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a contractor and print its id",
		RunE:  handler.CreateContractorCmd,
	}
	createContractorCmd.Flags().String("user-id", "", "User id of the contractor account")
	createContractorCmd.Flags().String("name", "", "Business name")
	createContractorCmd.Flags().StringSlice("services", nil, "Service ids the contractor performs")
	createContractorCmd.Flags().String("market", "", "Market id")
	createContractorCmd.Flags().String("title", "", "Professional title")
	_ = createContractorCmd.MarkFlagRequired("user-id")
	_ = createContractorCmd.MarkFlagRequired("name")
	contractorCmd.AddCommand(createContractorCmd)
	rootCmd.AddCommand(contractorCmd)

	giftCardCmd := &cobra.Command{
		Use:   "giftcard",
		Short: "Manage gift cards",
	}
	issueCmd := &cobra.Command{
		Use:   "issue",
		Short: "Issue a gift card",
		RunE:  handler.IssueGiftCardCmd,
	}
	issueCmd.Flags().String("code", "", "Card code")
	issueCmd.Flags().Int64("amount", 0, "Amount in cents")
	issueCmd.Flags().String("recipient", "", "Recipient email")
	issueCmd.Flags().String("expires", "", "Expiry date, YYYY-MM-DD or RFC 3339")
	_ = issueCmd.MarkFlagRequired("code")
	_ = issueCmd.MarkFlagRequired("amount")
	giftCardCmd.AddCommand(issueCmd)
	rootCmd.AddCommand(giftCardCmd)

	return nil
}
