package commands

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/app"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/markets"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/infrastructure/persistence"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/config"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/logger"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// MarketCommandHandler encapsulates market administration via CLI
type MarketCommandHandler struct {
	logger logger.Logger
}

// NewMarketCommandHandler initializes a MarketCommandHandler with a console logger
func NewMarketCommandHandler() (*MarketCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	return &MarketCommandHandler{logger: loggerInstance}, nil
}

func (h *MarketCommandHandler) withService(cmd *cobra.Command, fn func(ctx context.Context, svc markets.MarketService) error) error {
	return withDatabase(cmd, func(_ *config.RestConfig, db *gorm.DB) error {
		marketRepo, err := persistence.NewGormMarketRepository(db, h.logger)
		if err != nil {
			return fmt.Errorf("failed to create market repository: %w", err)
		}
		contractorRepo, err := persistence.NewGormContractorRepository(db, h.logger)
		if err != nil {
			return fmt.Errorf("failed to create contractor repository: %w", err)
		}
		serviceRepo, err := persistence.NewGormServiceRepository(db, h.logger)
		if err != nil {
			return fmt.Errorf("failed to create service repository: %w", err)
		}

		svc, err := app.NewMarketService(marketRepo, contractorRepo, serviceRepo, h.logger)
		if err != nil {
			return fmt.Errorf("failed to create market service: %w", err)
		}
		return fn(cmd.Context(), svc)
	})
}

// ListMarketsCmd prints one page of markets
func (h *MarketCommandHandler) ListMarketsCmd(cmd *cobra.Command, _ []string) error {
	query := markets.NewQuery()
	var err error
	if query.Page, err = cmd.Flags().GetInt("page"); err != nil {
		return fmt.Errorf("invalid page flag: %w", err)
	}
	if query.Search, err = cmd.Flags().GetString("search"); err != nil {
		return fmt.Errorf("invalid search flag: %w", err)
	}

	return h.withService(cmd, func(ctx context.Context, svc markets.MarketService) error {
		page, err := svc.List(ctx, query)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "CODE\tNAME\tCURRENCY\tTIMEZONE\tLANGUAGES\tACTIVE")
		for _, m := range page.Data {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%t\n",
				m.Code, m.Name, m.CurrencyCode, m.Timezone, strings.Join(m.SupportedLanguages, ","), m.IsActive)
		}
		return w.Flush()
	})
}

// CreateMarketCmd creates a market from flags
func (h *MarketCommandHandler) CreateMarketCmd(cmd *cobra.Command, _ []string) error {
	market, err := marketFromFlags(cmd)
	if err != nil {
		return err
	}

	return h.withService(cmd, func(ctx context.Context, svc markets.MarketService) error {
		created, err := svc.Create(ctx, market)
		if err != nil {
			return err
		}
		h.logger.Info("Created market", "id", created.ID, "code", created.Code)
		return nil
	})
}

func marketFromFlags(cmd *cobra.Command) (*markets.Market, error) {
	flags := cmd.Flags()

	name, err := flags.GetString("name")
	if err != nil {
		return nil, fmt.Errorf("invalid name flag: %w", err)
	}
	code, _ := flags.GetString("code")
	currency, _ := flags.GetString("currency")
	timezone, _ := flags.GetString("timezone")
	languages, _ := flags.GetStringSlice("languages")
	inactive, _ := flags.GetBool("inactive")

	return &markets.Market{
		Name:               name,
		Code:               code,
		CurrencyCode:       strings.ToUpper(currency),
		Timezone:           timezone,
		SupportedLanguages: languages,
		IsActive:           !inactive,
	}, nil
}

// InitMarketCommands registers market commands
func InitMarketCommands(rootCmd *cobra.Command) error {
	handler, err := NewMarketCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create market command handler %w", err)
	}

	marketCmd := &cobra.Command{
		Use:   "market",
		Short: "Manage markets",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List markets",
		RunE:  handler.ListMarketsCmd,
	}
	listCmd.Flags().Int("page", 1, "Page number")
	listCmd.Flags().String("search", "", "Filter by name or code")
	marketCmd.AddCommand(listCmd)

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a market",
		RunE:  handler.CreateMarketCmd,
	}
	createCmd.Flags().String("name", "", "Display name")
	createCmd.Flags().String("code", "", "Market code (2-10 chars, A-Z 0-9 _)")
	createCmd.Flags().String("currency", "EUR", "ISO currency code")
	createCmd.Flags().String("timezone", "Europe/Paris", "IANA timezone")
	createCmd.Flags().StringSlice("languages", []string{"fr"}, "Supported languages")
	createCmd.Flags().Bool("inactive", false, "Create the market deactivated")
	_ = createCmd.MarkFlagRequired("name")
	_ = createCmd.MarkFlagRequired("code")
	marketCmd.AddCommand(createCmd)

	rootCmd.AddCommand(marketCmd)
	return nil
}
