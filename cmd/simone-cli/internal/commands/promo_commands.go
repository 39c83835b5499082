package commands

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/app"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/promos"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/infrastructure/persistence"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/config"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/logger"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// PromoCommandHandler encapsulates promo code administration via CLI
type PromoCommandHandler struct {
	logger logger.Logger
}

// NewPromoCommandHandler initializes a PromoCommandHandler with a console logger
func NewPromoCommandHandler() (*PromoCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	return &PromoCommandHandler{logger: loggerInstance}, nil
}

func (h *PromoCommandHandler) withService(cmd *cobra.Command, fn func(ctx context.Context, svc promos.PromoAdminService) error) error {
	return withDatabase(cmd, func(_ *config.RestConfig, db *gorm.DB) error {
		repo, err := persistence.NewGormPromoRepository(db, h.logger)
		if err != nil {
			return fmt.Errorf("failed to create promo repository: %w", err)
		}
		svc, err := app.NewPromoAdminService(repo, h.logger)
		if err != nil {
			return fmt.Errorf("failed to create promo admin service: %w", err)
		}
		return fn(cmd.Context(), svc)
	})
}

// CreatePromoCmd creates a promo code from flags
func (h *PromoCommandHandler) CreatePromoCmd(cmd *cobra.Command, _ []string) error {
	promo, err := promoFromFlags(cmd)
	if err != nil {
		return err
	}

	return h.withService(cmd, func(ctx context.Context, svc promos.PromoAdminService) error {
		created, err := svc.Create(ctx, promo)
		if err != nil {
			return err
		}
		h.logger.Info("Created promo code", "id", created.ID, "code", created.Code)
		return nil
	})
}

// ListPromosCmd prints one page of promo codes with their computed status
func (h *PromoCommandHandler) ListPromosCmd(cmd *cobra.Command, _ []string) error {
	query := promos.NewPromoQuery()
	var err error
	if query.Page, err = cmd.Flags().GetInt("page"); err != nil {
		return fmt.Errorf("invalid page flag: %w", err)
	}
	if query.Search, err = cmd.Flags().GetString("search"); err != nil {
		return fmt.Errorf("invalid search flag: %w", err)
	}
	if cmd.Flags().Changed("active") {
		active, err := cmd.Flags().GetBool("active")
		if err != nil {
			return fmt.Errorf("invalid active flag: %w", err)
		}
		query.IsActive = &active
	}

	return h.withService(cmd, func(ctx context.Context, svc promos.PromoAdminService) error {
		page, err := svc.List(ctx, query)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "CODE\tDISCOUNT\tUSES\tSTATUS\tID")
		for _, p := range page.Items {
			uses := fmt.Sprintf("%d", p.UsesCount)
			if p.MaxUses != nil {
				uses = fmt.Sprintf("%d/%d", p.UsesCount, *p.MaxUses)
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				p.Code, promos.FormatDiscount(p.DiscountType, p.DiscountValue), uses, promos.ComputeStatus(p, now), p.ID)
		}
		fmt.Fprintf(w, "\npage %d of %d, %d codes\n", page.Page.Page, page.Page.Pages, page.Page.Total)
		return w.Flush()
	})
}

// DeactivatePromoCmd turns a promo code off
func (h *PromoCommandHandler) DeactivatePromoCmd(cmd *cobra.Command, args []string) error {
	return h.withService(cmd, func(ctx context.Context, svc promos.PromoAdminService) error {
		promo, err := svc.SetActive(ctx, args[0], false)
		if err != nil {
			return err
		}
		h.logger.Info("Deactivated promo code ", promo.Code)
		return nil
	})
}

// PromoStatsCmd prints platform wide promo analytics
func (h *PromoCommandHandler) PromoStatsCmd(cmd *cobra.Command, _ []string) error {
	return h.withService(cmd, func(ctx context.Context, svc promos.PromoAdminService) error {
		stats, err := svc.Analytics(ctx)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "active codes\t%d\n", stats.TotalActiveCodes)
		fmt.Fprintf(w, "total uses\t%d\n", stats.TotalUses)
		fmt.Fprintf(w, "platform cost\t%s\n", promos.FormatAmount(stats.TotalPlatformCost))
		fmt.Fprintf(w, "revenue with promos\t%s\n", promos.FormatAmount(stats.TotalRevenueWithPromo))
		fmt.Fprintf(w, "roi\t%.1f%%\n", stats.ROIPercentage)
		return w.Flush()
	})
}

// promoFromFlags builds the promo code described by the create command flags.
// Amounts are given in cents.
func promoFromFlags(cmd *cobra.Command) (*promos.PromoCode, error) {
	flags := cmd.Flags()

	code, _ := flags.GetString("code")
	discountType, _ := flags.GetString("type")
	value, _ := flags.GetInt64("value")
	perUser, _ := flags.GetInt("per-user")
	firstBooking, _ := flags.GetBool("first-booking")

	promo := &promos.PromoCode{
		Code:             code,
		DiscountType:     promos.DiscountType(strings.ToLower(discountType)),
		DiscountValue:    value,
		MaxUsesPerUser:   perUser,
		FirstBookingOnly: firstBooking,
		IsActive:         true,
	}

	if flags.Changed("description") {
		description, _ := flags.GetString("description")
		promo.Description = &description
	}
	if flags.Changed("max-discount") {
		maxDiscount, _ := flags.GetInt64("max-discount")
		promo.MaxDiscountAmount = &maxDiscount
	}
	if flags.Changed("max-uses") {
		maxUses, _ := flags.GetInt("max-uses")
		promo.MaxUses = &maxUses
	}
	if flags.Changed("min-order") {
		minOrder, _ := flags.GetInt64("min-order")
		promo.MinOrderAmount = &minOrder
	}
	if flags.Changed("valid-from") {
		raw, _ := flags.GetString("valid-from")
		from, err := parseDate(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid valid-from: %w", err)
		}
		promo.ValidFrom = from
	}
	if flags.Changed("valid-until") {
		raw, _ := flags.GetString("valid-until")
		until, err := parseDate(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid valid-until: %w", err)
		}
		promo.ValidUntil = &until
	}
	return promo, nil
}

// parseDate accepts RFC 3339 timestamps or plain YYYY-MM-DD dates (midnight UTC)
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	return time.Parse(time.DateOnly, raw)
}

// InitPromoCommands registers promo code commands
func InitPromoCommands(rootCmd *cobra.Command) error {
	handler, err := NewPromoCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create promo command handler %w", err)
	}

	promoCmd := &cobra.Command{
		Use:   "promo",
		Short: "Manage promo codes",
	}

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a promo code",
		RunE:  handler.CreatePromoCmd,
	}
	createCmd.Flags().String("code", "", "Code clients type at checkout (3-50 chars, A-Z 0-9 _ -)")
	createCmd.Flags().String("type", string(promos.DiscountPercentage), "Discount type: percentage or fixed_amount")
	createCmd.Flags().Int64("value", 0, "Discount value: percent, or cents for fixed_amount")
	createCmd.Flags().String("description", "", "Internal description")
	createCmd.Flags().Int64("max-discount", 0, "Cap on a percentage discount, in cents")
	createCmd.Flags().Int("max-uses", 0, "Total number of redemptions allowed")
	createCmd.Flags().Int("per-user", promos.DefaultMaxUsesPerUser, "Redemptions allowed per client")
	createCmd.Flags().Int64("min-order", 0, "Minimum service amount, in cents")
	createCmd.Flags().String("valid-from", "", "Start of validity (YYYY-MM-DD or RFC 3339), defaults to now")
	createCmd.Flags().String("valid-until", "", "End of validity (YYYY-MM-DD or RFC 3339)")
	createCmd.Flags().Bool("first-booking", false, "Restrict to a client's first booking")
	_ = createCmd.MarkFlagRequired("code")
	_ = createCmd.MarkFlagRequired("value")
	promoCmd.AddCommand(createCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List promo codes",
		RunE:  handler.ListPromosCmd,
	}
	listCmd.Flags().Int("page", 1, "Page number")
	listCmd.Flags().String("search", "", "Filter by code or description")
	listCmd.Flags().Bool("active", true, "Only list active (or, with =false, inactive) codes")
	promoCmd.AddCommand(listCmd)

	promoCmd.AddCommand(&cobra.Command{
		Use:   "deactivate <id>",
		Short: "Deactivate a promo code",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.DeactivatePromoCmd,
	})

	promoCmd.AddCommand(&cobra.Command{
		Use:   "stats",
		Short: "Show promo usage analytics",
		RunE:  handler.PromoStatsCmd,
	})

	rootCmd.AddCommand(promoCmd)
	return nil
}
