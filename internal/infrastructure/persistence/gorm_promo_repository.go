package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/pagination"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/promos"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/infrastructure/persistence/models"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormPromoRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormPromoRepository creates a new GORM-based PromoRepository implementation
func NewGormPromoRepository(db *gorm.DB, logger logger.Logger) (promos.PromoRepository, error) {
	return &gormPromoRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormPromoRepository) Create(ctx context.Context, promo *promos.PromoCode) error {
	if err := promo.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.PromoCodeModel{}
	model.FromDomain(promo)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return promos.ErrDuplicateCode
		}
		return fmt.Errorf("failed to create promo code: %w", err)
	}

	r.logger.Info("Created promo code with id ", promo.ID)
	return nil
}

func (r *gormPromoRepository) GetByID(ctx context.Context, id string) (*promos.PromoCode, error) {
	var model models.PromoCodeModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, promos.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch promo code: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormPromoRepository) GetByCode(ctx context.Context, code string) (*promos.PromoCode, error) {
	var model models.PromoCodeModel
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, promos.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch promo code: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormPromoRepository) List(ctx context.Context, query *promos.PromoQuery) ([]*promos.PromoCode, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, fmt.Errorf("invalid query parameters: %w", err)
	}

	dbQuery := r.db.WithContext(ctx).Model(&models.PromoCodeModel{})

	// Apply filters
	if query.IsActive != nil {
		dbQuery = dbQuery.Where("is_active = ?", *query.IsActive)
	}
	if query.DiscountType != "" {
		dbQuery = dbQuery.Where("discount_type = ?", string(query.DiscountType))
	}
	if query.Search != "" {
		pattern := "%" + strings.ToLower(query.Search) + "%"
		dbQuery = dbQuery.Where("LOWER(code) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}
	if query.CreatedAfter != nil {
		dbQuery = dbQuery.Where("created_at >= ?", *query.CreatedAfter)
	}
	if query.CreatedBefore != nil {
		dbQuery = dbQuery.Where("created_at <= ?", *query.CreatedBefore)
	}

	var total int64
	if err := dbQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count promo codes: %w", err)
	}

	// Sorting
	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = "desc"
		}
		dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", query.SortBy, order))
	}

	var modelList []*models.PromoCodeModel
	err := dbQuery.
		Limit(query.PageSize).
		Offset(pagination.Offset(query.Page, query.PageSize)).
		Find(&modelList).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch promo codes: %w", err)
	}

	domainList := make([]*promos.PromoCode, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, total, nil
}

func (r *gormPromoRepository) Update(ctx context.Context, promo *promos.PromoCode) error {
	if err := promo.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.PromoCodeModel{}
	model.FromDomain(promo)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return promos.ErrDuplicateCode
		}
		return fmt.Errorf("failed to update promo code: %w", err)
	}

	r.logger.Info("Updated promo code with id ", promo.ID)
	return nil
}

func (r *gormPromoRepository) DeleteByID(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.PromoCodeModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete promo code: %w", err)
	}

	r.logger.Info("Deleted promo code with id ", id)
	return nil
}

func (r *gormPromoRepository) RecordUsage(ctx context.Context, usage *promos.PromoCodeUsage) error {
	if err := usage.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.PromoCodeUsageModel{}
	model.FromDomain(usage)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to record promo usage: %w", err)
		}
		res := tx.Model(&models.PromoCodeModel{}).
			Where("id = ?", usage.PromoCodeID).
			Update("uses_count", gorm.Expr("uses_count + ?", 1))
		if res.Error != nil {
			return fmt.Errorf("failed to increment promo uses: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return promos.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("Recorded usage of promo code ", usage.PromoCodeID, " for booking ", usage.BookingID)
	return nil
}

func (r *gormPromoRepository) CountUserUsage(ctx context.Context, promoID, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.PromoCodeUsageModel{}).
		Where("promo_code_id = ? AND user_id = ?", promoID, userID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count promo usage: %w", err)
	}
	return count, nil
}

func (r *gormPromoRepository) ListUsage(ctx context.Context, promoID string) ([]*promos.PromoCodeUsage, error) {
	var modelList []*models.PromoCodeUsageModel
	err := r.db.WithContext(ctx).
		Where("promo_code_id = ?", promoID).
		Order("used_at desc").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch promo usage: %w", err)
	}

	domainList := make([]*promos.PromoCodeUsage, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormPromoRepository) CountActive(ctx context.Context, now time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.PromoCodeModel{}).
		Where("is_active = ?", true).
		Where("valid_from <= ?", now.UTC()).
		Where("valid_until IS NULL OR valid_until >= ?", now.UTC()).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count active promo codes: %w", err)
	}
	return count, nil
}

func (r *gormPromoRepository) UsageTotals(ctx context.Context) (*promos.UsageTotals, error) {
	var row struct {
		Uses          int64
		DiscountTotal int64
		RevenueTotal  int64
	}
	err := r.db.WithContext(ctx).Model(&models.PromoCodeUsageModel{}).
		Select("COUNT(*) AS uses, COALESCE(SUM(discount_amount), 0) AS discount_total, COALESCE(SUM(final_amount), 0) AS revenue_total").
		Scan(&row).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate promo usage: %w", err)
	}
	return &promos.UsageTotals{
		Uses:          row.Uses,
		DiscountTotal: row.DiscountTotal,
		RevenueTotal:  row.RevenueTotal,
	}, nil
}
