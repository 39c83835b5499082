package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/markets"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/pagination"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/infrastructure/persistence/models"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormMarketRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormMarketRepository creates a new GORM-based MarketRepository implementation
func NewGormMarketRepository(db *gorm.DB, logger logger.Logger) (markets.MarketRepository, error) {
	return &gormMarketRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormMarketRepository) Create(ctx context.Context, market *markets.Market) error {
	if err := market.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.MarketModel{}
	model.FromDomain(market)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return markets.ErrDuplicateCode
		}
		return fmt.Errorf("failed to create market: %w", err)
	}

	r.logger.Info("Created market with id ", market.ID)
	return nil
}

func (r *gormMarketRepository) GetByID(ctx context.Context, id string) (*markets.Market, error) {
	var model models.MarketModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, markets.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch market: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormMarketRepository) GetByCode(ctx context.Context, code string) (*markets.Market, error) {
	var model models.MarketModel
	if err := r.db.WithContext(ctx).Where("code = ?", strings.ToUpper(code)).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, markets.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch market: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormMarketRepository) List(ctx context.Context, query *markets.Query) ([]*markets.Market, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, fmt.Errorf("invalid query parameters: %w", err)
	}

	dbQuery := r.db.WithContext(ctx).Model(&models.MarketModel{})

	if query.IsActive != nil {
		dbQuery = dbQuery.Where("is_active = ?", *query.IsActive)
	}
	if query.Search != "" {
		pattern := "%" + strings.ToLower(query.Search) + "%"
		dbQuery = dbQuery.Where("LOWER(name) LIKE ? OR LOWER(code) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := dbQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count markets: %w", err)
	}

	sort := query.Sort
	if sort == "" {
		sort = "id"
	}
	order := query.Order
	if order == "" {
		order = "asc"
	}

	var modelList []*models.MarketModel
	err := dbQuery.
		Order(fmt.Sprintf("%s %s", sort, order)).
		Limit(query.Limit).
		Offset(pagination.Offset(query.Page, query.Limit)).
		Find(&modelList).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch markets: %w", err)
	}

	domainList := make([]*markets.Market, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, total, nil
}

func (r *gormMarketRepository) Update(ctx context.Context, market *markets.Market) error {
	if err := market.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.MarketModel{}
	model.FromDomain(market)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return markets.ErrDuplicateCode
		}
		return fmt.Errorf("failed to update market: %w", err)
	}

	r.logger.Info("Updated market with id ", market.ID)
	return nil
}

func (r *gormMarketRepository) DeleteByID(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.MarketModel{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete market: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return markets.ErrNotFound
	}

	r.logger.Info("Deleted market with id ", id)
	return nil
}
