package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/images"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/infrastructure/persistence/models"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormImageRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormImageRepository creates a new GORM-based ImageRepository implementation
func NewGormImageRepository(db *gorm.DB, logger logger.Logger) (images.ImageRepository, error) {
	return &gormImageRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormImageRepository) Create(ctx context.Context, image *images.ServiceImage) error {
	if err := image.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ServiceImageModel{}
	model.FromDomain(image)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create image: %w", err)
	}

	r.logger.Info("Created image with id ", image.ID)
	return nil
}

func (r *gormImageRepository) GetByID(ctx context.Context, id string) (*images.ServiceImage, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *gormImageRepository) GetByStoragePath(ctx context.Context, storagePath string) (*images.ServiceImage, error) {
	return r.first(ctx, "storage_path = ?", storagePath)
}

func (r *gormImageRepository) first(ctx context.Context, cond string, arg any) (*images.ServiceImage, error) {
	var model models.ServiceImageModel
	if err := r.db.WithContext(ctx).Where(cond, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, images.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch image: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormImageRepository) live(ctx context.Context, entityType, entityID string) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.ServiceImageModel{}).
		Where("entity_type = ? AND entity_id = ? AND deleted_at IS NULL", entityType, entityID)
}

func (r *gormImageRepository) ListLive(ctx context.Context, entityType, entityID string) ([]*images.ServiceImage, error) {
	var modelList []*models.ServiceImageModel
	if err := r.live(ctx, entityType, entityID).Order("display_order asc, created_at asc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch images: %w", err)
	}

	domainList := make([]*images.ServiceImage, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormImageRepository) CountLive(ctx context.Context, entityType, entityID string) (int64, error) {
	var count int64
	if err := r.live(ctx, entityType, entityID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count images: %w", err)
	}
	return count, nil
}

func (r *gormImageRepository) ClearPrimary(ctx context.Context, entityType, entityID, keepID string) error {
	err := r.live(ctx, entityType, entityID).
		Where("id <> ? AND is_primary = ?", keepID, true).
		Updates(map[string]any{"is_primary": false, "updated_at": time.Now().UTC()}).Error
	if err != nil {
		return fmt.Errorf("failed to clear primary image: %w", err)
	}
	return nil
}

func (r *gormImageRepository) UpdateOrder(ctx context.Context, ids []string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()
		for i, id := range ids {
			res := tx.Model(&models.ServiceImageModel{}).
				Where("id = ? AND deleted_at IS NULL", id).
				Updates(map[string]any{"display_order": i, "updated_at": now})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return images.ErrNotFound
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, images.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to reorder images: %w", err)
	}

	r.logger.Info("Reordered ", len(ids), " images")
	return nil
}

func (r *gormImageRepository) UpdateAltText(ctx context.Context, id, altText string) error {
	res := r.db.WithContext(ctx).Model(&models.ServiceImageModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"alt_text": altText, "updated_at": time.Now().UTC()})
	if res.Error != nil {
		return fmt.Errorf("failed to update alt text: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return images.ErrNotFound
	}
	return nil
}

func (r *gormImageRepository) SoftDelete(ctx context.Context, id string) error {
	now := time.Now().UTC()
	res := r.db.WithContext(ctx).Model(&models.ServiceImageModel{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Updates(map[string]any{"deleted_at": now, "updated_at": now})
	if res.Error != nil {
		return fmt.Errorf("failed to delete image: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return images.ErrAlreadyDeleted
	}

	r.logger.Info("Soft deleted image with id ", id)
	return nil
}
