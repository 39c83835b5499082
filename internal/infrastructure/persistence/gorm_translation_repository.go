package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/translations"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/infrastructure/persistence/models"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormTranslationRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormTranslationRepository creates a new GORM-based TranslationRepository implementation
func NewGormTranslationRepository(db *gorm.DB, logger logger.Logger) (translations.TranslationRepository, error) {
	return &gormTranslationRepository{
		db:     db,
		logger: logger,
	}, nil
}

// Upsert writes the translation keyed on entity, field and language and
// returns the stored row, whose id is the existing one on conflict.
func (r *gormTranslationRepository) Upsert(ctx context.Context, translation *translations.Translation) (*translations.Translation, error) {
	if err := translation.Validate(); err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	model := &models.TranslationModel{}
	model.FromDomain(translation)
	model.UpdatedAt = time.Now().UTC()

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "entity_type"},
			{Name: "entity_id"},
			{Name: "field_name"},
			{Name: "language_code"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(model).Error
	if err != nil {
		return nil, fmt.Errorf("failed to upsert translation: %w", err)
	}

	var stored models.TranslationModel
	err = r.db.WithContext(ctx).
		Where("entity_type = ? AND entity_id = ? AND field_name = ? AND language_code = ?",
			translation.EntityType, translation.EntityID, translation.FieldName, translation.LanguageCode).
		First(&stored).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch translation: %w", err)
	}

	r.logger.Info("Upserted translation with id ", stored.ID)
	return stored.ToDomain(), nil
}

func (r *gormTranslationRepository) ListByEntity(ctx context.Context, entityType, entityID string) ([]*translations.Translation, error) {
	var modelList []*models.TranslationModel
	err := r.db.WithContext(ctx).
		Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Order("field_name asc, language_code asc").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch translations: %w", err)
	}

	domainList := make([]*translations.Translation, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormTranslationRepository) DeleteByID(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.TranslationModel{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete translation: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return translations.ErrNotFound
	}

	r.logger.Info("Deleted translation with id ", id)
	return nil
}
