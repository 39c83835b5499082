//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/translations"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTranslation(entityID, field, lang, value string) *translations.Translation {
	now := time.Now().UTC()
	return &translations.Translation{
		ID:           uuid.NewString(),
		EntityType:   translations.EntityService,
		EntityID:     entityID,
		FieldName:    field,
		LanguageCode: lang,
		Value:        value,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestTranslationSqliteRepository_Upsert_ReplacesValue(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	bg := context.Background()

	entityID := uuid.NewString()
	first, err := ctx.TranslationRepo.Upsert(bg, newTranslation(entityID, "name", "en", "Massage"))
	require.NoError(t, err)

	second, err := ctx.TranslationRepo.Upsert(bg, newTranslation(entityID, "name", "en", "Relaxing massage"))
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Relaxing massage", second.Value)

	_, err = ctx.TranslationRepo.Upsert(bg, newTranslation(entityID, "name", "de", "Massage"))
	require.NoError(t, err)

	list, err := ctx.TranslationRepo.ListByEntity(bg, translations.EntityService, entityID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "de", list[0].LanguageCode)
	assert.Equal(t, "en", list[1].LanguageCode)
}

func TestTranslationRepository_DeleteByID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	bg := context.Background()

	stored, err := ctx.TranslationRepo.Upsert(bg, newTranslation(uuid.NewString(), "description", "en", "Body care"))
	require.NoError(t, err)

	require.NoError(t, ctx.TranslationRepo.DeleteByID(bg, stored.ID))
	assert.ErrorIs(t, ctx.TranslationRepo.DeleteByID(bg, stored.ID), translations.ErrNotFound)
}
