//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/images"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageSqliteRepository_LiveImages(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	bg := context.Background()

	entityID := uuid.NewString()
	first := CreateTestImage(t, images.EntityService, entityID, 1)
	second := CreateTestImage(t, images.EntityService, entityID, 0)
	gone := CreateTestImage(t, images.EntityService, entityID, 2)
	for _, img := range []*images.ServiceImage{first, second, gone} {
		require.NoError(t, ctx.ImageRepo.Create(bg, img))
	}
	require.NoError(t, ctx.ImageRepo.SoftDelete(bg, gone.ID))

	list, err := ctx.ImageRepo.ListLive(bg, images.EntityService, entityID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)

	count, err := ctx.ImageRepo.CountLive(bg, images.EntityService, entityID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	deleted, err := ctx.ImageRepo.GetByID(bg, gone.ID)
	require.NoError(t, err)
	assert.NotNil(t, deleted.DeletedAt)
}

func TestImageRepository_SoftDelete_Twice(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	bg := context.Background()

	img := CreateTestImage(t, images.EntityProduct, uuid.NewString(), 0)
	require.NoError(t, ctx.ImageRepo.Create(bg, img))

	require.NoError(t, ctx.ImageRepo.SoftDelete(bg, img.ID))
	assert.ErrorIs(t, ctx.ImageRepo.SoftDelete(bg, img.ID), images.ErrAlreadyDeleted)
}

func TestImageRepository_ClearPrimaryAndReorder(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	bg := context.Background()

	entityID := uuid.NewString()
	a := CreateTestImage(t, images.EntityService, entityID, 0)
	a.IsPrimary = true
	b := CreateTestImage(t, images.EntityService, entityID, 1)
	b.IsPrimary = true
	require.NoError(t, ctx.ImageRepo.Create(bg, a))
	require.NoError(t, ctx.ImageRepo.Create(bg, b))

	require.NoError(t, ctx.ImageRepo.ClearPrimary(bg, images.EntityService, entityID, b.ID))
	require.NoError(t, ctx.ImageRepo.UpdateOrder(bg, []string{b.ID, a.ID}))

	list, err := ctx.ImageRepo.ListLive(bg, images.EntityService, entityID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, b.ID, list[0].ID)
	assert.True(t, list[0].IsPrimary)
	assert.False(t, list[1].IsPrimary)

	err = ctx.ImageRepo.UpdateOrder(bg, []string{a.ID, uuid.NewString()})
	assert.ErrorIs(t, err, images.ErrNotFound)

	// The failed reorder rolled back
	list, err = ctx.ImageRepo.ListLive(bg, images.EntityService, entityID)
	require.NoError(t, err)
	assert.Equal(t, b.ID, list[0].ID)
}

func TestImageRepository_GetByStoragePath(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	bg := context.Background()

	img := CreateTestImage(t, images.EntityService, uuid.NewString(), 0)
	require.NoError(t, ctx.ImageRepo.Create(bg, img))
	require.NoError(t, ctx.ImageRepo.UpdateAltText(bg, img.ID, "Massage aux pierres chaudes"))

	fetched, err := ctx.ImageRepo.GetByStoragePath(bg, img.StoragePath)
	require.NoError(t, err)
	require.NotNil(t, fetched.AltText)
	assert.Equal(t, "Massage aux pierres chaudes", *fetched.AltText)

	_, err = ctx.ImageRepo.GetByStoragePath(bg, "service/none/none.png")
	assert.ErrorIs(t, err, images.ErrNotFound)
}
