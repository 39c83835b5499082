//go:build unit
// +build unit

package app

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/images"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type imageFixture struct {
	repo      *MockImageRepository
	connector *MockImageConnector
	altText   *MockAltTextGenerator
	names     *MockEntityNameResolver
	service   images.ImageService
}

func newImageFixture(t *testing.T) *imageFixture {
	f := &imageFixture{
		repo:      new(MockImageRepository),
		connector: new(MockImageConnector),
		altText:   new(MockAltTextGenerator),
		names:     new(MockEntityNameResolver),
	}
	svc, err := NewImageService(f.repo, f.connector, f.altText, f.names, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	f.service = svc
	return f
}

func uploadRequest() *images.UploadRequest {
	return &images.UploadRequest{
		EntityType: images.EntityService,
		EntityID:   "42",
		IsPrimary:  true,
		UserID:     uuid.NewString(),
	}
}

func storedImage() *images.ServiceImage {
	return &images.ServiceImage{
		ID:          uuid.NewString(),
		EntityType:  images.EntityService,
		EntityID:    "42",
		StoragePath: "service/42/a.png",
		URL:         ImageServePrefix + "service/42/a.png",
		FileSize:    128,
		MimeType:    "image/png",
		UploadedBy:  uuid.NewString(),
	}
}

func TestImageService_Upload(t *testing.T) {
	f := newImageFixture(t)
	file := testutil.CreateFileHeader(t, "photo.png", "image/png", append(testutil.PNGHeader, 1, 2, 3))

	f.repo.On("CountLive", mock.Anything, images.EntityService, "42").Return(int64(2), nil)
	f.connector.On("Upload", mock.Anything, mock.MatchedBy(func(p string) bool {
		return strings.HasPrefix(p, "service/42/") && strings.HasSuffix(p, ".png")
	}), mock.Anything, "image/png").Return(nil)
	f.repo.On("Create", mock.Anything, mock.AnythingOfType("*images.ServiceImage")).Return(nil)
	f.repo.On("ClearPrimary", mock.Anything, images.EntityService, "42", mock.Anything).Return(nil)

	img, err := f.service.Upload(context.Background(), file, uploadRequest())
	require.NoError(t, err)
	assert.Equal(t, 2, img.DisplayOrder)
	assert.Equal(t, "image/png", img.MimeType)
	assert.Equal(t, ImageServePrefix+img.StoragePath, img.URL)
	assert.True(t, img.IsPrimary)
	f.repo.AssertCalled(t, "ClearPrimary", mock.Anything, images.EntityService, "42", img.ID)
}

func TestImageService_Upload_Rejected(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		content     []byte
		count       int64
		expectErr   error
	}{
		{"unsupported type", "image/gif", []byte("GIF89a"), 0, images.ErrInvalidFileType},
		{"too large", "image/jpeg", make([]byte, images.MaxFileSize+1), 0, images.ErrFileTooLarge},
		{"limit reached", "image/webp", []byte("RIFF"), images.MaxImagesPerItem, images.ErrLimitReached},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newImageFixture(t)
			f.repo.On("CountLive", mock.Anything, images.EntityService, "42").Return(tt.count, nil).Maybe()

			file := testutil.CreateFileHeader(t, "upload", tt.contentType, tt.content)
			_, err := f.service.Upload(context.Background(), file, uploadRequest())
			assert.ErrorIs(t, err, tt.expectErr)
			f.connector.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestImageService_Upload_InsertFailsRemovesBlob(t *testing.T) {
	f := newImageFixture(t)
	file := testutil.CreateFileHeader(t, "photo.png", "image/png", testutil.PNGHeader)

	f.repo.On("CountLive", mock.Anything, images.EntityService, "42").Return(int64(0), nil)
	f.connector.On("Upload", mock.Anything, mock.Anything, mock.Anything, "image/png").Return(nil)
	f.repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("unique violation"))
	f.connector.On("Delete", mock.Anything, mock.Anything).Return(nil)

	_, err := f.service.Upload(context.Background(), file, uploadRequest())
	assert.Error(t, err)
	f.connector.AssertNumberOfCalls(t, "Delete", 1)
}

func TestImageService_Reorder(t *testing.T) {
	a, b := storedImage(), storedImage()
	req := &images.ReorderRequest{EntityType: images.EntityService, EntityID: "42", ImageOrder: []string{b.ID, a.ID}}

	t.Run("owned images", func(t *testing.T) {
		f := newImageFixture(t)
		f.repo.On("ListLive", mock.Anything, images.EntityService, "42").Return([]*images.ServiceImage{a, b}, nil)
		f.repo.On("UpdateOrder", mock.Anything, []string{b.ID, a.ID}).Return(nil)

		require.NoError(t, f.service.Reorder(context.Background(), req))
	})

	t.Run("foreign image", func(t *testing.T) {
		f := newImageFixture(t)
		f.repo.On("ListLive", mock.Anything, images.EntityService, "42").Return([]*images.ServiceImage{a}, nil)

		err := f.service.Reorder(context.Background(), req)
		assert.ErrorIs(t, err, images.ErrForeignImage)
		f.repo.AssertNotCalled(t, "UpdateOrder", mock.Anything, mock.Anything)
	})
}

func TestImageService_Delete(t *testing.T) {
	t.Run("live image", func(t *testing.T) {
		f := newImageFixture(t)
		img := storedImage()
		f.repo.On("GetByID", mock.Anything, img.ID).Return(img, nil)
		f.repo.On("SoftDelete", mock.Anything, img.ID).Return(nil)

		require.NoError(t, f.service.Delete(context.Background(), img.ID))
	})

	t.Run("already deleted", func(t *testing.T) {
		f := newImageFixture(t)
		img := storedImage()
		deleted := time.Now().UTC()
		img.DeletedAt = &deleted
		f.repo.On("GetByID", mock.Anything, img.ID).Return(img, nil)

		err := f.service.Delete(context.Background(), img.ID)
		assert.ErrorIs(t, err, images.ErrAlreadyDeleted)
		f.repo.AssertNotCalled(t, "SoftDelete", mock.Anything, mock.Anything)
	})
}

func TestImageService_Open(t *testing.T) {
	t.Run("content type from metadata", func(t *testing.T) {
		f := newImageFixture(t)
		img := storedImage()
		f.repo.On("GetByStoragePath", mock.Anything, img.StoragePath).Return(img, nil)
		f.connector.On("Download", mock.Anything, img.StoragePath).Return(io.NopCloser(strings.NewReader("png")), nil)

		body, contentType, err := f.service.Open(context.Background(), img.StoragePath)
		require.NoError(t, err)
		defer body.Close()
		assert.Equal(t, "image/png", contentType)
	})

	t.Run("content type from extension", func(t *testing.T) {
		f := newImageFixture(t)
		f.repo.On("GetByStoragePath", mock.Anything, "product/7/b.webp").Return(nil, images.ErrNotFound)
		f.connector.On("Download", mock.Anything, "product/7/b.webp").Return(io.NopCloser(strings.NewReader("webp")), nil)

		body, contentType, err := f.service.Open(context.Background(), "product/7/b.webp")
		require.NoError(t, err)
		defer body.Close()
		assert.Equal(t, "image/webp", contentType)
	})

	t.Run("path traversal", func(t *testing.T) {
		f := newImageFixture(t)
		_, _, err := f.service.Open(context.Background(), "../etc/passwd")
		assert.ErrorIs(t, err, images.ErrNotFound)
	})
}

func TestImageService_GenerateAltText(t *testing.T) {
	t.Run("generated and saved", func(t *testing.T) {
		f := newImageFixture(t)
		img := storedImage()
		f.repo.On("GetByID", mock.Anything, img.ID).Return(img, nil)
		f.names.On("EntityName", mock.Anything, images.EntityService, "42").Return("Massage relaxant", nil)
		f.connector.On("Download", mock.Anything, img.StoragePath).Return(io.NopCloser(strings.NewReader("png")), nil)
		f.altText.On("Describe", mock.Anything, []byte("png"), "image/png", "Massage relaxant").
			Return("Table de massage dans une pièce lumineuse", nil)
		f.repo.On("UpdateAltText", mock.Anything, img.ID, "Table de massage dans une pièce lumineuse").Return(nil)

		res, err := f.service.GenerateAltText(context.Background(), &images.AltTextRequest{
			ImageID: img.ID, EntityType: images.EntityService, Save: true,
		})
		require.NoError(t, err)
		assert.False(t, res.Fallback)
		assert.True(t, res.Saved)
	})

	t.Run("fallback when model fails", func(t *testing.T) {
		f := newImageFixture(t)
		img := storedImage()
		f.repo.On("GetByID", mock.Anything, img.ID).Return(img, nil)
		f.names.On("EntityName", mock.Anything, images.EntityService, "42").Return("", errors.New("not found"))
		f.connector.On("Download", mock.Anything, img.StoragePath).Return(io.NopCloser(strings.NewReader("png")), nil)
		f.altText.On("Describe", mock.Anything, mock.Anything, "image/png", defaultEntityName).Return("", errors.New("quota"))

		res, err := f.service.GenerateAltText(context.Background(), &images.AltTextRequest{
			ImageID: img.ID, EntityType: images.EntityService,
		})
		require.NoError(t, err)
		assert.True(t, res.Fallback)
		assert.False(t, res.Saved)
		assert.Equal(t, images.FallbackAltText(defaultEntityName), res.AltText)
	})

	t.Run("deleted image", func(t *testing.T) {
		f := newImageFixture(t)
		img := storedImage()
		deleted := time.Now().UTC()
		img.DeletedAt = &deleted
		f.repo.On("GetByID", mock.Anything, img.ID).Return(img, nil)

		_, err := f.service.GenerateAltText(context.Background(), &images.AltTextRequest{
			ImageID: img.ID, EntityType: images.EntityService,
		})
		assert.ErrorIs(t, err, images.ErrNotFound)
	})
}
