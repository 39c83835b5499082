package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"path"
	"strings"
	"time"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/catalog"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/images"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/logger"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/validators"

	"github.com/google/uuid"
)

// ImageServePrefix is the public route images are served from
const ImageServePrefix = "/api/v1/images/serve/"

// defaultEntityName names images whose entity cannot be resolved
const defaultEntityName = "Image"

// imageService implements the ImageService interface
type imageService struct {
	imageRepo      images.ImageRepository
	imageConnector images.ImageConnector
	altText        images.AltTextGenerator
	names          images.EntityNameResolver
	logger         logger.Logger
	now            func() time.Time
}

// NewImageService creates a new instance of ImageService.
// altText may be nil, in which case generated alt texts use the fallback.
func NewImageService(
	imageRepo images.ImageRepository,
	imageConnector images.ImageConnector,
	altText images.AltTextGenerator,
	names images.EntityNameResolver,
	logger logger.Logger,
) (images.ImageService, error) {
	return &imageService{
		imageRepo:      imageRepo,
		imageConnector: imageConnector,
		altText:        altText,
		names:          names,
		logger:         logger,
		now:            time.Now,
	}, nil
}

func (s *imageService) Upload(ctx context.Context, file *multipart.FileHeader, req *images.UploadRequest) (*images.ServiceImage, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if file == nil {
		return nil, fmt.Errorf("%w: no file provided", validators.ErrValidation)
	}

	mimeType := strings.ToLower(file.Header.Get("Content-Type"))
	ext, err := images.CheckFile(mimeType, file.Size)
	if err != nil {
		return nil, err
	}

	count, err := s.imageRepo.CountLive(ctx, req.EntityType, req.EntityID)
	if err != nil {
		return nil, fmt.Errorf("failed to count images: %w", err)
	}
	if count >= images.MaxImagesPerItem {
		return nil, images.ErrLimitReached
	}

	id := uuid.NewString()
	storagePath := images.StoragePath(req.EntityType, req.EntityID, id, ext)

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	if err := s.imageConnector.Upload(ctx, storagePath, src, mimeType); err != nil {
		return nil, fmt.Errorf("failed to store image: %w", err)
	}

	now := s.now().UTC()
	image := &images.ServiceImage{
		ID:           id,
		EntityType:   req.EntityType,
		EntityID:     req.EntityID,
		StoragePath:  storagePath,
		URL:          ImageServePrefix + storagePath,
		AltText:      req.AltText,
		DisplayOrder: int(count),
		IsPrimary:    req.IsPrimary,
		FileSize:     file.Size,
		MimeType:     mimeType,
		UploadedBy:   req.UserID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.imageRepo.Create(ctx, image); err != nil {
		if delErr := s.imageConnector.Delete(ctx, storagePath); delErr != nil {
			s.logger.Warn("failed to remove orphaned image blob", "path", storagePath, "error", delErr)
		}
		return nil, fmt.Errorf("failed to save image: %w", err)
	}

	if image.IsPrimary {
		if err := s.imageRepo.ClearPrimary(ctx, image.EntityType, image.EntityID, image.ID); err != nil {
			s.logger.Warn("failed to unset previous primary image", "image_id", image.ID, "error", err)
		}
	}

	s.logger.Info("image uploaded", "image_id", image.ID, "path", storagePath, "size", image.FileSize)
	return image, nil
}

func (s *imageService) List(ctx context.Context, entityType, entityID string) ([]*images.ServiceImage, error) {
	return s.imageRepo.ListLive(ctx, entityType, entityID)
}

// Reorder sets display_order to each id's position. Every id must be a live image of the entity.
func (s *imageService) Reorder(ctx context.Context, req *images.ReorderRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	live, err := s.imageRepo.ListLive(ctx, req.EntityType, req.EntityID)
	if err != nil {
		return fmt.Errorf("failed to list images: %w", err)
	}
	owned := make(map[string]struct{}, len(live))
	for _, img := range live {
		owned[img.ID] = struct{}{}
	}
	for _, id := range req.ImageOrder {
		if _, ok := owned[id]; !ok {
			return fmt.Errorf("%w: %s", images.ErrForeignImage, id)
		}
	}

	return s.imageRepo.UpdateOrder(ctx, req.ImageOrder)
}

// Delete soft-deletes an image. The stored blob is kept.
func (s *imageService) Delete(ctx context.Context, id string) error {
	image, err := s.imageRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if image.DeletedAt != nil {
		return images.ErrAlreadyDeleted
	}
	if err := s.imageRepo.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("image deleted", "image_id", id)
	return nil
}

// Open streams a stored image. The content type comes from the image row and
// falls back to the file extension for blobs without one.
func (s *imageService) Open(ctx context.Context, storagePath string) (io.ReadCloser, string, error) {
	if _, err := images.EntityTypeOfPath(storagePath); err != nil {
		return nil, "", images.ErrNotFound
	}

	contentType := mime.TypeByExtension(path.Ext(storagePath))
	image, err := s.imageRepo.GetByStoragePath(ctx, storagePath)
	switch {
	case err == nil:
		contentType = image.MimeType
	case !errors.Is(err, images.ErrNotFound):
		return nil, "", fmt.Errorf("failed to load image: %w", err)
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	body, err := s.imageConnector.Download(ctx, storagePath)
	if err != nil {
		return nil, "", err
	}
	return body, contentType, nil
}

func (s *imageService) GenerateAltText(ctx context.Context, req *images.AltTextRequest) (*images.AltTextResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	image, err := s.imageRepo.GetByID(ctx, req.ImageID)
	if err != nil {
		return nil, err
	}
	if image.DeletedAt != nil {
		return nil, images.ErrNotFound
	}

	name := defaultEntityName
	if s.names != nil {
		resolved, err := s.names.EntityName(ctx, req.EntityType, image.EntityID)
		if err != nil {
			s.logger.Warn("failed to resolve image entity name", "image_id", image.ID, "error", err)
		} else if resolved != "" {
			name = resolved
		}
	}

	result := &images.AltTextResult{}
	text, err := s.describe(ctx, image, name)
	if err != nil {
		s.logger.Warn("alt text generation failed, using fallback", "image_id", image.ID, "error", err)
		result.AltText = images.FallbackAltText(name)
		result.Fallback = true
	} else {
		result.AltText = text
	}

	if req.Save {
		if err := s.imageRepo.UpdateAltText(ctx, image.ID, result.AltText); err != nil {
			return nil, fmt.Errorf("failed to save alt text: %w", err)
		}
		result.Saved = true
	}
	return result, nil
}

func (s *imageService) describe(ctx context.Context, image *images.ServiceImage, entityName string) (string, error) {
	if s.altText == nil {
		return "", errors.New("alt text generator not configured")
	}

	body, err := s.imageConnector.Download(ctx, image.StoragePath)
	if err != nil {
		return "", fmt.Errorf("failed to download image: %w", err)
	}
	defer body.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, io.LimitReader(body, images.MaxFileSize+1)); err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}

	text, err := s.altText.Describe(ctx, buf.Bytes(), image.MimeType, entityName)
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", errors.New("empty alt text")
	}
	return text, nil
}

// catalogEntityNames resolves service images to the service name
type catalogEntityNames struct {
	serviceRepo catalog.ServiceRepository
}

// NewEntityNameResolver creates an EntityNameResolver backed by the service catalog
func NewEntityNameResolver(serviceRepo catalog.ServiceRepository) images.EntityNameResolver {
	return &catalogEntityNames{serviceRepo: serviceRepo}
}

func (r *catalogEntityNames) EntityName(ctx context.Context, entityType, entityID string) (string, error) {
	if entityType != images.EntityService {
		return "", nil
	}
	service, err := r.serviceRepo.GetByID(ctx, entityID)
	if err != nil {
		return "", err
	}
	return service.Name, nil
}
