package images

import (
	"context"
	"io"
	"mime/multipart"
)

// ImageService manages entity images
type ImageService interface {
	// Upload checks type, size and the per-entity limit, stores the file and records its metadata.
	Upload(ctx context.Context, file *multipart.FileHeader, req *UploadRequest) (*ServiceImage, error)
	// List returns the live images of an entity in display order.
	List(ctx context.Context, entityType, entityID string) ([]*ServiceImage, error)
	Reorder(ctx context.Context, req *ReorderRequest) error
	// Delete soft deletes an image; a second call returns ErrAlreadyDeleted.
	Delete(ctx context.Context, id string) error
	// Open streams a stored image by path and returns its content type.
	Open(ctx context.Context, storagePath string) (io.ReadCloser, string, error)
	GenerateAltText(ctx context.Context, req *AltTextRequest) (*AltTextResult, error)
}

// ImageRepository defines persistence for image metadata
type ImageRepository interface {
	Create(ctx context.Context, image *ServiceImage) error
	// GetByID returns the image even when soft deleted.
	GetByID(ctx context.Context, id string) (*ServiceImage, error)
	ListLive(ctx context.Context, entityType, entityID string) ([]*ServiceImage, error)
	CountLive(ctx context.Context, entityType, entityID string) (int64, error)
	// ClearPrimary unsets is_primary on every live image of the entity except keepID.
	ClearPrimary(ctx context.Context, entityType, entityID, keepID string) error
	// UpdateOrder sets display_order to the index of each id in one transaction.
	UpdateOrder(ctx context.Context, ids []string) error
	UpdateAltText(ctx context.Context, id, altText string) error
	SoftDelete(ctx context.Context, id string) error
	GetByStoragePath(ctx context.Context, storagePath string) (*ServiceImage, error)
}

// ImageConnector stores image bytes in object storage
type ImageConnector interface {
	Upload(ctx context.Context, storagePath string, content io.Reader, contentType string) error
	Download(ctx context.Context, storagePath string) (io.ReadCloser, error)
	Delete(ctx context.Context, storagePath string) error
}

// AltTextGenerator describes an image for screen readers
type AltTextGenerator interface {
	Describe(ctx context.Context, image []byte, mimeType, entityName string) (string, error)
}

// EntityNameResolver returns a human readable name of an image owner
type EntityNameResolver interface {
	EntityName(ctx context.Context, entityType, entityID string) (string, error)
}
