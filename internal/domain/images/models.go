package images

import (
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/validators"
)

// Entity types that own images
const (
	EntityService        = "service"
	EntityProduct        = "product"
	EntityProductVariant = "product_variant"
	EntityConversation   = "conversation"
)

// Upload limits
const (
	MaxFileSize      = 5 * 1024 * 1024
	MaxImagesPerItem = 10
	MaxAltTextLength = 125
)

// ServeCacheControl is sent with every served image; stored paths are immutable
const ServeCacheControl = "public, max-age=31536000, immutable"

var extensionsByMime = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
}

var (
	// ErrNotFound is returned when no live image matches
	ErrNotFound = errors.New("image not found")
	// ErrAlreadyDeleted is returned when deleting an image twice
	ErrAlreadyDeleted = errors.New("image already deleted")
	// ErrLimitReached is returned when an entity already holds MaxImagesPerItem images
	ErrLimitReached = errors.New("maximum number of images reached")
	// ErrInvalidFileType is returned for anything other than JPEG, PNG or WebP
	ErrInvalidFileType = errors.New("unsupported file type (JPEG, PNG, WebP only)")
	// ErrFileTooLarge is returned for files above MaxFileSize
	ErrFileTooLarge = errors.New("file too large (max 5MB)")
	// ErrForeignImage is returned when a reorder names an image of another entity
	ErrForeignImage = errors.New("image does not belong to entity")
)

// ServiceImage is the metadata of a stored image
type ServiceImage struct {
	ID           string  `validate:"required,uuid4"`
	EntityType   string  `validate:"required,oneof=service product product_variant conversation"`
	EntityID     string  `validate:"required,min=1,max=64"`
	StoragePath  string  `validate:"required,max=512"`
	URL          string  `validate:"required"`
	AltText      *string `validate:"omitempty,max=125"`
	DisplayOrder int     `validate:"min=0"`
	IsPrimary    bool
	FileSize     int64  `validate:"required,min=1,max=5242880"`
	MimeType     string `validate:"required,oneof=image/jpeg image/png image/webp"`
	UploadedBy   string `validate:"required,uuid4"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}

// Validate for validating ServiceImage struct
func (i *ServiceImage) Validate() error {
	return validators.ValidateStruct(i)
}

// UploadRequest describes the metadata sent with an uploaded file
type UploadRequest struct {
	EntityType string  `validate:"required,oneof=service product product_variant conversation"`
	EntityID   string  `validate:"required,min=1,max=64"`
	AltText    *string `validate:"omitempty,max=125"`
	IsPrimary  bool
	UserID     string `validate:"required,uuid4"`
}

// Validate for validating UploadRequest struct
func (r *UploadRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// ReorderRequest sets the display order of an entity's images to the order of ImageOrder
type ReorderRequest struct {
	EntityType string   `validate:"required,oneof=service product product_variant conversation"`
	EntityID   string   `validate:"required,min=1,max=64"`
	ImageOrder []string `validate:"required,min=1,unique,dive,uuid4"`
}

// Validate for validating ReorderRequest struct
func (r *ReorderRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// AltTextRequest asks for a generated description of an image
type AltTextRequest struct {
	ImageID    string `validate:"required,uuid4"`
	EntityType string `validate:"required,oneof=service product product_variant conversation"`
	Save       bool
}

// Validate for validating AltTextRequest struct
func (r *AltTextRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// AltTextResult is a generated alt text; Fallback is set when no model produced it
type AltTextResult struct {
	AltText  string
	Fallback bool
	Saved    bool
}

// CheckFile validates the declared type and size of an upload and returns the file extension
func CheckFile(mimeType string, size int64) (string, error) {
	ext, ok := extensionsByMime[strings.ToLower(mimeType)]
	if !ok {
		return "", ErrInvalidFileType
	}
	if size <= 0 || size > MaxFileSize {
		return "", ErrFileTooLarge
	}
	return ext, nil
}

// StoragePath builds "<entityType>/<entityID>/<id>.<ext>"
func StoragePath(entityType, entityID, id, ext string) string {
	return path.Join(entityType, entityID, fmt.Sprintf("%s.%s", id, ext))
}

// EntityTypeOfPath returns the entity type encoded as the first segment of a storage path
func EntityTypeOfPath(storagePath string) (string, error) {
	if strings.Contains(storagePath, "..") {
		return "", fmt.Errorf("invalid image path %q", storagePath)
	}
	clean := strings.TrimPrefix(path.Clean("/"+storagePath), "/")
	if clean == "" {
		return "", fmt.Errorf("invalid image path %q", storagePath)
	}
	segment := strings.SplitN(clean, "/", 2)[0]
	switch segment {
	case EntityService, EntityProduct, EntityProductVariant, EntityConversation:
		return segment, nil
	}
	return "", fmt.Errorf("invalid image path %q", storagePath)
}

// FallbackAltText is used when no model can describe an image
func FallbackAltText(entityName string) string {
	return TruncateAltText(fmt.Sprintf("%s - Simone Paris", entityName))
}

// TruncateAltText trims s to MaxAltTextLength runes
func TruncateAltText(s string) string {
	s = strings.TrimSpace(s)
	r := []rune(s)
	if len(r) <= MaxAltTextLength {
		return s
	}
	return strings.TrimSpace(string(r[:MaxAltTextLength]))
}
