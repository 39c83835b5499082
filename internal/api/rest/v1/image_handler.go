package v1

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/images"

	"github.com/gin-gonic/gin"
)

// ImageHandler defines the interface for handling entity images
type ImageHandler interface {
	Upload(ctx *gin.Context)
	List(ctx *gin.Context)
	Reorder(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
	GenerateAltText(ctx *gin.Context)
	Serve(ctx *gin.Context)
}

type imageHandler struct {
	imageService images.ImageService
}

// NewImageHandler creates a new ImageHandler
func NewImageHandler(imageService images.ImageService) ImageHandler {
	return &imageHandler{imageService: imageService}
}

// Upload stores one image sent as the "file" part of a multipart form
func (handler *imageHandler) Upload(ctx *gin.Context) {
	caller, _ := callerFrom(ctx)

	file, err := ctx.FormFile("file")
	if err != nil {
		respondImageValidation(ctx, "file is required")
		return
	}

	request := &images.UploadRequest{
		EntityType: ctx.PostForm("entity_type"),
		EntityID:   ctx.PostForm("entity_id"),
		UserID:     caller.UserID,
	}
	if altText := strings.TrimSpace(ctx.PostForm("alt_text")); altText != "" {
		request.AltText = &altText
	}
	if raw := ctx.PostForm("is_primary"); raw != "" {
		isPrimary, err := strconv.ParseBool(raw)
		if err != nil {
			respondImageValidation(ctx, "is_primary must be a boolean")
			return
		}
		request.IsPrimary = isPrimary
	}

	img, err := handler.imageService.Upload(ctx.Request.Context(), file, request)
	if err != nil {
		respondImageError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, ImageResponse{Success: true, Data: newImageMetadataResponse(img)})
}

// List fetches the live images of an entity in display order
func (handler *imageHandler) List(ctx *gin.Context) {
	entityType, entityID := ctx.Query("entity_type"), ctx.Query("entity_id")
	if entityType == "" || entityID == "" {
		respondImageValidation(ctx, "entity_type and entity_id are required")
		return
	}

	items, err := handler.imageService.List(ctx.Request.Context(), entityType, entityID)
	if err != nil {
		respondImageError(ctx, err)
		return
	}

	data := make([]ImageMetadataResponse, 0, len(items))
	for _, img := range items {
		data = append(data, newImageMetadataResponse(img))
	}
	ctx.JSON(http.StatusOK, ImageResponse{Success: true, Data: data})
}

// Reorder sets the display order of an entity's images
func (handler *imageHandler) Reorder(ctx *gin.Context) {
	var request ReorderImagesRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondImageValidation(ctx, "invalid request body")
		return
	}

	err := handler.imageService.Reorder(ctx.Request.Context(), &images.ReorderRequest{
		EntityType: request.EntityType,
		EntityID:   request.EntityID,
		ImageOrder: request.ImageOrder,
	})
	if err != nil {
		respondImageError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, ImageResponse{Success: true})
}

// DeleteByID soft deletes an image
func (handler *imageHandler) DeleteByID(ctx *gin.Context) {
	if err := handler.imageService.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondImageError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, ImageResponse{Success: true})
}

// GenerateAltText describes an image, optionally saving the result
func (handler *imageHandler) GenerateAltText(ctx *gin.Context) {
	var request GenerateAltTextRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondImageValidation(ctx, "invalid request body")
		return
	}

	result, err := handler.imageService.GenerateAltText(ctx.Request.Context(), &images.AltTextRequest{
		ImageID:    request.ImageID,
		EntityType: request.EntityType,
		Save:       request.Save,
	})
	if err != nil {
		respondImageError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, ImageResponse{Success: true, Data: AltTextResponse{
		AltText:  result.AltText,
		Fallback: result.Fallback,
		Saved:    result.Saved,
	}})
}

// Serve streams a stored image. Paths are immutable, so responses are cached for a year.
func (handler *imageHandler) Serve(ctx *gin.Context) {
	storagePath := strings.TrimPrefix(ctx.Param("path"), "/")
	if storagePath == "" {
		respondImageValidation(ctx, "image path is required")
		return
	}

	content, contentType, err := handler.imageService.Open(ctx.Request.Context(), storagePath)
	if err != nil {
		respondImageError(ctx, err)
		return
	}
	defer content.Close()

	ctx.Header("Cache-Control", images.ServeCacheControl)
	ctx.DataFromReader(http.StatusOK, -1, contentType, content, nil)
}
