package v1

import (
	"fmt"
	"net/http"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/translations"

	"github.com/gin-gonic/gin"
)

// TranslationHandler defines the interface for handling content translations
type TranslationHandler interface {
	Upsert(ctx *gin.Context)
	ListByEntity(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
	Translate(ctx *gin.Context)
}

type translationHandler struct {
	translationService translations.TranslationService
}

// NewTranslationHandler creates a new TranslationHandler
func NewTranslationHandler(translationService translations.TranslationService) TranslationHandler {
	return &translationHandler{translationService: translationService}
}

// Upsert stores a batch of translations of one entity type
func (handler *translationHandler) Upsert(ctx *gin.Context) {
	var request UpsertTranslationsRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, "invalid request body")
		return
	}
	if err := request.Validate(); err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}

	saved, err := handler.translationService.Upsert(ctx.Request.Context(), request.EntityType, request.inputs())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newTranslationResponses(saved))
}

// ListByEntity fetches every translation of an entity
func (handler *translationHandler) ListByEntity(ctx *gin.Context) {
	entityType, entityID := ctx.Query("entity_type"), ctx.Query("entity_id")
	if entityType == "" || entityID == "" {
		respondBadRequest(ctx, "entity_type and entity_id are required")
		return
	}

	items, err := handler.translationService.ListByEntity(ctx.Request.Context(), entityType, entityID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newTranslationResponses(items))
}

// DeleteByID removes one translation
func (handler *translationHandler) DeleteByID(ctx *gin.Context) {
	translationID := ctx.Param("id")

	if err := handler.translationService.Delete(ctx.Request.Context(), translationID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusNoContent, InfoResponse{Message: fmt.Sprintf("deleted translation with id %s", translationID)})
}

// Translate machine translates a text into several languages
func (handler *translationHandler) Translate(ctx *gin.Context) {
	var request TranslateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, "invalid request body")
		return
	}

	result, err := handler.translationService.Translate(ctx.Request.Context(), &translations.TranslateRequest{
		Text:        request.Text,
		SourceLang:  request.SourceLang,
		TargetLangs: request.TargetLangs,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, TranslateResponse{Translations: result.Translations, Mock: result.Mock})
}
