package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/promos"

	"github.com/gin-gonic/gin"
)

// PromoHandler defines the interface for promo code validation and administration
type PromoHandler interface {
	Validate(ctx *gin.Context)
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Update(ctx *gin.Context)
	SetActive(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
	ListUsage(ctx *gin.Context)
	Analytics(ctx *gin.Context)
}

type promoHandler struct {
	validationService promos.PromoValidationService
	adminService      promos.PromoAdminService
	now               func() time.Time
}

// NewPromoHandler creates a new PromoHandler
func NewPromoHandler(validationService promos.PromoValidationService, adminService promos.PromoAdminService) PromoHandler {
	return &promoHandler{
		validationService: validationService,
		adminService:      adminService,
		now:               time.Now,
	}
}

// Validate checks a promo code for the caller. Rejections answer 200 with
// valid=false, except rate limiting which answers 429.
func (handler *promoHandler) Validate(ctx *gin.Context) {
	caller, _ := callerFrom(ctx)

	var request ValidatePromoRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, "invalid request body")
		return
	}
	if err := request.Validate(); err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}

	validation, err := handler.validationService.Validate(ctx.Request.Context(), promos.ValidateInput{
		Code:      request.Code,
		UserID:    caller.UserID,
		ServiceID: request.ServiceID,
		Amount:    request.ServiceAmount,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	status := http.StatusOK
	if validation.ErrorCode == promos.ErrCodeRateLimitExceeded {
		status = http.StatusTooManyRequests
	}
	ctx.JSON(status, newValidatePromoResponse(validation))
}

// Create stores a new promo code authored by the caller
func (handler *promoHandler) Create(ctx *gin.Context) {
	var request PromoCodeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, "invalid request body")
		return
	}
	if err := request.Validate(); err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}

	promo := request.toPromoCode()
	if caller, ok := callerFrom(ctx); ok {
		promo.CreatedBy = &caller.UserID
	}

	created, err := handler.adminService.Create(ctx.Request.Context(), promo)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newPromoCodeResponse(created, handler.now()))
}

// List fetches promo codes with optional filters
func (handler *promoHandler) List(ctx *gin.Context) {
	query := promos.NewPromoQuery()

	var err error
	if query.Page, err = queryInt(ctx, "page", query.Page); err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}
	if query.PageSize, err = queryInt(ctx, "page_size", query.PageSize); err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}
	if query.IsActive, err = queryBool(ctx, "is_active"); err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}
	if query.CreatedAfter, err = queryTime(ctx, "created_after"); err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}
	if query.CreatedBefore, err = queryTime(ctx, "created_before"); err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}
	query.DiscountType = promos.DiscountType(ctx.Query("discount_type"))
	query.Search = ctx.Query("search")
	if sortBy := ctx.Query("sort_by"); sortBy != "" {
		query.SortBy = sortBy
	}
	if sortOrder := ctx.Query("sort_order"); sortOrder != "" {
		query.SortOrder = sortOrder
	}

	page, err := handler.adminService.List(ctx.Request.Context(), query)
	if err != nil {
		respondError(ctx, err)
		return
	}

	now := handler.now()
	response := PromoPageResponse{
		Items:      make([]PromoCodeResponse, 0, len(page.Items)),
		Page:       page.Page.Page,
		PageSize:   page.Page.Limit,
		TotalItems: page.Page.Total,
		TotalPages: page.Page.Pages,
		HasNext:    page.Page.HasNext(),
	}
	for _, promo := range page.Items {
		response.Items = append(response.Items, newPromoCodeResponse(promo, now))
	}
	ctx.JSON(http.StatusOK, response)
}

// GetByID fetches one promo code
func (handler *promoHandler) GetByID(ctx *gin.Context) {
	promo, err := handler.adminService.GetByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newPromoCodeResponse(promo, handler.now()))
}

// Update replaces the editable fields of a promo code
func (handler *promoHandler) Update(ctx *gin.Context) {
	var request PromoCodeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, "invalid request body")
		return
	}
	if err := request.Validate(); err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}

	promo := request.toPromoCode()
	promo.ID = ctx.Param("id")

	updated, err := handler.adminService.Update(ctx.Request.Context(), promo)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newPromoCodeResponse(updated, handler.now()))
}

// SetActive activates or deactivates a promo code
func (handler *promoHandler) SetActive(ctx *gin.Context) {
	var request SetActiveRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, "invalid request body")
		return
	}
	if err := request.Validate(); err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}

	promo, err := handler.adminService.SetActive(ctx.Request.Context(), ctx.Param("id"), *request.IsActive)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newPromoCodeResponse(promo, handler.now()))
}

// DeleteByID removes a promo code that was never redeemed
func (handler *promoHandler) DeleteByID(ctx *gin.Context) {
	promoID := ctx.Param("id")

	if err := handler.adminService.Delete(ctx.Request.Context(), promoID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusNoContent, InfoResponse{Message: fmt.Sprintf("deleted promo code with id %s", promoID)})
}

// ListUsage fetches the redemptions of a promo code
func (handler *promoHandler) ListUsage(ctx *gin.Context) {
	usages, err := handler.adminService.ListUsage(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]PromoUsageResponse, 0, len(usages))
	for _, u := range usages {
		response = append(response, PromoUsageResponse{
			ID:             u.ID,
			BookingID:      u.BookingID,
			UserID:         u.UserID,
			OriginalAmount: u.OriginalAmount,
			DiscountAmount: u.DiscountAmount,
			FinalAmount:    u.FinalAmount,
			UsedAt:         u.UsedAt,
		})
	}
	ctx.JSON(http.StatusOK, response)
}

// Analytics aggregates promo usage across the platform
func (handler *promoHandler) Analytics(ctx *gin.Context) {
	analytics, err := handler.adminService.Analytics(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, PromoAnalyticsResponse{
		TotalActiveCodes:       analytics.TotalActiveCodes,
		TotalUses:              analytics.TotalUses,
		TotalPlatformCost:      analytics.TotalPlatformCost,
		TotalRevenueWithPromos: analytics.TotalRevenueWithPromo,
		ROIPercentage:          analytics.ROIPercentage,
	})
}
