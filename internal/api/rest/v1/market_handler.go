package v1

import (
	"fmt"
	"net/http"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/markets"

	"github.com/gin-gonic/gin"
)

// MarketHandler defines the interface for handling market administration
type MarketHandler interface {
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Stats(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type marketHandler struct {
	marketService markets.MarketService
}

// NewMarketHandler creates a new MarketHandler
func NewMarketHandler(marketService markets.MarketService) MarketHandler {
	return &marketHandler{marketService: marketService}
}

// List handles the GET request to fetch markets
// @Summary List markets
// @Description Fetch a page of markets, optionally filtered by status or a search on name and code.
// @Tags Market
// @Produce json
// @Param page query int false "Page, 1 by default"
// @Param limit query int false "Page size, 20 by default"
// @Param is_active query bool false "Active markets only"
// @Param search query string false "Search on name or code"
// @Param sort query string false "id, name, code or created_at"
// @Param order query string false "asc or desc"
// @Success 200 {object} MarketPageResponse
// @Failure 400 {object} ErrorResponse
// @Router /admin/markets [get]
func (handler *marketHandler) List(ctx *gin.Context) {
	query := markets.NewQuery()

	var err error
	if query.Page, err = queryInt(ctx, "page", query.Page); err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}
	if query.Limit, err = queryInt(ctx, "limit", query.Limit); err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}
	if query.IsActive, err = queryBool(ctx, "is_active"); err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}
	query.Search = ctx.Query("search")
	if sort := ctx.Query("sort"); sort != "" {
		query.Sort = sort
	}
	if order := ctx.Query("order"); order != "" {
		query.Order = order
	}

	page, err := handler.marketService.List(ctx.Request.Context(), query)
	if err != nil {
		respondError(ctx, err)
		return
	}

	response := MarketPageResponse{
		Data:       make([]MarketResponse, 0, len(page.Data)),
		Pagination: newPaginationResponse(page.Pagination),
	}
	for _, m := range page.Data {
		response.Data = append(response.Data, newMarketResponse(m))
	}
	ctx.JSON(http.StatusOK, response)
}

// GetByID handles the GET request to fetch one market
func (handler *marketHandler) GetByID(ctx *gin.Context) {
	market, err := handler.marketService.GetByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newMarketResponse(market))
}

// Stats handles the GET request to count what a market holds
func (handler *marketHandler) Stats(ctx *gin.Context) {
	stats, err := handler.marketService.Stats(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, MarketStatsResponse{
		TotalContractors:  stats.TotalContractors,
		ActiveContractors: stats.ActiveContractors,
		TotalServices:     stats.TotalServices,
	})
}

// Create handles the POST request to create a market
// @Summary Create a market
// @Tags Market
// @Accept json
// @Produce json
// @Param market body MarketRequest true "Market"
// @Success 201 {object} MarketResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /admin/markets [post]
func (handler *marketHandler) Create(ctx *gin.Context) {
	var request MarketRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, "invalid request body")
		return
	}

	market, err := handler.marketService.Create(ctx.Request.Context(), request.toMarket())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newMarketResponse(market))
}

// Update handles the PUT request to change some fields of a market
func (handler *marketHandler) Update(ctx *gin.Context) {
	var request MarketPatchRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, "invalid request body")
		return
	}

	market, err := handler.marketService.Update(ctx.Request.Context(), ctx.Param("id"), request.toPatch())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newMarketResponse(market))
}

// DeleteByID handles the DELETE request to deactivate a market, or remove it with hard=true
// @Summary Delete a market
// @Tags Market
// @Produce json
// @Param id path string true "Market ID"
// @Param hard query bool false "Remove the row instead of deactivating it"
// @Success 204 {object} InfoResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /admin/markets/{id} [delete]
func (handler *marketHandler) DeleteByID(ctx *gin.Context) {
	marketID := ctx.Param("id")

	hard, err := queryBool(ctx, "hard")
	if err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}

	if err := handler.marketService.Delete(ctx.Request.Context(), marketID, hard != nil && *hard); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusNoContent, InfoResponse{Message: fmt.Sprintf("deleted market with id %s", marketID)})
}
