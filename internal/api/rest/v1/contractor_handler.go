package v1

import (
	"net/http"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/catalog"

	"github.com/gin-gonic/gin"
)

// ContractorHandler defines the interface for contractor availability
type ContractorHandler interface {
	Available(ctx *gin.Context)
}

type contractorHandler struct {
	contractorService catalog.ContractorService
}

// NewContractorHandler creates a new ContractorHandler
func NewContractorHandler(contractorService catalog.ContractorService) ContractorHandler {
	return &contractorHandler{contractorService: contractorService}
}

// Available lists the contractors free for a service at a local date and time
// @Summary List available contractors
// @Tags Contractor
// @Produce json
// @Param service_id query string true "Service ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param time query string true "Time (HH:mm)"
// @Param timezone query string false "IANA timezone, Europe/Paris by default"
// @Success 200 {object} AvailabilityResponse
// @Failure 400 {object} ErrorResponse
// @Router /contractors/available [get]
func (handler *contractorHandler) Available(ctx *gin.Context) {
	query := &catalog.AvailabilityQuery{
		ServiceID: ctx.Query("service_id"),
		Date:      ctx.Query("date"),
		Time:      ctx.Query("time"),
		Timezone:  ctx.Query("timezone"),
	}
	if query.ServiceID == "" || query.Date == "" || query.Time == "" {
		respondBadRequest(ctx, "service_id, date and time are required")
		return
	}

	availability, err := handler.contractorService.AvailableContractors(ctx.Request.Context(), query)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newAvailabilityResponse(availability))
}
