package v1

import (
	"net/http"
	"time"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/bookings"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/catalog"

	"github.com/gin-gonic/gin"
)

// BookingRequestHandler defines the interface for contractor answers to booking requests
type BookingRequestHandler interface {
	ListForContractor(ctx *gin.Context)
	Accept(ctx *gin.Context)
	Refuse(ctx *gin.Context)
	ExpirePending(ctx *gin.Context)
}

type bookingRequestHandler struct {
	requestService bookings.BookingRequestService
	actors         actorResolver
	now            func() time.Time
}

// NewBookingRequestHandler creates a new BookingRequestHandler
func NewBookingRequestHandler(requestService bookings.BookingRequestService, contractorService catalog.ContractorService) BookingRequestHandler {
	return &bookingRequestHandler{
		requestService: requestService,
		actors:         actorResolver{contractors: contractorService},
		now:            time.Now,
	}
}

// ListForContractor fetches the requests addressed to the calling contractor
func (handler *bookingRequestHandler) ListForContractor(ctx *gin.Context) {
	actor, err := handler.actors.resolve(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}
	if actor.ContractorID == "" {
		respondError(ctx, catalog.ErrContractorNotFound)
		return
	}

	status := bookings.RequestStatus(ctx.Query("status"))
	switch status {
	case "", bookings.RequestPending, bookings.RequestAccepted, bookings.RequestRefused, bookings.RequestExpired:
	default:
		respondBadRequest(ctx, "invalid status")
		return
	}

	items, err := handler.requestService.ListForContractor(ctx.Request.Context(), actor.ContractorID, status)
	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]BookingRequestResponse, 0, len(items))
	for _, item := range items {
		response = append(response, newBookingRequestResponse(item))
	}
	ctx.JSON(http.StatusOK, response)
}

// Accept confirms a booking request and captures its payment
func (handler *bookingRequestHandler) Accept(ctx *gin.Context) {
	actor, err := handler.actors.resolve(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	result, err := handler.requestService.Accept(ctx.Request.Context(), ctx.Param("id"), actor)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newBookingRequestResponse(result))
}

// Refuse declines a booking request and cancels its booking
func (handler *bookingRequestHandler) Refuse(ctx *gin.Context) {
	actor, err := handler.actors.resolve(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	var request RefuseBookingRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, "invalid request body")
		return
	}
	if err := request.Validate(); err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}

	result, err := handler.requestService.Refuse(ctx.Request.Context(), ctx.Param("id"), actor, request.Reason, request.Message)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newBookingRequestResponse(result))
}

// ExpirePending expires every request past its deadline
func (handler *bookingRequestHandler) ExpirePending(ctx *gin.Context) {
	count, err := handler.requestService.ExpirePending(ctx.Request.Context(), handler.now().UTC())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, ExpireRequestsResponse{ExpiredCount: count})
}
