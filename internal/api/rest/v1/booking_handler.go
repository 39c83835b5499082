package v1

import (
	"net/http"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/bookings"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/catalog"

	"github.com/gin-gonic/gin"
)

// BookingHandler defines the interface for handling bookings
type BookingHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Cancel(ctx *gin.Context)
	CapturePayment(ctx *gin.Context)
	Complete(ctx *gin.Context)
	Confirm(ctx *gin.Context)
	AssignContractor(ctx *gin.Context)
}

type bookingHandler struct {
	bookingService bookings.BookingService
	actors         actorResolver
}

// NewBookingHandler creates a new BookingHandler
func NewBookingHandler(bookingService bookings.BookingService, contractorService catalog.ContractorService) BookingHandler {
	return &bookingHandler{
		bookingService: bookingService,
		actors:         actorResolver{contractors: contractorService},
	}
}

// Create books a service for the caller
// @Summary Create a booking
// @Description Store a pending booking for an authorised payment intent, or for "no-payment-required" when discounts cover the price.
// @Tags Booking
// @Accept json
// @Produce json
// @Param booking body CreateBookingRequest true "Booking"
// @Success 201 {object} BookingResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /bookings [post]
func (handler *bookingHandler) Create(ctx *gin.Context) {
	caller, _ := callerFrom(ctx)

	var request CreateBookingRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, "invalid request body")
		return
	}

	booking, err := handler.bookingService.Create(ctx.Request.Context(), &bookings.CreateInput{
		ClientID:        caller.UserID,
		ClientEmail:     caller.Email,
		ServiceID:       request.ServiceID,
		AddressID:       request.AddressID,
		ContractorID:    request.ContractorID,
		ScheduledAt:     request.ScheduledAt,
		BookingTimezone: request.BookingTimezone,
		PaymentIntentID: request.PaymentIntentID,
		PromoCode:       request.PromoCode,
		GiftCardCode:    request.GiftCardCode,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newBookingResponse(booking))
}

// List fetches the bookings visible to the caller
func (handler *bookingHandler) List(ctx *gin.Context) {
	actor, err := handler.actors.resolve(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	query := bookings.NewQuery()
	if query.Page, err = queryInt(ctx, "page", query.Page); err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}
	if query.Limit, err = queryInt(ctx, "limit", query.Limit); err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}
	if query.From, err = queryTime(ctx, "from"); err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}
	if query.To, err = queryTime(ctx, "to"); err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}
	query.Status = bookings.Status(ctx.Query("status"))
	if clientID := ctx.Query("client_id"); clientID != "" {
		query.ClientID = &clientID
	}
	if contractorID := ctx.Query("contractor_id"); contractorID != "" {
		query.ContractorID = &contractorID
	}

	page, err := handler.bookingService.List(ctx.Request.Context(), query, actor)
	if err != nil {
		respondError(ctx, err)
		return
	}

	response := BookingPageResponse{
		Data:       make([]BookingResponse, 0, len(page.Items)),
		Pagination: newPaginationResponse(page.Page),
	}
	for _, b := range page.Items {
		response.Data = append(response.Data, newBookingResponse(b))
	}
	ctx.JSON(http.StatusOK, response)
}

// GetByID fetches one booking the caller may see
func (handler *bookingHandler) GetByID(ctx *gin.Context) {
	actor, err := handler.actors.resolve(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	booking, err := handler.bookingService.GetByID(ctx.Request.Context(), ctx.Param("id"), actor)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newBookingResponse(booking))
}

// Cancel cancels a booking and releases or refunds its payment
// @Summary Cancel a booking
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param body body CancelBookingRequest false "Reason"
// @Success 200 {object} CancelBookingResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /bookings/{id}/cancel [post]
func (handler *bookingHandler) Cancel(ctx *gin.Context) {
	actor, err := handler.actors.resolve(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	var request CancelBookingRequest
	if ctx.Request.ContentLength != 0 {
		if err := ctx.ShouldBindJSON(&request); err != nil {
			respondBadRequest(ctx, "invalid request body")
			return
		}
	}

	result, err := handler.bookingService.Cancel(ctx.Request.Context(), ctx.Param("id"), actor, request.Reason)
	if err != nil {
		respondError(ctx, err)
		return
	}

	response := CancelBookingResponse{Booking: newBookingResponse(result.Booking)}
	if result.PaymentAction != nil {
		response.PaymentAction = &PaymentActionResponse{
			Type:   result.PaymentAction.Type,
			ID:     result.PaymentAction.ID,
			Amount: result.PaymentAction.Amount,
		}
	}
	ctx.JSON(http.StatusOK, response)
}

// CapturePayment charges a confirmed booking
func (handler *bookingHandler) CapturePayment(ctx *gin.Context) {
	actor, err := handler.actors.resolve(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	var request CapturePaymentRequest
	if ctx.Request.ContentLength != 0 {
		if err := ctx.ShouldBindJSON(&request); err != nil {
			respondBadRequest(ctx, "invalid request body")
			return
		}
	}
	if err := request.Validate(); err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}

	booking, err := handler.bookingService.CapturePayment(ctx.Request.Context(), ctx.Param("id"), actor, request.Amount)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newBookingResponse(booking))
}

// Complete marks a booking as done
func (handler *bookingHandler) Complete(ctx *gin.Context) {
	actor, err := handler.actors.resolve(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	booking, err := handler.bookingService.MarkCompleted(ctx.Request.Context(), ctx.Param("id"), actor)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newBookingResponse(booking))
}

// Confirm lets staff confirm a pending booking without charging it
// @Summary Confirm a booking manually
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} BookingResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/bookings/{id}/confirm [post]
func (handler *bookingHandler) Confirm(ctx *gin.Context) {
	actor, err := handler.actors.resolve(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	booking, err := handler.bookingService.Confirm(ctx.Request.Context(), ctx.Param("id"), actor)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newBookingResponse(booking))
}

// AssignContractor gives a booking to a contractor free for its slot
func (handler *bookingHandler) AssignContractor(ctx *gin.Context) {
	var request AssignContractorRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, "invalid request body")
		return
	}
	if err := request.Validate(); err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}

	booking, err := handler.bookingService.AssignContractor(ctx.Request.Context(), ctx.Param("id"), request.ContractorID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newBookingResponse(booking))
}
