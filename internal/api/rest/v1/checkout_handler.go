package v1

import (
	"net/http"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/giftcards"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/payments"

	"github.com/gin-gonic/gin"
)

// CheckoutHandler defines the interface for pricing a booking before it is confirmed
type CheckoutHandler interface {
	ValidateGiftCard(ctx *gin.Context)
	CreatePaymentIntent(ctx *gin.Context)
}

type checkoutHandler struct {
	giftCardService      giftcards.GiftCardService
	paymentIntentService payments.PaymentIntentService
}

// NewCheckoutHandler creates a new CheckoutHandler
func NewCheckoutHandler(giftCardService giftcards.GiftCardService, paymentIntentService payments.PaymentIntentService) CheckoutHandler {
	return &checkoutHandler{
		giftCardService:      giftCardService,
		paymentIntentService: paymentIntentService,
	}
}

// ValidateGiftCard reports how much of an amount a gift card covers for the caller
func (handler *checkoutHandler) ValidateGiftCard(ctx *gin.Context) {
	caller, _ := callerFrom(ctx)

	var request ValidateGiftCardRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, "invalid request body")
		return
	}
	if err := request.Validate(); err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}

	validation, err := handler.giftCardService.Validate(ctx.Request.Context(), request.Code, caller.Email, request.AmountToApply)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newValidateGiftCardResponse(validation))
}

// CreatePaymentIntent prices the booking and authorises the caller's card
func (handler *checkoutHandler) CreatePaymentIntent(ctx *gin.Context) {
	caller, _ := callerFrom(ctx)

	var request CreatePaymentIntentRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, "invalid request body")
		return
	}
	if err := request.Validate(); err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}

	result, err := handler.paymentIntentService.CreatePaymentIntent(ctx.Request.Context(), &payments.IntentRequest{
		UserID:       caller.UserID,
		Email:        caller.Email,
		ServiceID:    request.ServiceID,
		ScheduledAt:  request.ScheduledAt,
		PromoCode:    request.PromoCode,
		GiftCardCode: request.GiftCardCode,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newPaymentIntentResponse(result))
}
