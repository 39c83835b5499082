package v1

import (
	"errors"
	"net/http"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/bookings"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/catalog"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/images"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/markets"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/payments"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/promos"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/translations"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/validators"

	"github.com/gin-gonic/gin"
)

// Image error codes
const (
	ImageCodeInvalidFileType = "INVALID_FILE_TYPE"
	ImageCodeFileTooLarge    = "FILE_TOO_LARGE"
	ImageCodeLimitReached    = "LIMIT_REACHED"
	ImageCodeNotFound        = "NOT_FOUND"
	ImageCodeAlreadyDeleted  = "ALREADY_DELETED"
	ImageCodeValidation      = "VALIDATION_ERROR"
	ImageCodeInternal        = "INTERNAL_ERROR"
)

var statusByError = []struct {
	err    error
	status int
}{
	{validators.ErrValidation, http.StatusBadRequest},
	{markets.ErrEmptyPatch, http.StatusBadRequest},
	{bookings.ErrAlreadyCancelled, http.StatusBadRequest},
	{bookings.ErrInvalidStatus, http.StatusBadRequest},
	{bookings.ErrNoPaymentIntent, http.StatusBadRequest},
	{bookings.ErrRequestExpired, http.StatusBadRequest},
	{bookings.ErrRequestNotPending, http.StatusBadRequest},
	{bookings.ErrPaymentIntentRequired, http.StatusBadRequest},
	{bookings.ErrReasonRequired, http.StatusBadRequest},
	{payments.ErrInvalidPromo, http.StatusBadRequest},
	{payments.ErrInvalidGiftCard, http.StatusBadRequest},
	{payments.ErrIntentMismatch, http.StatusBadRequest},

	{bookings.ErrForbidden, http.StatusForbidden},
	{bookings.ErrAddressNotOwned, http.StatusForbidden},

	{bookings.ErrNotFound, http.StatusNotFound},
	{bookings.ErrRequestNotFound, http.StatusNotFound},
	{catalog.ErrServiceNotFound, http.StatusNotFound},
	{catalog.ErrAddressNotFound, http.StatusNotFound},
	{catalog.ErrContractorNotFound, http.StatusNotFound},
	{catalog.ErrProfileNotFound, http.StatusNotFound},
	{markets.ErrNotFound, http.StatusNotFound},
	{promos.ErrNotFound, http.StatusNotFound},
	{translations.ErrNotFound, http.StatusNotFound},

	{markets.ErrDuplicateCode, http.StatusConflict},
	{markets.ErrHasActiveContractors, http.StatusConflict},
	{markets.ErrHasContractors, http.StatusConflict},
	{promos.ErrDuplicateCode, http.StatusConflict},
	{promos.ErrInUse, http.StatusConflict},
	{catalog.ErrContractorUnavailable, http.StatusConflict},
}

// statusFor maps a service error to its HTTP status; unknown errors are 500
func statusFor(err error) int {
	for _, m := range statusByError {
		if errors.Is(err, m.err) {
			return m.status
		}
	}
	return http.StatusInternalServerError
}

func respondError(ctx *gin.Context, err error) {
	ctx.JSON(statusFor(err), ErrorResponse{Message: err.Error()})
}

func respondBadRequest(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: message})
}

// imageErrorFor maps an image service error to its status and error code
func imageErrorFor(err error) (int, string) {
	switch {
	case errors.Is(err, images.ErrInvalidFileType):
		return http.StatusBadRequest, ImageCodeInvalidFileType
	case errors.Is(err, images.ErrFileTooLarge):
		return http.StatusBadRequest, ImageCodeFileTooLarge
	case errors.Is(err, images.ErrLimitReached):
		return http.StatusBadRequest, ImageCodeLimitReached
	case errors.Is(err, images.ErrAlreadyDeleted):
		return http.StatusBadRequest, ImageCodeAlreadyDeleted
	case errors.Is(err, images.ErrNotFound):
		return http.StatusNotFound, ImageCodeNotFound
	case errors.Is(err, images.ErrForeignImage), errors.Is(err, validators.ErrValidation):
		return http.StatusBadRequest, ImageCodeValidation
	}
	return http.StatusInternalServerError, ImageCodeInternal
}

func respondImageError(ctx *gin.Context, err error) {
	status, code := imageErrorFor(err)
	ctx.JSON(status, ImageErrorResponse{Error: ImageError{Code: code, Message: err.Error()}})
}

func respondImageValidation(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusBadRequest, ImageErrorResponse{Error: ImageError{Code: ImageCodeValidation, Message: message}})
}
