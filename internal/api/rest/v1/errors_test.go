//go:build unit
// +build unit

package v1

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/bookings"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/catalog"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/images"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/markets"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/payments"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/promos"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/validators"

	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"Validation", fmt.Errorf("%w: code is required", validators.ErrValidation), http.StatusBadRequest},
		{"Already cancelled", bookings.ErrAlreadyCancelled, http.StatusBadRequest},
		{"Intent mismatch", fmt.Errorf("%w: authorised 3000, booking costs 4000", payments.ErrIntentMismatch), http.StatusBadRequest},
		{"Wrapped forbidden", fmt.Errorf("cancel booking: %w", bookings.ErrForbidden), http.StatusForbidden},
		{"Booking not found", bookings.ErrNotFound, http.StatusNotFound},
		{"Service not found", catalog.ErrServiceNotFound, http.StatusNotFound},
		{"Duplicate market code", markets.ErrDuplicateCode, http.StatusConflict},
		{"Promo in use", promos.ErrInUse, http.StatusConflict},
		{"Contractor busy", catalog.ErrContractorUnavailable, http.StatusConflict},
		{"Unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, statusFor(tt.err))
		})
	}
}

func TestImageErrorFor(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{images.ErrInvalidFileType, http.StatusBadRequest, ImageCodeInvalidFileType},
		{images.ErrFileTooLarge, http.StatusBadRequest, ImageCodeFileTooLarge},
		{images.ErrLimitReached, http.StatusBadRequest, ImageCodeLimitReached},
		{images.ErrAlreadyDeleted, http.StatusBadRequest, ImageCodeAlreadyDeleted},
		{images.ErrNotFound, http.StatusNotFound, ImageCodeNotFound},
		{fmt.Errorf("%w: entity_id", validators.ErrValidation), http.StatusBadRequest, ImageCodeValidation},
		{errors.New("storage down"), http.StatusInternalServerError, ImageCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			status, code := imageErrorFor(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, code)
		})
	}
}
