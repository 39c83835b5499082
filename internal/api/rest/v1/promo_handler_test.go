//go:build unit
// +build unit

package v1

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/pagination"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/promos"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testUserID = "0b6f7c1e-2a4d-4e8f-a1b2-c3d4e5f60718"

func newTestPromo() *promos.PromoCode {
	return &promos.PromoCode{
		ID:             "7d3b1c52-5e2f-4a61-b0c8-1f2e3d4c5b6a",
		Code:           "BIENVENUE20",
		DiscountType:   promos.DiscountPercentage,
		DiscountValue:  20,
		MaxUsesPerUser: 1,
		ValidFrom:      time.Now().Add(-24 * time.Hour),
		IsActive:       true,
	}
}

func TestPromoHandler_Validate_Success(t *testing.T) {
	mockValidation := new(MockPromoValidationService)
	handler := NewPromoHandler(mockValidation, new(MockPromoAdminService))

	mockValidation.On("Validate", mock.Anything, promos.ValidateInput{
		Code: "BIENVENUE20", UserID: testUserID, ServiceID: testServiceID, Amount: 8000,
	}).Return(&promos.Validation{
		Valid:          true,
		PromoID:        "promo-1",
		Code:           "BIENVENUE20",
		DiscountType:   promos.DiscountPercentage,
		DiscountValue:  20,
		OriginalAmount: 8000,
		DiscountAmount: 1600,
		FinalAmount:    6400,
		Summary: &promos.DiscountSummary{
			OriginalAmount:    8000,
			DiscountAmount:    1600,
			FinalAmount:       6400,
			SavingsPercentage: 20,
			FormattedOriginal: "80,00 €",
			FormattedDiscount: "16,00 €",
			FormattedFinal:    "64,00 €",
		},
	}, nil)

	c, w := newRequestContext(http.MethodPost, "/bookings/validate-promo", ValidatePromoRequest{
		Code: "BIENVENUE20", ServiceID: testServiceID, ServiceAmount: 8000,
	}, testUserID, auth.RoleClient)

	handler.Validate(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp ValidatePromoResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Valid)
	assert.Equal(t, int64(1600), resp.DiscountAmount)
	assert.Equal(t, int64(6400), resp.FinalAmount)
	require.NotNil(t, resp.Summary)
	assert.Equal(t, float64(20), resp.Summary.SavingsPercentage)
	assert.Equal(t, "16,00 €", resp.Summary.FormattedDiscount)
	assert.Equal(t, "64,00 €", resp.Summary.FormattedFinal)
	mockValidation.AssertExpectations(t)
}

func TestPromoHandler_Validate_Rejections(t *testing.T) {
	tests := []struct {
		name      string
		errorCode string
		status    int
	}{
		{"Expired code answers 200", promos.ErrCodeExpired, http.StatusOK},
		{"Rate limited answers 429", promos.ErrCodeRateLimitExceeded, http.StatusTooManyRequests},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockValidation := new(MockPromoValidationService)
			handler := NewPromoHandler(mockValidation, new(MockPromoAdminService))
			mockValidation.On("Validate", mock.Anything, mock.Anything).
				Return(&promos.Validation{Valid: false, ErrorCode: tt.errorCode, OriginalAmount: 8000, FinalAmount: 8000}, nil)

			c, w := newRequestContext(http.MethodPost, "/bookings/validate-promo", ValidatePromoRequest{
				Code: "OLD", ServiceID: testServiceID, ServiceAmount: 8000,
			}, testUserID, auth.RoleClient)

			handler.Validate(c)

			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.errorCode)
		})
	}
}

func TestPromoHandler_Validate_InvalidBody(t *testing.T) {
	mockValidation := new(MockPromoValidationService)
	handler := NewPromoHandler(mockValidation, new(MockPromoAdminService))

	c, w := newRequestContext(http.MethodPost, "/bookings/validate-promo", ValidatePromoRequest{Code: "X"}, testUserID, auth.RoleClient)

	handler.Validate(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockValidation.AssertNotCalled(t, "Validate")
}

func TestPromoHandler_Create_Success(t *testing.T) {
	mockAdmin := new(MockPromoAdminService)
	handler := NewPromoHandler(new(MockPromoValidationService), mockAdmin)

	mockAdmin.On("Create", mock.Anything, mock.MatchedBy(func(p *promos.PromoCode) bool {
		return p.Code == "BIENVENUE20" && p.CreatedBy != nil && *p.CreatedBy == testUserID
	})).Return(newTestPromo(), nil)

	c, w := newRequestContext(http.MethodPost, "/admin/promo-codes", PromoCodeRequest{
		Code: "BIENVENUE20", DiscountType: "percentage", DiscountValue: 20,
	}, testUserID, auth.RoleAdmin)

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "BIENVENUE20")
	mockAdmin.AssertExpectations(t)
}

func TestPromoHandler_Create_Duplicate(t *testing.T) {
	mockAdmin := new(MockPromoAdminService)
	handler := NewPromoHandler(new(MockPromoValidationService), mockAdmin)
	mockAdmin.On("Create", mock.Anything, mock.Anything).Return(nil, promos.ErrDuplicateCode)

	c, w := newRequestContext(http.MethodPost, "/admin/promo-codes", PromoCodeRequest{
		Code: "BIENVENUE20", DiscountType: "percentage", DiscountValue: 20,
	}, testUserID, auth.RoleAdmin)

	handler.Create(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestPromoHandler_List(t *testing.T) {
	mockAdmin := new(MockPromoAdminService)
	handler := NewPromoHandler(new(MockPromoValidationService), mockAdmin)

	mockAdmin.On("List", mock.Anything, mock.MatchedBy(func(q *promos.PromoQuery) bool {
		return q.Page == 2 && q.IsActive != nil && *q.IsActive && q.Search == "bien"
	})).Return(&promos.PromoPage{
		Items: []*promos.PromoCode{newTestPromo()},
		Page:  pagination.Page{Page: 2, Limit: 20, Total: 41, Pages: 3},
	}, nil)

	c, w := newRequestContext(http.MethodGet, "/admin/promo-codes?page=2&is_active=true&search=bien", nil, testUserID, auth.RoleAdmin)

	handler.List(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp PromoPageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Items, 1)
	assert.Equal(t, int64(41), resp.TotalItems)
	assert.True(t, resp.HasNext)
	mockAdmin.AssertExpectations(t)
}

func TestPromoHandler_List_InvalidQuery(t *testing.T) {
	handler := NewPromoHandler(new(MockPromoValidationService), new(MockPromoAdminService))

	c, w := newRequestContext(http.MethodGet, "/admin/promo-codes?is_active=maybe", nil, testUserID, auth.RoleAdmin)

	handler.List(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPromoHandler_GetByID_NotFound(t *testing.T) {
	mockAdmin := new(MockPromoAdminService)
	handler := NewPromoHandler(new(MockPromoValidationService), mockAdmin)
	mockAdmin.On("GetByID", mock.Anything, "missing").Return(nil, promos.ErrNotFound)

	c, w := newRequestContext(http.MethodGet, "/admin/promo-codes/missing", nil, testUserID, auth.RoleAdmin)
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	handler.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPromoHandler_SetActive(t *testing.T) {
	mockAdmin := new(MockPromoAdminService)
	handler := NewPromoHandler(new(MockPromoValidationService), mockAdmin)

	promo := newTestPromo()
	promo.IsActive = false
	mockAdmin.On("SetActive", mock.Anything, promo.ID, false).Return(promo, nil)

	inactive := false
	c, w := newRequestContext(http.MethodPatch, "/admin/promo-codes/"+promo.ID+"/active", SetActiveRequest{IsActive: &inactive}, testUserID, auth.RoleAdmin)
	c.Params = gin.Params{{Key: "id", Value: promo.ID}}

	handler.SetActive(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"inactive"`)
	mockAdmin.AssertExpectations(t)
}

func TestPromoHandler_DeleteByID(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"Unused code is deleted", nil, http.StatusNoContent},
		{"Used code conflicts", promos.ErrInUse, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAdmin := new(MockPromoAdminService)
			handler := NewPromoHandler(new(MockPromoValidationService), mockAdmin)
			mockAdmin.On("Delete", mock.Anything, "promo-1").Return(tt.err)

			c, _ := newRequestContext(http.MethodDelete, "/admin/promo-codes/promo-1", nil, testUserID, auth.RoleAdmin)
			c.Params = gin.Params{{Key: "id", Value: "promo-1"}}

			handler.DeleteByID(c)

			assert.Equal(t, tt.status, c.Writer.Status())
			mockAdmin.AssertExpectations(t)
		})
	}
}

func TestPromoHandler_Analytics(t *testing.T) {
	mockAdmin := new(MockPromoAdminService)
	handler := NewPromoHandler(new(MockPromoValidationService), mockAdmin)
	mockAdmin.On("Analytics", mock.Anything).Return(&promos.Analytics{
		TotalActiveCodes:      3,
		TotalUses:             12,
		TotalPlatformCost:     4800,
		TotalRevenueWithPromo: 96000,
		ROIPercentage:         1900,
	}, nil)

	c, w := newRequestContext(http.MethodGet, "/admin/promo-codes/analytics", nil, testUserID, auth.RoleAdmin)

	handler.Analytics(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_revenue_with_promos":96000`)
}
