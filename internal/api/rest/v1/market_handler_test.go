//go:build unit
// +build unit

package v1

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/markets"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/pagination"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestMarket() *markets.Market {
	return &markets.Market{
		ID:                 "5a6b7c8d-9e0f-4a1b-8c2d-3e4f5a6b7c8d",
		Name:               "France",
		Code:               "FR",
		CurrencyCode:       "EUR",
		Timezone:           "Europe/Paris",
		SupportedLanguages: []string{"fr", "en"},
		IsActive:           true,
	}
}

func TestMarketHandler_List(t *testing.T) {
	mockMarkets := new(MockMarketService)
	handler := NewMarketHandler(mockMarkets)

	mockMarkets.On("List", mock.Anything, mock.MatchedBy(func(q *markets.Query) bool {
		return q.Limit == 10 && q.Sort == "code" && q.Order == "desc" && q.IsActive == nil
	})).Return(&markets.MarketPage{
		Data:       []*markets.Market{newTestMarket()},
		Pagination: pagination.Page{Page: 1, Limit: 10, Total: 1, Pages: 1},
	}, nil)

	c, w := newRequestContext(http.MethodGet, "/admin/markets?limit=10&sort=code&order=desc", nil, testUserID, auth.RoleManager)

	handler.List(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp MarketPageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "FR - France (EUR)", resp.Data[0].Display)
	mockMarkets.AssertExpectations(t)
}

func TestMarketHandler_List_InvalidLimit(t *testing.T) {
	mockMarkets := new(MockMarketService)
	handler := NewMarketHandler(mockMarkets)

	c, w := newRequestContext(http.MethodGet, "/admin/markets?limit=abc", nil, testUserID, auth.RoleManager)

	handler.List(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockMarkets.AssertNotCalled(t, "List")
}

func TestMarketHandler_Create(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"Created", nil, http.StatusCreated},
		{"Code taken", markets.ErrDuplicateCode, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockMarkets := new(MockMarketService)
			handler := NewMarketHandler(mockMarkets)

			var created *markets.Market
			if tt.err == nil {
				created = newTestMarket()
			}
			mockMarkets.On("Create", mock.Anything, mock.MatchedBy(func(m *markets.Market) bool {
				return m.Code == "FR" && m.IsActive
			})).Return(created, tt.err)

			c, w := newRequestContext(http.MethodPost, "/admin/markets", MarketRequest{
				Name: "France", Code: "FR", CurrencyCode: "EUR", Timezone: "Europe/Paris", SupportedLanguages: []string{"fr"},
			}, testUserID, auth.RoleAdmin)

			handler.Create(c)

			assert.Equal(t, tt.status, w.Code)
			mockMarkets.AssertExpectations(t)
		})
	}
}

func TestMarketHandler_Update_EmptyPatch(t *testing.T) {
	mockMarkets := new(MockMarketService)
	handler := NewMarketHandler(mockMarkets)
	mockMarkets.On("Update", mock.Anything, "m-1", mock.Anything).Return(nil, markets.ErrEmptyPatch)

	c, w := newRequestContext(http.MethodPut, "/admin/markets/m-1", MarketPatchRequest{}, testUserID, auth.RoleAdmin)
	c.Params = gin.Params{{Key: "id", Value: "m-1"}}

	handler.Update(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMarketHandler_DeleteByID(t *testing.T) {
	tests := []struct {
		name   string
		target string
		hard   bool
		err    error
		status int
	}{
		{"Soft delete", "/admin/markets/m-1", false, nil, http.StatusNoContent},
		{"Hard delete", "/admin/markets/m-1?hard=true", true, nil, http.StatusNoContent},
		{"Active contractors block soft delete", "/admin/markets/m-1", false, markets.ErrHasActiveContractors, http.StatusConflict},
		{"Unknown market", "/admin/markets/m-1", false, markets.ErrNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockMarkets := new(MockMarketService)
			handler := NewMarketHandler(mockMarkets)
			mockMarkets.On("Delete", mock.Anything, "m-1", tt.hard).Return(tt.err)

			c, _ := newRequestContext(http.MethodDelete, tt.target, nil, testUserID, auth.RoleAdmin)
			c.Params = gin.Params{{Key: "id", Value: "m-1"}}

			handler.DeleteByID(c)

			assert.Equal(t, tt.status, c.Writer.Status())
			mockMarkets.AssertExpectations(t)
		})
	}
}

func TestMarketHandler_Stats(t *testing.T) {
	mockMarkets := new(MockMarketService)
	handler := NewMarketHandler(mockMarkets)
	mockMarkets.On("Stats", mock.Anything, "m-1").Return(&markets.Stats{TotalContractors: 4, ActiveContractors: 3, TotalServices: 12}, nil)

	c, w := newRequestContext(http.MethodGet, "/admin/markets/m-1/stats", nil, testUserID, auth.RoleManager)
	c.Params = gin.Params{{Key: "id", Value: "m-1"}}

	handler.Stats(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"total_contractors":4,"active_contractors":3,"total_services":12}`, w.Body.String())
}
