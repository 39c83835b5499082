//go:build unit
// +build unit

package v1

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/catalog"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/auth"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/validators"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestAddress() *catalog.Address {
	marketID := "5d4c3b2a-1f0e-4d9c-8b7a-6f5e4d3c2b1a"
	return &catalog.Address{
		ID:          testAddressID,
		ClientID:    testUserID,
		Street:      "1 rue de Rivoli",
		City:        "Paris",
		PostalCode:  "75001",
		Country:     "France",
		CountryCode: "FR",
		MarketID:    &marketID,
		IsDefault:   true,
		CreatedAt:   time.Date(2025, 7, 1, 8, 0, 0, 0, time.UTC),
	}
}

func TestClientHandler_ListAddresses(t *testing.T) {
	addresses := new(MockAddressService)
	handler := NewClientHandler(addresses, new(MockProfileService))
	addresses.On("List", mock.Anything, testUserID).Return([]*catalog.Address{newTestAddress()}, nil)

	c, w := newRequestContext(http.MethodGet, "/client/addresses", nil, testUserID, auth.RoleClient)
	handler.ListAddresses(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp []ClientAddressResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "FR", resp[0].CountryCode)
	assert.Equal(t, "EUR", resp[0].Currency)
	assert.True(t, resp[0].IsDefault)
}

func TestClientHandler_CreateAddress(t *testing.T) {
	tests := []struct {
		name   string
		body   interface{}
		err    error
		status int
	}{
		{"Created", SaveAddressRequest{Street: "1 rue de Rivoli", City: "Paris", PostalCode: "75001", IsDefault: true}, nil, http.StatusCreated},
		{"Invalid address", SaveAddressRequest{City: "Paris"}, validators.ErrValidation, http.StatusBadRequest},
		{"Malformed body", "not an object", nil, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addresses := new(MockAddressService)
			handler := NewClientHandler(addresses, new(MockProfileService))
			if tt.err != nil {
				addresses.On("Create", mock.Anything, testUserID, mock.Anything).Return(nil, tt.err)
			} else {
				addresses.On("Create", mock.Anything, testUserID, mock.MatchedBy(func(in *catalog.AddressInput) bool {
					return in.Street == "1 rue de Rivoli" && in.IsDefault
				})).Return(newTestAddress(), nil)
			}

			c, w := newRequestContext(http.MethodPost, "/client/addresses", tt.body, testUserID, auth.RoleClient)
			handler.CreateAddress(c)

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusCreated {
				assert.Contains(t, w.Body.String(), `"market_id"`)
			}
		})
	}
}

func TestClientHandler_UpdateAddress_NotFound(t *testing.T) {
	addresses := new(MockAddressService)
	handler := NewClientHandler(addresses, new(MockProfileService))
	addresses.On("Update", mock.Anything, "a-1", testUserID, mock.Anything).Return(nil, catalog.ErrAddressNotFound)

	c, w := newRequestContext(http.MethodPut, "/client/addresses/a-1", SaveAddressRequest{Street: "x", City: "y", PostalCode: "z"}, testUserID, auth.RoleClient)
	c.Params = gin.Params{{Key: "id", Value: "a-1"}}
	handler.UpdateAddress(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestClientHandler_DeleteAddress(t *testing.T) {
	addresses := new(MockAddressService)
	handler := NewClientHandler(addresses, new(MockProfileService))
	addresses.On("Delete", mock.Anything, "a-1", testUserID).Return(nil)

	c, w := newRequestContext(http.MethodDelete, "/client/addresses/a-1", nil, testUserID, auth.RoleClient)
	c.Params = gin.Params{{Key: "id", Value: "a-1"}}
	handler.DeleteAddress(c)

	assert.Equal(t, http.StatusNoContent, w.Code)
	addresses.AssertExpectations(t)
}

func TestClientHandler_GetProfile_NotFound(t *testing.T) {
	profiles := new(MockProfileService)
	handler := NewClientHandler(new(MockAddressService), profiles)
	profiles.On("Get", mock.Anything, testUserID).Return(nil, catalog.ErrProfileNotFound)

	c, w := newRequestContext(http.MethodGet, "/client/profile", nil, testUserID, auth.RoleClient)
	handler.GetProfile(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestClientHandler_SaveProfile(t *testing.T) {
	profiles := new(MockProfileService)
	handler := NewClientHandler(new(MockAddressService), profiles)

	phone := "+33612345678"
	profiles.On("Upsert", mock.Anything, mock.MatchedBy(func(in *catalog.ProfileInput) bool {
		return in.UserID == testUserID &&
			in.Email == testUserID+"@example.com" &&
			in.FirstName == "Camille" &&
			in.SMSNotifications
	})).Return(&catalog.ClientProfile{
		ID:               testUserID,
		Email:            testUserID + "@example.com",
		FirstName:        "Camille",
		LastName:         "Durand",
		Phone:            &phone,
		SMSNotifications: true,
	}, nil)

	c, w := newRequestContext(http.MethodPut, "/client/profile", SaveProfileRequest{
		FirstName: "Camille", LastName: "Durand", Phone: &phone, SMSNotifications: true,
	}, testUserID, auth.RoleClient)
	handler.SaveProfile(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp ProfileResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Camille", resp.FirstName)
	assert.True(t, resp.SMSNotifications)
	profiles.AssertExpectations(t)
}
