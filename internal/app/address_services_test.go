//go:build unit
// +build unit

package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/catalog"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/markets"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/testutil"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/validators"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type addressFixture struct {
	addressRepo *MockAddressRepository
	marketRepo  *MockMarketRepository
	service     catalog.AddressService
	clientID    string
}

func newAddressFixture(t *testing.T) *addressFixture {
	log := testutil.SetupTestLogger(t)
	f := &addressFixture{
		addressRepo: new(MockAddressRepository),
		marketRepo:  new(MockMarketRepository),
		clientID:    uuid.NewString(),
	}
	marketSvc, err := NewMarketService(f.marketRepo, new(MockContractorRepository), new(MockServiceRepository), log)
	require.NoError(t, err)
	svc, err := NewAddressService(f.addressRepo, marketSvc, log)
	require.NoError(t, err)
	f.service = svc
	return f
}

func (f *addressFixture) activeMarkets(list ...*markets.Market) {
	f.marketRepo.On("List", mock.Anything, mock.MatchedBy(func(q *markets.Query) bool {
		return q.IsActive != nil && *q.IsActive
	})).Return(list, int64(len(list)), nil)
}

func (f *addressFixture) stored() *catalog.Address {
	return &catalog.Address{
		ID:          uuid.NewString(),
		ClientID:    f.clientID,
		Street:      "12 rue de Rivoli",
		City:        "Paris",
		PostalCode:  "75001",
		Country:     "France",
		CountryCode: "FR",
		CreatedAt:   time.Now().UTC(),
	}
}

func TestAddressService_Create_InfersMarket(t *testing.T) {
	tests := []struct {
		name       string
		country    string
		wantCode   string
		wantMarket bool
	}{
		{"country name", "France", "FR", true},
		{"country code", "fr", "FR", true},
		{"empty defaults to France", "", "FR", true},
		{"country without market", "Belgique", "BE", false},
		{"unknown country", "Atlantis", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAddressFixture(t)
			france := franceMarket()
			f.activeMarkets(france)
			f.addressRepo.On("Create", mock.Anything, mock.AnythingOfType("*catalog.Address")).Return(nil)

			address, err := f.service.Create(context.Background(), f.clientID, &catalog.AddressInput{
				Street:     " 3 place Bellecour ",
				City:       "Lyon",
				PostalCode: "69002",
				Country:    tt.country,
				IsDefault:  true,
			})
			require.NoError(t, err)

			assert.NotEmpty(t, address.ID)
			assert.Equal(t, f.clientID, address.ClientID)
			assert.Equal(t, "3 place Bellecour", address.Street)
			assert.Equal(t, tt.wantCode, address.CountryCode)
			assert.True(t, address.IsDefault)
			if tt.wantMarket {
				require.NotNil(t, address.MarketID)
				assert.Equal(t, france.ID, *address.MarketID)
			} else {
				assert.Nil(t, address.MarketID)
			}
			f.addressRepo.AssertExpectations(t)
		})
	}
}

func TestAddressService_Create_MarketLookupFails(t *testing.T) {
	f := newAddressFixture(t)
	f.marketRepo.On("List", mock.Anything, mock.Anything).Return(nil, int64(0), errors.New("db down"))
	f.addressRepo.On("Create", mock.Anything, mock.AnythingOfType("*catalog.Address")).Return(nil)

	address, err := f.service.Create(context.Background(), f.clientID, &catalog.AddressInput{
		Street: "12 rue de Rivoli", City: "Paris", PostalCode: "75001", Country: "France",
	})
	require.NoError(t, err)
	assert.Equal(t, "FR", address.CountryCode)
	assert.Nil(t, address.MarketID)
}

func TestAddressService_Create_InvalidInput(t *testing.T) {
	f := newAddressFixture(t)

	_, err := f.service.Create(context.Background(), f.clientID, &catalog.AddressInput{City: "Paris", PostalCode: "75001"})
	assert.ErrorIs(t, err, validators.ErrValidation)
	f.addressRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAddressService_Update(t *testing.T) {
	f := newAddressFixture(t)
	f.activeMarkets(franceMarket())
	existing := f.stored()
	f.addressRepo.On("GetByID", mock.Anything, existing.ID).Return(existing, nil)
	f.addressRepo.On("Update", mock.Anything, existing).Return(nil)

	label := "Maison"
	address, err := f.service.Update(context.Background(), existing.ID, f.clientID, &catalog.AddressInput{
		Label: &label, Street: "1 rue Neuve", City: "Bruxelles", PostalCode: "1000", Country: "Belgique",
	})
	require.NoError(t, err)
	assert.Equal(t, "Bruxelles", address.City)
	assert.Equal(t, "BE", address.CountryCode)
	assert.Nil(t, address.MarketID)
	assert.Equal(t, &label, address.Label)
	f.addressRepo.AssertExpectations(t)
}

func TestAddressService_NotOwned(t *testing.T) {
	input := &catalog.AddressInput{Street: "1 rue Neuve", City: "Paris", PostalCode: "75001"}

	tests := []struct {
		name   string
		mutate func(f *addressFixture, a *catalog.Address)
	}{
		{"another client", func(_ *addressFixture, a *catalog.Address) { a.ClientID = uuid.NewString() }},
		{"removed", func(_ *addressFixture, a *catalog.Address) {
			removed := time.Now().UTC()
			a.DeletedAt = &removed
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAddressFixture(t)
			existing := f.stored()
			tt.mutate(f, existing)
			f.addressRepo.On("GetByID", mock.Anything, existing.ID).Return(existing, nil)

			_, err := f.service.Update(context.Background(), existing.ID, f.clientID, input)
			assert.ErrorIs(t, err, catalog.ErrAddressNotFound)

			err = f.service.Delete(context.Background(), existing.ID, f.clientID)
			assert.ErrorIs(t, err, catalog.ErrAddressNotFound)

			f.addressRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		})
	}
}

func TestAddressService_Delete(t *testing.T) {
	f := newAddressFixture(t)
	existing := f.stored()
	existing.IsDefault = true
	f.addressRepo.On("GetByID", mock.Anything, existing.ID).Return(existing, nil)
	f.addressRepo.On("Update", mock.Anything, mock.MatchedBy(func(a *catalog.Address) bool {
		return a.ID == existing.ID && a.Removed() && !a.IsDefault
	})).Return(nil)

	require.NoError(t, f.service.Delete(context.Background(), existing.ID, f.clientID))
	f.addressRepo.AssertExpectations(t)
}

func TestAddressService_List(t *testing.T) {
	f := newAddressFixture(t)
	list := []*catalog.Address{f.stored(), f.stored()}
	f.addressRepo.On("ListByClient", mock.Anything, f.clientID).Return(list, nil)

	got, err := f.service.List(context.Background(), f.clientID)
	require.NoError(t, err)
	assert.Equal(t, list, got)
}
