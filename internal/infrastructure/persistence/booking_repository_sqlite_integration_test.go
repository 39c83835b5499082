//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/bookings"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedBooking(t *testing.T, ctx *TestContext, clientID string, contractorID *string, at time.Time) *bookings.Booking {
	t.Helper()

	service := CreateTestService(t, "Massage "+uuid.NewString()[:8])
	require.NoError(t, ctx.ServiceRepo.Create(context.Background(), service))
	address := CreateTestAddress(t, clientID)
	require.NoError(t, ctx.AddressRepo.Create(context.Background(), address))

	booking := CreateTestBooking(t, clientID, service, address, contractorID, at)
	require.NoError(t, ctx.BookingRepo.Create(context.Background(), booking))
	return booking
}

func TestBookingSqliteRepository_CreateAndGet(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	clientID := uuid.NewString()
	booking := seedBooking(t, ctx, clientID, nil, time.Date(2030, 3, 10, 9, 0, 0, 0, time.UTC))

	fetched, err := ctx.BookingRepo.GetByID(context.Background(), booking.ID)
	require.NoError(t, err)
	assert.Equal(t, clientID, fetched.ClientID)
	assert.Equal(t, "Paris", fetched.Address.City)
	assert.True(t, booking.ScheduledAt.Equal(fetched.ScheduledAt))
	assert.Equal(t, bookings.StatusPending, fetched.Status)
}

func TestBookingRepository_GetByID_NotFound(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	_, err := ctx.BookingRepo.GetByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, bookings.ErrNotFound)
}

func TestBookingRepository_List_ScopedToClient(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	clientID := uuid.NewString()
	early := seedBooking(t, ctx, clientID, nil, time.Date(2030, 3, 10, 9, 0, 0, 0, time.UTC))
	late := seedBooking(t, ctx, clientID, nil, time.Date(2030, 3, 12, 9, 0, 0, 0, time.UTC))
	seedBooking(t, ctx, uuid.NewString(), nil, time.Date(2030, 3, 11, 9, 0, 0, 0, time.UTC))

	query := bookings.NewQuery()
	query.ClientID = &clientID

	list, total, err := ctx.BookingRepo.List(context.Background(), query)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, list, 2)
	assert.Equal(t, late.ID, list[0].ID)
	assert.Equal(t, early.ID, list[1].ID)
}

func TestBookingRepository_UpdateAndCountActive(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	clientID := uuid.NewString()
	first := seedBooking(t, ctx, clientID, nil, time.Date(2030, 3, 10, 9, 0, 0, 0, time.UTC))
	seedBooking(t, ctx, clientID, nil, time.Date(2030, 3, 11, 9, 0, 0, 0, time.UTC))

	reason := "Client unavailable"
	now := time.Now().UTC()
	first.Status = bookings.StatusCancelled
	first.PaymentStatus = bookings.PaymentCancelled
	first.CancellationReason = &reason
	first.CancelledAt = &now
	require.NoError(t, ctx.BookingRepo.Update(context.Background(), first))

	count, err := ctx.BookingRepo.CountActiveForClient(context.Background(), clientID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	fetched, err := ctx.BookingRepo.GetByID(context.Background(), first.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched.CancellationReason)
	assert.Equal(t, reason, *fetched.CancellationReason)
}

func TestBookingRequestRepository_ListExpired(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	bg := context.Background()

	contractorID := uuid.NewString()
	booking := seedBooking(t, ctx, uuid.NewString(), &contractorID, time.Date(2030, 3, 10, 9, 0, 0, 0, time.UTC))

	now := time.Now().UTC()
	newRequest := func(status bookings.RequestStatus, expiresAt time.Time) *bookings.BookingRequest {
		return &bookings.BookingRequest{
			ID:           uuid.NewString(),
			BookingID:    booking.ID,
			ContractorID: contractorID,
			Status:       status,
			ExpiresAt:    expiresAt,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
	}

	lapsed := newRequest(bookings.RequestPending, now.Add(-time.Minute))
	open := newRequest(bookings.RequestPending, now.Add(time.Hour))
	answered := newRequest(bookings.RequestAccepted, now.Add(-time.Hour))
	for _, r := range []*bookings.BookingRequest{lapsed, open, answered} {
		require.NoError(t, ctx.RequestRepo.Create(bg, r))
	}

	expired, err := ctx.RequestRepo.ListExpired(bg, now)
	require.NoError(t, err)
	require.Len(t, expired, 1)
	assert.Equal(t, lapsed.ID, expired[0].ID)

	pending, err := ctx.RequestRepo.ListByContractor(bg, contractorID, bookings.RequestPending)
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	all, err := ctx.RequestRepo.ListByContractor(bg, contractorID, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestBookingRequestRepository_GetByID_NotFound(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	_, err := ctx.RequestRepo.GetByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, bookings.ErrRequestNotFound)
}

func TestBookingRequestRepository_UpdateWithBooking(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	bg := context.Background()

	contractorID := uuid.NewString()
	booking := seedBooking(t, ctx, uuid.NewString(), &contractorID, time.Date(2030, 4, 2, 14, 0, 0, 0, time.UTC))
	now := time.Now().UTC()
	request := &bookings.BookingRequest{
		ID:           uuid.NewString(),
		BookingID:    booking.ID,
		ContractorID: contractorID,
		Status:       bookings.RequestPending,
		ExpiresAt:    now.Add(time.Hour),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, ctx.RequestRepo.Create(bg, request))

	t.Run("invalid booking stores nothing", func(t *testing.T) {
		accepted := *request
		accepted.Status = bookings.RequestAccepted
		broken := *booking
		broken.Status = "lost"

		assert.Error(t, ctx.RequestRepo.UpdateWithBooking(bg, &accepted, &broken))

		stored, err := ctx.RequestRepo.GetByID(bg, request.ID)
		require.NoError(t, err)
		assert.Equal(t, bookings.RequestPending, stored.Status)
	})

	t.Run("both rows are saved", func(t *testing.T) {
		request.Status = bookings.RequestAccepted
		request.RespondedAt = &now
		booking.Status = bookings.StatusConfirmed
		booking.PaymentStatus = bookings.PaymentCaptured

		require.NoError(t, ctx.RequestRepo.UpdateWithBooking(bg, request, booking))

		storedRequest, err := ctx.RequestRepo.GetByID(bg, request.ID)
		require.NoError(t, err)
		assert.Equal(t, bookings.RequestAccepted, storedRequest.Status)

		storedBooking, err := ctx.BookingRepo.GetByID(bg, booking.ID)
		require.NoError(t, err)
		assert.Equal(t, bookings.StatusConfirmed, storedBooking.Status)
		assert.Equal(t, bookings.PaymentCaptured, storedBooking.PaymentStatus)
	})
}

func TestBookingRequestRepository_GetPendingByBookingID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	bg := context.Background()

	contractorID := uuid.NewString()
	booking := seedBooking(t, ctx, uuid.NewString(), &contractorID, time.Date(2030, 5, 6, 10, 0, 0, 0, time.UTC))

	_, err := ctx.RequestRepo.GetPendingByBookingID(bg, booking.ID)
	assert.ErrorIs(t, err, bookings.ErrRequestNotFound)

	now := time.Now().UTC()
	refused := &bookings.BookingRequest{
		ID:           uuid.NewString(),
		BookingID:    booking.ID,
		ContractorID: uuid.NewString(),
		Status:       bookings.RequestRefused,
		ExpiresAt:    now.Add(time.Hour),
		CreatedAt:    now.Add(-time.Hour),
		UpdatedAt:    now,
	}
	pending := &bookings.BookingRequest{
		ID:           uuid.NewString(),
		BookingID:    booking.ID,
		ContractorID: contractorID,
		Status:       bookings.RequestPending,
		ExpiresAt:    now.Add(time.Hour),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, ctx.RequestRepo.Create(bg, refused))
	require.NoError(t, ctx.RequestRepo.Create(bg, pending))

	got, err := ctx.RequestRepo.GetPendingByBookingID(bg, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, pending.ID, got.ID)
}
