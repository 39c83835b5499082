//go:build unit
// +build unit

package bookings

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRequestExpiry(t *testing.T) {
	created := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)

	scheduled := created.Add(72 * time.Hour)
	assert.Equal(t, created.Add(48*time.Hour), RequestExpiry(scheduled, created, 24*time.Hour))

	soon := created.Add(3 * time.Hour)
	assert.Equal(t, created, RequestExpiry(soon, created, 24*time.Hour))
}

func TestBookingRequest_Expired(t *testing.T) {
	now := time.Now()
	r := &BookingRequest{ExpiresAt: now.Add(-time.Second)}
	assert.True(t, r.Expired(now))

	r.ExpiresAt = now.Add(time.Minute)
	assert.False(t, r.Expired(now))
}

func TestBooking_Helpers(t *testing.T) {
	contractorID := uuid.NewString()
	start := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	b := &Booking{ScheduledAt: start, DurationMinutes: 90, ContractorID: &contractorID}

	assert.Equal(t, start.Add(90*time.Minute), b.EndsAt())
	assert.True(t, b.AssignedTo(contractorID))
	assert.False(t, b.AssignedTo(""))
	assert.False(t, b.HasPaymentIntent())

	empty := ""
	b.PaymentIntentID = &empty
	assert.False(t, b.HasPaymentIntent())
}

func TestNewEvent(t *testing.T) {
	reason := "client sick"
	now := time.Now().UTC()
	b := &Booking{ID: uuid.NewString(), ClientID: uuid.NewString(), ServiceID: uuid.NewString(), FinalAmount: 4200, BookingTimezone: "Europe/Paris", CancellationReason: &reason}

	ev := NewEvent(EventCancelled, b, now)
	assert.Equal(t, EventCancelled, ev.Type)
	assert.Equal(t, b.ID, ev.BookingID)
	assert.Equal(t, int64(4200), ev.FinalAmount)
	assert.Equal(t, &reason, ev.Reason)
	assert.Equal(t, now, ev.OccurredAt)
}
