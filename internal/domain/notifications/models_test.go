//go:build unit
// +build unit

package notifications

import (
	"testing"
	"time"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/bookings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompose(t *testing.T) {
	phone := "+33612345678"
	reason := "Empêchement"
	to := Recipient{Name: "Léa", Email: "lea@example.com", Phone: &phone, SMSNotifications: true}
	d := Details{ServiceName: "Massage", Address: "1 rue de Rivoli, 75001 Paris"}
	ev := &bookings.Event{
		ScheduledAt: time.Date(2025, 7, 14, 8, 30, 0, 0, time.UTC),
		Timezone:    "Europe/Paris",
		FinalAmount: 8550,
	}

	ev.Type = bookings.EventCreated
	msgs := Compose(ev, to, d)
	require.Len(t, msgs, 1)
	assert.Equal(t, ChannelEmail, msgs[0].Channel)
	assert.Equal(t, "lea@example.com", msgs[0].To)
	assert.Contains(t, msgs[0].Body, "14/07/2025 à 10:30")
	assert.Contains(t, msgs[0].Body, "85,50 €")

	ev.Type = bookings.EventConfirmed
	msgs = Compose(ev, to, d)
	require.Len(t, msgs, 1)
	assert.Equal(t, ChannelSMS, msgs[0].Channel)
	assert.Equal(t, phone, msgs[0].To)

	noSMS := to
	noSMS.SMSNotifications = false
	assert.Empty(t, Compose(ev, noSMS, d))

	ev.Type = bookings.EventCancelled
	ev.Reason = &reason
	msgs = Compose(ev, to, d)
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0].Body, "Motif : Empêchement")

	ev.Type = bookings.EventCompleted
	assert.Empty(t, Compose(ev, to, d))
}
