package notifications

import (
	"fmt"
	"time"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/bookings"
)

// Channels a message can be sent on
const (
	ChannelEmail = "email"
	ChannelSMS   = "sms"
)

// Message is one notification to deliver
type Message struct {
	Channel string
	To      string
	Subject string
	Body    string
}

// Recipient is what a message needs to know about the client
type Recipient struct {
	Name             string
	Email            string
	Phone            *string
	SMSNotifications bool
}

// Details is the human readable context of a booking
type Details struct {
	ServiceName string
	Address     string
}

// Compose returns the messages an event produces for a recipient: an email
// confirmation on creation, an SMS on confirmation when the client allows
// it, and an email on cancellation. Other events produce nothing.
func Compose(ev *bookings.Event, to Recipient, d Details) []Message {
	local := localTime(ev.ScheduledAt, ev.Timezone)
	date := local.Format("02/01/2006")
	hour := local.Format("15:04")

	switch ev.Type {
	case bookings.EventCreated:
		return []Message{{
			Channel: ChannelEmail,
			To:      to.Email,
			Subject: "Votre réservation Simone Paris",
			Body: fmt.Sprintf("Bonjour %s,\n\nNous avons bien reçu votre réservation pour %s le %s à %s.\nAdresse : %s\nMontant : %s\n\nSimone Paris",
				to.Name, d.ServiceName, date, hour, d.Address, formatEuros(ev.FinalAmount)),
		}}

	case bookings.EventConfirmed:
		if !to.SMSNotifications || to.Phone == nil || *to.Phone == "" {
			return nil
		}
		return []Message{{
			Channel: ChannelSMS,
			To:      *to.Phone,
			Body: fmt.Sprintf("Bonjour! Votre réservation est confirmée.\n\nService: %s\nDate: %s à %s\nAdresse: %s\n\nSimone Paris",
				d.ServiceName, date, hour, d.Address),
		}}

	case bookings.EventCancelled:
		reason := ""
		if ev.Reason != nil {
			reason = fmt.Sprintf("\nMotif : %s", *ev.Reason)
		}
		return []Message{{
			Channel: ChannelEmail,
			To:      to.Email,
			Subject: "Annulation de votre réservation",
			Body: fmt.Sprintf("Bonjour %s,\n\nVotre réservation pour %s le %s à %s a été annulée.%s\n\nSimone Paris",
				to.Name, d.ServiceName, date, hour, reason),
		}}
	}
	return nil
}

func localTime(t time.Time, tz string) time.Time {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return t.UTC()
	}
	return t.In(loc)
}

func formatEuros(cents int64) string {
	return fmt.Sprintf("%d,%02d €", cents/100, cents%100)
}
