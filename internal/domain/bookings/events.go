package bookings

import (
	"context"
	"time"
)

// Routing keys of booking events
const (
	EventCreated   = "booking.created"
	EventConfirmed = "booking.confirmed"
	EventCancelled = "booking.cancelled"
	EventCompleted = "booking.completed"
)

// EventKeys lists every booking routing key
var EventKeys = []string{EventCreated, EventConfirmed, EventCancelled, EventCompleted}

// Event is the payload published for every booking transition
type Event struct {
	Type         string    `json:"type"`
	BookingID    string    `json:"booking_id"`
	ClientID     string    `json:"client_id"`
	ContractorID *string   `json:"contractor_id,omitempty"`
	ServiceID    string    `json:"service_id"`
	ScheduledAt  time.Time `json:"scheduled_at"`
	Timezone     string    `json:"timezone"`
	FinalAmount  int64     `json:"final_amount"`
	Reason       *string   `json:"reason,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// NewEvent builds the event of type key for b
func NewEvent(key string, b *Booking, now time.Time) *Event {
	return &Event{
		Type:         key,
		BookingID:    b.ID,
		ClientID:     b.ClientID,
		ContractorID: b.ContractorID,
		ServiceID:    b.ServiceID,
		ScheduledAt:  b.ScheduledAt,
		Timezone:     b.BookingTimezone,
		FinalAmount:  b.FinalAmount,
		Reason:       b.CancellationReason,
		OccurredAt:   now,
	}
}

// EventPublisher publishes booking events to interested consumers
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, event *Event) error
}
