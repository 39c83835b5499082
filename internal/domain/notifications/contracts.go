package notifications

import (
	"context"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/bookings"
)

// Notifier delivers messages to clients
type Notifier interface {
	SendEmail(ctx context.Context, to, subject, body string) error
	SendSMS(ctx context.Context, to, body string) error
}

// NotificationService reacts to booking events
type NotificationService interface {
	// Handle sends the messages ev produces. An error means the event should be retried.
	Handle(ctx context.Context, ev *bookings.Event) error
}
