// Package notifier delivers client notifications.
package notifier

import (
	"context"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/notifications"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/logger"
)

// LogNotifier records messages in the application log instead of sending them
type LogNotifier struct {
	logger logger.Logger
}

// NewLogNotifier creates a notifier writing to logger
func NewLogNotifier(logger logger.Logger) notifications.Notifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) SendEmail(_ context.Context, to, subject, body string) error {
	n.logger.Info("email notification", "to", to, "subject", subject, "body", body)
	return nil
}

func (n *LogNotifier) SendSMS(_ context.Context, to, body string) error {
	n.logger.Info("sms notification", "to", to, "body", body)
	return nil
}
