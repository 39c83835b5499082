package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/bookings"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/catalog"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/notifications"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/logger"
)

// notificationService implements the NotificationService interface
type notificationService struct {
	notifier    notifications.Notifier
	profileRepo catalog.ProfileRepository
	serviceRepo catalog.ServiceRepository
	bookingRepo bookings.BookingRepository
	logger      logger.Logger
}

// NewNotificationService creates a new instance of NotificationService
func NewNotificationService(
	notifier notifications.Notifier,
	profileRepo catalog.ProfileRepository,
	serviceRepo catalog.ServiceRepository,
	bookingRepo bookings.BookingRepository,
	logger logger.Logger,
) (notifications.NotificationService, error) {
	return &notificationService{
		notifier:    notifier,
		profileRepo: profileRepo,
		serviceRepo: serviceRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}, nil
}

// Handle turns a booking event into client messages. Events about unknown
// clients are dropped; delivery failures are returned so the event is retried.
func (s *notificationService) Handle(ctx context.Context, ev *bookings.Event) error {
	profile, err := s.profileRepo.GetByID(ctx, ev.ClientID)
	if err != nil {
		if errors.Is(err, catalog.ErrProfileNotFound) {
			s.logger.Warn("notification skipped, unknown client", "event", ev.Type, "client_id", ev.ClientID)
			return nil
		}
		return fmt.Errorf("failed to load client profile: %w", err)
	}

	details := notifications.Details{ServiceName: "votre prestation"}
	if service, err := s.serviceRepo.GetByID(ctx, ev.ServiceID); err == nil {
		details.ServiceName = service.Name
	} else if !errors.Is(err, catalog.ErrServiceNotFound) {
		return fmt.Errorf("failed to load service: %w", err)
	}
	if booking, err := s.bookingRepo.GetByID(ctx, ev.BookingID); err == nil {
		details.Address = fmt.Sprintf("%s, %s %s", booking.Address.Street, booking.Address.PostalCode, booking.Address.City)
	} else if !errors.Is(err, bookings.ErrNotFound) {
		return fmt.Errorf("failed to load booking: %w", err)
	}

	recipient := notifications.Recipient{
		Name:             profile.FullName(),
		Email:            profile.Email,
		Phone:            profile.Phone,
		SMSNotifications: profile.SMSNotifications,
	}

	for _, msg := range notifications.Compose(ev, recipient, details) {
		switch msg.Channel {
		case notifications.ChannelEmail:
			err = s.notifier.SendEmail(ctx, msg.To, msg.Subject, msg.Body)
		case notifications.ChannelSMS:
			err = s.notifier.SendSMS(ctx, msg.To, msg.Body)
		}
		if err != nil {
			return fmt.Errorf("failed to send %s notification: %w", msg.Channel, err)
		}
		s.logger.Info("notification sent", "event", ev.Type, "booking_id", ev.BookingID, "channel", msg.Channel)
	}
	return nil
}
