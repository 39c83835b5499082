package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/bookings"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/payments"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/logger"
)

// bookingRequestService implements the BookingRequestService interface
type bookingRequestService struct {
	requestRepo bookings.BookingRequestRepository
	bookingRepo bookings.BookingRepository
	gateway     payments.PaymentGateway
	publisher   bookings.EventPublisher
	logger      logger.Logger
	now         func() time.Time
}

// NewBookingRequestService creates a new instance of BookingRequestService
func NewBookingRequestService(
	requestRepo bookings.BookingRequestRepository,
	bookingRepo bookings.BookingRepository,
	gateway payments.PaymentGateway,
	publisher bookings.EventPublisher,
	logger logger.Logger,
) (bookings.BookingRequestService, error) {
	return &bookingRequestService{
		requestRepo: requestRepo,
		bookingRepo: bookingRepo,
		gateway:     gateway,
		publisher:   publisher,
		logger:      logger,
		now:         time.Now,
	}, nil
}

func (s *bookingRequestService) ListForContractor(ctx context.Context, contractorID string, status bookings.RequestStatus) ([]*bookings.RequestWithBooking, error) {
	requests, err := s.requestRepo.ListByContractor(ctx, contractorID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list booking requests: %w", err)
	}

	out := make([]*bookings.RequestWithBooking, 0, len(requests))
	for _, r := range requests {
		booking, err := s.bookingRepo.GetByID(ctx, r.BookingID)
		if err != nil {
			if errors.Is(err, bookings.ErrNotFound) {
				s.logger.Warn("booking request without booking", "request_id", r.ID, "booking_id", r.BookingID)
				continue
			}
			return nil, err
		}
		out = append(out, &bookings.RequestWithBooking{Request: r, Booking: booking})
	}
	return out, nil
}

// Accept captures the authorised payment and confirms the booking. The
// request and booking are stored together; retrying after a failed store
// finds the intent captured and does not charge again.
func (s *bookingRequestService) Accept(ctx context.Context, requestID string, actor bookings.Actor) (*bookings.RequestWithBooking, error) {
	request, booking, err := s.pendingRequest(ctx, requestID, actor)
	if err != nil {
		return nil, err
	}
	if !booking.HasPaymentIntent() {
		return nil, bookings.ErrNoPaymentIntent
	}

	intentID := *booking.PaymentIntentID
	if err := s.capture(ctx, intentID); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	request.Status = bookings.RequestAccepted
	request.RespondedAt = &now
	contractorID := request.ContractorID
	booking.ContractorID = &contractorID
	booking.Status = bookings.StatusConfirmed
	booking.PaymentStatus = bookings.PaymentCaptured
	if err := s.requestRepo.UpdateWithBooking(ctx, request, booking); err != nil {
		s.logger.Error("payment captured but acceptance was not stored",
			"payment_intent_id", intentID, "request_id", request.ID, "booking_id", booking.ID, "error", err)
		return nil, fmt.Errorf("failed to store accepted booking request: %w", err)
	}

	s.logger.Info("booking request accepted", "request_id", request.ID, "booking_id", booking.ID)
	publishEvent(ctx, s.publisher, s.logger, bookings.EventConfirmed, booking, now)
	return &bookings.RequestWithBooking{Request: request, Booking: booking}, nil
}

// capture charges the intent unless an earlier attempt already did
func (s *bookingRequestService) capture(ctx context.Context, intentID string) error {
	intent, err := s.gateway.GetPaymentIntent(ctx, intentID)
	if err != nil {
		return fmt.Errorf("%w: %v", bookings.ErrPaymentFailed, err)
	}

	switch intent.Status {
	case payments.IntentSucceeded:
		s.logger.Info("payment intent already captured", "payment_intent_id", intentID)
		return nil
	case payments.IntentRequiresCapture:
		if _, err := s.gateway.CapturePaymentIntent(ctx, intentID, nil); err != nil {
			return fmt.Errorf("%w: %v", bookings.ErrPaymentFailed, err)
		}
		return nil
	default:
		return fmt.Errorf("%w: payment intent %s is %s", bookings.ErrPaymentFailed, intentID, intent.Status)
	}
}

// Refuse declines the request, releases the payment and cancels the booking
func (s *bookingRequestService) Refuse(ctx context.Context, requestID string, actor bookings.Actor, reason string, message *string) (*bookings.RequestWithBooking, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, bookings.ErrReasonRequired
	}

	request, booking, err := s.pendingRequest(ctx, requestID, actor)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	request.Status = bookings.RequestRefused
	request.RefusalReason = &reason
	request.ContractorMessage = message
	request.RespondedAt = &now
	if err := s.requestRepo.Update(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to update booking request: %w", err)
	}

	s.cancelBooking(ctx, booking, fmt.Sprintf("%s: %s", bookings.ReasonRefused, reason))

	s.logger.Info("booking request refused", "request_id", request.ID, "booking_id", booking.ID)
	return &bookings.RequestWithBooking{Request: request, Booking: booking}, nil
}

// ExpirePending expires every pending request past its deadline and cancels
// the bookings still open. It returns how many requests were expired.
func (s *bookingRequestService) ExpirePending(ctx context.Context, now time.Time) (int, error) {
	requests, err := s.requestRepo.ListExpired(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("failed to list expired booking requests: %w", err)
	}

	expired := 0
	for _, request := range requests {
		if err := ctx.Err(); err != nil {
			return expired, err
		}

		request.Status = bookings.RequestExpired
		request.UpdatedAt = now.UTC()
		if err := s.requestRepo.Update(ctx, request); err != nil {
			s.logger.Warn("failed to expire booking request", "request_id", request.ID, "error", err)
			continue
		}
		expired++

		booking, err := s.bookingRepo.GetByID(ctx, request.BookingID)
		if err != nil {
			s.logger.Warn("failed to load booking of expired request", "request_id", request.ID, "error", err)
			continue
		}
		if booking.Status == bookings.StatusPending {
			s.cancelBooking(ctx, booking, bookings.ReasonRequestExpired)
		}
	}

	if expired > 0 {
		s.logger.Info("booking requests expired", "count", expired)
	}
	return expired, nil
}

func (s *bookingRequestService) pendingRequest(ctx context.Context, requestID string, actor bookings.Actor) (*bookings.BookingRequest, *bookings.Booking, error) {
	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, nil, err
	}
	if !actor.CanAnswer(request) {
		return nil, nil, bookings.ErrForbidden
	}
	if request.Status != bookings.RequestPending {
		return nil, nil, bookings.ErrRequestNotPending
	}
	if request.Expired(s.now()) {
		return nil, nil, bookings.ErrRequestExpired
	}

	booking, err := s.bookingRepo.GetByID(ctx, request.BookingID)
	if err != nil {
		return nil, nil, err
	}
	return request, booking, nil
}

// cancelBooking releases the payment best effort and marks the booking cancelled.
// Failures are logged; the request outcome stands either way.
func (s *bookingRequestService) cancelBooking(ctx context.Context, booking *bookings.Booking, reason string) {
	if booking.HasPaymentIntent() && booking.PaymentStatus == bookings.PaymentAuthorized {
		if _, err := s.gateway.CancelPaymentIntent(ctx, *booking.PaymentIntentID); err != nil {
			s.logger.Warn("failed to cancel payment intent", "booking_id", booking.ID, "error", err)
		} else {
			booking.PaymentStatus = bookings.PaymentCancelled
		}
	}

	now := s.now().UTC()
	booking.Status = bookings.StatusCancelled
	booking.CancellationReason = &reason
	booking.CancelledAt = &now
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		s.logger.Warn("failed to cancel booking", "booking_id", booking.ID, "error", err)
		return
	}
	publishEvent(ctx, s.publisher, s.logger, bookings.EventCancelled, booking, now)
}
