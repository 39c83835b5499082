package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/bookings"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/catalog"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/giftcards"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/pagination"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/payments"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/promos"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/config"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/logger"

	"github.com/google/uuid"
)

// bookingService implements the BookingService interface
type bookingService struct {
	bookingRepo     bookings.BookingRepository
	requestRepo     bookings.BookingRequestRepository
	serviceRepo     catalog.ServiceRepository
	addressRepo     catalog.AddressRepository
	profileRepo     catalog.ProfileRepository
	contractors     catalog.ContractorService
	promoValidation promos.PromoValidationService
	giftCards       giftcards.GiftCardService
	pricer          discountPricer
	gateway         payments.PaymentGateway
	publisher       bookings.EventPublisher
	leadTime        time.Duration
	logger          logger.Logger
	now             func() time.Time
}

// NewBookingService creates a new instance of BookingService
func NewBookingService(
	bookingRepo bookings.BookingRepository,
	requestRepo bookings.BookingRequestRepository,
	serviceRepo catalog.ServiceRepository,
	addressRepo catalog.AddressRepository,
	profileRepo catalog.ProfileRepository,
	contractors catalog.ContractorService,
	promoValidation promos.PromoValidationService,
	giftCards giftcards.GiftCardService,
	gateway payments.PaymentGateway,
	publisher bookings.EventPublisher,
	settings *config.BookingSettings,
	logger logger.Logger,
) (bookings.BookingService, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return &bookingService{
		bookingRepo:     bookingRepo,
		requestRepo:     requestRepo,
		serviceRepo:     serviceRepo,
		addressRepo:     addressRepo,
		profileRepo:     profileRepo,
		contractors:     contractors,
		promoValidation: promoValidation,
		giftCards:       giftCards,
		pricer:          discountPricer{promoValidation: promoValidation, giftCards: giftCards},
		gateway:         gateway,
		publisher:       publisher,
		leadTime:        settings.RequestLeadTime,
		logger:          logger,
		now:             time.Now,
	}, nil
}

// Create books a service for the client. Amounts are recomputed from the
// submitted promo code and gift card and must equal what the payment intent
// authorised. Once the intent is known to be the client's, any failure
// cancels it so the card is not left on hold.
func (s *bookingService) Create(ctx context.Context, input *bookings.CreateInput) (_ *bookings.Booking, err error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if input.PaymentIntentID == "" {
		return nil, bookings.ErrPaymentIntentRequired
	}

	paid := input.PaymentIntentID != payments.NoPaymentRequired
	var intent *payments.Intent
	if paid {
		intent, err = s.gateway.GetPaymentIntent(ctx, input.PaymentIntentID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", bookings.ErrPaymentFailed, err)
		}
		if intent.Status != payments.IntentRequiresCapture || intent.Metadata["user_id"] != input.ClientID {
			return nil, payments.ErrIntentMismatch
		}
		defer func() {
			if err != nil {
				s.cancelIntent(ctx, input.PaymentIntentID)
			}
		}()
	}

	service, err := s.serviceRepo.GetByID(ctx, input.ServiceID)
	if err != nil {
		return nil, err
	}

	address, err := s.addressRepo.GetByID(ctx, input.AddressID)
	if err != nil {
		return nil, err
	}
	if address.ClientID != input.ClientID {
		return nil, bookings.ErrAddressNotOwned
	}
	if address.Removed() {
		return nil, catalog.ErrAddressNotFound
	}

	scheduledAt := input.ScheduledAt.UTC()
	if input.ContractorID != nil {
		ok, err := s.contractors.IsAvailable(ctx, *input.ContractorID, catalog.NewSlot(scheduledAt, service.Duration()), "")
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, catalog.ErrContractorUnavailable
		}
	}

	amounts, err := s.pricer.price(ctx, input.ClientID, input.ClientEmail, service, optional(input.PromoCode), optional(input.GiftCardCode))
	if err != nil {
		return nil, err
	}

	if !paid && amounts.Final > 0 {
		return nil, bookings.ErrPaymentIntentRequired
	}
	if paid && !intent.AuthorisedFor(input.ClientID, amounts.Final) {
		s.logger.Warn("payment intent amount differs from booking price",
			"payment_intent_id", intent.ID, "authorised", intent.Amount, "final_amount", amounts.Final)
		return nil, fmt.Errorf("%w: authorised %d, booking costs %d", payments.ErrIntentMismatch, intent.Amount, amounts.Final)
	}

	customerID, err := s.customerID(ctx, input)
	if err != nil {
		if paid {
			return nil, fmt.Errorf("%w: %v", bookings.ErrPaymentFailed, err)
		}
		s.logger.Warn("failed to resolve payment customer", "client_id", input.ClientID, "error", err)
	}

	now := s.now().UTC()
	booking := &bookings.Booking{
		ID:                    uuid.NewString(),
		ClientID:              input.ClientID,
		ContractorID:          input.ContractorID,
		ServiceID:             service.ID,
		AddressID:             address.ID,
		ScheduledAt:           scheduledAt,
		BookingTimezone:       input.BookingTimezone,
		DurationMinutes:       service.BaseDurationMinutes,
		Status:                bookings.StatusPending,
		PaymentStatus:         bookings.PaymentPending,
		ServiceAmountOriginal: amounts.Original,
		PromoDiscountAmount:   amounts.PromoDiscount,
		GiftCardAmount:        amounts.GiftCardAmount,
		FinalAmount:           amounts.Final,
		Address: bookings.AddressSnapshot{
			Street:     address.Street,
			City:       address.City,
			PostalCode: address.PostalCode,
			Country:    address.Country,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if paid {
		intentID := input.PaymentIntentID
		booking.PaymentIntentID = &intentID
		booking.PaymentStatus = bookings.PaymentAuthorized
	}
	if customerID != "" {
		booking.StripeCustomerID = &customerID
	}
	if amounts.PromoID != "" {
		booking.PromoCodeID = &amounts.PromoID
	}
	if amounts.GiftCardID != "" {
		booking.GiftCardID = &amounts.GiftCardID
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	s.logger.Info("booking created", "booking_id", booking.ID, "client_id", booking.ClientID, "final_amount", booking.FinalAmount)
	s.afterCreate(ctx, booking, amounts)
	return booking, nil
}

func (s *bookingService) customerID(ctx context.Context, input *bookings.CreateInput) (string, error) {
	profile, err := s.profileRepo.GetByID(ctx, input.ClientID)
	if err != nil {
		return "", err
	}
	if profile.StripeCustomerID != nil && *profile.StripeCustomerID != "" {
		return *profile.StripeCustomerID, nil
	}

	customer, err := s.gateway.GetOrCreateCustomer(ctx, input.ClientEmail, profile.FullName(), input.ClientID)
	if err != nil {
		return "", err
	}
	if err := s.profileRepo.SetStripeCustomerID(ctx, profile.ID, customer.ID); err != nil {
		s.logger.Warn("failed to store payment customer id", "user_id", profile.ID, "error", err)
	}
	return customer.ID, nil
}

// afterCreate runs the follow-up steps of a new booking. None of them fail the booking.
func (s *bookingService) afterCreate(ctx context.Context, b *bookings.Booking, amounts payments.Amounts) {
	if b.HasPaymentIntent() {
		if err := s.gateway.UpdateMetadata(ctx, *b.PaymentIntentID, map[string]string{"booking_id": b.ID}); err != nil {
			s.logger.Warn("failed to tag payment intent with booking", "booking_id", b.ID, "error", err)
		}
	}

	if amounts.GiftCardID != "" && amounts.GiftCardAmount > 0 {
		if err := s.giftCards.Apply(ctx, amounts.GiftCardID, b.ID, b.ClientID, amounts.GiftCardAmount); err != nil {
			s.logger.Warn("failed to debit gift card", "booking_id", b.ID, "gift_card_id", amounts.GiftCardID, "error", err)
		}
	}

	if amounts.PromoID != "" && amounts.PromoDiscount > 0 {
		usage := &promos.PromoCodeUsage{
			PromoCodeID:    amounts.PromoID,
			BookingID:      b.ID,
			UserID:         b.ClientID,
			OriginalAmount: amounts.Original,
			DiscountAmount: amounts.PromoDiscount,
			FinalAmount:    amounts.Final,
		}
		if err := s.promoValidation.RecordUsage(ctx, usage); err != nil {
			s.logger.Warn("failed to record promo usage", "booking_id", b.ID, "promo_id", amounts.PromoID, "error", err)
		}
	}

	if b.ContractorID != nil {
		if err := s.createRequest(ctx, b, *b.ContractorID); err != nil {
			s.logger.Warn("failed to create booking request", "booking_id", b.ID, "error", err)
		}
	}

	s.publish(ctx, bookings.EventCreated, b)
}

func (s *bookingService) createRequest(ctx context.Context, b *bookings.Booking, contractorID string) error {
	now := s.now().UTC()
	return s.requestRepo.Create(ctx, &bookings.BookingRequest{
		ID:           uuid.NewString(),
		BookingID:    b.ID,
		ContractorID: contractorID,
		Status:       bookings.RequestPending,
		ExpiresAt:    bookings.RequestExpiry(b.ScheduledAt, now, s.leadTime),
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

func (s *bookingService) GetByID(ctx context.Context, id string, actor bookings.Actor) (*bookings.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanView(booking) {
		return nil, bookings.ErrForbidden
	}
	return booking, nil
}

// List scopes the query to the actor: clients and contractors only see their own bookings.
func (s *bookingService) List(ctx context.Context, query *bookings.Query, actor bookings.Actor) (*bookings.BookingPage, error) {
	actor.Scope(query)
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items, total, err := s.bookingRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	return &bookings.BookingPage{
		Items: items,
		Page:  pagination.NewPage(query.Page, query.Limit, total),
	}, nil
}

// Cancel refunds a captured payment or releases an authorised one, then marks the booking cancelled
func (s *bookingService) Cancel(ctx context.Context, id string, actor bookings.Actor, reason string) (*bookings.CancelResult, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanCancel(booking) {
		return nil, bookings.ErrForbidden
	}
	if booking.Status == bookings.StatusCancelled {
		return nil, bookings.ErrAlreadyCancelled
	}

	result := &bookings.CancelResult{Booking: booking}

	if booking.HasPaymentIntent() {
		if booking.PaymentStatus == bookings.PaymentCaptured {
			refund, err := s.gateway.RefundPaymentIntent(ctx, *booking.PaymentIntentID, nil, payments.RefundRequestedByCustomer)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", bookings.ErrPaymentFailed, err)
			}
			booking.PaymentStatus = bookings.PaymentRefunded
			result.PaymentAction = &bookings.PaymentAction{Type: bookings.ActionRefund, ID: refund.ID, Amount: refund.Amount}
		} else {
			intent, err := s.gateway.CancelPaymentIntent(ctx, *booking.PaymentIntentID)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", bookings.ErrPaymentFailed, err)
			}
			booking.PaymentStatus = bookings.PaymentCancelled
			result.PaymentAction = &bookings.PaymentAction{Type: bookings.ActionCancelled, ID: intent.ID, Amount: intent.Amount}
		}
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = bookings.DefaultCancellationReason
	}
	now := s.now().UTC()
	booking.Status = bookings.StatusCancelled
	booking.CancellationReason = &reason
	booking.CancelledAt = &now

	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}

	s.logger.Info("booking cancelled", "booking_id", booking.ID, "by", actor.UserID)
	s.publish(ctx, bookings.EventCancelled, booking)
	return result, nil
}

func (s *bookingService) CapturePayment(ctx context.Context, id string, actor bookings.Actor, amount *int64) (*bookings.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanCapture(booking) {
		return nil, bookings.ErrForbidden
	}
	if !booking.HasPaymentIntent() {
		return nil, bookings.ErrNoPaymentIntent
	}
	if booking.Status != bookings.StatusConfirmed && booking.Status != bookings.StatusCompleted {
		return nil, bookings.ErrInvalidStatus
	}

	if _, err := s.gateway.CapturePaymentIntent(ctx, *booking.PaymentIntentID, amount); err != nil {
		return nil, fmt.Errorf("%w: %v", bookings.ErrPaymentFailed, err)
	}

	now := s.now().UTC()
	booking.Status = bookings.StatusCompleted
	booking.PaymentStatus = bookings.PaymentCaptured
	if booking.CompletedAt == nil {
		booking.CompletedAt = &now
	}
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}

	s.logger.Info("booking payment captured", "booking_id", booking.ID, "payment_intent_id", *booking.PaymentIntentID)
	s.publish(ctx, bookings.EventCompleted, booking)
	return booking, nil
}

func (s *bookingService) MarkCompleted(ctx context.Context, id string, actor bookings.Actor) (*bookings.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanComplete(booking) {
		return nil, bookings.ErrForbidden
	}
	if booking.Status != bookings.StatusConfirmed && booking.Status != bookings.StatusInProgress {
		return nil, bookings.ErrInvalidStatus
	}

	now := s.now().UTC()
	booking.Status = bookings.StatusCompleted
	booking.CompletedAt = &now
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}

	s.logger.Info("booking completed", "booking_id", booking.ID)
	s.publish(ctx, bookings.EventCompleted, booking)
	return booking, nil
}

// Confirm is the staff override for a booking no contractor answered. The
// payment stays authorised until the booking is captured.
func (s *bookingService) Confirm(ctx context.Context, id string, actor bookings.Actor) (*bookings.Booking, error) {
	if !actor.IsStaff() {
		return nil, bookings.ErrForbidden
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.Status != bookings.StatusPending {
		return nil, bookings.ErrInvalidStatus
	}

	request, err := s.requestRepo.GetPendingByBookingID(ctx, booking.ID)
	if err != nil && !errors.Is(err, bookings.ErrRequestNotFound) {
		return nil, err
	}

	now := s.now().UTC()
	booking.Status = bookings.StatusConfirmed
	if request == nil {
		err = s.bookingRepo.Update(ctx, booking)
	} else {
		request.Status = bookings.RequestAccepted
		request.RespondedAt = &now
		contractorID := request.ContractorID
		booking.ContractorID = &contractorID
		err = s.requestRepo.UpdateWithBooking(ctx, request, booking)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}

	s.logger.Info("booking confirmed manually", "booking_id", booking.ID, "by", actor.UserID)
	s.publish(ctx, bookings.EventConfirmed, booking)
	return booking, nil
}

// AssignContractor gives an open booking to a contractor free for its slot.
// Pending bookings also get a booking request for the contractor to answer.
func (s *bookingService) AssignContractor(ctx context.Context, id, contractorID string) (*bookings.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.Status == bookings.StatusCancelled || booking.Status == bookings.StatusCompleted {
		return nil, bookings.ErrInvalidStatus
	}

	slot := catalog.Slot{Start: booking.ScheduledAt, End: booking.EndsAt()}
	ok, err := s.contractors.IsAvailable(ctx, contractorID, slot, booking.ID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, catalog.ErrContractorUnavailable
	}

	booking.ContractorID = &contractorID
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}

	if booking.Status == bookings.StatusPending {
		if err := s.createRequest(ctx, booking, contractorID); err != nil {
			s.logger.Warn("failed to create booking request", "booking_id", booking.ID, "error", err)
		}
	}

	s.logger.Info("contractor assigned", "booking_id", booking.ID, "contractor_id", contractorID)
	return booking, nil
}

func (s *bookingService) publish(ctx context.Context, key string, b *bookings.Booking) {
	publishEvent(ctx, s.publisher, s.logger, key, b, s.now())
}

func (s *bookingService) cancelIntent(ctx context.Context, intentID string) {
	if _, err := s.gateway.CancelPaymentIntent(ctx, intentID); err != nil {
		s.logger.Warn("failed to cancel payment intent", "payment_intent_id", intentID, "error", err)
	}
}

func publishEvent(ctx context.Context, publisher bookings.EventPublisher, log logger.Logger, key string, b *bookings.Booking, now time.Time) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, key, bookings.NewEvent(key, b, now.UTC())); err != nil {
		log.Warn("failed to publish booking event", "event", key, "booking_id", b.ID, "error", err)
	}
}
