package bookings

import (
	"context"
	"time"
)

// BookingService handles the booking lifecycle
type BookingService interface {
	// Create stores a pending booking for an authorised payment.
	Create(ctx context.Context, input *CreateInput) (*Booking, error)
	GetByID(ctx context.Context, id string, actor Actor) (*Booking, error)
	List(ctx context.Context, query *Query, actor Actor) (*BookingPage, error)
	// Cancel releases or refunds the payment and cancels the booking.
	Cancel(ctx context.Context, id string, actor Actor, reason string) (*CancelResult, error)
	// CapturePayment charges a confirmed booking; a nil amount captures the authorised total.
	CapturePayment(ctx context.Context, id string, actor Actor, amount *int64) (*Booking, error)
	MarkCompleted(ctx context.Context, id string, actor Actor) (*Booking, error)
	// Confirm lets staff confirm a pending booking without capturing its payment.
	// A pending booking request of the booking is marked accepted.
	Confirm(ctx context.Context, id string, actor Actor) (*Booking, error)
	// AssignContractor sets the contractor of a booking when they are free for its slot.
	AssignContractor(ctx context.Context, id, contractorID string) (*Booking, error)
}

// BookingRequestService handles contractor answers to booking requests
type BookingRequestService interface {
	ListForContractor(ctx context.Context, contractorID string, status RequestStatus) ([]*RequestWithBooking, error)
	Accept(ctx context.Context, requestID string, actor Actor) (*RequestWithBooking, error)
	Refuse(ctx context.Context, requestID string, actor Actor, reason string, message *string) (*RequestWithBooking, error)
	// ExpirePending expires every pending request past its deadline and cancels its booking.
	ExpirePending(ctx context.Context, now time.Time) (int, error)
}

// BookingRepository defines persistence for bookings
type BookingRepository interface {
	Create(ctx context.Context, booking *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, query *Query) ([]*Booking, int64, error)
	Update(ctx context.Context, booking *Booking) error
	// CountActiveForClient counts bookings of the client that are not cancelled.
	CountActiveForClient(ctx context.Context, clientID string) (int64, error)
}

// BookingRequestRepository defines persistence for booking requests
type BookingRequestRepository interface {
	Create(ctx context.Context, request *BookingRequest) error
	GetByID(ctx context.Context, id string) (*BookingRequest, error)
	// GetPendingByBookingID returns ErrRequestNotFound when nothing is pending.
	GetPendingByBookingID(ctx context.Context, bookingID string) (*BookingRequest, error)
	ListByContractor(ctx context.Context, contractorID string, status RequestStatus) ([]*BookingRequest, error)
	ListExpired(ctx context.Context, now time.Time) ([]*BookingRequest, error)
	Update(ctx context.Context, request *BookingRequest) error
	// UpdateWithBooking saves the request and its booking in one transaction.
	UpdateWithBooking(ctx context.Context, request *BookingRequest, booking *Booking) error
}
