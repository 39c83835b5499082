package bookings

import "errors"

var (
	// ErrNotFound is returned when no booking matches
	ErrNotFound = errors.New("booking not found")
	// ErrRequestNotFound is returned when no booking request matches
	ErrRequestNotFound = errors.New("booking request not found")
	// ErrForbidden is returned when the caller may not act on a booking
	ErrForbidden = errors.New("not authorized for this booking")
	// ErrAlreadyCancelled is returned when cancelling a cancelled booking
	ErrAlreadyCancelled = errors.New("booking is already cancelled")
	// ErrInvalidStatus is returned when a transition is not allowed from the current status
	ErrInvalidStatus = errors.New("booking status does not allow this operation")
	// ErrNoPaymentIntent is returned when a payment operation targets a booking without intent
	ErrNoPaymentIntent = errors.New("booking has no payment intent")
	// ErrRequestExpired is returned when answering an expired request
	ErrRequestExpired = errors.New("booking request has expired")
	// ErrRequestNotPending is returned when answering a request twice
	ErrRequestNotPending = errors.New("booking request is not pending")
	// ErrPaymentIntentRequired is returned when creating a paid booking without intent
	ErrPaymentIntentRequired = errors.New("payment intent id is required")
	// ErrAddressNotOwned is returned when the address belongs to another client
	ErrAddressNotOwned = errors.New("address does not belong to the client")
	// ErrReasonRequired is returned when refusing without a reason
	ErrReasonRequired = errors.New("refusal reason is required")
	// ErrPaymentFailed wraps gateway failures during cancellation or capture
	ErrPaymentFailed = errors.New("failed to process payment")
)
