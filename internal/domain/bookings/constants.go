package bookings

// Status is the lifecycle state of a booking
type Status string

// Booking statuses
const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// PaymentStatus tracks the card authorisation of a booking
type PaymentStatus string

// Payment statuses
const (
	PaymentPending    PaymentStatus = "pending"
	PaymentAuthorized PaymentStatus = "authorized"
	PaymentCaptured   PaymentStatus = "captured"
	PaymentRefunded   PaymentStatus = "refunded"
	PaymentCancelled  PaymentStatus = "cancelled"
)

// RequestStatus is the state of a contractor request
type RequestStatus string

// Request statuses
const (
	RequestPending  RequestStatus = "pending"
	RequestAccepted RequestStatus = "accepted"
	RequestRefused  RequestStatus = "refused"
	RequestExpired  RequestStatus = "expired"
)

// Payment action types reported after a cancellation
const (
	ActionRefund    = "refund"
	ActionCancelled = "cancelled"
)

// DefaultCancellationReason is stored when a caller gives none
const DefaultCancellationReason = "Cancelled by user"

// Reasons recorded by the platform itself
const (
	ReasonRequestExpired = "Contractor did not respond in time"
	ReasonRefused        = "Refused by contractor"
)
