package payments

import "context"

// PaymentGateway talks to the card payment provider. Intents are created
// for manual capture: the card is authorised at booking time and charged
// once the contractor accepts.
type PaymentGateway interface {
	CreatePaymentIntent(ctx context.Context, params *CreateIntentParams) (*Intent, error)
	GetPaymentIntent(ctx context.Context, intentID string) (*Intent, error)
	// CapturePaymentIntent charges an authorised intent; a nil amount captures it all.
	CapturePaymentIntent(ctx context.Context, intentID string, amount *int64) (*Intent, error)
	CancelPaymentIntent(ctx context.Context, intentID string) (*Intent, error)
	// RefundPaymentIntent refunds a captured intent; a nil amount refunds it all.
	RefundPaymentIntent(ctx context.Context, intentID string, amount *int64, reason string) (*Refund, error)
	UpdateMetadata(ctx context.Context, intentID string, metadata map[string]string) error
	GetOrCreateCustomer(ctx context.Context, email, name, userID string) (*Customer, error)
}

// PaymentIntentService prices a booking and authorises the client's card
type PaymentIntentService interface {
	CreatePaymentIntent(ctx context.Context, req *IntentRequest) (*IntentResult, error)
}
