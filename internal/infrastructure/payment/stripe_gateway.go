package payment

import (
	"context"
	"fmt"
	"strings"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/payments"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/config"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/logger"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
)

// StripeGateway is the Stripe implementation of payments.PaymentGateway
type StripeGateway struct {
	api      *client.API
	currency string
	logger   logger.Logger
}

// NewStripeGateway creates a gateway authenticated with the configured secret key
func NewStripeGateway(settings *config.StripeSettings, logger logger.Logger) (payments.PaymentGateway, error) {
	return newStripeGateway(settings, nil, logger)
}

func newStripeGateway(settings *config.StripeSettings, backends *stripe.Backends, logger logger.Logger) (*StripeGateway, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	api := &client.API{}
	api.Init(settings.SecretKey, backends)

	return &StripeGateway{
		api:      api,
		currency: strings.ToLower(settings.Currency),
		logger:   logger,
	}, nil
}

func gatewayError(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", payments.ErrGateway, op, err)
}

func toIntent(pi *stripe.PaymentIntent) *payments.Intent {
	return &payments.Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       pi.Amount,
		Status:       string(pi.Status),
		Metadata:     pi.Metadata,
	}
}

func (g *StripeGateway) CreatePaymentIntent(ctx context.Context, p *payments.CreateIntentParams) (*payments.Intent, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	params := &stripe.PaymentIntentParams{
		Params:        stripe.Params{Context: ctx},
		Amount:        stripe.Int64(p.Amount),
		Currency:      stripe.String(g.currency),
		CaptureMethod: stripe.String(string(stripe.PaymentIntentCaptureMethodManual)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	if p.CustomerID != "" {
		params.Customer = stripe.String(p.CustomerID)
	}
	if p.Description != "" {
		params.Description = stripe.String(p.Description)
	}
	for k, v := range p.Metadata {
		params.AddMetadata(k, v)
	}

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, gatewayError("create payment intent", err)
	}

	g.logger.Info("Created payment intent ", pi.ID, " for ", p.Amount, " cents")
	return toIntent(pi), nil
}

func (g *StripeGateway) GetPaymentIntent(ctx context.Context, intentID string) (*payments.Intent, error) {
	params := &stripe.PaymentIntentParams{Params: stripe.Params{Context: ctx}}

	pi, err := g.api.PaymentIntents.Get(intentID, params)
	if err != nil {
		return nil, gatewayError("get payment intent", err)
	}
	return toIntent(pi), nil
}

func (g *StripeGateway) CapturePaymentIntent(ctx context.Context, intentID string, amount *int64) (*payments.Intent, error) {
	params := &stripe.PaymentIntentCaptureParams{Params: stripe.Params{Context: ctx}}
	if amount != nil {
		params.AmountToCapture = stripe.Int64(*amount)
	}

	pi, err := g.api.PaymentIntents.Capture(intentID, params)
	if err != nil {
		return nil, gatewayError("capture payment intent", err)
	}

	g.logger.Info("Captured payment intent ", pi.ID)
	return toIntent(pi), nil
}

func (g *StripeGateway) CancelPaymentIntent(ctx context.Context, intentID string) (*payments.Intent, error) {
	params := &stripe.PaymentIntentCancelParams{Params: stripe.Params{Context: ctx}}

	pi, err := g.api.PaymentIntents.Cancel(intentID, params)
	if err != nil {
		return nil, gatewayError("cancel payment intent", err)
	}

	g.logger.Info("Cancelled payment intent ", pi.ID)
	return toIntent(pi), nil
}

func (g *StripeGateway) RefundPaymentIntent(ctx context.Context, intentID string, amount *int64, reason string) (*payments.Refund, error) {
	params := &stripe.RefundParams{
		Params:        stripe.Params{Context: ctx},
		PaymentIntent: stripe.String(intentID),
	}
	if amount != nil {
		params.Amount = stripe.Int64(*amount)
	}
	if reason != "" {
		params.Reason = stripe.String(reason)
	}

	r, err := g.api.Refunds.New(params)
	if err != nil {
		return nil, gatewayError("refund payment intent", err)
	}

	g.logger.Info("Refunded payment intent ", intentID, " with refund ", r.ID)
	return &payments.Refund{ID: r.ID, Amount: r.Amount}, nil
}

func (g *StripeGateway) UpdateMetadata(ctx context.Context, intentID string, metadata map[string]string) error {
	params := &stripe.PaymentIntentParams{Params: stripe.Params{Context: ctx}}
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	if _, err := g.api.PaymentIntents.Update(intentID, params); err != nil {
		return gatewayError("update payment intent", err)
	}
	return nil
}

// GetOrCreateCustomer returns the first customer with email, creating one tagged with userID if none exists
func (g *StripeGateway) GetOrCreateCustomer(ctx context.Context, email, name, userID string) (*payments.Customer, error) {
	listParams := &stripe.CustomerListParams{
		ListParams: stripe.ListParams{Context: ctx, Limit: stripe.Int64(1)},
		Email:      stripe.String(email),
	}

	iter := g.api.Customers.List(listParams)
	if iter.Next() {
		c := iter.Customer()
		return &payments.Customer{ID: c.ID, Email: c.Email}, nil
	}
	if err := iter.Err(); err != nil {
		return nil, gatewayError("list customers", err)
	}

	params := &stripe.CustomerParams{
		Params: stripe.Params{Context: ctx},
		Email:  stripe.String(email),
	}
	if name != "" {
		params.Name = stripe.String(name)
	}
	params.AddMetadata("user_id", userID)

	c, err := g.api.Customers.New(params)
	if err != nil {
		return nil, gatewayError("create customer", err)
	}

	g.logger.Info("Created payment customer ", c.ID, " for user ", userID)
	return &payments.Customer{ID: c.ID, Email: c.Email}, nil
}
