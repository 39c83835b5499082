package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/catalog"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/giftcards"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/payments"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/promos"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/logger"
)

// paymentIntentService implements the PaymentIntentService interface
type paymentIntentService struct {
	serviceRepo catalog.ServiceRepository
	profileRepo catalog.ProfileRepository
	pricer      discountPricer
	gateway     payments.PaymentGateway
	logger      logger.Logger
}

// NewPaymentIntentService creates a new instance of PaymentIntentService
func NewPaymentIntentService(
	serviceRepo catalog.ServiceRepository,
	profileRepo catalog.ProfileRepository,
	promoValidation promos.PromoValidationService,
	giftCards giftcards.GiftCardService,
	gateway payments.PaymentGateway,
	logger logger.Logger,
) (payments.PaymentIntentService, error) {
	return &paymentIntentService{
		serviceRepo: serviceRepo,
		profileRepo: profileRepo,
		pricer:      discountPricer{promoValidation: promoValidation, giftCards: giftCards},
		gateway:     gateway,
		logger:      logger,
	}, nil
}

// CreatePaymentIntent prices the service, applies the promo code and then the
// gift card to what remains, and authorises the rest on the gateway. Nothing
// is sent to the gateway when discounts cover the full price.
func (s *paymentIntentService) CreatePaymentIntent(ctx context.Context, req *payments.IntentRequest) (*payments.IntentResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	service, err := s.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		return nil, err
	}

	amounts, err := s.pricer.price(ctx, req.UserID, req.Email, service, optional(req.PromoCode), optional(req.GiftCardCode))
	if err != nil {
		return nil, err
	}

	if amounts.Final == 0 {
		s.logger.Info("payment fully covered by discounts", "user_id", req.UserID, "service_id", req.ServiceID)
		return &payments.IntentResult{PaymentRequired: false, Amounts: amounts}, nil
	}

	customer, err := s.gateway.GetOrCreateCustomer(ctx, req.Email, profile.FullName(), req.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve payment customer: %w", err)
	}
	if profile.StripeCustomerID == nil || *profile.StripeCustomerID != customer.ID {
		if err := s.profileRepo.SetStripeCustomerID(ctx, profile.ID, customer.ID); err != nil {
			s.logger.Warn("failed to store payment customer id", "user_id", profile.ID, "error", err)
		}
	}

	intent, err := s.gateway.CreatePaymentIntent(ctx, &payments.CreateIntentParams{
		Amount:      amounts.Final,
		CustomerID:  customer.ID,
		Description: fmt.Sprintf("Réservation %s", service.Name),
		Metadata:    amounts.Metadata(req.UserID, req.ServiceID, req.ScheduledAt),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	s.logger.Info("payment intent created", "payment_intent_id", intent.ID, "amount", amounts.Final)

	return &payments.IntentResult{
		PaymentRequired: true,
		ClientSecret:    intent.ClientSecret,
		PaymentIntentID: intent.ID,
		Amounts:         amounts,
	}, nil
}

func optional(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

// discountPricer applies a promo code to a service price, then a gift card to what remains
type discountPricer struct {
	promoValidation promos.PromoValidationService
	giftCards       giftcards.GiftCardService
}

func (p discountPricer) price(ctx context.Context, userID, email string, service *catalog.Service, promoCode, giftCardCode string) (payments.Amounts, error) {
	amounts := payments.Amounts{Original: service.BasePrice}

	if promoCode != "" {
		validation, err := p.promoValidation.Check(ctx, promos.ValidateInput{
			Code:      promoCode,
			UserID:    userID,
			ServiceID: service.ID,
			Amount:    amounts.Original,
		})
		if err != nil {
			return amounts, fmt.Errorf("failed to validate promo code: %w", err)
		}
		if !validation.Valid {
			return amounts, fmt.Errorf("%w: %s", payments.ErrInvalidPromo, validation.ErrorCode)
		}
		amounts.PromoDiscount = validation.DiscountAmount
		amounts.PromoID = validation.PromoID
	}

	if giftCardCode != "" {
		remaining := payments.ApplyDiscounts(amounts.Original, amounts.PromoDiscount, 0)
		validation, err := p.giftCards.Validate(ctx, giftCardCode, email, remaining)
		if err != nil {
			return amounts, fmt.Errorf("failed to validate gift card: %w", err)
		}
		if !validation.Valid {
			return amounts, fmt.Errorf("%w: %s", payments.ErrInvalidGiftCard, validation.ErrorCode)
		}
		amounts.GiftCardAmount = validation.AmountToApply
		amounts.GiftCardID = validation.GiftCardID
		amounts.GiftCardCode = validation.Code
	}

	amounts.Final = payments.ApplyDiscounts(amounts.Original, amounts.PromoDiscount, amounts.GiftCardAmount)
	return amounts, nil
}
