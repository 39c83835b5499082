package v1

import (
	"time"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/bookings"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/catalog"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/giftcards"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/images"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/markets"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/pagination"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/payments"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/promos"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/translations"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/validators"
)

// ErrorResponse is the error body of every route but the image routes
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse carries a plain outcome message
type InfoResponse struct {
	Message string `json:"message"`
}

// ImageError is the error detail of the image routes
type ImageError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ImageErrorResponse is the error envelope of the image routes
type ImageErrorResponse struct {
	Success bool       `json:"success"`
	Error   ImageError `json:"error"`
}

// ImageResponse is the success envelope of the image routes
type ImageResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
}

// PaginationResponse is the page metadata of list endpoints
type PaginationResponse struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

func newPaginationResponse(p pagination.Page) PaginationResponse {
	return PaginationResponse{Page: p.Page, Limit: p.Limit, Total: p.Total, Pages: p.Pages}
}

// ValidatePromoRequest checks a promo code against a service price
type ValidatePromoRequest struct {
	Code          string `json:"code" validate:"required,max=50"`
	ServiceID     string `json:"service_id" validate:"required,uuid4"`
	ServiceAmount int64  `json:"service_amount" validate:"required,min=1"`
}

// Validate for validating ValidatePromoRequest struct
func (r *ValidatePromoRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// ValidatePromoResponse is the outcome of a promo check
type ValidatePromoResponse struct {
	Valid          bool   `json:"valid"`
	Error          string `json:"error,omitempty"`
	PromoID        string `json:"promo_id,omitempty"`
	Code           string `json:"code,omitempty"`
	DiscountType   string `json:"discount_type,omitempty"`
	DiscountValue  int64  `json:"discount_value,omitempty"`
	DiscountAmount int64  `json:"discount_amount"`
	FinalAmount    int64  `json:"final_amount"`
	OriginalAmount int64  `json:"original_amount"`

	Summary *DiscountSummaryResponse `json:"summary,omitempty"`
}

// DiscountSummaryResponse is the display breakdown of an accepted promo
type DiscountSummaryResponse struct {
	SavingsPercentage float64 `json:"savings_percentage"`
	FormattedOriginal string  `json:"formatted_original"`
	FormattedDiscount string  `json:"formatted_discount"`
	FormattedFinal    string  `json:"formatted_final"`
}

func newValidatePromoResponse(v *promos.Validation) ValidatePromoResponse {
	if !v.Valid {
		return ValidatePromoResponse{
			Valid:          false,
			Error:          v.ErrorCode,
			FinalAmount:    v.FinalAmount,
			OriginalAmount: v.OriginalAmount,
		}
	}
	resp := ValidatePromoResponse{
		Valid:          true,
		PromoID:        v.PromoID,
		Code:           v.Code,
		DiscountType:   string(v.DiscountType),
		DiscountValue:  v.DiscountValue,
		DiscountAmount: v.DiscountAmount,
		FinalAmount:    v.FinalAmount,
		OriginalAmount: v.OriginalAmount,
	}
	if v.Summary != nil {
		resp.Summary = &DiscountSummaryResponse{
			SavingsPercentage: v.Summary.SavingsPercentage,
			FormattedOriginal: v.Summary.FormattedOriginal,
			FormattedDiscount: v.Summary.FormattedDiscount,
			FormattedFinal:    v.Summary.FormattedFinal,
		}
	}
	return resp
}

// PromoCodeRequest creates or replaces a promo code.
// Omitted MaxUsesPerUser, ValidFrom and IsActive take their defaults.
type PromoCodeRequest struct {
	Code               string     `json:"code" validate:"required,max=50"`
	Description        *string    `json:"description"`
	DiscountType       string     `json:"discount_type" validate:"required,oneof=percentage fixed_amount"`
	DiscountValue      int64      `json:"discount_value" validate:"required,min=1"`
	MaxDiscountAmount  *int64     `json:"max_discount_amount"`
	MaxUses            *int       `json:"max_uses"`
	MaxUsesPerUser     int        `json:"max_uses_per_user" validate:"min=0"`
	ValidFrom          *time.Time `json:"valid_from"`
	ValidUntil         *time.Time `json:"valid_until"`
	MinOrderAmount     *int64     `json:"min_order_amount"`
	FirstBookingOnly   bool       `json:"first_booking_only"`
	SpecificServices   []string   `json:"specific_services"`
	SpecificCategories []string   `json:"specific_categories"`
	IsActive           *bool      `json:"is_active"`
}

// Validate for validating PromoCodeRequest struct
func (r *PromoCodeRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// toPromoCode builds the promo code described by the request
func (r *PromoCodeRequest) toPromoCode() *promos.PromoCode {
	p := &promos.PromoCode{
		Code:               promos.NormalizeCode(r.Code),
		Description:        r.Description,
		DiscountType:       promos.DiscountType(r.DiscountType),
		DiscountValue:      r.DiscountValue,
		MaxDiscountAmount:  r.MaxDiscountAmount,
		MaxUses:            r.MaxUses,
		MaxUsesPerUser:     r.MaxUsesPerUser,
		ValidUntil:         r.ValidUntil,
		MinOrderAmount:     r.MinOrderAmount,
		FirstBookingOnly:   r.FirstBookingOnly,
		SpecificServices:   r.SpecificServices,
		SpecificCategories: r.SpecificCategories,
		IsActive:           r.IsActive == nil || *r.IsActive,
	}
	if r.ValidFrom != nil {
		p.ValidFrom = r.ValidFrom.UTC()
	}
	return p
}

// SetActiveRequest toggles a promo code
type SetActiveRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

// Validate for validating SetActiveRequest struct
func (r *SetActiveRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// PromoCodeResponse is a promo code with its derived status
type PromoCodeResponse struct {
	ID                 string     `json:"id"`
	Code               string     `json:"code"`
	Description        *string    `json:"description,omitempty"`
	DiscountType       string     `json:"discount_type"`
	DiscountValue      int64      `json:"discount_value"`
	DiscountLabel      string     `json:"discount_label"`
	MaxDiscountAmount  *int64     `json:"max_discount_amount,omitempty"`
	MaxUses            *int       `json:"max_uses,omitempty"`
	UsesCount          int        `json:"uses_count"`
	RemainingUses      *int       `json:"remaining_uses,omitempty"`
	UsagePercentage    float64    `json:"usage_percentage"`
	MaxUsesPerUser     int        `json:"max_uses_per_user"`
	ValidFrom          time.Time  `json:"valid_from"`
	ValidUntil         *time.Time `json:"valid_until,omitempty"`
	MinOrderAmount     *int64     `json:"min_order_amount,omitempty"`
	FirstBookingOnly   bool       `json:"first_booking_only"`
	SpecificServices   []string   `json:"specific_services,omitempty"`
	SpecificCategories []string   `json:"specific_categories,omitempty"`
	IsActive           bool       `json:"is_active"`
	Status             string     `json:"status"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

func newPromoCodeResponse(p *promos.PromoCode, now time.Time) PromoCodeResponse {
	return PromoCodeResponse{
		ID:                 p.ID,
		Code:               p.Code,
		Description:        p.Description,
		DiscountType:       string(p.DiscountType),
		DiscountValue:      p.DiscountValue,
		DiscountLabel:      promos.FormatDiscount(p.DiscountType, p.DiscountValue),
		MaxDiscountAmount:  p.MaxDiscountAmount,
		MaxUses:            p.MaxUses,
		UsesCount:          p.UsesCount,
		RemainingUses:      promos.RemainingUses(p),
		UsagePercentage:    promos.UsagePercentage(p),
		MaxUsesPerUser:     p.MaxUsesPerUser,
		ValidFrom:          p.ValidFrom,
		ValidUntil:         p.ValidUntil,
		MinOrderAmount:     p.MinOrderAmount,
		FirstBookingOnly:   p.FirstBookingOnly,
		SpecificServices:   p.SpecificServices,
		SpecificCategories: p.SpecificCategories,
		IsActive:           p.IsActive,
		Status:             string(promos.ComputeStatus(p, now)),
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

// PromoPageResponse is one page of promo codes
type PromoPageResponse struct {
	Items      []PromoCodeResponse `json:"items"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"page_size"`
	TotalItems int64               `json:"total_items"`
	TotalPages int                 `json:"total_pages"`
	HasNext    bool                `json:"has_next"`
}

// PromoUsageResponse is one redemption of a promo code
type PromoUsageResponse struct {
	ID             string    `json:"id"`
	BookingID      string    `json:"booking_id"`
	UserID         string    `json:"user_id"`
	OriginalAmount int64     `json:"original_amount"`
	DiscountAmount int64     `json:"discount_amount"`
	FinalAmount    int64     `json:"final_amount"`
	UsedAt         time.Time `json:"used_at"`
}

// PromoAnalyticsResponse aggregates promo usage
type PromoAnalyticsResponse struct {
	TotalActiveCodes       int64   `json:"total_active_codes"`
	TotalUses              int64   `json:"total_uses"`
	TotalPlatformCost      int64   `json:"total_platform_cost"`
	TotalRevenueWithPromos int64   `json:"total_revenue_with_promos"`
	ROIPercentage          float64 `json:"roi_percentage"`
}

// ValidateGiftCardRequest checks how much of an amount a gift card covers
type ValidateGiftCardRequest struct {
	Code          string `json:"code" validate:"required,max=50"`
	AmountToApply int64  `json:"amount_to_apply" validate:"required,min=1"`
}

// Validate for validating ValidateGiftCardRequest struct
func (r *ValidateGiftCardRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// ValidateGiftCardResponse is the outcome of a gift card check
type ValidateGiftCardResponse struct {
	Valid            bool   `json:"valid"`
	Error            string `json:"error,omitempty"`
	GiftCardID       string `json:"gift_card_id,omitempty"`
	AvailableAmount  int64  `json:"available_amount"`
	AmountToApply    int64  `json:"amount_to_apply"`
	RemainingBalance int64  `json:"remaining_balance"`
}

func newValidateGiftCardResponse(v *giftcards.Validation) ValidateGiftCardResponse {
	if !v.Valid {
		return ValidateGiftCardResponse{Valid: false, Error: v.ErrorCode}
	}
	return ValidateGiftCardResponse{
		Valid:            true,
		GiftCardID:       v.GiftCardID,
		AvailableAmount:  v.AvailableAmount,
		AmountToApply:    v.AmountToApply,
		RemainingBalance: v.RemainingBalance,
	}
}

// ContractorResponse is the public profile of a contractor
type ContractorResponse struct {
	ID                string  `json:"id"`
	BusinessName      string  `json:"business_name"`
	Slug              string  `json:"slug"`
	Bio               *string `json:"bio,omitempty"`
	ProfessionalTitle *string `json:"professional_title,omitempty"`
	ProfilePictureURL *string `json:"profile_picture_url,omitempty"`
	Rating            float64 `json:"rating"`
	TotalBookings     int     `json:"total_bookings"`
}

// AvailabilityResponse lists the contractors free for a slot
type AvailabilityResponse struct {
	ServiceID       string               `json:"service_id"`
	ServiceName     string               `json:"service_name"`
	DurationMinutes int                  `json:"duration_minutes"`
	StartTime       time.Time            `json:"start_time"`
	EndTime         time.Time            `json:"end_time"`
	Contractors     []ContractorResponse `json:"contractors"`
}

func newAvailabilityResponse(a *catalog.Availability) AvailabilityResponse {
	resp := AvailabilityResponse{
		ServiceID:       a.Service.ID,
		ServiceName:     a.Service.Name,
		DurationMinutes: a.Service.BaseDurationMinutes,
		StartTime:       a.Slot.Start,
		EndTime:         a.Slot.End,
		Contractors:     make([]ContractorResponse, 0, len(a.Contractors)),
	}
	for _, c := range a.Contractors {
		resp.Contractors = append(resp.Contractors, ContractorResponse{
			ID:                c.ID,
			BusinessName:      c.BusinessName,
			Slug:              c.Slug,
			Bio:               c.Bio,
			ProfessionalTitle: c.ProfessionalTitle,
			ProfilePictureURL: c.ProfilePictureURL,
			Rating:            c.Rating,
			TotalBookings:     c.TotalBookings,
		})
	}
	return resp
}

// AssignContractorRequest sets the contractor of a booking
type AssignContractorRequest struct {
	ContractorID string `json:"contractor_id" validate:"required,uuid4"`
}

// Validate for validating AssignContractorRequest struct
func (r *AssignContractorRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// MarketRequest creates a market
type MarketRequest struct {
	Name               string   `json:"name"`
	Code               string   `json:"code"`
	CurrencyCode       string   `json:"currency_code"`
	Timezone           string   `json:"timezone"`
	SupportedLanguages []string `json:"supported_languages"`
	IsActive           *bool    `json:"is_active"`
}

func (r *MarketRequest) toMarket() *markets.Market {
	return &markets.Market{
		Name:               r.Name,
		Code:               r.Code,
		CurrencyCode:       r.CurrencyCode,
		Timezone:           r.Timezone,
		SupportedLanguages: r.SupportedLanguages,
		IsActive:           r.IsActive == nil || *r.IsActive,
	}
}

// MarketPatchRequest updates some fields of a market
type MarketPatchRequest struct {
	Name               *string  `json:"name"`
	Code               *string  `json:"code"`
	CurrencyCode       *string  `json:"currency_code"`
	Timezone           *string  `json:"timezone"`
	SupportedLanguages []string `json:"supported_languages"`
	IsActive           *bool    `json:"is_active"`
}

func (r *MarketPatchRequest) toPatch() *markets.Patch {
	return &markets.Patch{
		Name:               r.Name,
		Code:               r.Code,
		CurrencyCode:       r.CurrencyCode,
		Timezone:           r.Timezone,
		SupportedLanguages: r.SupportedLanguages,
		IsActive:           r.IsActive,
	}
}

// MarketResponse is a market
type MarketResponse struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Code               string    `json:"code"`
	CurrencyCode       string    `json:"currency_code"`
	Timezone           string    `json:"timezone"`
	SupportedLanguages []string  `json:"supported_languages"`
	IsActive           bool      `json:"is_active"`
	Display            string    `json:"display"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func newMarketResponse(m *markets.Market) MarketResponse {
	return MarketResponse{
		ID:                 m.ID,
		Name:               m.Name,
		Code:               m.Code,
		CurrencyCode:       m.CurrencyCode,
		Timezone:           m.Timezone,
		SupportedLanguages: m.SupportedLanguages,
		IsActive:           m.IsActive,
		Display:            markets.FormatMarketDisplay(m),
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

// MarketPageResponse is one page of markets
type MarketPageResponse struct {
	Data       []MarketResponse   `json:"data"`
	Pagination PaginationResponse `json:"pagination"`
}

// MarketStatsResponse counts what a market holds
type MarketStatsResponse struct {
	TotalContractors  int64 `json:"total_contractors"`
	ActiveContractors int64 `json:"active_contractors"`
	TotalServices     int64 `json:"total_services"`
}

// TranslationInput is one value of an upsert batch
type TranslationInput struct {
	EntityID     string `json:"entity_id"`
	FieldName    string `json:"field_name"`
	LanguageCode string `json:"language_code"`
	Value        string `json:"value"`
}

// UpsertTranslationsRequest stores a batch of translations of one entity type
type UpsertTranslationsRequest struct {
	EntityType   string             `json:"entity_type" validate:"required"`
	Translations []TranslationInput `json:"translations" validate:"required,min=1"`
}

// Validate for validating UpsertTranslationsRequest struct
func (r *UpsertTranslationsRequest) Validate() error {
	return validators.ValidateStruct(r)
}

func (r *UpsertTranslationsRequest) inputs() []translations.Input {
	inputs := make([]translations.Input, 0, len(r.Translations))
	for _, t := range r.Translations {
		inputs = append(inputs, translations.Input{
			EntityID:     t.EntityID,
			FieldName:    t.FieldName,
			LanguageCode: t.LanguageCode,
			Value:        t.Value,
		})
	}
	return inputs
}

// TranslationResponse is a stored translation
type TranslationResponse struct {
	ID           string    `json:"id"`
	EntityType   string    `json:"entity_type"`
	EntityID     string    `json:"entity_id"`
	FieldName    string    `json:"field_name"`
	LanguageCode string    `json:"language_code"`
	Value        string    `json:"value"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func newTranslationResponses(items []*translations.Translation) []TranslationResponse {
	resp := make([]TranslationResponse, 0, len(items))
	for _, t := range items {
		resp = append(resp, TranslationResponse{
			ID:           t.ID,
			EntityType:   t.EntityType,
			EntityID:     t.EntityID,
			FieldName:    t.FieldName,
			LanguageCode: t.LanguageCode,
			Value:        t.Value,
			UpdatedAt:    t.UpdatedAt,
		})
	}
	return resp
}

// TranslateRequest asks for machine translations of a text
type TranslateRequest struct {
	Text        string   `json:"text"`
	SourceLang  string   `json:"source_lang"`
	TargetLangs []string `json:"target_langs"`
}

// TranslateResponse maps each target language to its translation
type TranslateResponse struct {
	Translations map[string]string `json:"translations"`
	Mock         bool              `json:"mock"`
}

// ImageMetadataResponse is the metadata of a stored image
type ImageMetadataResponse struct {
	ID           string    `json:"id"`
	EntityType   string    `json:"entity_type"`
	EntityID     string    `json:"entity_id"`
	StoragePath  string    `json:"storage_path"`
	URL          string    `json:"url"`
	AltText      *string   `json:"alt_text,omitempty"`
	DisplayOrder int       `json:"display_order"`
	IsPrimary    bool      `json:"is_primary"`
	FileSize     int64     `json:"file_size"`
	MimeType     string    `json:"mime_type"`
	CreatedAt    time.Time `json:"created_at"`
}

func newImageMetadataResponse(img *images.ServiceImage) ImageMetadataResponse {
	return ImageMetadataResponse{
		ID:           img.ID,
		EntityType:   img.EntityType,
		EntityID:     img.EntityID,
		StoragePath:  img.StoragePath,
		URL:          img.URL,
		AltText:      img.AltText,
		DisplayOrder: img.DisplayOrder,
		IsPrimary:    img.IsPrimary,
		FileSize:     img.FileSize,
		MimeType:     img.MimeType,
		CreatedAt:    img.CreatedAt,
	}
}

// ReorderImagesRequest sets the display order of an entity's images
type ReorderImagesRequest struct {
	EntityType string   `json:"entity_type"`
	EntityID   string   `json:"entity_id"`
	ImageOrder []string `json:"image_order"`
}

// GenerateAltTextRequest asks for a generated description of an image
type GenerateAltTextRequest struct {
	ImageID    string `json:"image_id"`
	EntityType string `json:"entity_type"`
	Save       bool   `json:"save"`
}

// AltTextResponse is a generated alt text
type AltTextResponse struct {
	AltText  string `json:"alt_text"`
	Fallback bool   `json:"fallback"`
	Saved    bool   `json:"saved"`
}

// CreatePaymentIntentRequest prices a booking and authorises the card
type CreatePaymentIntentRequest struct {
	ServiceID    string    `json:"service_id" validate:"required,uuid4"`
	ScheduledAt  time.Time `json:"scheduled_datetime" validate:"required"`
	PromoCode    *string   `json:"promo_code" validate:"omitempty,max=50"`
	GiftCardCode *string   `json:"gift_card_code" validate:"omitempty,max=50"`
}

// Validate for validating CreatePaymentIntentRequest struct
func (r *CreatePaymentIntentRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// AmountsResponse is the price breakdown of a booking
type AmountsResponse struct {
	Original       int64  `json:"original"`
	PromoDiscount  int64  `json:"promo_discount"`
	PromoID        string `json:"promo_id,omitempty"`
	GiftCardAmount int64  `json:"gift_card_amount"`
	GiftCardID     string `json:"gift_card_id,omitempty"`
	Final          int64  `json:"final"`
}

// PaymentIntentResponse is returned before the booking is confirmed
type PaymentIntentResponse struct {
	PaymentRequired bool            `json:"payment_required"`
	ClientSecret    string          `json:"client_secret,omitempty"`
	PaymentIntentID string          `json:"payment_intent_id,omitempty"`
	Amounts         AmountsResponse `json:"amounts"`
}

func newPaymentIntentResponse(r *payments.IntentResult) PaymentIntentResponse {
	return PaymentIntentResponse{
		PaymentRequired: r.PaymentRequired,
		ClientSecret:    r.ClientSecret,
		PaymentIntentID: r.PaymentIntentID,
		Amounts: AmountsResponse{
			Original:       r.Amounts.Original,
			PromoDiscount:  r.Amounts.PromoDiscount,
			PromoID:        r.Amounts.PromoID,
			GiftCardAmount: r.Amounts.GiftCardAmount,
			GiftCardID:     r.Amounts.GiftCardID,
			Final:          r.Amounts.Final,
		},
	}
}

// CreateBookingRequest books a service for the caller
type CreateBookingRequest struct {
	ServiceID       string    `json:"service_id"`
	AddressID       string    `json:"address_id"`
	ContractorID    *string   `json:"contractor_id"`
	ScheduledAt     time.Time `json:"scheduled_datetime"`
	BookingTimezone string    `json:"booking_timezone"`
	PaymentIntentID string    `json:"payment_intent_id"`
	PromoCode       *string   `json:"promo_code"`
	GiftCardCode    *string   `json:"gift_card_code"`
}

// CancelBookingRequest cancels a booking; an empty reason takes the default
type CancelBookingRequest struct {
	Reason string `json:"reason"`
}

// CapturePaymentRequest charges a booking; a nil amount captures the authorised total
type CapturePaymentRequest struct {
	Amount *int64 `json:"amount" validate:"omitempty,min=1"`
}

// Validate for validating CapturePaymentRequest struct
func (r *CapturePaymentRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// AddressResponse is the address snapshot of a booking
type AddressResponse struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// BookingResponse is a booking
type BookingResponse struct {
	ID                    string          `json:"id"`
	ClientID              string          `json:"client_id"`
	ContractorID          *string         `json:"contractor_id,omitempty"`
	ServiceID             string          `json:"service_id"`
	AddressID             string          `json:"address_id"`
	ScheduledAt           time.Time       `json:"scheduled_datetime"`
	BookingTimezone       string          `json:"booking_timezone"`
	DurationMinutes       int             `json:"duration_minutes"`
	Status                string          `json:"status"`
	PaymentStatus         string          `json:"payment_status"`
	PaymentIntentID       *string         `json:"stripe_payment_intent_id,omitempty"`
	ServiceAmountOriginal int64           `json:"service_amount_original"`
	PromoCodeID           *string         `json:"promo_code_id,omitempty"`
	PromoDiscountAmount   int64           `json:"promo_discount_amount"`
	GiftCardID            *string         `json:"gift_card_id,omitempty"`
	GiftCardAmount        int64           `json:"gift_card_amount"`
	FinalAmount           int64           `json:"service_amount"`
	Address               AddressResponse `json:"address"`
	CancellationReason    *string         `json:"cancellation_reason,omitempty"`
	CancelledAt           *time.Time      `json:"cancelled_at,omitempty"`
	CompletedAt           *time.Time      `json:"completed_at,omitempty"`
	CreatedAt             time.Time       `json:"created_at"`
	UpdatedAt             time.Time       `json:"updated_at"`
}

func newBookingResponse(b *bookings.Booking) BookingResponse {
	return BookingResponse{
		ID:                    b.ID,
		ClientID:              b.ClientID,
		ContractorID:          b.ContractorID,
		ServiceID:             b.ServiceID,
		AddressID:             b.AddressID,
		ScheduledAt:           b.ScheduledAt,
		BookingTimezone:       b.BookingTimezone,
		DurationMinutes:       b.DurationMinutes,
		Status:                string(b.Status),
		PaymentStatus:         string(b.PaymentStatus),
		PaymentIntentID:       b.PaymentIntentID,
		ServiceAmountOriginal: b.ServiceAmountOriginal,
		PromoCodeID:           b.PromoCodeID,
		PromoDiscountAmount:   b.PromoDiscountAmount,
		GiftCardID:            b.GiftCardID,
		GiftCardAmount:        b.GiftCardAmount,
		FinalAmount:           b.FinalAmount,
		Address: AddressResponse{
			Street:     b.Address.Street,
			City:       b.Address.City,
			PostalCode: b.Address.PostalCode,
			Country:    b.Address.Country,
		},
		CancellationReason: b.CancellationReason,
		CancelledAt:        b.CancelledAt,
		CompletedAt:        b.CompletedAt,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

// BookingPageResponse is one page of bookings
type BookingPageResponse struct {
	Data       []BookingResponse  `json:"data"`
	Pagination PaginationResponse `json:"pagination"`
}

// PaymentActionResponse is what happened to the payment of a cancelled booking
type PaymentActionResponse struct {
	Type   string `json:"type"`
	ID     string `json:"id"`
	Amount int64  `json:"amount"`
}

// CancelBookingResponse is a cancelled booking
type CancelBookingResponse struct {
	Booking       BookingResponse        `json:"booking"`
	PaymentAction *PaymentActionResponse `json:"payment_action,omitempty"`
}

// RefuseBookingRequest refuses a booking request
type RefuseBookingRequest struct {
	Reason  string  `json:"reason"`
	Message *string `json:"message" validate:"omitempty,max=1000"`
}

// Validate for validating RefuseBookingRequest struct
func (r *RefuseBookingRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// BookingRequestResponse is a contractor request with its booking
type BookingRequestResponse struct {
	ID                string          `json:"id"`
	Status            string          `json:"status"`
	RefusalReason     *string         `json:"refusal_reason,omitempty"`
	ContractorMessage *string         `json:"contractor_message,omitempty"`
	ExpiresAt         time.Time       `json:"expires_at"`
	RespondedAt       *time.Time      `json:"responded_at,omitempty"`
	Booking           BookingResponse `json:"booking"`
}

func newBookingRequestResponse(r *bookings.RequestWithBooking) BookingRequestResponse {
	return BookingRequestResponse{
		ID:                r.Request.ID,
		Status:            string(r.Request.Status),
		RefusalReason:     r.Request.RefusalReason,
		ContractorMessage: r.Request.ContractorMessage,
		ExpiresAt:         r.Request.ExpiresAt,
		RespondedAt:       r.Request.RespondedAt,
		Booking:           newBookingResponse(r.Booking),
	}
}

// ExpireRequestsResponse reports how many requests were expired
type ExpireRequestsResponse struct {
	ExpiredCount int `json:"expired_count"`
}

// SaveAddressRequest creates or replaces a client address
type SaveAddressRequest struct {
	Label      *string  `json:"label"`
	Street     string   `json:"street"`
	City       string   `json:"city"`
	PostalCode string   `json:"postal_code"`
	Country    string   `json:"country"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
	IsDefault  bool     `json:"is_default"`
}

func (r *SaveAddressRequest) toInput() *catalog.AddressInput {
	return &catalog.AddressInput{
		Label:      r.Label,
		Street:     r.Street,
		City:       r.City,
		PostalCode: r.PostalCode,
		Country:    r.Country,
		Latitude:   r.Latitude,
		Longitude:  r.Longitude,
		IsDefault:  r.IsDefault,
	}
}

// ClientAddressResponse is a saved address of the caller. Currency is the
// usual one of the address country, empty when unknown.
type ClientAddressResponse struct {
	ID          string    `json:"id"`
	Label       *string   `json:"label,omitempty"`
	Street      string    `json:"street"`
	City        string    `json:"city"`
	PostalCode  string    `json:"postal_code"`
	Country     string    `json:"country"`
	CountryCode string    `json:"country_code,omitempty"`
	Currency    string    `json:"currency,omitempty"`
	MarketID    *string   `json:"market_id,omitempty"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	IsDefault   bool      `json:"is_default"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newClientAddressResponse(a *catalog.Address) ClientAddressResponse {
	return ClientAddressResponse{
		ID:          a.ID,
		Label:       a.Label,
		Street:      a.Street,
		City:        a.City,
		PostalCode:  a.PostalCode,
		Country:     a.Country,
		CountryCode: a.CountryCode,
		Currency:    markets.DefaultCurrencyForCountry(a.CountryCode),
		MarketID:    a.MarketID,
		Latitude:    a.Latitude,
		Longitude:   a.Longitude,
		IsDefault:   a.IsDefault,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// SaveProfileRequest creates or updates the caller's profile
type SaveProfileRequest struct {
	FirstName        string  `json:"first_name"`
	LastName         string  `json:"last_name"`
	Phone            *string `json:"phone"`
	SMSNotifications bool    `json:"sms_notifications_enabled"`
}

// ProfileResponse is the profile of the caller
type ProfileResponse struct {
	ID               string    `json:"id"`
	Email            string    `json:"email"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	Phone            *string   `json:"phone,omitempty"`
	SMSNotifications bool      `json:"sms_notifications_enabled"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func newProfileResponse(p *catalog.ClientProfile) ProfileResponse {
	return ProfileResponse{
		ID:               p.ID,
		Email:            p.Email,
		FirstName:        p.FirstName,
		LastName:         p.LastName,
		Phone:            p.Phone,
		SMSNotifications: p.SMSNotifications,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}
