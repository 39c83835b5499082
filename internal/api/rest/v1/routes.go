package v1

import (
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/bookings"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/catalog"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/giftcards"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/images"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/markets"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/payments"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/promos"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/translations"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/auth"

	"github.com/gin-gonic/gin"
)

// Services holds the application services the routes dispatch to
type Services struct {
	PromoValidation promos.PromoValidationService
	PromoAdmin      promos.PromoAdminService
	GiftCards       giftcards.GiftCardService
	Contractors     catalog.ContractorService
	Markets         markets.MarketService
	Translations    translations.TranslationService
	Images          images.ImageService
	PaymentIntents  payments.PaymentIntentService
	Bookings        bookings.BookingService
	Requests        bookings.BookingRequestService
	Addresses       catalog.AddressService
	Profiles        catalog.ProfileService
}

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine, services *Services, tokens TokenParser) {
	v1 := r.Group(BasePath)
	v1.Use(TracingMiddleware())

	promoHandler := NewPromoHandler(services.PromoValidation, services.PromoAdmin)
	checkoutHandler := NewCheckoutHandler(services.GiftCards, services.PaymentIntents)
	contractorHandler := NewContractorHandler(services.Contractors)
	marketHandler := NewMarketHandler(services.Markets)
	translationHandler := NewTranslationHandler(services.Translations)
	imageHandler := NewImageHandler(services.Images)
	bookingHandler := NewBookingHandler(services.Bookings, services.Contractors)
	requestHandler := NewBookingRequestHandler(services.Requests, services.Contractors)
	clientHandler := NewClientHandler(services.Addresses, services.Profiles)

	// Public routes
	v1.GET("/images", imageHandler.List)
	v1.GET("/images/serve/*path", imageHandler.Serve)
	v1.GET("/contractors/available", contractorHandler.Available)

	secured := v1.Group("")
	secured.Use(JWTAuth(tokens))

	// Checkout and bookings
	secured.POST("/bookings/validate-promo", promoHandler.Validate)
	secured.POST("/bookings/validate-gift-card", checkoutHandler.ValidateGiftCard)
	secured.POST("/bookings/create-payment-intent", checkoutHandler.CreatePaymentIntent)
	secured.POST("/bookings", bookingHandler.Create)
	secured.GET("/bookings", bookingHandler.List)
	secured.GET("/bookings/:id", bookingHandler.GetByID)
	secured.POST("/bookings/:id/cancel", bookingHandler.Cancel)
	secured.POST("/bookings/:id/capture-payment", bookingHandler.CapturePayment)
	secured.POST("/bookings/:id/complete", bookingHandler.Complete)

	// Own addresses and profile
	secured.GET("/client/addresses", clientHandler.ListAddresses)
	secured.POST("/client/addresses", clientHandler.CreateAddress)
	secured.PUT("/client/addresses/:id", clientHandler.UpdateAddress)
	secured.DELETE("/client/addresses/:id", clientHandler.DeleteAddress)
	secured.GET("/client/profile", clientHandler.GetProfile)
	secured.PUT("/client/profile", clientHandler.SaveProfile)

	// Contractor routes
	contractor := secured.Group("/contractor")
	contractor.Use(RequireRole(auth.RoleContractor, auth.RoleAdmin))
	contractor.GET("/booking-requests", requestHandler.ListForContractor)
	contractor.POST("/booking-requests/:id/accept", requestHandler.Accept)
	contractor.POST("/booking-requests/:id/refuse", requestHandler.Refuse)

	// Staff routes
	staff := secured.Group("/admin")
	staff.Use(RequireRole(auth.RoleAdmin, auth.RoleManager))

	staff.GET("/promo-codes", promoHandler.List)
	staff.POST("/promo-codes", promoHandler.Create)
	staff.GET("/promo-codes/analytics", promoHandler.Analytics)
	staff.GET("/promo-codes/:id", promoHandler.GetByID)
	staff.PUT("/promo-codes/:id", promoHandler.Update)
	staff.DELETE("/promo-codes/:id", promoHandler.DeleteByID)
	staff.PATCH("/promo-codes/:id/active", promoHandler.SetActive)
	staff.GET("/promo-codes/:id/usage", promoHandler.ListUsage)

	staff.POST("/bookings/:id/assign", bookingHandler.AssignContractor)
	staff.POST("/bookings/:id/confirm", bookingHandler.Confirm)
	staff.POST("/booking-requests/expire", requestHandler.ExpirePending)

	staff.GET("/markets", marketHandler.List)
	staff.GET("/markets/:id", marketHandler.GetByID)
	staff.GET("/markets/:id/stats", marketHandler.Stats)

	staff.POST("/translations", translationHandler.Upsert)
	staff.GET("/translations", translationHandler.ListByEntity)
	staff.DELETE("/translations/:id", translationHandler.DeleteByID)
	staff.POST("/translations/translate", translationHandler.Translate)

	staff.POST("/images/upload", imageHandler.Upload)
	staff.PUT("/images/reorder", imageHandler.Reorder)
	staff.DELETE("/images/:id", imageHandler.DeleteByID)
	staff.POST("/images/generate-alt-text", imageHandler.GenerateAltText)

	// Admin only
	admin := secured.Group("/admin/markets")
	admin.Use(RequireRole(auth.RoleAdmin))
	admin.POST("", marketHandler.Create)
	admin.PUT("/:id", marketHandler.Update)
	admin.DELETE("/:id", marketHandler.DeleteByID)
}
