// Package models contains GORM database models for infrastructure layer.
// These models handle database persistence and are separated from domain entities
// so that storage concerns (column types, indexes, serialisation) stay out of the domain.
package models

// All returns every model in migration order
func All() []interface{} {
	return []interface{}{
		&MarketModel{},
		&ServiceModel{},
		&ServiceMarketAvailabilityModel{},
		&ProfileModel{},
		&AddressModel{},
		&ContractorModel{},
		&ContractorServiceModel{},
		&PromoCodeModel{},
		&PromoCodeUsageModel{},
		&GiftCardModel{},
		&GiftCardTransactionModel{},
		&BookingModel{},
		&BookingRequestModel{},
		&TranslationModel{},
		&ServiceImageModel{},
	}
}
