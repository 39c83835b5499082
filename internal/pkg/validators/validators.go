// Package validators holds the custom validation tags shared by domain entities.
package validators

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// ErrValidation is wrapped by every error ValidateStruct returns
var ErrValidation = errors.New("validation failed")

var (
	promoCodePattern  = regexp.MustCompile(`^[A-Z0-9_-]{3,50}$`)
	marketCodePattern = regexp.MustCompile(`^[A-Z]{2,3}$`)
	clockTimePattern  = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
)

// SupportedLanguages lists the content languages of the platform
var SupportedLanguages = []string{"fr", "en", "de", "nl", "it", "es"}

// PromoCodeValidation accepts upper-case codes of 3 to 50 letters, digits, '_' or '-'.
func PromoCodeValidation(fl validator.FieldLevel) bool {
	return promoCodePattern.MatchString(fl.Field().String())
}

// MarketCodeValidation accepts two or three upper-case letters.
func MarketCodeValidation(fl validator.FieldLevel) bool {
	return marketCodePattern.MatchString(fl.Field().String())
}

// LanguageValidation accepts one of SupportedLanguages.
func LanguageValidation(fl validator.FieldLevel) bool {
	return IsSupportedLanguage(fl.Field().String())
}

// ClockTimeValidation accepts HH:mm.
func ClockTimeValidation(fl validator.FieldLevel) bool {
	return clockTimePattern.MatchString(fl.Field().String())
}

// IsSupportedLanguage reports whether lang is one of SupportedLanguages
func IsSupportedLanguage(lang string) bool {
	for _, l := range SupportedLanguages {
		if l == lang {
			return true
		}
	}
	return false
}

// New returns a validator with the custom tags promocode, marketcode, lang and clocktime registered.
func New() *validator.Validate {
	validate := validator.New()
	_ = validate.RegisterValidation("promocode", PromoCodeValidation)
	_ = validate.RegisterValidation("marketcode", MarketCodeValidation)
	_ = validate.RegisterValidation("lang", LanguageValidation)
	_ = validate.RegisterValidation("clocktime", ClockTimeValidation)
	return validate
}

var shared = New()

// ValidateStruct validates s and flattens field errors into one message.
func ValidateStruct(s interface{}) error {
	err := shared.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var messages []string
		for _, fieldErr := range validationErrors {
			messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
		}
		return fmt.Errorf("%w: %v", ErrValidation, messages)
	}
	return fmt.Errorf("%w: %v", ErrValidation, err)
}
