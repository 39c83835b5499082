package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// StripeSettings configures the payment gateway
type StripeSettings struct {
	SecretKey string `yaml:"secret_key" envconfig:"SECRET_KEY" validate:"required"`
	Currency  string `yaml:"currency" envconfig:"CURRENCY" validate:"required,len=3"`
}

// MessagingSettings configures the AMQP broker used for booking events.
// An empty URL disables publishing and the notification consumer.
type MessagingSettings struct {
	URL      string `yaml:"url" envconfig:"URL" validate:"omitempty,url"`
	Exchange string `yaml:"exchange" envconfig:"EXCHANGE" validate:"required_with=URL"`
	Queue    string `yaml:"queue" envconfig:"QUEUE" validate:"required_with=URL"`
	Prefetch int    `yaml:"prefetch" envconfig:"PREFETCH" validate:"min=0,max=256"`
}

// Enabled reports whether a broker is configured
func (s *MessagingSettings) Enabled() bool {
	return s.URL != ""
}

// AuthSettings configures access token signing
type AuthSettings struct {
	JWTSecret string        `yaml:"jwt_secret" envconfig:"JWT_SECRET" validate:"required,min=16"`
	TokenTTL  time.Duration `yaml:"token_ttl" envconfig:"TOKEN_TTL" validate:"required"`
}

// TranslationSettings configures Google Cloud Translation.
// Without an API key translations fall back to mock values.
type TranslationSettings struct {
	APIKey string `yaml:"api_key" envconfig:"API_KEY"`
}

// AISettings configures the Gemini model used for image alt text.
// Without an API key alt text falls back to the entity name.
type AISettings struct {
	APIKey string `yaml:"api_key" envconfig:"API_KEY"`
	Model  string `yaml:"model" envconfig:"MODEL" validate:"required_with=APIKey"`
}

// TracingSettings configures OpenTelemetry export
type TracingSettings struct {
	Enabled     bool   `yaml:"enabled" envconfig:"ENABLED"`
	Endpoint    string `yaml:"endpoint" envconfig:"ENDPOINT" validate:"required_if=Enabled true"`
	ServiceName string `yaml:"service_name" envconfig:"SERVICE_NAME" validate:"required"`
	Environment string `yaml:"environment" envconfig:"ENVIRONMENT"`
}

// PromoSettings bounds how often a single user may try promo codes
type PromoSettings struct {
	ValidationsPerMinute int `yaml:"validations_per_minute" envconfig:"VALIDATIONS_PER_MINUTE" validate:"min=1,max=600"`
}

// BookingSettings holds booking workflow timings
type BookingSettings struct {
	RequestExpirySweep time.Duration `yaml:"request_expiry_sweep" envconfig:"REQUEST_EXPIRY_SWEEP" validate:"required"`
	RequestLeadTime    time.Duration `yaml:"request_lead_time" envconfig:"REQUEST_LEAD_TIME" validate:"required"`
}

func validateSection(name string, s interface{}) error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for %s: %w", name, err)
	}
	return nil
}

// Validate checks that all fields in StripeSettings are valid
func (s *StripeSettings) Validate() error { return validateSection("StripeSettings", s) }

// Validate checks that all fields in MessagingSettings are valid
func (s *MessagingSettings) Validate() error { return validateSection("MessagingSettings", s) }

// Validate checks that all fields in AuthSettings are valid
func (s *AuthSettings) Validate() error { return validateSection("AuthSettings", s) }

// Validate checks that all fields in AISettings are valid
func (s *AISettings) Validate() error { return validateSection("AISettings", s) }

// Validate checks that all fields in TracingSettings are valid
func (s *TracingSettings) Validate() error { return validateSection("TracingSettings", s) }

// Validate checks that all fields in PromoSettings are valid
func (s *PromoSettings) Validate() error { return validateSection("PromoSettings", s) }

// Validate checks that all fields in BookingSettings are valid
func (s *BookingSettings) Validate() error { return validateSection("BookingSettings", s) }
