package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of every environment override, e.g. SIMONE_DATABASE_DSN
const EnvPrefix = "SIMONE"

// RestConfig aggregates every setting the REST API needs
type RestConfig struct {
	Port          string                `yaml:"port" envconfig:"PORT"`
	Logger        LoggerSettings        `yaml:"logger" envconfig:"LOGGER"`
	Database      DatabaseSettings      `yaml:"database" envconfig:"DATABASE"`
	BlobConnector BlobConnectorSettings `yaml:"blob_connector" envconfig:"BLOB"`
	Stripe        StripeSettings        `yaml:"stripe" envconfig:"STRIPE"`
	Messaging     MessagingSettings     `yaml:"messaging" envconfig:"MESSAGING"`
	Auth          AuthSettings          `yaml:"auth" envconfig:"AUTH"`
	Translation   TranslationSettings   `yaml:"translation" envconfig:"TRANSLATION"`
	AI            AISettings            `yaml:"ai" envconfig:"AI"`
	Tracing       TracingSettings       `yaml:"tracing" envconfig:"TRACING"`
	Promo         PromoSettings         `yaml:"promo" envconfig:"PROMO"`
	Booking       BookingSettings       `yaml:"booking" envconfig:"BOOKING"`
}

// NewDefaultRestConfig returns the settings used when neither file nor environment set a value
func NewDefaultRestConfig() *RestConfig {
	return &RestConfig{
		Port: "8080",
		Logger: LoggerSettings{
			LogLevel: LogLevelInfo,
			LogType:  LogTypeConsole,
		},
		Database: DatabaseSettings{
			Type: SqliteDbType,
			DSN:  "simone.db",
		},
		Stripe: StripeSettings{
			Currency: "eur",
		},
		Messaging: MessagingSettings{
			Exchange: "booking.exchange",
			Queue:    "booking.notifications",
			Prefetch: 8,
		},
		Auth: AuthSettings{
			TokenTTL: time.Hour,
		},
		AI: AISettings{
			Model: "gemini-2.0-flash",
		},
		Tracing: TracingSettings{
			ServiceName: "simone-rest-api",
			Environment: "dev",
		},
		Promo: PromoSettings{
			ValidationsPerMinute: 5,
		},
		Booking: BookingSettings{
			RequestExpirySweep: 15 * time.Minute,
			RequestLeadTime:    24 * time.Hour,
		},
	}
}

// Load reads the configuration without validating it.
// The YAML file and the .env file are both optional.
func Load(path string) (*RestConfig, error) {
	cfg := NewDefaultRestConfig()

	if path != "" {
		content, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(content, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		case errors.Is(err, fs.ErrNotExist):
		default:
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	return cfg, nil
}

// InitializeRestConfig loads and validates the REST API configuration
func InitializeRestConfig(path string) (*RestConfig, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every section of the configuration
func (c *RestConfig) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port is required")
	}

	sections := []interface{ Validate() error }{
		&c.Logger,
		&c.Database,
		&c.BlobConnector,
		&c.Stripe,
		&c.Messaging,
		&c.Auth,
		&c.AI,
		&c.Tracing,
		&c.Promo,
		&c.Booking,
	}
	for _, section := range sections {
		if err := section.Validate(); err != nil {
			return err
		}
	}
	return nil
}
