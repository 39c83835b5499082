//go:build unit
// +build unit

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
port: "9090"
logger:
  log_level: debug
  log_type: console
database:
  type: sqlite
  dsn: ":memory:"
blob_connector:
  cloud_provider: azure
  connection_string: "UseDevelopmentStorage=true"
  container_name: images
stripe:
  secret_key: sk_test_yaml
  currency: eur
auth:
  jwt_secret: "0123456789abcdef0123"
  token_ttl: 30m
booking:
  request_expiry_sweep: 5m
  request_lead_time: 24h
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "rest-app.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestInitializeRestConfig_FromYAML(t *testing.T) {
	cfg, err := InitializeRestConfig(writeConfig(t, testConfigYAML))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, LogLevelDebug, cfg.Logger.LogLevel)
	assert.Equal(t, 30*time.Minute, cfg.Auth.TokenTTL)
	assert.Equal(t, 5*time.Minute, cfg.Booking.RequestExpirySweep)
	// untouched sections keep their defaults
	assert.Equal(t, 5, cfg.Promo.ValidationsPerMinute)
	assert.Equal(t, "booking.exchange", cfg.Messaging.Exchange)
	assert.False(t, cfg.Messaging.Enabled())
}

func TestInitializeRestConfig_EnvOverridesFile(t *testing.T) {
	t.Setenv("SIMONE_PORT", "7070")
	t.Setenv("SIMONE_STRIPE_SECRET_KEY", "sk_test_env")
	t.Setenv("SIMONE_PROMO_VALIDATIONS_PER_MINUTE", "10")

	cfg, err := InitializeRestConfig(writeConfig(t, testConfigYAML))
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Port)
	assert.Equal(t, "sk_test_env", cfg.Stripe.SecretKey)
	assert.Equal(t, 10, cfg.Promo.ValidationsPerMinute)
}

func TestInitializeRestConfig_MissingFileUsesEnvironment(t *testing.T) {
	t.Setenv("SIMONE_BLOB_CLOUD_PROVIDER", AzureCloudProvider)
	t.Setenv("SIMONE_BLOB_CONNECTION_STRING", "UseDevelopmentStorage=true")
	t.Setenv("SIMONE_BLOB_CONTAINER_NAME", "images")
	t.Setenv("SIMONE_STRIPE_SECRET_KEY", "sk_test_env")
	t.Setenv("SIMONE_AUTH_JWT_SECRET", "0123456789abcdef0123")

	cfg, err := InitializeRestConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, SqliteDbType, cfg.Database.Type)
}

func TestInitializeRestConfig_InvalidSection(t *testing.T) {
	_, err := InitializeRestConfig(writeConfig(t, testConfigYAML+"\npromo:\n  validations_per_minute: 0\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PromoSettings")
}

func TestLoad_MalformedYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "port: [unterminated"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}
