package commands

import (
	"fmt"
	"os"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/infrastructure/persistence"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/config"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/logger"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// ConfigFlag is the persistent root flag naming the YAML configuration file
const ConfigFlag = "config"

// DefaultConfigPath returns CONFIG_PATH, or the repository default when unset
func DefaultConfigPath() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return "configs/rest-app.yaml"
}

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// loadConfig reads the configuration named by the --config flag. Sections are
// not validated as a whole: each command only needs a few of them.
func loadConfig(cmd *cobra.Command) (*config.RestConfig, error) {
	path, err := cmd.Flags().GetString(ConfigFlag)
	if err != nil {
		return nil, fmt.Errorf("invalid %s flag: %w", ConfigFlag, err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Database.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// withDatabase loads the configuration, opens the database and hands both to fn
func withDatabase(cmd *cobra.Command, fn func(cfg *config.RestConfig, db *gorm.DB) error) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to create db connection: %w", err)
	}
	defer func() { _ = persistence.CloseDB(db) }()

	return fn(cfg, db)
}
