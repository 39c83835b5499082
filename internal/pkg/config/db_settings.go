package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Database type constants
const (
	PostgresDbType = "postgres"
	SqliteDbType   = "sqlite"
)

// DatabaseSettings holds the connection settings of the relational store.
// Name is optional for postgres; when set the database is created on first connect.
// Zero pool values keep the database/sql defaults.
type DatabaseSettings struct {
	Type            string        `yaml:"type" envconfig:"TYPE" validate:"required,oneof=postgres sqlite"`
	DSN             string        `yaml:"dsn" envconfig:"DSN" validate:"required_if=Type postgres"`
	Name            string        `yaml:"name" envconfig:"NAME"`
	MaxOpenConns    int           `yaml:"max_open_conns" envconfig:"MAX_OPEN_CONNS" validate:"min=0"`
	MaxIdleConns    int           `yaml:"max_idle_conns" envconfig:"MAX_IDLE_CONNS" validate:"min=0"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" envconfig:"CONN_MAX_LIFETIME" validate:"min=0"`
}

// Validate checks that all fields in DatabaseSettings are valid
func (s *DatabaseSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for DatabaseSettings: %w", err)
	}
	return nil
}
