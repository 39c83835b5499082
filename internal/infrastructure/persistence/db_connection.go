package persistence

import (
	"fmt"
	"strings"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const sqliteMemoryDSN = ":memory:"

// NewDBConnection opens the store named by settings and applies its pool limits
func NewDBConnection(settings config.DatabaseSettings) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	switch settings.Type {
	case config.PostgresDbType:
		db, err = connectPostgres(settings)
	case config.SqliteDbType:
		db, err = connectSQLite(settings)
	default:
		return nil, fmt.Errorf("unsupported database type: %s", settings.Type)
	}
	if err != nil {
		return nil, err
	}

	if err := applyPool(db, settings); err != nil {
		_ = CloseDB(db)
		return nil, err
	}
	return db, nil
}

// gormConfig translates driver errors so unique violations surface as gorm.ErrDuplicatedKey
func gormConfig() *gorm.Config {
	return &gorm.Config{TranslateError: true}
}

// connectPostgres opens settings.DSN. With a Name, the database is created when
// missing and the connection is reopened on it.
func connectPostgres(settings config.DatabaseSettings) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(settings.DSN), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	if settings.Name == "" {
		return db, nil
	}

	var exists bool
	if err := db.Raw("SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = ?)", settings.Name).Scan(&exists).Error; err != nil {
		_ = CloseDB(db)
		return nil, fmt.Errorf("failed to look up database %q: %w", settings.Name, err)
	}
	if !exists {
		if err := db.Exec("CREATE DATABASE " + quoteIdent(settings.Name)).Error; err != nil {
			_ = CloseDB(db)
			return nil, fmt.Errorf("failed to create database %q: %w", settings.Name, err)
		}
	}
	if err := CloseDB(db); err != nil {
		return nil, err
	}

	// a later dbname key wins in libpq keyword/value DSNs
	dsn := fmt.Sprintf("%s dbname=%s", settings.DSN, settings.Name)
	db, err = gorm.Open(postgres.Open(dsn), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database %q: %w", settings.Name, err)
	}
	return db, nil
}

// connectSQLite opens settings.DSN, or a private in-memory database when empty
func connectSQLite(settings config.DatabaseSettings) (*gorm.DB, error) {
	dsn := settings.DSN
	if dsn == "" {
		dsn = sqliteMemoryDSN
	}

	db, err := gorm.Open(sqlite.Open(dsn), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite: %w", err)
	}
	return db, nil
}

func applyPool(db *gorm.DB, settings config.DatabaseSettings) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	// every connection to :memory: sees its own empty database
	if settings.Type == config.SqliteDbType && (settings.DSN == "" || settings.DSN == sqliteMemoryDSN) {
		sqlDB.SetMaxOpenConns(1)
		return nil
	}

	if settings.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(settings.MaxOpenConns)
	}
	if settings.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(settings.MaxIdleConns)
	}
	if settings.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(settings.ConnMaxLifetime)
	}
	return nil
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// CloseDB closes the database connection
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}

// DropDatabase removes a PostgreSQL database; used to clean up integration tests
func DropDatabase(adminDSN, dbName string) error {
	db, err := gorm.Open(postgres.Open(adminDSN), gormConfig())
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer func() { _ = CloseDB(db) }()

	if err := db.Exec("DROP DATABASE IF EXISTS " + quoteIdent(dbName) + " WITH (FORCE)").Error; err != nil {
		return fmt.Errorf("failed to drop database %q: %w", dbName, err)
	}
	return nil
}
