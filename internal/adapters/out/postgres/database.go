package postgres

import (
	"fmt"

	"procurement/internal/adapters/out/postgres/costestimaterepo"
	"procurement/internal/adapters/out/postgres/purchaseorderrepo"
	"procurement/internal/adapters/out/postgres/userrepo"

	"gorm.io/driver/mysql"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Supported values of DatabaseConfig.Driver.
const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// DatabaseConfig describes how to reach the relational store.
type DatabaseConfig struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN renders the connection string for the configured driver.
func (c DatabaseConfig) DSN() (string, error) {
	switch c.Driver {
	case DriverPostgres, "":
		return fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
		), nil
	case DriverMySQL:
		// clientFoundRows makes RowsAffected count matched rows, as Postgres does.
		return fmt.Sprintf(
			"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC&clientFoundRows=true",
			c.User, c.Password, c.Host, c.Port, c.Name,
		), nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", c.Driver)
	}
}

// NewGormConfig returns the settings every connection must use. TranslateError is
// required: repositories detect unique violations through gorm.ErrDuplicatedKey.
func NewGormConfig() *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	}
}

// Open connects to the configured database.
func Open(cfg DatabaseConfig) (*gorm.DB, error) {
	dsn, err := cfg.DSN()
	if err != nil {
		return nil, err
	}

	var dialector gorm.Dialector
	if cfg.Driver == DriverMySQL {
		dialector = mysql.Open(dsn)
	} else {
		dialector = gorm_postgres.Open(dsn)
	}

	db, err := gorm.Open(dialector, NewGormConfig())
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", cfg.Driver, err)
	}
	return db, nil
}

// Migrate creates or updates the schema. Parents are migrated before children so the
// ON DELETE CASCADE foreign keys can be created.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userrepo.UserDTO{},
		&purchaseorderrepo.PurchaseOrderDTO{},
		&costestimaterepo.CostEstimateDTO{},
		&costestimaterepo.CostEstimateItemDTO{},
	)
}
