package models

import (
	"fmt"
	"strings"

	"patrimonio-go/internal/config"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB global database instance
var DB *gorm.DB

// InitDB opens the configured database, migrates it when enabled and stores it in DB
func InitDB(cfg *config.Config) error {
	db, err := Open(cfg.Database, cfg.Server.ProductionMode)
	if err != nil {
		return err
	}

	if cfg.Database.AutoMigrate {
		if err := AutoMigrate(db); err != nil {
			return fmt.Errorf("auto migrate: %w", err)
		}
	}

	DB = db
	return nil
}

// Open opens a gorm connection for the configured driver
func Open(cfg config.DatabaseConfig, production bool) (*gorm.DB, error) {
	logLevel := logger.Warn
	if production {
		logLevel = logger.Silent
	}

	gormCfg := &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	}

	var dialector gorm.Dialector
	switch cfg.Driver {
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.DSN)
	case config.DriverSQLite, "":
		dialector = sqlite.Open(sqliteDSN(cfg.Path))
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if cfg.Driver != config.DriverPostgres && cfg.Path == ":memory:" {
		// every pooled connection would otherwise get its own empty database
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}

// sqliteDSN enables foreign keys so ON DELETE CASCADE is honoured
func sqliteDSN(path string) string {
	if strings.Contains(path, "?") {
		return path + "&_foreign_keys=on"
	}
	return path + "?_foreign_keys=on"
}

// AutoMigrate creates or updates the schema
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Profile{},
		&Category{},
		&FieldDefinition{},
		&Asset{},
		&AssetFieldValue{},
	)
}

// GetDB returns the global database instance
func GetDB() *gorm.DB {
	return DB
}
