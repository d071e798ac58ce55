package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/gbsalud/gbs-inventario/internal/common/config"
)

// NewDatabase creates a new database based on configuration.
func NewDatabase(cfg *config.DatabaseConfig) (Database, error) {
	switch cfg.Type {
	case "postgres":
		return Open(postgres.Open(cfg.GetDSN()))
	case "mysql":
		return Open(mysql.Open(cfg.GetDSN()))
	case "sqlite":
		if dir := filepath.Dir(cfg.DBName); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
		return Open(sqlite.Open(cfg.GetDSN()))
	default:
		return nil, fmt.Errorf("unsupported database type: %s", cfg.Type)
	}
}

// Open opens a connection through the given dialector and migrates the
// schema.
func Open(dialector gorm.Dialector) (Database, error) {
	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.AutoMigrate(
		&Clinica{},
		&Usuario{},
		&EquipoBiomedico{},
		&ParametroEntregado{},
		&DocumentoAdjunto{},
		&HistorialCambios{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &gormDB{db: db}, nil
}
