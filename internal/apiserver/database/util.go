package database

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/gbsalud/gbs-inventario/internal/auth/password"
	"github.com/gbsalud/gbs-inventario/internal/common/config"
	"github.com/gbsalud/gbs-inventario/internal/inventory"
)

// EnsureSuperAdmin creates the bootstrap superuser from configuration if it
// does not exist yet. Superusers carry no clinic and see every tenant.
func EnsureSuperAdmin(ctx context.Context, db Database, cfg *config.SuperAdminConfig) error {
	if cfg == nil || cfg.Email == "" || cfg.Password == "" {
		return nil
	}

	_, err := db.GetUsuarioByEmail(ctx, cfg.Email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := password.Hash(cfg.Password)
	if err != nil {
		return err
	}

	nombre := cfg.Nombre
	if nombre == "" {
		nombre = "Administrador"
	}

	return db.CreateUsuario(ctx, &Usuario{
		Email:          strings.ToLower(strings.TrimSpace(cfg.Email)),
		NombreCompleto: nombre,
		Password:       hashed,
		Rol:            inventory.RolMaster,
		IsActive:       true,
		IsStaff:        true,
		IsSuperuser:    true,
	})
}
