package database

import (
	"context"
)

// Scope identifies the requesting identity for tenant-scoped queries.
// Non-superusers are hard-limited to their own clinic.
type Scope struct {
	IsSuperuser bool
	ClinicaID   uint
}

// EquipoFilter carries the optional query filters for equipment listings.
// Multi-value fields use membership semantics; distinct fields combine with
// AND, the free-text search with OR across its candidate columns.
type EquipoFilter struct {
	ClinicaID *uint // superuser-only explicit clinic filter

	Search string

	NombreEquipo        []string
	Modelo              []string
	Marca               []string
	AreaServicio        []string
	ClasificacionUso    []string
	ClasificacionRiesgo []string
	Ubicacion           []string

	RequiereCalibracion *bool
}

// Database defines the persistence operations of the inventory service.
type Database interface {
	// Close closes the database connection.
	Close() error

	// Transaction runs fn inside a transaction. Any error rolls back every
	// operation performed through the returned context.
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error

	// CreateUsuario persists a new user.
	CreateUsuario(ctx context.Context, u *Usuario) error

	// GetUsuarioByEmail fetches a user by login email, with clinic preloaded.
	GetUsuarioByEmail(ctx context.Context, email string) (*Usuario, error)

	// GetUsuarioByID fetches a user by id, with clinic preloaded.
	GetUsuarioByID(ctx context.Context, id uint) (*Usuario, error)

	// CreateClinica persists a new clinic.
	CreateClinica(ctx context.Context, c *Clinica) error

	// GetClinicaByID fetches a clinic by id.
	GetClinicaByID(ctx context.Context, id uint) (*Clinica, error)

	// ListClinicas lists all clinics ordered by name.
	ListClinicas(ctx context.Context) ([]*Clinica, error)

	// FirstClinica returns the oldest clinic, used as the fallback owner
	// when a superuser creates equipment without an explicit target.
	FirstClinica(ctx context.Context) (*Clinica, error)

	// CreateEquipo persists a new equipment record, assigning its hoja de
	// vida identifier and completeness flag.
	CreateEquipo(ctx context.Context, e *EquipoBiomedico) error

	// SaveEquipo persists changes to an existing equipment record,
	// recomputing its completeness flag.
	SaveEquipo(ctx context.Context, e *EquipoBiomedico) error

	// GetEquipoByID fetches an equipment record with all sub-entities.
	GetEquipoByID(ctx context.Context, id uint) (*EquipoBiomedico, error)

	// ListEquipos returns the equipment visible to the given scope, with
	// sub-entities preloaded, ordered by most recently modified first.
	ListEquipos(ctx context.Context, scope Scope, filter EquipoFilter) ([]*EquipoBiomedico, error)

	// SerieExists reports whether any equipment with the given serial
	// number exists, across all clinics.
	SerieExists(ctx context.Context, serie string) (bool, error)

	// FindDuplicado looks for an equipment with the same name, brand and
	// model (case-insensitive) within a clinic. Returns (nil, nil) when no
	// match exists.
	FindDuplicado(ctx context.Context, clinicaID uint, nombre, marca, modelo string) (*EquipoBiomedico, error)

	// ReplaceParametros removes all delivered parameters of an equipment
	// and inserts the given set.
	ReplaceParametros(ctx context.Context, equipoID uint, parametros []ParametroEntregado) error

	// AddDocumento attaches a document to an equipment record.
	AddDocumento(ctx context.Context, d *DocumentoAdjunto) error

	// GetDocumento fetches a document belonging to a specific equipment.
	GetDocumento(ctx context.Context, equipoID, documentoID uint) (*DocumentoAdjunto, error)

	// DeleteDocumento removes a document belonging to a specific equipment.
	DeleteDocumento(ctx context.Context, equipoID, documentoID uint) error

	// AppendHistorial appends a change-history entry.
	AppendHistorial(ctx context.Context, h *HistorialCambios) error
}
