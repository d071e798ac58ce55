package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// gormDB implements the Database interface on top of GORM. All methods honor
// a transaction placed in the context by Transaction.
type gormDB struct {
	db *gorm.DB
}

// Close closes the database connection.
func (d *gormDB) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Transaction runs fn inside a transaction carried through the context.
func (d *gormDB) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(contextWithTx(ctx, tx))
	})
}

func (d *gormDB) CreateUsuario(ctx context.Context, u *Usuario) error {
	return getDBFromContext(ctx, d.db).Create(u).Error
}

func (d *gormDB) GetUsuarioByEmail(ctx context.Context, email string) (*Usuario, error) {
	var u Usuario
	err := getDBFromContext(ctx, d.db).
		Preload("Clinica").
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (d *gormDB) GetUsuarioByID(ctx context.Context, id uint) (*Usuario, error) {
	var u Usuario
	err := getDBFromContext(ctx, d.db).
		Preload("Clinica").
		First(&u, id).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (d *gormDB) CreateClinica(ctx context.Context, c *Clinica) error {
	return getDBFromContext(ctx, d.db).Create(c).Error
}

func (d *gormDB) GetClinicaByID(ctx context.Context, id uint) (*Clinica, error) {
	var c Clinica
	if err := getDBFromContext(ctx, d.db).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (d *gormDB) ListClinicas(ctx context.Context) ([]*Clinica, error) {
	var clinicas []*Clinica
	err := getDBFromContext(ctx, d.db).
		Order("nombre asc").
		Find(&clinicas).Error
	return clinicas, err
}

func (d *gormDB) FirstClinica(ctx context.Context) (*Clinica, error) {
	var c Clinica
	err := getDBFromContext(ctx, d.db).
		Order("id asc").
		First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (d *gormDB) CreateEquipo(ctx context.Context, e *EquipoBiomedico) error {
	return getDBFromContext(ctx, d.db).
		Omit(clause.Associations).
		Create(e).Error
}

func (d *gormDB) SaveEquipo(ctx context.Context, e *EquipoBiomedico) error {
	return getDBFromContext(ctx, d.db).
		Omit(clause.Associations).
		Save(e).Error
}

func (d *gormDB) GetEquipoByID(ctx context.Context, id uint) (*EquipoBiomedico, error) {
	var e EquipoBiomedico
	err := withEquipoPreloads(getDBFromContext(ctx, d.db)).
		First(&e, id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// equipoSearchColumns are the columns matched by the free-text search term.
var equipoSearchColumns = []string{
	"nombre_equipo", "marca", "modelo", "serie", "codigo_interno", "area_servicio",
}

func (d *gormDB) ListEquipos(ctx context.Context, scope Scope, filter EquipoFilter) ([]*EquipoBiomedico, error) {
	q := getDBFromContext(ctx, d.db).Model(&EquipoBiomedico{})

	// Tenant scoping is non-negotiable for non-superusers.
	if !scope.IsSuperuser {
		q = q.Where("clinica_id = ?", scope.ClinicaID)
	} else if filter.ClinicaID != nil {
		q = q.Where("clinica_id = ?", *filter.ClinicaID)
	}

	if term := strings.TrimSpace(filter.Search); term != "" {
		pattern := "%" + strings.ToLower(term) + "%"
		conds := make([]string, 0, len(equipoSearchColumns))
		args := make([]interface{}, 0, len(equipoSearchColumns))
		for _, col := range equipoSearchColumns {
			conds = append(conds, fmt.Sprintf("lower(%s) LIKE ?", col))
			args = append(args, pattern)
		}
		q = q.Where(strings.Join(conds, " OR "), args...)
	}

	for col, values := range map[string][]string{
		"nombre_equipo":        filter.NombreEquipo,
		"modelo":               filter.Modelo,
		"marca":                filter.Marca,
		"area_servicio":        filter.AreaServicio,
		"clasificacion_uso":    filter.ClasificacionUso,
		"clasificacion_riesgo": filter.ClasificacionRiesgo,
		"ubicacion":            filter.Ubicacion,
	} {
		if len(values) > 0 {
			q = q.Where(col+" IN ?", values)
		}
	}

	if filter.RequiereCalibracion != nil {
		q = q.Where("requiere_calibracion = ?", *filter.RequiereCalibracion)
	}

	var equipos []*EquipoBiomedico
	err := withEquipoPreloads(q).
		Order("fecha_modificacion desc").
		Find(&equipos).Error
	return equipos, err
}

func withEquipoPreloads(q *gorm.DB) *gorm.DB {
	return q.
		Preload("Parametros").
		Preload("Documentos").
		Preload("Historial", func(db *gorm.DB) *gorm.DB {
			return db.Order("fecha_modificacion desc")
		}).
		Preload("Historial.Usuario").
		Preload("Clinica")
}

func (d *gormDB) SerieExists(ctx context.Context, serie string) (bool, error) {
	var count int64
	err := getDBFromContext(ctx, d.db).
		Model(&EquipoBiomedico{}).
		Where("serie = ?", serie).
		Count(&count).Error
	return count > 0, err
}

func (d *gormDB) FindDuplicado(ctx context.Context, clinicaID uint, nombre, marca, modelo string) (*EquipoBiomedico, error) {
	var e EquipoBiomedico
	err := withEquipoPreloads(getDBFromContext(ctx, d.db)).
		Where("clinica_id = ?", clinicaID).
		Where("lower(nombre_equipo) = ? AND lower(marca) = ? AND lower(modelo) = ?",
			strings.ToLower(nombre), strings.ToLower(marca), strings.ToLower(modelo)).
		Order("id asc").
		First(&e).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (d *gormDB) ReplaceParametros(ctx context.Context, equipoID uint, parametros []ParametroEntregado) error {
	db := getDBFromContext(ctx, d.db)

	if err := db.Where("equipo_id = ?", equipoID).Delete(&ParametroEntregado{}).Error; err != nil {
		return err
	}

	for i := range parametros {
		parametros[i].ID = 0
		parametros[i].EquipoID = equipoID
	}
	if len(parametros) == 0 {
		return nil
	}
	return db.Create(&parametros).Error
}

func (d *gormDB) AddDocumento(ctx context.Context, doc *DocumentoAdjunto) error {
	return getDBFromContext(ctx, d.db).Create(doc).Error
}

func (d *gormDB) GetDocumento(ctx context.Context, equipoID, documentoID uint) (*DocumentoAdjunto, error) {
	var doc DocumentoAdjunto
	err := getDBFromContext(ctx, d.db).
		Where("id = ? AND equipo_id = ?", documentoID, equipoID).
		First(&doc).Error
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (d *gormDB) DeleteDocumento(ctx context.Context, equipoID, documentoID uint) error {
	res := getDBFromContext(ctx, d.db).
		Where("id = ? AND equipo_id = ?", documentoID, equipoID).
		Delete(&DocumentoAdjunto{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (d *gormDB) AppendHistorial(ctx context.Context, h *HistorialCambios) error {
	if strings.TrimSpace(h.MotivoCambio) == "" {
		return errors.New("motivo_cambio cannot be empty")
	}
	return getDBFromContext(ctx, d.db).Omit("Usuario").Create(h).Error
}
