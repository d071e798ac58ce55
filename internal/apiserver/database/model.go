package database

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/gbsalud/gbs-inventario/internal/inventory"
)

// Clinica is the tenant boundary. All equipment and most users belong to
// exactly one clinic.
type Clinica struct {
	ID            uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Nombre        string    `json:"nombre" gorm:"type:varchar(255);uniqueIndex;not null"`
	Logo          string    `json:"logo,omitempty" gorm:"type:varchar(500)"`
	FechaCreacion time.Time `json:"fecha_creacion" gorm:"autoCreateTime"`
}

// Usuario is a system user. Login identity is the email. Non-superusers
// belong to exactly one clinic; superusers belong to none.
type Usuario struct {
	ID             uint          `json:"id" gorm:"primaryKey;autoIncrement"`
	Email          string        `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	NombreCompleto string        `json:"nombre_completo" gorm:"type:varchar(255)"`
	Password       string        `json:"-" gorm:"not null"` // bcrypt hash, never exposed
	Rol            inventory.Rol `json:"rol" gorm:"type:varchar(50);not null;default:'BASICO'"`
	ClinicaID      *uint         `json:"clinica_id"`
	Clinica        *Clinica      `json:"clinica,omitempty" gorm:"foreignKey:ClinicaID"`
	IsActive       bool          `json:"is_active" gorm:"not null;default:true"`
	IsStaff        bool          `json:"is_staff" gorm:"not null;default:false"`
	IsSuperuser    bool          `json:"is_superuser" gorm:"not null;default:false"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// EquipoBiomedico is the equipment record ("hoja de vida").
type EquipoBiomedico struct {
	ID        uint     `json:"id" gorm:"primaryKey;autoIncrement"`
	ClinicaID uint     `json:"clinica_id" gorm:"not null;index"`
	Clinica   *Clinica `json:"clinica,omitempty" gorm:"foreignKey:ClinicaID;constraint:OnDelete:CASCADE"`

	// Gestión
	HojaVidaID string `json:"hoja_vida_id" gorm:"type:varchar(100);uniqueIndex"`
	IsComplete bool   `json:"is_complete" gorm:"not null;default:false"`

	// Identificación
	NombreEquipo            string                        `json:"nombre_equipo" gorm:"type:varchar(255);not null"`
	Marca                   string                        `json:"marca" gorm:"type:varchar(255)"`
	Modelo                  string                        `json:"modelo" gorm:"type:varchar(255)"`
	Serie                   string                        `json:"serie" gorm:"type:varchar(255);uniqueIndex;not null"`
	CodigoInterno           string                        `json:"codigo_interno" gorm:"type:varchar(100)"`
	AreaServicio            string                        `json:"area_servicio" gorm:"type:varchar(255);default:'General'"`
	Ubicacion               string                        `json:"ubicacion" gorm:"type:varchar(255);default:'No especificada'"`
	FotoEquipo              string                        `json:"foto_equipo,omitempty" gorm:"type:varchar(500)"`
	RegistroSanitarioAplica bool                          `json:"registro_sanitario_aplica" gorm:"default:true"`
	RegistroSanitario       string                        `json:"registro_sanitario" gorm:"type:varchar(255)"`
	ClasificacionRiesgo     inventory.ClasificacionRiesgo `json:"clasificacion_riesgo" gorm:"type:varchar(10)"`
	ClasificacionUso        inventory.ClasificacionUso    `json:"clasificacion_uso" gorm:"type:varchar(50);default:'DIAGNOSTICO'"`

	// Adquisición y propiedad
	FechaAdquisicion *time.Time                 `json:"fecha_adquisicion"`
	FormaAdquisicion inventory.FormaAdquisicion `json:"forma_adquisicion" gorm:"type:varchar(50);default:'COMPRA_NUEVO'"`
	Proveedor        string                     `json:"proveedor" gorm:"type:varchar(255)"`
	Factura          string                     `json:"factura,omitempty" gorm:"type:varchar(500)"`
	PrecioNoRegistra bool                       `json:"precio_no_registra" gorm:"default:false"`
	Precio           *string                    `json:"precio" gorm:"type:varchar(50)"`
	GarantiaAnios    uint                       `json:"garantia_anios" gorm:"default:0"`
	VidaUtilAnios    uint                       `json:"vida_util_anios" gorm:"default:10"`

	// Características técnicas de funcionamiento. Each value pairs with an
	// independent "no aplica" flag: a missing value is legitimate only when
	// its flag is set.
	VoltajeVdc    *string `json:"voltaje_vdc" gorm:"type:varchar(50)"`
	VoltajeVdcNA  bool    `json:"voltaje_vdc_na" gorm:"column:voltaje_vdc_na;default:false"`
	VoltajeVac    *string `json:"voltaje_vac" gorm:"type:varchar(50)"`
	VoltajeVacNA  bool    `json:"voltaje_vac_na" gorm:"column:voltaje_vac_na;default:false"`
	Corriente     *string `json:"corriente" gorm:"type:varchar(50)"`
	CorrienteNA   bool    `json:"corriente_na" gorm:"column:corriente_na;default:false"`
	Potencia      *string `json:"potencia" gorm:"type:varchar(50)"`
	PotenciaNA    bool    `json:"potencia_na" gorm:"column:potencia_na;default:false"`
	Frecuencia    *string `json:"frecuencia" gorm:"type:varchar(50)"`
	FrecuenciaNA  bool    `json:"frecuencia_na" gorm:"column:frecuencia_na;default:false"`
	Temperatura   *string `json:"temperatura" gorm:"type:varchar(50)"`
	TemperaturaNA bool    `json:"temperatura_na" gorm:"column:temperatura_na;default:false"`
	Peso          *string `json:"peso" gorm:"type:varchar(50)"`
	PesoNA        bool    `json:"peso_na" gorm:"column:peso_na;default:false"`

	TecnologiaPredominante inventory.TecnologiaPredominante `json:"tecnologia_predominante" gorm:"type:varchar(50);default:'ELECTRONICO'"`

	// Otras fuentes de alimentación
	FuenteNeumatica  bool `json:"fuente_neumatica" gorm:"default:false"`
	FuenteHidraulica bool `json:"fuente_hidraulica" gorm:"default:false"`
	FuenteCombustion bool `json:"fuente_combustion" gorm:"default:false"`

	// Mantenimiento y calibración
	FrecuenciaMantenimientoMeses uint                   `json:"frecuencia_mantenimiento_meses" gorm:"default:6"`
	RequiereCalibracion          bool                   `json:"requiere_calibracion" gorm:"default:false"`
	FrecuenciaCalibracionMeses   *string                `json:"frecuencia_calibracion_meses" gorm:"type:varchar(50)"`
	EstadoActual                 inventory.EstadoActual `json:"estado_actual" gorm:"type:varchar(50);default:'FUNCIONAL'"`

	FechaCreacion     time.Time `json:"fecha_creacion" gorm:"autoCreateTime"`
	FechaModificacion time.Time `json:"fecha_modificacion" gorm:"autoUpdateTime;index"`

	Parametros []ParametroEntregado `json:"parametros" gorm:"foreignKey:EquipoID;constraint:OnDelete:CASCADE"`
	Documentos []DocumentoAdjunto   `json:"documentos" gorm:"foreignKey:EquipoID;constraint:OnDelete:CASCADE"`
	Historial  []HistorialCambios   `json:"historial" gorm:"foreignKey:EquipoID;constraint:OnDelete:CASCADE"`
}

// ParametroEntregado is a measurable parameter delivered by an equipment,
// with an optional numeric range.
type ParametroEntregado struct {
	ID        uint                    `json:"id" gorm:"primaryKey;autoIncrement"`
	EquipoID  uint                    `json:"equipo_id" gorm:"not null;index"`
	Parametro inventory.TipoParametro `json:"parametro" gorm:"type:varchar(50);not null"`
	RangoMin  *float64                `json:"rango_min" gorm:"type:decimal(10,2)"`
	RangoMax  *float64                `json:"rango_max" gorm:"type:decimal(10,2)"`
}

// DocumentoAdjunto is a file attached to an equipment record.
type DocumentoAdjunto struct {
	ID         uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	EquipoID   uint      `json:"equipo_id" gorm:"not null;index"`
	Nombre     string    `json:"nombre" gorm:"type:varchar(255);not null"`
	Archivo    string    `json:"archivo" gorm:"type:varchar(500);not null"`
	FechaCarga time.Time `json:"fecha_carga" gorm:"autoCreateTime"`
}

// HistorialCambios records one mutation of an equipment record. The user
// reference is weak: deleting the user keeps the entry with a null actor.
type HistorialCambios struct {
	ID                uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	EquipoID          uint      `json:"equipo_id" gorm:"not null;index"`
	UsuarioID         *uint     `json:"usuario_id"`
	Usuario           *Usuario  `json:"usuario,omitempty" gorm:"foreignKey:UsuarioID;constraint:OnDelete:SET NULL"`
	FechaModificacion time.Time `json:"fecha_modificacion" gorm:"autoCreateTime"`
	MotivoCambio      string    `json:"motivo_cambio" gorm:"type:text;not null"`
}

// BeforeCreate assigns the hoja de vida identifier on first save: one more
// than the sequence of the clinic's last-inserted record, or 1.
//
// The read-then-write is not safe under concurrent creation for the same
// clinic; the unique index on hoja_vida_id turns that race into a write
// failure instead of a silent duplicate.
func (e *EquipoBiomedico) BeforeCreate(tx *gorm.DB) error {
	if e.HojaVidaID != "" {
		return nil
	}

	var last EquipoBiomedico
	err := tx.Session(&gorm.Session{NewDB: true, SkipHooks: true}).
		Model(&EquipoBiomedico{}).
		Where("clinica_id = ?", e.ClinicaID).
		Order("id desc").
		First(&last).Error

	seq := 1
	switch {
	case err == nil:
		if idx := strings.LastIndex(last.HojaVidaID, "-"); idx >= 0 {
			if n, perr := strconv.Atoi(last.HojaVidaID[idx+1:]); perr == nil {
				seq = n + 1
			}
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		// first equipment for this clinic
	default:
		return err
	}

	e.HojaVidaID = fmt.Sprintf("HV-%d-%04d", e.ClinicaID, seq)
	return nil
}

// BeforeSave recomputes the completeness flag on every save.
func (e *EquipoBiomedico) BeforeSave(tx *gorm.DB) error {
	e.IsComplete = e.CheckCompleteness()
	return nil
}

// criticalValues returns the values of the fields required for a record to
// count as complete, rendered as strings.
func (e *EquipoBiomedico) criticalValues() []string {
	fecha := ""
	if e.FechaAdquisicion != nil {
		fecha = e.FechaAdquisicion.Format("2006-01-02")
	}
	return []string{
		e.NombreEquipo,
		e.Marca,
		e.Modelo,
		e.Serie,
		e.AreaServicio,
		e.Ubicacion,
		string(e.ClasificacionUso),
		fecha,
		string(e.FormaAdquisicion),
		strconv.FormatUint(uint64(e.VidaUtilAnios), 10),
		string(e.TecnologiaPredominante),
		e.RegistroSanitario,
		string(e.ClasificacionRiesgo),
		derefStr(e.Precio),
		derefStr(e.FrecuenciaCalibracionMeses),
	}
}

// CheckCompleteness reports whether every critical field carries a real
// value. Empty strings, whitespace, "N/A" and "no requiere" do not count.
func (e *EquipoBiomedico) CheckCompleteness() bool {
	for _, v := range e.criticalValues() {
		if !fieldComplete(v) {
			return false
		}
	}
	return true
}

func fieldComplete(v string) bool {
	if strings.TrimSpace(v) == "" {
		return false
	}
	return v != "N/A" && v != "no requiere"
}

func derefStr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
