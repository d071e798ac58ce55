// Package inventory holds the enumerated domain vocabulary for biomedical
// equipment records. Stored values are stable codes; display labels live in
// static lookup tables and are used for exports and UI payloads.
package inventory

// ClasificacionRiesgo is the sanitary risk class of a device.
type ClasificacionRiesgo string

const (
	RiesgoClaseI   ClasificacionRiesgo = "I"
	RiesgoClaseIIA ClasificacionRiesgo = "IIA"
	RiesgoClaseIIB ClasificacionRiesgo = "IIB"
	RiesgoClaseIII ClasificacionRiesgo = "III"
	RiesgoNA       ClasificacionRiesgo = "N/A"
)

// ClasificacionUso is the clinical usage class of a device.
type ClasificacionUso string

const (
	UsoDiagnostico    ClasificacionUso = "DIAGNOSTICO"
	UsoSoporteVital   ClasificacionUso = "SOPORTE_VITAL"
	UsoLaboratorio    ClasificacionUso = "LABORATORIO"
	UsoTratamiento    ClasificacionUso = "TRATAMIENTO"
	UsoTerapeutico    ClasificacionUso = "TERAPEUTICO"
	UsoEsterilizacion ClasificacionUso = "ESTERILIZACION"
	UsoOtro           ClasificacionUso = "OTRO"
)

// FormaAdquisicion is how a device entered the institution.
type FormaAdquisicion string

const (
	AdquisicionCompraNuevo   FormaAdquisicion = "COMPRA_NUEVO"
	AdquisicionCompraSegunda FormaAdquisicion = "COMPRA_SEGUNDA"
	AdquisicionDonacion      FormaAdquisicion = "DONACION"
	AdquisicionComodato      FormaAdquisicion = "COMODATO"
	AdquisicionOtro          FormaAdquisicion = "OTRO"
)

// EstadoActual is the current operational status of a device.
type EstadoActual string

const (
	EstadoFuncional       EstadoActual = "FUNCIONAL"
	EstadoFueraDeServicio EstadoActual = "FUERA_DE_SERVICIO"
	EstadoEnReparacion    EstadoActual = "EN_REPARACION"
	EstadoDadoDeBaja      EstadoActual = "DADO_DE_BAJA"
)

// TecnologiaPredominante is the predominant technology of a device.
type TecnologiaPredominante string

const (
	TecnologiaMecanico    TecnologiaPredominante = "MECANICO"
	TecnologiaElectrico   TecnologiaPredominante = "ELECTRICO"
	TecnologiaElectronico TecnologiaPredominante = "ELECTRONICO"
	TecnologiaHidraulico  TecnologiaPredominante = "HIDRAULICO"
	TecnologiaNeumatico   TecnologiaPredominante = "NEUMATICO"
	TecnologiaInformatico TecnologiaPredominante = "INFORMATICO"
)

// TipoParametro is a measurable parameter a device delivers.
type TipoParametro string

const (
	ParametroRPM         TipoParametro = "RPM"
	ParametroTemperatura TipoParametro = "TEMPERATURA"
	ParametroPresion     TipoParametro = "PRESION"
	ParametroFlujo       TipoParametro = "FLUJO"
	ParametroPeso        TipoParametro = "PESO"
	ParametroSpO2        TipoParametro = "SPO2"
	ParametroFC          TipoParametro = "FC"
	ParametroEnergia     TipoParametro = "ENERGIA"
)

// Rol is a user's role within the system.
type Rol string

const (
	RolMaster         Rol = "MASTER"
	RolAdminBiomedico Rol = "ADMIN_BIOMEDICO"
	RolBasico         Rol = "BASICO"
)

// Valid reports whether r is a known role code.
func (r Rol) Valid() bool {
	switch r {
	case RolMaster, RolAdminBiomedico, RolBasico:
		return true
	}
	return false
}

// Valid reports whether p is a known parameter type code.
func (p TipoParametro) Valid() bool {
	_, ok := tipoParametroLabels[p]
	return ok
}
