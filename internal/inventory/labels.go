package inventory

// Display labels keyed by stored code. Unknown codes fall through to the
// stored value so exports never lose data.

var clasificacionUsoLabels = map[ClasificacionUso]string{
	UsoDiagnostico:    "Diagnóstico",
	UsoSoporteVital:   "Soporte Vital",
	UsoLaboratorio:    "Laboratorio Clínico",
	UsoTratamiento:    "Tratamiento/Quirúrgico",
	UsoTerapeutico:    "Terapéutico/Rehabilitación",
	UsoEsterilizacion: "Esterilización/Desinfección",
	UsoOtro:           "Otro",
}

var formaAdquisicionLabels = map[FormaAdquisicion]string{
	AdquisicionCompraNuevo:   "Compra (Nuevo)",
	AdquisicionCompraSegunda: "Compra (Segunda)",
	AdquisicionDonacion:      "Donación",
	AdquisicionComodato:      "Comodato",
	AdquisicionOtro:          "Otro",
}

var estadoActualLabels = map[EstadoActual]string{
	EstadoFuncional:       "En Funcionamiento",
	EstadoFueraDeServicio: "Fuera de Servicio",
	EstadoEnReparacion:    "En Reparación (A la espera de repuesto)",
	EstadoDadoDeBaja:      "Dado de Baja",
}

var tecnologiaLabels = map[TecnologiaPredominante]string{
	TecnologiaMecanico:    "Mecánico",
	TecnologiaElectrico:   "Eléctrico",
	TecnologiaElectronico: "Electrónico",
	TecnologiaHidraulico:  "Hidráulico",
	TecnologiaNeumatico:   "Neumático",
	TecnologiaInformatico: "Informático",
}

var tipoParametroLabels = map[TipoParametro]string{
	ParametroRPM:         "RPM",
	ParametroTemperatura: "Temperatura (°C)",
	ParametroPresion:     "Presión (PSI)",
	ParametroFlujo:       "Flujo (lpm)",
	ParametroPeso:        "Peso (kg)",
	ParametroSpO2:        "Saturación de Oxígeno (SpO2)",
	ParametroFC:          "Frecuencia Cardíaca (LPM)",
	ParametroEnergia:     "Energía (J)",
}

var rolLabels = map[Rol]string{
	RolMaster:         "Master (Superusuario)",
	RolAdminBiomedico: "Administrador Biomédico",
	RolBasico:         "Usuario Básico",
}

// Label returns the display label for a usage classification.
func (c ClasificacionUso) Label() string {
	if l, ok := clasificacionUsoLabels[c]; ok {
		return l
	}
	return string(c)
}

// Label returns the display label for an acquisition method.
func (f FormaAdquisicion) Label() string {
	if l, ok := formaAdquisicionLabels[f]; ok {
		return l
	}
	return string(f)
}

// Label returns the display label for an operational status.
func (e EstadoActual) Label() string {
	if l, ok := estadoActualLabels[e]; ok {
		return l
	}
	return string(e)
}

// Label returns the display label for a predominant technology.
func (t TecnologiaPredominante) Label() string {
	if l, ok := tecnologiaLabels[t]; ok {
		return l
	}
	return string(t)
}

// Label returns the display label for a delivered parameter type.
func (p TipoParametro) Label() string {
	if l, ok := tipoParametroLabels[p]; ok {
		return l
	}
	return string(p)
}

// Label returns the display label for a user role.
func (r Rol) Label() string {
	if l, ok := rolLabels[r]; ok {
		return l
	}
	return string(r)
}
