package dto

// ParametroPayload is one delivered parameter within an equipment payload.
type ParametroPayload struct {
	Parametro string   `json:"parametro" binding:"required"`
	RangoMin  *float64 `json:"rango_min"`
	RangoMax  *float64 `json:"rango_max"`
}

// EquipoPayload carries the writable fields of an equipment record. On
// multipart requests it travels as the "data" JSON part, next to the file
// parts.
type EquipoPayload struct {
	ClinicaID *uint `json:"clinica_id"`

	NombreEquipo            string `json:"nombre_equipo" binding:"required"`
	Marca                   string `json:"marca"`
	Modelo                  string `json:"modelo"`
	Serie                   string `json:"serie" binding:"required"`
	CodigoInterno           string `json:"codigo_interno"`
	AreaServicio            string `json:"area_servicio"`
	Ubicacion               string `json:"ubicacion"`
	RegistroSanitarioAplica *bool  `json:"registro_sanitario_aplica"`
	RegistroSanitario       string `json:"registro_sanitario"`
	ClasificacionRiesgo     string `json:"clasificacion_riesgo"`
	ClasificacionUso        string `json:"clasificacion_uso"`

	FechaAdquisicion string  `json:"fecha_adquisicion"` // YYYY-MM-DD
	FormaAdquisicion string  `json:"forma_adquisicion"`
	Proveedor        string  `json:"proveedor"`
	PrecioNoRegistra bool    `json:"precio_no_registra"`
	Precio           *string `json:"precio"`
	GarantiaAnios    uint    `json:"garantia_anios"`
	VidaUtilAnios    *uint   `json:"vida_util_anios"`

	VoltajeVdc    *string `json:"voltaje_vdc"`
	VoltajeVdcNA  bool    `json:"voltaje_vdc_na"`
	VoltajeVac    *string `json:"voltaje_vac"`
	VoltajeVacNA  bool    `json:"voltaje_vac_na"`
	Corriente     *string `json:"corriente"`
	CorrienteNA   bool    `json:"corriente_na"`
	Potencia      *string `json:"potencia"`
	PotenciaNA    bool    `json:"potencia_na"`
	Frecuencia    *string `json:"frecuencia"`
	FrecuenciaNA  bool    `json:"frecuencia_na"`
	Temperatura   *string `json:"temperatura"`
	TemperaturaNA bool    `json:"temperatura_na"`
	Peso          *string `json:"peso"`
	PesoNA        bool    `json:"peso_na"`

	TecnologiaPredominante string `json:"tecnologia_predominante"`
	FuenteNeumatica        bool   `json:"fuente_neumatica"`
	FuenteHidraulica       bool   `json:"fuente_hidraulica"`
	FuenteCombustion       bool   `json:"fuente_combustion"`

	FrecuenciaMantenimientoMeses *uint   `json:"frecuencia_mantenimiento_meses"`
	RequiereCalibracion          bool    `json:"requiere_calibracion"`
	FrecuenciaCalibracionMeses   *string `json:"frecuencia_calibracion_meses"`
	EstadoActual                 string  `json:"estado_actual"`

	Parametros []ParametroPayload `json:"parametros"`

	// Required on updates; recorded in the change history.
	MotivoCambio string `json:"motivo_cambio"`
}

// ClinicaRequest creates a new clinic.
type ClinicaRequest struct {
	Nombre string `json:"nombre" binding:"required"`
}

// DuplicadoCheckRequest asks whether a similar equipment already exists in
// a clinic.
type DuplicadoCheckRequest struct {
	NombreEquipo string `form:"nombre_equipo" binding:"required"`
	Marca        string `form:"marca" binding:"required"`
	Modelo       string `form:"modelo" binding:"required"`
	ClinicaID    *uint  `form:"clinica_id"`
}

// DuplicadoCheckResponse is the advisory duplicate-check answer.
type DuplicadoCheckResponse struct {
	Duplicado bool        `json:"duplicado"`
	Equipo    interface{} `json:"equipo,omitempty"`
}

// BulkRowError is one failed row of a bulk upload.
type BulkRowError struct {
	Fila  int    `json:"fila"`
	Serie string `json:"serie,omitempty"`
	Error string `json:"error"`
}

// BulkUploadResult summarises a bulk upload.
type BulkUploadResult struct {
	EquiposCreados int            `json:"equipos_creados"`
	Omitidos       int            `json:"omitidos"`
	Errores        []BulkRowError `json:"errores,omitempty"`
}
