package cnst

// AppName is the canonical application name used in logs and default paths.
const AppName = "gbs-inventario"

// XLang is the context/header key carrying the preferred response language.
const XLang = "X-Lang"

// Supported response languages.
const (
	LangES = "es"
	LangEN = "en"
)

// Media storage categories. Each maps to a subdirectory of the media root.
const (
	MediaFotosEquipos      = "fotos_equipos"
	MediaFacturas          = "facturas"
	MediaDocumentosEquipos = "documentos_equipos"
)
