package i18n

// Common errors
var (
	ErrNotFound       = NewErrorWithCode("ErrorResourceNotFound", ErrorNotFound)
	ErrUnauthorized   = NewErrorWithCode("ErrorUnauthorized", ErrorUnauthorized)
	ErrForbidden      = NewErrorWithCode("ErrorForbidden", ErrorForbidden)
	ErrBadRequest     = NewErrorWithCode("ErrorBadRequest", ErrorBadRequest)
	ErrInternalServer = NewErrorWithCode("ErrorInternalServer", ErrorInternalServer)
)

// Authentication and user errors
var (
	ErrorInvalidCredentials = NewErrorWithCode("ErrorInvalidCredentials", ErrorUnauthorized)
	ErrorInvalidToken       = NewErrorWithCode("ErrorInvalidToken", ErrorUnauthorized)
	ErrorUserDisabled       = NewErrorWithCode("ErrorUserDisabled", ErrorForbidden)
	ErrorUserNotFound       = NewErrorWithCode("ErrorUserNotFound", ErrorNotFound)
	ErrorEmailRequired      = NewErrorWithCode("ErrorEmailRequired", ErrorBadRequest)
	ErrorEmailExists        = NewErrorWithCode("ErrorEmailExists", ErrorConflict)
	ErrorClinicaRequired    = NewErrorWithCode("ErrorClinicaRequired", ErrorBadRequest)
)

// Clinic errors
var (
	ErrorClinicaNotFound     = NewErrorWithCode("ErrorClinicaNotFound", ErrorNotFound)
	ErrorClinicaNameRequired = NewErrorWithCode("ErrorClinicaNameRequired", ErrorBadRequest)
	ErrorClinicaNameExists   = NewErrorWithCode("ErrorClinicaNameExists", ErrorConflict)
)

// Equipment errors
var (
	ErrorEquipoNotFound       = NewErrorWithCode("ErrorEquipoNotFound", ErrorNotFound)
	ErrorSerieExists          = NewErrorWithCode("ErrorSerieExists", ErrorConflict)
	ErrorMotivoCambioRequired = NewErrorWithCode("ErrorMotivoCambioRequired", ErrorBadRequest)
	ErrorDocumentoNotFound    = NewErrorWithCode("ErrorDocumentoNotFound", ErrorNotFound)
	ErrorDuplicateParams      = NewErrorWithCode("ErrorDuplicateParams", ErrorBadRequest)
	ErrorClinicaUnresolved    = NewErrorWithCode("ErrorClinicaUnresolved", ErrorBadRequest)
	ErrorDataIntegrity        = NewErrorWithCode("ErrorDataIntegrity", ErrorInternalServer)
)

// Bulk import/export errors
var (
	ErrorArchivoRequired  = NewErrorWithCode("ErrorArchivoRequired", ErrorBadRequest)
	ErrorArchivoInvalido  = NewErrorWithCode("ErrorArchivoInvalido", ErrorBadRequest)
	ErrorColumnasFaltan   = NewErrorWithCode("ErrorColumnasFaltan", ErrorBadRequest)
	ErrorExportacionFallo = NewErrorWithCode("ErrorExportacionFallo", ErrorInternalServer)
)

// Authentication and user success messages
const (
	SuccessLogin          = "SuccessLogin"
	SuccessTokenRefreshed = "SuccessTokenRefreshed"
	SuccessUsuarioCreado  = "SuccessUsuarioCreado"
	SuccessUsuarioInfo    = "SuccessUsuarioInfo"
)

// Clinic success messages
const (
	SuccessClinicaCreada = "SuccessClinicaCreada"
	SuccessClinicaList   = "SuccessClinicaList"
)

// Equipment success messages
const (
	SuccessEquipoCreado       = "SuccessEquipoCreado"
	SuccessEquipoActualizado  = "SuccessEquipoActualizado"
	SuccessDocumentoSubido    = "SuccessDocumentoSubido"
	SuccessDocumentoEliminado = "SuccessDocumentoEliminado"
	SuccessCargaMasiva        = "SuccessCargaMasiva"
	SuccessCargaMasivaParcial = "SuccessCargaMasivaParcial"
)
