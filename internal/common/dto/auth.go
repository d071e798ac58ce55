package dto

// LoginRequest is the credential pair for obtaining a token.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest carries a refresh token.
type RefreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

// TokenPairResponse is the issued token pair.
type TokenPairResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// RegisterRequest creates a new user account.
type RegisterRequest struct {
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=8"`
	NombreCompleto string `json:"nombre_completo"`
	Rol            string `json:"rol"`
	ClinicaID      *uint  `json:"clinica_id"`
}

// UserInfo is the public view of a user account.
type UserInfo struct {
	ID             uint   `json:"id"`
	Email          string `json:"email"`
	NombreCompleto string `json:"nombre_completo"`
	Rol            string `json:"rol"`
	RolDisplay     string `json:"rol_display"`
	IsSuperuser    bool   `json:"is_superuser"`
	ClinicaID      *uint  `json:"clinica_id"`
	ClinicaNombre  string `json:"clinica_nombre,omitempty"`
}
