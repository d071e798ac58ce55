package handler

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/gbsalud/gbs-inventario/internal/apiserver/database"
	"github.com/gbsalud/gbs-inventario/internal/apiserver/middleware"
	"github.com/gbsalud/gbs-inventario/internal/auth/jwt"
	"github.com/gbsalud/gbs-inventario/internal/auth/password"
	"github.com/gbsalud/gbs-inventario/internal/common/dto"
	"github.com/gbsalud/gbs-inventario/internal/i18n"
	"github.com/gbsalud/gbs-inventario/internal/inventory"
)

// Login authenticates with email and password and issues a token pair.
func (h *Handler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		i18n.From(i18n.ErrBadRequest.WithParam("Reason", err.Error())).Send(c)
		return
	}

	user, err := h.db.GetUsuarioByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			i18n.Error(i18n.ErrorInvalidCredentials).Send(c)
			return
		}
		h.logger.Error("failed to load user for login", zap.Error(err))
		i18n.Error(i18n.ErrInternalServer).Send(c)
		return
	}

	if !user.IsActive {
		i18n.Error(i18n.ErrorUserDisabled).Send(c)
		return
	}

	if !password.Verify(user.Password, req.Password) {
		i18n.Error(i18n.ErrorInvalidCredentials).Send(c)
		return
	}

	pair, err := h.tokenPair(user)
	if err != nil {
		h.logger.Error("failed to generate tokens", zap.Error(err))
		i18n.Error(i18n.ErrInternalServer).Send(c)
		return
	}

	i18n.Success(i18n.SuccessLogin).WithPayload(pair).Send(c)
}

// RefreshToken exchanges a valid refresh token for a new token pair.
func (h *Handler) RefreshToken(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		i18n.From(i18n.ErrBadRequest.WithParam("Reason", err.Error())).Send(c)
		return
	}

	claims, err := h.jwtService.ValidateRefreshToken(req.Refresh)
	if err != nil {
		i18n.Error(i18n.ErrorInvalidToken).Send(c)
		return
	}

	// Re-read the user so revoked accounts stop refreshing and role changes
	// take effect on the next pair.
	user, err := h.db.GetUsuarioByID(c.Request.Context(), claims.UserID)
	if err != nil {
		i18n.Error(i18n.ErrorInvalidToken).Send(c)
		return
	}
	if !user.IsActive {
		i18n.Error(i18n.ErrorUserDisabled).Send(c)
		return
	}

	pair, err := h.tokenPair(user)
	if err != nil {
		h.logger.Error("failed to generate tokens", zap.Error(err))
		i18n.Error(i18n.ErrInternalServer).Send(c)
		return
	}

	i18n.Success(i18n.SuccessTokenRefreshed).WithPayload(pair).Send(c)
}

// Register creates a new user account. Non-superuser accounts must belong
// to an existing clinic.
func (h *Handler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		i18n.From(i18n.ErrBadRequest.WithParam("Reason", err.Error())).Send(c)
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		i18n.Error(i18n.ErrorEmailRequired).Send(c)
		return
	}

	if existing, err := h.db.GetUsuarioByEmail(c.Request.Context(), email); err == nil && existing != nil {
		i18n.Error(i18n.ErrorEmailExists).Send(c)
		return
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		h.logger.Error("failed to check existing email", zap.Error(err))
		i18n.Error(i18n.ErrInternalServer).Send(c)
		return
	}

	rol := inventory.Rol(req.Rol)
	if rol == "" {
		rol = inventory.RolBasico
	}
	if !rol.Valid() {
		i18n.From(i18n.ErrBadRequest.WithParam("Reason", "rol inválido")).Send(c)
		return
	}

	if req.ClinicaID == nil {
		i18n.Error(i18n.ErrorClinicaRequired).Send(c)
		return
	}
	if _, err := h.db.GetClinicaByID(c.Request.Context(), *req.ClinicaID); err != nil {
		i18n.Error(i18n.ErrorClinicaNotFound).Send(c)
		return
	}

	hashed, err := password.Hash(req.Password)
	if err != nil {
		h.logger.Error("failed to hash password", zap.Error(err))
		i18n.Error(i18n.ErrInternalServer).Send(c)
		return
	}

	user := &database.Usuario{
		Email:          email,
		NombreCompleto: req.NombreCompleto,
		Password:       hashed,
		Rol:            rol,
		ClinicaID:      req.ClinicaID,
		IsActive:       true,
	}
	if err := h.db.CreateUsuario(c.Request.Context(), user); err != nil {
		h.logger.Error("failed to create user", zap.Error(err))
		i18n.Error(i18n.ErrInternalServer).Send(c)
		return
	}

	h.logger.Info("user created",
		zap.Uint("id", user.ID),
		zap.String("email", user.Email),
		zap.String("rol", string(user.Rol)))

	i18n.Created(i18n.SuccessUsuarioCreado).WithPayload(userInfo(user)).Send(c)
}

// Me returns the authenticated user's account information.
func (h *Handler) Me(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		i18n.Error(i18n.ErrUnauthorized).Send(c)
		return
	}

	user, err := h.db.GetUsuarioByID(c.Request.Context(), claims.UserID)
	if err != nil {
		i18n.Error(i18n.ErrorUserNotFound).Send(c)
		return
	}

	i18n.Success(i18n.SuccessUsuarioInfo).WithPayload(userInfo(user)).Send(c)
}

func (h *Handler) tokenPair(user *database.Usuario) (*dto.TokenPairResponse, error) {
	id := jwt.Identity{
		UserID:      user.ID,
		Email:       user.Email,
		Rol:         string(user.Rol),
		ClinicaID:   user.ClinicaID,
		IsSuperuser: user.IsSuperuser,
	}

	access, err := h.jwtService.GenerateToken(id)
	if err != nil {
		return nil, err
	}
	refresh, err := h.jwtService.GenerateRefreshToken(id)
	if err != nil {
		return nil, err
	}

	return &dto.TokenPairResponse{Access: access, Refresh: refresh}, nil
}

func userInfo(user *database.Usuario) *dto.UserInfo {
	info := &dto.UserInfo{
		ID:             user.ID,
		Email:          user.Email,
		NombreCompleto: user.NombreCompleto,
		Rol:            string(user.Rol),
		RolDisplay:     user.Rol.Label(),
		IsSuperuser:    user.IsSuperuser,
		ClinicaID:      user.ClinicaID,
	}
	if user.Clinica != nil {
		info.ClinicaNombre = user.Clinica.Nombre
	}
	return info
}
