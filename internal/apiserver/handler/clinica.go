package handler

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gbsalud/gbs-inventario/internal/apiserver/database"
	"github.com/gbsalud/gbs-inventario/internal/common/dto"
	"github.com/gbsalud/gbs-inventario/internal/i18n"
)

// ListClinicas lists every clinic. Superuser only.
func (h *Handler) ListClinicas(c *gin.Context) {
	clinicas, err := h.db.ListClinicas(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list clinics", zap.Error(err))
		i18n.Error(i18n.ErrInternalServer).Send(c)
		return
	}

	i18n.Success(i18n.SuccessClinicaList).WithPayload(clinicas).Send(c)
}

// CreateClinica creates a new clinic. Superuser only.
func (h *Handler) CreateClinica(c *gin.Context) {
	var req dto.ClinicaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		i18n.Error(i18n.ErrorClinicaNameRequired).Send(c)
		return
	}

	nombre := strings.TrimSpace(req.Nombre)
	if nombre == "" {
		i18n.Error(i18n.ErrorClinicaNameRequired).Send(c)
		return
	}

	existing, err := h.db.ListClinicas(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list clinics", zap.Error(err))
		i18n.Error(i18n.ErrInternalServer).Send(c)
		return
	}
	for _, cl := range existing {
		if strings.EqualFold(cl.Nombre, nombre) {
			i18n.Error(i18n.ErrorClinicaNameExists).Send(c)
			return
		}
	}

	clinica := &database.Clinica{Nombre: nombre}
	if err := h.db.CreateClinica(c.Request.Context(), clinica); err != nil {
		h.logger.Error("failed to create clinic", zap.Error(err))
		i18n.Error(i18n.ErrInternalServer).Send(c)
		return
	}

	h.logger.Info("clinic created", zap.Uint("id", clinica.ID), zap.String("nombre", clinica.Nombre))

	i18n.Created(i18n.SuccessClinicaCreada).WithPayload(clinica).Send(c)
}
