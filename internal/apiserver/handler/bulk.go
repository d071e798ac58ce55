package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gbsalud/gbs-inventario/internal/apiserver/database"
	"github.com/gbsalud/gbs-inventario/internal/apiserver/middleware"
	"github.com/gbsalud/gbs-inventario/internal/common/dto"
	"github.com/gbsalud/gbs-inventario/internal/i18n"
	"github.com/gbsalud/gbs-inventario/internal/inventory"
	"github.com/gbsalud/gbs-inventario/internal/inventory/excel"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// BulkUpload imports equipment rows from an uploaded xlsx workbook. Rows
// whose serial already exists are skipped; failed rows are reported
// individually without aborting the rest.
func (h *Handler) BulkUpload(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		i18n.Error(i18n.ErrUnauthorized).Send(c)
		return
	}

	fh, err := c.FormFile("archivo")
	if err != nil {
		i18n.Error(i18n.ErrorArchivoRequired).Send(c)
		return
	}

	var requested *uint
	if v := c.PostForm("clinica_id"); v != "" {
		id, perr := strconv.ParseUint(v, 10, 32)
		if perr != nil {
			i18n.From(i18n.ErrBadRequest.WithParam("Reason", "clinica_id inválido")).Send(c)
			return
		}
		cid := uint(id)
		requested = &cid
	}
	clinicaID, errResp := h.resolveClinicaID(c.Request.Context(), claims, requested)
	if errResp != nil {
		errResp.Send(c)
		return
	}

	f, err := fh.Open()
	if err != nil {
		i18n.Error(i18n.ErrorArchivoInvalido).Send(c)
		return
	}
	defer f.Close()

	rows, err := excel.ParseInventario(f)
	if err != nil {
		var missing *excel.MissingColumnsError
		if errors.As(err, &missing) {
			i18n.From(i18n.ErrorColumnasFaltan.WithParam("Columnas", strings.Join(missing.Columns, ", "))).Send(c)
			return
		}
		i18n.Error(i18n.ErrorArchivoInvalido).Send(c)
		return
	}

	created := 0
	omitidos := 0
	var errores []dto.BulkRowError

	for _, row := range rows {
		if row.NombreEquipo == "" || row.Serie == "" {
			errores = append(errores, dto.BulkRowError{
				Fila:  row.Fila,
				Serie: row.Serie,
				Error: "nombre_equipo y serie son obligatorios",
			})
			continue
		}

		exists, err := h.db.SerieExists(c.Request.Context(), row.Serie)
		if err != nil {
			h.logger.Error("failed to check serial during bulk upload", zap.Error(err))
			i18n.Error(i18n.ErrInternalServer).Send(c)
			return
		}
		if exists {
			omitidos++
			continue
		}

		equipo := equipoFromImportRow(clinicaID, row)
		if err := h.db.CreateEquipo(c.Request.Context(), equipo); err != nil {
			errores = append(errores, dto.BulkRowError{
				Fila:  row.Fila,
				Serie: row.Serie,
				Error: fmt.Sprintf("no se pudo crear el equipo: %v", err),
			})
			continue
		}
		created++
	}

	h.logger.Info("bulk upload finished",
		zap.Uint("clinica_id", clinicaID),
		zap.Int("creados", created),
		zap.Int("omitidos", omitidos),
		zap.Int("errores", len(errores)))

	resp := i18n.Success(i18n.SuccessCargaMasiva).
		With("Creados", created).
		WithPayload(gin.H{
			"equipos_creados": created,
			"omitidos":        omitidos,
			"errores":         errores,
		})
	if len(errores) > 0 {
		resp.MsgID = i18n.SuccessCargaMasivaParcial
		resp.StatusCode = http.StatusBadRequest
	}
	resp.Send(c)
}

// ExportExcel streams the caller's visible inventory as an xlsx workbook.
// The same query filters as the listing apply.
func (h *Handler) ExportExcel(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		i18n.Error(i18n.ErrUnauthorized).Send(c)
		return
	}

	filter, err := equipoFilterFromQuery(c, claims)
	if err != nil {
		i18n.From(i18n.ErrBadRequest.WithParam("Reason", err.Error())).Send(c)
		return
	}

	equipos, err := h.db.ListEquipos(c.Request.Context(), scopeFromClaims(claims), filter)
	if err != nil {
		h.logger.Error("failed to list equipment for export", zap.Error(err))
		i18n.Error(i18n.ErrorExportacionFallo).Send(c)
		return
	}

	workbook, err := excel.BuildInventario(equipos)
	if err != nil {
		h.logger.Error("failed to build export workbook", zap.Error(err))
		i18n.Error(i18n.ErrorExportacionFallo).Send(c)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", excel.ExportFilename))
	c.Data(200, xlsxContentType, workbook)
}

func equipoFromImportRow(clinicaID uint, row excel.ImportRow) *database.EquipoBiomedico {
	ubicacion := row.Ubicacion
	if ubicacion == "" {
		ubicacion = "No especificada"
	}
	area := row.AreaServicio
	if area == "" {
		area = "General"
	}

	return &database.EquipoBiomedico{
		ClinicaID:               clinicaID,
		NombreEquipo:            row.NombreEquipo,
		Marca:                   row.Marca,
		Modelo:                  row.Modelo,
		Serie:                   row.Serie,
		CodigoInterno:           row.CodigoInterno,
		Ubicacion:               ubicacion,
		AreaServicio:            area,
		RegistroSanitarioAplica: true,
		RegistroSanitario:       row.RegistroSanitario,

		ClasificacionUso:       inventory.UsoDiagnostico,
		FormaAdquisicion:       inventory.AdquisicionCompraNuevo,
		TecnologiaPredominante: inventory.TecnologiaElectronico,
		EstadoActual:           inventory.EstadoFuncional,

		VidaUtilAnios:                10,
		FrecuenciaMantenimientoMeses: 6,
	}
}
