package handler

import (
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/gbsalud/gbs-inventario/internal/apiserver/database"
	"github.com/gbsalud/gbs-inventario/internal/apiserver/middleware"
	"github.com/gbsalud/gbs-inventario/internal/auth/jwt"
	"github.com/gbsalud/gbs-inventario/internal/common/cnst"
	"github.com/gbsalud/gbs-inventario/internal/common/dto"
	"github.com/gbsalud/gbs-inventario/internal/i18n"
	"github.com/gbsalud/gbs-inventario/internal/inventory"
)

// ListEquipos returns the equipment visible to the authenticated user,
// optionally narrowed by search and filters.
func (h *Handler) ListEquipos(c *gin.Context) {
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
		h.logger.Error("failed to list equipment", zap.Error(err))
		i18n.Error(i18n.ErrInternalServer).Send(c)
		return
	}

	for _, e := range equipos {
		h.presentEquipo(e)
	}
	c.JSON(http.StatusOK, equipos)
}

// GetEquipo returns one equipment record with all its sub-entities. Records
// outside the user's clinic read as not found.
func (h *Handler) GetEquipo(c *gin.Context) {
	claims := middleware.GetClaims(c)
	equipo, ok := h.fetchScopedEquipo(c, claims)
	if !ok {
		return
	}

	h.presentEquipo(equipo)
	c.JSON(http.StatusOK, equipo)
}

// CreateEquipo creates an equipment record with its delivered parameters and
// optional files. Accepts plain JSON or multipart with a "data" JSON part.
func (h *Handler) CreateEquipo(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		i18n.Error(i18n.ErrUnauthorized).Send(c)
		return
	}

	payload := &dto.EquipoPayload{}
	if err := bindEquipoPayload(c, payload); err != nil {
		i18n.From(i18n.ErrBadRequest.WithParam("Reason", err.Error())).Send(c)
		return
	}

	clinicaID, errResp := h.resolveClinicaID(c.Request.Context(), claims, payload.ClinicaID)
	if errResp != nil {
		errResp.Send(c)
		return
	}

	exists, err := h.db.SerieExists(c.Request.Context(), payload.Serie)
	if err != nil {
		h.logger.Error("failed to check serial", zap.Error(err))
		i18n.Error(i18n.ErrInternalServer).Send(c)
		return
	}
	if exists {
		i18n.Error(i18n.ErrorSerieExists).Send(c)
		return
	}

	parametros, perr := parametrosFromPayload(payload.Parametros)
	if perr != nil {
		perr.Send(c)
		return
	}

	equipo := &database.EquipoBiomedico{ClinicaID: clinicaID}
	if err := applyPayload(equipo, payload); err != nil {
		i18n.From(i18n.ErrBadRequest.WithParam("Reason", err.Error())).Send(c)
		return
	}

	if errResp := h.attachFiles(c, equipo); errResp != nil {
		errResp.Send(c)
		return
	}

	documentos, errResp := h.collectDocumentos(c)
	if errResp != nil {
		errResp.Send(c)
		return
	}

	err = h.db.Transaction(c.Request.Context(), func(ctx context.Context) error {
		if err := h.db.CreateEquipo(ctx, equipo); err != nil {
			return err
		}
		if len(parametros) > 0 {
			if err := h.db.ReplaceParametros(ctx, equipo.ID, parametros); err != nil {
				return err
			}
		}
		for i := range documentos {
			documentos[i].EquipoID = equipo.ID
			if err := h.db.AddDocumento(ctx, &documentos[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		h.logger.Error("failed to create equipment", zap.Error(err))
		i18n.Error(i18n.ErrorDataIntegrity).Send(c)
		return
	}

	h.logger.Info("equipment created",
		zap.Uint("id", equipo.ID),
		zap.String("hoja_vida_id", equipo.HojaVidaID),
		zap.Uint("clinica_id", equipo.ClinicaID))

	created, err := h.db.GetEquipoByID(c.Request.Context(), equipo.ID)
	if err != nil {
		i18n.Error(i18n.ErrInternalServer).Send(c)
		return
	}
	h.presentEquipo(created)
	i18n.Created(i18n.SuccessEquipoCreado).WithPayload(created).Send(c)
}

// UpdateEquipo updates an equipment record. PUT replaces the record; PATCH
// only overwrites the supplied fields. Either way the payload must carry a
// motivo_cambio, which is recorded in the change history.
func (h *Handler) UpdateEquipo(c *gin.Context) {
	claims := middleware.GetClaims(c)
	equipo, ok := h.fetchScopedEquipo(c, claims)
	if !ok {
		return
	}

	payload := &dto.EquipoPayload{}
	if c.Request.Method == http.MethodPatch {
		// Prefill from the stored record so absent fields keep their
		// current value when the body is merged on top.
		payload = payloadFromEquipo(equipo)
	}
	if err := bindEquipoPayload(c, payload); err != nil {
		i18n.From(i18n.ErrBadRequest.WithParam("Reason", err.Error())).Send(c)
		return
	}

	if strings.TrimSpace(payload.MotivoCambio) == "" {
		i18n.Error(i18n.ErrorMotivoCambioRequired).Send(c)
		return
	}

	if payload.Serie != equipo.Serie {
		exists, err := h.db.SerieExists(c.Request.Context(), payload.Serie)
		if err != nil {
			h.logger.Error("failed to check serial", zap.Error(err))
			i18n.Error(i18n.ErrInternalServer).Send(c)
			return
		}
		if exists {
			i18n.Error(i18n.ErrorSerieExists).Send(c)
			return
		}
	}

	parametros, perr := parametrosFromPayload(payload.Parametros)
	if perr != nil {
		perr.Send(c)
		return
	}

	if err := applyPayload(equipo, payload); err != nil {
		i18n.From(i18n.ErrBadRequest.WithParam("Reason", err.Error())).Send(c)
		return
	}

	if errResp := h.attachFiles(c, equipo); errResp != nil {
		errResp.Send(c)
		return
	}

	documentos, errResp := h.collectDocumentos(c)
	if errResp != nil {
		errResp.Send(c)
		return
	}

	historial := &database.HistorialCambios{
		EquipoID:     equipo.ID,
		UsuarioID:    &claims.UserID,
		MotivoCambio: payload.MotivoCambio,
	}

	err := h.db.Transaction(c.Request.Context(), func(ctx context.Context) error {
		if err := h.db.SaveEquipo(ctx, equipo); err != nil {
			return err
		}
		if err := h.db.ReplaceParametros(ctx, equipo.ID, parametros); err != nil {
			return err
		}
		for i := range documentos {
			documentos[i].EquipoID = equipo.ID
			if err := h.db.AddDocumento(ctx, &documentos[i]); err != nil {
				return err
			}
		}
		return h.db.AppendHistorial(ctx, historial)
	})
	if err != nil {
		h.logger.Error("failed to update equipment", zap.Uint("id", equipo.ID), zap.Error(err))
		i18n.Error(i18n.ErrorDataIntegrity).Send(c)
		return
	}

	updated, err := h.db.GetEquipoByID(c.Request.Context(), equipo.ID)
	if err != nil {
		i18n.Error(i18n.ErrInternalServer).Send(c)
		return
	}
	h.presentEquipo(updated)
	i18n.Success(i18n.SuccessEquipoActualizado).WithPayload(updated).Send(c)
}

// CheckDuplicado reports whether a similar equipment (same name, brand and
// model) already exists in the target clinic. Advisory only.
func (h *Handler) CheckDuplicado(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		i18n.Error(i18n.ErrUnauthorized).Send(c)
		return
	}

	var req dto.DuplicadoCheckRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		i18n.From(i18n.ErrBadRequest.WithParam("Reason", err.Error())).Send(c)
		return
	}

	clinicaID, errResp := h.resolveClinicaID(c.Request.Context(), claims, req.ClinicaID)
	if errResp != nil {
		errResp.Send(c)
		return
	}

	match, err := h.db.FindDuplicado(c.Request.Context(), clinicaID, req.NombreEquipo, req.Marca, req.Modelo)
	if err != nil {
		h.logger.Error("failed to check duplicate", zap.Error(err))
		i18n.Error(i18n.ErrInternalServer).Send(c)
		return
	}

	resp := dto.DuplicadoCheckResponse{Duplicado: match != nil}
	if match != nil {
		h.presentEquipo(match)
		resp.Equipo = match
	}
	c.JSON(http.StatusOK, resp)
}

// fetchScopedEquipo loads the equipment named by the :id path param and
// enforces tenant visibility. Out-of-scope records answer 404, never 403.
func (h *Handler) fetchScopedEquipo(c *gin.Context, claims *jwt.Claims) (*database.EquipoBiomedico, bool) {
	if claims == nil {
		i18n.Error(i18n.ErrUnauthorized).Send(c)
		return nil, false
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		i18n.Error(i18n.ErrorEquipoNotFound).Send(c)
		return nil, false
	}

	equipo, err := h.db.GetEquipoByID(c.Request.Context(), uint(id))
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			h.logger.Error("failed to load equipment", zap.Uint64("id", id), zap.Error(err))
		}
		i18n.Error(i18n.ErrorEquipoNotFound).Send(c)
		return nil, false
	}

	if !claims.IsSuperuser {
		if claims.ClinicaID == nil || equipo.ClinicaID != *claims.ClinicaID {
			i18n.Error(i18n.ErrorEquipoNotFound).Send(c)
			return nil, false
		}
	}

	return equipo, true
}

// resolveClinicaID decides which clinic an operation targets. Superusers may
// name any clinic and fall back to the oldest one; everyone else is pinned
// to their own.
func (h *Handler) resolveClinicaID(ctx context.Context, claims *jwt.Claims, requested *uint) (uint, *i18n.ErrorResponse) {
	if !claims.IsSuperuser {
		if claims.ClinicaID == nil {
			return 0, i18n.Error(i18n.ErrorClinicaRequired)
		}
		return *claims.ClinicaID, nil
	}

	if requested != nil {
		if _, err := h.db.GetClinicaByID(ctx, *requested); err != nil {
			return 0, i18n.Error(i18n.ErrorClinicaNotFound)
		}
		return *requested, nil
	}

	first, err := h.db.FirstClinica(ctx)
	if err != nil {
		h.logger.Error("failed to resolve fallback clinic", zap.Error(err))
		return 0, i18n.Error(i18n.ErrInternalServer)
	}
	if first == nil {
		return 0, i18n.Error(i18n.ErrorClinicaUnresolved)
	}
	return first.ID, nil
}

// attachFiles stores the optional foto_equipo and factura file parts.
func (h *Handler) attachFiles(c *gin.Context, equipo *database.EquipoBiomedico) *i18n.ErrorResponse {
	if !isMultipart(c) {
		return nil
	}

	if fh, err := c.FormFile("foto_equipo"); err == nil {
		name, serr := h.saveUpload(c.Request.Context(), cnst.MediaFotosEquipos, fh)
		if serr != nil {
			return i18n.Error(i18n.ErrInternalServer)
		}
		equipo.FotoEquipo = name
	}

	if fh, err := c.FormFile("factura"); err == nil {
		name, serr := h.saveUpload(c.Request.Context(), cnst.MediaFacturas, fh)
		if serr != nil {
			return i18n.Error(i18n.ErrInternalServer)
		}
		equipo.Factura = name
	}

	return nil
}

// collectDocumentos stores the optional document file parts: parallel
// "nombres" and "archivos" multipart fields, paired by position.
func (h *Handler) collectDocumentos(c *gin.Context) ([]database.DocumentoAdjunto, *i18n.ErrorResponse) {
	if !isMultipart(c) {
		return nil, nil
	}

	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil
	}

	nombres := form.Value["nombres"]
	archivos := form.File["archivos"]
	if len(archivos) == 0 {
		return nil, nil
	}
	if len(nombres) != len(archivos) {
		return nil, i18n.From(i18n.ErrBadRequest.WithParam("Reason", "nombres y archivos no coinciden"))
	}

	docs := make([]database.DocumentoAdjunto, 0, len(archivos))
	for i, fh := range archivos {
		stored, err := h.saveUpload(c.Request.Context(), cnst.MediaDocumentosEquipos, fh)
		if err != nil {
			return nil, i18n.Error(i18n.ErrInternalServer)
		}
		nombre := strings.TrimSpace(nombres[i])
		if nombre == "" {
			nombre = fh.Filename
		}
		docs = append(docs, database.DocumentoAdjunto{Nombre: nombre, Archivo: stored})
	}
	return docs, nil
}

func (h *Handler) saveUpload(ctx context.Context, category string, fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	name, err := h.storage.Save(ctx, category, fh.Filename, f)
	if err != nil {
		h.logger.Error("failed to store upload",
			zap.String("category", category),
			zap.String("filename", fh.Filename),
			zap.Error(err))
		return "", err
	}
	return name, nil
}

// presentEquipo rewrites stored file names into public URLs for responses.
func (h *Handler) presentEquipo(e *database.EquipoBiomedico) {
	e.FotoEquipo = h.storage.URL(e.FotoEquipo)
	e.Factura = h.storage.URL(e.Factura)
	for i := range e.Documentos {
		e.Documentos[i].Archivo = h.storage.URL(e.Documentos[i].Archivo)
	}
}

func scopeFromClaims(claims *jwt.Claims) database.Scope {
	scope := database.Scope{IsSuperuser: claims.IsSuperuser}
	if claims.ClinicaID != nil {
		scope.ClinicaID = *claims.ClinicaID
	}
	return scope
}

func isMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), "multipart/form-data")
}

// bindEquipoPayload reads an equipment payload from a JSON body or from the
// "data" part of a multipart request, merging on top of whatever the caller
// prefilled in payload.
func bindEquipoPayload(c *gin.Context, payload *dto.EquipoPayload) error {
	if isMultipart(c) {
		data := c.PostForm("data")
		if data == "" {
			return errors.New("falta el campo data")
		}
		if err := json.Unmarshal([]byte(data), payload); err != nil {
			return err
		}
		if strings.TrimSpace(payload.NombreEquipo) == "" || strings.TrimSpace(payload.Serie) == "" {
			return errors.New("nombre_equipo y serie son obligatorios")
		}
		return nil
	}

	return c.ShouldBindJSON(payload)
}

// payloadFromEquipo renders the stored record back into payload form, the
// starting point for a partial update merge.
func payloadFromEquipo(e *database.EquipoBiomedico) *dto.EquipoPayload {
	aplica := e.RegistroSanitarioAplica
	vidaUtil := e.VidaUtilAnios
	frecMant := e.FrecuenciaMantenimientoMeses

	fecha := ""
	if e.FechaAdquisicion != nil {
		fecha = e.FechaAdquisicion.Format("2006-01-02")
	}

	parametros := make([]dto.ParametroPayload, 0, len(e.Parametros))
	for _, p := range e.Parametros {
		parametros = append(parametros, dto.ParametroPayload{
			Parametro: string(p.Parametro),
			RangoMin:  p.RangoMin,
			RangoMax:  p.RangoMax,
		})
	}

	return &dto.EquipoPayload{
		NombreEquipo:            e.NombreEquipo,
		Marca:                   e.Marca,
		Modelo:                  e.Modelo,
		Serie:                   e.Serie,
		CodigoInterno:           e.CodigoInterno,
		AreaServicio:            e.AreaServicio,
		Ubicacion:               e.Ubicacion,
		RegistroSanitarioAplica: &aplica,
		RegistroSanitario:       e.RegistroSanitario,
		ClasificacionRiesgo:     string(e.ClasificacionRiesgo),
		ClasificacionUso:        string(e.ClasificacionUso),

		FechaAdquisicion: fecha,
		FormaAdquisicion: string(e.FormaAdquisicion),
		Proveedor:        e.Proveedor,
		PrecioNoRegistra: e.PrecioNoRegistra,
		Precio:           e.Precio,
		GarantiaAnios:    e.GarantiaAnios,
		VidaUtilAnios:    &vidaUtil,

		VoltajeVdc:    e.VoltajeVdc,
		VoltajeVdcNA:  e.VoltajeVdcNA,
		VoltajeVac:    e.VoltajeVac,
		VoltajeVacNA:  e.VoltajeVacNA,
		Corriente:     e.Corriente,
		CorrienteNA:   e.CorrienteNA,
		Potencia:      e.Potencia,
		PotenciaNA:    e.PotenciaNA,
		Frecuencia:    e.Frecuencia,
		FrecuenciaNA:  e.FrecuenciaNA,
		Temperatura:   e.Temperatura,
		TemperaturaNA: e.TemperaturaNA,
		Peso:          e.Peso,
		PesoNA:        e.PesoNA,

		TecnologiaPredominante: string(e.TecnologiaPredominante),
		FuenteNeumatica:        e.FuenteNeumatica,
		FuenteHidraulica:       e.FuenteHidraulica,
		FuenteCombustion:       e.FuenteCombustion,

		FrecuenciaMantenimientoMeses: &frecMant,
		RequiereCalibracion:          e.RequiereCalibracion,
		FrecuenciaCalibracionMeses:   e.FrecuenciaCalibracionMeses,
		EstadoActual:                 string(e.EstadoActual),

		Parametros: parametros,
	}
}

// parametrosFromPayload validates delivered parameters: known types only,
// no repeats.
func parametrosFromPayload(in []dto.ParametroPayload) ([]database.ParametroEntregado, *i18n.ErrorResponse) {
	seen := make(map[inventory.TipoParametro]bool, len(in))
	out := make([]database.ParametroEntregado, 0, len(in))
	for _, p := range in {
		tipo := inventory.TipoParametro(p.Parametro)
		if !tipo.Valid() {
			return nil, i18n.From(i18n.ErrBadRequest.WithParam("Reason", "parámetro desconocido: "+p.Parametro))
		}
		if seen[tipo] {
			return nil, i18n.Error(i18n.ErrorDuplicateParams)
		}
		seen[tipo] = true
		out = append(out, database.ParametroEntregado{
			Parametro: tipo,
			RangoMin:  p.RangoMin,
			RangoMax:  p.RangoMax,
		})
	}
	return out, nil
}

// applyPayload copies the writable payload fields onto the model, filling
// the institutional defaults for blanks.
func applyPayload(e *database.EquipoBiomedico, p *dto.EquipoPayload) error {
	e.NombreEquipo = strings.TrimSpace(p.NombreEquipo)
	e.Marca = strings.TrimSpace(p.Marca)
	e.Modelo = strings.TrimSpace(p.Modelo)
	e.Serie = strings.TrimSpace(p.Serie)
	e.CodigoInterno = strings.TrimSpace(p.CodigoInterno)

	e.AreaServicio = strings.TrimSpace(p.AreaServicio)
	if e.AreaServicio == "" {
		e.AreaServicio = "General"
	}
	e.Ubicacion = strings.TrimSpace(p.Ubicacion)
	if e.Ubicacion == "" {
		e.Ubicacion = "No especificada"
	}

	if p.RegistroSanitarioAplica != nil {
		e.RegistroSanitarioAplica = *p.RegistroSanitarioAplica
	} else {
		e.RegistroSanitarioAplica = true
	}
	e.RegistroSanitario = strings.TrimSpace(p.RegistroSanitario)
	if !e.RegistroSanitarioAplica && e.RegistroSanitario == "" {
		e.RegistroSanitario = "N/A"
	}

	e.ClasificacionRiesgo = inventory.ClasificacionRiesgo(p.ClasificacionRiesgo)
	e.ClasificacionUso = enumOrDefault(p.ClasificacionUso, inventory.UsoDiagnostico)
	e.FormaAdquisicion = inventory.FormaAdquisicion(defaultStr(p.FormaAdquisicion, string(inventory.AdquisicionCompraNuevo)))
	e.TecnologiaPredominante = inventory.TecnologiaPredominante(defaultStr(p.TecnologiaPredominante, string(inventory.TecnologiaElectronico)))
	e.EstadoActual = inventory.EstadoActual(defaultStr(p.EstadoActual, string(inventory.EstadoFuncional)))

	if p.FechaAdquisicion != "" {
		fecha, err := time.Parse("2006-01-02", p.FechaAdquisicion)
		if err != nil {
			return errors.New("fecha_adquisicion inválida, se espera YYYY-MM-DD")
		}
		e.FechaAdquisicion = &fecha
	} else {
		e.FechaAdquisicion = nil
	}

	e.Proveedor = strings.TrimSpace(p.Proveedor)
	e.PrecioNoRegistra = p.PrecioNoRegistra
	e.Precio = p.Precio
	if e.PrecioNoRegistra && e.Precio == nil {
		na := "N/A"
		e.Precio = &na
	}
	e.GarantiaAnios = p.GarantiaAnios
	if p.VidaUtilAnios != nil {
		e.VidaUtilAnios = *p.VidaUtilAnios
	} else if e.VidaUtilAnios == 0 {
		e.VidaUtilAnios = 10
	}

	e.VoltajeVdc, e.VoltajeVdcNA = technicalField(p.VoltajeVdc, p.VoltajeVdcNA)
	e.VoltajeVac, e.VoltajeVacNA = technicalField(p.VoltajeVac, p.VoltajeVacNA)
	e.Corriente, e.CorrienteNA = technicalField(p.Corriente, p.CorrienteNA)
	e.Potencia, e.PotenciaNA = technicalField(p.Potencia, p.PotenciaNA)
	e.Frecuencia, e.FrecuenciaNA = technicalField(p.Frecuencia, p.FrecuenciaNA)
	e.Temperatura, e.TemperaturaNA = technicalField(p.Temperatura, p.TemperaturaNA)
	e.Peso, e.PesoNA = technicalField(p.Peso, p.PesoNA)

	e.FuenteNeumatica = p.FuenteNeumatica
	e.FuenteHidraulica = p.FuenteHidraulica
	e.FuenteCombustion = p.FuenteCombustion

	if p.FrecuenciaMantenimientoMeses != nil {
		e.FrecuenciaMantenimientoMeses = *p.FrecuenciaMantenimientoMeses
	} else if e.FrecuenciaMantenimientoMeses == 0 {
		e.FrecuenciaMantenimientoMeses = 6
	}

	e.RequiereCalibracion = p.RequiereCalibracion
	e.FrecuenciaCalibracionMeses = p.FrecuenciaCalibracionMeses
	if !e.RequiereCalibracion && e.FrecuenciaCalibracionMeses == nil {
		nr := "no requiere"
		e.FrecuenciaCalibracionMeses = &nr
	}

	return nil
}

// technicalField normalizes a technical value with its "no aplica" flag: a
// flagged field stores N/A, an unflagged empty value stays null.
func technicalField(v *string, na bool) (*string, bool) {
	if na {
		s := "N/A"
		return &s, true
	}
	if v == nil || strings.TrimSpace(*v) == "" {
		return nil, false
	}
	trimmed := strings.TrimSpace(*v)
	return &trimmed, false
}

func enumOrDefault(v string, def inventory.ClasificacionUso) inventory.ClasificacionUso {
	if v == "" {
		return def
	}
	return inventory.ClasificacionUso(v)
}

func defaultStr(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

// equipoFilterFromQuery maps the request query string onto an EquipoFilter.
// Multi-value filters repeat the query key.
func equipoFilterFromQuery(c *gin.Context, claims *jwt.Claims) (database.EquipoFilter, error) {
	filter := database.EquipoFilter{
		Search:              strings.TrimSpace(c.Query("search")),
		NombreEquipo:        c.QueryArray("nombre_equipo"),
		Modelo:              c.QueryArray("modelo"),
		Marca:               c.QueryArray("marca"),
		AreaServicio:        c.QueryArray("area_servicio"),
		ClasificacionUso:    c.QueryArray("clasificacion_uso"),
		ClasificacionRiesgo: c.QueryArray("clasificacion_riesgo"),
		Ubicacion:           c.QueryArray("ubicacion"),
	}

	// "true" means true; any other value filters on false.
	if v := c.Query("requiere_calibracion"); v != "" {
		b := strings.EqualFold(v, "true")
		filter.RequiereCalibracion = &b
	}

	if v := c.Query("clinica_id"); v != "" && claims.IsSuperuser {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return filter, errors.New("clinica_id inválido")
		}
		cid := uint(id)
		filter.ClinicaID = &cid
	}

	return filter, nil
}
