package handler

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/gbsalud/gbs-inventario/internal/apiserver/middleware"
	"github.com/gbsalud/gbs-inventario/internal/i18n"
)

// UploadDocumento attaches one or more documents to an equipment record.
// The multipart form pairs the "nombres" fields with the "archivos" file
// parts by position.
func (h *Handler) UploadDocumento(c *gin.Context) {
	claims := middleware.GetClaims(c)
	equipo, ok := h.fetchScopedEquipo(c, claims)
	if !ok {
		return
	}

	documentos, errResp := h.collectDocumentos(c)
	if errResp != nil {
		errResp.Send(c)
		return
	}
	if len(documentos) == 0 {
		i18n.Error(i18n.ErrorArchivoRequired).Send(c)
		return
	}

	for i := range documentos {
		documentos[i].EquipoID = equipo.ID
		if err := h.db.AddDocumento(c.Request.Context(), &documentos[i]); err != nil {
			h.logger.Error("failed to attach document",
				zap.Uint("equipo_id", equipo.ID),
				zap.Error(err))
			i18n.Error(i18n.ErrInternalServer).Send(c)
			return
		}
		documentos[i].Archivo = h.storage.URL(documentos[i].Archivo)
	}

	i18n.Created(i18n.SuccessDocumentoSubido).WithPayload(documentos).Send(c)
}

// DownloadDocumento streams a document's stored file. Unlike the public
// /media tree this goes through tenant scoping, so documents of other
// clinics read as not found.
func (h *Handler) DownloadDocumento(c *gin.Context) {
	claims := middleware.GetClaims(c)
	equipo, ok := h.fetchScopedEquipo(c, claims)
	if !ok {
		return
	}

	docID, err := strconv.ParseUint(c.Param("docId"), 10, 32)
	if err != nil {
		i18n.Error(i18n.ErrorDocumentoNotFound).Send(c)
		return
	}

	doc, err := h.db.GetDocumento(c.Request.Context(), equipo.ID, uint(docID))
	if err != nil {
		i18n.Error(i18n.ErrorDocumentoNotFound).Send(c)
		return
	}

	f, err := h.storage.Open(c.Request.Context(), doc.Archivo)
	if err != nil {
		h.logger.Error("failed to open stored file",
			zap.String("archivo", doc.Archivo),
			zap.Error(err))
		i18n.Error(i18n.ErrorDocumentoNotFound).Send(c)
		return
	}
	defer f.Close()

	contentType := mime.TypeByExtension(filepath.Ext(doc.Archivo))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filepath.Base(doc.Archivo)))
	c.Header("Content-Type", contentType)
	c.Status(200)
	if _, err := io.Copy(c.Writer, f); err != nil {
		h.logger.Warn("document download interrupted",
			zap.String("archivo", doc.Archivo),
			zap.Error(err))
	}
}

// DeleteDocumento removes a document from an equipment record, including
// its stored file.
func (h *Handler) DeleteDocumento(c *gin.Context) {
	claims := middleware.GetClaims(c)
	equipo, ok := h.fetchScopedEquipo(c, claims)
	if !ok {
		return
	}

	docID, err := strconv.ParseUint(c.Param("docId"), 10, 32)
	if err != nil {
		i18n.Error(i18n.ErrorDocumentoNotFound).Send(c)
		return
	}

	doc, err := h.db.GetDocumento(c.Request.Context(), equipo.ID, uint(docID))
	if err != nil {
		i18n.Error(i18n.ErrorDocumentoNotFound).Send(c)
		return
	}

	if err := h.db.DeleteDocumento(c.Request.Context(), equipo.ID, doc.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			i18n.Error(i18n.ErrorDocumentoNotFound).Send(c)
			return
		}
		h.logger.Error("failed to delete document",
			zap.Uint("equipo_id", equipo.ID),
			zap.Uint64("documento_id", docID),
			zap.Error(err))
		i18n.Error(i18n.ErrInternalServer).Send(c)
		return
	}

	// The row is gone; a leftover file is only noise.
	if err := h.storage.Delete(c.Request.Context(), doc.Archivo); err != nil {
		h.logger.Warn("failed to remove stored file",
			zap.String("archivo", doc.Archivo),
			zap.Error(err))
	}

	i18n.Success(i18n.SuccessDocumentoEliminado).Send(c)
}
