package handler

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gbsalud/gbs-inventario/internal/apiserver/database"
	"github.com/gbsalud/gbs-inventario/internal/inventory"
)

func seedEquipo(t *testing.T, env *testEnv, clinicaID uint, serie string) *database.EquipoBiomedico {
	t.Helper()
	e := &database.EquipoBiomedico{ClinicaID: clinicaID, NombreEquipo: "Equipo", Serie: serie}
	require.NoError(t, env.db.CreateEquipo(nil, e))
	return e
}

func TestUploadDocumento(t *testing.T) {
	env := newTestEnv(t)
	clinica := env.seedClinica("Clinica A")
	user := env.seedUser("ana@clinica-a.com", "secreta12", inventory.RolAdminBiomedico, &clinica.ID, false)
	equipo := seedEquipo(t, env, clinica.ID, "SN-1")

	body, contentType := multipartBody(t,
		map[string][]string{"nombres": {"Manual", "Garantía"}},
		[]filePart{
			{field: "archivos", filename: "manual.pdf", content: []byte("a")},
			{field: "archivos", filename: "garantia.pdf", content: []byte("b")},
		})

	w := env.do("POST", fmt.Sprintf("/api/equipos/%d/upload_documento/", equipo.ID), env.token(user), body, contentType)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	assert.Len(t, env.db.documentos, 2)
	assert.Len(t, env.store.files, 2)
}

func TestUploadDocumento_NoFiles(t *testing.T) {
	env := newTestEnv(t)
	clinica := env.seedClinica("Clinica A")
	user := env.seedUser("ana@clinica-a.com", "secreta12", inventory.RolAdminBiomedico, &clinica.ID, false)
	equipo := seedEquipo(t, env, clinica.ID, "SN-1")

	body, contentType := multipartBody(t, map[string][]string{"nombres": {"Manual"}}, nil)
	w := env.do("POST", fmt.Sprintf("/api/equipos/%d/upload_documento/", equipo.ID), env.token(user), body, contentType)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadDocumento_MismatchedPairs(t *testing.T) {
	env := newTestEnv(t)
	clinica := env.seedClinica("Clinica A")
	user := env.seedUser("ana@clinica-a.com", "secreta12", inventory.RolAdminBiomedico, &clinica.ID, false)
	equipo := seedEquipo(t, env, clinica.ID, "SN-1")

	body, contentType := multipartBody(t,
		map[string][]string{"nombres": {"Manual"}},
		[]filePart{
			{field: "archivos", filename: "manual.pdf", content: []byte("a")},
			{field: "archivos", filename: "extra.pdf", content: []byte("b")},
		})

	w := env.do("POST", fmt.Sprintf("/api/equipos/%d/upload_documento/", equipo.ID), env.token(user), body, contentType)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadDocumento_OtherClinic404(t *testing.T) {
	env := newTestEnv(t)
	a := env.seedClinica("Clinica A")
	b := env.seedClinica("Clinica B")
	intruder := env.seedUser("eva@clinica-b.com", "secreta12", inventory.RolAdminBiomedico, &b.ID, false)
	equipo := seedEquipo(t, env, a.ID, "SN-1")

	body, contentType := multipartBody(t,
		map[string][]string{"nombres": {"Manual"}},
		[]filePart{{field: "archivos", filename: "manual.pdf", content: []byte("a")}})

	w := env.do("POST", fmt.Sprintf("/api/equipos/%d/upload_documento/", equipo.ID), env.token(intruder), body, contentType)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDownloadDocumento(t *testing.T) {
	env := newTestEnv(t)
	clinica := env.seedClinica("Clinica A")
	user := env.seedUser("ana@clinica-a.com", "secreta12", inventory.RolAdminBiomedico, &clinica.ID, false)
	equipo := seedEquipo(t, env, clinica.ID, "SN-1")

	stored, err := env.store.Save(nil, "documentos_equipos", "manual.pdf", strings.NewReader("contenido"))
	require.NoError(t, err)
	doc := &database.DocumentoAdjunto{EquipoID: equipo.ID, Nombre: "Manual", Archivo: stored}
	require.NoError(t, env.db.AddDocumento(nil, doc))

	w := env.do("GET", fmt.Sprintf("/api/equipos/%d/documentos/%d/download/", equipo.ID, doc.ID), env.token(user), nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "contenido", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
}

func TestDownloadDocumento_OtherClinic404(t *testing.T) {
	env := newTestEnv(t)
	a := env.seedClinica("Clinica A")
	b := env.seedClinica("Clinica B")
	intruder := env.seedUser("eva@clinica-b.com", "secreta12", inventory.RolAdminBiomedico, &b.ID, false)
	equipo := seedEquipo(t, env, a.ID, "SN-1")

	doc := &database.DocumentoAdjunto{EquipoID: equipo.ID, Nombre: "Manual", Archivo: "documentos_equipos/x.pdf"}
	require.NoError(t, env.db.AddDocumento(nil, doc))

	w := env.do("GET", fmt.Sprintf("/api/equipos/%d/documentos/%d/download/", equipo.ID, doc.ID), env.token(intruder), nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDownloadDocumento_NotFound(t *testing.T) {
	env := newTestEnv(t)
	clinica := env.seedClinica("Clinica A")
	user := env.seedUser("ana@clinica-a.com", "secreta12", inventory.RolAdminBiomedico, &clinica.ID, false)
	equipo := seedEquipo(t, env, clinica.ID, "SN-1")

	w := env.do("GET", fmt.Sprintf("/api/equipos/%d/documentos/999/download/", equipo.ID), env.token(user), nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteDocumento(t *testing.T) {
	env := newTestEnv(t)
	clinica := env.seedClinica("Clinica A")
	user := env.seedUser("ana@clinica-a.com", "secreta12", inventory.RolAdminBiomedico, &clinica.ID, false)
	equipo := seedEquipo(t, env, clinica.ID, "SN-1")

	stored, err := env.store.Save(nil, "documentos_equipos", "manual.pdf", strings.NewReader("contenido"))
	require.NoError(t, err)
	doc := &database.DocumentoAdjunto{EquipoID: equipo.ID, Nombre: "Manual", Archivo: stored}
	require.NoError(t, env.db.AddDocumento(nil, doc))

	w := env.do("DELETE", fmt.Sprintf("/api/equipos/%d/delete_documento/%d/", equipo.ID, doc.ID), env.token(user), nil, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	assert.Empty(t, env.db.documentos)
	assert.Empty(t, env.store.files)
}

func TestDeleteDocumento_NotFound(t *testing.T) {
	env := newTestEnv(t)
	clinica := env.seedClinica("Clinica A")
	user := env.seedUser("ana@clinica-a.com", "secreta12", inventory.RolAdminBiomedico, &clinica.ID, false)
	equipo := seedEquipo(t, env, clinica.ID, "SN-1")

	w := env.do("DELETE", fmt.Sprintf("/api/equipos/%d/delete_documento/999/", equipo.ID), env.token(user), nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteDocumento_WrongEquipo(t *testing.T) {
	env := newTestEnv(t)
	clinica := env.seedClinica("Clinica A")
	user := env.seedUser("ana@clinica-a.com", "secreta12", inventory.RolAdminBiomedico, &clinica.ID, false)
	e1 := seedEquipo(t, env, clinica.ID, "SN-1")
	e2 := seedEquipo(t, env, clinica.ID, "SN-2")

	doc := &database.DocumentoAdjunto{EquipoID: e1.ID, Nombre: "Manual", Archivo: "documentos_equipos/x.pdf"}
	require.NoError(t, env.db.AddDocumento(nil, doc))

	w := env.do("DELETE", fmt.Sprintf("/api/equipos/%d/delete_documento/%d/", e2.ID, doc.ID), env.token(user), nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Len(t, env.db.documentos, 1)
}
