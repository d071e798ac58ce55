package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gbsalud/gbs-inventario/internal/apiserver/database"
	"github.com/gbsalud/gbs-inventario/internal/apiserver/middleware"
	"github.com/gbsalud/gbs-inventario/internal/auth/jwt"
	"github.com/gbsalud/gbs-inventario/internal/auth/password"
	"github.com/gbsalud/gbs-inventario/internal/common/config"
	"github.com/gbsalud/gbs-inventario/internal/inventory"
)

type testEnv struct {
	t      *testing.T
	router *gin.Engine
	db     *mockDB
	store  *mockStorage
	jwt    *jwt.Service
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := newMockDB()
	store := newMockStorage()
	jwtSvc, err := jwt.NewService(jwt.Config{
		SecretKey:       "this-is-a-very-long-secret-key-for-testing",
		Duration:        time.Hour,
		RefreshDuration: 2 * time.Hour,
	})
	require.NoError(t, err)

	h := NewHandler(db, jwtSvc, store, zap.NewNop(), &config.APIServerConfig{})

	router := gin.New()
	api := router.Group("/api")
	api.POST("/token/", h.Login)
	api.POST("/token/refresh/", h.RefreshToken)

	authed := api.Group("", middleware.JWTAuthMiddleware(jwtSvc))

	auth := authed.Group("/auth")
	auth.GET("/users/me/", h.Me)
	auth.POST("/users/", middleware.RequireSuperuser(), h.Register)

	clinicas := authed.Group("/clinicas", middleware.RequireSuperuser())
	clinicas.GET("/", h.ListClinicas)
	clinicas.POST("/", h.CreateClinica)

	equipos := authed.Group("/equipos")
	equipos.GET("/", h.ListEquipos)
	equipos.POST("/", h.CreateEquipo)
	equipos.GET("/export_to_excel/", h.ExportExcel)
	equipos.POST("/bulk_upload/", h.BulkUpload)
	equipos.GET("/check_duplicate/", h.CheckDuplicado)
	equipos.GET("/:id/", h.GetEquipo)
	equipos.PUT("/:id/", h.UpdateEquipo)
	equipos.PATCH("/:id/", h.UpdateEquipo)
	equipos.POST("/:id/upload_documento/", h.UploadDocumento)
	equipos.GET("/:id/documentos/:docId/download/", h.DownloadDocumento)
	equipos.DELETE("/:id/delete_documento/:docId/", h.DeleteDocumento)

	return &testEnv{t: t, router: router, db: db, store: store, jwt: jwtSvc}
}

func (env *testEnv) seedClinica(nombre string) *database.Clinica {
	env.t.Helper()
	c := &database.Clinica{Nombre: nombre}
	require.NoError(env.t, env.db.CreateClinica(context.Background(), c))
	return c
}

func (env *testEnv) seedUser(email, plain string, rol inventory.Rol, clinicaID *uint, superuser bool) *database.Usuario {
	env.t.Helper()
	hashed, err := password.Hash(plain)
	require.NoError(env.t, err)
	u := &database.Usuario{
		Email:       email,
		Password:    hashed,
		Rol:         rol,
		ClinicaID:   clinicaID,
		IsActive:    true,
		IsSuperuser: superuser,
	}
	require.NoError(env.t, env.db.CreateUsuario(context.Background(), u))
	return u
}

func tokenIdentity(u *database.Usuario) jwt.Identity {
	return jwt.Identity{
		UserID:      u.ID,
		Email:       u.Email,
		Rol:         string(u.Rol),
		ClinicaID:   u.ClinicaID,
		IsSuperuser: u.IsSuperuser,
	}
}

func (env *testEnv) token(u *database.Usuario) string {
	env.t.Helper()
	tok, err := env.jwt.GenerateToken(tokenIdentity(u))
	require.NoError(env.t, err)
	return tok
}

func (env *testEnv) do(method, path, token string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	env.t.Helper()
	req := httptest.NewRequest(method, path, body)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func (env *testEnv) doJSON(method, path, token string, payload any) *httptest.ResponseRecorder {
	env.t.Helper()
	data, err := json.Marshal(payload)
	require.NoError(env.t, err)
	return env.do(method, path, token, bytes.NewReader(data), "application/json")
}

type filePart struct {
	field    string
	filename string
	content  []byte
}

func multipartBody(t *testing.T, fields map[string][]string, files []filePart) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for field, values := range fields {
		for _, v := range values {
			require.NoError(t, mw.WriteField(field, v))
		}
	}
	for _, f := range files {
		part, err := mw.CreateFormFile(f.field, f.filename)
		require.NoError(t, err)
		_, err = part.Write(f.content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
