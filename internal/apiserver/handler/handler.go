// Package handler implements the HTTP handlers of the inventory API server.
package handler

import (
	"go.uber.org/zap"

	"github.com/gbsalud/gbs-inventario/internal/apiserver/database"
	"github.com/gbsalud/gbs-inventario/internal/auth/jwt"
	"github.com/gbsalud/gbs-inventario/internal/common/config"
	"github.com/gbsalud/gbs-inventario/internal/storage"
)

// Handler holds the shared dependencies of all API handlers.
type Handler struct {
	db         database.Database
	jwtService *jwt.Service
	storage    storage.Storage
	logger     *zap.Logger
	cfg        *config.APIServerConfig
}

// NewHandler creates a new API handler.
func NewHandler(db database.Database, jwtService *jwt.Service, store storage.Storage, logger *zap.Logger, cfg *config.APIServerConfig) *Handler {
	return &Handler{
		db:         db,
		jwtService: jwtService,
		storage:    store,
		logger:     logger,
		cfg:        cfg,
	}
}
