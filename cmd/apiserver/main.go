package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gbsalud/gbs-inventario/internal/apiserver/database"
	"github.com/gbsalud/gbs-inventario/internal/apiserver/handler"
	"github.com/gbsalud/gbs-inventario/internal/apiserver/middleware"
	"github.com/gbsalud/gbs-inventario/internal/auth/jwt"
	"github.com/gbsalud/gbs-inventario/internal/common/config"
	"github.com/gbsalud/gbs-inventario/internal/i18n"
	"github.com/gbsalud/gbs-inventario/internal/storage"
	"github.com/gbsalud/gbs-inventario/pkg/logger"
	"github.com/gbsalud/gbs-inventario/pkg/version"
)

var (
	configPath string

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of apiserver",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("apiserver version %s\n", version.Detailed())
		},
	}

	rootCmd = &cobra.Command{
		Use:   "apiserver",
		Short: "Biomedical equipment inventory API server",
		Long:  `API server for managing biomedical equipment inventory (hojas de vida) across clinics`,
		Run: func(cmd *cobra.Command, args []string) {
			run()
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "conf", "configs/apiserver.yaml", "path to configuration file")
	rootCmd.AddCommand(versionCmd)
}

func run() {
	cfg, cfgPath, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("failed to load configuration from %s: %v", cfgPath, err)
	}

	zapLogger, err := logger.NewLogger(&cfg.Logger)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		_ = zapLogger.Sync()
	}()

	zapLogger.Info("starting apiserver",
		zap.String("version", version.Get()),
		zap.String("config", cfgPath))

	if err := i18n.InitTranslator(cfg.I18n.Path); err != nil {
		zapLogger.Warn("failed to load translations, message ids will be returned raw",
			zap.String("path", cfg.I18n.Path),
			zap.Error(err))
	}

	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		zapLogger.Fatal("failed to initialize database",
			zap.String("type", cfg.Database.Type),
			zap.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()

	if err := database.EnsureSuperAdmin(context.Background(), db, &cfg.SuperAdmin); err != nil {
		zapLogger.Fatal("failed to ensure super admin", zap.Error(err))
	}

	store, err := storage.NewDiskStorage(zapLogger.Named("storage"), cfg.Media.Path, cfg.Media.BaseURL)
	if err != nil {
		zapLogger.Fatal("failed to initialize media storage",
			zap.String("path", cfg.Media.Path),
			zap.Error(err))
	}

	jwtService, err := jwt.NewService(jwt.Config{
		SecretKey:       cfg.JWT.SecretKey,
		Duration:        cfg.JWT.Duration,
		RefreshDuration: cfg.JWT.RefreshDuration,
	})
	if err != nil {
		zapLogger.Fatal("failed to initialize JWT service", zap.Error(err))
	}

	h := handler.NewHandler(db, jwtService, store, zapLogger.Named("handler"), cfg)

	router := gin.Default()
	registerRoutes(router, h, jwtService, store)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	zapLogger.Info("listening", zap.String("addr", addr))
	if err := router.Run(addr); err != nil {
		zapLogger.Fatal("server terminated", zap.Error(err))
	}
}

func registerRoutes(router *gin.Engine, h *handler.Handler, jwtService *jwt.Service, store storage.Storage) {
	// Uploaded media.
	if disk, ok := store.(*storage.DiskStorage); ok {
		router.Static("/media", disk.BaseDir())
	}

	api := router.Group("/api")

	// Token endpoints are unauthenticated.
	api.POST("/token/", h.Login)
	api.POST("/token/refresh/", h.RefreshToken)

	authed := api.Group("", middleware.JWTAuthMiddleware(jwtService))

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
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
