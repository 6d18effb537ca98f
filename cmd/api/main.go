package main

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/poplandstore/popland-backend/internal/config"
	"github.com/poplandstore/popland-backend/internal/modules/admin"
	"github.com/poplandstore/popland-backend/internal/modules/catalog"
	"github.com/poplandstore/popland-backend/internal/platform/blob"
)

func main() {
	cfg := config.Load()

	var zapConfig zap.Config
	if cfg.Env == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}
	logger, err := zapConfig.Build()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		zap.S().Fatal("open database: ", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		zap.S().Fatal("ping database: ", err)
	}

	blobStore, err := blob.NewMinioStore(cfg.Blob)
	if err != nil {
		zap.S().Fatal("blob store: ", err)
	}

	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	catalogRepo := catalog.NewPostgresRepository(db)
	catalogService := catalog.NewService(catalogRepo)
	catalog.NewHandler(catalogService).RegisterRoutes(router)

	adminRepo := admin.NewPostgresRepository(db)
	adminService := admin.NewService(adminRepo, blobStore)
	admin.NewHandler(adminService).RegisterRoutes(router)

	zap.S().Infof("catalog API listening on :%s", cfg.Port)
	zap.S().Fatal(http.ListenAndServe(":"+cfg.Port, router))
}
