package app

import (
	"context"

	"go-hris-admin/internal/config"
	"go-hris-admin/internal/middleware"
	"go-hris-admin/internal/mockapi"
	"go-hris-admin/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildMockAPI serves the CRUD backend under /api. It uses postgres when
// DB_HOST is set and process memory otherwise. The returned func closes the
// database.
func BuildMockAPI(ctx context.Context, cfg config.Config, logger *zap.Logger) (*gin.Engine, func(), error) {
	log := logger.Named("app.mockapi")
	closeFn := func() {}

	var store mockapi.Store
	if dsn := cfg.Database.DSN(); dsn != "" {
		gormDB, err := connection.ConnectGORMWithRetry(ctx, dsn, connectRetries, logger)
		if err != nil {
			return nil, closeFn, err
		}
		sqlDB, err := gormDB.DB()
		if err != nil {
			return nil, closeFn, err
		}
		closeFn = func() { _ = sqlDB.Close() }

		if err := mockapi.Migrate(ctx, gormDB); err != nil {
			closeFn()
			return nil, func() {}, err
		}
		store = mockapi.NewGormStore(gormDB, logger)
		log.Info("mock api backed by postgres", zap.String("host", cfg.Database.Host))
	} else {
		store = mockapi.NewMemoryStore()
		log.Info("mock api backed by memory")
	}

	if cfg.Mock.Seed {
		if err := mockapi.Seed(ctx, store, log); err != nil {
			closeFn()
			return nil, func() {}, err
		}
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.ContextLogger(logger.Named("http")),
	)
	mockapi.RegisterRoutes(router.Group("/api"), mockapi.NewHandler(store, logger))
	return router, closeFn, nil
}
