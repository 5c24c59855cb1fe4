package main

import (
	"context"

	"go-hris-admin/internal/app"
	"go-hris-admin/internal/bootstrap"
	"go-hris-admin/internal/config"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := bootstrap.NewLogger(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	router, closeDB, err := app.BuildMockAPI(context.Background(), cfg, logger)
	if err != nil {
		logger.Fatal("build mock api failed", zap.Error(err))
	}
	defer closeDB()

	bootstrap.StartHTTPServer(
		router,
		bootstrap.DefaultServerConfig("mockapi", cfg.Server.MockPort),
		bootstrap.NewStdoutAuditLogger(),
	)
}
