package main

import (
	"context"

	"go-hris-admin/internal/app"
	"go-hris-admin/internal/bootstrap"
	"go-hris-admin/internal/config"
	"go-hris-admin/internal/shared/apperror"

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

	apperror.Init()

	// build dependency + routes
	console, err := app.BuildConsole(context.Background(), cfg, logger)
	if err != nil {
		logger.Fatal("build console failed", zap.Error(err))
	}
	defer console.Close()

	bootstrap.StartHTTPServer(
		console.Router,
		bootstrap.DefaultServerConfig("console", cfg.Server.Port),
		bootstrap.NewStdoutAuditLogger(),
	)
}
