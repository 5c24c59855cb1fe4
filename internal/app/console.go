package app

import (
	"context"
	"time"

	"go-hris-admin/internal/config"
	"go-hris-admin/internal/messaging/kafka/producer"
	"go-hris-admin/internal/registry"
	"go-hris-admin/internal/restclient"
	"go-hris-admin/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const connectRetries = 5

// Console is the running admin console. Close releases its connections and
// stops background workers.
type Console struct {
	Router   *gin.Engine
	Registry *registry.Registry
	closers  []func()
}

func (c *Console) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}

func BuildConsole(ctx context.Context, cfg config.Config, logger *zap.Logger) (*Console, error) {
	log := logger.Named("app.console")
	console := &Console{}

	// 1. Setup Infrastructure
	client, err := restclient.NewClient(restclient.Config{
		BaseURL:     cfg.Backend.URL,
		Timeout:     cfg.Backend.Timeout,
		ReadRetries: cfg.Backend.ReadRetries,
		RetryDelay:  cfg.Backend.RetryDelay,
	}, logger)
	if err != nil {
		return nil, err
	}

	deps := ConsoleDeps{
		RateLimit: cfg.Server.RateLimit,
		RateBurst: cfg.Server.RateBurst,
		Logger:    logger,
	}

	if cfg.Redis.Addr != "" {
		rdb, err := connection.ConnectRedisWithRetry(ctx, cfg.Redis.Addr, connectRetries, logger)
		if err != nil {
			return nil, err
		}
		deps.Redis = rdb
		console.closers = append(console.closers, func() { _ = rdb.Close() })
	} else {
		log.Info("REDIS_ADDR not set, idempotency disabled and dashboard baseline kept in memory")
	}

	if cfg.Kafka.Broker != "" {
		writer, err := connection.ConnectKafkaWithRetry(ctx, cfg.Kafka.Broker, connectRetries, logger)
		if err != nil {
			console.Close()
			return nil, err
		}
		publisher := producer.NewPublisher(writer, logger)
		workerCtx, stopWorker := context.WithCancel(context.Background())
		go publisher.RunRetryWorker(workerCtx, 3*time.Second)

		deps.Publisher = publisher
		console.closers = append(console.closers, func() {
			stopWorker()
			_ = writer.Close()
		})
	} else {
		log.Info("KAFKA_BROKER not set, lifecycle events are not published")
	}

	// 2. Load the registry once before serving
	reg := registry.New(registry.RemotesFromClient(client), logger)
	res := reg.Refresh(ctx)
	if len(res.Failed) > 0 {
		log.Warn("initial refresh incomplete", zap.Any("failed", res.Failed))
	}
	deps.Registry = reg

	// 3. Register Modules & Routes
	console.Registry = reg
	console.Router = NewConsoleRouter(deps)
	return console, nil
}
