package app

import (
	"context"
	"fmt"
	"time"

	"go-hris-admin/internal/bootstrap"
	"go-hris-admin/internal/config"
	"go-hris-admin/internal/domain"
	"go-hris-admin/internal/events"
	"go-hris-admin/internal/messaging/kafka/consumer"
	"go-hris-admin/internal/restclient"
	"go-hris-admin/internal/shared/connection"

	"go.uber.org/zap"
)

// RunConsumer reads employee lifecycle events until SIGINT or SIGTERM.
func RunConsumer(cfg config.Config, logger *zap.Logger) error {
	log := logger.Named("app.consumer")

	if cfg.Kafka.Broker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	client, err := restclient.NewClient(restclient.Config{
		BaseURL:     cfg.Backend.URL,
		Timeout:     cfg.Backend.Timeout,
		ReadRetries: cfg.Backend.ReadRetries,
		RetryDelay:  cfg.Backend.RetryDelay,
	}, logger)
	if err != nil {
		return err
	}
	salaries := restclient.NewCollection[domain.Salary](client, domain.KindSalaries)

	reader := connection.NewKafkaReader(cfg.Kafka.Broker, events.EmployeeCreatedTopic, cfg.Kafka.GroupID)
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		consumer.ConsumeEmployeeLifecycle(ctx, reader, salaries, time.Now, logger)
	}()

	sig := bootstrap.WaitForSignal()
	log.Info("consumer shutting down", zap.String("signal", sig))
	cancel()
	<-done

	return nil
}
