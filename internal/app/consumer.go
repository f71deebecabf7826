package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"hivedesk/internal/config"
	"hivedesk/internal/events"
	"hivedesk/internal/messaging/kafka"
	"hivedesk/internal/messaging/kafka/consumer"
	"hivedesk/internal/shared/connection"
	"hivedesk/internal/task"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer listens for user lifecycle events and seeds onboarding
// checklists for new employees.
func RunConsumer(cfg config.Config) error {
	logger := zap.L().Named("app.consumer")

	gormDB, err := connection.ConnectGORMWithRetry(
		cfg.DB.Host,
		cfg.DB.User,
		cfg.DB.Password,
		cfg.DB.Name,
		cfg.DB.Port,
		cfg.DB.SSLMode,
		5,
	)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if cfg.Kafka.Broker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	taskRepo := task.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(sqlDB)
	taskService := task.NewService(sqlDB, taskRepo, outboxRepo)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.Kafka.Broker},
		Topic:          events.UserCreatedTopic,
		GroupID:        "hivedesk-onboarding",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeUserLifecycle(ctx, reader, taskService, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
