package main

import (
	"context"

	"hivedesk/internal/config"
	"hivedesk/internal/document"
	"hivedesk/internal/messaging/kafka"
	"hivedesk/internal/seed"
	"hivedesk/internal/shared/apperror"
	"hivedesk/internal/shared/connection"
	"hivedesk/internal/task"
	"hivedesk/internal/training"
	"hivedesk/internal/user"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config failed", zap.Error(err))
	}

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
		logger.Fatal("connect database failed", zap.Error(err))
	}

	if err := gormDB.AutoMigrate(
		&user.User{},
		&task.Task{},
		&task.TaskAssignment{},
		&document.Document{},
		&training.TrainingModule{},
		&training.TrainingProgress{},
	); err != nil {
		logger.Fatal("migrate schema failed", zap.Error(err))
	}
	if err := kafka.EnsureOutboxTable(gormDB); err != nil {
		logger.Fatal("create outbox table failed", zap.Error(err))
	}

	if err := seed.Run(context.Background(), gormDB); err != nil {
		logger.Fatal("seed failed", zap.Error(err))
	}
}
