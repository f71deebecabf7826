package app

import (
	"hivedesk/internal/config"
	"hivedesk/internal/document"
	"hivedesk/internal/messaging/kafka"
	"hivedesk/internal/shared/connection"
	"hivedesk/internal/storage"
	"hivedesk/internal/task"
	"hivedesk/internal/training"
	"hivedesk/internal/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp connects the infrastructure, migrates the schema and mounts every
// module on the router.
func BuildApp(router *gin.Engine, cfg config.Config) error {
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

	if err := gormDB.AutoMigrate(
		&user.User{},
		&task.Task{},
		&task.TaskAssignment{},
		&document.Document{},
		&training.TrainingModule{},
		&training.TrainingProgress{},
	); err != nil {
		return err
	}
	if err := kafka.EnsureOutboxTable(gormDB); err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, 5)
	if err != nil {
		return err
	}

	store, err := storage.NewStore(cfg.Storage)
	if err != nil {
		return err
	}
	zap.L().Info("blob store ready", zap.String("backend", cfg.Storage.Backend))

	return registerModules(router, sqlDB, gormDB, rdb, store, cfg)
}
