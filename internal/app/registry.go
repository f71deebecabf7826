package app

import (
	"database/sql"
	"path/filepath"

	"hivedesk/internal/auth"
	"hivedesk/internal/authz/infra"
	"hivedesk/internal/config"
	"hivedesk/internal/dashboard"
	"hivedesk/internal/document"
	"hivedesk/internal/employee"
	"hivedesk/internal/messaging/kafka"
	"hivedesk/internal/middleware"
	"hivedesk/internal/storage"
	"hivedesk/internal/task"
	"hivedesk/internal/token"
	"hivedesk/internal/training"
	"hivedesk/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	store storage.Store,
	cfg config.Config,
) error {
	// --- Repositories ---
	userRepo := user.NewRepository(gormDB)
	taskRepo := task.NewRepository(gormDB)
	documentRepo := document.NewRepository(gormDB)
	trainingRepo := training.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	dashboardRepo := dashboard.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Role policy ---
	enforcer, err := infra.NewEnforcer(
		filepath.Join("internal", "authz", "infra", "model.conf"),
		filepath.Join("internal", "authz", "infra", "policy.csv"),
	)
	if err != nil {
		return err
	}

	// --- Services ---
	tokenService := token.NewService(cfg.Auth)
	authService := auth.NewServiceWithOutbox(db, userRepo, tokenService, outboxRepo)
	taskService := task.NewService(db, taskRepo, outboxRepo)
	documentService := document.NewService(db, documentRepo, store, outboxRepo)
	trainingService := training.NewService(trainingRepo)
	employeeService := employee.NewService(employeeRepo, userRepo, taskService, documentService)
	dashboardService := dashboard.NewService(dashboardRepo, rdb)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	taskHandler := task.NewHandler(taskService)
	documentHandler := document.NewHandler(documentService)
	trainingHandler := training.NewHandler(trainingService)
	employeeHandler := employee.NewHandler(employeeService)
	dashboardHandler := dashboard.NewHandler(dashboardService)

	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(zap.L()))

	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, tokenService, userRepo, enforcer)

		// HR-facing resource groups.
		admin := api.Group("")
		admin.Use(
			middleware.Authenticate(tokenService, userRepo),
			middleware.Idempotency(rdb),
		)
		{
			employee.RegisterRoutes(admin, employeeHandler, enforcer)
			task.RegisterAdminRoutes(admin, taskHandler, enforcer)
			document.RegisterAdminRoutes(admin, documentHandler, enforcer)
			training.RegisterAdminRoutes(admin, trainingHandler, enforcer)
			dashboard.RegisterAdminRoutes(admin, dashboardHandler, enforcer)
		}

		// Employee self-service, scoped by the name/role path pair. The
		// caller's token decides identity; the path is checked against it.
		scoped := api.Group("/:name/:role")
		scoped.Use(
			middleware.Authenticate(tokenService, userRepo),
			middleware.VerifyPathAccess(),
			middleware.RateLimitByUser(5, 10),
			middleware.Idempotency(rdb),
		)
		{
			task.RegisterEmployeeRoutes(scoped, taskHandler, enforcer)
			document.RegisterEmployeeRoutes(scoped, documentHandler, enforcer)
			training.RegisterEmployeeRoutes(scoped, trainingHandler, enforcer)
			dashboard.RegisterEmployeeRoutes(scoped, dashboardHandler, enforcer)
		}
	}

	return nil
}
