package main

import (
	"github.com/petrobase/sitecms/internal/config"
	"github.com/petrobase/sitecms/internal/handlers"
	"github.com/petrobase/sitecms/internal/middleware"
	"github.com/petrobase/sitecms/internal/models"
	"github.com/petrobase/sitecms/internal/services"
	"github.com/petrobase/sitecms/internal/utils"
	"github.com/petrobase/sitecms/pkg/logger"
)

// appServices holds the initialized services and handlers the router needs.
type appServices struct {
	authHandler    *handlers.AuthHandler
	cleanupService *services.CleanupService
	taskQueue      services.TaskQueue
	worker         *services.Worker
	limiters       []*middleware.RateLimiter
}

// bootstrap initializes all application dependencies: database, queue,
// schedulers.
func bootstrap(cfg *config.Config) *appServices {
	utils.SetJWTSecret(cfg.JWT.Secret)

	if err := models.InitDB(&cfg.Database); err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}

	if err := models.SeedDefaultData(); err != nil {
		logger.Warn().Err(err).Msg("Failed to seed default data")
	}

	services.InitSystemLogger(models.GetDB())

	// Contact notification pipeline: async when Redis is available,
	// in-process otherwise
	notificationService := services.NewNotificationService(models.GetDB(), &cfg.SMTP)
	taskQueue := services.InitTaskQueue(cfg)
	if syncQueue, ok := taskQueue.(*services.SyncQueue); ok {
		syncQueue.SetProcessor(notificationService.ProcessContactTask)
	}

	var worker *services.Worker
	if cfg.Redis.Enabled {
		worker = services.InitWorker(&cfg.Redis)
		if worker != nil {
			worker.SetProcessor(notificationService.ProcessContactTask)
			worker.Start()
		}
	}

	authHandler := handlers.NewAuthHandler(models.GetDB(), cfg)
	if err := authHandler.CreateAdminIfNotExists(); err != nil {
		logger.Warn().Err(err).Msg("Failed to create admin user")
	}

	// Retention jobs: logs, archived messages, dead refresh tokens
	authService := services.NewAuthService(models.GetDB(), &cfg.JWT, &cfg.LDAP)
	cleanupService := services.NewCleanupService(models.GetDB(), authService)
	cleanupService.StartScheduler()

	return &appServices{
		authHandler:    authHandler,
		cleanupService: cleanupService,
		taskQueue:      taskQueue,
		worker:         worker,
	}
}

// shutdown gracefully stops all background services.
func (s *appServices) shutdown() {
	s.cleanupService.StopScheduler()
	logger.Info().Msg("Schedulers stopped")

	if s.worker != nil {
		s.worker.Stop()
	}
	if s.taskQueue != nil {
		s.taskQueue.Close()
	}
	for _, rl := range s.limiters {
		rl.Stop()
	}
}
