package services

import (
	"github.com/petrobase/sitecms/pkg/logger"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// CleanupService runs the nightly retention jobs: old system logs,
// archived contact messages past their window, and dead refresh tokens.
type CleanupService struct {
	db            *gorm.DB
	logService    *SystemLogService
	contactSvc    *ContactService
	authService   *AuthService
	cronScheduler *cron.Cron
}

func NewCleanupService(db *gorm.DB, authService *AuthService) *CleanupService {
	return &CleanupService{
		db:          db,
		logService:  NewSystemLogService(db),
		contactSvc:  NewContactService(db),
		authService: authService,
	}
}

// StartScheduler runs the retention pass once at boot, then every
// night at 03:30.
func (s *CleanupService) StartScheduler() {
	s.cronScheduler = cron.New()

	if _, err := s.cronScheduler.AddFunc("30 3 * * *", s.RunAll); err != nil {
		logger.Errorf("[Cleanup] Failed to schedule retention job: %v", err)
		return
	}

	s.cronScheduler.Start()
	logger.Infof("[Cleanup] Retention scheduler started")

	go s.RunAll()
}

func (s *CleanupService) StopScheduler() {
	if s.cronScheduler != nil {
		s.cronScheduler.Stop()
	}
}

// RunAll executes every retention job once.
func (s *CleanupService) RunAll() {
	logDays := s.logService.GetRetentionDays()
	if deleted, err := s.logService.CleanupOldLogs(logDays); err != nil {
		logger.Errorf("[Cleanup] Log cleanup failed: %v", err)
	} else if deleted > 0 {
		logger.Infof("[Cleanup] Removed %d logs older than %d days", deleted, logDays)
	}

	msgDays := s.contactSvc.GetRetentionDays()
	if deleted, err := s.contactSvc.CleanupArchived(msgDays); err != nil {
		logger.Errorf("[Cleanup] Message cleanup failed: %v", err)
	} else if deleted > 0 {
		logger.Infof("[Cleanup] Removed %d archived messages older than %d days", deleted, msgDays)
	}

	if deleted, err := s.authService.CleanupExpiredTokens(); err != nil {
		logger.Errorf("[Cleanup] Token cleanup failed: %v", err)
	} else if deleted > 0 {
		logger.Infof("[Cleanup] Removed %d expired refresh tokens", deleted)
	}
}
