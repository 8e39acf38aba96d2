package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/petrobase/sitecms/internal/models"
	"github.com/petrobase/sitecms/internal/services"
)

// HealthHandler reports subsystem status for load balancers and uptime
// checks.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// CheckHealth returns the health status of all subsystems.
func (h *HealthHandler) CheckHealth(c *gin.Context) {
	overall := "healthy"

	dbStatus := "ok"
	sqlDB, err := models.GetDB().DB()
	if err != nil {
		dbStatus = "error: " + err.Error()
		overall = "unhealthy"
	} else if err := sqlDB.Ping(); err != nil {
		dbStatus = "error: " + err.Error()
		overall = "unhealthy"
	}

	taskQueue := services.GetTaskQueue()
	queueMode := "sync"
	if taskQueue != nil && taskQueue.IsAsync() {
		queueMode = "async (Redis)"
	}

	var newMessages int64
	models.GetDB().Model(&models.ContactMessage{}).
		Where("status = ?", "new").
		Count(&newMessages)

	c.JSON(200, gin.H{
		"status":  overall,
		"service": "sitecms",
		"components": gin.H{
			"database":     dbStatus,
			"queue_mode":   queueMode,
			"new_messages": newMessages,
		},
	})
}
