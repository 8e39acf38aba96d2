package services

import (
	"github.com/petrobase/sitecms/internal/models"
	"gorm.io/gorm"
)

type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// DashboardStats counts every number from live queries; nothing is
// cached or inferred from previously loaded lists.
type DashboardStats struct {
	Products        int64 `json:"products"`
	ActiveProducts  int64 `json:"active_products"`
	Projects        int64 `json:"projects"`
	OngoingProjects int64 `json:"ongoing_projects"`
	JobOpenings     int64 `json:"job_openings"`
	SupportArticles int64 `json:"support_articles"`
	Locations       int64 `json:"locations"`
	Sections        int64 `json:"sections"`
	NewMessages     int64 `json:"new_messages"`
	TotalMessages   int64 `json:"total_messages"`
	Users           int64 `json:"users"`
}

type DashboardResponse struct {
	Stats          DashboardStats          `json:"stats"`
	RecentMessages []models.ContactMessage `json:"recent_messages"`
	RecentLogs     []models.SystemLog      `json:"recent_logs"`
}

func (s *DashboardService) GetStats() (*DashboardResponse, error) {
	var stats DashboardStats

	s.db.Model(&models.Product{}).Count(&stats.Products)
	s.db.Model(&models.Product{}).Where("is_active = ?", true).Count(&stats.ActiveProducts)
	s.db.Model(&models.Project{}).Count(&stats.Projects)
	s.db.Model(&models.Project{}).Where("status = ?", "ongoing").Count(&stats.OngoingProjects)
	s.db.Model(&models.JobOpening{}).Where("is_active = ?", true).Count(&stats.JobOpenings)
	s.db.Model(&models.SupportArticle{}).Where("is_active = ?", true).Count(&stats.SupportArticles)
	s.db.Model(&models.Location{}).Where("is_active = ?", true).Count(&stats.Locations)
	s.db.Model(&models.ContentSection{}).Count(&stats.Sections)
	s.db.Model(&models.ContactMessage{}).Where("status = ?", "new").Count(&stats.NewMessages)
	s.db.Model(&models.ContactMessage{}).Count(&stats.TotalMessages)
	s.db.Model(&models.User{}).Count(&stats.Users)

	var recentMessages []models.ContactMessage
	s.db.Order("created_at DESC").Limit(5).Find(&recentMessages)

	var recentLogs []models.SystemLog
	s.db.Order("created_at DESC").Limit(10).Find(&recentLogs)

	return &DashboardResponse{
		Stats:          stats,
		RecentMessages: recentMessages,
		RecentLogs:     recentLogs,
	}, nil
}
