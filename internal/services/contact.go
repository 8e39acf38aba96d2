package services

import (
	"errors"
	"strconv"
	"time"

	"github.com/petrobase/sitecms/internal/models"
	"github.com/petrobase/sitecms/pkg/logger"
	"github.com/petrobase/sitecms/pkg/response"
	"gorm.io/gorm"
)

// ContactService handles contact form submissions and the backoffice
// message inbox.
type ContactService struct {
	db *gorm.DB
}

func NewContactService(db *gorm.DB) *ContactService {
	return &ContactService{db: db}
}

type ContactSubmitRequest struct {
	Name    string `json:"name" binding:"required,max=255"`
	Email   string `json:"email" binding:"required,email,max=255"`
	Phone   string `json:"phone" binding:"max=50"`
	Subject string `json:"subject" binding:"max=255"`
	Message string `json:"message" binding:"required,max=5000"`
}

type ContactListRequest struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size" binding:"omitempty,max=100"`
	Status   string `form:"status" binding:"omitempty,oneof=new read archived"`
	Search   string `form:"search"`
}

type ContactListResponse struct {
	Total    int64                   `json:"total"`
	Page     int                     `json:"page"`
	PageSize int                     `json:"page_size"`
	Items    []models.ContactMessage `json:"items"`
}

// Submit stores a public contact form submission and queues the
// notification email. Enqueue failures are logged, never surfaced: the
// message is already persisted.
func (s *ContactService) Submit(req *ContactSubmitRequest, clientIP string) (*models.ContactMessage, error) {
	message := models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
		Status:  "new",
	}

	if err := s.db.Create(&message).Error; err != nil {
		return nil, err
	}

	if queue := GetTaskQueue(); queue != nil {
		task := &ContactTask{
			MessageID: message.ID,
			Name:      message.Name,
			Email:     message.Email,
			Subject:   message.Subject,
		}
		if err := queue.Enqueue(task); err != nil {
			logger.Warn().Err(err).Uint("message_id", message.ID).Msg("failed to enqueue contact notification")
		}
	}

	LogInfo("Contact", "Submit", "contact message received from "+req.Email, nil, clientIP, "", map[string]interface{}{
		"message_id": message.ID,
		"subject":    message.Subject,
	})

	return &message, nil
}

func (s *ContactService) List(req *ContactListRequest) (*ContactListResponse, error) {
	if req.Page == 0 {
		req.Page = 1
	}
	if req.PageSize == 0 {
		req.PageSize = 20
	}

	var items []models.ContactMessage
	var total int64

	query := s.db.Model(&models.ContactMessage{})
	if req.Status != "" {
		query = query.Where("status = ?", req.Status)
	}
	if req.Search != "" {
		like := "%" + req.Search + "%"
		query = query.Where("name LIKE ? OR email LIKE ? OR subject LIKE ?", like, like, like)
	}

	query.Count(&total)

	offset := (req.Page - 1) * req.PageSize
	if err := query.Offset(offset).Limit(req.PageSize).
		Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}

	return &ContactListResponse{
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
		Items:    items,
	}, nil
}

func (s *ContactService) Get(id uint) (*models.ContactMessage, error) {
	var message models.ContactMessage
	if err := s.db.First(&message, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("message not found")
		}
		return nil, err
	}
	return &message, nil
}

// MarkStatus moves a message through its lifecycle (new, read, archived).
func (s *ContactService) MarkStatus(id uint, status string) (*models.ContactMessage, error) {
	switch status {
	case "new", "read", "archived":
	default:
		return nil, response.NewBadRequest("invalid status")
	}

	message, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	message.Status = status
	if err := s.db.Save(message).Error; err != nil {
		return nil, err
	}
	return message, nil
}

func (s *ContactService) Delete(id uint) error {
	message, err := s.Get(id)
	if err != nil {
		return err
	}
	return s.db.Delete(message).Error
}

// CountNew returns the number of unread messages for the dashboard.
func (s *ContactService) CountNew() (int64, error) {
	var count int64
	err := s.db.Model(&models.ContactMessage{}).Where("status = ?", "new").Count(&count).Error
	return count, err
}

// CleanupArchived deletes archived messages older than the retention
// window. Returns the number of deleted records.
func (s *ContactService) CleanupArchived(retentionDays int) (int64, error) {
	if retentionDays <= 0 {
		return 0, nil
	}

	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	result := s.db.Where("status = ? AND updated_at < ?", "archived", cutoff).
		Delete(&models.ContactMessage{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// GetRetentionDays reads the archived-message retention window from
// site settings.
func (s *ContactService) GetRetentionDays() int {
	var setting models.SiteSetting
	if err := s.db.Where("setting_key = ?", "message_retention_days").First(&setting).Error; err != nil {
		return 180
	}

	days, err := strconv.Atoi(setting.Value)
	if err != nil {
		return 180
	}
	return days
}
