package services

import (
	"errors"

	"github.com/petrobase/sitecms/internal/models"
	"github.com/petrobase/sitecms/pkg/response"
	"gorm.io/gorm"
)

type SiteSettingService struct {
	db *gorm.DB
}

func NewSiteSettingService(db *gorm.DB) *SiteSettingService {
	return &SiteSettingService{db: db}
}

func (s *SiteSettingService) List(group string) ([]models.SiteSetting, error) {
	var items []models.SiteSetting
	query := s.db.Model(&models.SiteSetting{})
	if group != "" {
		query = query.Where("`group` = ?", group)
	}
	if err := query.Order("`group`, setting_key").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *SiteSettingService) Get(key string) (*models.SiteSetting, error) {
	var setting models.SiteSetting
	if err := s.db.Where("setting_key = ?", key).First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("setting not found")
		}
		return nil, err
	}
	return &setting, nil
}

// GetWithDefault returns the value for a key, or the fallback when the
// key is missing.
func (s *SiteSettingService) GetWithDefault(key, fallback string) string {
	setting, err := s.Get(key)
	if err != nil {
		return fallback
	}
	return setting.Value
}

// Set updates an existing setting's value. Settings are seeded at boot;
// unknown keys are rejected rather than silently created.
func (s *SiteSettingService) Set(key, value string) (*models.SiteSetting, error) {
	setting, err := s.Get(key)
	if err != nil {
		return nil, err
	}

	setting.Value = value
	if err := s.db.Save(setting).Error; err != nil {
		return nil, err
	}
	return setting, nil
}

type SettingUpdate struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value"`
}

// SetMany applies a batch of updates atomically.
func (s *SiteSettingService) SetMany(updates []SettingUpdate) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		for _, u := range updates {
			var setting models.SiteSetting
			if err := tx.Where("setting_key = ?", u.Key).First(&setting).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return response.NewBadRequest("unknown setting: " + u.Key)
				}
				return err
			}
			setting.Value = u.Value
			if err := tx.Save(&setting).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
