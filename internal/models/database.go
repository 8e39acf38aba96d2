package models

import (
	"fmt"

	"github.com/petrobase/sitecms/internal/config"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func InitDB(cfg *config.DatabaseConfig) error {
	var dialector gorm.Dialector

	switch cfg.Driver {
	case "sqlite":
		dialector = sqlite.Open(cfg.DSN)
	case "mysql":
		dialector = mysql.Open(cfg.DSN)
	case "postgres":
		dialector = postgres.Open(cfg.DSN)
	default:
		return fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return fmt.Errorf("failed to connect database: %w", err)
	}

	DB = db
	return nil
}

func AutoMigrate() error {
	return DB.AutoMigrate(
		&User{},
		&RefreshToken{},
		&ContentSection{},
		&Product{},
		&Project{},
		&JobOpening{},
		&SupportArticle{},
		&Location{},
		&ContactMessage{},
		&SiteSetting{},
		&SystemLog{},
	)
}

func GetDB() *gorm.DB {
	return DB
}

// SeedDefaultData creates default data if not exists
func SeedDefaultData() error {
	// Footer sections every installation starts with. Content is a
	// template the admin edits through the section form editors.
	var sectionCount int64
	DB.Model(&ContentSection{}).Where("page = ?", "footer").Count(&sectionCount)
	if sectionCount == 0 {
		defaults := []ContentSection{
			{
				Page:       "footer",
				SectionKey: "company_info",
				Title:      "PetroBase Infrastructure",
				Content:    []byte(`{"description":"","social_links":[]}`),
				IsActive:   true,
				SortOrder:  1,
			},
			{
				Page:       "footer",
				SectionKey: "quick_links",
				Title:      "Quick Links",
				Content:    []byte(`{"links":[]}`),
				IsActive:   true,
				SortOrder:  2,
			},
			{
				Page:       "footer",
				SectionKey: "services",
				Title:      "Our Services",
				Content:    []byte(`{"services":[]}`),
				IsActive:   true,
				SortOrder:  3,
			},
			{
				Page:       "footer",
				SectionKey: "contact_info",
				Title:      "Contact",
				Content:    []byte(`{"address":"","phone":"","email":""}`),
				IsActive:   true,
				SortOrder:  4,
			},
			{
				Page:       "footer",
				SectionKey: "legal_links",
				Title:      "Legal",
				Content:    []byte(`{"links":[]}`),
				IsActive:   true,
				SortOrder:  5,
			},
		}
		for _, section := range defaults {
			if err := DB.Create(&section).Error; err != nil {
				return err
			}
		}
	}

	// Default site settings
	defaultSettings := []SiteSetting{
		{Key: "site_name", Value: "PetroBase Infrastructure", Type: "string", Group: "general", Label: "Site Name"},
		{Key: "site_tagline", Value: "Pipelines, terminals and fuel logistics", Type: "string", Group: "general", Label: "Site Tagline"},
		{Key: "seo_default_description", Value: "", Type: "string", Group: "seo", Label: "Default Meta Description"},
		{Key: "contact_notify_enabled", Value: "true", Type: "bool", Group: "contact", Label: "Notify on Contact Message"},
		{Key: "log_retention_days", Value: "30", Type: "int", Group: "retention", Label: "System Log Retention Days"},
		{Key: "message_retention_days", Value: "180", Type: "int", Group: "retention", Label: "Archived Message Retention Days"},
	}

	for _, setting := range defaultSettings {
		var count int64
		DB.Model(&SiteSetting{}).Where("setting_key = ?", setting.Key).Count(&count)
		if count == 0 {
			if err := DB.Create(&setting).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
