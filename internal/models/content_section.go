package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ContentSection pairs a semantic key with an arbitrary JSON payload.
// The payload's internal shape is determined entirely by SectionKey; no
// schema is enforced at the storage layer. All shape knowledge lives in
// the sections package.
type ContentSection struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	Page       string         `gorm:"size:100;index:idx_sections_page_key;not null" json:"page"` // home, footer, about, careers, support
	SectionKey string         `gorm:"size:100;index:idx_sections_page_key;not null" json:"section_key"`
	Title      string         `gorm:"size:255" json:"title"`
	Content    datatypes.JSON `gorm:"type:json" json:"content"`
	IsActive   bool           `gorm:"default:true" json:"is_active"`
	SortOrder  int            `gorm:"default:0" json:"sort_order"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

func (ContentSection) TableName() string { return "content_sections" }
