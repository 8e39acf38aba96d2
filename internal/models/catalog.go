package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Product represents an item in the public product catalog. Specifications,
// documents, gallery and videos are semi-structured JSON payloads edited
// through the sections sub-editors.
type Product struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	Name           string         `gorm:"size:255;not null" json:"name"`
	Slug           string         `gorm:"uniqueIndex;size:255;not null" json:"slug"`
	Category       string         `gorm:"size:100;index" json:"category"` // pipes, valves, pumps, fittings, instrumentation
	Summary        string         `gorm:"size:500" json:"summary"`
	Description    string         `gorm:"type:text" json:"description"`
	Specifications datatypes.JSON `gorm:"type:json" json:"specifications"` // object map of key/value strings
	Documents      datatypes.JSON `gorm:"type:json" json:"documents"`      // list of {name,type,url}
	Gallery        datatypes.JSON `gorm:"type:json" json:"gallery"`        // list of {url,alt}
	Videos         datatypes.JSON `gorm:"type:json" json:"videos"`         // list of {url,alt,type}
	IsActive       bool           `gorm:"default:true" json:"is_active"`
	SortOrder      int            `gorm:"default:0" json:"sort_order"`
	CreatedBy      uint           `json:"created_by"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

// Project represents a reference project shown on the public site
type Project struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	Slug        string         `gorm:"uniqueIndex;size:255;not null" json:"slug"`
	Client      string         `gorm:"size:255" json:"client"`
	Location    string         `gorm:"size:255" json:"location"`
	Status      string         `gorm:"size:50;default:ongoing;index" json:"status"` // planned, ongoing, completed
	Summary     string         `gorm:"size:500" json:"summary"`
	Description string         `gorm:"type:text" json:"description"`
	Gallery     datatypes.JSON `gorm:"type:json" json:"gallery"`
	Documents   datatypes.JSON `gorm:"type:json" json:"documents"`
	CompletedAt *time.Time     `json:"completed_at"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	SortOrder   int            `gorm:"default:0" json:"sort_order"`
	CreatedBy   uint           `json:"created_by"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Product) TableName() string { return "products" }
func (Project) TableName() string { return "projects" }
