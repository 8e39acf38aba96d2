package models

import (
	"time"

	"gorm.io/gorm"
)

// JobOpening represents a vacancy listed on the careers page
type JobOpening struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	Title          string         `gorm:"size:255;not null" json:"title"`
	Department     string         `gorm:"size:100" json:"department"`
	Location       string         `gorm:"size:255" json:"location"`
	EmploymentType string         `gorm:"size:50;default:full_time" json:"employment_type"` // full_time, part_time, contract
	Description    string         `gorm:"type:text" json:"description"`
	Requirements   string         `gorm:"type:text" json:"requirements"`
	IsActive       bool           `gorm:"default:true" json:"is_active"`
	SortOrder      int            `gorm:"default:0" json:"sort_order"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

// SupportArticle represents a FAQ entry on the support page
type SupportArticle struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Question  string         `gorm:"size:500;not null" json:"question"`
	Answer    string         `gorm:"type:text;not null" json:"answer"`
	Category  string         `gorm:"size:100;index" json:"category"` // products, ordering, delivery, technical
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	SortOrder int            `gorm:"default:0" json:"sort_order"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Location represents an office, depot or terminal shown on the contact page
type Location struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Kind      string         `gorm:"size:50;default:office" json:"kind"` // office, depot, terminal
	Address   string         `gorm:"size:500" json:"address"`
	City      string         `gorm:"size:100" json:"city"`
	Country   string         `gorm:"size:100" json:"country"`
	Phone     string         `gorm:"size:50" json:"phone"`
	Email     string         `gorm:"size:255" json:"email"`
	Latitude  *float64       `json:"latitude"`
	Longitude *float64       `json:"longitude"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	SortOrder int            `gorm:"default:0" json:"sort_order"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// ContactMessage is submitted from the public contact form
type ContactMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Email     string    `gorm:"size:255;not null" json:"email"`
	Phone     string    `gorm:"size:50" json:"phone"`
	Subject   string    `gorm:"size:255" json:"subject"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Status    string    `gorm:"size:20;default:new;index" json:"status"` // new, read, archived
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (JobOpening) TableName() string     { return "job_openings" }
func (SupportArticle) TableName() string { return "support_articles" }
func (Location) TableName() string       { return "locations" }
func (ContactMessage) TableName() string { return "contact_messages" }
