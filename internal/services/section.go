package services

import (
	"encoding/json"
	"errors"

	"github.com/petrobase/sitecms/internal/models"
	"github.com/petrobase/sitecms/internal/sections"
	"github.com/petrobase/sitecms/pkg/response"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SectionService manages flexible content sections. Structured editing
// goes through the sections package: stored JSON is mapped to a typed
// form model on read and serialized back to canonical JSON on write.
type SectionService struct {
	db *gorm.DB
}

func NewSectionService(db *gorm.DB) *SectionService {
	return &SectionService{db: db}
}

type CreateSectionRequest struct {
	Page       string          `json:"page" binding:"required,max=100"`
	SectionKey string          `json:"section_key" binding:"required,max=100"`
	Title      string          `json:"title" binding:"max=255"`
	Content    json.RawMessage `json:"content"`
	IsActive   *bool           `json:"is_active"`
	SortOrder  int             `json:"sort_order"`
}

type UpdateSectionRequest struct {
	Title     *string `json:"title" binding:"omitempty,max=255"`
	IsActive  *bool   `json:"is_active"`
	SortOrder *int    `json:"sort_order"`
}

// SectionForm is what the structured editor works with: the detected
// kind tells the client which form to render.
type SectionForm struct {
	ID         uint               `json:"id"`
	Page       string             `json:"page"`
	SectionKey string             `json:"section_key"`
	Title      string             `json:"title"`
	Kind       sections.Kind      `json:"kind"`
	Form       sections.FormModel `json:"form"`
}

func (s *SectionService) List(page string) ([]models.ContentSection, error) {
	var items []models.ContentSection
	query := s.db.Model(&models.ContentSection{})
	if page != "" {
		query = query.Where("page = ?", page)
	}
	if err := query.Order("page, sort_order, id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListPublic returns active sections for a page, ordered for rendering.
func (s *SectionService) ListPublic(page string) ([]models.ContentSection, error) {
	var items []models.ContentSection
	if err := s.db.Where("page = ? AND is_active = ?", page, true).
		Order("sort_order, id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *SectionService) Get(id uint) (*models.ContentSection, error) {
	var section models.ContentSection
	if err := s.db.First(&section, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("section not found")
		}
		return nil, err
	}
	return &section, nil
}

func (s *SectionService) Create(req *CreateSectionRequest) (*models.ContentSection, error) {
	var count int64
	s.db.Model(&models.ContentSection{}).
		Where("page = ? AND section_key = ?", req.Page, req.SectionKey).
		Count(&count)
	if count > 0 {
		return nil, response.NewConflict("section key already exists on this page")
	}

	content := req.Content
	if len(content) == 0 {
		// New sections start from the canonical empty payload for their kind
		empty, err := sections.ParseForm(req.SectionKey, nil).Serialize()
		if err != nil {
			return nil, err
		}
		content = empty
	} else if err := sections.ValidateRaw(content); err != nil {
		return nil, response.NewBadRequest(err.Error())
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	section := models.ContentSection{
		Page:       req.Page,
		SectionKey: req.SectionKey,
		Title:      req.Title,
		Content:    datatypes.JSON(content),
		IsActive:   active,
		SortOrder:  req.SortOrder,
	}

	if err := s.db.Create(&section).Error; err != nil {
		return nil, err
	}
	return &section, nil
}

func (s *SectionService) Update(id uint, req *UpdateSectionRequest) (*models.ContentSection, error) {
	section, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		section.Title = *req.Title
	}
	if req.IsActive != nil {
		section.IsActive = *req.IsActive
	}
	if req.SortOrder != nil {
		section.SortOrder = *req.SortOrder
	}

	if err := s.db.Save(section).Error; err != nil {
		return nil, err
	}
	return section, nil
}

// GetForm maps a section's stored payload to its typed form model.
// Parsing is lenient: legacy or hand-edited payloads that do not match
// the expected shape degrade to empty fields instead of failing.
func (s *SectionService) GetForm(id uint) (*SectionForm, error) {
	section, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	form := sections.ParseForm(section.SectionKey, section.Content)
	return &SectionForm{
		ID:         section.ID,
		Page:       section.Page,
		SectionKey: section.SectionKey,
		Title:      section.Title,
		Kind:       form.Kind(),
		Form:       form,
	}, nil
}

// UpdateForm persists a submitted structured form. Decoding is strict;
// serialization drops incomplete rows so they never reach storage.
func (s *SectionService) UpdateForm(id uint, body []byte) (*models.ContentSection, error) {
	section, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	form, err := sections.DecodeForm(section.SectionKey, body)
	if err != nil {
		return nil, response.NewBadRequest(err.Error())
	}

	content, err := form.Serialize()
	if err != nil {
		return nil, response.NewBadRequest(err.Error())
	}

	section.Content = datatypes.JSON(content)
	if err := s.db.Save(section).Error; err != nil {
		return nil, err
	}
	return section, nil
}

// UpdateRaw replaces the payload through the raw-JSON escape hatch.
func (s *SectionService) UpdateRaw(id uint, raw json.RawMessage) (*models.ContentSection, error) {
	section, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if err := sections.ValidateRaw(raw); err != nil {
		return nil, response.NewBadRequest(err.Error())
	}

	section.Content = datatypes.JSON(raw)
	if err := s.db.Save(section).Error; err != nil {
		return nil, err
	}
	return section, nil
}

func (s *SectionService) Delete(id uint) error {
	section, err := s.Get(id)
	if err != nil {
		return err
	}
	return s.db.Delete(section).Error
}
