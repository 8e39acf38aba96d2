package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/petrobase/sitecms/internal/models"
	"github.com/petrobase/sitecms/internal/sections"
	"github.com/petrobase/sitecms/internal/utils"
	"github.com/petrobase/sitecms/pkg/response"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProjectService manages reference projects shown on the public site.
type ProjectService struct {
	db *gorm.DB
}

func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{db: db}
}

type ProjectRequest struct {
	Name        string          `json:"name" binding:"required,max=255"`
	Slug        string          `json:"slug" binding:"max=255"`
	Client      string          `json:"client" binding:"max=255"`
	Location    string          `json:"location" binding:"max=255"`
	Status      string          `json:"status" binding:"omitempty,oneof=planned ongoing completed"`
	Summary     string          `json:"summary" binding:"max=500"`
	Description string          `json:"description"`
	Gallery     json.RawMessage `json:"gallery"`
	Documents   json.RawMessage `json:"documents"`
	CompletedAt *time.Time      `json:"completed_at"`
	IsActive    *bool           `json:"is_active"`
	SortOrder   int             `json:"sort_order"`
}

func (s *ProjectService) List(status string) ([]models.Project, error) {
	var items []models.Project
	query := s.db.Model(&models.Project{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Order("sort_order, id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *ProjectService) ListPublic(status string) ([]models.Project, error) {
	var items []models.Project
	query := s.db.Where("is_active = ?", true)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Order("sort_order, id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *ProjectService) Get(id uint) (*models.Project, error) {
	var project models.Project
	if err := s.db.First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("project not found")
		}
		return nil, err
	}
	return &project, nil
}

func (s *ProjectService) GetBySlug(slug string) (*models.Project, error) {
	var project models.Project
	if err := s.db.Where("slug = ? AND is_active = ?", slug, true).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("project not found")
		}
		return nil, err
	}
	return &project, nil
}

func (s *ProjectService) Create(req *ProjectRequest, createdBy uint) (*models.Project, error) {
	slug := req.Slug
	if slug == "" {
		slug = utils.Slugify(req.Name)
	}
	if err := s.ensureSlugFree(slug, 0); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = "ongoing"
	}

	project := models.Project{
		Name:        req.Name,
		Slug:        slug,
		Client:      req.Client,
		Location:    req.Location,
		Status:      status,
		Summary:     req.Summary,
		Description: req.Description,
		CompletedAt: req.CompletedAt,
		SortOrder:   req.SortOrder,
		IsActive:    true,
		CreatedBy:   createdBy,
	}
	if req.IsActive != nil {
		project.IsActive = *req.IsActive
	}

	if err := s.applyAttachments(&project, req); err != nil {
		return nil, err
	}

	if err := s.db.Create(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

func (s *ProjectService) Update(id uint, req *ProjectRequest) (*models.Project, error) {
	project, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.Slugify(req.Name)
	}
	if slug != project.Slug {
		if err := s.ensureSlugFree(slug, project.ID); err != nil {
			return nil, err
		}
	}

	project.Name = req.Name
	project.Slug = slug
	project.Client = req.Client
	project.Location = req.Location
	if req.Status != "" {
		project.Status = req.Status
	}
	project.Summary = req.Summary
	project.Description = req.Description
	project.CompletedAt = req.CompletedAt
	project.SortOrder = req.SortOrder
	if req.IsActive != nil {
		project.IsActive = *req.IsActive
	}

	// Marking a project completed stamps the completion date
	if project.Status == "completed" && project.CompletedAt == nil {
		now := time.Now()
		project.CompletedAt = &now
	}

	if err := s.applyAttachments(project, req); err != nil {
		return nil, err
	}

	if err := s.db.Save(project).Error; err != nil {
		return nil, err
	}
	return project, nil
}

func (s *ProjectService) Delete(id uint) error {
	project, err := s.Get(id)
	if err != nil {
		return err
	}
	return s.db.Delete(project).Error
}

func (s *ProjectService) applyAttachments(project *models.Project, req *ProjectRequest) error {
	if req.Gallery != nil {
		serialized, err := sections.SerializeGallery(sections.ParseGallery(req.Gallery))
		if err != nil {
			return response.NewBadRequest(fmt.Sprintf("invalid gallery: %v", err))
		}
		project.Gallery = datatypes.JSON(serialized)
	}
	if req.Documents != nil {
		serialized, err := sections.SerializeDocuments(sections.ParseDocuments(req.Documents))
		if err != nil {
			return response.NewBadRequest(fmt.Sprintf("invalid documents: %v", err))
		}
		project.Documents = datatypes.JSON(serialized)
	}
	return nil
}

func (s *ProjectService) ensureSlugFree(slug string, excludeID uint) error {
	if slug == "" {
		return response.NewBadRequest("slug must not be empty")
	}
	var count int64
	query := s.db.Model(&models.Project{}).Where("slug = ?", slug)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	query.Count(&count)
	if count > 0 {
		return response.NewConflict("slug already in use")
	}
	return nil
}
