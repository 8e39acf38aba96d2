package services

import (
	"errors"

	"github.com/petrobase/sitecms/internal/models"
	"github.com/petrobase/sitecms/pkg/response"
	"gorm.io/gorm"
)

type CareerService struct {
	db *gorm.DB
}

func NewCareerService(db *gorm.DB) *CareerService {
	return &CareerService{db: db}
}

type JobOpeningRequest struct {
	Title          string `json:"title" binding:"required,max=255"`
	Department     string `json:"department" binding:"max=100"`
	Location       string `json:"location" binding:"max=255"`
	EmploymentType string `json:"employment_type" binding:"omitempty,oneof=full_time part_time contract"`
	Description    string `json:"description"`
	Requirements   string `json:"requirements"`
	IsActive       *bool  `json:"is_active"`
	SortOrder      int    `json:"sort_order"`
}

func (s *CareerService) List() ([]models.JobOpening, error) {
	var items []models.JobOpening
	if err := s.db.Order("sort_order, id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *CareerService) ListPublic() ([]models.JobOpening, error) {
	var items []models.JobOpening
	if err := s.db.Where("is_active = ?", true).Order("sort_order, id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *CareerService) Get(id uint) (*models.JobOpening, error) {
	var job models.JobOpening
	if err := s.db.First(&job, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("job opening not found")
		}
		return nil, err
	}
	return &job, nil
}

func (s *CareerService) Create(req *JobOpeningRequest) (*models.JobOpening, error) {
	employmentType := req.EmploymentType
	if employmentType == "" {
		employmentType = "full_time"
	}

	job := models.JobOpening{
		Title:          req.Title,
		Department:     req.Department,
		Location:       req.Location,
		EmploymentType: employmentType,
		Description:    req.Description,
		Requirements:   req.Requirements,
		SortOrder:      req.SortOrder,
		IsActive:       true,
	}
	if req.IsActive != nil {
		job.IsActive = *req.IsActive
	}

	if err := s.db.Create(&job).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

func (s *CareerService) Update(id uint, req *JobOpeningRequest) (*models.JobOpening, error) {
	job, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	job.Title = req.Title
	job.Department = req.Department
	job.Location = req.Location
	if req.EmploymentType != "" {
		job.EmploymentType = req.EmploymentType
	}
	job.Description = req.Description
	job.Requirements = req.Requirements
	job.SortOrder = req.SortOrder
	if req.IsActive != nil {
		job.IsActive = *req.IsActive
	}

	if err := s.db.Save(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

func (s *CareerService) Delete(id uint) error {
	job, err := s.Get(id)
	if err != nil {
		return err
	}
	return s.db.Delete(job).Error
}
