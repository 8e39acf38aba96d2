package services

import (
	"errors"

	"github.com/petrobase/sitecms/internal/models"
	"github.com/petrobase/sitecms/pkg/response"
	"gorm.io/gorm"
)

type LocationService struct {
	db *gorm.DB
}

func NewLocationService(db *gorm.DB) *LocationService {
	return &LocationService{db: db}
}

type LocationRequest struct {
	Name      string   `json:"name" binding:"required,max=255"`
	Kind      string   `json:"kind" binding:"omitempty,oneof=office depot terminal"`
	Address   string   `json:"address" binding:"max=500"`
	City      string   `json:"city" binding:"max=100"`
	Country   string   `json:"country" binding:"max=100"`
	Phone     string   `json:"phone" binding:"max=50"`
	Email     string   `json:"email" binding:"omitempty,email"`
	Latitude  *float64 `json:"latitude" binding:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" binding:"omitempty,gte=-180,lte=180"`
	IsActive  *bool    `json:"is_active"`
	SortOrder int      `json:"sort_order"`
}

func (s *LocationService) List() ([]models.Location, error) {
	var items []models.Location
	if err := s.db.Order("sort_order, id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *LocationService) ListPublic() ([]models.Location, error) {
	var items []models.Location
	if err := s.db.Where("is_active = ?", true).Order("sort_order, id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *LocationService) Get(id uint) (*models.Location, error) {
	var location models.Location
	if err := s.db.First(&location, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("location not found")
		}
		return nil, err
	}
	return &location, nil
}

func (s *LocationService) Create(req *LocationRequest) (*models.Location, error) {
	kind := req.Kind
	if kind == "" {
		kind = "office"
	}

	location := models.Location{
		Name:      req.Name,
		Kind:      kind,
		Address:   req.Address,
		City:      req.City,
		Country:   req.Country,
		Phone:     req.Phone,
		Email:     req.Email,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		SortOrder: req.SortOrder,
		IsActive:  true,
	}
	if req.IsActive != nil {
		location.IsActive = *req.IsActive
	}

	if err := s.db.Create(&location).Error; err != nil {
		return nil, err
	}
	return &location, nil
}

func (s *LocationService) Update(id uint, req *LocationRequest) (*models.Location, error) {
	location, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	location.Name = req.Name
	if req.Kind != "" {
		location.Kind = req.Kind
	}
	location.Address = req.Address
	location.City = req.City
	location.Country = req.Country
	location.Phone = req.Phone
	location.Email = req.Email
	location.Latitude = req.Latitude
	location.Longitude = req.Longitude
	location.SortOrder = req.SortOrder
	if req.IsActive != nil {
		location.IsActive = *req.IsActive
	}

	if err := s.db.Save(location).Error; err != nil {
		return nil, err
	}
	return location, nil
}

func (s *LocationService) Delete(id uint) error {
	location, err := s.Get(id)
	if err != nil {
		return err
	}
	return s.db.Delete(location).Error
}
