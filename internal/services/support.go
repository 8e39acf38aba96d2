package services

import (
	"errors"

	"github.com/petrobase/sitecms/internal/models"
	"github.com/petrobase/sitecms/pkg/response"
	"gorm.io/gorm"
)

type SupportService struct {
	db *gorm.DB
}

func NewSupportService(db *gorm.DB) *SupportService {
	return &SupportService{db: db}
}

type SupportArticleRequest struct {
	Question  string `json:"question" binding:"required,max=500"`
	Answer    string `json:"answer" binding:"required"`
	Category  string `json:"category" binding:"max=100"`
	IsActive  *bool  `json:"is_active"`
	SortOrder int    `json:"sort_order"`
}

func (s *SupportService) List(category string) ([]models.SupportArticle, error) {
	var items []models.SupportArticle
	query := s.db.Model(&models.SupportArticle{})
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if err := query.Order("sort_order, id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *SupportService) ListPublic(category string) ([]models.SupportArticle, error) {
	var items []models.SupportArticle
	query := s.db.Where("is_active = ?", true)
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if err := query.Order("sort_order, id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *SupportService) Get(id uint) (*models.SupportArticle, error) {
	var article models.SupportArticle
	if err := s.db.First(&article, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("support article not found")
		}
		return nil, err
	}
	return &article, nil
}

func (s *SupportService) Create(req *SupportArticleRequest) (*models.SupportArticle, error) {
	article := models.SupportArticle{
		Question:  req.Question,
		Answer:    req.Answer,
		Category:  req.Category,
		SortOrder: req.SortOrder,
		IsActive:  true,
	}
	if req.IsActive != nil {
		article.IsActive = *req.IsActive
	}

	if err := s.db.Create(&article).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

func (s *SupportService) Update(id uint, req *SupportArticleRequest) (*models.SupportArticle, error) {
	article, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	article.Question = req.Question
	article.Answer = req.Answer
	article.Category = req.Category
	article.SortOrder = req.SortOrder
	if req.IsActive != nil {
		article.IsActive = *req.IsActive
	}

	if err := s.db.Save(article).Error; err != nil {
		return nil, err
	}
	return article, nil
}

func (s *SupportService) Delete(id uint) error {
	article, err := s.Get(id)
	if err != nil {
		return err
	}
	return s.db.Delete(article).Error
}
