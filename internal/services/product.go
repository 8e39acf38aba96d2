package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/petrobase/sitecms/internal/models"
	"github.com/petrobase/sitecms/internal/sections"
	"github.com/petrobase/sitecms/internal/utils"
	"github.com/petrobase/sitecms/pkg/response"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProductService manages the product catalog. The JSON attachment
// fields (specifications, documents, gallery, videos) are normalized
// through the sections package on every write so incomplete rows never
// reach storage.
type ProductService struct {
	db *gorm.DB
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

type ProductRequest struct {
	Name           string          `json:"name" binding:"required,max=255"`
	Slug           string          `json:"slug" binding:"max=255"`
	Category       string          `json:"category" binding:"max=100"`
	Summary        string          `json:"summary" binding:"max=500"`
	Description    string          `json:"description"`
	Specifications json.RawMessage `json:"specifications"`
	Documents      json.RawMessage `json:"documents"`
	Gallery        json.RawMessage `json:"gallery"`
	Videos         json.RawMessage `json:"videos"`
	IsActive       *bool           `json:"is_active"`
	SortOrder      int             `json:"sort_order"`
}

type ProductListRequest struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size" binding:"omitempty,max=100"`
	Category string `form:"category"`
	Search   string `form:"search"`
}

type ProductListResponse struct {
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
	Items    []models.Product `json:"items"`
}

func (s *ProductService) List(req *ProductListRequest) (*ProductListResponse, error) {
	if req.Page == 0 {
		req.Page = 1
	}
	if req.PageSize == 0 {
		req.PageSize = 20
	}

	var items []models.Product
	var total int64

	query := s.db.Model(&models.Product{})
	if req.Category != "" {
		query = query.Where("category = ?", req.Category)
	}
	if req.Search != "" {
		query = query.Where("name LIKE ? OR summary LIKE ?", "%"+req.Search+"%", "%"+req.Search+"%")
	}

	query.Count(&total)

	offset := (req.Page - 1) * req.PageSize
	if err := query.Offset(offset).Limit(req.PageSize).
		Order("sort_order, id").Find(&items).Error; err != nil {
		return nil, err
	}

	return &ProductListResponse{
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
		Items:    items,
	}, nil
}

// ListPublic returns active products for the public catalog.
func (s *ProductService) ListPublic(category string) ([]models.Product, error) {
	var items []models.Product
	query := s.db.Where("is_active = ?", true)
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if err := query.Order("sort_order, id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *ProductService) Get(id uint) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("product not found")
		}
		return nil, err
	}
	return &product, nil
}

// GetBySlug looks up an active product for public detail pages.
func (s *ProductService) GetBySlug(slug string) (*models.Product, error) {
	var product models.Product
	if err := s.db.Where("slug = ? AND is_active = ?", slug, true).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("product not found")
		}
		return nil, err
	}
	return &product, nil
}

func (s *ProductService) Create(req *ProductRequest, createdBy uint) (*models.Product, error) {
	slug := req.Slug
	if slug == "" {
		slug = utils.Slugify(req.Name)
	}
	if err := s.ensureSlugFree(slug, 0); err != nil {
		return nil, err
	}

	product := models.Product{
		Name:        req.Name,
		Slug:        slug,
		Category:    req.Category,
		Summary:     req.Summary,
		Description: req.Description,
		SortOrder:   req.SortOrder,
		IsActive:    true,
		CreatedBy:   createdBy,
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := s.applyAttachments(&product, req); err != nil {
		return nil, err
	}

	if err := s.db.Create(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *ProductService) Update(id uint, req *ProductRequest) (*models.Product, error) {
	product, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.Slugify(req.Name)
	}
	if slug != product.Slug {
		if err := s.ensureSlugFree(slug, product.ID); err != nil {
			return nil, err
		}
	}

	product.Name = req.Name
	product.Slug = slug
	product.Category = req.Category
	product.Summary = req.Summary
	product.Description = req.Description
	product.SortOrder = req.SortOrder
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := s.applyAttachments(product, req); err != nil {
		return nil, err
	}

	if err := s.db.Save(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Delete(id uint) error {
	product, err := s.Get(id)
	if err != nil {
		return err
	}
	return s.db.Delete(product).Error
}

// GetSpecificationRows maps the stored specifications object to an
// ordered list of key/value rows for the pair editor.
func (s *ProductService) GetSpecificationRows(id uint) ([]sections.SpecPair, error) {
	product, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	return sections.ParseSpecifications(product.Specifications), nil
}

// UpdateSpecificationRows persists the pair editor's rows. Rows with a
// blank key are dropped; when a key repeats the last row wins.
func (s *ProductService) UpdateSpecificationRows(id uint, pairs []sections.SpecPair) (*models.Product, error) {
	product, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	serialized, err := sections.SerializeSpecifications(pairs)
	if err != nil {
		return nil, response.NewBadRequest(err.Error())
	}

	product.Specifications = datatypes.JSON(serialized)
	if err := s.db.Save(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// AddVideo appends a video entry. URL entries get their player type
// inferred from the host; uploaded files are always plain video.
func (s *ProductService) AddVideo(id uint, url, alt string, uploaded bool) (*models.Product, error) {
	product, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if url == "" {
		return nil, response.NewBadRequest("video url required")
	}

	var video sections.Video
	if uploaded {
		video = sections.NewVideoFromUpload(url, alt)
	} else {
		video = sections.NewVideoFromURL(url, alt)
	}

	videos := sections.ParseVideos(product.Videos)
	videos, _ = sections.Append(videos, video)

	serialized, err := sections.SerializeVideos(videos)
	if err != nil {
		return nil, err
	}

	product.Videos = datatypes.JSON(serialized)
	if err := s.db.Save(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// RemoveVideo deletes the video at the given position.
func (s *ProductService) RemoveVideo(id uint, index int) (*models.Product, error) {
	product, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	videos := sections.ParseVideos(product.Videos)
	videos, err = sections.RemoveAt(videos, index)
	if err != nil {
		return nil, response.NewBadRequest(err.Error())
	}

	serialized, err := sections.SerializeVideos(videos)
	if err != nil {
		return nil, err
	}

	product.Videos = datatypes.JSON(serialized)
	if err := s.db.Save(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// applyAttachments normalizes the JSON attachment payloads. Each field
// is round-tripped through its typed representation, which filters
// incomplete rows and re-infers missing video types.
func (s *ProductService) applyAttachments(product *models.Product, req *ProductRequest) error {
	if req.Specifications != nil {
		serialized, err := sections.SerializeSpecifications(sections.ParseSpecifications(req.Specifications))
		if err != nil {
			return response.NewBadRequest(fmt.Sprintf("invalid specifications: %v", err))
		}
		product.Specifications = datatypes.JSON(serialized)
	}
	if req.Documents != nil {
		serialized, err := sections.SerializeDocuments(sections.ParseDocuments(req.Documents))
		if err != nil {
			return response.NewBadRequest(fmt.Sprintf("invalid documents: %v", err))
		}
		product.Documents = datatypes.JSON(serialized)
	}
	if req.Gallery != nil {
		serialized, err := sections.SerializeGallery(sections.ParseGallery(req.Gallery))
		if err != nil {
			return response.NewBadRequest(fmt.Sprintf("invalid gallery: %v", err))
		}
		product.Gallery = datatypes.JSON(serialized)
	}
	if req.Videos != nil {
		serialized, err := sections.SerializeVideos(sections.ParseVideos(req.Videos))
		if err != nil {
			return response.NewBadRequest(fmt.Sprintf("invalid videos: %v", err))
		}
		product.Videos = datatypes.JSON(serialized)
	}
	return nil
}

func (s *ProductService) ensureSlugFree(slug string, excludeID uint) error {
	if slug == "" {
		return response.NewBadRequest("slug must not be empty")
	}
	var count int64
	query := s.db.Model(&models.Product{}).Where("slug = ?", slug)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	query.Count(&count)
	if count > 0 {
		return response.NewConflict("slug already in use")
	}
	return nil
}
