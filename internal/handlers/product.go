package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/petrobase/sitecms/internal/middleware"
	"github.com/petrobase/sitecms/internal/sections"
	"github.com/petrobase/sitecms/internal/services"
	"github.com/petrobase/sitecms/pkg/response"
	"gorm.io/gorm"
)

type ProductHandler struct {
	productService *services.ProductService
}

func NewProductHandler(db *gorm.DB) *ProductHandler {
	return &ProductHandler{
		productService: services.NewProductService(db),
	}
}

// List returns paginated products
// GET /api/products
func (h *ProductHandler) List(c *gin.Context) {
	var req services.ProductListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.productService.List(&req)
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}
	response.Success(c, resp)
}

// Get returns a product by ID
// GET /api/products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid product id")
		return
	}

	product, err := h.productService.Get(uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, product)
}

// Create creates a new product
// POST /api/products
func (h *ProductHandler) Create(c *gin.Context) {
	var req services.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	product, err := h.productService.Create(&req, middleware.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, product)
}

// Update updates a product
// PUT /api/products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid product id")
		return
	}

	var req services.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	product, err := h.productService.Update(uint(id), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, product)
}

// Delete removes a product
// DELETE /api/products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid product id")
		return
	}

	if err := h.productService.Delete(uint(id)); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"message": "product deleted"})
}

// GetSpecifications returns the ordered key/value rows for the editor
// GET /api/products/:id/specifications
func (h *ProductHandler) GetSpecifications(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid product id")
		return
	}

	rows, err := h.productService.GetSpecificationRows(uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"rows": rows})
}

type updateSpecificationsRequest struct {
	Rows []sections.SpecPair `json:"rows"`
}

// UpdateSpecifications saves the pair editor's rows
// PUT /api/products/:id/specifications
func (h *ProductHandler) UpdateSpecifications(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid product id")
		return
	}

	var req updateSpecificationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	product, err := h.productService.UpdateSpecificationRows(uint(id), req.Rows)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, product)
}

type addVideoRequest struct {
	URL      string `json:"url" binding:"required"`
	Alt      string `json:"alt"`
	Uploaded bool   `json:"uploaded"`
}

// AddVideo appends a video to the product
// POST /api/products/:id/videos
func (h *ProductHandler) AddVideo(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid product id")
		return
	}

	var req addVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	product, err := h.productService.AddVideo(uint(id), req.URL, req.Alt, req.Uploaded)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, product)
}

// RemoveVideo deletes a video by its list position
// DELETE /api/products/:id/videos/:index
func (h *ProductHandler) RemoveVideo(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid product id")
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.BadRequest(c, "invalid video index")
		return
	}

	product, err := h.productService.RemoveVideo(uint(id), index)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, product)
}
