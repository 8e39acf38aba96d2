package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/petrobase/sitecms/internal/services"
	"github.com/petrobase/sitecms/pkg/response"
	"gorm.io/gorm"
)

type SupportHandler struct {
	supportService *services.SupportService
}

func NewSupportHandler(db *gorm.DB) *SupportHandler {
	return &SupportHandler{
		supportService: services.NewSupportService(db),
	}
}

// List returns support articles, optionally filtered by category
// GET /api/support-articles?category=technical
func (h *SupportHandler) List(c *gin.Context) {
	items, err := h.supportService.List(c.Query("category"))
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}
	response.Success(c, items)
}

// Get returns a support article by ID
// GET /api/support-articles/:id
func (h *SupportHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid article id")
		return
	}

	article, err := h.supportService.Get(uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, article)
}

// Create creates a support article
// POST /api/support-articles
func (h *SupportHandler) Create(c *gin.Context) {
	var req services.SupportArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	article, err := h.supportService.Create(&req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, article)
}

// Update updates a support article
// PUT /api/support-articles/:id
func (h *SupportHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid article id")
		return
	}

	var req services.SupportArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	article, err := h.supportService.Update(uint(id), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, article)
}

// Delete removes a support article
// DELETE /api/support-articles/:id
func (h *SupportHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid article id")
		return
	}

	if err := h.supportService.Delete(uint(id)); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"message": "support article deleted"})
}
