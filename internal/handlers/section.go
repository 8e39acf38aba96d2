package handlers

import (
	"encoding/json"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/petrobase/sitecms/internal/services"
	"github.com/petrobase/sitecms/pkg/response"
	"gorm.io/gorm"
)

// SectionHandler exposes the flexible content editor. Structured form
// editing and the raw-JSON escape hatch are separate endpoints so the
// backoffice can switch between them per section.
type SectionHandler struct {
	sectionService *services.SectionService
}

func NewSectionHandler(db *gorm.DB) *SectionHandler {
	return &SectionHandler{
		sectionService: services.NewSectionService(db),
	}
}

// List returns sections, optionally filtered by page
// GET /api/sections?page=footer
func (h *SectionHandler) List(c *gin.Context) {
	items, err := h.sectionService.List(c.Query("page"))
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}
	response.Success(c, items)
}

// Get returns one section with its raw payload
// GET /api/sections/:id
func (h *SectionHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid section id")
		return
	}

	section, err := h.sectionService.Get(uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, section)
}

// Create adds a new section
// POST /api/sections
func (h *SectionHandler) Create(c *gin.Context) {
	var req services.CreateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	section, err := h.sectionService.Create(&req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, section)
}

// Update changes section metadata (title, visibility, order)
// PUT /api/sections/:id
func (h *SectionHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid section id")
		return
	}

	var req services.UpdateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	section, err := h.sectionService.Update(uint(id), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, section)
}

// Delete removes a section
// DELETE /api/sections/:id
func (h *SectionHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid section id")
		return
	}

	if err := h.sectionService.Delete(uint(id)); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"message": "section deleted"})
}

// GetForm returns the typed form model for the structured editor
// GET /api/sections/:id/form
func (h *SectionHandler) GetForm(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid section id")
		return
	}

	form, err := h.sectionService.GetForm(uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, form)
}

// UpdateForm saves a structured form submission
// PUT /api/sections/:id/form
func (h *SectionHandler) UpdateForm(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid section id")
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.BadRequest(c, "failed to read request body")
		return
	}

	section, err := h.sectionService.UpdateForm(uint(id), body)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, section)
}

type updateRawRequest struct {
	Content json.RawMessage `json:"content" binding:"required"`
}

// UpdateRaw replaces the payload through the raw-JSON escape hatch
// PUT /api/sections/:id/raw
func (h *SectionHandler) UpdateRaw(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid section id")
		return
	}

	var req updateRawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	section, err := h.sectionService.UpdateRaw(uint(id), req.Content)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, section)
}
