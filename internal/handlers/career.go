package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/petrobase/sitecms/internal/services"
	"github.com/petrobase/sitecms/pkg/response"
	"gorm.io/gorm"
)

type CareerHandler struct {
	careerService *services.CareerService
}

func NewCareerHandler(db *gorm.DB) *CareerHandler {
	return &CareerHandler{
		careerService: services.NewCareerService(db),
	}
}

// List returns all job openings
// GET /api/jobs
func (h *CareerHandler) List(c *gin.Context) {
	items, err := h.careerService.List()
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}
	response.Success(c, items)
}

// Get returns a job opening by ID
// GET /api/jobs/:id
func (h *CareerHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid job id")
		return
	}

	job, err := h.careerService.Get(uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, job)
}

// Create creates a job opening
// POST /api/jobs
func (h *CareerHandler) Create(c *gin.Context) {
	var req services.JobOpeningRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	job, err := h.careerService.Create(&req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, job)
}

// Update updates a job opening
// PUT /api/jobs/:id
func (h *CareerHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid job id")
		return
	}

	var req services.JobOpeningRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	job, err := h.careerService.Update(uint(id), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, job)
}

// Delete removes a job opening
// DELETE /api/jobs/:id
func (h *CareerHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid job id")
		return
	}

	if err := h.careerService.Delete(uint(id)); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"message": "job opening deleted"})
}
