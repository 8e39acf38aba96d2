package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/petrobase/sitecms/internal/services"
	"github.com/petrobase/sitecms/pkg/response"
	"gorm.io/gorm"
)

type LocationHandler struct {
	locationService *services.LocationService
}

func NewLocationHandler(db *gorm.DB) *LocationHandler {
	return &LocationHandler{
		locationService: services.NewLocationService(db),
	}
}

// List returns all locations
// GET /api/locations
func (h *LocationHandler) List(c *gin.Context) {
	items, err := h.locationService.List()
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}
	response.Success(c, items)
}

// Get returns a location by ID
// GET /api/locations/:id
func (h *LocationHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid location id")
		return
	}

	location, err := h.locationService.Get(uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, location)
}

// Create creates a location
// POST /api/locations
func (h *LocationHandler) Create(c *gin.Context) {
	var req services.LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	location, err := h.locationService.Create(&req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, location)
}

// Update updates a location
// PUT /api/locations/:id
func (h *LocationHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid location id")
		return
	}

	var req services.LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	location, err := h.locationService.Update(uint(id), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, location)
}

// Delete removes a location
// DELETE /api/locations/:id
func (h *LocationHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid location id")
		return
	}

	if err := h.locationService.Delete(uint(id)); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"message": "location deleted"})
}
