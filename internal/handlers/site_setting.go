package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/petrobase/sitecms/internal/services"
	"github.com/petrobase/sitecms/pkg/response"
	"gorm.io/gorm"
)

type SiteSettingHandler struct {
	settingService *services.SiteSettingService
}

func NewSiteSettingHandler(db *gorm.DB) *SiteSettingHandler {
	return &SiteSettingHandler{
		settingService: services.NewSiteSettingService(db),
	}
}

// List returns settings, optionally filtered by group
// GET /api/settings?group=seo
func (h *SiteSettingHandler) List(c *gin.Context) {
	items, err := h.settingService.List(c.Query("group"))
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}
	response.Success(c, items)
}

type updateSettingsRequest struct {
	Updates []services.SettingUpdate `json:"updates" binding:"required,min=1"`
}

// Update applies a batch of setting changes
// PUT /api/settings
func (h *SiteSettingHandler) Update(c *gin.Context) {
	var req updateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.settingService.SetMany(req.Updates); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"message": "settings updated"})
}
