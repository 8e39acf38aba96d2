package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/petrobase/sitecms/internal/services"
	"github.com/petrobase/sitecms/pkg/response"
	"gorm.io/gorm"
)

// ContactHandler is the backoffice side of the message inbox. The
// public submission endpoint lives in PublicHandler.
type ContactHandler struct {
	contactService *services.ContactService
}

func NewContactHandler(db *gorm.DB) *ContactHandler {
	return &ContactHandler{
		contactService: services.NewContactService(db),
	}
}

// List returns paginated contact messages
// GET /api/contact-messages
func (h *ContactHandler) List(c *gin.Context) {
	var req services.ContactListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.contactService.List(&req)
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}
	response.Success(c, resp)
}

// Get returns a message and marks it read if it was new
// GET /api/contact-messages/:id
func (h *ContactHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid message id")
		return
	}

	message, err := h.contactService.Get(uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}

	if message.Status == "new" {
		if updated, err := h.contactService.MarkStatus(message.ID, "read"); err == nil {
			message = updated
		}
	}

	response.Success(c, message)
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=new read archived"`
}

// UpdateStatus moves a message through its lifecycle
// PUT /api/contact-messages/:id/status
func (h *ContactHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid message id")
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	message, err := h.contactService.MarkStatus(uint(id), req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, message)
}

// Delete removes a message
// DELETE /api/contact-messages/:id
func (h *ContactHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid message id")
		return
	}

	if err := h.contactService.Delete(uint(id)); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"message": "contact message deleted"})
}
