package handlers

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/petrobase/sitecms/internal/config"
	"github.com/petrobase/sitecms/pkg/response"
)

// MediaHandler stores uploaded files (gallery images, documents, video
// files) under the uploads directory and returns the URL that content
// payloads reference.
type MediaHandler struct {
	uploads *config.UploadsConfig
}

func NewMediaHandler(cfg *config.UploadsConfig) *MediaHandler {
	return &MediaHandler{uploads: cfg}
}

// Upload accepts a multipart file and returns its public URL
// POST /api/media
func (h *MediaHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file is required")
		return
	}

	maxBytes := int64(h.uploads.MaxSizeMB) << 20
	if file.Size > maxBytes {
		response.BadRequest(c, fmt.Sprintf("file exceeds %d MB limit", h.uploads.MaxSizeMB))
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !h.extensionAllowed(ext) {
		response.BadRequest(c, "file type not allowed: "+ext)
		return
	}

	// Random name prevents collisions and path games from the original
	// filename
	name := uuid.New().String() + ext
	subdir := mediaSubdir(ext)

	dir := filepath.Join(h.uploads.Dir, subdir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		response.ServerError(c, "failed to prepare upload directory")
		return
	}

	dst := filepath.Join(dir, name)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		response.ServerError(c, "failed to store file")
		return
	}

	response.Created(c, gin.H{
		"url":      h.uploads.BaseURL + "/" + subdir + "/" + name,
		"filename": file.Filename,
		"size":     file.Size,
	})
}

func (h *MediaHandler) extensionAllowed(ext string) bool {
	if ext == "" {
		return false
	}
	for _, allowed := range h.uploads.AllowedExtensions() {
		if ext == allowed {
			return true
		}
	}
	return false
}

// mediaSubdir groups files by rough type so the uploads directory
// stays browsable.
func mediaSubdir(ext string) string {
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp", ".svg":
		return "images"
	case ".mp4", ".webm":
		return "videos"
	default:
		return "documents"
	}
}
