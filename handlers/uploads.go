package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/4k6ag/radio-station/backend/internal/models"
	"github.com/4k6ag/radio-station/backend/internal/storage"
	"github.com/4k6ag/radio-station/backend/pkg/logger"
	"github.com/gin-gonic/gin"
)

const (
	maxImageBytes = 10 << 20
	imageURLTTL   = 7 * 24 * time.Hour
)

// UploadImage stores an image for use as a QSL card or gallery image
// reference and returns its key and a presigned URL.
func (h *SiteHandler) UploadImage(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		respondError(c, models.NewValidationError("file", "multipart file required"), "Upload")
		return
	}
	if fh.Size <= 0 || fh.Size > maxImageBytes {
		respondError(c, models.NewValidationError("file", "size must be between 1 byte and 10 MiB"), "Upload")
		return
	}
	contentType := fh.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		respondError(c, models.NewValidationError("file", "must be an image"), "Upload")
		return
	}
	f, err := fh.Open()
	if err != nil {
		respondError(c, models.NewValidationError("file", "unreadable upload"), "Upload")
		return
	}
	defer f.Close()

	key := storage.ImageKey(fh.Filename)
	if err := h.images.UploadFile(c.Request.Context(), key, f, fh.Size, contentType); err != nil {
		logger.Errorf("upload %s: %v", key, err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image storage unavailable"})
		return
	}
	url, err := h.images.GetPresignedURL(c.Request.Context(), key, imageURLTTL)
	if err != nil {
		logger.Errorf("presign %s: %v", key, err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image storage unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"key": key, "url": url})
}
