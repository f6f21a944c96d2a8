package handlers

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/4k6ag/radio-station/backend/internal/models"
	"github.com/4k6ag/radio-station/backend/internal/service"
	"github.com/gin-gonic/gin"
)

// APIVersion is reported by the liveness endpoint.
const APIVersion = "1.0.0"

// ImageStore is the object storage used for uploaded images.
type ImageStore interface {
	UploadFile(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	GetPresignedURL(ctx context.Context, key string, expires time.Duration) (string, error)
}

// SiteHandler serves the station website API.
type SiteHandler struct {
	svc        *service.Service
	images     ImageStore
	writeLimit gin.HandlerFunc
}

// Option configures optional SiteHandler collaborators.
type Option func(*SiteHandler)

// WithImageStore enables POST /uploads.
func WithImageStore(s ImageStore) Option { return func(h *SiteHandler) { h.images = s } }

// WithWriteLimiter guards the public write endpoints (guestbook, contact, uploads).
func WithWriteLimiter(m gin.HandlerFunc) Option { return func(h *SiteHandler) { h.writeLimit = m } }

func NewSiteHandler(svc *service.Service, opts ...Option) *SiteHandler {
	h := &SiteHandler{svc: svc}
	for _, o := range opts {
		o(h)
	}
	return h
}

// Register routes under the given group (normally /api).
func (h *SiteHandler) Register(rg *gin.RouterGroup) {
	limited := []gin.HandlerFunc{}
	if h.writeLimit != nil {
		limited = append(limited, h.writeLimit)
	}
	with := func(hf gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, limited...), hf)
	}

	rg.GET("/", h.Root)

	rg.GET("/station", h.GetStation)
	rg.PUT("/station", h.UpdateStation)
	rg.GET("/status", h.GetStatus)
	rg.PUT("/status", h.UpdateStatus)

	rg.GET("/equipment", h.ListEquipment)
	rg.POST("/equipment", h.CreateEquipment)
	rg.GET("/equipment/:id", h.GetEquipment)
	rg.PUT("/equipment/:id", h.UpdateEquipment)
	rg.DELETE("/equipment/:id", h.DeleteEquipment)

	rg.GET("/qsl-cards", h.ListQSLCards)
	rg.POST("/qsl-cards", h.CreateQSLCard)
	rg.GET("/achievements", h.ListAchievements)
	rg.POST("/achievements", h.CreateAchievement)
	rg.GET("/gallery", h.ListGallery)
	rg.POST("/gallery", h.CreateGallery)

	rg.GET("/news", h.ListNews)
	rg.POST("/news", h.CreateNews)
	rg.GET("/guestbook", h.ListGuestbook)
	rg.POST("/guestbook", with(h.CreateGuestbook)...)
	rg.POST("/contact", with(h.CreateContact)...)
	rg.GET("/contact-requests", h.ListContactRequests)

	if h.images != nil {
		rg.POST("/uploads", with(h.UploadImage)...)
	}
}

// Root is the API liveness message.
func (h *SiteHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": models.StationCallsign + " Radio Station API is running", "version": APIVersion})
}
