package handlers

import (
	"net/http"

	"github.com/4k6ag/radio-station/backend/internal/models"
	"github.com/gin-gonic/gin"
)

func (h *SiteHandler) ListQSLCards(c *gin.Context) {
	items, err := h.svc.ListQSLCards(c.Request.Context())
	if err != nil {
		respondError(c, err, "QSL card")
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *SiteHandler) CreateQSLCard(c *gin.Context) {
	var req models.QSLCardCreate
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err, "QSL card")
		return
	}
	q, err := h.svc.CreateQSLCard(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "QSL card")
		return
	}
	c.JSON(http.StatusOK, q)
}

func (h *SiteHandler) ListAchievements(c *gin.Context) {
	items, err := h.svc.ListAchievements(c.Request.Context())
	if err != nil {
		respondError(c, err, "Achievement")
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *SiteHandler) CreateAchievement(c *gin.Context) {
	var req models.AchievementCreate
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err, "Achievement")
		return
	}
	a, err := h.svc.CreateAchievement(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Achievement")
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *SiteHandler) ListGallery(c *gin.Context) {
	items, err := h.svc.ListGallery(c.Request.Context())
	if err != nil {
		respondError(c, err, "Gallery item")
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *SiteHandler) CreateGallery(c *gin.Context) {
	var req models.GalleryCreate
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err, "Gallery item")
		return
	}
	g, err := h.svc.CreateGallery(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Gallery item")
		return
	}
	c.JSON(http.StatusOK, g)
}
