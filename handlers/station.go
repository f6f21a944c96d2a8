package handlers

import (
	"net/http"

	"github.com/4k6ag/radio-station/backend/internal/models"
	"github.com/gin-gonic/gin"
)

func (h *SiteHandler) GetStation(c *gin.Context) {
	info, err := h.svc.GetStation(c.Request.Context())
	if err != nil {
		respondError(c, err, "Station information")
		return
	}
	c.JSON(http.StatusOK, info)
}

// UpdateStation applies a partial update; absent fields are left untouched.
func (h *SiteHandler) UpdateStation(c *gin.Context) {
	var req models.StationInfoUpdate
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err, "Station")
		return
	}
	info, err := h.svc.UpdateStation(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Station")
		return
	}
	c.JSON(http.StatusOK, info)
}

func (h *SiteHandler) GetStatus(c *gin.Context) {
	st, err := h.svc.GetStatus(c.Request.Context())
	if err != nil {
		respondError(c, err, "Station")
		return
	}
	c.JSON(http.StatusOK, st)
}

func (h *SiteHandler) UpdateStatus(c *gin.Context) {
	var req models.StationStatusUpdate
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err, "Station")
		return
	}
	st, err := h.svc.UpdateStatus(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Station")
		return
	}
	c.JSON(http.StatusOK, st)
}
