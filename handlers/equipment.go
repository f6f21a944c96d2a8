package handlers

import (
	"net/http"

	"github.com/4k6ag/radio-station/backend/internal/models"
	"github.com/gin-gonic/gin"
)

func (h *SiteHandler) ListEquipment(c *gin.Context) {
	items, err := h.svc.ListEquipment(c.Request.Context())
	if err != nil {
		respondError(c, err, "Equipment")
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *SiteHandler) GetEquipment(c *gin.Context) {
	e, err := h.svc.GetEquipment(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Equipment")
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *SiteHandler) CreateEquipment(c *gin.Context) {
	var req models.EquipmentCreate
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err, "Equipment")
		return
	}
	e, err := h.svc.CreateEquipment(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Equipment")
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *SiteHandler) UpdateEquipment(c *gin.Context) {
	var req models.EquipmentUpdate
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err, "Equipment")
		return
	}
	e, err := h.svc.UpdateEquipment(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Equipment")
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *SiteHandler) DeleteEquipment(c *gin.Context) {
	if err := h.svc.DeleteEquipment(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Equipment")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Equipment deleted successfully"})
}
