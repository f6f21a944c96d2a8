package handlers

import (
	"net/http"

	"github.com/4k6ag/radio-station/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// ListNews pages through news, newest first.
func (h *SiteHandler) ListNews(c *gin.Context) {
	page, err := bindPage(c, models.NewsPageBounds)
	if err != nil {
		respondError(c, err, "News")
		return
	}
	resp, err := h.svc.ListNews(c.Request.Context(), page)
	if err != nil {
		respondError(c, err, "News")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SiteHandler) CreateNews(c *gin.Context) {
	var req models.NewsCreate
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err, "News")
		return
	}
	n, err := h.svc.CreateNews(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "News")
		return
	}
	c.JSON(http.StatusOK, n)
}

// ListGuestbook pages through approved entries, newest first.
func (h *SiteHandler) ListGuestbook(c *gin.Context) {
	page, err := bindPage(c, models.GuestbookPageBounds)
	if err != nil {
		respondError(c, err, "Guestbook entry")
		return
	}
	resp, err := h.svc.ListGuestbook(c.Request.Context(), page)
	if err != nil {
		respondError(c, err, "Guestbook entry")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SiteHandler) CreateGuestbook(c *gin.Context) {
	var req models.GuestbookCreate
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err, "Guestbook entry")
		return
	}
	g, err := h.svc.CreateGuestbook(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Guestbook entry")
		return
	}
	c.JSON(http.StatusOK, g)
}

// CreateContact stores a contact form submission or QSL request.
func (h *SiteHandler) CreateContact(c *gin.Context) {
	var req models.ContactRequestCreate
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err, "Contact request")
		return
	}
	resp, err := h.svc.CreateContact(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Contact request")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListContactRequests is the admin view of submitted requests.
func (h *SiteHandler) ListContactRequests(c *gin.Context) {
	page, err := bindPage(c, models.ContactPageBounds)
	if err != nil {
		respondError(c, err, "Contact request")
		return
	}
	items, err := h.svc.ListContactRequests(c.Request.Context(), page)
	if err != nil {
		respondError(c, err, "Contact request")
		return
	}
	c.JSON(http.StatusOK, items)
}

// bindPage binds limit and offset one at a time so a value that is not an
// integer is reported under its own name, then checks the listing's bounds.
func bindPage(c *gin.Context, bounds models.PageBounds) (models.Page, error) {
	var (
		limit struct {
			Limit *int64 `form:"limit"`
		}
		offset struct {
			Offset *int64 `form:"offset"`
		}
		errs []models.FieldError
	)
	if err := c.ShouldBindQuery(&limit); err != nil {
		errs = append(errs, models.FieldError{Field: "limit", Reason: "must be an integer"})
	}
	if err := c.ShouldBindQuery(&offset); err != nil {
		errs = append(errs, models.FieldError{Field: "offset", Reason: "must be an integer"})
	}
	if len(errs) > 0 {
		return models.Page{}, &models.ValidationError{Fields: errs}
	}
	return bounds.Page(models.PageQuery{Limit: limit.Limit, Offset: offset.Offset})
}
