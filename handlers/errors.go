package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/4k6ag/radio-station/backend/internal/models"
	"github.com/4k6ag/radio-station/backend/internal/repository"
	"github.com/4k6ag/radio-station/backend/pkg/logger"
	"github.com/gin-gonic/gin"
)

// respondError maps the error taxonomy onto HTTP: validation 422, missing
// document 404, store fault 503. what names the entity in 404 bodies.
func respondError(c *gin.Context, err error, what string) {
	var ve *models.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "validation failed", "details": ve.Fields})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": what + " not found"})
	case repository.IsFault(err):
		logger.Errorw("store fault", "method", c.Request.Method, "route", c.FullPath(), "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage unavailable"})
	default:
		logger.Errorf("%s %s: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// bindJSON decodes the request body into dst; decode failures become
// validation errors so they are reported as 422 like any other bad input.
func bindJSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		var ute *json.UnmarshalTypeError
		var se *json.SyntaxError
		switch {
		case errors.As(err, &ute):
			field := ute.Field
			if field == "" {
				field = "body"
			}
			return models.NewValidationError(field, "must be of type "+ute.Type.String())
		case errors.As(err, &se):
			return models.NewValidationError("body", "malformed JSON")
		case errors.Is(err, io.EOF):
			return models.NewValidationError("body", "request body required")
		default:
			return models.NewValidationError("body", err.Error())
		}
	}
	return nil
}
