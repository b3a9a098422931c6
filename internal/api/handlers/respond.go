package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	apperrors "meal-planner-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// Collection paths used for form redirects
const (
	productsPath   = "/api/v1/products"
	dishesPath     = "/api/v1/dishes"
	mealGroupsPath = "/api/v1/meal-groups"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error  string            `json:"error" example:"error message"`
	Fields map[string]string `json:"fields,omitempty"`
}

// isFormSubmission reports whether the request body was posted by an HTML form
func isFormSubmission(c *gin.Context) bool {
	switch c.ContentType() {
	case gin.MIMEPOSTForm, gin.MIMEMultipartPOSTForm:
		return true
	}
	return false
}

// parseID reads the :id path parameter, answering 400 when it is not a positive integer
func parseID(c *gin.Context, entity string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("Invalid %s ID", entity)})
		return 0, false
	}
	return uint(id), true
}

// parseFocus reads the optional ?focus= query parameter
func parseFocus(c *gin.Context) *uint {
	raw := c.Query("focus")
	if raw == "" {
		return nil
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil
	}
	focus := uint(id)
	return &focus
}

// redirectToCollection answers a form submission with 303 See Other to the collection view,
// focused on id when it is not zero
func redirectToCollection(c *gin.Context, path string, id uint) {
	target := path
	if id != 0 {
		target = fmt.Sprintf("%s?focus=%d", path, id)
	}
	c.Redirect(http.StatusSeeOther, target)
}

// respondError maps catalog errors to HTTP responses. A missing entity on a form submission
// redirects to the collection view instead of failing.
func respondError(c *gin.Context, err error, action, collection string) {
	var vErr *apperrors.ValidationError
	var dupErr *apperrors.DuplicateNameError

	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error(), Fields: vErr.FieldMessages()})
	case errors.As(err, &dupErr):
		field := dupErr.Field
		if field == "" {
			field = "name"
		}
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error(), Fields: map[string]string{field: "is already in use"}})
	case apperrors.IsNotFound(err):
		if isFormSubmission(c) {
			redirectToCollection(c, collection, 0)
			return
		}
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action, "details": err.Error()})
	}
}
