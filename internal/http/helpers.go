package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mrlokans/qualification/internal/entities"
	"github.com/mrlokans/qualification/internal/logger"
)

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`    // machine-readable error code
	Details any    `json:"details,omitempty"` // additional context (validation errors, etc.)
}

// --- Error Response Helpers ---

// respondBadRequest sends a 400 Bad Request response.
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// respondNotFound sends a 404 Not Found response.
func respondNotFound(c *gin.Context, resource string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: resource + " not found"})
}

// respondInternalError logs the error and sends a 500 Internal Server Error response.
// The actual error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, log *logger.Logger, err error, context string) {
	log.Error("Internal error", "context", context, "path", c.FullPath(), "error", err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// respondValidationError sends a 400 response listing the offending document fields.
func respondValidationError(c *gin.Context, verr *entities.ValidationError) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   verr.Error(),
		Code:    "validation_failed",
		Details: verr.Fields(),
	})
}

// respondStoreError maps repository errors: missing records become 404,
// schema violations 400, anything else 500.
func respondStoreError(c *gin.Context, log *logger.Logger, err error, resource string) {
	var verr *entities.ValidationError
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		respondNotFound(c, resource)
	case errors.As(err, &verr):
		respondValidationError(c, verr)
	default:
		respondInternalError(c, log, err, resource)
	}
}

// --- Success Response Helpers ---

// respondCreated sends a 201 Created response with data.
func respondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// activeOnly reports whether the request asked for active documents only.
func activeOnly(c *gin.Context) bool {
	return c.Query("active") == "true"
}
