package handlers

import (
	"net/http"

	apperrors "calling-tracker-backend/internal/errors"
	"calling-tracker-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// handleError maps service errors onto HTTP responses. Errors that are not part of
// the workflow vocabulary are logged and reported as a generic 500.
func handleError(c *gin.Context, err error, operation string) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case apperrors.IsPreconditionFailed(err), apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case apperrors.IsConfiguration(err):
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	default:
		logger.FromGinContext(c).WithError(err).Errorf("Failed to %s", operation)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}

// parseUUIDParam reads a path parameter as a UUID, writing a 400 when it is malformed
func parseUUIDParam(c *gin.Context, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid " + label + ": invalid UUID format"})
		return uuid.Nil, false
	}
	return id, true
}

// bindJSON decodes the request body, writing a 400 when it is not valid JSON
func bindJSON(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return false
	}
	return true
}
