package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "product-relations-backend/internal/errors"
	"product-relations-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// statusFor maps a service error onto an HTTP status code
func statusFor(err error) int {
	switch {
	case apperrors.IsValidation(err), apperrors.IsInvalidRelation(err):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrInvalidContext), errors.Is(err, apperrors.ErrInvalidPeriod),
		errors.Is(err, apperrors.ErrInvalidDisplayStyle), errors.Is(err, apperrors.ErrInvalidPaginationParams):
		return http.StatusBadRequest
	case apperrors.IsUnknownGroup(err), apperrors.IsNotFound(err):
		return http.StatusNotFound
	case apperrors.IsGroupInUse(err):
		return http.StatusConflict
	case apperrors.IsAuthentication(err):
		return http.StatusUnauthorized
	case apperrors.IsAuthorization(err):
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}

// respondError writes err with its mapped status. Server errors are logged
// and hidden from the client.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.FromGinContext(c).WithError(err).Error("Request failed")
		c.JSON(status, ErrorResponse{Error: "Internal server error"})
		return
	}
	c.JSON(status, ErrorResponse{Error: err.Error()})
}

// parseID reads a positive integer path parameter
func parseID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid " + name})
		return 0, false
	}
	return id, true
}
