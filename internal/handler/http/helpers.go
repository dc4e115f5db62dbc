package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/firaol-d/clubhub/internal/domain/entity"
	"github.com/firaol-d/clubhub/internal/handler/http/dto"
)

// ErrorHandler centralizes error handling for HTTP responses
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{Error: message})
}

// SuccessHandler centralizes success responses
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// MessageHandler centralizes message responses
func MessageHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.MessageResponse{Message: message})
}

// BindAndValidate binds JSON request and validates it
func BindAndValidate(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return err
	}
	return nil
}

// paginationParams reads the page and limit query parameters, clamping them
// to page >= 1 and 1 <= limit <= 100 with a default limit of 10.
func paginationParams(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

// totalPages computes the page count for a paginated response.
func totalPages(total int64, limit int) int {
	pages := int(total) / limit
	if int(total)%limit != 0 {
		pages++
	}
	return pages
}

// RespondError maps domain errors to HTTP status codes. Unrecognized errors
// come back as a generic 500 so internals never leak to the client.
func RespondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, entity.ErrValidation),
		errors.Is(err, entity.ErrInvalidMainTag),
		errors.Is(err, entity.ErrEmptyTagSet),
		errors.Is(err, entity.ErrInvalidParentType):
		ErrorHandler(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, entity.ErrForbidden):
		ErrorHandler(c, http.StatusForbidden, "forbidden")
	case errors.Is(err, entity.ErrNotFound):
		ErrorHandler(c, http.StatusNotFound, "not found")
	case errors.Is(err, entity.ErrConflict):
		ErrorHandler(c, http.StatusConflict, err.Error())
	default:
		ErrorHandler(c, http.StatusInternalServerError, "internal server error")
	}
}
