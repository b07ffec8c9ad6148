package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eduplat/courses/internal/app/models/dto"
	"github.com/eduplat/courses/internal/pkg/apperrors"
	"github.com/eduplat/courses/internal/pkg/logger"
)

// HandleAPIError maps service errors to HTTP responses. Every error body
// is a bare detail object.
func HandleAPIError(c *gin.Context, err error) {
	var custom *apperrors.CustomError

	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound):
		detail := "Not Found"
		if errors.As(err, &custom) && custom.Message != "" {
			detail = custom.Message
		}
		c.JSON(http.StatusNotFound, dto.NewDetailResponse(detail))
	case errors.Is(err, apperrors.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.NewDetailResponse("User not found"))
	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, dto.NewDetailResponse("Token has expired"))
	case errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(http.StatusUnauthorized, dto.NewDetailResponse("Invalid token"))
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.NewDetailResponse("Unauthorized"))
	case errors.Is(err, apperrors.ErrValidationFailed):
		detail := "Validation failed"
		if errors.As(err, &custom) && custom.Message != "" {
			detail = custom.Message
		}
		c.JSON(http.StatusUnprocessableEntity, dto.NewDetailResponse(detail))
	case errors.Is(err, apperrors.ErrBadRequest):
		detail := "Bad request"
		if errors.As(err, &custom) && custom.Message != "" {
			detail = custom.Message
		}
		c.JSON(http.StatusBadRequest, dto.NewDetailResponse(detail))
	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		c.JSON(http.StatusInternalServerError, dto.NewDetailResponse("Internal server error"))
	}
}
