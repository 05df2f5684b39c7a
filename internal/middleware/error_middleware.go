package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"campusregistry/internal/app/models/dto"
	"campusregistry/internal/pkg/apperrors"
	"campusregistry/internal/pkg/logger"
)

// verboseErrors controls whether store error detail is included in
// responses. Enabled in development mode only.
var verboseErrors bool

// SetErrorVerbosity toggles diagnostic detail in error responses.
func SetErrorVerbosity(verbose bool) {
	verboseErrors = verbose
}

// HandleAPIError maps pipeline errors onto HTTP status codes. Every
// service error wraps one of the apperrors base errors; anything else
// is treated as internal.
func HandleAPIError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, apperrors.ErrNotFound):
		status = http.StatusNotFound
	}

	resp := dto.NewErrorResponse(err.Error())

	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) && customErr.Details != "" {
		if status == http.StatusInternalServerError {
			logger.Error().
				Str("path", c.FullPath()).
				Str("method", c.Request.Method).
				Str("detail", customErr.Details).
				Msg("request failed")
		}
		if verboseErrors {
			resp = resp.WithDetails(customErr.Details)
		}
	}

	c.JSON(status, resp)
}
