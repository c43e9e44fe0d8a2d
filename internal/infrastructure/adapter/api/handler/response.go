package handler

import (
	"errors"
	"net/http"

	errs "github.com/amirhossein-jamali/timekeeper/internal/domain/error"
	coreport "github.com/amirhossein-jamali/timekeeper/internal/domain/port/core"
	"github.com/amirhossein-jamali/timekeeper/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/timekeeper/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/timekeeper/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// statusFor maps domain errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrInvalidFormat), errors.Is(err, errs.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrOutOfRange):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes a standardized error body; unknown errors are logged and hidden
func respondError(c *gin.Context, logger coreport.Logger, err error) {
	status := statusFor(err)
	message := err.Error()

	if status == http.StatusInternalServerError {
		fields := errs.LogFields(err)
		fields["path"] = c.Request.URL.Path
		logger.Error("Unexpected error while handling request", fields)
		message = "Internal server error"
	}

	_ = c.Error(err)
	c.JSON(status, dto.ErrorResponse{
		Code:      errs.ErrorCode(err),
		Message:   message,
		RequestID: middleware.GetRequestID(c),
	})
}

// respondBindingError rejects a request whose body or query could not be bound
func respondBindingError(c *gin.Context, logger coreport.Logger, err error) {
	logger.Warn("Invalid request format", map[string]any{
		"path":  c.Request.URL.Path,
		"error": err.Error(),
	})
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:      errs.ErrorCode(errs.ErrInvalidRequest),
		Message:   "Invalid request format: " + err.Error(),
		RequestID: middleware.GetRequestID(c),
	})
}

func toTimeResponse(result *usecase.TimeResult) dto.TimeResponse {
	return dto.TimeResponse{
		Time:         result.Time,
		Hours:        result.Hours,
		Minutes:      result.Minutes,
		Seconds:      result.Seconds,
		Milliseconds: result.Milliseconds,
	}
}

func toDurationResponse(result *usecase.DurationResult) dto.DurationResponse {
	return dto.DurationResponse{
		Duration:          result.Duration,
		TotalMilliseconds: result.Milliseconds,
		TotalSeconds:      result.Seconds,
	}
}
