package httpapi

import (
	"errors"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"

	"github.com/i474232898/weather-lookup/internal/weather"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	StatusCode int          `json:"statusCode"`
	Message    string       `json:"message"`
	Error      string       `json:"error"`
	Timestamp  string       `json:"timestamp"`
	Path       string       `json:"path"`
	Method     string       `json:"method"`
	TraceID    string       `json:"traceId"`
	Errors     []FieldError `json:"errors,omitempty"`
}

// FieldError describes one rejected request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// StatusForKind maps a domain error kind to the HTTP status returned to
// clients. Provider credential problems are the server's fault, hence 502.
func StatusForKind(k weather.Kind) int {
	switch k {
	case weather.KindValidation:
		return fiber.StatusBadRequest
	case weather.KindNotFound:
		return fiber.StatusNotFound
	case weather.KindRateLimited:
		return fiber.StatusServiceUnavailable
	case weather.KindTimeout:
		return fiber.StatusGatewayTimeout
	default:
		return fiber.StatusBadGateway
	}
}

// ErrorHandler renders any handler error as an ErrorResponse.
func ErrorHandler(logger *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		resp := ErrorResponse{
			StatusCode: fiber.StatusInternalServerError,
			Message:    "Internal server error",
			Timestamp:  time.Now().UTC().Format(time.RFC3339Nano),
			Path:       c.OriginalURL(),
			Method:     c.Method(),
			TraceID:    uuid.NewString(),
		}

		var (
			fe  *fiber.Error
			we  *weather.Error
			ves validator.ValidationErrors
		)
		switch {
		case errors.As(err, &ves):
			resp.StatusCode = fiber.StatusBadRequest
			resp.Message = "Validation failed"
			for _, v := range ves {
				resp.Errors = append(resp.Errors, FieldError{Field: v.Field(), Message: fieldMessage(v)})
			}
		case errors.As(err, &fe):
			resp.StatusCode = fe.Code
			resp.Message = fe.Message
		case errors.As(err, &we):
			resp.StatusCode = StatusForKind(we.Kind)
			resp.Message = we.Msg
			if resp.Message == "" {
				resp.Message = we.Kind.String()
			}
		}
		resp.Error = utils.StatusMessage(resp.StatusCode)

		attrs := []any{
			"status", resp.StatusCode,
			"method", resp.Method,
			"path", resp.Path,
			"trace_id", resp.TraceID,
			"error", err,
		}
		if resp.StatusCode >= fiber.StatusInternalServerError {
			logger.Error("request failed", attrs...)
		} else {
			logger.Warn("request rejected", attrs...)
		}

		return c.Status(resp.StatusCode).JSON(resp)
	}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must have at least " + fe.Param() + " characters or items"
	case "max":
		return "must have at most " + fe.Param() + " characters or items"
	default:
		return "failed " + fe.Tag() + " validation"
	}
}
