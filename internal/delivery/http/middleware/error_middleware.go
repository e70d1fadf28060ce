package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"
	"unicode"
	"unicode/utf8"

	domainerrors "sakny/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Field-level validation failures from the request validator
	var validationErrs playground.ValidationErrors
	if errors.As(err, &validationErrs) {
		m.writeEnvelope(c, http.StatusBadRequest, "VALIDATION_FAILED",
			"Request validation failed", fieldErrors(validationErrs))

		return
	}

	// Business errors carry their own HTTP status and code
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		m.writeEnvelope(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), nil)

		return
	}

	// Echo's own errors (404 route miss, 405, body limit, ...)
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		m.writeEnvelope(c, httpErr.Code, "HTTP_ERROR", fmt.Sprintf("%v", httpErr.Message), nil)

		return
	}

	// Default to internal error, log and return a generic message
	m.logger.Error("Unhandled error",
		"error", err.Error(),
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
	)

	m.writeEnvelope(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
}

func (m *ErrorMiddleware) writeEnvelope(c echo.Context, status int, errorCode, message string, fields []domainerrors.ValidationError) {
	err := c.JSON(status, domainerrors.ErrorResponse{
		ErrorCode:        errorCode,
		Message:          message,
		Timestamp:        time.Now().UTC(),
		Path:             c.Request().URL.Path,
		Status:           status,
		ValidationErrors: fields,
	})
	if err != nil {
		m.logger.Error("Failed to write error response", "error", err.Error())
	}
}

// fieldErrors converts playground failures into the wire format, one entry
// per rejected field.
func fieldErrors(validationErrs playground.ValidationErrors) []domainerrors.ValidationError {
	fields := make([]domainerrors.ValidationError, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fields = append(fields, domainerrors.ValidationError{
			Field:         jsonFieldName(fieldErr.Field()),
			Message:       fieldMessage(fieldErr),
			RejectedValue: fieldErr.Value(),
		})
	}

	return fields
}

func fieldMessage(fieldErr playground.FieldError) string {
	if fieldErr.Param() == "" {
		return fmt.Sprintf("failed on the '%s' rule", fieldErr.Tag())
	}

	return fmt.Sprintf("failed on the '%s=%s' rule", fieldErr.Tag(), fieldErr.Param())
}

// jsonFieldName lowercases the first rune so the reported field matches the
// request body's camelCase keys.
func jsonFieldName(name string) string {
	if name == "" {
		return name
	}

	r, size := utf8.DecodeRuneInString(name)

	return string(unicode.ToLower(r)) + name[size:]
}
