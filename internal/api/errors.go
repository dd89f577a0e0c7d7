package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"github.com/thenoetrevino/kanban/internal/models"
)

// statusFor maps the error taxonomy onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// fail writes the error envelope. Validation and not-found errors are
// reported as-is; anything else is logged and answered with failMsg.
// Echo's own errors go back to errorHandler.
func (h *handlers) fail(c echo.Context, failMsg string, err error) error {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he
	}

	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		h.log.WithFields(log.Fields{
			"request_id": requestID(c),
			"method":     c.Request().Method,
			"path":       c.Path(),
		}).WithError(err).Error(failMsg)
		msg = failMsg
	}
	return c.JSON(status, Envelope{Success: false, Message: msg})
}

// errorHandler renders echo's own errors (unknown route, body too large,
// panics recovered by middleware) in the response envelope.
func errorHandler(logger *log.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		msg := "Internal Server Error"
		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
			if m, ok := he.Message.(string); ok {
				msg = m
			} else {
				msg = http.StatusText(status)
			}
		}
		if status >= http.StatusInternalServerError {
			logger.WithField("request_id", requestID(c)).WithError(err).Error("unhandled error")
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, Envelope{Success: false, Message: msg})
		}
		if err != nil {
			logger.WithError(err).Error("failed to write error response")
		}
	}
}
