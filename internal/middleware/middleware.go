package middleware

import (
	"net/http"

	"souqStore/pkg/logger"
	jsonres "souqStore/pkg/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ErrorHandler converts errors that escape the handlers (including echo's
// own routing errors) into the JSON error envelope. Everything unexpected
// is logged server-side and reported as a generic 500.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "internal server error"

	if httpErr, ok := err.(*echo.HTTPError); ok {
		code = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
	}

	if code >= http.StatusInternalServerError {
		logger.Error("Unhandled request error",
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"error", err.Error(),
		)
	}

	if writeErr := c.JSON(code, jsonres.Error(http.StatusText(code), message, nil)); writeErr != nil {
		logger.Error("Failed to write error response", writeErr)
	}
}

// RequestID attaches a request id to the context and response headers so
// log lines from one request can be correlated.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(echo.HeaderXRequestID)
			if id == "" {
				id = uuid.NewString()
			}

			c.Set("request_id", id)
			c.Response().Header().Set(echo.HeaderXRequestID, id)

			return next(c)
		}
	}
}
