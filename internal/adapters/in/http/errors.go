package http

import (
	"errors"
	"net/http"

	"parcelhub/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// statusFor maps a domain or application error onto an HTTP status and a
// message that is safe to show to the caller.
func statusFor(err error) (int, string) {
	var txErr *errs.TransactionFailedError
	switch {
	case errors.Is(err, errs.ErrUnauthorized):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		return http.StatusConflict, err.Error()
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, err.Error()
	case errors.As(err, &txErr):
		return http.StatusInternalServerError, txErr.Operation + " failed"
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

// errorHandler renders every error returned by a handler or middleware as an
// Error body. Unclassified errors are logged with the request; the caller
// only sees "internal error".
func (s *Server) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var (
		code    int
		message string
		httpErr *echo.HTTPError
	)
	if errors.As(err, &httpErr) {
		code = httpErr.Code
		message = http.StatusText(code)
		if m, ok := httpErr.Message.(string); ok && code < http.StatusInternalServerError {
			message = m
		}
	} else {
		code, message = statusFor(err)
	}

	if code >= http.StatusInternalServerError {
		s.log.Error("request failed",
			zap.String("method", c.Request().Method),
			zap.String("route", c.Path()),
			zap.Error(err),
		)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, Error{Code: code, Message: message})
}
