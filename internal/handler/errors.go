package handler

import (
	"errors"
	"fmt"
	"net/http"

	"ecommerce-platform/internal/common"
	"ecommerce-platform/internal/dto"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// fail maps a service error to the HTTP error the client sees. fallback is
// the message used for anything outside the known error kinds. The cause is
// kept as the internal error for logging only.
func fail(fallback string, err error) *echo.HTTPError {
	var he *echo.HTTPError
	switch {
	case errors.As(err, &he):
		return he
	case errors.Is(err, common.ErrorDuplicateUser):
		return echo.NewHTTPError(http.StatusBadRequest, "User already exists").SetInternal(err)
	case errors.Is(err, common.ErrorInvalidCredentials):
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials").SetInternal(err)
	case errors.Is(err, common.ErrorUnauthorized):
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token").SetInternal(err)
	case errors.Is(err, common.ErrorValidation):
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request").SetInternal(err)
	case errors.Is(err, common.ErrorNotReady):
		return echo.NewHTTPError(http.StatusServiceUnavailable, "Service not ready").SetInternal(err)
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, fallback).SetInternal(err)
	}
}

func notFound(message string, err error) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusNotFound, message).SetInternal(err)
}

// bind decodes and validates the request body.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request").SetInternal(err)
	}
	if err := c.Validate(req); err != nil {
		return fail("Invalid request", err)
	}
	return nil
}

// ErrorHandler renders every error as {"error": message}.
func ErrorHandler(log *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if !errors.As(err, &he) {
			he = echo.NewHTTPError(http.StatusInternalServerError, "Internal server error").SetInternal(err)
		}

		message, ok := he.Message.(string)
		if !ok {
			message = fmt.Sprint(he.Message)
		}

		if he.Code >= http.StatusInternalServerError {
			log.Error("request error",
				zap.String("path", c.Path()),
				zap.Int("status", he.Code),
				zap.String("message", message),
				zap.NamedError("cause", he.Internal),
			)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(he.Code)
		} else {
			err = c.JSON(he.Code, dto.ErrorResponse{Error: message})
		}
		if err != nil {
			log.Error("write error response", zap.Error(err))
		}
	}
}
