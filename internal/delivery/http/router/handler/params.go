// Package handler contains the HTTP handlers for the application.
package handler

import (
	"strconv"

	domainerrors "taskhub/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// pathID parses a numeric path parameter. A non-numeric value renders as the
// given not-found error, matching how an unroutable ID behaves.
func pathID(c echo.Context, name string, notFound *domainerrors.BaseError) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, notFound
	}

	return uint(id), nil
}
