// Package handler contains the echo handlers of the API.
package handler

import (
	domainerrors "shopcart/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// bindAndValidate decodes the JSON body into req and runs the struct validator.
// An empty body is rejected before decoding.
func bindAndValidate(c echo.Context, req any) error {
	if c.Request().ContentLength == 0 {
		return domainerrors.ErrRequestBodyRequired
	}

	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithMessage("Invalid request body")
	}

	return c.Validate(req)
}
