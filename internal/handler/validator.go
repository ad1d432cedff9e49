package handler

import (
    "net/http"

    "github.com/go-playground/validator/v10"
    "github.com/labstack/echo/v4"
)

// Validator adapts go-playground/validator to echo.Validator so handlers can
// call c.Validate on bound request bodies.
type Validator struct {
    v *validator.Validate
}

func NewValidator() *Validator {
    return &Validator{v: validator.New(validator.WithRequiredStructEnabled())}
}

func (cv *Validator) Validate(i interface{}) error {
    return cv.v.Struct(i)
}

// bindValid binds the request body into dst and validates it.  When it
// returns false a 400 response has already been written.
func bindValid(c echo.Context, dst interface{}, invalidMsg string) bool {
    if err := c.Bind(dst); err != nil {
        _ = c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
        return false
    }
    if err := c.Validate(dst); err != nil {
        _ = c.JSON(http.StatusBadRequest, echo.Map{"error": invalidMsg})
        return false
    }
    return true
}
