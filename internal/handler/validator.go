package handler

import (
	"errors"
	"strconv"

	"ecommerce-platform/internal/common"

	"github.com/go-playground/validator/v10"
)

// RequestValidator plugs go-playground/validator into echo.Context.Validate.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	v := validator.New()
	// bcrypt limits passwords by byte count, the builtin max counts runes
	_ = v.RegisterValidation("maxbytes", maxBytes)

	return &RequestValidator{
		validate: v,
	}
}

func (v *RequestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errors.Join(common.ErrorValidation, err)
	}
	return nil
}

func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(fl.Field().String()) <= limit
}
