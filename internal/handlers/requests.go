package handlers

import (
	"fmt"
	"net/url"

	"github.com/go-playground/validator/v10"

	"github.com/nfrund/esgmate/internal/home"
)

// CustomValidator wraps the go-playground/validator library to implement Echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a CustomValidator that also knows the "language" and
// "tab" tags for view state values.
func NewValidator() *CustomValidator {
	v := validator.New()
	mustRegister(v, "language", func(fl validator.FieldLevel) bool {
		_, err := home.ParseLanguage(fl.Field().String())
		return err == nil
	})
	mustRegister(v, "tab", func(fl validator.FieldLevel) bool {
		_, err := home.ParseTab(fl.Field().String())
		return err == nil
	})
	return &CustomValidator{validator: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// HomeQuery is the view state carried in the landing page URL.
type HomeQuery struct {
	Lang string `query:"lang" validate:"omitempty,language"`
	Tab  string `query:"tab" validate:"omitempty,tab"`
}

// State rebuilds the view through home.FromQuery. It expects a validated
// query; a value that still fails to parse yields the initial view.
func (q HomeQuery) State() home.State {
	s, _ := home.FromQuery(url.Values{
		home.QueryLanguage: {q.Lang},
		home.QueryTab:      {q.Tab},
	})
	return s
}
