package validator

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// dateLayouts are the date forms records are stored with, from full
// timestamps down to a bare day.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

var messages = map[string]func(field, param string) string{
	"required": func(f, _ string) string { return f + " is required" },
	"email":    func(f, _ string) string { return f + " must be a valid email address" },
	"oneof":    func(f, p string) string { return f + " must be one of: " + p },
	"min":      func(f, p string) string { return f + " must be at least " + p + " characters" },
	"max":      func(f, p string) string { return f + " must be at most " + p + " characters" },
	"gt":       func(f, p string) string { return f + " must be greater than " + p },
	"gte":      func(f, p string) string { return f + " must be greater than or equal to " + p },
	"lte":      func(f, p string) string { return f + " must be less than or equal to " + p },
	"isodate":  func(f, _ string) string { return f + " must be an ISO date, e.g. 2024-05-15 or 2024-05-15T10:00" },
}

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()
	// Report fields by their JSON names so messages match the request body.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})
	v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		return IsDate(fl.Field().String())
	})
	return &CustomValidator{
		validator: v,
	}
}

// IsDate reports whether value is in one of the accepted date forms.
func IsDate(value string) bool {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, value); err == nil {
			return true
		}
	}
	return false
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// FormatValidationErrors turns a validation failure into one message per
// field. Errors of any other kind yield an empty map.
func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors
	}
	for _, e := range validationErrors {
		field := e.Field()
		if format, known := messages[e.Tag()]; known {
			errors[field] = format(field, e.Param())
		} else {
			errors[field] = field + " is invalid"
		}
	}
	return errors
}
