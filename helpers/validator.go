package helpers

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct runs struct-tag validation on a payload and returns a
// field-to-message map, or nil when the payload is valid.
func ValidateStruct(payload interface{}) map[string]string {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errors["payload"] = "invalid payload"
		return errors
	}

	for _, e := range validationErrors {
		field := e.Field()
		switch e.Tag() {
		case "required":
			errors[field] = field + " is required"
		case "email":
			errors[field] = field + " must be a valid email address"
		case "oneof":
			errors[field] = field + " must be one of: " + e.Param()
		case "gte":
			errors[field] = field + " must be at least " + e.Param()
		case "lte":
			errors[field] = field + " must be at most " + e.Param()
		case "datetime":
			errors[field] = field + " must be a date formatted " + e.Param()
		default:
			errors[field] = field + " is invalid"
		}
	}
	return errors
}
