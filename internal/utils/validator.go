// internal/utils/validator.go
package utils

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report field names from json tags so validation errors line up with the
	// request payload (e.g. "payment_mode", not "PaymentMode").
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// GetValidationErrors flattens validator errors into the API's
// {field: [messages]} shape.
func GetValidationErrors(err error) map[string][]string {
	if err == nil {
		return nil
	}

	fieldErrors := make(map[string][]string)

	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrs {
			field := e.Field()
			fieldErrors[field] = append(fieldErrors[field], getValidationMessage(e))
		}
	} else {
		fieldErrors["request"] = []string{"malformed request body"}
	}

	return fieldErrors
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "The " + e.Field() + " field is required"
	case "email":
		return "The " + e.Field() + " field must be a valid email address"
	case "min":
		if e.Kind() == reflect.Slice {
			return "The " + e.Field() + " field must have at least " + e.Param() + " items"
		}
		return "The " + e.Field() + " field must be at least " + e.Param()
	case "max":
		return "The " + e.Field() + " field may not be greater than " + e.Param()
	case "gte":
		return "The " + e.Field() + " field must be at least " + e.Param()
	case "lte":
		return "The " + e.Field() + " field may not be greater than " + e.Param()
	case "eqfield":
		return "The " + e.Field() + " field must match " + e.Param()
	case "oneof":
		return "The " + e.Field() + " field must be one of: " + e.Param()
	default:
		return "The " + e.Field() + " field is invalid"
	}
}
