package validator

import (
	"errors"
	"reflect"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required":         "{field} is required",
		"required_with":    "{field} is required",
		"required_without": "{field} is required",
		"gte":              "{field} must be greater than or equal to {param}",
		"lte":              "{field} must be less than or equal to {param}",
		"oneof":            "{field} must be one of {param}",
		"max":              "{field} must be less than or equal to {param}",
		"min":              "{field} must be greater than or equal to {param}",
		"email":            "{field} must be a valid email address",
		"uuid":             "{field} must be a valid id",
		"dateonly":         "{field} must be a date in YYYY-MM-DD format",
		"uppercase":        "{field} must be upper case",
	}

	lengthMessages = map[string]string{
		"max": "{field} must be at most {param} characters",
		"min": "{field} must be at least {param} characters",
	}

	listMessages = map[string]string{
		"max": "{field} must have at most {param} entries",
		"min": "{field} must have at least {param} entries",
	}
)

// fieldName strips the root struct name from the namespace, leaving the json path
// of the field (e.g. "items[0].session").
func fieldName(valErr val.FieldError) string {
	namespace := valErr.Namespace()

	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}

	return valErr.Field()
}

func render(valErr val.FieldError) string {
	tmpl := messages[valErr.Tag()]

	switch valErr.Kind() {
	case reflect.String:
		if lengthMsg, ok := lengthMessages[valErr.Tag()]; ok {
			tmpl = lengthMsg
		}
	case reflect.Slice:
		if listMsg, ok := listMessages[valErr.Tag()]; ok {
			tmpl = listMsg
		}
	}

	if tmpl == "" {
		return valErr.Error()
	}

	msg := strings.ReplaceAll(tmpl, "{field}", valErr.Field())

	return strings.ReplaceAll(msg, "{param}", valErr.Param())
}

// fields converts validation errors into a field keyed message map. Only the first
// failing rule of each field is kept.
func fields(err error) map[string]string {
	var valErrors val.ValidationErrors

	if !errors.As(err, &valErrors) {
		return map[string]string{"body": err.Error()}
	}

	res := make(map[string]string, len(valErrors))

	for _, valErr := range valErrors {
		name := fieldName(valErr)
		if _, exists := res[name]; exists {
			continue
		}

		res[name] = render(valErr)
	}

	return res
}
