package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required":  "{field} is required",
		"gte":       "{field} must be greater than or equal to {param}",
		"lte":       "{field} must be less than or equal to {param}",
		"gt":        "{field} must be greater than {param}",
		"oneof":     "{field} must be one of {param}",
		"max":       "{field} must be at most {param}",
		"min":       "{field} must be at least {param}",
		"email":     "{field} must be a valid email address",
		"uuid":      "{field} must be a valid UUID",
		"isodate":   "{field} must be an ISO-8601 date",
		"dateafter": "{field} must be after {param}",
		"empty":     "{field} cannot be set here",
		"nefield":   "{field} must differ from {param}",
	}
)

func fieldMessage(valErr val.FieldError) string {
	msg, ok := messages[valErr.Tag()]
	if !ok {
		msg, ok = messages[valErr.ActualTag()]
	}

	if !ok {
		return valErr.Field() + " is invalid"
	}

	msg = strings.ReplaceAll(msg, "{field}", valErr.Field())
	msg = strings.ReplaceAll(msg, "{param}", valErr.Param())

	return msg
}

func messageList(err error) []string {
	var valErrors val.ValidationErrors

	if errors.As(err, &valErrors) {
		msgs := make([]string, 0, len(valErrors))
		for _, valErr := range valErrors {
			msgs = append(msgs, fieldMessage(valErr))
		}

		return msgs
	}

	return []string{err.Error()}
}
