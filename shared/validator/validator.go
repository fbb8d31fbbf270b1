package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"

	val "github.com/go-playground/validator/v10"

	"hotel/shared/failure"
	"hotel/shared/timezone"
)

var validate *val.Validate

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}

	if name == "" {
		return field.Name
	}

	return name
}

func registerISODateValidation(fl val.FieldLevel) bool {
	value, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	_, err := timezone.ParseISO(value)

	return err == nil
}

// registerDateAfterValidation checks that the field is a later ISO date than
// the sibling field whose json name is given as the param. An unparsable
// sibling is left to its own isodate rule.
func registerDateAfterValidation(fl val.FieldLevel) bool {
	value, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	current, err := timezone.ParseISO(value)
	if err != nil {
		return true
	}

	parent := reflect.Indirect(fl.Parent())
	if parent.Kind() != reflect.Struct {
		return false
	}

	for i := range parent.NumField() {
		if jsonFieldName(parent.Type().Field(i)) != fl.Param() {
			continue
		}

		other, ok := parent.Field(i).Interface().(string)
		if !ok {
			return false
		}

		reference, err := timezone.ParseISO(other)
		if err != nil {
			return true
		}

		return current.After(reference)
	}

	return false
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)

	err := validate.RegisterValidation("empty", func(fl val.FieldLevel) bool {
		return fl.Field().IsZero()
	})
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("isodate", registerISODateValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("dateafter", registerDateAfterValidation)
	if err != nil {
		panic(err)
	}
}

// RegisterAlias maps a domain tag such as "roomtype" onto a chain of built-in
// rules. It must be called from package init before any validation runs.
func RegisterAlias(alias, tags, msg string) {
	validate.RegisterAlias(alias, tags)

	if msg != "" {
		messages[alias] = msg
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. Unknown JSON fields are rejected. Every failing
// field is reported in the returned failure's details.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()

	err := decoder.Decode(data)
	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		return failure.Validation(messageList(err)) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		return failure.Validation(messageList(err)) //nolint:wrapcheck
	}

	return nil
}
