package utils

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"quickdesk/internal/shared/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.SetTagName("binding")
	validate.RegisterTagNameFunc(jsonTagName)

	// gin binds through its own validator instance
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonTagName)
	}
}

func jsonTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// BindingError converts a ShouldBindJSON failure into a ValidationError.
// requiredMessage replaces the generic message when a required field is
// missing, so each endpoint keeps its own wording.
func BindingError(err error, requiredMessage string) error {
	return translate(err, requiredMessage)
}

func translate(err error, requiredMessage string) error {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !stderrors.As(err, &validationErrors) {
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		switch {
		case stderrors.Is(err, io.EOF):
			return errors.NewValidationError(requiredMessage)
		case stderrors.As(err, &syntaxErr):
			return errors.NewValidationError("Invalid JSON body")
		case stderrors.As(err, &typeErr):
			return errors.NewValidationError("Invalid request body", fmt.Sprintf("%s has the wrong type", typeErr.Field))
		default:
			return errors.NewValidationError("Invalid request body")
		}
	}

	message := "Validation failed"
	details := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		if fe.Tag() == "required" {
			message = requiredMessage
		}
		details = append(details, getFieldErrorMessage(fe))
	}

	return errors.NewValidationError(message, strings.Join(details, "; "))
}

// getFieldErrorMessage returns a user-friendly error message for a field validation error
func getFieldErrorMessage(fe validator.FieldError) string {
	field := fe.Field()
	param := fe.Param()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long", field, param)
		}
		return fmt.Sprintf("%s must contain at least %s items", field, param)
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters long", field, param)
		}
		return fmt.Sprintf("%s must contain at most %s items", field, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, param)
	default:
		return fmt.Sprintf("%s failed validation for '%s'", field, fe.Tag())
	}
}
