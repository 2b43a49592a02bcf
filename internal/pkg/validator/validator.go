package validator

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate struct fields
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	for _, err := range err.(validator.ValidationErrors) {
		errors[err.Field()] = err.Tag()
	}
	return errors
}

// FormatErrors turns a gin binding error into a field->tag map. Non-validation
// errors (malformed JSON etc.) come back under a single "body" key.
func FormatErrors(err error) map[string]string {
	if verrs, ok := err.(validator.ValidationErrors); ok {
		out := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			out[fe.Field()] = fe.Tag()
		}
		return out
	}
	return map[string]string{"body": err.Error()}
}
