package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError describe un campo que no pasó validación.
type FieldError struct {
	Field string
	Tag   string
	Param string
}

var validate = validator.New()

// ValidateStruct valida un struct según sus tags `validate` y devuelve
// la lista de campos inválidos (vacía si todo está bien).
func ValidateStruct(data interface{}) []FieldError {
	var fieldErrors []FieldError
	if err := validate.Struct(data); err != nil {
		for _, fe := range err.(validator.ValidationErrors) {
			fieldErrors = append(fieldErrors, FieldError{
				Field: fe.Field(),
				Tag:   fe.Tag(),
				Param: fe.Param(),
			})
		}
	}
	return fieldErrors
}

// Message arma un mensaje legible con los campos inválidos (para ErrorResponse).
func Message(fieldErrors []FieldError) string {
	if len(fieldErrors) == 0 {
		return ""
	}
	parts := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		parts = append(parts, fe.Field+" ("+fe.Tag+")")
	}
	return "campos inválidos: " + strings.Join(parts, ", ")
}
