package http

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// validate instancia compartida; los tags `validate` viven en los DTOs.
var validate = validator.New(validator.WithRequiredStructEnabled())

// validationMessage devuelve un mensaje legible para el primer campo inválido,
// o "" si la struct pasa la validación.
func validationMessage(in any) string {
	err := validate.Struct(in)
	if err == nil {
		return ""
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fe.Field() + " es requerido"
	case "email":
		return fe.Field() + " debe ser un email válido"
	case "min":
		return fe.Field() + " no cumple el mínimo (" + fe.Param() + ")"
	case "max":
		return fe.Field() + " supera el máximo (" + fe.Param() + ")"
	case "gt":
		return fe.Field() + " debe ser mayor que " + fe.Param()
	case "oneof":
		return fe.Field() + " debe ser uno de: " + fe.Param()
	case "datetime":
		return fe.Field() + " debe tener formato " + fe.Param()
	default:
		return fe.Field() + " es inválido"
	}
}
