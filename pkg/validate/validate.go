package validate

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var v = validator.New()

// Struct valida uma struct usando as tags `validate` e retorna a lista de
// violações encontradas. Retorna nil quando a struct é válida.
func Struct(s any) []string {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	details := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			details = append(details, fmt.Sprintf("%s: falha na regra '%s=%s'", fe.Field(), fe.Tag(), fe.Param()))
			continue
		}
		details = append(details, fmt.Sprintf("%s: falha na regra '%s'", fe.Field(), fe.Tag()))
	}

	return details
}
