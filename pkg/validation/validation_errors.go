package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-facing labels
var FieldLabels = map[string]string{
	"Skills":     "Skills",
	"Experience": "Experience level",
	"Salary":     "Desired salary",
	"Format":     "Work format",
}

// FormatValidationErrors flattens validator.v10 errors into one message
// suitable for logs and operator diagnosis.
func FormatValidationErrors(err error) string {
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(vErrs))
	for _, fe := range vErrs {
		label := FieldLabels[fe.Field()]
		if label == "" {
			label = fe.Field()
		}
		parts = append(parts, fmt.Sprintf("%s failed on '%s'", label, fe.Tag()))
	}
	return strings.Join(parts, "; ")
}
