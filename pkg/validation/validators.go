package validation

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("valid_skill", ValidSkill)
}

// ValidSkill validates a single normalized skill token: non-empty, trimmed,
// lowercased and comma-free. The charset itself is open — ".net", "c++" and
// non-Latin skills are all fine.
func ValidSkill(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return false
	}
	if strings.Contains(val, ",") {
		return false
	}
	if val != strings.TrimSpace(val) {
		return false
	}
	return val == strings.ToLower(val)
}
