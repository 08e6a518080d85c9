package request

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Client-chosen idempotency keys: 8-128 chars, URL safe.
var idemKeyPattern = regexp.MustCompile(`^[A-Za-z0-9._:-]{8,128}$`)

// RegisterValidators installs the custom binding tags on gin's validator.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("idemkey", validateIdemKey)
}

func validateIdemKey(fl validator.FieldLevel) bool {
	return idemKeyPattern.MatchString(fl.Field().String())
}
