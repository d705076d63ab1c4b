package validator

import (
	"qost_backend/internal/utils"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules adds domain rules on top of the built-in tags.
func registerCustomRules(v *validator.Validate) {
	// "phone": a phone-shaped string per the signup classifier, so DTO
	// validation and signup classification can never disagree.
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return utils.ClassifyIdentifier(fl.Field().String()) == utils.IdentifierPhone
	})
}
