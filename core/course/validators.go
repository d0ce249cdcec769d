package course

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trackmycredits/backend/core"
	"github.com/trackmycredits/backend/core/credit"
)

var (
	categoryCodeTag  = "categorycode"
	categoryCodeText = "unknown credit category"

	creditsTag  = "gte"
	creditsText = "credits cannot be negative"
)

// InitValidators registers the course custom validators.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(categoryCodeTag, categoryCodeValidation)
	core.RegisterCustomTranslation(validate, translator, categoryCodeTag, categoryCodeText)
	core.RegisterCustomTranslation(validate, translator, creditsTag, creditsText, true)
}

// categoryCodeValidation checks that the value is a known catalog category code.
func categoryCodeValidation(fl validator.FieldLevel) bool {
	return credit.KnownCategory(fl.Field().String())
}
