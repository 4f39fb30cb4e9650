package util

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("notblank", validateNotBlank)
	validate.RegisterValidation("polltype", validatePollType)
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func validatePollType(fl validator.FieldLevel) bool {
	t := fl.Field().String()
	return t == "radio" || t == "checkbox"
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}
