package utils

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("blood_type", validateBloodType)
	validate.RegisterValidation("urgency", validateUrgency)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateBloodType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-":
		return true
	}
	return false
}

func validateUrgency(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "critical", "moderate", "low":
		return true
	}
	return false
}
