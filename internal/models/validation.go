package models

import (
	"github.com/go-playground/validator/v10"
)

// RegisterValidators registra as regras customizadas usadas nas tags binding
func RegisterValidators(v *validator.Validate) error {
	if err := v.RegisterValidation("window", validateWindow); err != nil {
		return err
	}
	return v.RegisterValidation("occurrence_status", validateOccurrenceStatus)
}

func validateWindow(fl validator.FieldLevel) bool {
	return Window(fl.Field().String()).IsValid()
}

func validateOccurrenceStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for _, status := range OccurrenceStatuses {
		if value == status {
			return true
		}
	}
	return false
}
