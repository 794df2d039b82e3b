// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("activity_type", validateActivityType)
		_ = v.RegisterValidation("period", validatePeriod)
	}
}

func validateActivityType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "transport", "energy", "food", "shopping":
		return true
	}
	return false
}

func validatePeriod(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "week", "month", "year":
		return true
	}
	return false
}
