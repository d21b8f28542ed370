// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var naicsCodeRegex = regexp.MustCompile(`^[0-9]{2,6}$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("txdate", validateTxDate)
		_ = v.RegisterValidation("naics", validateNaicsCode)
	}
}

// validateTxDate enforces a strict YYYY-MM-DD calendar date.
func validateTxDate(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if len(s) != 10 {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

func validateNaicsCode(fl validator.FieldLevel) bool {
	return naicsCodeRegex.MatchString(fl.Field().String())
}
