package handlers

import (
	"github.com/ShankarSrivathsa/ophelia-finance-manager-sub000/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// init registers custom binding validations with gin's validator engine.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		// month: a calendar month in YYYY-MM form.
		_ = v.RegisterValidation("month", func(fl validator.FieldLevel) bool {
			return domain.IsValidMonth(fl.Field().String())
		})
	}
}
