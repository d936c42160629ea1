package service

import (
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/binbuddy/tracker/pkg/entity"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("disposal_method", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			for _, method := range entity.DisposalMethods {
				if value == method {
					return true
				}
			}
			return false
		})
	})
}
