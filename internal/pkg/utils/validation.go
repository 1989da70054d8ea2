package utils

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorInstance *validator.Validate
	onceValidator     sync.Once
)

func GetValidator() *validator.Validate {
	onceValidator.Do(func() {
		validatorInstance = validator.New()
	})
	return validatorInstance
}

func ValidateStruct(value interface{}) error {
	return GetValidator().Struct(value)
}
