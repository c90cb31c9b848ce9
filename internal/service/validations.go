package service

import (
	"errors"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	errorvalues "github.com/limbo/babiecloud/internal/error_values"
	"github.com/limbo/babiecloud/pkg/entity"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

var knownWidgets = map[entity.WidgetID]struct{}{
	entity.WidgetPhoto:     {},
	entity.WidgetTasks:     {},
	entity.WidgetMoods:     {},
	entity.WidgetWeather:   {},
	entity.WidgetHydration: {},
	entity.WidgetQuote:     {},
}

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("display_name", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			if strings.TrimSpace(value) == "" {
				return false
			}
			for _, char := range value {
				if unicode.IsControl(char) {
					return false
				}
			}
			return true
		})
		validate.RegisterValidation("widget_id", func(fl validator.FieldLevel) bool {
			_, ok := knownWidgets[entity.WidgetID(fl.Field().String())]
			return ok
		})
	})
}

// validateStruct joins every field error under errorvalues.ErrValidation.
func validateStruct(s any) error {
	InitValidator()
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	if validationError, ok := err.(validator.ValidationErrors); ok {
		err = errorvalues.ErrValidation
		for _, fieldErr := range validationError {
			err = errors.Join(err, fieldErr)
		}
		return err
	}
	return errors.New("validation unexpected error: " + err.Error())
}

func Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
