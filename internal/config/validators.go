package config

import (
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
)

// registerExclusive adds a custom validator ensuring two fields are mutually
// exclusive. The key fields reference each other in a cycle, which covers
// every pair among key, key-file and passphrase.
func registerExclusive(validate *validator.Validate) error {
	if err := validate.RegisterValidation("exclusive", validateExclusive); err != nil {
		return fmt.Errorf("registering exclusive validation: %w", err)
	}

	return nil
}

// validateExclusive fails when both the tagged field and the sibling field
// named by the tag parameter are set. Only string fields participate;
// anything else passes.
func validateExclusive(fl validator.FieldLevel) bool {
	field := fl.Field()

	other := fl.Parent().FieldByName(fl.Param())
	if !other.IsValid() {
		return true
	}

	if field.Kind() != reflect.String || other.Kind() != reflect.String {
		return true
	}

	return field.String() == "" || other.String() == ""
}
