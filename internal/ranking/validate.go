package ranking

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		field := fl.Field()
		if field.Kind() != reflect.String {
			return true
		}
		return strings.TrimSpace(field.String()) != ""
	})
	return v
}

// Validate checks every item carries an ID and a usable category.
func Validate(items []Item) error {
	for i, item := range items {
		if err := validate.Struct(item); err != nil {
			return fmt.Errorf("item %d (%q): %w", i, item.ID, err)
		}
	}
	return nil
}
