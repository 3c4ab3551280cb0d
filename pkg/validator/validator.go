package validator

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var tablePrefixRe = regexp.MustCompile(`^[A-Za-z0-9_]*$`)

func init() {
	validate = validator.New()

	// table prefixes are interpolated into SQL, only identifier characters pass
	_ = validate.RegisterValidation("tableprefix", func(fl validator.FieldLevel) bool {
		return tablePrefixRe.MatchString(fl.Field().String())
	})
}

func ValidateStruct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("validation failed: %w", err)
		}

		var errMsgs []string
		for _, err := range verrs {
			errMsgs = append(errMsgs, fmt.Sprintf(
				"Field: %s, Tag: %s, Param: %s", err.Field(), err.Tag(), err.Param(),
			))
		}
		return fmt.Errorf("validation failed: %s", strings.Join(errMsgs, "; "))
	}
	return nil
}

// TablePrefix reports whether prefix is safe to interpolate into a table name.
func TablePrefix(prefix string) bool {
	return tablePrefixRe.MatchString(prefix)
}
