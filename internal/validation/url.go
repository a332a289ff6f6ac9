package validation

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// ErrNotAbsoluteURL is returned when a value does not parse as an absolute URL.
var ErrNotAbsoluteURL = errors.New("not an absolute URL")

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// ValidateURL checks that raw parses as an absolute URL with a scheme.
// Any scheme is accepted (https, ftp, mailto, ...), relative paths are not.
func ValidateURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return ErrEmpty
	}

	err := validatorInstance().Var(raw, "url")
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) {
		return ErrNotAbsoluteURL
	}
	return fmt.Errorf("validate url: %w", err)
}
