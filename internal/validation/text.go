package validation

import (
	"errors"
	"strings"
)

// ErrEmpty is returned for text that is blank after trimming.
var ErrEmpty = errors.New("value is empty")

// ValidateNonEmpty rejects blank text. Surrounding whitespace does not count
// as content.
func ValidateNonEmpty(value string) error {
	if strings.TrimSpace(value) == "" {
		return ErrEmpty
	}
	return nil
}
