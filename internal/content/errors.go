package content

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownCollection   = errors.New("unknown collection")
	ErrDuplicateCollection = errors.New("collection already registered")
	ErrInvalidSchema       = errors.New("invalid schema")
)

// FieldError is implemented by every per-field problem so callers can group
// problems by field without switching on the concrete type.
type FieldError interface {
	error
	FieldName() string
}

// MissingFieldError reports a declared field absent from an entry.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: missing required field", e.Field)
}

func (e *MissingFieldError) FieldName() string { return e.Field }

// TypeMismatchError reports a value that is present but of the wrong kind.
// For list elements Index is the element position, otherwise it is -1.
type TypeMismatchError struct {
	Field string
	Index int
	Want  Kind
	Got   string
}

func (e *TypeMismatchError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%s[%d]: expected text, got %s", e.Field, e.Index, e.Got)
	}
	return fmt.Sprintf("%s: expected %s, got %s", e.Field, e.Want, e.Got)
}

func (e *TypeMismatchError) FieldName() string { return e.Field }

// MalformedURLError reports a URL field whose text is not an absolute URL.
type MalformedURLError struct {
	Field string
	Value string
	Err   error
}

func (e *MalformedURLError) Error() string {
	return fmt.Sprintf("%s: malformed URL %q", e.Field, e.Value)
}

func (e *MalformedURLError) FieldName() string { return e.Field }

func (e *MalformedURLError) Unwrap() error { return e.Err }

// EmptyFieldError reports blank text in a field declared non-empty.
type EmptyFieldError struct {
	Field string
}

func (e *EmptyFieldError) Error() string {
	return fmt.Sprintf("%s: must not be empty", e.Field)
}

func (e *EmptyFieldError) FieldName() string { return e.Field }

// UnknownFieldError reports an undeclared key. Only raised in strict mode.
type UnknownFieldError struct {
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("%s: unknown field", e.Field)
}

func (e *UnknownFieldError) FieldName() string { return e.Field }

// ValidationError collects every problem found in one entry.
type ValidationError struct {
	Collection string
	Entry      string
	Problems   []error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}

	msgs := make([]string, 0, len(e.Problems))
	for _, p := range e.Problems {
		msgs = append(msgs, p.Error())
	}
	return fmt.Sprintf("%s/%s: %s", e.Collection, e.Entry, strings.Join(msgs, "; "))
}

// Unwrap exposes each problem to errors.Is and errors.As.
func (e *ValidationError) Unwrap() []error {
	if e == nil {
		return nil
	}
	return e.Problems
}

// Fields lists the offending field names in report order, without repeats.
func (e *ValidationError) Fields() []string {
	var names []string
	seen := make(map[string]bool)
	for _, p := range e.Problems {
		var fe FieldError
		if !errors.As(p, &fe) {
			continue
		}
		if seen[fe.FieldName()] {
			continue
		}
		seen[fe.FieldName()] = true
		names = append(names, fe.FieldName())
	}
	return names
}

// describe names the shape of a raw value for error messages.
func describe(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "text"
	case bool:
		return "boolean"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return "number"
	case []any, []string:
		return "list"
	case map[string]any:
		return "map"
	default:
		return fmt.Sprintf("%T", v)
	}
}
