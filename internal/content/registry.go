package content

import (
	"fmt"
	"maps"
	"slices"

	"github.com/templui/folio/internal/validation"
)

// Registry maps collection names to schemas and validates raw entries
// against them. Register everything before the first Validate call;
// a Registry is not safe for concurrent registration.
type Registry struct {
	schemas     map[string]Schema
	names       []string
	strict      bool
	validateURL func(string) error
}

type Option func(*Registry)

// WithStrict makes Validate reject keys that no field declares.
func WithStrict(strict bool) Option {
	return func(r *Registry) {
		r.strict = strict
	}
}

// WithURLValidator replaces the rule used for KindURL fields.
func WithURLValidator(fn func(string) error) Option {
	return func(r *Registry) {
		if fn != nil {
			r.validateURL = fn
		}
	}
}

func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		schemas:     make(map[string]Schema),
		validateURL: validation.ValidateURL,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a collection. Names are unique and schemas must declare at
// least one uniquely named field.
func (r *Registry) Register(name string, schema Schema) error {
	if name == "" {
		return fmt.Errorf("%w: collection name is empty", ErrInvalidSchema)
	}
	if _, ok := r.schemas[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateCollection, name)
	}

	err := schema.check()
	if err != nil {
		return fmt.Errorf("register %q: %w", name, err)
	}

	r.schemas[name] = schema.clone()
	r.names = append(r.names, name)
	return nil
}

// MustRegister is Register for static declarations; it panics on error.
func (r *Registry) MustRegister(name string, schema Schema) {
	err := r.Register(name, schema)
	if err != nil {
		panic(err)
	}
}

func (r *Registry) Schema(name string) (Schema, bool) {
	s, ok := r.schemas[name]
	if !ok {
		return Schema{}, false
	}
	return s.clone(), true
}

// Collections returns collection names in registration order.
func (r *Registry) Collections() []string {
	return slices.Clone(r.names)
}

func (r *Registry) Strict() bool {
	return r.strict
}

// Validate checks raw against the collection's schema. Every problem is
// collected, in declared field order, into one *ValidationError; unknown
// keys (strict mode only) follow sorted by name.
func (r *Registry) Validate(collection, entry string, raw map[string]any) (Record, error) {
	schema, ok := r.schemas[collection]
	if !ok {
		return Record{}, fmt.Errorf("%w: %q", ErrUnknownCollection, collection)
	}

	rec := Record{
		collection: collection,
		entry:      entry,
		fields:     schema.FieldNames(),
		values:     make(map[string]any, len(schema.Fields)),
	}

	var problems []error
	for _, f := range schema.Fields {
		v, ok := raw[f.Name]
		if !ok {
			problems = append(problems, &MissingFieldError{Field: f.Name})
			continue
		}

		value, errs := r.checkField(f, v)
		if len(errs) > 0 {
			problems = append(problems, errs...)
			continue
		}
		rec.values[f.Name] = value
	}

	if r.strict {
		for _, key := range slices.Sorted(maps.Keys(raw)) {
			if _, declared := schema.Field(key); !declared {
				problems = append(problems, &UnknownFieldError{Field: key})
			}
		}
	}

	if len(problems) > 0 {
		return Record{}, &ValidationError{
			Collection: collection,
			Entry:      entry,
			Problems:   problems,
		}
	}
	return rec, nil
}

func (r *Registry) checkField(f Field, v any) (any, []error) {
	switch f.Kind {
	case KindText:
		s, ok := v.(string)
		if !ok {
			return nil, []error{&TypeMismatchError{Field: f.Name, Index: -1, Want: f.Kind, Got: describe(v)}}
		}
		if f.NonEmpty && validation.ValidateNonEmpty(s) != nil {
			return nil, []error{&EmptyFieldError{Field: f.Name}}
		}
		return s, nil

	case KindURL:
		s, ok := v.(string)
		if !ok {
			return nil, []error{&TypeMismatchError{Field: f.Name, Index: -1, Want: f.Kind, Got: describe(v)}}
		}
		err := r.validateURL(s)
		if err != nil {
			return nil, []error{&MalformedURLError{Field: f.Name, Value: s, Err: err}}
		}
		return s, nil

	case KindTextList:
		return checkTextList(f, v)
	}

	return nil, []error{fmt.Errorf("%s: %w: unknown kind", f.Name, ErrInvalidSchema)}
}

func checkTextList(f Field, v any) (any, []error) {
	switch list := v.(type) {
	case []string:
		return slices.Clone(list), nil
	case []any:
		out := make([]string, 0, len(list))
		var errs []error
		for i, item := range list {
			s, ok := item.(string)
			if !ok {
				errs = append(errs, &TypeMismatchError{Field: f.Name, Index: i, Want: KindText, Got: describe(item)})
				continue
			}
			out = append(out, s)
		}
		if len(errs) > 0 {
			return nil, errs
		}
		return out, nil
	default:
		return nil, []error{&TypeMismatchError{Field: f.Name, Index: -1, Want: f.Kind, Got: describe(v)}}
	}
}
