package content

import (
	"fmt"
)

// Field declares one required field of a collection.
type Field struct {
	Name string
	Kind Kind
	// NonEmpty rejects blank text. Only meaningful for KindText.
	NonEmpty bool
}

// Schema is the ordered set of fields every entry of a collection must carry.
// Field order drives the order in which problems are reported.
type Schema struct {
	Fields []Field
}

// Text declares a text field.
func Text(name string) Field {
	return Field{Name: name, Kind: KindText}
}

// RequiredText declares a text field that must not be blank.
func RequiredText(name string) Field {
	return Field{Name: name, Kind: KindText, NonEmpty: true}
}

// URL declares a field holding an absolute URL.
func URL(name string) Field {
	return Field{Name: name, Kind: KindURL}
}

// TextList declares an ordered list of text labels.
func TextList(name string) Field {
	return Field{Name: name, Kind: KindTextList}
}

// NewSchema builds a schema from fields in declaration order.
func NewSchema(fields ...Field) Schema {
	return Schema{Fields: append([]Field(nil), fields...)}
}

// FieldNames returns the declared names in order.
func (s Schema) FieldNames() []string {
	names := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		names = append(names, f.Name)
	}
	return names
}

// Field looks up a declared field by name.
func (s Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

func (s Schema) clone() Schema {
	return Schema{Fields: append([]Field(nil), s.Fields...)}
}

func (s Schema) check() error {
	if len(s.Fields) == 0 {
		return fmt.Errorf("%w: no fields declared", ErrInvalidSchema)
	}

	seen := make(map[string]bool, len(s.Fields))
	for i, f := range s.Fields {
		if f.Name == "" {
			return fmt.Errorf("%w: field %d has no name", ErrInvalidSchema, i)
		}
		if seen[f.Name] {
			return fmt.Errorf("%w: field %q declared twice", ErrInvalidSchema, f.Name)
		}
		if !f.Kind.valid() {
			return fmt.Errorf("%w: field %q has unknown kind %d", ErrInvalidSchema, f.Name, int(f.Kind))
		}
		seen[f.Name] = true
	}
	return nil
}
