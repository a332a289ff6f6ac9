package content

import (
	"slices"
)

// Record is a validated entry. Its values cannot be changed once built;
// list accessors hand out copies.
type Record struct {
	collection string
	entry      string
	fields     []string
	values     map[string]any
}

func (r Record) Collection() string { return r.collection }

func (r Record) Entry() string { return r.entry }

// Fields returns the declared field names in schema order.
func (r Record) Fields() []string {
	return slices.Clone(r.fields)
}

// Text returns a text or URL field, or "" when the field is not text.
func (r Record) Text(name string) string {
	s, _ := r.values[name].(string)
	return s
}

// TextList returns a copy of a list field in authored order.
func (r Record) TextList(name string) []string {
	list, _ := r.values[name].([]string)
	return slices.Clone(list)
}

// Equal reports structural equality, including field order.
func (r Record) Equal(other Record) bool {
	if r.collection != other.collection || r.entry != other.entry {
		return false
	}
	if !slices.Equal(r.fields, other.fields) {
		return false
	}
	for _, name := range r.fields {
		switch v := r.values[name].(type) {
		case string:
			o, ok := other.values[name].(string)
			if !ok || o != v {
				return false
			}
		case []string:
			o, ok := other.values[name].([]string)
			if !ok || !slices.Equal(v, o) {
				return false
			}
		default:
			return false
		}
	}
	return true
}
