package builder

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/iancoleman/strcase"
)

// CoerceFunc converts an input value into the field's canonical type.
type CoerceFunc func(value interface{}) (interface{}, error)

// Field is one row of a Schema.
type Field struct {
	// Name is the lowerCamel wire name of the field.
	Name string

	// Required fields must be set (or defaulted) for Build to succeed.
	Required bool

	// Default supplies a value when the field is unset. It is called once per
	// Build so mutable defaults are never shared between built values.
	Default func() interface{}

	// Coerce runs before Rules. Nil means the value is used as given.
	Coerce CoerceFunc

	// Rules validate the coerced value.
	Rules []validation.Rule
}

// CheckFunc validates relationships between fields. It only runs once every
// field has passed on its own; returned entries are keyed by field name.
type CheckFunc func(v Values) validation.Errors

// Schema is an ordered field table for one kind of value object.
type Schema struct {
	kind   string
	fields []Field
	index  map[string]int
	checks []CheckFunc
}

// NewSchema creates a Schema. It panics on empty or duplicate field names
// since schemas are declared as package variables.
func NewSchema(kind string, fields ...Field) *Schema {
	s := &Schema{
		kind:   kind,
		fields: make([]Field, len(fields)),
		index:  make(map[string]int, len(fields)),
	}
	for i, f := range fields {
		if f.Name == "" {
			panic(fmt.Sprintf("builder: %s field %d has no name", kind, i))
		}
		if _, dup := s.index[f.Name]; dup {
			panic(fmt.Sprintf("builder: %s field %q declared twice", kind, f.Name))
		}
		s.fields[i] = f
		s.index[f.Name] = i
	}
	return s
}

// WithCheck adds a cross-field check and returns s.
func (s *Schema) WithCheck(fn CheckFunc) *Schema {
	s.checks = append(s.checks, fn)
	return s
}

// Kind returns the name of the value object this schema describes.
func (s *Schema) Kind() string {
	return s.kind
}

// Names returns the field names in declaration order.
func (s *Schema) Names() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.Name
	}
	return names
}

// Has reports whether the schema declares name.
func (s *Schema) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// New returns an empty Builder for this schema.
func (s *Schema) New() *Builder {
	return &Builder{
		schema: s,
		values: make(map[string]interface{}),
	}
}

// NormalizeKey maps snake_case, kebab-case or PascalCase keys onto the
// lowerCamel names schemas use.
func NormalizeKey(key string) string {
	return strcase.ToLowerCamel(key)
}

// FromMap returns a Builder populated from a generic map, as produced by
// JSON, YAML or HCL decoding. Keys are normalized with NormalizeKey.
func FromMap(s *Schema, m map[string]interface{}) *Builder {
	b := s.New()
	for k, v := range m {
		b.Set(NormalizeKey(k), v)
	}
	return b
}
