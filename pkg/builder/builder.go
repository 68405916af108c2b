package builder

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Builder accumulates field values for a Schema. It is not safe for
// concurrent use.
type Builder struct {
	schema  *Schema
	values  map[string]interface{}
	unknown map[string]interface{}
}

// Schema returns the schema this builder fills.
func (b *Builder) Schema() *Schema {
	return b.schema
}

// Set records value for field name. A nil value unsets the field. Names the
// schema does not declare are reported by Build.
func (b *Builder) Set(name string, value interface{}) *Builder {
	if !b.schema.Has(name) {
		if b.unknown == nil {
			b.unknown = make(map[string]interface{})
		}
		b.unknown[name] = value
		return b
	}
	if value == nil {
		delete(b.values, name)
		return b
	}
	b.values[name] = value
	return b
}

// Unset clears field name.
func (b *Builder) Unset(name string) *Builder {
	delete(b.values, name)
	delete(b.unknown, name)
	return b
}

// IsSet reports whether field name currently holds a value.
func (b *Builder) IsSet(name string) bool {
	_, ok := b.values[name]
	return ok
}

// Build validates every field and returns the resulting Values. All failing
// fields are reported together in an *Error.
func (b *Builder) Build() (Values, error) {
	errs := validation.Errors{}
	out := make(map[string]interface{}, len(b.schema.fields))

	for name := range b.unknown {
		errs[name] = ErrUnknownField
	}

	for _, f := range b.schema.fields {
		v, ok := b.values[f.Name]
		if !ok && f.Default != nil {
			v, ok = f.Default(), true
		}
		if !ok {
			if f.Required {
				errs[f.Name] = ErrRequired
			}
			continue
		}

		if f.Coerce != nil {
			coerced, err := f.Coerce(v)
			if err != nil {
				errs[f.Name] = err
				continue
			}
			v = coerced
		}

		if err := validation.Validate(v, f.Rules...); err != nil {
			errs[f.Name] = err
			continue
		}

		out[f.Name] = v
	}

	if len(errs) > 0 {
		return Values{}, &Error{Kind: b.schema.kind, Fields: errs}
	}

	values := Values{kind: b.schema.kind, m: out}
	for _, check := range b.schema.checks {
		for name, err := range check(values) {
			if err != nil {
				errs[name] = err
			}
		}
	}
	if len(errs) > 0 {
		return Values{}, &Error{Kind: b.schema.kind, Fields: errs}
	}
	return values, nil
}
