// Package builder implements the validated builder shared by every loom model.
//
// A Schema is a field table: for each field, whether it is required, an
// optional default, a coercion from loosely typed input to the canonical Go
// type, and ozzo-validation rules. A Builder collects values through a setter
// chain and Build validates them all at once, returning either an immutable
// Values snapshot or an *Error listing every failing field.
//
//	var PrincipalSchema = builder.NewSchema("principal",
//	    builder.Field{Name: "type", Required: true, Coerce: coercePrincipalType},
//	    builder.Field{Name: "id", Required: true, Coerce: builder.ToString,
//	        Rules: []validation.Rule{validation.Required}},
//	)
//
//	values, err := PrincipalSchema.New().Set("type", "USER").Set("id", "alice").Build()
package builder
