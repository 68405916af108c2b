package models

import (
	"encoding/json"
	"fmt"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/iancoleman/strcase"

	"github.com/kryptnostic/loom-api-go/pkg/builder"
	"github.com/kryptnostic/loom-api-go/pkg/ids"
)

// Registered kinds, in snake_case.
const (
	KindFQN          = "fqn"
	KindPrincipal    = "principal"
	KindRole         = "role"
	KindAccessCheck  = "access_check"
	KindAce          = "ace"
	KindAcl          = "acl"
	KindAclData      = "acl_data"
	KindPropertyType = "property_type"
	KindEntityType   = "entity_type"
	KindEntitySet    = "entity_set"
)

// Model is implemented by every value object in this package.
type Model interface {
	json.Marshaler
	Kind() string
	Validate() error
}

var (
	_ Model = Principal{}
	_ Model = Role{}
	_ Model = AccessCheck{}
	_ Model = Ace{}
	_ Model = Acl{}
	_ Model = AclData{}
	_ Model = PropertyType{}
	_ Model = EntityType{}
	_ Model = EntitySet{}
	_ Model = FQN{}
)

// FQNSchema lets FullyQualifiedName be declared standalone in definition files.
var FQNSchema = builder.NewSchema(KindFQN,
	builder.Field{Name: "namespace", Required: true, Coerce: builder.ToString,
		Rules: []validation.Rule{validation.Required}},
	builder.Field{Name: "name", Required: true, Coerce: builder.ToString,
		Rules: []validation.Rule{validation.Required}},
)

// FQN adapts ids.FullyQualifiedName to Model.
type FQN struct {
	ids.FullyQualifiedName
}

func (FQN) Kind() string { return KindFQN }

type registration struct {
	schema *builder.Schema
	build  func(builder.Values) (Model, error)
}

var registry = map[string]registration{
	KindFQN: {FQNSchema, func(v builder.Values) (Model, error) {
		fqn, err := ids.NewFQN(v.String("namespace"), v.String("name"))
		if err != nil {
			return nil, err
		}
		return FQN{fqn}, nil
	}},
	KindPrincipal: {PrincipalSchema, func(v builder.Values) (Model, error) {
		return principalFromValues(v), nil
	}},
	KindRole: {RoleSchema, func(v builder.Values) (Model, error) {
		return roleFromValues(v), nil
	}},
	KindAccessCheck: {AccessCheckSchema, func(v builder.Values) (Model, error) {
		return accessCheckFromValues(v), nil
	}},
	KindAce: {AceSchema, func(v builder.Values) (Model, error) {
		return aceFromValues(v), nil
	}},
	KindAcl: {AclSchema, func(v builder.Values) (Model, error) {
		return aclFromValues(v), nil
	}},
	KindAclData: {AclDataSchema, func(v builder.Values) (Model, error) {
		return aclDataFromValues(v), nil
	}},
	KindPropertyType: {PropertyTypeSchema, func(v builder.Values) (Model, error) {
		return propertyTypeFromValues(v), nil
	}},
	KindEntityType: {EntityTypeSchema, func(v builder.Values) (Model, error) {
		return entityTypeFromValues(v), nil
	}},
	KindEntitySet: {EntitySetSchema, func(v builder.Values) (Model, error) {
		return entitySetFromValues(v), nil
	}},
}

// NormalizeKind maps any case style ("AccessCheck", "accessCheck",
// "access-check") onto the registered snake_case kind.
func NormalizeKind(kind string) string {
	return strcase.ToSnake(kind)
}

// Kinds returns the registered kinds, sorted.
func Kinds() []string {
	kinds := make([]string, 0, len(registry))
	for k := range registry {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// Schema returns the field table registered for kind.
func Schema(kind string) (*builder.Schema, bool) {
	r, ok := registry[NormalizeKind(kind)]
	if !ok {
		return nil, false
	}
	return r.schema, true
}

// Build builds a model of the given kind from a generic field map.
func Build(kind string, fields map[string]interface{}) (Model, error) {
	r, ok := registry[NormalizeKind(kind)]
	if !ok {
		return nil, fmt.Errorf("unknown kind %q", kind)
	}
	v, err := builder.FromMap(r.schema, fields).Build()
	if err != nil {
		return nil, err
	}
	return r.build(v)
}
