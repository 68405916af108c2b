package models

import (
	"encoding/json"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/kryptnostic/loom-api-go/pkg/builder"
)

// PrincipalType classifies who a Principal is.
type PrincipalType string

const (
	PrincipalTypeUser         PrincipalType = "USER"
	PrincipalTypeRole         PrincipalType = "ROLE"
	PrincipalTypeOrganization PrincipalType = "ORGANIZATION"
)

// ParsePrincipalType parses a principal type case-insensitively.
func ParsePrincipalType(s string) (PrincipalType, error) {
	t := PrincipalType(strings.ToUpper(strings.TrimSpace(s)))
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

// Validate implements validation.Validatable.
func (t PrincipalType) Validate() error {
	switch t {
	case PrincipalTypeUser, PrincipalTypeRole, PrincipalTypeOrganization:
		return nil
	}
	return fmt.Errorf("unknown principal type %q", string(t))
}

func coercePrincipalType(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case PrincipalType:
		return v, nil
	case string:
		return ParsePrincipalType(v)
	}
	return nil, fmt.Errorf("must be a principal type, got %T", value)
}

// PrincipalSchema is the field table for Principal.
var PrincipalSchema = builder.NewSchema(KindPrincipal,
	builder.Field{Name: "type", Required: true, Coerce: coercePrincipalType},
	builder.Field{Name: "id", Required: true, Coerce: builder.ToString,
		Rules: []validation.Rule{validation.Required}},
)

// Principal is a user, role or organization that can hold permissions.
type Principal struct {
	typ PrincipalType
	id  string
}

// NewPrincipal is a shortcut for building a Principal from its two fields.
func NewPrincipal(typ PrincipalType, id string) (Principal, error) {
	return NewPrincipalBuilder().SetType(typ).SetID(id).Build()
}

func (p Principal) Kind() string        { return KindPrincipal }
func (p Principal) Type() PrincipalType { return p.typ }
func (p Principal) ID() string          { return p.id }

// IsZero reports whether p is the zero Principal.
func (p Principal) IsZero() bool {
	return p.typ == "" && p.id == ""
}

// Equal compares type and id.
func (p Principal) Equal(other Principal) bool {
	return p.typ == other.typ && p.id == other.id
}

func (p Principal) String() string {
	return string(p.typ) + "|" + p.id
}

// Validate implements validation.Validatable so principals nested in other
// models are checked too.
func (p Principal) Validate() error {
	return validation.Errors{
		"type": p.typ.Validate(),
		"id":   validation.Validate(p.id, validation.Required),
	}.Filter()
}

type principalJSON struct {
	Type PrincipalType `json:"type"`
	ID   string        `json:"id"`
}

func (p Principal) MarshalJSON() ([]byte, error) {
	return json.Marshal(principalJSON{Type: p.typ, ID: p.id})
}

func (p *Principal) UnmarshalJSON(data []byte) error {
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("invalid principal JSON: %w", err)
	}
	v, err := builder.FromMap(PrincipalSchema, raw).Build()
	if err != nil {
		return err
	}
	*p = principalFromValues(v)
	return nil
}

func principalFromValues(v builder.Values) Principal {
	typ, _ := v.Get("type").(PrincipalType)
	return Principal{typ: typ, id: v.String("id")}
}

// coercePrincipal accepts Principal, *Principal and generic maps.
func coercePrincipal(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case Principal:
		return v, nil
	case *Principal:
		if v == nil {
			return nil, fmt.Errorf("must be a principal")
		}
		return *v, nil
	case map[string]interface{}:
		built, err := builder.FromMap(PrincipalSchema, v).Build()
		if err != nil {
			return nil, err
		}
		return principalFromValues(built), nil
	}
	return nil, fmt.Errorf("must be a principal, got %T", value)
}

// PrincipalBuilder builds a Principal.
type PrincipalBuilder struct {
	b *builder.Builder
}

func NewPrincipalBuilder() *PrincipalBuilder {
	return &PrincipalBuilder{b: PrincipalSchema.New()}
}

func (pb *PrincipalBuilder) SetType(t PrincipalType) *PrincipalBuilder {
	pb.b.Set("type", t)
	return pb
}

func (pb *PrincipalBuilder) SetID(id string) *PrincipalBuilder {
	pb.b.Set("id", id)
	return pb
}

// Set assigns a field by wire name with coercion.
func (pb *PrincipalBuilder) Set(field string, value interface{}) *PrincipalBuilder {
	pb.b.Set(field, value)
	return pb
}

func (pb *PrincipalBuilder) Build() (Principal, error) {
	v, err := pb.b.Build()
	if err != nil {
		return Principal{}, err
	}
	return principalFromValues(v), nil
}
