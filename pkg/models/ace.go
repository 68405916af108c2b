package models

import (
	"encoding/json"
	"fmt"

	"github.com/kryptnostic/loom-api-go/pkg/builder"
)

// AceSchema is the field table for Ace.
var AceSchema = builder.NewSchema(KindAce,
	builder.Field{Name: "principal", Required: true, Coerce: coercePrincipal},
	builder.Field{Name: "permissions", Required: true, Coerce: coercePermissionSet},
)

// Ace is an access control entry: the permissions granted to one principal.
type Ace struct {
	principal   Principal
	permissions PermissionSet
}

func (a Ace) Kind() string               { return KindAce }
func (a Ace) Principal() Principal       { return a.principal }
func (a Ace) Permissions() PermissionSet { return a.permissions }

func (a Ace) Equal(other Ace) bool {
	return a.principal.Equal(other.principal) && a.permissions.Equal(other.permissions)
}

// Validate implements validation.Validatable.
func (a Ace) Validate() error {
	_, err := AceSchema.New().
		Set("principal", a.principal).
		Set("permissions", a.permissions).
		Build()
	return err
}

type aceJSON struct {
	Principal   Principal     `json:"principal"`
	Permissions PermissionSet `json:"permissions"`
}

func (a Ace) MarshalJSON() ([]byte, error) {
	return json.Marshal(aceJSON{Principal: a.principal, Permissions: a.permissions})
}

func (a *Ace) UnmarshalJSON(data []byte) error {
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("invalid ace JSON: %w", err)
	}
	v, err := builder.FromMap(AceSchema, raw).Build()
	if err != nil {
		return err
	}
	*a = aceFromValues(v)
	return nil
}

func aceFromValues(v builder.Values) Ace {
	principal, _ := v.Get("principal").(Principal)
	perms, _ := v.Get("permissions").(PermissionSet)
	return Ace{principal: principal, permissions: perms}
}

func coerceAce(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case Ace:
		return v, nil
	case map[string]interface{}:
		built, err := builder.FromMap(AceSchema, v).Build()
		if err != nil {
			return nil, err
		}
		return aceFromValues(built), nil
	}
	return nil, fmt.Errorf("must be an ace, got %T", value)
}

func coerceAces(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case []Ace:
		return append([]Ace{}, v...), nil
	case []interface{}:
		out := make([]Ace, 0, len(v))
		for i, item := range v {
			ace, err := coerceAce(item)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			out = append(out, ace.(Ace))
		}
		return out, nil
	}
	return nil, fmt.Errorf("must be a list of aces, got %T", value)
}

// AceBuilder builds an Ace.
type AceBuilder struct {
	b *builder.Builder
}

func NewAceBuilder() *AceBuilder {
	return &AceBuilder{b: AceSchema.New()}
}

func (ab *AceBuilder) SetPrincipal(p Principal) *AceBuilder {
	ab.b.Set("principal", p)
	return ab
}

func (ab *AceBuilder) SetPermissions(perms ...Permission) *AceBuilder {
	ab.b.Set("permissions", append([]Permission(nil), perms...))
	return ab
}

func (ab *AceBuilder) Set(field string, value interface{}) *AceBuilder {
	ab.b.Set(field, value)
	return ab
}

func (ab *AceBuilder) Build() (Ace, error) {
	v, err := ab.b.Build()
	if err != nil {
		return Ace{}, err
	}
	return aceFromValues(v), nil
}
