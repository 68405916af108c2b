package models

import (
	"encoding/json"
	"fmt"

	"github.com/kryptnostic/loom-api-go/pkg/builder"
	"github.com/kryptnostic/loom-api-go/pkg/ids"
)

// AclSchema is the field table for Acl. An empty aces list is allowed and
// means "no entries"; a missing one is not.
var AclSchema = builder.NewSchema(KindAcl,
	builder.Field{Name: "aclKey", Required: true, Coerce: builder.ToAclKey},
	builder.Field{Name: "aces", Required: true, Coerce: coerceAces},
)

// Acl is the list of access control entries for one securable object.
type Acl struct {
	aclKey ids.AclKey
	aces   []Ace
}

func (a Acl) Kind() string       { return KindAcl }
func (a Acl) AclKey() ids.AclKey { return a.aclKey.Clone() }

func (a Acl) Aces() []Ace {
	return append([]Ace{}, a.aces...)
}

// Equal compares acl keys and aces in order.
func (a Acl) Equal(other Acl) bool {
	if !a.aclKey.Equal(other.aclKey) || len(a.aces) != len(other.aces) {
		return false
	}
	for i := range a.aces {
		if !a.aces[i].Equal(other.aces[i]) {
			return false
		}
	}
	return true
}

// Validate implements validation.Validatable.
func (a Acl) Validate() error {
	_, err := AclSchema.New().
		Set("aclKey", a.aclKey).
		Set("aces", a.Aces()).
		Build()
	return err
}

type aclJSON struct {
	AclKey ids.AclKey `json:"aclKey"`
	Aces   []Ace      `json:"aces"`
}

func (a Acl) MarshalJSON() ([]byte, error) {
	return json.Marshal(aclJSON{AclKey: a.aclKey, Aces: a.Aces()})
}

func (a *Acl) UnmarshalJSON(data []byte) error {
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("invalid acl JSON: %w", err)
	}
	v, err := builder.FromMap(AclSchema, raw).Build()
	if err != nil {
		return err
	}
	*a = aclFromValues(v)
	return nil
}

func aclFromValues(v builder.Values) Acl {
	aces, _ := v.Get("aces").([]Ace)
	return Acl{aclKey: v.AclKey("aclKey"), aces: append([]Ace{}, aces...)}
}

func coerceAcl(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case Acl:
		return v, nil
	case map[string]interface{}:
		built, err := builder.FromMap(AclSchema, v).Build()
		if err != nil {
			return nil, err
		}
		return aclFromValues(built), nil
	}
	return nil, fmt.Errorf("must be an acl, got %T", value)
}

// AclBuilder builds an Acl.
type AclBuilder struct {
	b    *builder.Builder
	aces []Ace
}

func NewAclBuilder() *AclBuilder {
	return &AclBuilder{b: AclSchema.New()}
}

func (ab *AclBuilder) SetAclKey(key ids.AclKey) *AclBuilder {
	ab.b.Set("aclKey", key.Clone())
	return ab
}

// SetAces replaces the entries.
func (ab *AclBuilder) SetAces(aces ...Ace) *AclBuilder {
	ab.aces = append([]Ace{}, aces...)
	ab.b.Set("aces", ab.aces)
	return ab
}

// AddAce appends one entry.
func (ab *AclBuilder) AddAce(ace Ace) *AclBuilder {
	ab.aces = append(append([]Ace{}, ab.aces...), ace)
	ab.b.Set("aces", ab.aces)
	return ab
}

func (ab *AclBuilder) Set(field string, value interface{}) *AclBuilder {
	ab.b.Set(field, value)
	return ab
}

func (ab *AclBuilder) Build() (Acl, error) {
	v, err := ab.b.Build()
	if err != nil {
		return Acl{}, err
	}
	return aclFromValues(v), nil
}
