package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kryptnostic/loom-api-go/pkg/builder"
)

// ActionType says how AclData changes the target ACL.
type ActionType string

const (
	ActionAdd     ActionType = "ADD"
	ActionRemove  ActionType = "REMOVE"
	ActionSet     ActionType = "SET"
	ActionRequest ActionType = "REQUEST"
)

// ParseActionType parses an action type case-insensitively.
func ParseActionType(s string) (ActionType, error) {
	a := ActionType(strings.ToUpper(strings.TrimSpace(s)))
	if err := a.Validate(); err != nil {
		return "", err
	}
	return a, nil
}

// Validate implements validation.Validatable.
func (a ActionType) Validate() error {
	switch a {
	case ActionAdd, ActionRemove, ActionSet, ActionRequest:
		return nil
	}
	return fmt.Errorf("unknown action %q", string(a))
}

func coerceActionType(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case ActionType:
		return v, nil
	case string:
		return ParseActionType(v)
	}
	return nil, fmt.Errorf("must be an action, got %T", value)
}

// AclDataSchema is the field table for AclData.
var AclDataSchema = builder.NewSchema(KindAclData,
	builder.Field{Name: "acl", Required: true, Coerce: coerceAcl},
	builder.Field{Name: "action", Required: true, Coerce: coerceActionType},
)

// AclData is a permission update request: an Acl plus what to do with it.
type AclData struct {
	acl    Acl
	action ActionType
}

func (d AclData) Kind() string       { return KindAclData }
func (d AclData) Acl() Acl           { return d.acl }
func (d AclData) Action() ActionType { return d.action }

func (d AclData) Equal(other AclData) bool {
	return d.action == other.action && d.acl.Equal(other.acl)
}

// Validate implements validation.Validatable.
func (d AclData) Validate() error {
	_, err := AclDataSchema.New().
		Set("acl", d.acl).
		Set("action", d.action).
		Build()
	return err
}

type aclDataJSON struct {
	Acl    Acl        `json:"acl"`
	Action ActionType `json:"action"`
}

func (d AclData) MarshalJSON() ([]byte, error) {
	return json.Marshal(aclDataJSON{Acl: d.acl, Action: d.action})
}

func (d *AclData) UnmarshalJSON(data []byte) error {
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("invalid acl data JSON: %w", err)
	}
	v, err := builder.FromMap(AclDataSchema, raw).Build()
	if err != nil {
		return err
	}
	*d = aclDataFromValues(v)
	return nil
}

func aclDataFromValues(v builder.Values) AclData {
	acl, _ := v.Get("acl").(Acl)
	action, _ := v.Get("action").(ActionType)
	return AclData{acl: acl, action: action}
}

// AclDataBuilder builds an AclData.
type AclDataBuilder struct {
	b *builder.Builder
}

func NewAclDataBuilder() *AclDataBuilder {
	return &AclDataBuilder{b: AclDataSchema.New()}
}

func (db *AclDataBuilder) SetAcl(acl Acl) *AclDataBuilder {
	db.b.Set("acl", acl)
	return db
}

func (db *AclDataBuilder) SetAction(action ActionType) *AclDataBuilder {
	db.b.Set("action", action)
	return db
}

func (db *AclDataBuilder) Set(field string, value interface{}) *AclDataBuilder {
	db.b.Set(field, value)
	return db
}

func (db *AclDataBuilder) Build() (AclData, error) {
	v, err := db.b.Build()
	if err != nil {
		return AclData{}, err
	}
	return aclDataFromValues(v), nil
}
