package models

import (
	"encoding/json"
	"fmt"

	"github.com/kryptnostic/loom-api-go/pkg/builder"
	"github.com/kryptnostic/loom-api-go/pkg/ids"
)

// AccessCheckSchema is the field table for AccessCheck.
var AccessCheckSchema = builder.NewSchema(KindAccessCheck,
	builder.Field{Name: "aclKey", Required: true, Coerce: builder.ToAclKey},
	builder.Field{Name: "permissions", Required: true, Coerce: coercePermissionSet},
)

// AccessCheck asks whether the caller holds permissions on the object at aclKey.
type AccessCheck struct {
	aclKey      ids.AclKey
	permissions PermissionSet
}

func (a AccessCheck) Kind() string { return KindAccessCheck }

func (a AccessCheck) AclKey() ids.AclKey         { return a.aclKey.Clone() }
func (a AccessCheck) Permissions() PermissionSet { return a.permissions }

// Equal compares acl keys in order and permissions as sets.
func (a AccessCheck) Equal(other AccessCheck) bool {
	return a.aclKey.Equal(other.aclKey) && a.permissions.Equal(other.permissions)
}

// Validate implements validation.Validatable.
func (a AccessCheck) Validate() error {
	_, err := AccessCheckSchema.New().
		Set("aclKey", a.aclKey).
		Set("permissions", a.permissions).
		Build()
	return err
}

type accessCheckJSON struct {
	AclKey      ids.AclKey    `json:"aclKey"`
	Permissions PermissionSet `json:"permissions"`
}

func (a AccessCheck) MarshalJSON() ([]byte, error) {
	return json.Marshal(accessCheckJSON{AclKey: a.aclKey, Permissions: a.permissions})
}

func (a *AccessCheck) UnmarshalJSON(data []byte) error {
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("invalid access check JSON: %w", err)
	}
	v, err := builder.FromMap(AccessCheckSchema, raw).Build()
	if err != nil {
		return err
	}
	*a = accessCheckFromValues(v)
	return nil
}

func accessCheckFromValues(v builder.Values) AccessCheck {
	perms, _ := v.Get("permissions").(PermissionSet)
	return AccessCheck{aclKey: v.AclKey("aclKey"), permissions: perms}
}

// AccessCheckBuilder builds an AccessCheck.
type AccessCheckBuilder struct {
	b *builder.Builder
}

func NewAccessCheckBuilder() *AccessCheckBuilder {
	return &AccessCheckBuilder{b: AccessCheckSchema.New()}
}

func (ab *AccessCheckBuilder) SetAclKey(key ids.AclKey) *AccessCheckBuilder {
	ab.b.Set("aclKey", key.Clone())
	return ab
}

// SetPermissions replaces the permission set. Duplicates are dropped.
func (ab *AccessCheckBuilder) SetPermissions(perms ...Permission) *AccessCheckBuilder {
	ab.b.Set("permissions", append([]Permission(nil), perms...))
	return ab
}

func (ab *AccessCheckBuilder) Set(field string, value interface{}) *AccessCheckBuilder {
	ab.b.Set(field, value)
	return ab
}

func (ab *AccessCheckBuilder) Build() (AccessCheck, error) {
	v, err := ab.b.Build()
	if err != nil {
		return AccessCheck{}, err
	}
	return accessCheckFromValues(v), nil
}
