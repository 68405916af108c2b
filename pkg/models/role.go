package models

import (
	"encoding/json"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/kryptnostic/loom-api-go/pkg/builder"
	"github.com/kryptnostic/loom-api-go/pkg/ids"
)

// RoleSchema is the field table for Role.
var RoleSchema = builder.NewSchema(KindRole,
	builder.Field{Name: "id", Coerce: builder.ToUUID,
		Rules: []validation.Rule{builder.NotZero}},
	builder.Field{Name: "organizationId", Required: true, Coerce: builder.ToUUID,
		Rules: []validation.Rule{builder.NotZero}},
	builder.Field{Name: "principal", Required: true, Coerce: coercePrincipal},
	builder.Field{Name: "title", Required: true, Coerce: builder.ToString,
		Rules: []validation.Rule{validation.Required}},
	builder.Field{Name: "description", Coerce: builder.ToString},
)

// Role is a named principal scoped to an organization.
type Role struct {
	id             ids.UUID
	organizationID ids.UUID
	principal      Principal
	title          string
	description    string
	hasDescription bool
}

func (r Role) Kind() string { return KindRole }

// ID returns the role id; zero until the platform has assigned one.
func (r Role) ID() ids.UUID             { return r.id }
func (r Role) OrganizationID() ids.UUID { return r.organizationID }
func (r Role) Principal() Principal     { return r.principal }
func (r Role) Title() string            { return r.title }

// Description returns the description and whether one was set.
func (r Role) Description() (string, bool) {
	return r.description, r.hasDescription
}

// AclKey returns [organizationId, id], or nil when the role has no id yet.
func (r Role) AclKey() ids.AclKey {
	if r.id.IsZero() {
		return nil
	}
	return ids.AclKey{r.organizationID, r.id}
}

// Equal compares every field.
func (r Role) Equal(other Role) bool {
	return r.id.Equal(other.id) &&
		r.organizationID.Equal(other.organizationID) &&
		r.principal.Equal(other.principal) &&
		r.title == other.title &&
		r.hasDescription == other.hasDescription &&
		r.description == other.description
}

// Validate implements validation.Validatable.
func (r Role) Validate() error {
	_, err := r.toBuilder().Build()
	return err
}

// ToBuilder returns a builder pre-filled with r's fields.
func (r Role) ToBuilder() *RoleBuilder {
	return &RoleBuilder{b: r.toBuilder()}
}

func (r Role) toBuilder() *builder.Builder {
	b := RoleSchema.New().
		Set("organizationId", r.organizationID).
		Set("principal", r.principal).
		Set("title", r.title)
	if !r.id.IsZero() {
		b.Set("id", r.id)
	}
	if r.hasDescription {
		b.Set("description", r.description)
	}
	return b
}

type roleJSON struct {
	ID             *ids.UUID  `json:"id,omitempty"`
	OrganizationID ids.UUID   `json:"organizationId"`
	Principal      Principal  `json:"principal"`
	Title          string     `json:"title"`
	Description    *string    `json:"description,omitempty"`
	AclKey         ids.AclKey `json:"aclKey,omitempty"`
}

func (r Role) MarshalJSON() ([]byte, error) {
	out := roleJSON{
		OrganizationID: r.organizationID,
		Principal:      r.principal,
		Title:          r.title,
		AclKey:         r.AclKey(),
	}
	if !r.id.IsZero() {
		id := r.id
		out.ID = &id
	}
	if r.hasDescription {
		desc := r.description
		out.Description = &desc
	}
	return json.Marshal(out)
}

// UnmarshalJSON validates through RoleSchema. The derived aclKey is ignored.
func (r *Role) UnmarshalJSON(data []byte) error {
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("invalid role JSON: %w", err)
	}
	delete(raw, "aclKey")
	v, err := builder.FromMap(RoleSchema, raw).Build()
	if err != nil {
		return err
	}
	*r = roleFromValues(v)
	return nil
}

func roleFromValues(v builder.Values) Role {
	principal, _ := v.Get("principal").(Principal)
	return Role{
		id:             v.UUID("id"),
		organizationID: v.UUID("organizationId"),
		principal:      principal,
		title:          v.String("title"),
		description:    v.String("description"),
		hasDescription: v.Has("description"),
	}
}

// RoleBuilder builds a Role.
type RoleBuilder struct {
	b *builder.Builder
}

func NewRoleBuilder() *RoleBuilder {
	return &RoleBuilder{b: RoleSchema.New()}
}

func (rb *RoleBuilder) SetID(id ids.UUID) *RoleBuilder {
	rb.b.Set("id", id)
	return rb
}

func (rb *RoleBuilder) SetOrganizationID(id ids.UUID) *RoleBuilder {
	rb.b.Set("organizationId", id)
	return rb
}

func (rb *RoleBuilder) SetPrincipal(p Principal) *RoleBuilder {
	rb.b.Set("principal", p)
	return rb
}

func (rb *RoleBuilder) SetTitle(title string) *RoleBuilder {
	rb.b.Set("title", title)
	return rb
}

func (rb *RoleBuilder) SetDescription(description string) *RoleBuilder {
	rb.b.Set("description", description)
	return rb
}

// Set assigns a field by wire name with coercion.
func (rb *RoleBuilder) Set(field string, value interface{}) *RoleBuilder {
	rb.b.Set(field, value)
	return rb
}

func (rb *RoleBuilder) Build() (Role, error) {
	v, err := rb.b.Build()
	if err != nil {
		return Role{}, err
	}
	return roleFromValues(v), nil
}
