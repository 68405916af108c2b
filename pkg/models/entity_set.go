package models

import (
	"encoding/json"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/kryptnostic/loom-api-go/pkg/builder"
	"github.com/kryptnostic/loom-api-go/pkg/ids"
)

// EntitySetSchema is the field table for EntitySet.
var EntitySetSchema = builder.NewSchema(KindEntitySet,
	builder.Field{Name: "id", Coerce: builder.ToUUID,
		Rules: []validation.Rule{builder.NotZero}},
	builder.Field{Name: "entityTypeId", Required: true, Coerce: builder.ToUUID,
		Rules: []validation.Rule{builder.NotZero}},
	builder.Field{Name: "name", Required: true, Coerce: builder.ToString,
		Rules: []validation.Rule{validation.Required}},
	builder.Field{Name: "title", Required: true, Coerce: builder.ToString,
		Rules: []validation.Rule{validation.Required}},
	builder.Field{Name: "description", Coerce: builder.ToString},
	builder.Field{Name: "contacts", Required: true, Coerce: builder.ToStrings,
		Rules: []validation.Rule{validation.Required, validation.Each(validation.Required)}},
)

// EntitySet is a named collection of entities of one entity type.
type EntitySet struct {
	id           ids.UUID
	entityTypeID ids.UUID
	name         string
	title        string
	description  string
	contacts     []string
}

func (e EntitySet) Kind() string           { return KindEntitySet }
func (e EntitySet) ID() ids.UUID           { return e.id }
func (e EntitySet) EntityTypeID() ids.UUID { return e.entityTypeID }
func (e EntitySet) Name() string           { return e.name }
func (e EntitySet) Title() string          { return e.title }
func (e EntitySet) Description() string    { return e.description }

func (e EntitySet) Contacts() []string {
	return append([]string{}, e.contacts...)
}

func (e EntitySet) Equal(other EntitySet) bool {
	if len(e.contacts) != len(other.contacts) {
		return false
	}
	for i := range e.contacts {
		if e.contacts[i] != other.contacts[i] {
			return false
		}
	}
	return e.id.Equal(other.id) &&
		e.entityTypeID.Equal(other.entityTypeID) &&
		e.name == other.name &&
		e.title == other.title &&
		e.description == other.description
}

// Validate implements validation.Validatable.
func (e EntitySet) Validate() error {
	b := EntitySetSchema.New().
		Set("entityTypeId", e.entityTypeID).
		Set("name", e.name).
		Set("title", e.title).
		Set("contacts", e.Contacts())
	if !e.id.IsZero() {
		b.Set("id", e.id)
	}
	if e.description != "" {
		b.Set("description", e.description)
	}
	_, err := b.Build()
	return err
}

type entitySetJSON struct {
	ID           *ids.UUID `json:"id,omitempty"`
	EntityTypeID ids.UUID  `json:"entityTypeId"`
	Name         string    `json:"name"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	Contacts     []string  `json:"contacts"`
}

func (e EntitySet) MarshalJSON() ([]byte, error) {
	out := entitySetJSON{
		EntityTypeID: e.entityTypeID,
		Name:         e.name,
		Title:        e.title,
		Description:  e.description,
		Contacts:     e.Contacts(),
	}
	if !e.id.IsZero() {
		id := e.id
		out.ID = &id
	}
	return json.Marshal(out)
}

func (e *EntitySet) UnmarshalJSON(data []byte) error {
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("invalid entity set JSON: %w", err)
	}
	v, err := builder.FromMap(EntitySetSchema, raw).Build()
	if err != nil {
		return err
	}
	*e = entitySetFromValues(v)
	return nil
}

func entitySetFromValues(v builder.Values) EntitySet {
	return EntitySet{
		id:           v.UUID("id"),
		entityTypeID: v.UUID("entityTypeId"),
		name:         v.String("name"),
		title:        v.String("title"),
		description:  v.String("description"),
		contacts:     v.Strings("contacts"),
	}
}

// EntitySetBuilder builds an EntitySet.
type EntitySetBuilder struct {
	b *builder.Builder
}

func NewEntitySetBuilder() *EntitySetBuilder {
	return &EntitySetBuilder{b: EntitySetSchema.New()}
}

func (eb *EntitySetBuilder) SetID(id ids.UUID) *EntitySetBuilder {
	eb.b.Set("id", id)
	return eb
}

func (eb *EntitySetBuilder) SetEntityTypeID(id ids.UUID) *EntitySetBuilder {
	eb.b.Set("entityTypeId", id)
	return eb
}

func (eb *EntitySetBuilder) SetName(name string) *EntitySetBuilder {
	eb.b.Set("name", name)
	return eb
}

func (eb *EntitySetBuilder) SetTitle(title string) *EntitySetBuilder {
	eb.b.Set("title", title)
	return eb
}

func (eb *EntitySetBuilder) SetDescription(description string) *EntitySetBuilder {
	eb.b.Set("description", description)
	return eb
}

func (eb *EntitySetBuilder) SetContacts(contacts ...string) *EntitySetBuilder {
	eb.b.Set("contacts", append([]string{}, contacts...))
	return eb
}

func (eb *EntitySetBuilder) Set(field string, value interface{}) *EntitySetBuilder {
	eb.b.Set(field, value)
	return eb
}

func (eb *EntitySetBuilder) Build() (EntitySet, error) {
	v, err := eb.b.Build()
	if err != nil {
		return EntitySet{}, err
	}
	return entitySetFromValues(v), nil
}
