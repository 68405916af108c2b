package models

import (
	"encoding/json"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/kryptnostic/loom-api-go/pkg/builder"
	"github.com/kryptnostic/loom-api-go/pkg/ids"
)

// EntityTypeSchema is the field table for EntityType. Every key property must
// also be listed in properties.
var EntityTypeSchema = builder.NewSchema(KindEntityType, append(edmFields(),
	builder.Field{Name: "key", Required: true, Coerce: builder.ToUUIDs,
		Rules: []validation.Rule{validation.Required, validation.Each(builder.NotZero)}},
	builder.Field{Name: "properties", Required: true, Coerce: builder.ToUUIDs,
		Rules: []validation.Rule{validation.Each(builder.NotZero)}},
	builder.Field{Name: "baseType", Coerce: builder.ToUUID,
		Rules: []validation.Rule{builder.NotZero}},
	builder.Field{Name: "category", Coerce: coerceCategory,
		Default: func() interface{} { return CategoryEntityType }},
)...).WithCheck(checkKeyInProperties)

func checkKeyInProperties(v builder.Values) validation.Errors {
	props := make(map[ids.UUID]struct{})
	for _, id := range v.UUIDs("properties") {
		props[id] = struct{}{}
	}
	for _, id := range v.UUIDs("key") {
		if _, ok := props[id]; !ok {
			return validation.Errors{
				"key": fmt.Errorf("key property %s is not listed in properties", id),
			}
		}
	}
	return nil
}

// EntityType defines the shape of entities: which property types they carry
// and which of those form the entity key.
type EntityType struct {
	edmCommon
	key        []ids.UUID
	properties []ids.UUID
	baseType   ids.UUID
	category   Category
}

func (e EntityType) Kind() string                 { return KindEntityType }
func (e EntityType) ID() ids.UUID                 { return e.id }
func (e EntityType) Type() ids.FullyQualifiedName { return e.typ }
func (e EntityType) Title() string                { return e.title }
func (e EntityType) Description() string          { return e.description }
func (e EntityType) Category() Category           { return e.category }

// BaseType returns the parent entity type id; zero when there is none.
func (e EntityType) BaseType() ids.UUID { return e.baseType }

func (e EntityType) Schemas() []ids.FullyQualifiedName {
	return append([]ids.FullyQualifiedName{}, e.schemas...)
}

func (e EntityType) Key() []ids.UUID {
	return append([]ids.UUID{}, e.key...)
}

func (e EntityType) Properties() []ids.UUID {
	return append([]ids.UUID{}, e.properties...)
}

func (e EntityType) Equal(other EntityType) bool {
	return e.edmCommon.equal(other.edmCommon) &&
		uuidsEqual(e.key, other.key) &&
		uuidsEqual(e.properties, other.properties) &&
		e.baseType.Equal(other.baseType) &&
		e.category == other.category
}

// Validate implements validation.Validatable.
func (e EntityType) Validate() error {
	b := e.fill(EntityTypeSchema.New()).
		Set("key", e.Key()).
		Set("properties", e.Properties()).
		Set("category", e.category)
	if !e.baseType.IsZero() {
		b.Set("baseType", e.baseType)
	}
	_, err := b.Build()
	return err
}

type entityTypeJSON struct {
	ID          *ids.UUID                `json:"id,omitempty"`
	Type        ids.FullyQualifiedName   `json:"type"`
	Title       string                   `json:"title"`
	Description string                   `json:"description,omitempty"`
	Schemas     []ids.FullyQualifiedName `json:"schemas"`
	Key         []ids.UUID               `json:"key"`
	Properties  []ids.UUID               `json:"properties"`
	BaseType    *ids.UUID                `json:"baseType,omitempty"`
	Category    Category                 `json:"category"`
}

func (e EntityType) MarshalJSON() ([]byte, error) {
	out := entityTypeJSON{
		Type:        e.typ,
		Title:       e.title,
		Description: e.description,
		Schemas:     e.Schemas(),
		Key:         e.Key(),
		Properties:  e.Properties(),
		Category:    e.category,
	}
	if !e.id.IsZero() {
		id := e.id
		out.ID = &id
	}
	if !e.baseType.IsZero() {
		base := e.baseType
		out.BaseType = &base
	}
	return json.Marshal(out)
}

func (e *EntityType) UnmarshalJSON(data []byte) error {
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("invalid entity type JSON: %w", err)
	}
	v, err := builder.FromMap(EntityTypeSchema, raw).Build()
	if err != nil {
		return err
	}
	*e = entityTypeFromValues(v)
	return nil
}

func entityTypeFromValues(v builder.Values) EntityType {
	category, _ := v.Get("category").(Category)
	return EntityType{
		edmCommon:  edmCommonFromValues(v),
		key:        v.UUIDs("key"),
		properties: v.UUIDs("properties"),
		baseType:   v.UUID("baseType"),
		category:   category,
	}
}

// EntityTypeBuilder builds an EntityType.
type EntityTypeBuilder struct {
	b *builder.Builder
}

func NewEntityTypeBuilder() *EntityTypeBuilder {
	return &EntityTypeBuilder{b: EntityTypeSchema.New()}
}

func (eb *EntityTypeBuilder) SetID(id ids.UUID) *EntityTypeBuilder {
	eb.b.Set("id", id)
	return eb
}

func (eb *EntityTypeBuilder) SetType(fqn ids.FullyQualifiedName) *EntityTypeBuilder {
	eb.b.Set("type", fqn)
	return eb
}

func (eb *EntityTypeBuilder) SetTitle(title string) *EntityTypeBuilder {
	eb.b.Set("title", title)
	return eb
}

func (eb *EntityTypeBuilder) SetDescription(description string) *EntityTypeBuilder {
	eb.b.Set("description", description)
	return eb
}

func (eb *EntityTypeBuilder) SetSchemas(schemas ...ids.FullyQualifiedName) *EntityTypeBuilder {
	eb.b.Set("schemas", append([]ids.FullyQualifiedName{}, schemas...))
	return eb
}

func (eb *EntityTypeBuilder) SetKey(key ...ids.UUID) *EntityTypeBuilder {
	eb.b.Set("key", append([]ids.UUID{}, key...))
	return eb
}

func (eb *EntityTypeBuilder) SetProperties(properties ...ids.UUID) *EntityTypeBuilder {
	eb.b.Set("properties", append([]ids.UUID{}, properties...))
	return eb
}

func (eb *EntityTypeBuilder) SetBaseType(id ids.UUID) *EntityTypeBuilder {
	eb.b.Set("baseType", id)
	return eb
}

func (eb *EntityTypeBuilder) SetCategory(c Category) *EntityTypeBuilder {
	eb.b.Set("category", c)
	return eb
}

func (eb *EntityTypeBuilder) Set(field string, value interface{}) *EntityTypeBuilder {
	eb.b.Set(field, value)
	return eb
}

func (eb *EntityTypeBuilder) Build() (EntityType, error) {
	v, err := eb.b.Build()
	if err != nil {
		return EntityType{}, err
	}
	return entityTypeFromValues(v), nil
}
