package models

import (
	"encoding/json"
	"fmt"

	"github.com/kryptnostic/loom-api-go/pkg/builder"
	"github.com/kryptnostic/loom-api-go/pkg/ids"
)

// PropertyTypeSchema is the field table for PropertyType.
var PropertyTypeSchema = builder.NewSchema(KindPropertyType, append(edmFields(),
	builder.Field{Name: "datatype", Required: true, Coerce: coerceDatatype},
	builder.Field{Name: "pii", Coerce: builder.ToBool,
		Default: func() interface{} { return false }},
	builder.Field{Name: "analyzer", Coerce: coerceAnalyzer,
		Default: func() interface{} { return AnalyzerStandard }},
)...)

// PropertyType defines one typed property entity types are composed of.
type PropertyType struct {
	edmCommon
	datatype Datatype
	pii      bool
	analyzer Analyzer
}

func (p PropertyType) Kind() string                 { return KindPropertyType }
func (p PropertyType) ID() ids.UUID                 { return p.id }
func (p PropertyType) Type() ids.FullyQualifiedName { return p.typ }
func (p PropertyType) Title() string                { return p.title }
func (p PropertyType) Description() string          { return p.description }
func (p PropertyType) Datatype() Datatype           { return p.datatype }
func (p PropertyType) PII() bool                    { return p.pii }
func (p PropertyType) Analyzer() Analyzer           { return p.analyzer }
func (p PropertyType) Schemas() []ids.FullyQualifiedName {
	return append([]ids.FullyQualifiedName{}, p.schemas...)
}

func (p PropertyType) Equal(other PropertyType) bool {
	return p.edmCommon.equal(other.edmCommon) &&
		p.datatype == other.datatype &&
		p.pii == other.pii &&
		p.analyzer == other.analyzer
}

// Validate implements validation.Validatable.
func (p PropertyType) Validate() error {
	_, err := p.toBuilder().Build()
	return err
}

func (p PropertyType) toBuilder() *builder.Builder {
	return p.fill(PropertyTypeSchema.New()).
		Set("datatype", p.datatype).
		Set("pii", p.pii).
		Set("analyzer", p.analyzer)
}

type propertyTypeJSON struct {
	ID          *ids.UUID                `json:"id,omitempty"`
	Type        ids.FullyQualifiedName   `json:"type"`
	Title       string                   `json:"title"`
	Description string                   `json:"description,omitempty"`
	Schemas     []ids.FullyQualifiedName `json:"schemas"`
	Datatype    Datatype                 `json:"datatype"`
	PII         bool                     `json:"pii"`
	Analyzer    Analyzer                 `json:"analyzer"`
}

func (p PropertyType) MarshalJSON() ([]byte, error) {
	out := propertyTypeJSON{
		Type:        p.typ,
		Title:       p.title,
		Description: p.description,
		Schemas:     p.Schemas(),
		Datatype:    p.datatype,
		PII:         p.pii,
		Analyzer:    p.analyzer,
	}
	if !p.id.IsZero() {
		id := p.id
		out.ID = &id
	}
	return json.Marshal(out)
}

func (p *PropertyType) UnmarshalJSON(data []byte) error {
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("invalid property type JSON: %w", err)
	}
	v, err := builder.FromMap(PropertyTypeSchema, raw).Build()
	if err != nil {
		return err
	}
	*p = propertyTypeFromValues(v)
	return nil
}

func propertyTypeFromValues(v builder.Values) PropertyType {
	datatype, _ := v.Get("datatype").(Datatype)
	analyzer, _ := v.Get("analyzer").(Analyzer)
	return PropertyType{
		edmCommon: edmCommonFromValues(v),
		datatype:  datatype,
		pii:       v.Bool("pii"),
		analyzer:  analyzer,
	}
}

// PropertyTypeBuilder builds a PropertyType.
type PropertyTypeBuilder struct {
	b *builder.Builder
}

func NewPropertyTypeBuilder() *PropertyTypeBuilder {
	return &PropertyTypeBuilder{b: PropertyTypeSchema.New()}
}

func (pb *PropertyTypeBuilder) SetID(id ids.UUID) *PropertyTypeBuilder {
	pb.b.Set("id", id)
	return pb
}

func (pb *PropertyTypeBuilder) SetType(fqn ids.FullyQualifiedName) *PropertyTypeBuilder {
	pb.b.Set("type", fqn)
	return pb
}

func (pb *PropertyTypeBuilder) SetTitle(title string) *PropertyTypeBuilder {
	pb.b.Set("title", title)
	return pb
}

func (pb *PropertyTypeBuilder) SetDescription(description string) *PropertyTypeBuilder {
	pb.b.Set("description", description)
	return pb
}

func (pb *PropertyTypeBuilder) SetSchemas(schemas ...ids.FullyQualifiedName) *PropertyTypeBuilder {
	pb.b.Set("schemas", append([]ids.FullyQualifiedName{}, schemas...))
	return pb
}

func (pb *PropertyTypeBuilder) SetDatatype(d Datatype) *PropertyTypeBuilder {
	pb.b.Set("datatype", d)
	return pb
}

func (pb *PropertyTypeBuilder) SetPII(pii bool) *PropertyTypeBuilder {
	pb.b.Set("pii", pii)
	return pb
}

func (pb *PropertyTypeBuilder) SetAnalyzer(a Analyzer) *PropertyTypeBuilder {
	pb.b.Set("analyzer", a)
	return pb
}

func (pb *PropertyTypeBuilder) Set(field string, value interface{}) *PropertyTypeBuilder {
	pb.b.Set(field, value)
	return pb
}

func (pb *PropertyTypeBuilder) Build() (PropertyType, error) {
	v, err := pb.b.Build()
	if err != nil {
		return PropertyType{}, err
	}
	return propertyTypeFromValues(v), nil
}
