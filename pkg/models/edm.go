package models

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/kryptnostic/loom-api-go/pkg/builder"
	"github.com/kryptnostic/loom-api-go/pkg/ids"
)

// Datatype is an EDM primitive type kind a property type stores.
type Datatype string

const (
	DatatypeBinary         Datatype = "Binary"
	DatatypeBoolean        Datatype = "Boolean"
	DatatypeByte           Datatype = "Byte"
	DatatypeSByte          Datatype = "SByte"
	DatatypeDate           Datatype = "Date"
	DatatypeDateTimeOffset Datatype = "DateTimeOffset"
	DatatypeTimeOfDay      Datatype = "TimeOfDay"
	DatatypeDuration       Datatype = "Duration"
	DatatypeDecimal        Datatype = "Decimal"
	DatatypeSingle         Datatype = "Single"
	DatatypeDouble         Datatype = "Double"
	DatatypeGUID           Datatype = "Guid"
	DatatypeInt16          Datatype = "Int16"
	DatatypeInt32          Datatype = "Int32"
	DatatypeInt64          Datatype = "Int64"
	DatatypeString         Datatype = "String"
	DatatypeGeographyPoint Datatype = "GeographyPoint"
)

var datatypes = []Datatype{
	DatatypeBinary, DatatypeBoolean, DatatypeByte, DatatypeSByte, DatatypeDate,
	DatatypeDateTimeOffset, DatatypeTimeOfDay, DatatypeDuration, DatatypeDecimal,
	DatatypeSingle, DatatypeDouble, DatatypeGUID, DatatypeInt16, DatatypeInt32,
	DatatypeInt64, DatatypeString, DatatypeGeographyPoint,
}

// ParseDatatype matches case-insensitively and returns the canonical spelling.
func ParseDatatype(s string) (Datatype, error) {
	for _, d := range datatypes {
		if strings.EqualFold(string(d), strings.TrimSpace(s)) {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown datatype %q", s)
}

// Validate implements validation.Validatable.
func (d Datatype) Validate() error {
	for _, known := range datatypes {
		if d == known {
			return nil
		}
	}
	return fmt.Errorf("unknown datatype %q", string(d))
}

// Analyzer selects how string property values are indexed for search.
type Analyzer string

const (
	AnalyzerStandard    Analyzer = "STANDARD"
	AnalyzerMetaphone   Analyzer = "METAPHONE"
	AnalyzerNotAnalyzed Analyzer = "NOT_ANALYZED"
)

// Validate implements validation.Validatable.
func (a Analyzer) Validate() error {
	switch a {
	case AnalyzerStandard, AnalyzerMetaphone, AnalyzerNotAnalyzed:
		return nil
	}
	return fmt.Errorf("unknown analyzer %q", string(a))
}

// Category distinguishes plain entity types from association types.
type Category string

const (
	CategoryEntityType      Category = "EntityType"
	CategoryAssociationType Category = "AssociationType"
)

// Validate implements validation.Validatable.
func (c Category) Validate() error {
	switch c {
	case CategoryEntityType, CategoryAssociationType:
		return nil
	}
	return fmt.Errorf("unknown category %q", string(c))
}

func coerceDatatype(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case Datatype:
		return v, nil
	case string:
		return ParseDatatype(v)
	}
	return nil, fmt.Errorf("must be a datatype, got %T", value)
}

func coerceAnalyzer(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case Analyzer:
		return v, nil
	case string:
		return Analyzer(strings.ToUpper(strings.TrimSpace(v))), nil
	}
	return nil, fmt.Errorf("must be an analyzer, got %T", value)
}

func coerceCategory(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case Category:
		return v, nil
	case string:
		for _, c := range []Category{CategoryEntityType, CategoryAssociationType} {
			if strings.EqualFold(string(c), strings.TrimSpace(v)) {
				return c, nil
			}
		}
		return Category(v), nil
	}
	return nil, fmt.Errorf("must be a category, got %T", value)
}

// edmFields are shared by PropertyType and EntityType.
func edmFields() []builder.Field {
	return []builder.Field{
		{Name: "id", Coerce: builder.ToUUID, Rules: []validation.Rule{builder.NotZero}},
		{Name: "type", Required: true, Coerce: builder.ToFQN},
		{Name: "title", Required: true, Coerce: builder.ToString,
			Rules: []validation.Rule{validation.Required}},
		{Name: "description", Coerce: builder.ToString},
		{Name: "schemas", Coerce: builder.ToFQNs,
			Default: func() interface{} { return []ids.FullyQualifiedName{} }},
	}
}

// edmCommon holds the fields shared by PropertyType and EntityType.
type edmCommon struct {
	id          ids.UUID
	typ         ids.FullyQualifiedName
	title       string
	description string
	schemas     []ids.FullyQualifiedName
}

func edmCommonFromValues(v builder.Values) edmCommon {
	return edmCommon{
		id:          v.UUID("id"),
		typ:         v.FQN("type"),
		title:       v.String("title"),
		description: v.String("description"),
		schemas:     v.FQNs("schemas"),
	}
}

func (c edmCommon) fill(b *builder.Builder) *builder.Builder {
	b.Set("type", c.typ).
		Set("title", c.title).
		Set("schemas", append([]ids.FullyQualifiedName{}, c.schemas...))
	if !c.id.IsZero() {
		b.Set("id", c.id)
	}
	if c.description != "" {
		b.Set("description", c.description)
	}
	return b
}

func (c edmCommon) equal(other edmCommon) bool {
	return c.id.Equal(other.id) &&
		c.typ.Equal(other.typ) &&
		c.title == other.title &&
		c.description == other.description &&
		fqnsEqual(c.schemas, other.schemas)
}

func fqnsEqual(a, b []ids.FullyQualifiedName) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func uuidsEqual(a, b []ids.UUID) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
