package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kryptnostic/loom-api-go/pkg/builder"
	"github.com/kryptnostic/loom-api-go/pkg/ids"
)

func TestPropertyTypeBuilder(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		pt, err := NewPropertyTypeBuilder().
			SetType(ids.MustFQN("general", "name")).
			SetTitle("Name").
			SetDatatype(DatatypeString).
			Build()
		require.NoError(t, err)

		assert.Equal(t, AnalyzerStandard, pt.Analyzer())
		assert.False(t, pt.PII())
		assert.Empty(t, pt.Schemas())
		assert.NotNil(t, pt.Schemas())
		assert.True(t, pt.ID().IsZero())
		assert.NoError(t, pt.Validate())
	})

	t.Run("coercion from definition values", func(t *testing.T) {
		pt, err := NewPropertyTypeBuilder().
			Set("type", "general.dob").
			Set("title", "Date of birth").
			Set("datatype", "date").
			Set("pii", "true").
			Set("analyzer", "metaphone").
			Set("schemas", []interface{}{"general.person"}).
			Build()
		require.NoError(t, err)
		assert.Equal(t, DatatypeDate, pt.Datatype())
		assert.True(t, pt.PII())
		assert.Equal(t, AnalyzerMetaphone, pt.Analyzer())
		assert.Equal(t, "general.person", pt.Schemas()[0].String())
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := NewPropertyTypeBuilder().
			Set("type", "nodot").
			Set("datatype", "Blob").
			Set("analyzer", "fuzzy").
			Build()
		var be *builder.Error
		require.ErrorAs(t, err, &be)
		assert.Error(t, be.FieldError("type"))
		assert.Error(t, be.FieldError("datatype"))
		assert.Error(t, be.FieldError("analyzer"))
		assert.Equal(t, "validation_required_field", builder.FieldCode(err, "title"))
	})
}

func TestPropertyType_JSON(t *testing.T) {
	pt, err := NewPropertyTypeBuilder().
		SetID(propA).
		SetType(ids.MustFQN("general", "name")).
		SetTitle("Name").
		SetDatatype(DatatypeString).
		SetPII(true).
		Build()
	require.NoError(t, err)

	data, err := json.Marshal(pt)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": "6ba7b811-9dad-11d1-80b4-00c04fd430c8",
		"type": {"namespace": "general", "name": "name"},
		"title": "Name",
		"schemas": [],
		"datatype": "String",
		"pii": true,
		"analyzer": "STANDARD"
	}`, string(data))

	var got PropertyType
	require.NoError(t, json.Unmarshal(data, &got))
	assert.True(t, pt.Equal(got))
}

func validEntityTypeBuilder() *EntityTypeBuilder {
	return NewEntityTypeBuilder().
		SetType(ids.MustFQN("general", "person")).
		SetTitle("Person").
		SetKey(propA).
		SetProperties(propA, propB)
}

func TestEntityTypeBuilder(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		et, err := validEntityTypeBuilder().Build()
		require.NoError(t, err)
		assert.Equal(t, CategoryEntityType, et.Category())
		assert.True(t, et.BaseType().IsZero())
		assert.Equal(t, []ids.UUID{propA}, et.Key())
		assert.NoError(t, et.Validate())
	})

	t.Run("key must be in properties", func(t *testing.T) {
		_, err := validEntityTypeBuilder().SetProperties(propB).Build()
		var be *builder.Error
		require.ErrorAs(t, err, &be)
		assert.ErrorContains(t, be.FieldError("key"), "not listed in properties")
	})

	t.Run("key must not be empty", func(t *testing.T) {
		_, err := validEntityTypeBuilder().SetKey().Build()
		assert.Equal(t, "validation_required", builder.FieldCode(err, "key"))
	})

	t.Run("association category", func(t *testing.T) {
		et, err := validEntityTypeBuilder().Set("category", "associationtype").Build()
		require.NoError(t, err)
		assert.Equal(t, CategoryAssociationType, et.Category())

		_, err = validEntityTypeBuilder().Set("category", "Mystery").Build()
		assert.Error(t, err)
	})

	t.Run("equality", func(t *testing.T) {
		a, err := validEntityTypeBuilder().Build()
		require.NoError(t, err)
		b, err := validEntityTypeBuilder().Build()
		require.NoError(t, err)
		c, err := validEntityTypeBuilder().SetBaseType(roleID).Build()
		require.NoError(t, err)
		assert.True(t, a.Equal(b))
		assert.False(t, a.Equal(c))
	})
}

func TestEntityType_JSON(t *testing.T) {
	et, err := validEntityTypeBuilder().SetBaseType(roleID).Build()
	require.NoError(t, err)

	data, err := json.Marshal(et)
	require.NoError(t, err)

	var got EntityType
	require.NoError(t, json.Unmarshal(data, &got))
	assert.True(t, et.Equal(got))

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "EntityType", raw["category"])
	assert.NotContains(t, raw, "id")
}

func TestEntitySetBuilder(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		es, err := NewEntitySetBuilder().
			SetEntityTypeID(propA).
			SetName("people").
			SetTitle("People").
			SetContacts("ops@example.com").
			Build()
		require.NoError(t, err)
		assert.Equal(t, []string{"ops@example.com"}, es.Contacts())
		assert.NoError(t, es.Validate())

		data, err := json.Marshal(es)
		require.NoError(t, err)
		var got EntitySet
		require.NoError(t, json.Unmarshal(data, &got))
		assert.True(t, es.Equal(got))
	})

	t.Run("contacts must be non-empty", func(t *testing.T) {
		_, err := NewEntitySetBuilder().
			SetEntityTypeID(propA).
			SetName("people").
			SetTitle("People").
			SetContacts().
			Build()
		assert.Equal(t, "validation_required", builder.FieldCode(err, "contacts"))

		_, err = NewEntitySetBuilder().
			SetEntityTypeID(propA).
			SetName("people").
			SetTitle("People").
			SetContacts("ops@example.com", "").
			Build()
		var be *builder.Error
		require.ErrorAs(t, err, &be)
		assert.Error(t, be.FieldError("contacts"))
	})
}
