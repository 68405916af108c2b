package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kryptnostic/loom-api-go/pkg/builder"
	"github.com/kryptnostic/loom-api-go/pkg/ids"
)

func validRoleBuilder() *RoleBuilder {
	return NewRoleBuilder().
		SetOrganizationID(orgID).
		SetPrincipal(mustPrincipal(PrincipalTypeRole, "analysts")).
		SetTitle("Analysts")
}

func TestRoleBuilder(t *testing.T) {
	t.Run("minimal role", func(t *testing.T) {
		r, err := validRoleBuilder().Build()
		require.NoError(t, err)

		assert.True(t, r.ID().IsZero())
		assert.True(t, orgID.Equal(r.OrganizationID()))
		assert.Equal(t, "Analysts", r.Title())
		_, hasDesc := r.Description()
		assert.False(t, hasDesc)
		assert.Nil(t, r.AclKey())
	})

	t.Run("acl key derived from id", func(t *testing.T) {
		r, err := validRoleBuilder().SetID(roleID).SetDescription("reads things").Build()
		require.NoError(t, err)

		assert.True(t, ids.AclKey{orgID, roleID}.Equal(r.AclKey()))
		desc, ok := r.Description()
		assert.True(t, ok)
		assert.Equal(t, "reads things", desc)
	})

	t.Run("required fields", func(t *testing.T) {
		_, err := NewRoleBuilder().Build()
		require.Error(t, err)
		for _, field := range []string{"organizationId", "principal", "title"} {
			assert.Equal(t, "validation_required_field", builder.FieldCode(err, field), field)
		}
		assert.Equal(t, "", builder.FieldCode(err, "id"))
		assert.Equal(t, "", builder.FieldCode(err, "description"))
	})

	t.Run("zero organization id", func(t *testing.T) {
		_, err := validRoleBuilder().SetOrganizationID(ids.UUID{}).Build()
		assert.Equal(t, "validation_zero_value", builder.FieldCode(err, "organizationId"))
	})

	t.Run("invalid nested principal", func(t *testing.T) {
		_, err := validRoleBuilder().SetPrincipal(Principal{}).Build()
		var be *builder.Error
		require.ErrorAs(t, err, &be)
		assert.Error(t, be.FieldError("principal"))
	})

	t.Run("generic setters coerce", func(t *testing.T) {
		r, err := NewRoleBuilder().
			Set("organizationId", orgID.String()).
			Set("id", roleID.String()).
			Set("principal", map[string]interface{}{"type": "role", "id": "analysts"}).
			Set("title", "Analysts").
			Build()
		require.NoError(t, err)
		assert.True(t, roleID.Equal(r.ID()))
		assert.Equal(t, PrincipalTypeRole, r.Principal().Type())
	})
}

func TestRole_Equal(t *testing.T) {
	a, err := validRoleBuilder().SetID(roleID).Build()
	require.NoError(t, err)
	b, err := a.ToBuilder().Build()
	require.NoError(t, err)
	assert.True(t, a.Equal(b))

	c, err := a.ToBuilder().SetTitle("Other").Build()
	require.NoError(t, err)
	assert.False(t, a.Equal(c))

	d, err := a.ToBuilder().SetDescription("").Build()
	require.NoError(t, err)
	assert.False(t, a.Equal(d), "empty description differs from no description")
}

func TestRole_JSON(t *testing.T) {
	r, err := validRoleBuilder().SetID(roleID).Build()
	require.NoError(t, err)

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": "6ba7b810-9dad-11d1-80b4-00c04fd430c8",
		"organizationId": "550e8400-e29b-41d4-a716-446655440000",
		"principal": {"type": "ROLE", "id": "analysts"},
		"title": "Analysts",
		"aclKey": ["550e8400-e29b-41d4-a716-446655440000", "6ba7b810-9dad-11d1-80b4-00c04fd430c8"]
	}`, string(data))

	var got Role
	require.NoError(t, json.Unmarshal(data, &got))
	assert.True(t, r.Equal(got))

	err = json.Unmarshal([]byte(`{"title": "x"}`), &got)
	var be *builder.Error
	assert.ErrorAs(t, err, &be)
}

func TestRole_Validate(t *testing.T) {
	r, err := validRoleBuilder().Build()
	require.NoError(t, err)
	assert.NoError(t, r.Validate())
	assert.Error(t, Role{}.Validate())
}
