package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kryptnostic/loom-api-go/pkg/builder"
	"github.com/kryptnostic/loom-api-go/pkg/ids"
)

func TestAccessCheckBuilder(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		ac, err := NewAccessCheckBuilder().
			SetAclKey(ids.AclKey{orgID, roleID}).
			SetPermissions(PermissionWrite, PermissionRead, PermissionRead).
			Build()
		require.NoError(t, err)
		assert.True(t, ids.AclKey{orgID, roleID}.Equal(ac.AclKey()))
		assert.Equal(t, 2, ac.Permissions().Len())
	})

	t.Run("required fields", func(t *testing.T) {
		_, err := NewAccessCheckBuilder().Build()
		assert.Equal(t, "validation_required_field", builder.FieldCode(err, "aclKey"))
		assert.Equal(t, "validation_required_field", builder.FieldCode(err, "permissions"))
	})

	t.Run("empty acl key and permissions", func(t *testing.T) {
		_, err := NewAccessCheckBuilder().SetAclKey(ids.AclKey{}).SetPermissions().Build()
		var be *builder.Error
		require.ErrorAs(t, err, &be)
		assert.ErrorIs(t, be.FieldError("aclKey"), ids.ErrEmptyAclKey)
		assert.Error(t, be.FieldError("permissions"))
	})

	t.Run("coerces loose input", func(t *testing.T) {
		ac, err := NewAccessCheckBuilder().
			Set("aclKey", []interface{}{orgID.String()}).
			Set("permissions", []interface{}{"read", "owner"}).
			Build()
		require.NoError(t, err)
		assert.True(t, ac.Permissions().Contains(PermissionOwner))
	})

	t.Run("acl key is copied", func(t *testing.T) {
		key := ids.AclKey{orgID}
		ac, err := NewAccessCheckBuilder().SetAclKey(key).SetPermissions(PermissionRead).Build()
		require.NoError(t, err)
		key[0] = roleID
		got := ac.AclKey()
		got[0] = roleID
		assert.True(t, orgID.Equal(ac.AclKey()[0]))
	})
}

func TestAccessCheck_Equal(t *testing.T) {
	build := func(key ids.AclKey, perms ...Permission) AccessCheck {
		ac, err := NewAccessCheckBuilder().SetAclKey(key).SetPermissions(perms...).Build()
		require.NoError(t, err)
		return ac
	}

	a := build(ids.AclKey{orgID, roleID}, PermissionRead, PermissionWrite)
	assert.True(t, a.Equal(build(ids.AclKey{orgID, roleID}, PermissionWrite, PermissionRead)))
	assert.False(t, a.Equal(build(ids.AclKey{roleID, orgID}, PermissionRead, PermissionWrite)))
	assert.False(t, a.Equal(build(ids.AclKey{orgID, roleID}, PermissionRead)))
}

func TestAccessCheck_JSON(t *testing.T) {
	ac, err := NewAccessCheckBuilder().
		SetAclKey(ids.AclKey{orgID}).
		SetPermissions(PermissionWrite, PermissionRead).
		Build()
	require.NoError(t, err)

	data, err := json.Marshal(ac)
	require.NoError(t, err)
	assert.JSONEq(t, `{"aclKey":["550e8400-e29b-41d4-a716-446655440000"],"permissions":["READ","WRITE"]}`, string(data))

	var got AccessCheck
	require.NoError(t, json.Unmarshal(data, &got))
	assert.True(t, ac.Equal(got))
	assert.NoError(t, got.Validate())

	assert.Error(t, json.Unmarshal([]byte(`{"aclKey":[],"permissions":["READ"]}`), &got))
}
