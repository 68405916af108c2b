package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kryptnostic/loom-api-go/pkg/builder"
	"github.com/kryptnostic/loom-api-go/pkg/ids"
)

func testAce(t *testing.T, id string, perms ...Permission) Ace {
	t.Helper()
	ace, err := NewAceBuilder().
		SetPrincipal(mustPrincipal(PrincipalTypeUser, id)).
		SetPermissions(perms...).
		Build()
	require.NoError(t, err)
	return ace
}

func TestAceBuilder(t *testing.T) {
	ace := testAce(t, "alice", PermissionRead, PermissionRead)
	assert.Equal(t, "alice", ace.Principal().ID())
	assert.Equal(t, 1, ace.Permissions().Len())
	assert.True(t, ace.Equal(testAce(t, "alice", PermissionRead)))
	assert.False(t, ace.Equal(testAce(t, "bob", PermissionRead)))

	_, err := NewAceBuilder().SetPermissions(PermissionRead).Build()
	assert.Equal(t, "validation_required_field", builder.FieldCode(err, "principal"))
}

func TestAclBuilder(t *testing.T) {
	t.Run("add and set aces", func(t *testing.T) {
		acl, err := NewAclBuilder().
			SetAclKey(ids.AclKey{orgID}).
			AddAce(testAce(t, "alice", PermissionRead)).
			AddAce(testAce(t, "bob", PermissionWrite)).
			Build()
		require.NoError(t, err)
		assert.Len(t, acl.Aces(), 2)

		acl, err = NewAclBuilder().SetAclKey(ids.AclKey{orgID}).SetAces().Build()
		require.NoError(t, err)
		assert.Empty(t, acl.Aces())
	})

	t.Run("aces are required", func(t *testing.T) {
		_, err := NewAclBuilder().SetAclKey(ids.AclKey{orgID}).Build()
		assert.Equal(t, "validation_required_field", builder.FieldCode(err, "aces"))
	})

	t.Run("invalid nested ace", func(t *testing.T) {
		_, err := NewAclBuilder().
			SetAclKey(ids.AclKey{orgID}).
			Set("aces", []interface{}{
				map[string]interface{}{"principal": map[string]interface{}{"type": "USER", "id": "alice"}, "permissions": []interface{}{"READ"}},
				map[string]interface{}{"principal": map[string]interface{}{"type": "USER"}, "permissions": []interface{}{"READ"}},
			}).
			Build()
		var be *builder.Error
		require.ErrorAs(t, err, &be)
		assert.ErrorContains(t, be.FieldError("aces"), "element 1")
	})
}

func TestAclData(t *testing.T) {
	acl, err := NewAclBuilder().
		SetAclKey(ids.AclKey{orgID, roleID}).
		SetAces(testAce(t, "alice", PermissionOwner)).
		Build()
	require.NoError(t, err)

	data, err := NewAclDataBuilder().SetAcl(acl).SetAction(ActionAdd).Build()
	require.NoError(t, err)
	assert.Equal(t, ActionAdd, data.Action())
	assert.True(t, acl.Equal(data.Acl()))

	encoded, err := json.Marshal(data)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"action": "ADD",
		"acl": {
			"aclKey": ["550e8400-e29b-41d4-a716-446655440000", "6ba7b810-9dad-11d1-80b4-00c04fd430c8"],
			"aces": [{"principal": {"type": "USER", "id": "alice"}, "permissions": ["OWNER"]}]
		}
	}`, string(encoded))

	var decoded AclData
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.True(t, data.Equal(decoded))
	assert.NoError(t, decoded.Validate())

	_, err = NewAclDataBuilder().SetAcl(acl).Set("action", "explode").Build()
	var be *builder.Error
	require.ErrorAs(t, err, &be)
	assert.ErrorContains(t, be.FieldError("action"), "unknown action")

	action, err := ParseActionType("remove")
	require.NoError(t, err)
	assert.Equal(t, ActionRemove, action)
}
