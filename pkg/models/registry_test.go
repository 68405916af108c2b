package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKinds(t *testing.T) {
	assert.Equal(t, []string{
		KindAccessCheck,
		KindAce,
		KindAcl,
		KindAclData,
		KindEntitySet,
		KindEntityType,
		KindFQN,
		KindPrincipal,
		KindPropertyType,
		KindRole,
	}, Kinds())
}

func TestNormalizeKind(t *testing.T) {
	for _, in := range []string{"AccessCheck", "accessCheck", "access_check", "access-check"} {
		assert.Equal(t, KindAccessCheck, NormalizeKind(in), in)
	}
	assert.Equal(t, KindAclData, NormalizeKind("AclData"))
}

func TestSchema(t *testing.T) {
	s, ok := Schema("Role")
	require.True(t, ok)
	assert.Equal(t, KindRole, s.Kind())

	_, ok = Schema("spaceship")
	assert.False(t, ok)
}

func TestBuild(t *testing.T) {
	t.Run("role from snake_case map", func(t *testing.T) {
		m, err := Build("role", map[string]interface{}{
			"organization_id": orgID.String(),
			"title":           "Analysts",
			"principal":       map[string]interface{}{"type": "ROLE", "id": "analysts"},
		})
		require.NoError(t, err)
		role, ok := m.(Role)
		require.True(t, ok)
		assert.Equal(t, "Analysts", role.Title())
		assert.Equal(t, KindRole, m.Kind())
	})

	t.Run("fqn", func(t *testing.T) {
		m, err := Build("FQN", map[string]interface{}{"namespace": "general", "name": "person"})
		require.NoError(t, err)
		data, err := json.Marshal(m)
		require.NoError(t, err)
		assert.JSONEq(t, `{"namespace":"general","name":"person"}`, string(data))

		_, err = Build("fqn", map[string]interface{}{"namespace": "general", "name": ""})
		assert.Error(t, err)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := Build("spaceship", nil)
		assert.ErrorContains(t, err, "unknown kind")
	})

	t.Run("validation failure", func(t *testing.T) {
		_, err := Build("access_check", map[string]interface{}{"permissions": []interface{}{"READ"}})
		assert.ErrorContains(t, err, "invalid access_check")
	})
}
