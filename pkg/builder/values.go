package builder

import (
	"github.com/kryptnostic/loom-api-go/pkg/ids"
)

// Values is the validated output of Build. Getters return the zero value for
// fields that are unset or hold a different type.
type Values struct {
	kind string
	m    map[string]interface{}
}

// Kind returns the schema kind the values were built for.
func (v Values) Kind() string {
	return v.kind
}

// Has reports whether field name was set or defaulted.
func (v Values) Has(name string) bool {
	_, ok := v.m[name]
	return ok
}

// Get returns the raw coerced value of field name.
func (v Values) Get(name string) interface{} {
	return v.m[name]
}

func (v Values) String(name string) string {
	s, _ := v.m[name].(string)
	return s
}

func (v Values) Bool(name string) bool {
	b, _ := v.m[name].(bool)
	return b
}

func (v Values) UUID(name string) ids.UUID {
	u, _ := v.m[name].(ids.UUID)
	return u
}

func (v Values) FQN(name string) ids.FullyQualifiedName {
	f, _ := v.m[name].(ids.FullyQualifiedName)
	return f
}

func (v Values) AclKey(name string) ids.AclKey {
	k, _ := v.m[name].(ids.AclKey)
	return k.Clone()
}

// Strings returns a copy of a []string field.
func (v Values) Strings(name string) []string {
	s, ok := v.m[name].([]string)
	if !ok {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

// UUIDs returns a copy of a []ids.UUID field.
func (v Values) UUIDs(name string) []ids.UUID {
	s, ok := v.m[name].([]ids.UUID)
	if !ok {
		return nil
	}
	out := make([]ids.UUID, len(s))
	copy(out, s)
	return out
}

// FQNs returns a copy of a []ids.FullyQualifiedName field.
func (v Values) FQNs(name string) []ids.FullyQualifiedName {
	s, ok := v.m[name].([]ids.FullyQualifiedName)
	if !ok {
		return nil
	}
	out := make([]ids.FullyQualifiedName, len(s))
	copy(out, s)
	return out
}
