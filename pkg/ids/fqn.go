package ids

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyNamespace is returned when a FullyQualifiedName has no namespace.
	ErrEmptyNamespace = errors.New("namespace cannot be empty")

	// ErrEmptyName is returned when a FullyQualifiedName has no name.
	ErrEmptyName = errors.New("name cannot be empty")
)

// FullyQualifiedName is the namespaced name of an EDM type,
// e.g. "general.person" for namespace "general" and name "person".
type FullyQualifiedName struct {
	namespace string
	name      string
}

// NewFQN creates a FullyQualifiedName. Both parts must be non-empty.
func NewFQN(namespace, name string) (FullyQualifiedName, error) {
	fqn := FullyQualifiedName{namespace: namespace, name: name}
	if err := fqn.Validate(); err != nil {
		return FullyQualifiedName{}, err
	}
	return fqn, nil
}

// MustFQN is NewFQN that panics on error.
func MustFQN(namespace, name string) FullyQualifiedName {
	fqn, err := NewFQN(namespace, name)
	if err != nil {
		panic(fmt.Sprintf("invalid FQN %q.%q: %v", namespace, name, err))
	}
	return fqn
}

// ParseFQN parses "namespace.name". The split happens on the last dot, so
// namespaces may themselves be dotted ("ol.v2.person").
func ParseFQN(s string) (FullyQualifiedName, error) {
	i := strings.LastIndex(s, ".")
	if i < 0 {
		return FullyQualifiedName{}, fmt.Errorf("invalid FQN %q: expected namespace.name", s)
	}
	fqn, err := NewFQN(s[:i], s[i+1:])
	if err != nil {
		return FullyQualifiedName{}, fmt.Errorf("invalid FQN %q: %w", s, err)
	}
	return fqn, nil
}

// Namespace returns the namespace part.
func (f FullyQualifiedName) Namespace() string {
	return f.namespace
}

// Name returns the name part.
func (f FullyQualifiedName) Name() string {
	return f.name
}

// IsZero reports whether neither part is set.
func (f FullyQualifiedName) IsZero() bool {
	return f.namespace == "" && f.name == ""
}

// Equal reports whether both parts match.
func (f FullyQualifiedName) Equal(other FullyQualifiedName) bool {
	return f.namespace == other.namespace && f.name == other.name
}

// String returns "namespace.name", or "" for the zero value.
func (f FullyQualifiedName) String() string {
	if f.IsZero() {
		return ""
	}
	return f.namespace + "." + f.name
}

// Validate implements validation.Validatable.
func (f FullyQualifiedName) Validate() error {
	if f.namespace == "" {
		return ErrEmptyNamespace
	}
	if f.name == "" {
		return ErrEmptyName
	}
	return nil
}

type fqnJSON struct {
	Namespace string `json:"namespace"`
	Name      string `json:"name"`
}

// MarshalJSON writes {"namespace": ..., "name": ...}.
func (f FullyQualifiedName) MarshalJSON() ([]byte, error) {
	if f.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(fqnJSON{Namespace: f.namespace, Name: f.name})
}

// UnmarshalJSON accepts both the object form and the "namespace.name" string form.
func (f *FullyQualifiedName) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = FullyQualifiedName{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		parsed, err := ParseFQN(s)
		if err != nil {
			return err
		}
		*f = parsed
		return nil
	}

	var obj fqnJSON
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("invalid FQN JSON: %w", err)
	}
	parsed, err := NewFQN(obj.Namespace, obj.Name)
	if err != nil {
		return fmt.Errorf("invalid FQN JSON: %w", err)
	}
	*f = parsed
	return nil
}
