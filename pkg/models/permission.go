package models

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Permission is a right a principal can hold on a securable object.
type Permission string

const (
	PermissionDiscover    Permission = "DISCOVER"
	PermissionLink        Permission = "LINK"
	PermissionMaterialize Permission = "MATERIALIZE"
	PermissionOwner       Permission = "OWNER"
	PermissionRead        Permission = "READ"
	PermissionWrite       Permission = "WRITE"
)

// permissionOrder is the canonical order used when rendering sets.
var permissionOrder = map[Permission]int{
	PermissionDiscover:    0,
	PermissionLink:        1,
	PermissionMaterialize: 2,
	PermissionOwner:       3,
	PermissionRead:        4,
	PermissionWrite:       5,
}

// Permissions returns every known permission in canonical order.
func Permissions() []Permission {
	return []Permission{
		PermissionDiscover,
		PermissionLink,
		PermissionMaterialize,
		PermissionOwner,
		PermissionRead,
		PermissionWrite,
	}
}

// ParsePermission parses a permission name case-insensitively.
func ParsePermission(s string) (Permission, error) {
	p := Permission(strings.ToUpper(strings.TrimSpace(s)))
	if err := p.Validate(); err != nil {
		return "", err
	}
	return p, nil
}

// Validate implements validation.Validatable.
func (p Permission) Validate() error {
	if _, ok := permissionOrder[p]; !ok {
		return fmt.Errorf("unknown permission %q", string(p))
	}
	return nil
}

func (p Permission) String() string {
	return string(p)
}

// PermissionSet is an unordered, deduplicated set of permissions.
// The zero value is an empty set.
type PermissionSet struct {
	perms []Permission // sorted canonically, no duplicates
}

// NewPermissionSet builds a set from perms, dropping duplicates. Unknown
// permissions are an error.
func NewPermissionSet(perms ...Permission) (PermissionSet, error) {
	seen := make(map[Permission]struct{}, len(perms))
	out := make([]Permission, 0, len(perms))
	for _, p := range perms {
		if err := p.Validate(); err != nil {
			return PermissionSet{}, err
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return permissionOrder[out[i]] < permissionOrder[out[j]]
	})
	return PermissionSet{perms: out}, nil
}

// MustPermissionSet is NewPermissionSet that panics on error.
func MustPermissionSet(perms ...Permission) PermissionSet {
	s, err := NewPermissionSet(perms...)
	if err != nil {
		panic(err)
	}
	return s
}

// Len returns the number of distinct permissions.
func (s PermissionSet) Len() int {
	return len(s.perms)
}

// IsZero reports whether the set is empty.
func (s PermissionSet) IsZero() bool {
	return len(s.perms) == 0
}

// Contains reports whether p is in the set.
func (s PermissionSet) Contains(p Permission) bool {
	for _, have := range s.perms {
		if have == p {
			return true
		}
	}
	return false
}

// Slice returns the permissions in canonical order.
func (s PermissionSet) Slice() []Permission {
	out := make([]Permission, len(s.perms))
	copy(out, s.perms)
	return out
}

// Equal ignores the order permissions were added in.
func (s PermissionSet) Equal(other PermissionSet) bool {
	if len(s.perms) != len(other.perms) {
		return false
	}
	for i := range s.perms {
		if s.perms[i] != other.perms[i] {
			return false
		}
	}
	return true
}

// Validate implements validation.Validatable; sets must not be empty.
func (s PermissionSet) Validate() error {
	if len(s.perms) == 0 {
		return fmt.Errorf("at least one permission is required")
	}
	return nil
}

func (s PermissionSet) String() string {
	parts := make([]string, len(s.perms))
	for i, p := range s.perms {
		parts[i] = string(p)
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// MarshalJSON writes the set as an array in canonical order.
func (s PermissionSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Slice())
}

// UnmarshalJSON accepts an array of permission names in any case and order.
func (s *PermissionSet) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return fmt.Errorf("permissions must be a list of strings: %w", err)
	}
	set, err := coercePermissionSet(names)
	if err != nil {
		return err
	}
	*s = set.(PermissionSet)
	return nil
}

// coercePermissionSet accepts PermissionSet, []Permission, []string,
// []interface{} of strings and a single permission name.
func coercePermissionSet(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case PermissionSet:
		return v, nil
	case []Permission:
		return NewPermissionSet(v...)
	case Permission:
		return NewPermissionSet(v)
	case string:
		p, err := ParsePermission(v)
		if err != nil {
			return nil, err
		}
		return NewPermissionSet(p)
	case []string:
		perms := make([]Permission, 0, len(v))
		for _, name := range v {
			p, err := ParsePermission(name)
			if err != nil {
				return nil, err
			}
			perms = append(perms, p)
		}
		return NewPermissionSet(perms...)
	case []interface{}:
		perms := make([]Permission, 0, len(v))
		for i, item := range v {
			name, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("element %d: must be a string, got %T", i, item)
			}
			p, err := ParsePermission(name)
			if err != nil {
				return nil, err
			}
			perms = append(perms, p)
		}
		return NewPermissionSet(perms...)
	default:
		return nil, fmt.Errorf("must be a list of permissions, got %T", value)
	}
}
