package ids

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyAclKey is returned when an AclKey has no elements.
var ErrEmptyAclKey = errors.New("acl key cannot be empty")

// AclKey is the ordered path of UUIDs addressing a securable object.
type AclKey []UUID

// ParseAclKey parses the "/"-joined form produced by String.
func ParseAclKey(s string) (AclKey, error) {
	if s == "" {
		return nil, ErrEmptyAclKey
	}
	parts := strings.Split(s, "/")
	key := make(AclKey, 0, len(parts))
	for i, part := range parts {
		u, err := ParseUUID(part)
		if err != nil {
			return nil, fmt.Errorf("invalid acl key element %d: %w", i, err)
		}
		key = append(key, u)
	}
	return key, nil
}

// String joins the UUIDs with "/".
func (k AclKey) String() string {
	parts := make([]string, len(k))
	for i, u := range k {
		parts[i] = u.String()
	}
	return strings.Join(parts, "/")
}

// Equal is order-sensitive.
func (k AclKey) Equal(other AclKey) bool {
	if len(k) != len(other) {
		return false
	}
	for i := range k {
		if !k[i].Equal(other[i]) {
			return false
		}
	}
	return true
}

// Clone returns a copy that does not share the backing array.
func (k AclKey) Clone() AclKey {
	if k == nil {
		return nil
	}
	out := make(AclKey, len(k))
	copy(out, k)
	return out
}

// Validate implements validation.Validatable.
func (k AclKey) Validate() error {
	if len(k) == 0 {
		return ErrEmptyAclKey
	}
	for i, u := range k {
		if u.IsZero() {
			return fmt.Errorf("acl key element %d is the nil UUID", i)
		}
	}
	return nil
}
