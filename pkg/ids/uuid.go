package ids

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// UUID identifies a securable object on the platform.
//
// The zero value means "not assigned yet"; objects built client side before
// the platform has created them carry a zero UUID.
type UUID struct {
	value uuid.UUID
}

// NewUUID generates a new random UUID (v4).
func NewUUID() UUID {
	return UUID{value: uuid.New()}
}

// FromGoogleUUID wraps an already parsed github.com/google/uuid value.
func FromGoogleUUID(u uuid.UUID) UUID {
	return UUID{value: u}
}

// MustParseUUID parses a UUID from string, panicking on error.
// Intended for fixtures and constants.
func MustParseUUID(s string) UUID {
	u, err := ParseUUID(s)
	if err != nil {
		panic(fmt.Sprintf("invalid UUID: %s: %v", s, err))
	}
	return u
}

// ParseUUID parses a UUID from string. Hyphenless and uppercase input is
// accepted and normalized.
func ParseUUID(s string) (UUID, error) {
	if s == "" {
		return UUID{}, fmt.Errorf("UUID cannot be empty")
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{value: u}, nil
}

// String returns the lowercase hyphenated form.
func (u UUID) String() string {
	return u.value.String()
}

// Google returns the underlying github.com/google/uuid value.
func (u UUID) Google() uuid.UUID {
	return u.value
}

// IsZero reports whether u is the nil UUID.
func (u UUID) IsZero() bool {
	return u.value == uuid.Nil
}

// Equal reports whether two UUIDs are the same.
func (u UUID) Equal(other UUID) bool {
	return u.value == other.value
}

// MarshalJSON writes the zero UUID as null.
func (u UUID) MarshalJSON() ([]byte, error) {
	if u.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(u.String())
}

// UnmarshalJSON implements json.Unmarshaler. null and "" decode to zero.
func (u *UUID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*u = UUID{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("UUID must be a string: %w", err)
	}
	if s == "" {
		*u = UUID{}
		return nil
	}
	parsed, err := ParseUUID(s)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (u UUID) MarshalText() ([]byte, error) {
	if u.IsZero() {
		return []byte{}, nil
	}
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *UUID) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*u = UUID{}
		return nil
	}
	parsed, err := ParseUUID(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
