package builder

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/kryptnostic/loom-api-go/pkg/ids"
)

// ToString accepts string values and named string types via fmt.Stringer.
func ToString(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case *string:
		if v == nil {
			return nil, fmt.Errorf("must be a string")
		}
		return *v, nil
	case fmt.Stringer:
		return v.String(), nil
	default:
		return nil, fmt.Errorf("must be a string, got %T", value)
	}
}

// ToBool accepts bool values and strconv.ParseBool strings.
func ToBool(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("must be a boolean, got %q", v)
		}
		return b, nil
	default:
		return nil, fmt.Errorf("must be a boolean, got %T", value)
	}
}

// ToUUID accepts ids.UUID, uuid.UUID and UUID strings.
func ToUUID(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case ids.UUID:
		return v, nil
	case uuid.UUID:
		return ids.FromGoogleUUID(v), nil
	case string:
		u, err := ids.ParseUUID(v)
		if err != nil {
			return nil, err
		}
		return u, nil
	default:
		return nil, fmt.Errorf("must be a UUID, got %T", value)
	}
}

// ToUUIDs accepts []ids.UUID, []string and []interface{} of UUID-like values.
func ToUUIDs(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case []ids.UUID:
		out := make([]ids.UUID, len(v))
		copy(out, v)
		return out, nil
	case ids.AclKey:
		return []ids.UUID(v.Clone()), nil
	}

	items, err := toSlice(value)
	if err != nil {
		return nil, fmt.Errorf("must be a list of UUIDs: %w", err)
	}
	out := make([]ids.UUID, 0, len(items))
	for i, item := range items {
		u, err := ToUUID(item)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out = append(out, u.(ids.UUID))
	}
	return out, nil
}

// ToAclKey accepts anything ToUUIDs does plus the "/"-joined string form.
func ToAclKey(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case ids.AclKey:
		return v.Clone(), nil
	case string:
		return ids.ParseAclKey(v)
	}
	u, err := ToUUIDs(value)
	if err != nil {
		return nil, err
	}
	return ids.AclKey(u.([]ids.UUID)), nil
}

// ToStrings accepts []string and []interface{} of strings.
func ToStrings(value interface{}) (interface{}, error) {
	if v, ok := value.([]string); ok {
		out := make([]string, len(v))
		copy(out, v)
		return out, nil
	}

	items, err := toSlice(value)
	if err != nil {
		return nil, fmt.Errorf("must be a list of strings: %w", err)
	}
	out := make([]string, 0, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("element %d: must be a string, got %T", i, item)
		}
		out = append(out, s)
	}
	return out, nil
}

// ToFQN accepts ids.FullyQualifiedName, "namespace.name" strings and maps
// with namespace and name keys.
func ToFQN(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case ids.FullyQualifiedName:
		return v, nil
	case string:
		return ids.ParseFQN(v)
	case map[string]interface{}:
		ns, _ := v["namespace"].(string)
		name, _ := v["name"].(string)
		return ids.NewFQN(ns, name)
	case map[string]string:
		return ids.NewFQN(v["namespace"], v["name"])
	default:
		return nil, fmt.Errorf("must be a fully qualified name, got %T", value)
	}
}

// ToFQNs accepts a list of anything ToFQN does.
func ToFQNs(value interface{}) (interface{}, error) {
	if v, ok := value.([]ids.FullyQualifiedName); ok {
		out := make([]ids.FullyQualifiedName, len(v))
		copy(out, v)
		return out, nil
	}
	if v, ok := value.([]string); ok {
		items := make([]interface{}, len(v))
		for i := range v {
			items[i] = v[i]
		}
		value = items
	}

	items, err := toSlice(value)
	if err != nil {
		return nil, fmt.Errorf("must be a list of fully qualified names: %w", err)
	}
	out := make([]ids.FullyQualifiedName, 0, len(items))
	for i, item := range items {
		f, err := ToFQN(item)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out = append(out, f.(ids.FullyQualifiedName))
	}
	return out, nil
}

func toSlice(value interface{}) ([]interface{}, error) {
	switch v := value.(type) {
	case []interface{}:
		return v, nil
	case []string:
		out := make([]interface{}, len(v))
		for i := range v {
			out[i] = v[i]
		}
		return out, nil
	default:
		return nil, fmt.Errorf("got %T", value)
	}
}
