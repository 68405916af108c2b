package models

import (
	"github.com/kryptnostic/loom-api-go/pkg/ids"
)

var (
	orgID  = ids.MustParseUUID("550e8400-e29b-41d4-a716-446655440000")
	roleID = ids.MustParseUUID("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	propA  = ids.MustParseUUID("6ba7b811-9dad-11d1-80b4-00c04fd430c8")
	propB  = ids.MustParseUUID("6ba7b812-9dad-11d1-80b4-00c04fd430c8")
)

func mustPrincipal(typ PrincipalType, id string) Principal {
	p, err := NewPrincipal(typ, id)
	if err != nil {
		panic(err)
	}
	return p
}
