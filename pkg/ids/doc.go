// Package ids provides the identifier value types shared by every loom model.
//
// # Core Concepts
//
//  1. UUID: Identifier the platform assigns to securable objects (entity sets,
//     property types, organizations, roles). Wraps github.com/google/uuid so the
//     zero value is distinguishable and serializes as JSON null.
//
//  2. FullyQualifiedName: Namespaced name of an EDM type, rendered as
//     "namespace.name". Both parts must be non-empty.
//
//  3. AclKey: Ordered path of UUIDs addressing a securable object. A role in an
//     organization is addressed as [organizationID, roleID].
//
// # Usage Examples
//
//	fqn, err := ids.ParseFQN("general.person")
//	if err != nil {
//	    return err
//	}
//
//	orgID := ids.MustParseUUID("550e8400-e29b-41d4-a716-446655440000")
//	key := ids.AclKey{orgID, ids.NewUUID()}
//	fmt.Println(key) // "550e8400-.../..."
package ids
