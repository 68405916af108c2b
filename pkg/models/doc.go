// Package models contains the immutable value objects a loom client sends to
// the platform: access control objects (Principal, Role, AccessCheck, Ace,
// Acl, AclData) and entity data model definitions (PropertyType, EntityType,
// EntitySet).
//
// Every model is produced by a builder backed by a builder.Schema field table.
// Typed setters cover programmatic use; the generic Set method accepts loosely
// typed values (strings, lists, maps) and coerces them, which is what the
// definitions loader relies on.
//
//	role, err := models.NewRoleBuilder().
//	    SetOrganizationID(orgID).
//	    SetTitle("Analysts").
//	    SetPrincipal(principal).
//	    Build()
//
// Unmarshalling a model from JSON runs the same validation as Build.
package models
