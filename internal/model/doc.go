// Package model defines the identities shared by the override layer and the
// two program models it correlates.
//
// The binary-metadata model (see package metadata) is authoritative for
// identity: a CompiledType is keyed by its fully qualified name and owns an
// ordered list of declared properties. The semantic model (see package
// analyze) describes the same program but its objects are never equal to
// binary ones, so every cross-reference goes through the stable key
// (declaring type full name, member name).
//
// # Tie-break policy
//
// Hidden or shadowed members may share a name inside one declaring type.
// FindProperty resolves such names to the first declared property. The loader
// and the catalog both go through FindProperty, so a property override always
// binds to the same member it is later queried with.
//
// # Generic arity
//
// Override documents spell generic arity with '^' (List^1) because the
// binary marker '`' is awkward in markup. NormalizeTypeName converts to the
// binary encoding before any lookup.
package model
