package model

import "strings"

const (
	// DocumentArityMarker is the generic-arity marker accepted in override documents.
	DocumentArityMarker = '^'
	// BinaryArityMarker is the generic-arity marker used by the binary model.
	BinaryArityMarker = '`'
)

// CompiledType is a type as it appears in the binary-metadata model.
type CompiledType interface {
	// FullName is the fully qualified, arity-normalized name (e.g. "App.Models.List`1").
	FullName() string
	// Properties returns the declared properties in declaration order.
	Properties() []CompiledProperty
}

// CompiledProperty is a property declared on a CompiledType.
type CompiledProperty interface {
	Name() string
	DeclaringType() CompiledType
}

// Program is the lookup capability into the compiled program model.
type Program interface {
	// ResolveType returns the type registered under the fully qualified key.
	ResolveType(fullName string) (CompiledType, bool)
}

// TypeLister is implemented by programs that can enumerate their types.
// The loader uses it to suggest a close name for an unresolved type.
type TypeLister interface {
	TypeNames() []string
}

// SemanticProperty is a property reference produced by the semantic model.
type SemanticProperty interface {
	Name() string
	// DeclaringTypeName is the fully qualified name of the declaring type,
	// already in the binary encoding.
	DeclaringTypeName() string
}

// TypeKey is a namespace-qualified type name.
type TypeKey struct {
	Namespace string
	Name      string
}

// FullName joins namespace and name and normalizes the arity marker.
func (k TypeKey) FullName() string {
	if k.Namespace == "" {
		return NormalizeTypeName(k.Name)
	}

	return NormalizeTypeName(k.Namespace + "." + k.Name)
}

// String returns the fully qualified name.
func (k TypeKey) String() string {
	return k.FullName()
}

// NormalizeTypeName rewrites document arity markers into the binary encoding.
func NormalizeTypeName(name string) string {
	return strings.ReplaceAll(name, string(DocumentArityMarker), string(BinaryArityMarker))
}

// SplitFullName splits "A.B.C" into namespace "A.B" and name "C".
// A name without a dot has an empty namespace.
func SplitFullName(fullName string) TypeKey {
	i := strings.LastIndex(fullName, ".")
	if i < 0 {
		return TypeKey{Name: fullName}
	}

	return TypeKey{Namespace: fullName[:i], Name: fullName[i+1:]}
}

// PropertyID is the stable identity of a property across both models.
type PropertyID struct {
	Type string // declaring type full name
	Name string
}

// String returns "Type.Name".
func (p PropertyID) String() string {
	return p.Type + "." + p.Name
}

// IDOf returns the stable identity of a compiled property.
func IDOf(p CompiledProperty) PropertyID {
	return PropertyID{Type: p.DeclaringType().FullName(), Name: p.Name()}
}

// DocumentTypeName rewrites binary arity markers into the document encoding.
func DocumentTypeName(name string) string {
	return strings.ReplaceAll(name, string(BinaryArityMarker), string(DocumentArityMarker))
}
