package analyze

import (
	"fmt"
	"go/types"

	"bridge-meta/internal/model"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "bridge-meta/examples/models"
	Name    string // e.g., "Widget"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// TypeKind represents the kind of a type.
type TypeKind int

const (
	TypeKindUnknown   TypeKind = iota
	TypeKindStruct             // struct type
	TypeKindInterface          // interface type
	TypeKindEnum               // named integer type with constants
	TypeKindBasic              // other named basic type
	TypeKindOther              // named slice, map, func, ...
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindStruct:
		return "struct"
	case TypeKindInterface:
		return "interface"
	case TypeKindEnum:
		return "enum"
	case TypeKindBasic:
		return "basic"
	case TypeKindOther:
		return "other"
	default:
		return "unknown"
	}
}

// TypeInfo describes a named type in the semantic model.
type TypeInfo struct {
	ID         TypeID         // Unique identifier
	Kind       TypeKind       // Kind of type
	TypeParams int            // Number of type parameters (generic arity)
	Properties []PropertyInfo // For structs, the exported fields in order
	GoType     types.Type     // The original go/types.Type
}

// BinaryName returns the fully qualified name in the binary encoding.
func (t *TypeInfo) BinaryName() string {
	return BinaryName(t.ID, t.TypeParams)
}

// Property returns the first property named name.
func (t *TypeInfo) Property(name string) (*PropertyInfo, bool) {
	for i := range t.Properties {
		if t.Properties[i].PropName == name {
			return &t.Properties[i], true
		}
	}

	return nil, false
}

// BinaryName renders id with its arity marker, e.g. "pkg.Box`1".
func BinaryName(id TypeID, arity int) string {
	name := id.Name
	if arity > 0 {
		name = fmt.Sprintf("%s%c%d", name, model.BinaryArityMarker, arity)
	}

	return model.TypeKey{Namespace: id.PkgPath, Name: name}.FullName()
}

// PropertyInfo describes a property (exported struct field).
type PropertyInfo struct {
	PropName  string // Go field name
	Owner     TypeID // Declaring type
	OwnerName string // Declaring type in the binary encoding
	TypeStr   string // Field type as written by go/types
	Embedded  bool   // Whether the field is embedded (anonymous)
	Index     int    // Field index in the struct
}

var _ model.SemanticProperty = (*PropertyInfo)(nil)

// Name implements model.SemanticProperty.
func (p *PropertyInfo) Name() string {
	return p.PropName
}

// DeclaringTypeName implements model.SemanticProperty.
func (p *PropertyInfo) DeclaringTypeName() string {
	return p.OwnerName
}

// TypeGraph holds all analyzed types from loaded packages.
type TypeGraph struct {
	// Types maps TypeID to TypeInfo for all exported named types.
	Types map[TypeID]*TypeInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Types:    make(map[TypeID]*TypeInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetType returns the TypeInfo for a given TypeID, or nil if not found.
func (g *TypeGraph) GetType(id TypeID) *TypeInfo {
	return g.Types[id]
}

// Property returns the property of a type, or false if either is missing.
func (g *TypeGraph) Property(id TypeID, name string) (*PropertyInfo, bool) {
	t := g.GetType(id)
	if t == nil {
		return nil, false
	}

	return t.Property(name)
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string   // Import path
	Name  string   // Package name
	Types []TypeID // Exported named types, sorted by name
}
