package metadata

import (
	"fmt"

	"bridge-meta/internal/model"
)

// Image is the binary-metadata model of one compiled program.
type Image struct {
	Assembly string    `json:"assembly" cbor:"assembly" msgpack:"assembly"`
	Types    []TypeDef `json:"types" cbor:"types" msgpack:"types"`

	index map[string]*Type
}

// TypeDef is the serialized form of a compiled type.
type TypeDef struct {
	Namespace  string        `json:"namespace" cbor:"namespace" msgpack:"namespace"`
	Name       string        `json:"name" cbor:"name" msgpack:"name"`
	Kind       Kind          `json:"kind,omitempty" cbor:"kind,omitempty" msgpack:"kind,omitempty"`
	Properties []PropertyDef `json:"properties,omitempty" cbor:"properties,omitempty" msgpack:"properties,omitempty"`
}

// PropertyDef is the serialized form of a declared property.
type PropertyDef struct {
	Name      string `json:"name" cbor:"name" msgpack:"name"`
	HasGetter bool   `json:"get,omitempty" cbor:"get,omitempty" msgpack:"get,omitempty"`
	HasSetter bool   `json:"set,omitempty" cbor:"set,omitempty" msgpack:"set,omitempty"`
}

// Kind is the declared kind of a compiled type.
type Kind string

const (
	KindClass     Kind = "class"
	KindStruct    Kind = "struct"
	KindInterface Kind = "interface"
	KindEnum      Kind = "enum"
)

// Type is an indexed compiled type. It implements model.CompiledType.
type Type struct {
	def      TypeDef
	fullName string
	props    []model.CompiledProperty
}

// Property is an indexed declared property. It implements model.CompiledProperty.
type Property struct {
	def   PropertyDef
	owner *Type
}

var (
	_ model.CompiledType     = (*Type)(nil)
	_ model.CompiledProperty = (*Property)(nil)
	_ model.Program          = (*Image)(nil)
	_ model.TypeLister       = (*Image)(nil)
)

// NewImage builds an indexed image from type definitions.
func NewImage(assembly string, defs ...TypeDef) (*Image, error) {
	img := &Image{Assembly: assembly, Types: defs}
	if err := img.Index(); err != nil {
		return nil, err
	}

	return img, nil
}

// Index (re)builds the lookup table. Decoders call it after unmarshaling.
// Two types with the same fully qualified name are rejected.
func (img *Image) Index() error {
	index := make(map[string]*Type, len(img.Types))

	for i := range img.Types {
		def := img.Types[i]
		if def.Name == "" {
			return fmt.Errorf("type #%d in image %q has no name", i, img.Assembly)
		}

		t := &Type{
			def:      def,
			fullName: model.TypeKey{Namespace: def.Namespace, Name: def.Name}.FullName(),
		}

		if _, ok := index[t.fullName]; ok {
			return fmt.Errorf("duplicate type %s in image %q", t.fullName, img.Assembly)
		}

		t.props = make([]model.CompiledProperty, len(def.Properties))
		for j := range def.Properties {
			t.props[j] = &Property{def: def.Properties[j], owner: t}
		}

		index[t.fullName] = t
	}

	img.index = index

	return nil
}

// ResolveType implements model.Program.
func (img *Image) ResolveType(fullName string) (model.CompiledType, bool) {
	t := img.Lookup(fullName)
	if t == nil {
		return nil, false
	}

	return t, true
}

// Lookup returns the indexed type or nil.
func (img *Image) Lookup(fullName string) *Type {
	if img == nil || img.index == nil {
		return nil
	}

	return img.index[model.NormalizeTypeName(fullName)]
}

// TypeNames returns the full names of all indexed types in declaration order.
func (img *Image) TypeNames() []string {
	if img == nil || img.index == nil {
		return nil
	}

	names := make([]string, 0, len(img.Types))
	for i := range img.Types {
		def := &img.Types[i]
		names = append(names, model.TypeKey{Namespace: def.Namespace, Name: def.Name}.FullName())
	}

	return names
}

// Len returns the number of types in the image.
func (img *Image) Len() int {
	return len(img.Types)
}

// FullName implements model.CompiledType.
func (t *Type) FullName() string { return t.fullName }

// Properties implements model.CompiledType.
func (t *Type) Properties() []model.CompiledProperty { return t.props }

// Namespace returns the declared namespace.
func (t *Type) Namespace() string { return t.def.Namespace }

// Kind returns the declared kind.
func (t *Type) Kind() Kind { return t.def.Kind }

// IsEnum reports whether the type is an enum.
func (t *Type) IsEnum() bool { return t.def.Kind == KindEnum }

// String returns the full name.
func (t *Type) String() string { return t.fullName }

// Name implements model.CompiledProperty.
func (p *Property) Name() string { return p.def.Name }

// DeclaringType implements model.CompiledProperty.
func (p *Property) DeclaringType() model.CompiledType { return p.owner }

// HasGetter reports whether the property declares a getter.
func (p *Property) HasGetter() bool { return p.def.HasGetter }

// HasSetter reports whether the property declares a setter.
func (p *Property) HasSetter() bool { return p.def.HasSetter }

// String returns "Type.Name".
func (p *Property) String() string { return p.owner.fullName + "." + p.def.Name }
