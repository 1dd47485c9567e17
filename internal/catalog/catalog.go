package catalog

import (
	"errors"
	"slices"
	"strings"

	"bridge-meta/internal/diagnostic"
	"bridge-meta/internal/model"
)

// ErrFrozen is returned by writes after Freeze.
var ErrFrozen = errors.New("catalog is frozen")

// Catalog is the authoritative store of type and property overrides.
type Catalog struct {
	program    model.Program
	types      map[string]*TypeRecord
	properties map[model.PropertyID]*PropertyRecord
	frozen     bool
}

// New creates an empty catalog bound to the program used for semantic lookups.
func New(program model.Program) *Catalog {
	return &Catalog{
		program:    program,
		types:      make(map[string]*TypeRecord),
		properties: make(map[model.PropertyID]*PropertyRecord),
	}
}

// AddType registers a type override.
func (c *Catalog) AddType(rec *TypeRecord) error {
	if c.frozen {
		return ErrFrozen
	}

	name := rec.Type.FullName()
	if _, ok := c.types[name]; ok {
		return diagnostic.Duplicate(name, "type override")
	}

	c.types[name] = rec

	return nil
}

// AddProperty registers a property override under an already added type.
func (c *Catalog) AddProperty(rec *PropertyRecord) error {
	if c.frozen {
		return ErrFrozen
	}

	id := rec.ID()
	if _, ok := c.properties[id]; ok {
		return diagnostic.Duplicate(id.String(), "property override")
	}

	c.properties[id] = rec

	if owner, ok := c.types[id.Type]; ok {
		owner.properties = append(owner.properties, rec)
	}

	return nil
}

// HasType reports whether a type override exists for the full name.
func (c *Catalog) HasType(fullName string) bool {
	_, ok := c.types[fullName]
	return ok
}

// HasProperty reports whether a property override exists for id.
func (c *Catalog) HasProperty(id model.PropertyID) bool {
	_, ok := c.properties[id]
	return ok
}

// Freeze ends the load phase.
func (c *Catalog) Freeze() {
	c.frozen = true
}

// Frozen reports whether Freeze has been called.
func (c *Catalog) Frozen() bool {
	return c.frozen
}

// Lookup returns the type record, if any.
func (c *Catalog) Lookup(t model.CompiledType) (*TypeRecord, bool) {
	if t == nil {
		return nil, false
	}

	rec, ok := c.types[t.FullName()]

	return rec, ok
}

// CustomName returns the declared display name of t.
func (c *Catalog) CustomName(t model.CompiledType) (string, bool) {
	rec, ok := c.Lookup(t)
	if !ok || rec.CustomName == nil {
		return "", false
	}

	return *rec.CustomName, true
}

// IsSingleConstructor reports whether t consolidates its constructors.
// It is false when no record exists.
func (c *Catalog) IsSingleConstructor(t model.CompiledType) bool {
	rec, ok := c.Lookup(t)
	return ok && rec.SingleConstructor
}

// PropertyTemplate returns the inline accessor template for a semantic
// property. The property is first correlated to the binary model through
// its declaring type and name.
func (c *Catalog) PropertyTemplate(prop model.SemanticProperty, getter bool) (string, bool) {
	cp, ok := model.Correlate(c.program, prop)
	if !ok {
		return "", false
	}

	return c.Template(cp, getter)
}

// Template returns the inline accessor template for a compiled property.
func (c *Catalog) Template(p model.CompiledProperty, getter bool) (string, bool) {
	if p == nil {
		return "", false
	}

	rec, ok := c.properties[model.IDOf(p)]
	if !ok {
		return "", false
	}

	return rec.Template(getter)
}

// Types returns all type records sorted by full name.
func (c *Catalog) Types() []*TypeRecord {
	out := make([]*TypeRecord, 0, len(c.types))
	for _, rec := range c.types {
		out = append(out, rec)
	}

	slices.SortFunc(out, func(a, b *TypeRecord) int {
		return strings.Compare(a.FullName(), b.FullName())
	})

	return out
}

// Len returns the number of type and property records.
func (c *Catalog) Len() (types, properties int) {
	return len(c.types), len(c.properties)
}
