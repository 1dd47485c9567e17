package catalog

import (
	"bridge-meta/internal/model"
)

// TypeRecord is the override declared for one compiled type.
type TypeRecord struct {
	Type model.CompiledType
	// CustomName is the emitted display name, nil when not declared.
	CustomName *string
	// SingleConstructor consolidates source constructors into one.
	SingleConstructor bool
	// Source is the document that declared the record.
	Source string

	properties []*PropertyRecord
}

// PropertyRecord is the override declared for one compiled property.
type PropertyRecord struct {
	Property    model.CompiledProperty
	GetTemplate *string
	SetTemplate *string
	Source      string
}

// Properties returns the property records declared under this type, in
// declaration order.
func (r *TypeRecord) Properties() []*PropertyRecord {
	return r.properties
}

// FullName returns the full name of the overridden type.
func (r *TypeRecord) FullName() string {
	return r.Type.FullName()
}

// ID returns the stable identity of the overridden property.
func (r *PropertyRecord) ID() model.PropertyID {
	return model.IDOf(r.Property)
}

// Template returns the getter or setter template.
func (r *PropertyRecord) Template(getter bool) (string, bool) {
	t := r.SetTemplate
	if getter {
		t = r.GetTemplate
	}

	if t == nil {
		return "", false
	}

	return *t, true
}
