package emit

import (
	"slices"
	"strings"

	"bridge-meta/internal/model"
)

// Method is a method declared on the type being emitted.
type Method struct {
	Name          string
	IsPrivate     bool
	IsConstructor bool
}

// Context is the emission state of one translation unit.
type Context struct {
	current model.CompiledType

	methods      []Method
	otherMethods []Method

	namespaces  map[string]struct{}
	enumExports map[string]model.CompiledType
}

// NewContext returns an idle context.
func NewContext() *Context {
	return &Context{
		namespaces:  make(map[string]struct{}),
		enumExports: make(map[string]model.CompiledType),
	}
}

// ForType returns a fresh context already scoped to t.
func ForType(t model.CompiledType) *Context {
	c := NewContext()
	c.ResetForType(t)

	return c
}

// ResetForType makes t the current type and clears both method trackers.
// A nil t returns the context to idle. Enum exports and active namespaces
// are kept.
func (c *Context) ResetForType(t model.CompiledType) {
	c.current = t
	c.methods = nil
	c.otherMethods = nil
}

// CurrentType returns the type being emitted. It is false before the first
// ResetForType.
func (c *Context) CurrentType() (model.CompiledType, bool) {
	return c.current, c.current != nil
}

// RegisterMethod records a method declared on the current type. Duplicates
// are kept; callers decide what a repeated name means.
func (c *Context) RegisterMethod(name string, isPrivate, isConstructor bool) {
	c.methods = append(c.methods, Method{Name: name, IsPrivate: isPrivate, IsConstructor: isConstructor})
}

// Methods returns the declared methods in registration order.
func (c *Context) Methods() []Method {
	return slices.Clone(c.methods)
}

// RegisterOtherMethod records a method in the secondary visibility scope
// (members emitted outside the type body, such as extension helpers).
func (c *Context) RegisterOtherMethod(name string, isPrivate, isConstructor bool) {
	c.otherMethods = append(c.otherMethods, Method{Name: name, IsPrivate: isPrivate, IsConstructor: isConstructor})
}

// OtherMethods returns the secondary-scope methods in registration order.
func (c *Context) OtherMethods() []Method {
	return slices.Clone(c.otherMethods)
}

// HasMethod reports whether name was registered exactly in the primary scope.
func (c *Context) HasMethod(name string) bool {
	return slices.ContainsFunc(c.methods, func(m Method) bool { return m.Name == name })
}

// CollidesFold returns the registered methods whose names equal name ignoring
// case but differ in spelling. A non-empty result means the target language
// cannot tell them apart.
func (c *Context) CollidesFold(name string) []Method {
	var out []Method

	for _, m := range c.methods {
		if m.Name != name && strings.EqualFold(m.Name, name) {
			out = append(out, m)
		}
	}

	return out
}

// ConstructorClash reports whether name is used both by a constructor and by
// a regular method of the current type.
func (c *Context) ConstructorClash(name string) bool {
	var ctor, regular bool

	for _, m := range c.methods {
		if m.Name != name {
			continue
		}

		if m.IsConstructor {
			ctor = true
		} else {
			regular = true
		}
	}

	return ctor && regular
}

// NeedsRename reports whether a method called name must be disambiguated:
// it clashes by case with another method, shares its name with a
// constructor, or is declared more than once.
func (c *Context) NeedsRename(name string) bool {
	if len(c.CollidesFold(name)) > 0 || c.ConstructorClash(name) {
		return true
	}

	n := 0

	for _, m := range c.methods {
		if m.Name == name {
			n++
		}
	}

	return n > 1
}

// RegisterEnumExport marks t for a flattened constant export. Repeated calls
// are no-ops.
func (c *Context) RegisterEnumExport(t model.CompiledType) {
	if t == nil {
		return
	}

	c.enumExports[t.FullName()] = t
}

// IsEnumExport reports whether t was registered.
func (c *Context) IsEnumExport(t model.CompiledType) bool {
	if t == nil {
		return false
	}

	_, ok := c.enumExports[t.FullName()]

	return ok
}

// EnumExports returns the registered enum types sorted by full name.
func (c *Context) EnumExports() []model.CompiledType {
	out := make([]model.CompiledType, 0, len(c.enumExports))
	for _, t := range c.enumExports {
		out = append(out, t)
	}

	slices.SortFunc(out, func(a, b model.CompiledType) int {
		return strings.Compare(a.FullName(), b.FullName())
	})

	return out
}

// BeginUnit starts a new translation unit and clears the active namespaces.
func (c *Context) BeginUnit() {
	clear(c.namespaces)
}

// AddActiveNamespace brings name into scope for unqualified resolution.
func (c *Context) AddActiveNamespace(name string) {
	c.namespaces[name] = struct{}{}
}

// IsNamespaceActive reports whether name is in scope.
func (c *Context) IsNamespaceActive(name string) bool {
	_, ok := c.namespaces[name]
	return ok
}

// ActiveNamespaces returns the namespaces in scope, sorted.
func (c *Context) ActiveNamespaces() []string {
	out := make([]string, 0, len(c.namespaces))
	for name := range c.namespaces {
		out = append(out, name)
	}

	slices.Sort(out)

	return out
}
