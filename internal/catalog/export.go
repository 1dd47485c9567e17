package catalog

import (
	"slices"
	"strings"

	"bridge-meta/internal/model"
	"bridge-meta/internal/overrides"
)

// Export renders the catalog and remapper as a single override document.
// Loading the result against the same program reproduces the same records.
func Export(c *Catalog, r *Remapper) *overrides.Document {
	byNS := map[string]*overrides.Namespace{}

	ns := func(name string) *overrides.Namespace {
		if n, ok := byNS[name]; ok {
			return n
		}

		n := &overrides.Namespace{Name: name}
		byNS[name] = n

		return n
	}

	for _, rm := range r.Entries() {
		target := rm.Target
		ns(rm.Source).DisplayName = &target
	}

	for _, rec := range c.Types() {
		key := model.SplitFullName(rec.FullName())
		cls := overrides.Class{
			Name:              model.DocumentTypeName(key.Name),
			SingleConstructor: rec.SingleConstructor,
		}

		if rec.CustomName != nil {
			name := *rec.CustomName
			cls.DisplayName = &name
		}

		for _, p := range rec.Properties() {
			prop := overrides.Property{Name: p.Property.Name()}
			if p.GetTemplate != nil {
				prop.Get = overrides.NewTemplate(*p.GetTemplate)
			}

			if p.SetTemplate != nil {
				prop.Set = overrides.NewTemplate(*p.SetTemplate)
			}

			cls.Properties = append(cls.Properties, prop)
		}

		n := ns(key.Namespace)
		n.Classes = append(n.Classes, cls)
	}

	doc := &overrides.Document{Version: "1"}
	for _, n := range byNS {
		doc.Namespaces = append(doc.Namespaces, *n)
	}

	slices.SortFunc(doc.Namespaces, func(a, b overrides.Namespace) int {
		return strings.Compare(a.Name, b.Name)
	})

	return doc
}
