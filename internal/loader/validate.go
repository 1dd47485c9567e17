package loader

import (
	"bridge-meta/internal/catalog"
	"bridge-meta/internal/diagnostic"
	"bridge-meta/internal/model"
	"bridge-meta/internal/overrides"
	"bridge-meta/internal/suggest"
)

// report receives a validation error and returns whether to keep going.
type report func(*diagnostic.Error) bool

// stage holds records validated but not yet committed.
type stage struct {
	remaps     []catalog.Remap
	types      []*catalog.TypeRecord
	properties []*catalog.PropertyRecord

	namespaces map[string]struct{}
	typeNames  map[string]struct{}
	propIDs    map[model.PropertyID]struct{}
}

func newStage() *stage {
	return &stage{
		namespaces: make(map[string]struct{}),
		typeNames:  make(map[string]struct{}),
		propIDs:    make(map[model.PropertyID]struct{}),
	}
}

// validate walks one document. It returns false when report asked to stop.
func (l *Loader) validate(doc *overrides.Document, st *stage, rep report) bool {
	for i := range doc.Namespaces {
		if !l.validateNamespace(doc, &doc.Namespaces[i], st, rep) {
			return false
		}
	}

	return true
}

func (l *Loader) validateNamespace(doc *overrides.Document, ns *overrides.Namespace, st *stage, rep report) bool {
	if ns.Name == "" {
		// Without a name nothing below can be keyed.
		return rep(diagnostic.Configuration("", "namespace's name is empty"))
	}

	if target := nonEmpty(ns.DisplayName); target != nil {
		_, staged := st.namespaces[ns.Name]
		if staged || l.remapper.Has(ns.Name) {
			if !rep(diagnostic.Duplicate(ns.Name, "namespace map")) {
				return false
			}
		} else {
			st.namespaces[ns.Name] = struct{}{}
			st.remaps = append(st.remaps, catalog.Remap{Source: ns.Name, Target: *target})
			l.logger.Debug("namespace remap", "source", doc.Source, "namespace", ns.Name, "target", *target)
		}
	}

	for i := range ns.Classes {
		if !l.validateClass(doc, ns, &ns.Classes[i], st, rep) {
			return false
		}
	}

	return true
}

func (l *Loader) validateClass(doc *overrides.Document, ns *overrides.Namespace, cls *overrides.Class, st *stage, rep report) bool {
	if cls.Name == "" {
		return rep(diagnostic.Configuration(ns.Name, "namespace[%s] has a class's name is empty", ns.Name))
	}

	key := model.TypeKey{Namespace: ns.Name, Name: cls.Name}.FullName()

	ct, ok := l.program.ResolveType(key)
	if !ok {
		err := diagnostic.Unresolved(key, "type")
		if lister, ok := l.program.(model.TypeLister); ok {
			if c, ok := suggest.Closest(cls.Name, siblingNames(lister, ns.Name)); ok {
				err.Message += suggest.Format(ns.Name + "." + c)
			}
		}

		return rep(err)
	}

	name := ct.FullName()

	_, staged := st.typeNames[name]
	if staged || l.catalog.HasType(name) {
		return rep(diagnostic.Duplicate(name, "type override"))
	}

	rec := &catalog.TypeRecord{
		Type:              ct,
		CustomName:        nonEmpty(cls.DisplayName),
		SingleConstructor: cls.SingleConstructor,
		Source:            doc.Source,
	}

	st.typeNames[name] = struct{}{}
	st.types = append(st.types, rec)
	l.logger.Debug("type override", "source", doc.Source, "type", name)

	for i := range cls.Properties {
		if !l.validateProperty(doc, ct, &cls.Properties[i], st, rep) {
			return false
		}
	}

	return true
}

func (l *Loader) validateProperty(doc *overrides.Document, ct model.CompiledType, p *overrides.Property, st *stage, rep report) bool {
	if p.Name == "" {
		return rep(diagnostic.Configuration(ct.FullName(), "type[%s] has a property's name is empty", ct.FullName()))
	}

	cp, ok := model.FindProperty(ct, p.Name)
	if !ok {
		err := diagnostic.Unresolved(model.PropertyID{Type: ct.FullName(), Name: p.Name}.String(), "property")
		err.Message += suggest.Hint(p.Name, propertyNames(ct))

		return rep(err)
	}

	id := model.IDOf(cp)

	_, staged := st.propIDs[id]
	if staged || l.catalog.HasProperty(id) {
		return rep(diagnostic.Duplicate(id.String(), "property override"))
	}

	st.propIDs[id] = struct{}{}
	st.properties = append(st.properties, &catalog.PropertyRecord{
		Property:    cp,
		GetTemplate: p.Get.TemplateText(),
		SetTemplate: p.Set.TemplateText(),
		Source:      doc.Source,
	})
	l.logger.Debug("property override", "source", doc.Source, "property", id.String())

	return true
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}

	v := *s

	return &v
}

// siblingNames lists the document-form short names of the types declared
// in namespace.
func siblingNames(lister model.TypeLister, namespace string) []string {
	var out []string

	for _, n := range lister.TypeNames() {
		if key := model.SplitFullName(n); key.Namespace == namespace {
			out = append(out, model.DocumentTypeName(key.Name))
		}
	}

	return out
}

func propertyNames(ct model.CompiledType) []string {
	props := ct.Properties()

	out := make([]string, len(props))
	for i, p := range props {
		out[i] = p.Name()
	}

	return out
}
