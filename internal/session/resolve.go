package session

import (
	"slices"

	"bridge-meta/internal/analyze"
	"bridge-meta/internal/emit"
	"bridge-meta/internal/metadata"
	"bridge-meta/internal/model"
)

// TypeView is what the emitter would produce for one semantic type once
// overrides are applied.
type TypeView struct {
	Source            string // semantic type, binary encoding
	Namespace         string // emitted namespace after remapping
	Name              string // emitted type name
	SingleConstructor bool
	EnumExport        bool
	// Bound is false when the semantic type has no binary counterpart.
	Bound      bool
	Properties []PropertyView
	// Renamed lists accessor names that clash in the target language.
	Renamed []string
}

// PropertyView is the emitted form of one property.
type PropertyView struct {
	Name        string
	GetTemplate *string
	SetTemplate *string
}

// Resolve applies the frozen overrides to every type of the semantic graph.
// Types are emitted one package (translation unit) at a time through a
// single emission context.
func (s *Session) Resolve(graph *analyze.TypeGraph) []TypeView {
	ctx := s.NewEmissionContext()

	var views []TypeView

	for _, pkg := range graph.SortedPackages() {
		ctx.BeginUnit()

		for _, id := range pkg.Types {
			views = append(views, s.resolveType(ctx, graph.Types[id]))
		}
	}

	return views
}

func (s *Session) resolveType(ctx *emit.Context, info *analyze.TypeInfo) TypeView {
	fullName := info.BinaryName()
	key := model.SplitFullName(fullName)

	view := TypeView{
		Source:    fullName,
		Namespace: s.remapper.Resolve(key.Namespace),
		Name:      key.Name,
	}

	ctx.AddActiveNamespace(view.Namespace)

	ct, ok := s.image.ResolveType(fullName)
	if !ok {
		ctx.ResetForType(nil)
		return view
	}

	view.Bound = true
	ctx.ResetForType(ct)

	if name, ok := s.catalog.CustomName(ct); ok {
		view.Name = name
	}

	view.SingleConstructor = s.catalog.IsSingleConstructor(ct)

	if t, ok := ct.(*metadata.Type); (ok && t.IsEnum()) || info.Kind == analyze.TypeKindEnum {
		ctx.RegisterEnumExport(ct)
	}

	view.EnumExport = ctx.IsEnumExport(ct)

	for i := range info.Properties {
		p := &info.Properties[i]
		pv := PropertyView{Name: p.Name()}

		if tmpl, ok := s.catalog.PropertyTemplate(p, true); ok {
			pv.GetTemplate = &tmpl
		} else {
			ctx.RegisterMethod("get"+p.Name(), false, false)
		}

		if tmpl, ok := s.catalog.PropertyTemplate(p, false); ok {
			pv.SetTemplate = &tmpl
		} else {
			ctx.RegisterMethod("set"+p.Name(), false, false)
		}

		view.Properties = append(view.Properties, pv)
	}

	for _, m := range ctx.Methods() {
		if ctx.NeedsRename(m.Name) && !slices.Contains(view.Renamed, m.Name) {
			view.Renamed = append(view.Renamed, m.Name)
		}
	}

	return view
}
