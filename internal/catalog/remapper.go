package catalog

import (
	"slices"
	"strings"

	"bridge-meta/internal/diagnostic"
)

// Remapper maps source namespace names to emitted display names.
type Remapper struct {
	names  map[string]string
	frozen bool
}

// Remap is one namespace rename.
type Remap struct {
	Source string
	Target string
}

// NewRemapper creates an empty remapper.
func NewRemapper() *Remapper {
	return &Remapper{names: make(map[string]string)}
}

// Remap registers source -> target.
func (r *Remapper) Remap(source, target string) error {
	if r.frozen {
		return ErrFrozen
	}

	if source == "" {
		return diagnostic.Configuration("", "namespace remap source is empty")
	}

	if _, ok := r.names[source]; ok {
		return diagnostic.Duplicate(source, "namespace map")
	}

	r.names[source] = target

	return nil
}

// Has reports whether source has a remap.
func (r *Remapper) Has(source string) bool {
	_, ok := r.names[source]
	return ok
}

// Resolve returns the remapped name, or name itself when none is declared.
func (r *Remapper) Resolve(name string) string {
	if target, ok := r.names[name]; ok {
		return target
	}

	return name
}

// Freeze ends the load phase.
func (r *Remapper) Freeze() {
	r.frozen = true
}

// Frozen reports whether Freeze has been called.
func (r *Remapper) Frozen() bool {
	return r.frozen
}

// Len returns the number of remaps.
func (r *Remapper) Len() int {
	return len(r.names)
}

// Entries returns every remap sorted by source.
func (r *Remapper) Entries() []Remap {
	out := make([]Remap, 0, len(r.names))
	for source, target := range r.names {
		out = append(out, Remap{Source: source, Target: target})
	}

	slices.SortFunc(out, func(a, b Remap) int {
		return strings.Compare(a.Source, b.Source)
	})

	return out
}
