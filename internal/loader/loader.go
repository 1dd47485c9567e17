package loader

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"bridge-meta/internal/catalog"
	"bridge-meta/internal/diagnostic"
	"bridge-meta/internal/model"
	"bridge-meta/internal/overrides"
)

// Loader populates a Catalog and Remapper from override documents.
type Loader struct {
	program  model.Program
	catalog  *catalog.Catalog
	remapper *catalog.Remapper
	logger   *slog.Logger
}

// New creates a loader writing into cat and rem. A nil logger discards output.
func New(program model.Program, cat *catalog.Catalog, rem *catalog.Remapper, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Loader{
		program:  program,
		catalog:  cat,
		remapper: rem,
		logger:   logger,
	}
}

// Load validates and commits each document in order. It stops at the first
// error, which carries the document source and the offending entity.
func (l *Loader) Load(docs ...*overrides.Document) error {
	if l.program == nil {
		return errors.New("loader has no compiled program")
	}

	for _, doc := range docs {
		if doc == nil {
			continue
		}

		st := newStage()

		var first *diagnostic.Error

		l.validate(doc, st, func(e *diagnostic.Error) bool {
			first = e.WithSource(doc.Source)
			return false
		})

		if first != nil {
			l.logger.Error("override document rejected",
				"source", doc.Source,
				"kind", first.Kind.String(),
				"entity", first.Entity,
			)

			return first
		}

		if err := l.commit(st); err != nil {
			return fmt.Errorf("%s: committing overrides: %w", doc.Source, err)
		}

		l.logger.Info("override document loaded",
			"source", doc.Source,
			"namespaces", len(st.remaps),
			"types", len(st.types),
			"properties", len(st.properties),
		)
	}

	return nil
}

// Check validates documents without committing anything and reports every
// problem found. Collisions are checked against the committed catalog and
// across the given documents.
func (l *Loader) Check(docs ...*overrides.Document) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	if l.program == nil {
		res.AddError("program_is_nil", "loader has no compiled program", "", "")
		return res
	}

	st := newStage()

	for _, doc := range docs {
		if doc == nil {
			continue
		}

		l.validate(doc, st, func(e *diagnostic.Error) bool {
			res.Add(e.WithSource(doc.Source))
			return true
		})

		lint(doc, res)
	}

	types, props := len(st.types), len(st.properties)
	res.AddInfo("checked", fmt.Sprintf("%d documents, %d type overrides, %d property overrides", len(docs), types, props), "", "")

	return res
}

// lint reports entries that load fine but override nothing.
func lint(doc *overrides.Document, res *diagnostic.Diagnostics) {
	if namespaces, _, _ := doc.Counts(); namespaces == 0 {
		res.AddWarning("empty_document", "document declares no namespaces", doc.Source, "")
		return
	}

	for _, ns := range doc.Namespaces {
		for _, cls := range ns.Classes {
			for _, p := range cls.Properties {
				if p.Get == nil && p.Set == nil {
					entity := model.TypeKey{Namespace: ns.Name, Name: cls.Name}.FullName() + "." + p.Name
					res.AddWarning("empty_property_override", "property override has neither get nor set", doc.Source, entity)
				}
			}
		}
	}
}

// commit writes a validated stage. Both targets are checked for writability
// first so a frozen one never leaves the other half-written. Types go before
// properties so property records are attached to their owning type record.
func (l *Loader) commit(st *stage) error {
	if len(st.remaps) > 0 && l.remapper.Frozen() {
		return catalog.ErrFrozen
	}

	if (len(st.types) > 0 || len(st.properties) > 0) && l.catalog.Frozen() {
		return catalog.ErrFrozen
	}

	for _, r := range st.remaps {
		if err := l.remapper.Remap(r.Source, r.Target); err != nil {
			return err
		}
	}

	for _, rec := range st.types {
		if err := l.catalog.AddType(rec); err != nil {
			return err
		}
	}

	for _, rec := range st.properties {
		if err := l.catalog.AddProperty(rec); err != nil {
			return err
		}
	}

	return nil
}
