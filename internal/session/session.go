// Package session runs the load phase of one compilation run.
//
// A Session owns the metadata image, the override catalog and the namespace
// remapper for exactly one run. Open reads the override documents in
// parallel, loads them strictly in the configured order and freezes the
// catalog and remapper before returning, so emission never overlaps with
// loading.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"bridge-meta/internal/catalog"
	"bridge-meta/internal/diagnostic"
	"bridge-meta/internal/emit"
	"bridge-meta/internal/loader"
	"bridge-meta/internal/metadata"
	"bridge-meta/internal/model"
	"bridge-meta/internal/overrides"
)

// Options configures a run.
type Options struct {
	// Metadata is the path of the binary metadata image.
	Metadata string
	// Overrides are override document paths, in load order.
	Overrides []string
	// Jobs bounds parallel document reads (0 = GOMAXPROCS).
	Jobs int
}

// Session is the frozen result of a successful load phase.
type Session struct {
	image    *metadata.Image
	catalog  *catalog.Catalog
	remapper *catalog.Remapper
	logger   *slog.Logger
}

// Open loads the metadata image and every override document. Any error
// aborts the run.
func Open(ctx context.Context, opts Options, logger *slog.Logger) (*Session, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	img, err := metadata.LoadFile(opts.Metadata)
	if err != nil {
		return nil, diagnostic.IO(opts.Metadata, err)
	}

	logger.Info("metadata image loaded", "path", opts.Metadata, "assembly", img.Assembly, "types", img.Len())

	docs, err := ReadDocuments(ctx, opts.Overrides, opts.Jobs)
	if err != nil {
		return nil, err
	}

	s := &Session{
		image:    img,
		catalog:  catalog.New(img),
		remapper: catalog.NewRemapper(),
		logger:   logger,
	}

	if err := loader.New(img, s.catalog, s.remapper, logger).Load(docs...); err != nil {
		return nil, err
	}

	s.catalog.Freeze()
	s.remapper.Freeze()

	types, props := s.catalog.Len()
	logger.Info("overrides frozen", "types", types, "properties", props, "namespaces", s.remapper.Len())

	return s, nil
}

// Check reads every document and validates them all without stopping at
// the first problem.
func Check(ctx context.Context, opts Options, logger *slog.Logger) (*diagnostic.Diagnostics, error) {
	img, err := metadata.LoadFile(opts.Metadata)
	if err != nil {
		return nil, diagnostic.IO(opts.Metadata, err)
	}

	res := &diagnostic.Diagnostics{}

	docs := make([]*overrides.Document, 0, len(opts.Overrides))

	for _, path := range opts.Overrides {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		doc, err := overrides.LoadFile(path)
		if err != nil {
			res.Add(err)
			continue
		}

		docs = append(docs, doc)
	}

	res.Merge(*loader.New(img, catalog.New(img), catalog.NewRemapper(), logger).Check(docs...))

	return res, nil
}

// ReadDocuments parses documents concurrently and returns them in the order
// of paths. The first read error cancels the remaining reads.
func ReadDocuments(ctx context.Context, paths []string, jobs int) ([]*overrides.Document, error) {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	docs := make([]*overrides.Document, len(paths))

	if len(paths) == 0 {
		return docs, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))

	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			doc, err := overrides.LoadFile(path)
			if err != nil {
				return err
			}

			docs[i] = doc

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		var de *diagnostic.Error
		if errors.As(err, &de) {
			return nil, err
		}

		return nil, fmt.Errorf("reading override documents: %w", err)
	}

	return docs, nil
}

// Program returns the compiled program model.
func (s *Session) Program() model.Program { return s.image }

// Image returns the metadata image.
func (s *Session) Image() *metadata.Image { return s.image }

// Catalog returns the frozen override catalog.
func (s *Session) Catalog() *catalog.Catalog { return s.catalog }

// Remapper returns the frozen namespace remapper.
func (s *Session) Remapper() *catalog.Remapper { return s.remapper }

// NewEmissionContext returns a fresh context for one emission task.
func (s *Session) NewEmissionContext() *emit.Context {
	return emit.NewContext()
}
