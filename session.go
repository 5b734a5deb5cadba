package ecaplugin

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/ecatools/ecaplugin/internal/registry"
	"github.com/ecatools/ecaplugin/internal/source"
	"github.com/ecatools/ecaplugin/internal/types"
	"github.com/ecatools/ecaplugin/internal/xmltree"
)

// Document is a loaded session file whose format is known but whose
// plugins have not been extracted yet.
//
// Loading and extraction are separate so that callers can check their
// configuration against the detected format before doing any work:
//
//	doc, err := ecaplugin.Load("mix.ardour")
//	if err != nil {
//		return err
//	}
//	if err := opts.Validate(doc.Format); err != nil {
//		return err
//	}
//	session, err := doc.Extract()
type Document struct {
	// Path to the session file
	Path string

	// Detected format
	Format Format

	tree    *xmltree.Tree
	options *openOptions
}

// Load reads a session file and detects its format.
//
// Gzip-compressed files (as written by JACK Rack) are decompressed
// transparently. Documents that are neither Ardour sessions nor JACK Rack
// files fail with *UnsupportedFormatError.
func Load(path string, opts ...Option) (*Document, error) {
	options := applyOptions(opts)

	data, err := source.ReadFile(path, options.maxInputSize)
	if err != nil {
		return nil, err
	}
	return load(data, path, options)
}

// LoadReader reads a session document from r. The path is only used in
// error messages.
func LoadReader(r io.Reader, path string, opts ...Option) (*Document, error) {
	options := applyOptions(opts)

	data, err := source.ReadAll(r, path, options.maxInputSize)
	if err != nil {
		return nil, err
	}
	return load(data, path, options)
}

func load(data []byte, path string, options *openOptions) (*Document, error) {
	tree, err := xmltree.Parse(data, path)
	if err != nil {
		return nil, err
	}

	format, err := types.DetectFormat(tree.Document(), path)
	if err != nil {
		return nil, err
	}
	options.logger.Debug("detected format", "path", path, "format", format, "bytes", len(data))

	return &Document{
		Path:    path,
		Format:  format,
		tree:    tree,
		options: options,
	}, nil
}

// Extract runs the extractor registered for the document's format.
//
// Extraction is strict: any element or attribute missing from the expected
// session structure fails the whole document with *MalformedSessionError.
func (d *Document) Extract() (*Session, error) {
	extractor := registry.Get(d.Format)
	if extractor == nil {
		return nil, &UnsupportedFormatError{
			Path:   d.Path,
			Reason: fmt.Sprintf("no extractor available for format %s", d.Format),
		}
	}

	log := d.options.logger.With("path", d.Path)
	result, err := extractor.Extract(d.tree, log)
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", d.Format, err)
	}

	for _, w := range result.Warnings {
		log.Debug("skipped unit", "track", w.Track, "detail", w.Message)
	}

	session := &Session{
		Path:     d.Path,
		Format:   d.Format,
		Tracks:   result.Tracks,
		Warnings: result.Warnings,
	}
	if d.options.ignoreWarnings {
		session.Warnings = nil
	}

	return session, nil
}

// Open loads a session file and extracts its tracks.
//
// Example:
//
//	session, err := ecaplugin.Open("mix.ardour")
//	if err != nil {
//		return err
//	}
//	for _, t := range session.Tracks {
//		fmt.Printf("%s: %d plugins\n", t.Name, len(t.Plugins))
//	}
func Open(path string, opts ...Option) (*Session, error) {
	doc, err := Load(path, opts...)
	if err != nil {
		return nil, err
	}
	return doc.Extract()
}

// OpenReader loads a session document from r and extracts its tracks.
func OpenReader(r io.Reader, path string, opts ...Option) (*Session, error) {
	doc, err := LoadReader(r, path, opts...)
	if err != nil {
		return nil, err
	}
	return doc.Extract()
}

// OpenContext opens a file with context support for cancellation.
//
// The context is checked before starting; loading itself is not
// interruptible.
func OpenContext(ctx context.Context, path string, opts ...Option) (*Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Open(path, opts...)
}

// LoadMany loads multiple session files concurrently.
//
// Files are read in parallel using up to runtime.NumCPU() goroutines.
// Results are returned in the same order as the input paths. If any file
// fails to load, the first error is returned.
func LoadMany(ctx context.Context, paths []string, opts ...Option) ([]*Document, error) {
	return forEach(ctx, paths, func(path string) (*Document, error) {
		return Load(path, opts...)
	})
}

// OpenMany opens multiple session files concurrently.
//
// Example:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
//	defer cancel()
//
//	sessions, err := ecaplugin.OpenMany(ctx, paths...)
//	if err != nil {
//		log.Fatal(err)
//	}
func OpenMany(ctx context.Context, paths ...string) ([]*Session, error) {
	return forEach(ctx, paths, func(path string) (*Session, error) {
		return Open(path)
	})
}

func forEach[T any](ctx context.Context, paths []string, fn func(string) (T, error)) ([]T, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]T, len(paths))

	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			v, err := fn(path)
			if err != nil {
				return err
			}
			results[i] = v
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
