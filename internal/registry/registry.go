// Package registry manages format-specific extractors for session documents.
package registry

import (
	"fmt"
	"log/slog"

	"github.com/ecatools/ecaplugin/internal/types"
	"github.com/ecatools/ecaplugin/internal/xmltree"
)

// Extractor is the interface all format extractors implement.
//
// Extract walks a parsed document and returns its tracks in document order.
// Implementations must not modify the tree and fail on the first
// unexpected shape; they never return partial results.
type Extractor interface {
	Extract(tree *xmltree.Tree, log *slog.Logger) (*Result, error)
}

// Result holds the tracks found by an extractor together with any units
// that were skipped.
type Result struct {
	Tracks   []types.Track
	Warnings []types.Warning
}

// Skip records a unit that is neither LADSPA nor LV2.
func (r *Result) Skip(track, kind, unitType string) {
	r.Warnings = append(r.Warnings, types.Warning{
		Track:   track,
		Message: fmt.Sprintf("skipped %s of type %q", kind, unitType),
	})
}

// extractors maps formats to their extractors.
var extractors = make(map[types.Format]Extractor)

// Register registers an extractor for a format.
// This is called by format packages during initialization (init functions).
func Register(format types.Format, extractor Extractor) {
	extractors[format] = extractor
}

// Get returns the extractor for a given format.
// Returns nil if no extractor is registered for the format.
func Get(format types.Format) Extractor {
	return extractors[format]
}
