package ecaplugin

import (
	"io"

	"github.com/ecatools/ecaplugin/internal/source"
	"github.com/ecatools/ecaplugin/internal/types"
	"github.com/ecatools/ecaplugin/internal/xmltree"
)

// Format is an alias to types.Format.
// Re-exporting from internal/types to maintain public API.
type Format = types.Format

// Re-export all format constants.
const (
	FormatUnknown  = types.FormatUnknown
	FormatArdour2  = types.FormatArdour2
	FormatArdour3  = types.FormatArdour3
	FormatJackRack = types.FormatJackRack
)

// DetectFormat reads a (possibly gzip-compressed) document from r and
// reports its format without extracting anything.
func DetectFormat(r io.Reader, path string) (Format, error) {
	data, err := source.ReadAll(r, path, 0)
	if err != nil {
		return FormatUnknown, err
	}
	tree, err := xmltree.Parse(data, path)
	if err != nil {
		return FormatUnknown, err
	}
	return types.DetectFormat(tree.Document(), path)
}
