package ecaplugin

import (
	"errors"
	"fmt"

	"github.com/ecatools/ecaplugin/ecasound"
	"github.com/ecatools/ecaplugin/internal/types"
)

// UnsupportedFormatError is an alias to types.UnsupportedFormatError.
// Re-exporting from internal/types to maintain public API.
type UnsupportedFormatError = types.UnsupportedFormatError

// MalformedSessionError is an alias to types.MalformedSessionError.
// Re-exporting from internal/types to maintain public API.
type MalformedSessionError = types.MalformedSessionError

// InputTooLargeError is an alias to types.InputTooLargeError.
// Re-exporting from internal/types to maintain public API.
type InputTooLargeError = types.InputTooLargeError

// IndexOutOfRangeError is an alias to ecasound.IndexOutOfRangeError.
type IndexOutOfRangeError = ecasound.IndexOutOfRangeError

// Warning is an alias to types.Warning.
// Re-exporting from internal/types to maintain public API.
type Warning = types.Warning

// Configuration errors reported by ExportOptions.Validate.
var (
	ErrChainSetupNeedsTrack = errors.New("ecasound chain setup can only be generated for a single track")
	ErrIncludeExclude       = errors.New("can't specify plugin inclusion and exclusion at the same time")
	ErrIndicesNeedTrack     = errors.New("can't specify plugin indices when exporting whole session")
)

// TrackNotFoundError is returned when no track of the session has the
// requested name.
type TrackNotFoundError struct {
	Path string
	Name string
}

func (e *TrackNotFoundError) Error() string {
	return fmt.Sprintf("%s: no track named %q", e.Path, e.Name)
}
