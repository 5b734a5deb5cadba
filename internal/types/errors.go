package types

import "fmt"

// UnsupportedFormatError is returned when the document is neither an Ardour
// session nor a JACK Rack file.
type UnsupportedFormatError struct {
	Path   string
	Reason string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("%s: unsupported format: %s", e.Path, e.Reason)
}

// MalformedSessionError is returned when the document structure beneath a
// recognized root does not have the expected shape: a missing element or
// attribute, or a non-numeric value where a number is required.
type MalformedSessionError struct {
	Path    string
	Element string
	Reason  string
}

func (e *MalformedSessionError) Error() string {
	if e.Element == "" {
		return fmt.Sprintf("%s: malformed session: %s", e.Path, e.Reason)
	}
	return fmt.Sprintf("%s: malformed session at %s: %s", e.Path, e.Element, e.Reason)
}

// InputTooLargeError is returned when the (decompressed) input exceeds the
// configured size limit.
type InputTooLargeError struct {
	Path  string
	Limit int64
}

func (e *InputTooLargeError) Error() string {
	return fmt.Sprintf("%s: input exceeds size limit of %d bytes", e.Path, e.Limit)
}

// Warning represents a non-fatal note recorded during extraction.
//
// Units that are neither LADSPA nor LV2 (Ardour's own amp, meter and
// send processors, for example) are skipped and reported as warnings.
type Warning struct {
	// Track the warning belongs to ("" for the implicit JACK Rack track)
	Track string

	// Warning message
	Message string
}

// String returns a human-readable warning message.
func (w Warning) String() string {
	if w.Track != "" {
		return fmt.Sprintf("%s: %s", w.Track, w.Message)
	}
	return w.Message
}
