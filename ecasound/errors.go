package ecasound

import "fmt"

// IndexOutOfRangeError is returned when an include or exclude index does
// not address a plugin of the track.
type IndexOutOfRangeError struct {
	Index int
	Count int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("plugin index %d is out of range (track has %d plugins)", e.Index, e.Count)
}

// ValueError is returned when a parameter value cannot be rendered.
type ValueError struct {
	Value  string
	Reason string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("invalid parameter value %q: %s", e.Value, e.Reason)
}
