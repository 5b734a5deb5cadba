package types

// Session represents an opened session file with its extracted tracks.
type Session struct {
	// Path to the session file
	Path string

	// Detected document format
	Format Format

	// Extracted tracks in document order
	Tracks []Track

	// Units skipped during extraction
	Warnings []Warning
}

// FindTrack returns the first track with the given name.
func (s *Session) FindTrack(name string) (Track, bool) {
	for _, t := range s.Tracks {
		if t.Name == name {
			return t, true
		}
	}
	return Track{}, false
}
