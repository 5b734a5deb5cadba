package types

// Track is an ordered plugin chain together with the audio properties of
// the route (or rack) hosting it.
//
// Plugins are in signal-chain order. Name is empty for formats that have a
// single implicit track.
type Track struct {
	Name       string   `yaml:"name,omitempty" json:"name,omitempty"`
	Plugins    []Plugin `yaml:"plugins" json:"plugins"`
	Channels   int      `yaml:"channels" json:"channels"`
	SampleRate int      `yaml:"sample_rate" json:"sample_rate"`
}
