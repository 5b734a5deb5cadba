// Package ecasound renders plugin chains as ecasound command-line options.
//
// LADSPA plugins become "-eli:<id>,<values...>" and LV2 plugins
// "-elv2:<uri>,<values...>". A track can be rendered as a bare list of
// plugin options or as a complete chain setup that reads from and writes to
// JACK:
//
//	f := ecasound.NewFormatter(ecasound.Options{ChainSetup: true})
//	text, err := f.FormatTrack(track)
package ecasound

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/ecatools/ecaplugin/internal/types"
)

// DefaultClientName is the JACK client name used in chain setups when none
// is configured.
const DefaultClientName = "ecasound"

// Options controls what is rendered and how it is laid out.
type Options struct {
	// ClientName is the JACK client name of the chain setup.
	ClientName string

	// Include selects plugins by zero-based index, in the given order.
	// When empty, all plugins not listed in Exclude are rendered.
	Include []int

	// Exclude lists zero-based plugin indices to leave out.
	Exclude []int

	// ChainSetup wraps the plugins in a complete chain setup.
	ChainSetup bool

	// SingleLine joins plugins with spaces instead of newlines.
	SingleLine bool

	// NoDescription suppresses the "# <index>: <name>" comment lines.
	NoDescription bool

	// IncludeDisabled renders disabled plugins as comments instead of
	// leaving them out.
	IncludeDisabled bool
}

// Normalize applies the implications of SingleLine (no descriptions, no
// disabled plugins, since comments cannot share a line) and fills in the
// default client name.
func (o Options) Normalize() Options {
	if o.SingleLine {
		o.NoDescription = true
		o.IncludeDisabled = false
	}
	if o.ClientName == "" {
		o.ClientName = DefaultClientName
	}
	return o
}

// Formatter renders tracks and plugins in ecasound syntax.
type Formatter struct {
	opts Options
}

// NewFormatter returns a Formatter using the normalized options.
func NewFormatter(opts Options) *Formatter {
	return &Formatter{opts: opts.Normalize()}
}

// FormatSession renders all tracks, each headed by its name and an
// underline one character longer than the name, separated by blank lines.
func (f *Formatter) FormatSession(tracks []types.Track) (string, error) {
	sections := make([]string, 0, len(tracks))
	for _, track := range tracks {
		body, err := f.FormatTrack(track)
		if err != nil {
			return "", fmt.Errorf("track %q: %w", track.Name, err)
		}
		sections = append(sections, fmt.Sprintf("%s:\n%s\n%s",
			track.Name,
			strings.Repeat("-", utf8.RuneCountInString(track.Name)+1),
			body))
	}
	return strings.Join(sections, "\n\n"), nil
}

// FormatTrack renders the selected plugins of a track.
//
// Every include and exclude index must address a plugin of the track;
// otherwise an *IndexOutOfRangeError is returned and nothing is rendered.
func (f *Formatter) FormatTrack(track types.Track) (string, error) {
	indices, err := f.Select(len(track.Plugins))
	if err != nil {
		return "", err
	}

	lines := make([]string, 0, len(indices))
	for _, i := range indices {
		p := track.Plugins[i]
		if !p.Enabled && !f.opts.IncludeDisabled {
			continue
		}
		line, err := f.FormatPlugin(i, p)
		if err != nil {
			return "", err
		}
		lines = append(lines, line)
	}

	separator := "\n"
	if f.opts.SingleLine {
		separator = " "
	}
	plugins := strings.Join(lines, separator)

	if !f.opts.ChainSetup {
		return plugins, nil
	}
	return fmt.Sprintf("%s\n\n%s", f.Preamble(track), plugins), nil
}

// Select returns the plugin indices to render for a track with count
// plugins, before filtering disabled plugins.
func (f *Formatter) Select(count int) ([]int, error) {
	for _, list := range [][]int{f.opts.Include, f.opts.Exclude} {
		for _, i := range list {
			if i < 0 || i >= count {
				return nil, &IndexOutOfRangeError{Index: i, Count: count}
			}
		}
	}

	if len(f.opts.Include) > 0 {
		return slices.Clone(f.opts.Include), nil
	}

	indices := make([]int, 0, count)
	for i := range count {
		if !slices.Contains(f.opts.Exclude, i) {
			indices = append(indices, i)
		}
	}
	return indices, nil
}

// Preamble returns the chain setup header for a track: 32-bit float
// samples at the track's channel count and sample rate, JACK input and
// output, no transport sync.
func (f *Formatter) Preamble(track types.Track) string {
	return fmt.Sprintf("-f:f32,%d,%d -G:jack,%s,notransport -i:jack -o:jack",
		track.Channels, track.SampleRate, f.opts.ClientName)
}

// FormatPlugin renders a single plugin, preceded by a description comment
// unless descriptions are disabled. Disabled plugins are commented out.
func (f *Formatter) FormatPlugin(index int, plugin types.Plugin) (string, error) {
	cmd, err := Command(plugin)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	if !f.opts.NoDescription {
		fmt.Fprintf(&b, "# %d: %s\n", index, plugin.Name)
	}
	if !plugin.Enabled {
		b.WriteString("# ")
	}
	b.WriteString(cmd)
	return b.String(), nil
}

// Command returns the ecasound option that loads the plugin with its
// parameter values.
func Command(plugin types.Plugin) (string, error) {
	values := make([]string, 0, len(plugin.Values))
	for _, v := range plugin.Values {
		s, err := FormatValue(v)
		if err != nil {
			return "", err
		}
		values = append(values, s)
	}
	joined := strings.Join(values, ",")

	switch plugin.Kind {
	case types.KindLADSPA:
		return fmt.Sprintf("-eli:%d,%s", plugin.UniqueID, joined), nil
	case types.KindLV2:
		return fmt.Sprintf("-elv2:%s,%s", plugin.URI, joined), nil
	default:
		return "", fmt.Errorf("unsupported plugin kind %v", plugin.Kind)
	}
}
