// Package types provides core data structures for extracted plugin chains.
//
// This package defines the Plugin, Track and Session types that represent
// the plugin parameters found in a session file, independent of the format
// they were read from.
package types

import "strconv"

// PluginKind distinguishes the plugin standards a unit can belong to.
type PluginKind int

const (
	// KindLADSPA identifies LADSPA plugins, addressed by numeric unique id.
	KindLADSPA PluginKind = iota + 1
	// KindLV2 identifies LV2 plugins, addressed by URI.
	KindLV2
)

// String returns the lowercase name used in session files.
func (k PluginKind) String() string {
	switch k {
	case KindLADSPA:
		return "ladspa"
	case KindLV2:
		return "lv2"
	default:
		return "unknown"
	}
}

// Plugin describes one effect unit: its identity, whether it is enabled and
// its parameter values in port order.
//
// Values are kept exactly as they appear in the source document. A Plugin is
// not modified after construction.
type Plugin struct {
	// Display name ("" if the format does not store one)
	Name string `yaml:"name,omitempty" json:"name,omitempty"`

	// LV2 plugin URI (KindLV2 only)
	URI string `yaml:"uri,omitempty" json:"uri,omitempty"`

	// Raw parameter values, one per control port
	Values []string `yaml:"values" json:"values"`

	// LADSPA unique id (KindLADSPA only)
	UniqueID int `yaml:"unique_id,omitempty" json:"unique_id,omitempty"`

	Kind    PluginKind `yaml:"-" json:"-"`
	Enabled bool       `yaml:"enabled" json:"enabled"`
}

// NewLADSPA returns the descriptor of a LADSPA plugin.
func NewLADSPA(uniqueID int, values []string, enabled bool, name string) Plugin {
	return Plugin{
		Kind:     KindLADSPA,
		UniqueID: uniqueID,
		Values:   values,
		Enabled:  enabled,
		Name:     name,
	}
}

// NewLV2 returns the descriptor of an LV2 plugin.
func NewLV2(uri string, values []string, enabled bool, name string) Plugin {
	return Plugin{
		Kind:    KindLV2,
		URI:     uri,
		Values:  values,
		Enabled: enabled,
		Name:    name,
	}
}

// Identity returns the unique id (LADSPA) or URI (LV2) as a string.
func (p Plugin) Identity() string {
	if p.Kind == KindLV2 {
		return p.URI
	}
	return strconv.Itoa(p.UniqueID)
}
