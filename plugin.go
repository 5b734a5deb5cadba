package ecaplugin

import (
	"github.com/ecatools/ecaplugin/internal/types"
)

// Plugin is an alias to types.Plugin.
// Re-exporting from internal/types to maintain public API.
type Plugin = types.Plugin

// PluginKind is an alias to types.PluginKind.
type PluginKind = types.PluginKind

// Re-export plugin kinds.
const (
	KindLADSPA = types.KindLADSPA
	KindLV2    = types.KindLV2
)

// Track is an alias to types.Track.
// Re-exporting from internal/types to maintain public API.
type Track = types.Track

// Session is an alias to types.Session.
// Re-exporting from internal/types to maintain public API.
type Session = types.Session

// NewLADSPA returns the descriptor of a LADSPA plugin.
func NewLADSPA(uniqueID int, values []string, enabled bool, name string) Plugin {
	return types.NewLADSPA(uniqueID, values, enabled, name)
}

// NewLV2 returns the descriptor of an LV2 plugin.
func NewLV2(uri string, values []string, enabled bool, name string) Plugin {
	return types.NewLV2(uri, values, enabled, name)
}
