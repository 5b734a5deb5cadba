// Package jackrack extracts the plugin chain of a JACK Rack file.
//
// A rack is a single unnamed chain of LADSPA plugins with global channel
// count and sample rate.
package jackrack

import (
	"log/slog"

	"github.com/ecatools/ecaplugin/internal/registry"
	"github.com/ecatools/ecaplugin/internal/types"
	"github.com/ecatools/ecaplugin/internal/xmltree"
)

// parser implements the registry.Extractor interface
type parser struct{}

// Extract parses the rack into a single track.
func (p *parser) Extract(tree *xmltree.Tree, log *slog.Logger) (*registry.Result, error) {
	rack, err := tree.Root()
	if err != nil {
		return nil, err
	}

	var c xmltree.Chain
	channels := c.IntText(c.Find(rack, "channels"))
	rate := c.IntText(c.Find(rack, "samplerate"))
	if err := c.Error(); err != nil {
		return nil, err
	}

	var plugins []types.Plugin
	for _, plugin := range rack.FindAll("plugin") {
		unit, err := parseLADSPA(plugin)
		if err != nil {
			return nil, err
		}
		plugins = append(plugins, unit)
	}

	log.Debug("extracted rack",
		"channels", channels,
		"samplerate", rate,
		"plugins", len(plugins))

	return &registry.Result{
		Tracks: []types.Track{{
			Plugins:    plugins,
			Channels:   channels,
			SampleRate: rate,
		}},
	}, nil
}

func parseLADSPA(plugin xmltree.Node) (types.Plugin, error) {
	var c xmltree.Chain
	enabled := c.Text(c.Find(plugin, "enabled")) == "true"
	uniqueID := c.IntText(c.Find(plugin, "id"))

	// With unlocked channels a control row holds one value per channel;
	// the first one is used.
	rows := c.FindAll(plugin, "controlrow")
	values := make([]string, 0, len(rows))
	for _, row := range rows {
		values = append(values, c.Text(c.Find(row, "value")))
	}

	if err := c.Error(); err != nil {
		return types.Plugin{}, err
	}
	return types.NewLADSPA(uniqueID, values, enabled, ""), nil
}

// init registers the JACK Rack extractor
func init() {
	registry.Register(types.FormatJackRack, &parser{})
}
