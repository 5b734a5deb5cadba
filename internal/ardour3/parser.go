// Package ardour3 extracts plugin chains from Ardour 3.x and later session
// files. Processors are stored in signal-chain order, so no reordering is
// needed.
package ardour3

import (
	"log/slog"

	"github.com/ecatools/ecaplugin/internal/registry"
	"github.com/ecatools/ecaplugin/internal/types"
	"github.com/ecatools/ecaplugin/internal/xmltree"
)

// parser implements the registry.Extractor interface
type parser struct{}

// Extract parses every route (track or bus) of the session.
func (p *parser) Extract(tree *xmltree.Tree, log *slog.Logger) (*registry.Result, error) {
	session, err := tree.Root()
	if err != nil {
		return nil, err
	}
	routes, err := session.Find("Routes")
	if err != nil {
		return nil, err
	}

	result := &registry.Result{}
	for _, route := range routes.FindAll("Route") {
		track, err := parseRoute(session, route, result)
		if err != nil {
			return nil, err
		}
		log.Debug("extracted route",
			"track", track.Name,
			"channels", track.Channels,
			"plugins", len(track.Plugins))
		result.Tracks = append(result.Tracks, track)
	}

	return result, nil
}

func parseRoute(session, route xmltree.Node, result *registry.Result) (types.Track, error) {
	var c xmltree.Chain
	input := c.FindWhere(route, "IO", "direction", "Input")
	channels := len(c.FindAll(input, "Port"))
	rate := c.IntAttr(session, "sample-rate")
	name := c.Attr(c.Find(route, "IO"), "name")
	if err := c.Error(); err != nil {
		return types.Track{}, err
	}

	var plugins []types.Plugin
	for _, processor := range route.FindAll("Processor") {
		kind, err := processor.Attr("type")
		if err != nil {
			return types.Track{}, err
		}

		var plugin types.Plugin
		switch kind {
		case "ladspa":
			plugin, err = parseLADSPA(processor)
		case "lv2":
			plugin, err = parseLV2(processor)
		default:
			result.Skip(name, "processor", kind)
			continue
		}
		if err != nil {
			return types.Track{}, err
		}
		plugins = append(plugins, plugin)
	}

	return types.Track{
		Name:       name,
		Plugins:    plugins,
		Channels:   channels,
		SampleRate: rate,
	}, nil
}

func parseLADSPA(processor xmltree.Node) (types.Plugin, error) {
	var c xmltree.Chain
	enabled := c.Attr(processor, "active") == "yes"
	name := c.Attr(processor, "name")
	uniqueID := c.IntAttr(processor, "unique-id")
	values := portValues(&c, c.Find(processor, "ladspa"))
	if err := c.Error(); err != nil {
		return types.Plugin{}, err
	}
	return types.NewLADSPA(uniqueID, values, enabled, name), nil
}

func parseLV2(processor xmltree.Node) (types.Plugin, error) {
	var c xmltree.Chain
	enabled := c.Attr(processor, "active") == "yes"
	name := c.Attr(processor, "name")
	uri := c.Attr(processor, "unique-id")
	values := portValues(&c, c.Find(processor, "lv2"))
	if err := c.Error(); err != nil {
		return types.Plugin{}, err
	}
	return types.NewLV2(uri, values, enabled, name), nil
}

// portValues returns the value attribute of every <Port> below state.
func portValues(c *xmltree.Chain, state xmltree.Node) []string {
	ports := c.FindAll(state, "Port")
	values := make([]string, 0, len(ports))
	for _, port := range ports {
		values = append(values, c.Attr(port, "value"))
	}
	return values
}

// init registers the Ardour 3 extractor
func init() {
	registry.Register(types.FormatArdour3, &parser{})
}
