// Package ardour2 extracts plugin chains from Ardour 2.x session files.
//
// Ardour 2 stores inserts of a route in an order where pre-fader and
// post-fader units are interleaved; within each of these two sets the
// document order is the order in the channel strip. The extractor emits
// all pre-fader units first, followed by all post-fader units.
package ardour2

import (
	"log/slog"
	"strings"

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

	io := c.Find(route, "IO")
	if err := c.Error(); err != nil {
		return types.Track{}, err
	}

	var channels int
	if io.HasAttr("input-connection") {
		// Connections to a stereo bundle are named "in 1+2"; this is only a
		// heuristic.
		channels = 1
		if strings.Contains(c.Attr(io, "input-connection"), "+") {
			channels = 2
		}
	} else {
		// inputs looks like "{in 1}{in 2}", one brace group per port.
		channels = strings.Count(c.Attr(io, "inputs"), "{")
	}
	rate := c.IntAttr(session, "sample-rate")
	name := c.Attr(io, "name")
	if err := c.Error(); err != nil {
		return types.Track{}, err
	}

	var preFader, postFader []types.Plugin
	for _, insert := range route.FindAll("Insert") {
		var ic xmltree.Chain
		kind := ic.Attr(insert, "type")
		redirect := ic.Find(insert, "Redirect")
		placement := ic.Attr(redirect, "placement")
		if err := ic.Error(); err != nil {
			return types.Track{}, err
		}

		var (
			plugin types.Plugin
			err    error
		)
		switch kind {
		case "ladspa":
			plugin, err = parseLADSPA(insert, redirect)
		case "lv2":
			plugin, err = parseLV2(insert, redirect)
		default:
			result.Skip(name, "insert", kind)
			continue
		}
		if err != nil {
			return types.Track{}, err
		}

		if placement == "PostFader" {
			postFader = append(postFader, plugin)
		} else {
			preFader = append(preFader, plugin)
		}
	}

	plugins := make([]types.Plugin, 0, len(preFader)+len(postFader))
	plugins = append(plugins, preFader...)
	plugins = append(plugins, postFader...)

	return types.Track{
		Name:       name,
		Plugins:    plugins,
		Channels:   channels,
		SampleRate: rate,
	}, nil
}

func parseLADSPA(insert, redirect xmltree.Node) (types.Plugin, error) {
	var c xmltree.Chain
	enabled := c.Attr(redirect, "active") == "yes"
	name := c.Attr(c.Find(redirect, "IO"), "name")
	uniqueID := c.IntAttr(insert, "unique-id")
	values := portValues(&c, c.Find(insert, "ladspa"))
	if err := c.Error(); err != nil {
		return types.Plugin{}, err
	}
	return types.NewLADSPA(uniqueID, values, enabled, name), nil
}

func parseLV2(insert, redirect xmltree.Node) (types.Plugin, error) {
	var c xmltree.Chain
	enabled := c.Attr(redirect, "active") == "yes"
	name := c.Attr(c.Find(redirect, "IO"), "name")
	uri := c.Attr(insert, "unique-id")
	values := portValues(&c, c.Find(insert, "lv2"))
	if err := c.Error(); err != nil {
		return types.Plugin{}, err
	}
	return types.NewLV2(uri, values, enabled, name), nil
}

// portValues returns the value attribute of every <port> below state.
func portValues(c *xmltree.Chain, state xmltree.Node) []string {
	ports := c.FindAll(state, "port")
	values := make([]string, 0, len(ports))
	for _, port := range ports {
		values = append(values, c.Attr(port, "value"))
	}
	return values
}

// init registers the Ardour 2 extractor
func init() {
	registry.Register(types.FormatArdour2, &parser{})
}
