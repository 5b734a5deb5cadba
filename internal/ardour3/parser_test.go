package ardour3

import (
	"errors"
	"log/slog"
	"slices"
	"testing"

	"github.com/ecatools/ecaplugin/internal/registry"
	"github.com/ecatools/ecaplugin/internal/types"
	"github.com/ecatools/ecaplugin/internal/xmltree"
)

const sessionXML = `<?xml version="1.0" encoding="UTF-8"?>
<Session version="3001" name="demo" sample-rate="48000">
  <Routes>
    <Route version="3001" id="100" name="Vocals" default-type="audio" active="1">
      <IO name="Vocals" id="101" direction="Input" default-type="audio">
        <Port type="audio" name="Vocals/audio_in 1">
          <Connection other="system:capture_1"/>
        </Port>
      </IO>
      <IO name="Vocals" id="102" direction="Output" default-type="audio">
        <Port type="audio" name="Vocals/audio_out 1"/>
        <Port type="audio" name="Vocals/audio_out 2"/>
      </IO>
      <Processor id="103" name="Amp" active="yes" type="amp"/>
      <Processor id="104" name="ACE Compressor" active="yes" type="ladspa" unique-id="1913">
        <ladspa>
          <Port number="0" value="0"/>
          <Port number="1" value="-20.5"/>
        </ladspa>
      </Processor>
      <Processor id="105" name="Reverb" active="no" type="lv2" unique-id="http://calf.sourceforge.net/plugins/Reverb">
        <lv2>
          <Port symbol="room_size" value="0.25"/>
        </lv2>
      </Processor>
      <Processor id="106" name="meter-Vocals" active="yes" type="meter"/>
      <Processor id="107" name="Delay" active="yes" type="ladspa" unique-id="1043">
        <ladspa>
          <Port number="0" value="120"/>
        </ladspa>
      </Processor>
    </Route>
    <Route version="3001" id="200" name="Master">
      <IO name="Master" id="201" direction="Input">
        <Port type="audio" name="Master/audio_in 1"/>
        <Port type="audio" name="Master/audio_in 2"/>
      </IO>
      <IO name="Master" id="202" direction="Output"/>
      <Processor id="203" name="Amp" active="yes" type="amp"/>
    </Route>
  </Routes>
</Session>`

func extract(t *testing.T, xml string) (*registry.Result, error) {
	t.Helper()

	tree, err := xmltree.Parse([]byte(xml), "test.ardour")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	p := &parser{}
	return p.Extract(tree, slog.New(slog.DiscardHandler))
}

func TestExtract_Routes(t *testing.T) {
	result, err := extract(t, sessionXML)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if len(result.Tracks) != 2 {
		t.Fatalf("expected 2 tracks, got %d", len(result.Tracks))
	}

	vocals := result.Tracks[0]
	if vocals.Name != "Vocals" || vocals.Channels != 1 || vocals.SampleRate != 48000 {
		t.Errorf("Vocals = %q/%d/%d, want Vocals/1/48000", vocals.Name, vocals.Channels, vocals.SampleRate)
	}

	master := result.Tracks[1]
	if master.Name != "Master" || master.Channels != 2 {
		t.Errorf("Master = %q/%d, want Master/2", master.Name, master.Channels)
	}
	if len(master.Plugins) != 0 {
		t.Errorf("Master plugins = %d, want 0", len(master.Plugins))
	}
}

func TestExtract_DocumentOrder(t *testing.T) {
	result, err := extract(t, sessionXML)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	var names []string
	for _, p := range result.Tracks[0].Plugins {
		names = append(names, p.Name)
	}
	want := []string{"ACE Compressor", "Reverb", "Delay"}
	if !slices.Equal(names, want) {
		t.Errorf("plugin order = %v, want %v", names, want)
	}
}

func TestExtract_PluginFields(t *testing.T) {
	result, err := extract(t, sessionXML)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	plugins := result.Tracks[0].Plugins

	comp := plugins[0]
	if comp.Kind != types.KindLADSPA || comp.UniqueID != 1913 || !comp.Enabled {
		t.Errorf("compressor = %+v", comp)
	}
	if !slices.Equal(comp.Values, []string{"0", "-20.5"}) {
		t.Errorf("compressor values = %v", comp.Values)
	}

	reverb := plugins[1]
	if reverb.Kind != types.KindLV2 || reverb.URI != "http://calf.sourceforge.net/plugins/Reverb" {
		t.Errorf("reverb = %+v", reverb)
	}
	if reverb.Enabled {
		t.Error("reverb should be disabled")
	}
	if !slices.Equal(reverb.Values, []string{"0.25"}) {
		t.Errorf("reverb values = %v", reverb.Values)
	}
}

func TestExtract_SkipsBuiltinProcessors(t *testing.T) {
	result, err := extract(t, sessionXML)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	// amp + meter on Vocals, amp on Master
	if len(result.Warnings) != 3 {
		t.Errorf("expected 3 warnings, got %d: %v", len(result.Warnings), result.Warnings)
	}
}

func TestExtract_Malformed(t *testing.T) {
	tests := []struct {
		name string
		xml  string
	}{
		{
			name: "no input IO",
			xml:  `<Session version="3001" sample-rate="48000"><Routes><Route><IO name="x" direction="Output"/></Route></Routes></Session>`,
		},
		{
			name: "processor without type",
			xml: `<Session version="3001" sample-rate="48000"><Routes><Route><IO name="x" direction="Input"/>
				<Processor name="?"/></Route></Routes></Session>`,
		},
		{
			name: "ladspa without state",
			xml: `<Session version="3001" sample-rate="48000"><Routes><Route><IO name="x" direction="Input"/>
				<Processor name="p" type="ladspa" unique-id="1" active="yes"/></Route></Routes></Session>`,
		},
		{
			name: "lv2 without uri",
			xml: `<Session version="3001" sample-rate="48000"><Routes><Route><IO name="x" direction="Input"/>
				<Processor name="p" type="lv2" active="yes"><lv2/></Processor></Route></Routes></Session>`,
		},
		{
			name: "sample rate not a number",
			xml:  `<Session version="3001" sample-rate="fast"><Routes><Route><IO name="x" direction="Input"/></Route></Routes></Session>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := extract(t, tt.xml)
			var mse *types.MalformedSessionError
			if !errors.As(err, &mse) {
				t.Errorf("Extract() error = %v, want *types.MalformedSessionError", err)
			}
		})
	}
}

func TestRegistered(t *testing.T) {
	if _, ok := registry.Get(types.FormatArdour3).(*parser); !ok {
		t.Error("Ardour 3 extractor is not registered")
	}
}
