package ecaplugin_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecatools/ecaplugin"
	"github.com/ecatools/ecaplugin/ecasound"
)

func export(t *testing.T, path string, opts ecaplugin.ExportOptions) string {
	t.Helper()

	session, err := ecaplugin.Open(path)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, ecaplugin.Export(&buf, session, opts))
	return buf.String()
}

func TestExport_WholeSession(t *testing.T) {
	got := export(t, "testdata/mix3.ardour", ecaplugin.ExportOptions{})

	want := "Vocals:\n-------\n# 0: ACE Compressor\n-eli:1913,0,-20.5\n\n" +
		"Master:\n-------\n\n"
	assert.Equal(t, want, got)
}

func TestExport_Track(t *testing.T) {
	got := export(t, "testdata/mix2.ardour", ecaplugin.ExportOptions{TrackName: "Guitar"})

	assert.Equal(t, "# 0: Glame Highpass\n-eli:1201,80\n# 1: SC4 mono\n-eli:1913,0.5,100\n", got)
}

func TestExport_TrackChainSetup(t *testing.T) {
	opts := ecaplugin.ExportOptions{
		Options: ecasound.Options{
			ChainSetup:      true,
			ClientName:      "mix",
			IncludeDisabled: true,
		},
		TrackName: "Vocals",
	}
	got := export(t, "testdata/mix3.ardour", opts)

	want := "-f:f32,2,48000 -G:jack,mix,notransport -i:jack -o:jack\n\n" +
		"# 0: ACE Compressor\n-eli:1913,0,-20.5\n" +
		"# 1: Reverb\n# -elv2:http://calf.sourceforge.net/plugins/Reverb,0.25\n"
	assert.Equal(t, want, got)
}

func TestExport_JackRackIgnoresTrackName(t *testing.T) {
	opts := ecaplugin.ExportOptions{
		Options:   ecasound.Options{ChainSetup: true, SingleLine: true},
		TrackName: "anything",
	}
	got := export(t, gzipFixture(t, "rack.xml"), opts)

	assert.Equal(t, "-f:f32,2,44100 -G:jack,ecasound,notransport -i:jack -o:jack\n\n-eli:1049,0.2,0.8\n", got)
}

func TestExport_Include(t *testing.T) {
	opts := ecaplugin.ExportOptions{
		Options: ecasound.Options{Include: []int{1, 0}, NoDescription: true},
	}
	got := export(t, "testdata/rack.xml", opts)

	// Disabled plugins are dropped even when explicitly included.
	assert.Equal(t, "-eli:1049,0.2,0.8\n", got)
}

func TestExport_TrackNotFound(t *testing.T) {
	session, err := ecaplugin.Open("testdata/mix3.ardour")
	require.NoError(t, err)

	err = ecaplugin.Export(&bytes.Buffer{}, session, ecaplugin.ExportOptions{TrackName: "Drums"})

	var tnf *ecaplugin.TrackNotFoundError
	require.ErrorAs(t, err, &tnf)
	assert.Equal(t, "Drums", tnf.Name)
}

func TestExport_IndexOutOfRange(t *testing.T) {
	session, err := ecaplugin.Open("testdata/mix3.ardour")
	require.NoError(t, err)

	opts := ecaplugin.ExportOptions{
		Options:   ecasound.Options{Exclude: []int{7}},
		TrackName: "Vocals",
	}
	err = ecaplugin.Export(&bytes.Buffer{}, session, opts)

	var ioe *ecaplugin.IndexOutOfRangeError
	require.ErrorAs(t, err, &ioe)
	assert.Equal(t, 7, ioe.Index)
	assert.True(t, strings.HasPrefix(err.Error(), "testdata/mix3.ardour: "))
}

func TestExportOptions_Validate(t *testing.T) {
	tests := []struct {
		name   string
		opts   ecaplugin.ExportOptions
		format ecaplugin.Format
		want   error
	}{
		{
			name:   "whole session",
			format: ecaplugin.FormatArdour3,
		},
		{
			name:   "chain setup without track",
			opts:   ecaplugin.ExportOptions{Options: ecasound.Options{ChainSetup: true}},
			format: ecaplugin.FormatArdour2,
			want:   ecaplugin.ErrChainSetupNeedsTrack,
		},
		{
			name:   "chain setup with track",
			opts:   ecaplugin.ExportOptions{Options: ecasound.Options{ChainSetup: true}, TrackName: "Bass"},
			format: ecaplugin.FormatArdour3,
		},
		{
			name:   "chain setup for rack",
			opts:   ecaplugin.ExportOptions{Options: ecasound.Options{ChainSetup: true}},
			format: ecaplugin.FormatJackRack,
		},
		{
			name: "include and exclude",
			opts: ecaplugin.ExportOptions{
				Options:   ecasound.Options{Include: []int{0}, Exclude: []int{1}},
				TrackName: "Bass",
			},
			format: ecaplugin.FormatArdour3,
			want:   ecaplugin.ErrIncludeExclude,
		},
		{
			name: "include and exclude for rack",
			opts: ecaplugin.ExportOptions{
				Options: ecasound.Options{Include: []int{0}, Exclude: []int{1}},
			},
			format: ecaplugin.FormatJackRack,
			want:   ecaplugin.ErrIncludeExclude,
		},
		{
			name:   "indices without track",
			opts:   ecaplugin.ExportOptions{Options: ecasound.Options{Exclude: []int{0}}},
			format: ecaplugin.FormatArdour3,
			want:   ecaplugin.ErrIndicesNeedTrack,
		},
		{
			name:   "indices for rack",
			opts:   ecaplugin.ExportOptions{Options: ecasound.Options{Include: []int{2}}},
			format: ecaplugin.FormatJackRack,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate(tt.format)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
