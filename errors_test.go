package ecaplugin

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestUnsupportedFormatError_Error(t *testing.T) {
	err := &UnsupportedFormatError{
		Path:   "notes.xml",
		Reason: "input file format not recognized",
	}

	msg := err.Error()
	if !strings.Contains(msg, "notes.xml") {
		t.Errorf("error should contain path, got: %s", msg)
	}
	if !strings.Contains(msg, "input file format not recognized") {
		t.Errorf("error should contain reason, got: %s", msg)
	}
}

func TestMalformedSessionError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *MalformedSessionError
		contains []string
	}{
		{
			name: "with element",
			err: &MalformedSessionError{
				Path:    "mix.ardour",
				Element: "/Session/Routes/Route",
				Reason:  `missing element "IO"`,
			},
			contains: []string{"mix.ardour", "/Session/Routes/Route", `missing element "IO"`},
		},
		{
			name: "without element",
			err: &MalformedSessionError{
				Path:   "rack.xml",
				Reason: "invalid XML",
			},
			contains: []string{"rack.xml", "invalid XML"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, substr := range tt.contains {
				if !strings.Contains(msg, substr) {
					t.Errorf("error message %q should contain %q", msg, substr)
				}
			}
		})
	}
}

func TestTrackNotFoundError_Error(t *testing.T) {
	err := &TrackNotFoundError{Path: "mix.ardour", Name: "Drums"}

	want := `mix.ardour: no track named "Drums"`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestIndexOutOfRangeError_Error(t *testing.T) {
	err := &IndexOutOfRangeError{Index: 4, Count: 2}

	msg := err.Error()
	if !strings.Contains(msg, "4") || !strings.Contains(msg, "2 plugins") {
		t.Errorf("error should name index and count, got: %s", msg)
	}
}

func TestErrorTypes_AsThroughWrap(t *testing.T) {
	wrapped := fmt.Errorf("extract %s: %w", FormatArdour3,
		&MalformedSessionError{Path: "a.ardour", Reason: "bad"})

	var mse *MalformedSessionError
	if !errors.As(wrapped, &mse) {
		t.Fatal("errors.As should find *MalformedSessionError")
	}
	if mse.Path != "a.ardour" {
		t.Errorf("Path = %q, want a.ardour", mse.Path)
	}

	if !errors.Is(fmt.Errorf("cli: %w", ErrIncludeExclude), ErrIncludeExclude) {
		t.Error("errors.Is should match ErrIncludeExclude")
	}
}
