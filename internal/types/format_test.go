package types

import (
	"errors"
	"testing"

	"github.com/beevik/etree"
)

func parseDoc(t *testing.T, xml string) *etree.Document {
	t.Helper()

	doc := etree.NewDocument()
	if err := doc.ReadFromString(xml); err != nil {
		t.Fatalf("ReadFromString() error = %v", err)
	}
	return doc
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name string
		xml  string
		want Format
	}{
		{"ardour 2", `<Session version="2.0.0" sample-rate="48000"/>`, FormatArdour2},
		{"ardour 3", `<Session version="3001" sample-rate="48000"/>`, FormatArdour3},
		{"ardour 6", `<Session version="6000" sample-rate="48000"/>`, FormatArdour3},
		{"jack rack", `<jackrack><channels>2</channels></jackrack>`, FormatJackRack},
		{"declaration before root", `<?xml version="1.0"?><!-- saved --><jackrack/>`, FormatJackRack},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectFormat(parseDoc(t, tt.xml), "test.xml")
			if err != nil {
				t.Fatalf("DetectFormat() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("DetectFormat() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectFormat_Unrecognized(t *testing.T) {
	// Session is only recognized at the top level.
	doc := parseDoc(t, `<Project><Session version="3001"/></Project>`)

	_, err := DetectFormat(doc, "project.xml")
	var ufe *UnsupportedFormatError
	if !errors.As(err, &ufe) {
		t.Fatalf("DetectFormat() error = %v, want *UnsupportedFormatError", err)
	}
	if ufe.Path != "project.xml" {
		t.Errorf("Path = %q, want %q", ufe.Path, "project.xml")
	}
}

func TestDetectFormat_EmptyDocument(t *testing.T) {
	_, err := DetectFormat(etree.NewDocument(), "empty.xml")
	var ufe *UnsupportedFormatError
	if !errors.As(err, &ufe) {
		t.Errorf("DetectFormat() error = %v, want *UnsupportedFormatError", err)
	}
}

func TestDetectFormat_SessionWithoutVersion(t *testing.T) {
	_, err := DetectFormat(parseDoc(t, `<Session sample-rate="44100"/>`), "old.ardour")
	var mse *MalformedSessionError
	if !errors.As(err, &mse) {
		t.Fatalf("DetectFormat() error = %v, want *MalformedSessionError", err)
	}
	if mse.Element != "/Session" {
		t.Errorf("Element = %q, want %q", mse.Element, "/Session")
	}
}

func TestFormat_String(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatArdour2, "Ardour 2"},
		{FormatArdour3, "Ardour 3"},
		{FormatJackRack, "JACK Rack"},
		{FormatUnknown, "Unknown"},
		{Format(42), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("Format(%d).String() = %q, want %q", int(tt.format), got, tt.want)
		}
	}
}

func TestFormat_IsArdour(t *testing.T) {
	if !FormatArdour2.IsArdour() || !FormatArdour3.IsArdour() {
		t.Error("Ardour formats should report IsArdour")
	}
	if FormatJackRack.IsArdour() || FormatUnknown.IsArdour() {
		t.Error("non-Ardour formats should not report IsArdour")
	}
}
