package types

import (
	"strings"

	"github.com/beevik/etree"
)

// Format represents the detected session document format.
type Format int

const (
	// FormatUnknown represents an unknown or unsupported document.
	FormatUnknown Format = iota // Unknown
	// FormatArdour2 represents Ardour 2.x session files.
	FormatArdour2 // Ardour 2
	// FormatArdour3 represents Ardour 3.x and later session files.
	FormatArdour3 // Ardour 3
	// FormatJackRack represents JACK Rack rack files.
	FormatJackRack // JACK Rack
)

// String returns the human-readable format name.
func (f Format) String() string {
	switch f {
	case FormatArdour2:
		return "Ardour 2"
	case FormatArdour3:
		return "Ardour 3"
	case FormatJackRack:
		return "JACK Rack"
	case FormatUnknown:
		return "Unknown"
	default:
		return "Unknown"
	}
}

// IsArdour reports whether f is one of the Ardour session dialects.
func (f Format) IsArdour() bool {
	return f == FormatArdour2 || f == FormatArdour3
}

// DetectFormat determines the document format by examining its top-level
// element.
//
// A <Session> root is an Ardour session; its version attribute selects the
// dialect ("2..." is Ardour 2, anything else Ardour 3). A <jackrack> root is
// a JACK Rack file. Only the root element is inspected.
func DetectFormat(doc *etree.Document, path string) (Format, error) {
	root := doc.Root()
	if root == nil {
		return FormatUnknown, &UnsupportedFormatError{
			Path:   path,
			Reason: "document has no root element",
		}
	}

	switch root.Tag {
	case "Session":
		version := root.SelectAttr("version")
		if version == nil {
			return FormatUnknown, &MalformedSessionError{
				Path:    path,
				Element: root.GetPath(),
				Reason:  `missing attribute "version"`,
			}
		}
		if strings.HasPrefix(version.Value, "2") {
			return FormatArdour2, nil
		}
		return FormatArdour3, nil
	case "jackrack":
		return FormatJackRack, nil
	}

	return FormatUnknown, &UnsupportedFormatError{
		Path:   path,
		Reason: "input file format not recognized",
	}
}
