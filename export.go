package ecaplugin

import (
	"fmt"
	"io"

	"github.com/ecatools/ecaplugin/ecasound"
)

// DefaultClientName is the JACK client name used in chain setups when none
// is configured.
const DefaultClientName = ecasound.DefaultClientName

// ExportOptions selects what part of a session is exported and how the
// ecasound options are laid out.
type ExportOptions struct {
	ecasound.Options

	// TrackName restricts the export to one track of an Ardour session.
	// It is ignored for JACK Rack files, which hold a single track.
	TrackName string
}

// singleTrack reports whether the export covers exactly one track.
func (o ExportOptions) singleTrack(format Format) bool {
	return !format.IsArdour() || o.TrackName != ""
}

// Validate checks the options against the format of the session being
// exported. Chain setups and plugin indices only make sense for a single
// track, and inclusion and exclusion cannot be combined.
func (o ExportOptions) Validate(format Format) error {
	single := o.singleTrack(format)

	if o.ChainSetup && !single {
		return ErrChainSetupNeedsTrack
	}
	if len(o.Include) > 0 && len(o.Exclude) > 0 {
		return ErrIncludeExclude
	}
	if (len(o.Include) > 0 || len(o.Exclude) > 0) && !single {
		return ErrIndicesNeedTrack
	}
	return nil
}

// Export writes the ecasound rendering of a session to w.
//
// A JACK Rack file renders its only track. An Ardour session renders the
// track named by TrackName, or every track under a name heading when
// TrackName is empty. The output ends with a newline.
func Export(w io.Writer, session *Session, opts ExportOptions) error {
	if err := opts.Validate(session.Format); err != nil {
		return err
	}

	f := ecasound.NewFormatter(opts.Options)

	var (
		text string
		err  error
	)
	switch {
	case session.Format == FormatJackRack:
		if len(session.Tracks) == 0 {
			return &MalformedSessionError{Path: session.Path, Reason: "rack has no track"}
		}
		text, err = f.FormatTrack(session.Tracks[0])
	case opts.TrackName != "":
		track, ok := session.FindTrack(opts.TrackName)
		if !ok {
			return &TrackNotFoundError{Path: session.Path, Name: opts.TrackName}
		}
		text, err = f.FormatTrack(track)
	default:
		text, err = f.FormatSession(session.Tracks)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", session.Path, err)
	}

	_, err = fmt.Fprintln(w, text)
	return err
}
