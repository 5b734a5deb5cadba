// Package ecaplugin extracts LADSPA and LV2 plugin chains from audio
// session files and renders them as ecasound command-line options.
//
// Three session formats are understood:
//
//   - Ardour 2 sessions (Session version "2.x"): redirects on each route
//   - Ardour 3 and later sessions: processors on each route
//   - JACK Rack files, usually gzip-compressed: a single rack of plugins
//
// # Quick Start
//
// Printing the plugins of every track:
//
//	session, err := ecaplugin.Open("mix.ardour")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	for _, track := range session.Tracks {
//		fmt.Printf("%s: %d plugins\n", track.Name, len(track.Plugins))
//	}
//
// # Exporting
//
// Export writes ecasound options for a whole session or for one track. A
// single track can also be exported as a complete chain setup that reads
// from and writes to JACK:
//
//	doc, err := ecaplugin.Load("rack.jackrack")
//	if err != nil {
//		return err
//	}
//
//	opts := ecaplugin.ExportOptions{}
//	opts.ChainSetup = true
//	opts.ClientName = "fx"
//	if err := opts.Validate(doc.Format); err != nil {
//		return err
//	}
//
//	session, err := doc.Extract()
//	if err != nil {
//		return err
//	}
//	return ecaplugin.Export(os.Stdout, session, opts)
//
// Load detects the format without extracting anything, so configuration
// mistakes are reported before a large session is walked.
//
// # Concurrent Loading
//
// OpenMany reads several sessions in parallel:
//
//	sessions, err := ecaplugin.OpenMany(ctx, "a.ardour", "b.ardour")
//
// # Error Handling
//
// Errors are typed so callers can react to them:
//
//   - *UnsupportedFormatError: the document is not a known session format
//   - *MalformedSessionError: an expected element or attribute is missing
//   - *InputTooLargeError: the decompressed document exceeds the limit
//   - *TrackNotFoundError: the requested track does not exist
//   - *IndexOutOfRangeError: a plugin index does not address a plugin
//
// Inserts and processors that are neither LADSPA nor LV2 are skipped and
// noted in Session.Warnings.
package ecaplugin
