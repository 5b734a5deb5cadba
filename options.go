package ecaplugin

import "log/slog"

// Option configures behavior when loading session files.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	session, err := ecaplugin.Open("mix.ardour",
//	    ecaplugin.WithLogger(slog.Default()),
//	    ecaplugin.WithMaxInputSize(64<<20),
//	)
type Option func(*openOptions)

// openOptions holds configuration for loading files.
type openOptions struct {
	logger         *slog.Logger
	ignoreWarnings bool  // Drop notes about skipped units
	maxInputSize   int64 // Maximum decompressed size in bytes (0 = no limit)
}

// defaultOptions returns the default configuration.
func defaultOptions() *openOptions {
	return &openOptions{
		logger:         slog.New(slog.DiscardHandler),
		ignoreWarnings: false,
		maxInputSize:   0,
	}
}

func applyOptions(opts []Option) *openOptions {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// WithLogger sets the logger used for debug output during loading and
// extraction. By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(o *openOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithIgnoreWarnings drops the notes about skipped units.
//
// By default every insert or processor that is neither LADSPA nor LV2 is
// recorded in Session.Warnings. Ardour 3 sessions contain several such
// processors per route (amp, meter, main outs).
func WithIgnoreWarnings() Option {
	return func(o *openOptions) {
		o.ignoreWarnings = true
	}
}

// WithMaxInputSize sets a maximum size for the decompressed document.
//
// Inputs larger than this fail with *InputTooLargeError. This protects
// against gzip bombs when reading untrusted files.
//
// Default is 0 (no limit).
func WithMaxInputSize(bytes int64) Option {
	return func(o *openOptions) {
		o.maxInputSize = bytes
	}
}
