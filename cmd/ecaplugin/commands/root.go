// Package commands implements the ecaplugin command tree.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/ecatools/ecaplugin"
	"github.com/ecatools/ecaplugin/internal/config"
)

// rootOptions holds the global flags and the state derived from them.
type rootOptions struct {
	cfgFile string
	verbose bool

	chainSetup      bool
	clientName      string
	singleLine      bool
	noDescription   bool
	includeDisabled bool
	track           string
	include         []int
	exclude         []int

	cfg    *config.Config
	logger *slog.Logger
}

// NewRootCommand returns the ecaplugin command with its subcommands.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "ecaplugin [flags] FILE...",
		Short: "Export Ardour and JACK Rack plugin chains as ecasound options",
		Long: `ecaplugin reads the LADSPA and LV2 plugins of Ardour sessions (2.x and
later) and JACK Rack files and prints them as ecasound -eli/-elv2 options.

Examples:
  # All tracks of a session
  ecaplugin mix.ardour

  # One track as a complete chain setup with JACK client "fx"
  ecaplugin -c -C fx -t Vocals mix.ardour > vocals.ecs

  # Plugins 0 and 2 of a rack on one line
  ecaplugin -s -i 0 -i 2 delay.rack
`,
		Args:              cobra.MinimumNArgs(1),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: opts.init,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd.Context(), cmd, args)
		},
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/ecaplugin/config.yaml)")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging on stderr")

	f := rootCmd.Flags()
	f.BoolVarP(&opts.chainSetup, "chain-setup", "c", false, "output complete ecasound chain setup (.ecs)")
	f.StringVarP(&opts.clientName, "client-name", "C", ecaplugin.DefaultClientName, "JACK client name of the chain setup")
	f.BoolVarP(&opts.singleLine, "single-line", "s", false, "output on single line (implies -n)")
	f.BoolVarP(&opts.noDescription, "no-description", "n", false, "do not output plugin descriptions as comments")
	f.StringVarP(&opts.track, "track", "t", "", "name of single track/bus to be exported")
	f.IntSliceVarP(&opts.include, "include", "i", nil, "indices of plugins to be exported (zero-based, default: all)")
	f.IntSliceVarP(&opts.exclude, "exclude", "e", nil, "indices of plugins not to be exported (zero-based)")
	f.BoolVarP(&opts.includeDisabled, "include-disabled", "d", false, "include disabled plugins as comments")

	rootCmd.AddCommand(newListCommand(opts))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// Execute runs the root command until completion or interrupt.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return NewRootCommand().ExecuteContext(ctx)
}

// init configures logging and loads the config file.
func (o *rootOptions) init(cmd *cobra.Command, _ []string) error {
	logLevel := slog.LevelInfo
	if o.verbose {
		logLevel = slog.LevelDebug
	}
	o.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: logLevel,
	}))

	cfg, err := config.Load(o.cfgFile)
	if err != nil {
		return err
	}
	o.cfg = cfg
	if path := cfg.Path(); path != "" {
		o.logger.Debug("loaded config", "path", path)
	}
	return nil
}

// exportOptions merges the config file with the flags given explicitly.
func (o *rootOptions) exportOptions(cmd *cobra.Command) ecaplugin.ExportOptions {
	opts := o.cfg.Options()
	flags := cmd.Flags()

	if flags.Changed("client-name") {
		opts.ClientName = o.clientName
	}
	if flags.Changed("single-line") {
		opts.SingleLine = o.singleLine
	}
	if flags.Changed("no-description") {
		opts.NoDescription = o.noDescription
	}
	if flags.Changed("include-disabled") {
		opts.IncludeDisabled = o.includeDisabled
	}
	opts.ChainSetup = o.chainSetup
	opts.Include = o.include
	opts.Exclude = o.exclude

	return ecaplugin.ExportOptions{
		Options:   opts,
		TrackName: o.track,
	}
}

// load reads all files concurrently and checks the export options against
// each detected format before anything is extracted.
func (o *rootOptions) load(ctx context.Context, paths []string, export *ecaplugin.ExportOptions) ([]*ecaplugin.Document, error) {
	docs, err := ecaplugin.LoadMany(ctx, paths, ecaplugin.WithLogger(o.logger))
	if err != nil {
		return nil, err
	}

	if export != nil {
		for _, doc := range docs {
			if err := export.Validate(doc.Format); err != nil {
				return nil, err
			}
		}
	}
	return docs, nil
}

func (o *rootOptions) run(ctx context.Context, cmd *cobra.Command, paths []string) error {
	export := o.exportOptions(cmd)

	docs, err := o.load(ctx, paths, &export)
	if err != nil {
		return err
	}

	return exportAll(cmd.OutOrStdout(), docs, export)
}

// exportAll writes the export of each document, separated by blank lines.
func exportAll(w io.Writer, docs []*ecaplugin.Document, opts ecaplugin.ExportOptions) error {
	for i, doc := range docs {
		session, err := doc.Extract()
		if err != nil {
			return err
		}

		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := ecaplugin.Export(w, session, opts); err != nil {
			return err
		}
	}
	return nil
}
