package commands

import (
	"github.com/spf13/cobra"

	"github.com/ecatools/ecaplugin"
)

func newListCommand(root *rootOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "list FILE...",
		Short: "List tracks and plugins of session files",
		Long: `List the tracks of each session with their plugins, channel counts and
sample rates. Units that are not LADSPA or LV2 plugins are reported as
skipped.

Examples:
  ecaplugin list mix.ardour
  ecaplugin list --output yaml mix.ardour rack.jackrack`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			docs, err := root.load(cmd.Context(), args, nil)
			if err != nil {
				return err
			}

			sessions := make([]*ecaplugin.Session, 0, len(docs))
			for _, doc := range docs {
				session, err := doc.Extract()
				if err != nil {
					return err
				}
				sessions = append(sessions, session)
			}

			return writeReports(cmd.OutOrStdout(), sessions, OutputFormat(output))
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", string(FormatTable), "output format (table, yaml, json)")

	return cmd
}
