package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ecatools/ecaplugin"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := ecaplugin.GetVersionInfo()
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "ecaplugin %s (commit: %s, built: %s, %s)\n",
				info.Version, info.GitCommit, info.BuildTime, info.GoVersion)
			return err
		},
	}
}
