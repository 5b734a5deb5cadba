// Package main provides the ecaplugin command-line tool.
//
// Usage:
//
//	ecaplugin [flags] FILE...
//	ecaplugin list [--output table|yaml|json] FILE...
//	ecaplugin version
//
// ecaplugin reads Ardour sessions and JACK Rack files and prints their
// LADSPA and LV2 plugin chains as ecasound options.
//
// Configuration:
//
//	Defaults for the output layout are read from
//	$XDG_CONFIG_HOME/ecaplugin/config.yaml (or --config).
package main

import (
	"fmt"
	"os"

	"github.com/ecatools/ecaplugin/cmd/ecaplugin/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
