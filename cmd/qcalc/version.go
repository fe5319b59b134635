package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the release version, overridable with -ldflags "-X main.Version=...".
var Version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of qcalc",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "qcalc version %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
