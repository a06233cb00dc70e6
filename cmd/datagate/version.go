package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/datagate"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of datagate",
	// Skip the run logger so version works from any directory.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "datagate version %s\n", strings.TrimSpace(datagate.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
