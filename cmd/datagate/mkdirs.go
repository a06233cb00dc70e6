package main

import (
	"github.com/aretw0/datagate/pkg/common"
	"github.com/spf13/cobra"
)

var mkdirsCmd = &cobra.Command{
	Use:   "mkdirs <dir>...",
	Short: "Create directories, including missing parents",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		quiet, _ := cmd.Flags().GetBool("quiet")
		return common.New(logger).CreateDirectories(args, !quiet)
	},
}

func init() {
	rootCmd.AddCommand(mkdirsCmd)
	mkdirsCmd.Flags().BoolP("quiet", "q", false, "Do not log each created directory")
}
