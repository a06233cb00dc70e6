package main

import (
	"fmt"

	"github.com/aretw0/datagate/pkg/common"
	"github.com/spf13/cobra"
)

var sizeCmd = &cobra.Command{
	Use:   "size <path>...",
	Short: "Print the approximate size of files in kilobytes",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, path := range args {
			size, err := common.FileSizeKB(path)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", size, path)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sizeCmd)
}
