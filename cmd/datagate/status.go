package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/datagate/pkg/domain"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the outcome of the last validation run",
	RunE: func(cmd *cobra.Command, args []string) error {
		fromRedis, _ := cmd.Flags().GetBool("redis")

		gate, err := newGate(cmd)
		if err != nil {
			return err
		}
		defer gate.Close()

		out := cmd.OutOrStdout()
		if fromRedis {
			report, err := gate.LatestMirrored(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(out, report.StatusText())
			fmt.Fprintf(out, "checked at %s\n", report.CheckedAt.Format("2006-01-02 15:04:05"))
			return nil
		}

		rec, err := gate.Status()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Validation status: %s\n", domain.FormatStatus(rec.Valid))
		if len(rec.Messages) > 0 {
			fmt.Fprintln(out, strings.Join(rec.Messages, "\n"))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().Bool("redis", false, "Read the latest report mirrored to Redis instead of the status file")
}
