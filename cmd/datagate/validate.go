package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/datagate"
	"github.com/aretw0/datagate/internal/presentation/tui"
	"github.com/aretw0/datagate/pkg/domain"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configured dataset against the schema",
	Long: `Loads the dataset, checks that every schema column is present with the
declared type and writes the status file. Exits with status 1 when the dataset
does not conform.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		plain, _ := cmd.Flags().GetBool("plain")
		dryRun, _ := cmd.Flags().GetBool("dry-run")

		var opts []datagate.Option
		if dryRun {
			opts = append(opts, datagate.WithDryRun())
		}

		gate, err := newGate(cmd, opts...)
		if err != nil {
			return err
		}
		defer gate.Close()

		report, err := gate.Run(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if !plain && isTerminal(out) {
			renderReport(out, report)
		} else {
			fmt.Fprintln(out, strings.TrimSuffix(report.StatusText(), "\n"))
		}

		if !report.Valid {
			return &exitError{code: 1}
		}
		return nil
	},
}

func renderReport(w io.Writer, report *domain.Report) {
	tui.PrintBanner(w, report.Valid)
	rendered, err := tui.NewRenderer()(tui.ReportMarkdown(report))
	if err != nil {
		logger.Warn("markdown render failed", "error", err)
		rendered = tui.ReportMarkdown(report)
	}
	fmt.Fprint(w, rendered)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().Bool("plain", false, "Print the status file body instead of a rendered report")
	validateCmd.Flags().Bool("dry-run", false, "Validate without writing the status file, creating artifact directories or mirroring to Redis")
}
