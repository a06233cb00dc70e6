package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/datagate"
	"github.com/aretw0/datagate/internal/config"
	"github.com/aretw0/datagate/internal/logging"
	"github.com/spf13/cobra"
)

var (
	logger   = logging.NewNop()
	closeLog = func() error { return nil }
)

var rootCmd = &cobra.Command{
	Use:   "datagate",
	Short: "datagate checks a tabular dataset against a declared schema",
	Long: `datagate loads the dataset named in config.yaml, compares its columns and
inferred types with schema.yaml and records the verdict in a status file that
later pipeline stages can read.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logDir, _ := cmd.Flags().GetString("log-dir")
		verbose, _ := cmd.Flags().GetBool("verbose")

		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		// Stdout stays clean for reports and JSON-RPC.
		l, closer, err := logging.NewRunLoggerTo(logDir, level, os.Stderr)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		logger, closeLog = l, closer
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	_ = closeLog()
	if err != nil {
		var ee *exitError
		if !errors.As(err, &ee) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(exitCode(err))
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", config.DefaultConfigPath, "Path to config.yaml")
	rootCmd.PersistentFlags().String("schema", config.DefaultSchemaPath, "Path to schema.yaml")
	rootCmd.PersistentFlags().String("log-dir", logging.DefaultLogDir, "Directory for running_logs.log")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}

// newGate builds a Gate from the persistent flags.
func newGate(cmd *cobra.Command, opts ...datagate.Option) (*datagate.Gate, error) {
	configPath, _ := cmd.Flags().GetString("config")
	schemaPath, _ := cmd.Flags().GetString("schema")

	opts = append([]datagate.Option{datagate.WithLogger(logger)}, opts...)
	return datagate.New(configPath, schemaPath, opts...)
}

// exitError carries a process exit code without an error message.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// exitCode maps a command error to a process exit code.
func exitCode(err error) int {
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return 1
}
