package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// DefaultLogDir is where NewRunLogger writes when no directory is given.
const DefaultLogDir = "logs"

// LogFileName is the run log file created inside the log directory.
const LogFileName = "running_logs.log"

// New creates a configured application logger.
// It writes to Stderr (to separate from Stdout flow UI/JSON-RPC).
// It standardizes common keys (e.g., "error" -> "err").
func New(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: standardizeKeys,
	}))
}

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// NewRunLogger creates the run logger used by the CLI.
// It ensures dir exists, appends to dir/running_logs.log and mirrors every record to
// Stdout in the bracket format. The returned func closes the log file.
func NewRunLogger(dir string, level slog.Level) (*slog.Logger, func() error, error) {
	return NewRunLoggerTo(dir, level, os.Stdout)
}

// NewRunLoggerTo is NewRunLogger with an explicit console writer.
func NewRunLoggerTo(dir string, level slog.Level, console io.Writer) (*slog.Logger, func() error, error) {
	if dir == "" {
		dir = DefaultLogDir
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, nil, err
	}

	f, err := os.OpenFile(filepath.Join(dir, LogFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, err
	}

	w := io.Writer(f)
	if console != nil {
		w = io.MultiWriter(f, console)
	}

	logger := slog.New(NewBracketHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: standardizeKeys,
	}))
	return logger, f.Close, nil
}

func standardizeKeys(groups []string, a slog.Attr) slog.Attr {
	// Standardize 'error' key to 'err'
	if a.Key == "error" {
		a.Key = "err"
	}
	return a
}
