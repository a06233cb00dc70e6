package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var linePattern = regexp.MustCompile(`^\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2},\d{3}: [A-Z]+: [^:]+: .*\]$`)

func TestBracketHandler_Format(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewBracketHandler(&buf, nil)).With(ModuleKey, "validator")

	logger.Info("Data loaded from: data.csv", "rows", 3)

	line := strings.TrimSuffix(buf.String(), "\n")
	assert.Regexp(t, linePattern, line)
	assert.Contains(t, line, ": INFO: validator: Data loaded from: data.csv rows=3]")
}

func TestBracketHandler_DefaultModuleAndLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewBracketHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))

	logger.Info("hidden")
	logger.Error("boom", "error", errors.New("disk full"))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, ": ERROR: main: boom")
}

func TestBracketHandler_ReplaceAttrAndGroups(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewBracketHandler(&buf, &slog.HandlerOptions{ReplaceAttr: standardizeKeys}))

	logger.WithGroup("req").Info("done", "error", errors.New("x"), slog.Int("n", 2))

	out := buf.String()
	assert.Contains(t, out, "req.err=x")
	assert.Contains(t, out, "req.n=2")
}

func TestNewRunLoggerTo(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	var console bytes.Buffer

	logger, closeFn, err := NewRunLoggerTo(dir, slog.LevelInfo, &console)
	require.NoError(t, err)

	logger.With(ModuleKey, "common").Info("created directory at: artifacts")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(filepath.Join(dir, LogFileName))
	require.NoError(t, err)
	assert.Equal(t, console.String(), string(data))
	assert.Contains(t, string(data), ": INFO: common: created directory at: artifacts]")
}

func TestNewRunLoggerTo_Appends(t *testing.T) {
	dir := t.TempDir()

	for _, msg := range []string{"first", "second"} {
		logger, closeFn, err := NewRunLoggerTo(dir, slog.LevelInfo, nil)
		require.NoError(t, err)
		logger.Info(msg)
		require.NoError(t, closeFn())
	}

	data, err := os.ReadFile(filepath.Join(dir, LogFileName))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "first")
	assert.Contains(t, lines[1], "second")
}

func TestNewNop(t *testing.T) {
	assert.NotPanics(t, func() { NewNop().Info("ignored") })
}
