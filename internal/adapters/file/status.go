package file

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/datagate/pkg/domain"
	"github.com/aretw0/datagate/pkg/ports"
)

const statusPrefix = "Validation status: "

// StatusStore implements ports.StatusStore on the local filesystem.
// The zero value is ready to use.
type StatusStore struct{}

// NewStatusStore creates a filesystem status store.
func NewStatusStore() *StatusStore {
	return &StatusStore{}
}

// Write replaces the status file at path with the rendered report.
// The parent directory must already exist. The new content is written to a temp file in
// the same directory and renamed over the destination, so readers never see a partial
// report. A symlinked path is written through: the link stays and its target is
// replaced. Errors from the filesystem are returned as they are.
func (s *StatusStore) Write(path string, report *domain.Report) error {
	path, err := resolveTarget(path)
	if err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(path), ".status-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmpFile.Name()

	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmpFile.WriteString(report.StatusText()); err != nil {
		return err
	}
	if err := tmpFile.Sync(); err != nil {
		return err
	}
	if err := tmpFile.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}

// resolveTarget follows symlinks in path. A dangling final link resolves to the
// file it names, so the first write creates it.
func resolveTarget(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err == nil {
		return resolved, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return "", err
	}

	link, lerr := os.Readlink(path)
	if lerr != nil {
		return path, nil
	}
	if !filepath.IsAbs(link) {
		link = filepath.Join(filepath.Dir(path), link)
	}
	return link, nil
}

// Read parses a status file written by Write.
func (s *StatusStore) Read(path string) (*ports.StatusRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.ErrStatusNotFound
		}
		return nil, err
	}
	defer f.Close()

	rec := &ports.StatusRecord{Path: path}
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("status file %s is empty", path)
	}

	line := scanner.Text()
	if !strings.HasPrefix(line, statusPrefix) {
		return nil, fmt.Errorf("status file %s: unexpected first line %q", path, line)
	}
	switch strings.TrimSpace(strings.TrimPrefix(line, statusPrefix)) {
	case "True":
		rec.Valid = true
	case "False":
		rec.Valid = false
	default:
		return nil, fmt.Errorf("status file %s: unexpected status %q", path, line)
	}

	for scanner.Scan() {
		if msg := scanner.Text(); msg != "" {
			rec.Messages = append(rec.Messages, msg)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return rec, nil
}
