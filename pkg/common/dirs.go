package common

import (
	"fmt"
	"os"
)

// CreateDirectories creates every path (and its parents). Existing directories are
// left untouched. With verbose set, each directory is logged.
func (u *Utils) CreateDirectories(paths []string, verbose bool) error {
	for _, path := range paths {
		if err := os.MkdirAll(path, 0755); err != nil {
			return err
		}
		if verbose {
			u.logger.Info(fmt.Sprintf("created directory at: %s", path))
		}
	}
	return nil
}
