package domain

import (
	"errors"
	"fmt"
)

// ErrEmptyConfig is returned when a configuration document parses to nothing.
var ErrEmptyConfig = errors.New("yaml file is empty")

// ErrStatusNotFound is returned when no status file has been written yet.
var ErrStatusNotFound = errors.New("status file not found")

// DataLoadError is returned when the dataset cannot be read or parsed.
// The validation run is aborted and no status file is written.
type DataLoadError struct {
	Path string
	Err  error
}

func (e *DataLoadError) Error() string {
	return fmt.Sprintf("failed to load data from %s: %v", e.Path, e.Err)
}

func (e *DataLoadError) Unwrap() error {
	return e.Err
}
