package ports

import (
	"context"

	"github.com/aretw0/datagate/pkg/domain"
)

// StatusRecord is a status file read back from storage.
type StatusRecord struct {
	Path     string
	Valid    bool
	Messages []string
}

// StatusStore persists the status file of a validation run.
type StatusStore interface {
	// Write overwrites the status file at path with the report.
	Write(path string, report *domain.Report) error

	// Read parses a previously written status file.
	// Returns domain.ErrStatusNotFound if the file does not exist.
	Read(path string) (*StatusRecord, error)
}

// ReportSink publishes finished reports to downstream consumers.
type ReportSink interface {
	Publish(ctx context.Context, report *domain.Report) error
}
