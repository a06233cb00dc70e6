package domain

import (
	"context"
	"time"
)

// TableEvent describes a successfully loaded table.
type TableEvent struct {
	Path    string
	Rows    int
	Columns int
}

// ReportEvent describes a finished validation run.
type ReportEvent struct {
	Report   *Report
	Duration time.Duration
}

// AbortEvent describes a validation run that failed before a report was written.
type AbortEvent struct {
	Path     string
	Err      error
	Duration time.Duration
}

// ValidationHooks defines callbacks for validator observability.
// Nil callbacks are skipped.
type ValidationHooks struct {
	OnLoaded   func(context.Context, *TableEvent)
	OnReported func(context.Context, *ReportEvent)
	OnAborted  func(context.Context, *AbortEvent)
}

// Merge returns hooks that call h first and then other.
func (h ValidationHooks) Merge(other ValidationHooks) ValidationHooks {
	return ValidationHooks{
		OnLoaded: func(ctx context.Context, e *TableEvent) {
			if h.OnLoaded != nil {
				h.OnLoaded(ctx, e)
			}
			if other.OnLoaded != nil {
				other.OnLoaded(ctx, e)
			}
		},
		OnReported: func(ctx context.Context, e *ReportEvent) {
			if h.OnReported != nil {
				h.OnReported(ctx, e)
			}
			if other.OnReported != nil {
				other.OnReported(ctx, e)
			}
		},
		OnAborted: func(ctx context.Context, e *AbortEvent) {
			if h.OnAborted != nil {
				h.OnAborted(ctx, e)
			}
			if other.OnAborted != nil {
				other.OnAborted(ctx, e)
			}
		},
	}
}
