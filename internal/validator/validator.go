package validator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/datagate/internal/adapters/file"
	"github.com/aretw0/datagate/internal/logging"
	"github.com/aretw0/datagate/pkg/domain"
	"github.com/aretw0/datagate/pkg/ports"
	"github.com/aretw0/datagate/pkg/schema"
	"github.com/aretw0/datagate/pkg/table"
)

// Validator checks one dataset against one schema and records the outcome.
type Validator struct {
	config domain.ValidationConfig
	loader ports.TableLoader
	store  ports.StatusStore
	sinks  []ports.ReportSink
	hooks  domain.ValidationHooks
	logger *slog.Logger
}

// Option configures a Validator.
type Option func(*Validator)

// WithLogger sets the logger. The default discards output.
func WithLogger(logger *slog.Logger) Option {
	return func(v *Validator) {
		v.logger = logger
	}
}

// WithStatusStore replaces the filesystem status store.
func WithStatusStore(store ports.StatusStore) Option {
	return func(v *Validator) {
		v.store = store
	}
}

// WithSinks publishes every written report to the given sinks.
func WithSinks(sinks ...ports.ReportSink) Option {
	return func(v *Validator) {
		v.sinks = append(v.sinks, sinks...)
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks domain.ValidationHooks) Option {
	return func(v *Validator) {
		v.hooks = hooks
	}
}

// New creates a Validator for cfg. A nil loader reads CSV files.
func New(cfg domain.ValidationConfig, loader ports.TableLoader, opts ...Option) *Validator {
	if loader == nil {
		loader = table.CSVLoader{}
	}
	v := &Validator{
		config: cfg,
		loader: loader,
		store:  file.NewStatusStore(),
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(v)
	}
	v.logger = v.logger.With(logging.ModuleKey, "validator")
	return v
}

// Config returns the validation record the validator was built with.
func (v *Validator) Config() domain.ValidationConfig {
	return v.config
}

// Validate runs the checks and reports whether the dataset conforms to the schema.
// A dataset that does not conform is not an error: Validate returns false, nil.
func (v *Validator) Validate(ctx context.Context) (bool, error) {
	report, err := v.Run(ctx)
	if report == nil {
		return false, err
	}
	return report.Valid, err
}

// Run performs the validation and returns the full report.
//
// A load failure returns a *domain.DataLoadError and leaves the status file untouched.
// Once the table is loaded the status file is always overwritten. Errors from writing it
// or from publishing to sinks are returned alongside the report.
func (v *Validator) Run(ctx context.Context) (*domain.Report, error) {
	start := time.Now()

	tbl, err := v.loader.Load(v.config.DataPath)
	if err != nil {
		loadErr := &domain.DataLoadError{Path: v.config.DataPath, Err: err}
		v.abort(ctx, loadErr, start)
		return nil, loadErr
	}
	v.logger.Info(fmt.Sprintf("Data loaded from: %s", v.config.DataPath))
	if v.hooks.OnLoaded != nil {
		v.hooks.OnLoaded(ctx, &domain.TableEvent{
			Path:    v.config.DataPath,
			Rows:    tbl.Rows,
			Columns: len(tbl.Columns),
		})
	}

	diff := schema.Compare(v.config.Schema, tbl.Dtypes())
	report := domain.NewReport(v.config.DataPath, tbl.Rows, diff.Missing, diff.Mismatches)

	if msg := report.MissingMessage(); msg != "" {
		v.logger.Error(msg)
	}
	if msg := report.MismatchMessage(); msg != "" {
		v.logger.Error(msg)
	}

	if err := v.store.Write(v.config.StatusPath, report); err != nil {
		v.abort(ctx, err, start)
		return report, err
	}

	if report.Valid {
		v.logger.Info("All validations passed successfully.")
	}

	if v.hooks.OnReported != nil {
		v.hooks.OnReported(ctx, &domain.ReportEvent{Report: report, Duration: time.Since(start)})
	}

	for _, sink := range v.sinks {
		if err := sink.Publish(ctx, report); err != nil {
			v.logger.Error("failed to publish report", "error", err)
			return report, fmt.Errorf("publish report: %w", err)
		}
	}

	return report, nil
}

func (v *Validator) abort(ctx context.Context, err error, start time.Time) {
	v.logger.Error("Exception occurred during validation", "error", err)
	if v.hooks.OnAborted != nil {
		v.hooks.OnAborted(ctx, &domain.AbortEvent{
			Path:     v.config.DataPath,
			Err:      err,
			Duration: time.Since(start),
		})
	}
}
