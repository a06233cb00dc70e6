package metrics

import (
	"context"

	"github.com/aretw0/datagate/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Status label values for datagate_validations_total.
const (
	StatusValid   = "valid"
	StatusInvalid = "invalid"
	StatusAborted = "aborted"
)

// Collector holds the validation metrics.
type Collector struct {
	Validations *prometheus.CounterVec
	Issues      *prometheus.CounterVec
	Duration    prometheus.Histogram
	TableRows   prometheus.Gauge
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		Validations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "datagate_validations_total",
				Help: "Total number of validation runs by outcome",
			},
			[]string{"status"},
		),
		Issues: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "datagate_validation_issues_total",
				Help: "Total number of schema issues found",
			},
			[]string{"kind"},
		),
		Duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "datagate_validation_duration_seconds",
				Help:    "Duration of validation runs",
				Buckets: prometheus.DefBuckets,
			},
		),
		TableRows: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "datagate_table_rows",
				Help: "Row count of the last loaded table",
			},
		),
	}

	for _, col := range []prometheus.Collector{c.Validations, c.Issues, c.Duration, c.TableRows} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Hooks returns validator hooks that record into the collector.
func (c *Collector) Hooks() domain.ValidationHooks {
	return domain.ValidationHooks{
		OnLoaded: func(_ context.Context, e *domain.TableEvent) {
			c.TableRows.Set(float64(e.Rows))
		},
		OnReported: func(_ context.Context, e *domain.ReportEvent) {
			status := StatusInvalid
			if e.Report.Valid {
				status = StatusValid
			}
			c.Validations.WithLabelValues(status).Inc()
			c.Issues.WithLabelValues("missing_column").Add(float64(len(e.Report.Missing)))
			c.Issues.WithLabelValues("dtype_mismatch").Add(float64(len(e.Report.Mismatches)))
			c.Duration.Observe(e.Duration.Seconds())
		},
		OnAborted: func(_ context.Context, e *domain.AbortEvent) {
			c.Validations.WithLabelValues(StatusAborted).Inc()
			c.Duration.Observe(e.Duration.Seconds())
		},
	}
}
