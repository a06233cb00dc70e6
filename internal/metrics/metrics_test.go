package metrics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aretw0/datagate/pkg/domain"
	"github.com/aretw0/datagate/pkg/schema"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_Hooks(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := New(reg)
	require.NoError(t, err)

	hooks := c.Hooks()
	ctx := context.Background()

	hooks.OnLoaded(ctx, &domain.TableEvent{Path: "d.csv", Rows: 42, Columns: 3})
	hooks.OnReported(ctx, &domain.ReportEvent{
		Report:   domain.NewReport("d.csv", 42, nil, nil),
		Duration: 10 * time.Millisecond,
	})
	hooks.OnReported(ctx, &domain.ReportEvent{
		Report: domain.NewReport("d.csv", 42, []string{"a", "b"}, []schema.Mismatch{
			{Column: "c", Expected: "object", Actual: "int64"},
		}),
		Duration: 10 * time.Millisecond,
	})
	hooks.OnAborted(ctx, &domain.AbortEvent{Path: "d.csv", Err: errors.New("boom")})

	assert.Equal(t, 42.0, testutil.ToFloat64(c.TableRows))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Validations.WithLabelValues(StatusValid)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Validations.WithLabelValues(StatusInvalid)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Validations.WithLabelValues(StatusAborted)))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.Issues.WithLabelValues("missing_column")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Issues.WithLabelValues("dtype_mismatch")))
	assert.Equal(t, 1, testutil.CollectAndCount(c.Duration))
}

func TestNew_DoubleRegistrationFails(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := New(reg)
	require.NoError(t, err)

	_, err = New(reg)
	assert.Error(t, err)
}
