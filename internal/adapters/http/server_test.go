package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/aretw0/datagate/pkg/domain"
	"github.com/aretw0/datagate/pkg/ports"
	"github.com/aretw0/datagate/pkg/schema"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGate struct {
	report *domain.Report
	runErr error
	status *ports.StatusRecord
	stErr  error
}

func (g *fakeGate) Run(ctx context.Context) (*domain.Report, error) {
	return g.report, g.runErr
}

func (g *fakeGate) Status() (*ports.StatusRecord, error) {
	return g.status, g.stErr
}

func serve(t *testing.T, h http.Handler, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(method, path, nil)
	require.NoError(t, err)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestGetHealth(t *testing.T) {
	handler := NewHandler(&fakeGate{}, prometheus.NewRegistry(), nil)

	rr := serve(t, handler, "GET", "/health")
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
}

func TestGetInfo(t *testing.T) {
	handler := NewHandler(&fakeGate{}, prometheus.NewRegistry(), nil)

	rr := serve(t, handler, "GET", "/info")
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "datagate-http", resp["app"])
	assert.NotEmpty(t, resp["version"])
	assert.Equal(t, APIVersion, resp["api_version"])
}

func TestPostValidate(t *testing.T) {
	t.Run("invalid dataset is still 200", func(t *testing.T) {
		gate := &fakeGate{report: domain.NewReport("d.csv", 2, []string{"a"}, []schema.Mismatch{
			{Column: "c", Expected: "object", Actual: "int64"},
		})}
		rr := serve(t, NewHandler(gate, prometheus.NewRegistry(), nil), "POST", "/validate")
		assert.Equal(t, http.StatusOK, rr.Code)

		var resp struct {
			Valid    bool     `json:"valid"`
			Missing  []string `json:"missing"`
			Messages []string `json:"messages"`
			Rows     int      `json:"rows"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.False(t, resp.Valid)
		assert.Equal(t, []string{"a"}, resp.Missing)
		assert.Len(t, resp.Messages, 2)
		assert.Equal(t, 2, resp.Rows)
	})

	t.Run("valid dataset has empty messages", func(t *testing.T) {
		gate := &fakeGate{report: domain.NewReport("d.csv", 2, nil, nil)}
		rr := serve(t, NewHandler(gate, prometheus.NewRegistry(), nil), "POST", "/validate")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"messages":[]`)
	})

	t.Run("load error is 422", func(t *testing.T) {
		gate := &fakeGate{runErr: &domain.DataLoadError{Path: "d.csv", Err: os.ErrNotExist}}
		rr := serve(t, NewHandler(gate, prometheus.NewRegistry(), nil), "POST", "/validate")
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		assert.Contains(t, rr.Body.String(), "d.csv")
	})

	t.Run("write error is 500", func(t *testing.T) {
		gate := &fakeGate{runErr: errors.New("disk full")}
		rr := serve(t, NewHandler(gate, prometheus.NewRegistry(), nil), "POST", "/validate")
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})

	t.Run("GET is not allowed", func(t *testing.T) {
		rr := serve(t, NewHandler(&fakeGate{}, prometheus.NewRegistry(), nil), "GET", "/validate")
		assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	})
}

func TestGetStatus(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		gate := &fakeGate{status: &ports.StatusRecord{Valid: true}}
		rr := serve(t, NewHandler(gate, prometheus.NewRegistry(), nil), "GET", "/status")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"valid":true,"messages":[]}`, rr.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		gate := &fakeGate{stErr: domain.ErrStatusNotFound}
		rr := serve(t, NewHandler(gate, prometheus.NewRegistry(), nil), "GET", "/status")
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestGetMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "datagate_test_total", Help: "test"})
	reg.MustRegister(counter)
	counter.Inc()

	rr := serve(t, NewHandler(&fakeGate{}, reg, nil), "GET", "/metrics")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "datagate_test_total 1")
}
