package memory_test

import (
	"os"
	"testing"

	"github.com/aretw0/datagate/internal/adapters/memory"
	"github.com/aretw0/datagate/pkg/domain"
	"github.com/aretw0/datagate/pkg/ports"
	"github.com/aretw0/datagate/pkg/schema"
	"github.com/aretw0/datagate/pkg/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusStore_Contract(t *testing.T) {
	ports.RunStatusStoreContract(t, memory.NewStatusStore(), t.TempDir())
}

func TestStatusStore_Isolation(t *testing.T) {
	store := memory.NewStatusStore()
	report := domain.NewReport("d.csv", 1, []string{"a"}, []schema.Mismatch{{Column: "b", Expected: "int64", Actual: "object"}})
	require.NoError(t, store.Write("status.txt", report))

	rec, err := store.Read("status.txt")
	require.NoError(t, err)
	rec.Messages[0] = "tampered"

	again, err := store.Read("status.txt")
	require.NoError(t, err)
	assert.Equal(t, report.Messages(), again.Messages)
	assert.Equal(t, []string{"status.txt"}, store.Paths())
}

func TestLoader(t *testing.T) {
	loader, err := memory.NewFromCSV(map[string]string{"data.csv": "id,name\n1,a\n2,b\n"})
	require.NoError(t, err)

	tbl, err := loader.Load("data.csv")
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.Rows)
	assert.Equal(t, map[string]string{"id": "int64", "name": "object"}, tbl.Dtypes())

	_, err = loader.Load("other.csv")
	assert.ErrorIs(t, err, os.ErrNotExist)

	direct := memory.NewLoader(map[string]*table.Table{"t": table.New(table.Column{Name: "x", Values: []string{"1.5"}})})
	tbl, err = direct.Load("t")
	require.NoError(t, err)
	assert.Equal(t, "float64", tbl.Dtypes()["x"])
}

func TestNewFromCSV_Error(t *testing.T) {
	_, err := memory.NewFromCSV(map[string]string{"bad.csv": "a\n1,2\n"})
	var rowErr *table.RowLengthError
	assert.ErrorAs(t, err, &rowErr)
}
