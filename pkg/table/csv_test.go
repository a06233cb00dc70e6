package table

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVLoader_Read(t *testing.T) {
	input := "id,price,name,active\n1,9.5,apple,True\n2,3,pear,False\n3,,plum,True\n"

	tbl, err := CSVLoader{}.Read(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "price", "name", "active"}, tbl.Names())
	assert.Equal(t, 3, tbl.Rows)
	assert.Equal(t, map[string]string{
		"id":     "int64",
		"price":  "float64",
		"name":   "object",
		"active": "bool",
	}, tbl.Dtypes())

	col, ok := tbl.Column("name")
	require.True(t, ok)
	assert.Equal(t, []string{"apple", "pear", "plum"}, col.Values)
	assert.True(t, tbl.Has("price"))
	assert.False(t, tbl.Has("Price"))
}

func TestCSVLoader_ShortRowsArePadded(t *testing.T) {
	tbl, err := CSVLoader{}.Read(strings.NewReader("a,b\n1,2\n3\n"))
	require.NoError(t, err)

	col, _ := tbl.Column("b")
	assert.Equal(t, []string{"2", ""}, col.Values)
	assert.Equal(t, "float64", col.Dtype)
}

func TestCSVLoader_LongRowFails(t *testing.T) {
	_, err := CSVLoader{}.Read(strings.NewReader("a,b\n1,2\n3,4,5\n"))
	require.Error(t, err)

	var rowErr *RowLengthError
	require.ErrorAs(t, err, &rowErr)
	assert.Equal(t, 3, rowErr.Line)
	assert.Equal(t, 2, rowErr.Expected)
	assert.Equal(t, 3, rowErr.Got)
}

func TestCSVLoader_EmptyInput(t *testing.T) {
	_, err := CSVLoader{}.Read(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrNoColumns)
}

func TestCSVLoader_HeaderOnly(t *testing.T) {
	tbl, err := CSVLoader{}.Read(strings.NewReader("a,b\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, tbl.Rows)
	assert.Equal(t, map[string]string{"a": "object", "b": "object"}, tbl.Dtypes())
}

func TestCSVLoader_HeaderNames(t *testing.T) {
	tbl, err := CSVLoader{}.Read(strings.NewReader("\ufeffa,a,,a\n1,2,3,4\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "a.1", "Unnamed: 2", "a.2"}, tbl.Names())
}

func TestCSVLoader_Delimiter(t *testing.T) {
	tbl, err := CSVLoader{Comma: ';'}.Read(strings.NewReader("a;b\n1;x\n"))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a": "int64", "b": "object"}, tbl.Dtypes())
}

func TestLoadCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("x,y\n1,2\n"), 0644))

	tbl, err := LoadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, 1, tbl.Rows)

	_, err = LoadCSV(filepath.Join(dir, "missing.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
