package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestUnmarshalYAML_PreservesOrder(t *testing.T) {
	doc := `
COLUMNS:
  fixed acidity: float64
  quality: int64
  colour: object
  alcohol: float64
`
	var file struct {
		Columns Schema `yaml:"COLUMNS"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(doc), &file))

	assert.Equal(t, []string{"fixed acidity", "quality", "colour", "alcohol"}, file.Columns.Names())
	typ, ok := file.Columns.Lookup("quality")
	require.True(t, ok)
	assert.Equal(t, Int64, typ)
}

func TestUnmarshalYAML_NullIsEmpty(t *testing.T) {
	var file struct {
		Columns Schema `yaml:"COLUMNS"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("COLUMNS:\n"), &file))
	assert.Equal(t, 0, file.Columns.Len())
}

func TestUnmarshalYAML_Errors(t *testing.T) {
	t.Run("not a mapping", func(t *testing.T) {
		var s Schema
		err := yaml.Unmarshal([]byte("- a\n- b\n"), &s)
		assert.Error(t, err)
	})

	t.Run("nested dtype", func(t *testing.T) {
		var s Schema
		err := yaml.Unmarshal([]byte("a:\n  nested: int64\n"), &s)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "dtype must be a scalar")
	})
}

func TestMarshalYAML_RoundTripOrder(t *testing.T) {
	s := New(Column{Name: "z", Type: Int64}, Column{Name: "a", Type: Object})

	out, err := yaml.Marshal(s)
	require.NoError(t, err)
	assert.Equal(t, "z: int64\na: object\n", string(out))
}

func TestJSON(t *testing.T) {
	s := New(Column{Name: "z", Type: Int64}, Column{Name: "a", Type: Object})

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Equal(t, `{"z":"int64","a":"object"}`, string(data))

	var back Schema
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, s.Columns(), back.Columns())
}

func TestUnmarshalJSON_RejectsNonString(t *testing.T) {
	var s Schema
	err := json.Unmarshal([]byte(`{"a": 1}`), &s)
	require.Error(t, err)

	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
}
