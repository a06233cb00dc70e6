package ports

import (
	"path/filepath"
	"testing"

	"github.com/aretw0/datagate/pkg/domain"
	"github.com/aretw0/datagate/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunStatusStoreContract runs a suite of tests to verify that a StatusStore implementation
// adheres to the defined interface contract. dir must be an existing writable directory.
func RunStatusStoreContract(t *testing.T, store StatusStore, dir string) {
	t.Run("Write and Read Valid", func(t *testing.T) {
		path := filepath.Join(dir, "valid.txt")
		report := domain.NewReport("data.csv", 3, nil, nil)

		require.NoError(t, store.Write(path, report))

		rec, err := store.Read(path)
		require.NoError(t, err)
		assert.True(t, rec.Valid)
		assert.Empty(t, rec.Messages)
	})

	t.Run("Write and Read Invalid", func(t *testing.T) {
		path := filepath.Join(dir, "invalid.txt")
		report := domain.NewReport("data.csv", 3, []string{"a"}, []schema.Mismatch{
			{Column: "b", Expected: "int64", Actual: "object"},
		})

		require.NoError(t, store.Write(path, report))

		rec, err := store.Read(path)
		require.NoError(t, err)
		assert.False(t, rec.Valid)
		assert.Equal(t, report.Messages(), rec.Messages)
	})

	t.Run("Overwrite", func(t *testing.T) {
		path := filepath.Join(dir, "overwrite.txt")
		require.NoError(t, store.Write(path, domain.NewReport("data.csv", 1, []string{"a"}, nil)))
		require.NoError(t, store.Write(path, domain.NewReport("data.csv", 1, nil, nil)))

		rec, err := store.Read(path)
		require.NoError(t, err)
		assert.True(t, rec.Valid)
		assert.Empty(t, rec.Messages)
	})

	t.Run("Read Non-Existent", func(t *testing.T) {
		_, err := store.Read(filepath.Join(dir, "ghost.txt"))
		assert.ErrorIs(t, err, domain.ErrStatusNotFound)
	})
}
