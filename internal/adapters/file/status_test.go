package file_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/datagate/internal/adapters/file"
	"github.com/aretw0/datagate/pkg/domain"
	"github.com/aretw0/datagate/pkg/ports"
	"github.com/aretw0/datagate/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure StatusStore implements ports.StatusStore
var _ ports.StatusStore = (*file.StatusStore)(nil)

func TestStatusStore_Contract(t *testing.T) {
	ports.RunStatusStoreContract(t, file.NewStatusStore(), t.TempDir())
}

func TestStatusStore_WriteFormat(t *testing.T) {
	dir := t.TempDir()
	store := file.NewStatusStore()

	t.Run("valid report is a single line", func(t *testing.T) {
		path := filepath.Join(dir, "ok.txt")
		require.NoError(t, store.Write(path, domain.NewReport("d.csv", 1, nil, nil)))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "Validation status: True\n", string(data))
	})

	t.Run("invalid report lists messages", func(t *testing.T) {
		path := filepath.Join(dir, "bad.txt")
		report := domain.NewReport("d.csv", 1, []string{"a", "b"}, []schema.Mismatch{
			{Column: "c", Expected: "object", Actual: "int64"},
		})
		require.NoError(t, store.Write(path, report))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t,
			"Validation status: False\n"+
				"Missing columns: ['a', 'b']\n"+
				"Data type mismatches found: ['c: expected object, got int64']",
			string(data))
	})

	t.Run("no temp files left behind", func(t *testing.T) {
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		for _, e := range entries {
			assert.NotContains(t, e.Name(), ".tmp")
		}
	})
}

func TestStatusStore_WriteMissingParent(t *testing.T) {
	store := file.NewStatusStore()
	path := filepath.Join(t.TempDir(), "nope", "status.txt")

	err := store.Write(path, domain.NewReport("d.csv", 1, nil, nil))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestStatusStore_ReadMalformed(t *testing.T) {
	dir := t.TempDir()
	store := file.NewStatusStore()

	empty := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(empty, nil, 0644))
	_, err := store.Read(empty)
	assert.Error(t, err)

	garbage := filepath.Join(dir, "garbage.txt")
	require.NoError(t, os.WriteFile(garbage, []byte("hello\n"), 0644))
	_, err = store.Read(garbage)
	assert.Error(t, err)
}

func TestStatusStore_WriteThroughSymlink(t *testing.T) {
	dir := t.TempDir()
	store := file.NewStatusStore()

	t.Run("existing target", func(t *testing.T) {
		target := filepath.Join(dir, "shared-status.txt")
		require.NoError(t, os.WriteFile(target, []byte("old"), 0644))
		link := filepath.Join(dir, "status.txt")
		if err := os.Symlink(target, link); err != nil {
			t.Skipf("symlinks not supported: %v", err)
		}

		require.NoError(t, store.Write(link, domain.NewReport("d.csv", 1, nil, nil)))

		info, err := os.Lstat(link)
		require.NoError(t, err)
		assert.NotZero(t, info.Mode()&os.ModeSymlink, "link must survive the write")

		data, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Equal(t, "Validation status: True\n", string(data))

		rec, err := store.Read(link)
		require.NoError(t, err)
		assert.True(t, rec.Valid)
	})

	t.Run("dangling relative link", func(t *testing.T) {
		sub := filepath.Join(dir, "out")
		require.NoError(t, os.Mkdir(sub, 0755))
		link := filepath.Join(sub, "status.txt")
		if err := os.Symlink("../later.txt", link); err != nil {
			t.Skipf("symlinks not supported: %v", err)
		}

		require.NoError(t, store.Write(link, domain.NewReport("d.csv", 1, []string{"a"}, nil)))

		info, err := os.Lstat(link)
		require.NoError(t, err)
		assert.NotZero(t, info.Mode()&os.ModeSymlink)

		data, err := os.ReadFile(filepath.Join(dir, "later.txt"))
		require.NoError(t, err)
		assert.Equal(t, "Validation status: False\nMissing columns: ['a']", string(data))
	})
}
