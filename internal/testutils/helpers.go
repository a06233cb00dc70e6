package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// Project is a throwaway datagate project laid out under a temp dir.
type Project struct {
	Dir        string
	ConfigPath string
	SchemaPath string
	DataPath   string
	StatusPath string
}

// SetupProject writes config/config.yaml, schema.yaml and the dataset into a temporary
// directory. extraConfig is appended verbatim to config.yaml.
// It fails the test immediately on error.
func SetupProject(t *testing.T, csv, schemaYAML, extraConfig string) Project {
	t.Helper()

	dir := t.TempDir()
	p := Project{
		Dir:        dir,
		ConfigPath: filepath.Join(dir, "config", "config.yaml"),
		SchemaPath: filepath.Join(dir, "schema.yaml"),
		DataPath:   filepath.Join(dir, "artifacts", "data_ingestion", "data.csv"),
		StatusPath: filepath.Join(dir, "artifacts", "data_validation", "status.txt"),
	}

	configYAML := "artifacts_root: " + filepath.Join(dir, "artifacts") + "\n" +
		"data_validation:\n" +
		"  root_dir: " + filepath.Dir(p.StatusPath) + "\n" +
		"  unzip_data_dir: " + p.DataPath + "\n" +
		"  STATUS_FILE: " + p.StatusPath + "\n" + extraConfig

	for path, content := range map[string]string{
		p.ConfigPath: configYAML,
		p.SchemaPath: schemaYAML,
		p.DataPath:   csv,
	} {
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755), "Failed to create %s", filepath.Dir(path))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644), "Failed to write %s", path)
	}
	return p
}
