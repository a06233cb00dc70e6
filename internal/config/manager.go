package config

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/aretw0/datagate/internal/logging"
	"github.com/aretw0/datagate/pkg/common"
	"github.com/aretw0/datagate/pkg/domain"
	"github.com/aretw0/datagate/pkg/schema"
)

// Manager reads the project configuration and hands out per-stage records.
type Manager struct {
	config Config
	schema schema.Schema
	utils  *common.Utils
	logger *slog.Logger
	noDirs bool
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithoutDirectories leaves artifacts_root and root_dir uncreated.
func WithoutDirectories() ManagerOption {
	return func(m *Manager) {
		m.noDirs = true
	}
}

// NewManager reads configPath and schemaPath and creates the artifacts root.
// Empty paths fall back to DefaultConfigPath and DefaultSchemaPath.
func NewManager(utils *common.Utils, logger *slog.Logger, configPath, schemaPath string, opts ...ManagerOption) (*Manager, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	if schemaPath == "" {
		schemaPath = DefaultSchemaPath
	}

	var cfg Config
	if err := utils.ReadYAML(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configPath, err)
	}
	cfg.applyDefaults()

	var sf SchemaFile
	if err := utils.ReadYAML(schemaPath, &sf); err != nil {
		return nil, fmt.Errorf("failed to read schema: %w", err)
	}

	m := &Manager{
		config: cfg,
		schema: sf.Columns,
		utils:  utils,
		logger: logger.With(logging.ModuleKey, "config"),
	}
	for _, opt := range opts {
		opt(m)
	}

	for _, col := range sf.Columns.Columns() {
		if !schema.IsKnownDtype(col.Type) {
			m.logger.Warn(fmt.Sprintf("column %q declares unknown dtype %q", col.Name, col.Type))
		}
	}

	if !m.noDirs {
		if err := utils.CreateDirectories([]string{cfg.ArtifactsRoot}, true); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Config returns the parsed config.yaml.
func (m *Manager) Config() Config {
	return m.config
}

// Schema returns the parsed schema.yaml columns.
func (m *Manager) Schema() schema.Schema {
	return m.schema
}

// DataValidationConfig creates the stage root directory and returns the validation record.
func (m *Manager) DataValidationConfig() (domain.ValidationConfig, error) {
	dv := m.config.DataValidation

	rootDir := dv.RootDir
	if rootDir == "" {
		rootDir = filepath.Dir(dv.StatusFile)
	}
	if !m.noDirs {
		if err := m.utils.CreateDirectories([]string{rootDir}, true); err != nil {
			return domain.ValidationConfig{}, err
		}
	}

	return domain.ValidationConfig{
		RootDir:    rootDir,
		DataPath:   dv.UnzipDataDir,
		StatusPath: dv.StatusFile,
		Schema:     m.schema,
	}, nil
}
