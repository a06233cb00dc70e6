package config

import (
	"errors"
	"fmt"

	"github.com/aretw0/datagate/pkg/schema"
)

// Default locations, relative to the working directory.
const (
	DefaultConfigPath = "config/config.yaml"
	DefaultSchemaPath = "schema.yaml"
)

// Config mirrors config.yaml.
type Config struct {
	ArtifactsRoot  string               `yaml:"artifacts_root"`
	DataValidation DataValidationConfig `yaml:"data_validation"`
	Redis          RedisConfig          `yaml:"redis"`
	Server         ServerConfig         `yaml:"server"`
}

// DataValidationConfig is the data_validation section.
type DataValidationConfig struct {
	RootDir      string `yaml:"root_dir"`
	UnzipDataDir string `yaml:"unzip_data_dir"`
	StatusFile   string `yaml:"STATUS_FILE"`
}

// RedisConfig enables mirroring reports to Redis when Addr is set.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix"`
	History  int64  `yaml:"history"`
}

// Enabled reports whether a Redis address is configured.
func (r RedisConfig) Enabled() bool {
	return r.Addr != ""
}

// ServerConfig is the server section used by `datagate serve`.
type ServerConfig struct {
	Port string `yaml:"port"`
}

// SchemaFile mirrors schema.yaml.
type SchemaFile struct {
	Columns schema.Schema `yaml:"COLUMNS"`
}

var errMissingKey = errors.New("missing required key")

// Validate checks the keys the validation stage cannot run without.
func (c *Config) Validate() error {
	var errs []error
	if c.ArtifactsRoot == "" {
		errs = append(errs, fmt.Errorf("%w: artifacts_root", errMissingKey))
	}
	if c.DataValidation.UnzipDataDir == "" {
		errs = append(errs, fmt.Errorf("%w: data_validation.unzip_data_dir", errMissingKey))
	}
	if c.DataValidation.StatusFile == "" {
		errs = append(errs, fmt.Errorf("%w: data_validation.STATUS_FILE", errMissingKey))
	}
	return errors.Join(errs...)
}

func (c *Config) applyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if c.Redis.Prefix == "" {
		c.Redis.Prefix = "datagate:"
	}
	if c.Redis.History == 0 {
		c.Redis.History = 20
	}
}
