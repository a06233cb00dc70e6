package domain

import "github.com/aretw0/datagate/pkg/schema"

// ValidationConfig holds everything a single validation run needs.
type ValidationConfig struct {
	// RootDir is the artifact directory owned by the validation stage.
	RootDir string `json:"root_dir"`
	// DataPath points to the delimited data file to validate.
	DataPath string `json:"data_path"`
	// StatusPath is where the status report is written. Its parent must exist.
	StatusPath string `json:"status_path"`
	// Schema is the expected column to dtype mapping.
	Schema schema.Schema `json:"schema"`
}
