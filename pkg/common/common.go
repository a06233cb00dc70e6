package common

import (
	"log/slog"

	"github.com/aretw0/datagate/internal/logging"
)

// Utils groups the file helpers around an injected logger.
type Utils struct {
	logger *slog.Logger
}

// New creates a Utils. A nil logger discards output.
func New(logger *slog.Logger) *Utils {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Utils{logger: logger.With(logging.ModuleKey, "common")}
}
