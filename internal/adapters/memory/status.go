package memory

import (
	"sync"

	"github.com/aretw0/datagate/pkg/domain"
	"github.com/aretw0/datagate/pkg/ports"
)

// StatusStore implements ports.StatusStore in memory.
// Safe for concurrent use.
type StatusStore struct {
	data map[string]ports.StatusRecord
	mu   sync.RWMutex
}

// NewStatusStore creates a new in-memory status store.
func NewStatusStore() *StatusStore {
	return &StatusStore{
		data: make(map[string]ports.StatusRecord),
	}
}

// Write records the report outcome under path.
func (s *StatusStore) Write(path string, report *domain.Report) error {
	rec := ports.StatusRecord{
		Path:     path,
		Valid:    report.Valid,
		Messages: append([]string(nil), report.Messages()...),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[path] = rec
	return nil
}

// Read returns a copy of the record stored under path.
func (s *StatusStore) Read(path string) (*ports.StatusRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.data[path]
	if !ok {
		return nil, domain.ErrStatusNotFound
	}

	ret := rec
	ret.Messages = append([]string(nil), rec.Messages...)
	return &ret, nil
}

// Paths returns the paths written so far.
func (s *StatusStore) Paths() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	paths := make([]string, 0, len(s.data))
	for p := range s.data {
		paths = append(paths, p)
	}
	return paths
}
