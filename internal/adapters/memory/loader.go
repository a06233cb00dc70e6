package memory

import (
	"fmt"
	"os"
	"strings"

	"github.com/aretw0/datagate/pkg/table"
)

// Loader implements ports.TableLoader using an in-memory map keyed by path.
type Loader struct {
	tables map[string]*table.Table
}

// NewLoader creates a new Loader serving the given tables.
func NewLoader(tables map[string]*table.Table) *Loader {
	t := make(map[string]*table.Table, len(tables))
	for k, v := range tables {
		t[k] = v
	}
	return &Loader{tables: t}
}

// NewFromCSV creates a Loader by parsing raw CSV documents.
func NewFromCSV(docs map[string]string) (*Loader, error) {
	tables := make(map[string]*table.Table, len(docs))
	for path, doc := range docs {
		tbl, err := table.CSVLoader{}.Read(strings.NewReader(doc))
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		tables[path] = tbl
	}
	return &Loader{tables: tables}, nil
}

// Load returns the table registered under path.
func (l *Loader) Load(path string) (*table.Table, error) {
	tbl, ok := l.tables[path]
	if !ok {
		return nil, fmt.Errorf("table %q: %w", path, os.ErrNotExist)
	}
	return tbl, nil
}
