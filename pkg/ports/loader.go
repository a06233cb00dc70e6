package ports

import "github.com/aretw0/datagate/pkg/table"

// TableLoader loads a dataset from a path.
type TableLoader interface {
	Load(path string) (*table.Table, error)
}

// TableLoaderFunc adapts a function to TableLoader.
type TableLoaderFunc func(path string) (*table.Table, error)

// Load calls f(path).
func (f TableLoaderFunc) Load(path string) (*table.Table, error) {
	return f(path)
}
