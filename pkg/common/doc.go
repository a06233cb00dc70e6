// Package common holds the file helpers shared by every pipeline stage: typed YAML
// loading, directory creation, JSON and binary artifact persistence and file sizes.
//
// Helpers are methods on Utils so the logger is injected rather than global. Each
// helper logs once, after the operation succeeded; a failed call logs nothing and
// returns the underlying error.
package common
