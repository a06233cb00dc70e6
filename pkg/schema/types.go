package schema

import "sort"

// Dtype tags produced by the table loader.
const (
	Int64   = "int64"
	Uint64  = "uint64"
	Float64 = "float64"
	Bool    = "bool"
	Object  = "object"
)

var knownDtypes = map[string]bool{
	"int8": true, "int16": true, "int32": true, Int64: true,
	"uint8": true, "uint16": true, "uint32": true, Uint64: true,
	"float32": true, Float64: true,
	Bool: true, Object: true, "string": true, "category": true,
	"datetime64[ns]": true, "timedelta64[ns]": true,
}

// IsKnownDtype reports whether tag is a dtype tag a dataframe library would print.
// Unknown tags are still accepted; they simply can never match a loaded column.
func IsKnownDtype(tag string) bool {
	return knownDtypes[tag]
}

// Column is a single expected column.
type Column struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
}

// Schema is the ordered list of expected columns.
type Schema struct {
	columns []Column
	index   map[string]int
}

// New creates a schema from columns in the given order.
// A later column with the same name replaces the earlier type but keeps its position.
func New(cols ...Column) Schema {
	s := Schema{index: make(map[string]int, len(cols))}
	for _, c := range cols {
		s.add(c)
	}
	return s
}

// FromMap creates a schema from a plain map. Columns are ordered by name.
func FromMap(typeMap map[string]string) Schema {
	names := make([]string, 0, len(typeMap))
	for name := range typeMap {
		names = append(names, name)
	}
	sort.Strings(names)

	cols := make([]Column, len(names))
	for i, name := range names {
		cols[i] = Column{Name: name, Type: typeMap[name]}
	}
	return New(cols...)
}

func (s *Schema) add(c Column) {
	if s.index == nil {
		s.index = make(map[string]int)
	}
	if i, ok := s.index[c.Name]; ok {
		s.columns[i].Type = c.Type
		return
	}
	s.index[c.Name] = len(s.columns)
	s.columns = append(s.columns, c)
}

// Len returns the number of expected columns.
func (s Schema) Len() int { return len(s.columns) }

// Columns returns a copy of the expected columns in declaration order.
func (s Schema) Columns() []Column {
	out := make([]Column, len(s.columns))
	copy(out, s.columns)
	return out
}

// Names returns the column names in declaration order.
func (s Schema) Names() []string {
	names := make([]string, len(s.columns))
	for i, c := range s.columns {
		names[i] = c.Name
	}
	return names
}

// Lookup returns the expected dtype of a column.
func (s Schema) Lookup(name string) (string, bool) {
	i, ok := s.index[name]
	if !ok {
		return "", false
	}
	return s.columns[i].Type, true
}

// Map returns the schema as a plain map. Order is lost.
func (s Schema) Map() map[string]string {
	m := make(map[string]string, len(s.columns))
	for _, c := range s.columns {
		m[c.Name] = c.Type
	}
	return m
}
