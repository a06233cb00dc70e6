package table

// Column is a named column with its inferred dtype and raw values.
type Column struct {
	Name   string
	Dtype  string
	Values []string
}

// Table is a loaded dataset.
type Table struct {
	Columns []Column
	Rows    int

	index map[string]int
}

// New builds a table from columns, inferring each column's dtype.
func New(cols ...Column) *Table {
	t := &Table{
		Columns: cols,
		index:   make(map[string]int, len(cols)),
	}
	for i := range t.Columns {
		if t.Columns[i].Dtype == "" {
			t.Columns[i].Dtype = InferDtype(t.Columns[i].Values)
		}
		if len(t.Columns[i].Values) > t.Rows {
			t.Rows = len(t.Columns[i].Values)
		}
		t.index[t.Columns[i].Name] = i
	}
	return t
}

// Has reports whether the table has a column with the given name.
func (t *Table) Has(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Column returns the named column.
func (t *Table) Column(name string) (*Column, bool) {
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	return &t.Columns[i], true
}

// Names returns the column names in file order.
func (t *Table) Names() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// Dtypes maps every column name to its dtype tag.
func (t *Table) Dtypes() map[string]string {
	m := make(map[string]string, len(t.Columns))
	for _, c := range t.Columns {
		m[c.Name] = c.Dtype
	}
	return m
}
