package schema

import "fmt"

// Mismatch records a column whose observed dtype differs from the declared one.
type Mismatch struct {
	Column   string `json:"column"`
	Expected string `json:"expected"`
	Actual   string `json:"actual"`
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: expected %s, got %s", m.Column, m.Expected, m.Actual)
}

// Diff is the structural difference between a schema and an observed table.
type Diff struct {
	Missing    []string
	Mismatches []Mismatch
}

// Empty reports whether the observed table conforms to the schema.
func (d Diff) Empty() bool {
	return len(d.Missing) == 0 && len(d.Mismatches) == 0
}

// Compare checks observed column dtypes against the schema.
// Missing columns and mismatches are both listed in schema order.
// Observed columns that the schema does not mention are ignored.
func Compare(s Schema, observed map[string]string) Diff {
	var diff Diff
	for _, col := range s.columns {
		actual, ok := observed[col.Name]
		if !ok {
			diff.Missing = append(diff.Missing, col.Name)
			continue
		}
		if actual != col.Type {
			diff.Mismatches = append(diff.Mismatches, Mismatch{
				Column:   col.Name,
				Expected: col.Type,
				Actual:   actual,
			})
		}
	}
	return diff
}

// Validate checks that every schema entry is well formed.
// An empty schema is valid.
func Validate(s Schema) error {
	var errs []error
	for _, col := range s.columns {
		if col.Name == "" {
			errs = append(errs, &ValidationError{Key: col.Name, Reason: "empty column name"})
			continue
		}
		if col.Type == "" {
			errs = append(errs, &ValidationError{Key: col.Name, Reason: "empty dtype"})
		}
	}
	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}
