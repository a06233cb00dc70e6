// Package schema describes the expected shape of a tabular dataset.
//
// A Schema is an ordered list of columns, each carrying the dtype tag the column is
// expected to have once the data is loaded (for example "int64", "float64" or "object").
// Declaration order is preserved so that diagnostics list columns the way the schema
// file declares them.
//
// Basic usage:
//
//	s := schema.New(
//	    schema.Column{Name: "age", Type: schema.Int64},
//	    schema.Column{Name: "name", Type: schema.Object},
//	)
//
//	diff := schema.Compare(s, map[string]string{"age": "float64"})
//	// diff.Missing    == []string{"name"}
//	// diff.Mismatches == []schema.Mismatch{{Column: "age", Expected: "int64", Actual: "float64"}}
//
// Schemas are usually read from YAML, where a mapping keeps its declaration order:
//
//	COLUMNS:
//	  age: int64
//	  name: object
//
// Dtype tags are compared by exact string equality. There is no coercion and no type
// hierarchy: "int64" never matches "int32" or "float64".
package schema
