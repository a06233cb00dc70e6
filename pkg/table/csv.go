package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrNoColumns is returned when the input has no header row.
var ErrNoColumns = errors.New("no columns to parse from file")

// RowLengthError is returned when a data row has more fields than the header.
type RowLengthError struct {
	Line     int
	Expected int
	Got      int
}

func (e *RowLengthError) Error() string {
	return fmt.Sprintf("line %d: expected %d fields, saw %d", e.Line, e.Expected, e.Got)
}

// CSVLoader loads comma separated files. The zero value is ready to use.
type CSVLoader struct {
	// Comma overrides the field delimiter. Defaults to ','.
	Comma rune
}

// Load reads the file at path into a Table.
func (l CSVLoader) Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return l.Read(f)
}

// Read parses delimited text from r into a Table.
func (l CSVLoader) Read(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	if l.Comma != 0 {
		reader.Comma = l.Comma
	}

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrNoColumns
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	names := headerNames(header)
	values := make([][]string, len(names))

	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}
		if len(rec) > len(names) {
			line, _ := reader.FieldPos(0)
			return nil, &RowLengthError{Line: line, Expected: len(names), Got: len(rec)}
		}
		for i := range names {
			cell := ""
			if i < len(rec) {
				cell = rec[i]
			}
			values[i] = append(values[i], cell)
		}
	}

	cols := make([]Column, len(names))
	for i, name := range names {
		cols[i] = Column{Name: name, Values: values[i]}
	}
	return New(cols...), nil
}

// LoadCSV reads a comma separated file into a Table.
func LoadCSV(path string) (*Table, error) {
	return CSVLoader{}.Load(path)
}

// headerNames names blank headers "Unnamed: <i>" and mangles duplicates to "a", "a.1", "a.2".
func headerNames(header []string) []string {
	names := make([]string, len(header))
	seen := make(map[string]int, len(header))
	taken := make(map[string]bool, len(header))

	for i, h := range header {
		name := h
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		if name == "" {
			name = "Unnamed: " + strconv.Itoa(i)
		}
		if taken[name] {
			base := name
			for {
				seen[base]++
				name = base + "." + strconv.Itoa(seen[base])
				if !taken[name] {
					break
				}
			}
		}
		taken[name] = true
		names[i] = name
	}
	return names
}
