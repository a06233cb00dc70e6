package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/aretw0/datagate/pkg/schema"
)

// Mismatch records a column whose observed dtype differs from the declared one.
type Mismatch = schema.Mismatch

// Report is the outcome of one validation run.
// Valid is false if and only if Messages() is non-empty.
type Report struct {
	Valid      bool       `json:"valid"`
	DataPath   string     `json:"data_path"`
	Missing    []string   `json:"missing,omitempty"`
	Mismatches []Mismatch `json:"mismatches,omitempty"`
	Rows       int        `json:"rows"`
	CheckedAt  time.Time  `json:"checked_at"`
}

// NewReport builds a report and derives Valid from the findings.
func NewReport(dataPath string, rows int, missing []string, mismatches []Mismatch) *Report {
	return &Report{
		Valid:      len(missing) == 0 && len(mismatches) == 0,
		DataPath:   dataPath,
		Missing:    missing,
		Mismatches: mismatches,
		Rows:       rows,
		CheckedAt:  time.Now().UTC(),
	}
}

// MissingMessage returns the diagnostic for missing columns, or "" if none are missing.
func (r *Report) MissingMessage() string {
	if len(r.Missing) == 0 {
		return ""
	}
	return "Missing columns: " + quoteList(r.Missing)
}

// MismatchMessage returns the diagnostic for dtype mismatches, or "" if there are none.
func (r *Report) MismatchMessage() string {
	if len(r.Mismatches) == 0 {
		return ""
	}
	items := make([]string, len(r.Mismatches))
	for i, m := range r.Mismatches {
		items[i] = m.String()
	}
	return "Data type mismatches found: " + quoteList(items)
}

// Messages returns the human-readable diagnostics in report order.
func (r *Report) Messages() []string {
	var msgs []string
	if msg := r.MissingMessage(); msg != "" {
		msgs = append(msgs, msg)
	}
	if msg := r.MismatchMessage(); msg != "" {
		msgs = append(msgs, msg)
	}
	return msgs
}

// StatusLine renders the first line of the status file.
func (r *Report) StatusLine() string {
	return "Validation status: " + FormatStatus(r.Valid)
}

// StatusText renders the full status file body.
func (r *Report) StatusText() string {
	var b strings.Builder
	b.WriteString(r.StatusLine())
	b.WriteString("\n")
	b.WriteString(strings.Join(r.Messages(), "\n"))
	return b.String()
}

// FormatStatus renders a boolean the way the status file spells it.
func FormatStatus(valid bool) string {
	if valid {
		return "True"
	}
	return "False"
}

// quoteList renders items the way Python prints a list of strings.
func quoteList(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = pyRepr(s)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// pyRepr quotes s like Python's repr of a str. Single quotes are used unless s holds a
// single quote and no double quote. Escapes follow the same rules.
func pyRepr(s string) string {
	quote := '\''
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		quote = '"'
	}

	var b strings.Builder
	b.WriteRune(quote)
	for _, r := range s {
		switch {
		case r == quote || r == '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case r == '\t':
			b.WriteString(`\t`)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case unicode.IsPrint(r):
			b.WriteRune(r)
		case r <= 0xff:
			fmt.Fprintf(&b, `\x%02x`, r)
		case r <= 0xffff:
			fmt.Fprintf(&b, `\u%04x`, r)
		default:
			fmt.Fprintf(&b, `\U%08x`, r)
		}
	}
	b.WriteRune(quote)
	return b.String()
}
