package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/datagate/pkg/domain"
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
func NewRenderer() func(string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
	)
	if err != nil {
		return func(markdown string) (string, error) { return markdown, nil }
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

// ReportMarkdown renders a validation report as a markdown document.
func ReportMarkdown(r *domain.Report) string {
	var b strings.Builder

	b.WriteString("# Data validation\n\n")
	fmt.Fprintf(&b, "- **Dataset:** `%s`\n", r.DataPath)
	fmt.Fprintf(&b, "- **Rows:** %d\n", r.Rows)
	fmt.Fprintf(&b, "- **Status:** %s\n\n", statusWord(r.Valid))

	if len(r.Missing) > 0 {
		b.WriteString("## Missing columns\n\n")
		for _, name := range r.Missing {
			fmt.Fprintf(&b, "- `%s`\n", name)
		}
		b.WriteString("\n")
	}

	if len(r.Mismatches) > 0 {
		b.WriteString("## Type mismatches\n\n")
		b.WriteString("| Column | Expected | Got |\n|---|---|---|\n")
		for _, m := range r.Mismatches {
			fmt.Fprintf(&b, "| `%s` | %s | %s |\n", m.Column, m.Expected, m.Actual)
		}
		b.WriteString("\n")
	}

	if r.Valid {
		b.WriteString("All validations passed successfully.\n")
	}
	return b.String()
}

func statusWord(valid bool) string {
	if valid {
		return "passed"
	}
	return "failed"
}
