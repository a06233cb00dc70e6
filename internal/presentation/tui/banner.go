package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes a one line colored verdict for a validation run.
func PrintBanner(w io.Writer, valid bool) {
	p := termenv.ColorProfile()

	label := termenv.String(" FAIL ").Bold().Foreground(p.Color("#ffffff")).Background(p.Color("#e11d48"))
	text := termenv.String("dataset does not match the schema").Foreground(p.Color("#fb7185"))
	if valid {
		label = termenv.String(" PASS ").Bold().Foreground(p.Color("#ffffff")).Background(p.Color("#059669"))
		text = termenv.String("dataset matches the schema").Foreground(p.Color("#34d399"))
	}

	fmt.Fprintf(w, "%s %s\n", label, text)
}
