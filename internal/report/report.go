// Package report renders comparison records for human and machine
// consumption. It is a pure presentation layer: nothing here feeds back
// into the harness, and the core packages never import it.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/roach88/parity/internal/compare"
)

// RenderText writes a human-readable summary of the comparison.
//
// Backends appear in run order. Numbers go through a locale-aware printer
// so large trial counts stay readable.
func RenderText(w io.Writer, c *compare.Comparison) error {
	p := message.NewPrinter(language.English)

	p.Fprintf(w, "Comparison: %s\n", c.Name)
	p.Fprintf(w, "Run ID:     %s\n", c.RunID)
	p.Fprintf(w, "Trials:     %d per backend\n", c.Trials)

	for _, name := range c.Order {
		s, ok := c.Results[name]
		if !ok {
			return fmt.Errorf("comparison record is missing results for backend %q", name)
		}
		p.Fprintf(w, "\nbackend: %s\n", name)
		p.Fprintf(w, "  mean:     %s\n", formatVector(s.Mean))
		p.Fprintf(w, "  std:      %s\n", formatVector(s.Std))
		p.Fprintf(w, "  duration: mean=%s std=%s\n", s.MeanDuration.String(), s.StdDuration.String())
	}
	return nil
}

// RenderJSON writes the comparison as indented JSON. Map keys serialize in
// sorted order, so output is deterministic for golden comparison.
func RenderJSON(w io.Writer, c *compare.Comparison) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}

// formatVector renders a float vector with fixed precision.
func formatVector(vec []float64) string {
	parts := make([]string, len(vec))
	for i, v := range vec {
		parts[i] = fmt.Sprintf("%.6f", v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
