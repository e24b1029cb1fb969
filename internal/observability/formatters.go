// Package observability provides formatted terminal output for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/readability-analyzer/internal/annotation"
	"github.com/jonathan/readability-analyzer/internal/types"
)

// boxWidth is the default width for formatted output boxes
const boxWidth = 72

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// PrintHeader prints a boxed section title
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintHeader(title string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSummaryTable prints the per-zone summary rows as an aligned table
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintSummaryTable(summaries []types.ZoneSummary) {
	fmt.Fprintf(p.out, "%-14s %7s %12s %8s  %s\n", "Zone Type", "Words", "Est. Grade", "Target", "Status")
	fmt.Fprintln(p.out, strings.Repeat("─", 58))
	for _, s := range summaries {
		fmt.Fprintf(p.out, "%-14s %7d %12.1f %8d  %s\n",
			string(s.Category), s.Words, s.EstimatedGrade, s.TargetGrade, string(s.Status))
	}
}

// PrintZone prints one annotated zone. Heavy words are wrapped in asterisks
// and above-target sentences are prefixed with an exclamation marker.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintZone(index int, r annotation.Result) {
	fmt.Fprintf(p.out, "[%d] %s (target grade %d)\n", index, string(r.Category), r.TargetGrade)
	for _, sentence := range r.Sentences {
		marker := "  "
		if sentence.AboveTarget {
			marker = "! "
		}
		var b strings.Builder
		for _, span := range sentence.Spans {
			if span.Heavy {
				b.WriteString("*" + span.Text + "*")
			} else {
				b.WriteString(span.Text)
			}
		}
		fmt.Fprintf(p.out, "  %s%s  (grade %.1f)\n", marker, b.String(), sentence.Grade)
	}
}

// PrintLegend explains the zone output markers
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintLegend() {
	fmt.Fprintln(p.out, "Legend: *word* = 3+ syllables, ! = sentence above target grade")
}
