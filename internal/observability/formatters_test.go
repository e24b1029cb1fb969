package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/readability-analyzer/internal/annotation"
	"github.com/jonathan/readability-analyzer/internal/types"
)

func TestPrintSummaryTable(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSummaryTable([]types.ZoneSummary{
		{Category: types.CategoryDialogue, Words: 12, EstimatedGrade: 4.5, TargetGrade: 5, Status: types.StatusOnTarget},
		{Category: types.CategoryMathProblem, Words: 8, EstimatedGrade: 6.1, TargetGrade: 3, Status: types.StatusAboveTarget},
	})
	output := buf.String()

	assert.Contains(t, output, "Zone Type")
	assert.Contains(t, output, "Dialogue")
	assert.Contains(t, output, "4.5")
	assert.Contains(t, output, "On Target")
	assert.Contains(t, output, "Above Target")
}

func TestPrintZone_MarksHighlights(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	r := annotation.Annotate("The elephant sat.", types.CategoryNarration, 4)
	p.PrintZone(0, r)
	output := buf.String()

	assert.Contains(t, output, "Narration")
	assert.Contains(t, output, "*elephant*")
	assert.Contains(t, output, "target grade 4")
}

func TestPrintZone_AboveTargetMarker(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	text := "The felicitous mathematician demonstrated extraordinarily complicated multiplication operations."
	r := annotation.Annotate(text, types.CategoryMathProblem, 1)
	p.PrintZone(1, r)

	assert.Contains(t, buf.String(), "! ")
}

func TestPrintHeader(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintHeader("SUMMARY")
	output := buf.String()

	assert.Contains(t, output, "SUMMARY")
	assert.Contains(t, output, "┌")
	assert.Contains(t, output, "└")
}

func TestPrintLegend(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintLegend()
	assert.Contains(t, buf.String(), "3+ syllables")
}
