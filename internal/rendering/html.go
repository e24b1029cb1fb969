// Package rendering turns annotated zones and summaries into an HTML report.
// Heavy words get a red underline, above-target sentences an orange
// background, and each zone block is tinted by its category color. All user
// text is escaped.
package rendering

import (
	"fmt"
	"html"
	"strings"

	"github.com/jonathan/readability-analyzer/internal/annotation"
	"github.com/jonathan/readability-analyzer/internal/types"
)

// zoneColors maps each category to its pastel block background.
var zoneColors = map[types.Category]string{
	types.CategoryDialogue:    "#AED6F1",
	types.CategoryMathProblem: "#A9DFBF",
	types.CategoryNarration:   "#FAD7A0",
}

const (
	heavyWordStyle   = "text-decoration:underline;text-decoration-color:#cc0000;text-underline-offset:3px;"
	aboveTargetStyle = "background:rgba(255,140,0,0.38);border-radius:3px;padding:1px 2px;"
)

// ZoneColor returns the block background color for a category. Unknown
// categories render on white.
func ZoneColor(category types.Category) string {
	if color, ok := zoneColors[category]; ok {
		return color
	}
	return "#ffffff"
}

// ZoneHTML renders one annotated zone as a colored block with both highlight
// layers applied.
func ZoneHTML(r annotation.Result) string {
	var sentences []string
	for _, sentence := range r.Sentences {
		var b strings.Builder
		for _, span := range sentence.Spans {
			if span.Heavy {
				b.WriteString(`<span style="` + heavyWordStyle + `">`)
				b.WriteString(html.EscapeString(span.Text))
				b.WriteString("</span>")
			} else {
				b.WriteString(html.EscapeString(span.Text))
			}
		}
		content := b.String()
		if sentence.AboveTarget {
			content = `<span style="` + aboveTargetStyle + `">` + content + "</span>"
		}
		sentences = append(sentences, content)
	}

	return fmt.Sprintf(
		`<div style="background:%s;padding:14px 18px;border-radius:10px;margin:10px 0;`+
			`border-left:5px solid rgba(0,0,0,0.18);font-size:15px;line-height:1.9;">`+
			`<span style="font-size:10.5px;font-weight:800;text-transform:uppercase;`+
			`letter-spacing:1.5px;color:#555;">%s</span>`+
			`<hr style="margin:7px 0 10px;border:none;border-top:1px solid rgba(0,0,0,0.12);">`+
			`%s</div>`,
		ZoneColor(r.Category),
		html.EscapeString(string(r.Category)),
		strings.Join(sentences, " "),
	)
}

// Legend renders the highlighting key shown above the zone blocks.
func Legend() string {
	return `<div style="background:#f0f2f6;border-radius:7px;padding:9px 14px;font-size:13px;margin-bottom:14px;">` +
		`<b>Legend: </b>` +
		`<span style="` + heavyWordStyle + `">word</span> = 3+ syllables` +
		`&nbsp;|&nbsp;` +
		`<span style="` + aboveTargetStyle + `">sentence</span> = above target grade level` +
		`</div>`
}

// SummaryTable renders the zone summaries as an HTML table.
func SummaryTable(summaries []types.ZoneSummary) string {
	var b strings.Builder
	b.WriteString(`<table style="border-collapse:collapse;font-size:14px;">`)
	b.WriteString(`<tr><th>Zone Type</th><th>Words</th><th>Est. Grade Level</th><th>Target Grade</th><th>Status</th></tr>`)
	for _, s := range summaries {
		statusStyle := "color:green;font-weight:600"
		if s.Status == types.StatusAboveTarget {
			statusStyle = "color:darkorange;font-weight:600"
		}
		b.WriteString(fmt.Sprintf(
			`<tr><td>%s</td><td>%d</td><td>%.1f</td><td>%d</td><td style="%s">%s</td></tr>`,
			html.EscapeString(string(s.Category)),
			s.Words,
			s.EstimatedGrade,
			s.TargetGrade,
			statusStyle,
			html.EscapeString(string(s.Status)),
		))
	}
	b.WriteString("</table>")
	return b.String()
}

// Report renders a standalone HTML document with the legend, every zone
// block, and the summary table.
func Report(results []annotation.Result, summaries []types.ZoneSummary) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html><head><meta charset=\"utf-8\">")
	b.WriteString("<title>Readability Report</title></head><body>")
	b.WriteString(Legend())
	for _, r := range results {
		b.WriteString(ZoneHTML(r))
	}
	b.WriteString("<h3>Summary</h3>")
	b.WriteString(SummaryTable(summaries))
	b.WriteString("</body></html>")
	return b.String()
}
