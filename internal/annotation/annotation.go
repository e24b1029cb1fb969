// Package annotation produces highlight-annotated representations of zone text.
// Two independent boolean layers are applied: per-word "heavy" (estimated
// syllables at or above the threshold) and per-sentence "above target"
// (reading grade strictly above the category's target grade).
package annotation

import (
	"strings"
	"unicode"

	"github.com/jonathan/readability-analyzer/internal/scoring"
	"github.com/jonathan/readability-analyzer/internal/segmentation"
	"github.com/jonathan/readability-analyzer/internal/syllables"
	"github.com/jonathan/readability-analyzer/internal/types"
)

// Span is a run of characters within a sentence, either entirely whitespace
// or entirely non-whitespace. Intra-sentence spacing is preserved exactly.
type Span struct {
	Text  string `json:"text"`
	Heavy bool   `json:"heavy,omitempty"`
}

// Sentence is an annotated sentence span of the zone text.
type Sentence struct {
	Spans       []Span  `json:"spans"`
	Grade       float64 `json:"grade"`
	AboveTarget bool    `json:"above_target,omitempty"`
}

// Text reassembles the sentence exactly as it appeared after trimming.
func (s Sentence) Text() string {
	var b strings.Builder
	for _, span := range s.Spans {
		b.WriteString(span.Text)
	}
	return b.String()
}

// Result is the annotated form of a single zone.
type Result struct {
	Category    types.Category `json:"category"`
	TargetGrade int            `json:"target_grade"`
	Sentences   []Sentence     `json:"sentences"`
}

// PlainText strips all annotation and returns the zone's word content.
// Sentences are rejoined with a single space; original inter-sentence
// whitespace and line breaks are not reproduced.
func (r Result) PlainText() string {
	texts := make([]string, len(r.Sentences))
	for i, s := range r.Sentences {
		texts[i] = s.Text()
	}
	return strings.Join(texts, " ")
}

// Annotate analyzes zone text against the target grade for its category.
// It is total over all string inputs; empty or punctuation-only text yields
// a Result with no sentences.
func Annotate(text string, category types.Category, targetGrade int) Result {
	r := Result{Category: category, TargetGrade: targetGrade}
	for sentence := range segmentation.Sentences(text) {
		grade := scoring.Grade(sentence)
		r.Sentences = append(r.Sentences, Sentence{
			Spans:       annotateSpans(sentence),
			Grade:       grade,
			AboveTarget: grade > float64(targetGrade),
		})
	}
	return r
}

// annotateSpans splits a sentence into alternating whitespace and
// non-whitespace runs and marks the heavy words.
func annotateSpans(sentence string) []Span {
	var spans []Span
	runes := []rune(sentence)
	i := 0
	for i < len(runes) {
		start := i
		ws := unicode.IsSpace(runes[i])
		for i < len(runes) && unicode.IsSpace(runes[i]) == ws {
			i++
		}
		span := Span{Text: string(runes[start:i])}
		if !ws && syllables.Clean(span.Text) != "" {
			span.Heavy = syllables.Count(span.Text) >= syllables.HeavyThreshold
		}
		spans = append(spans, span)
	}
	return spans
}
