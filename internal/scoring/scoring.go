// Package scoring computes Flesch-Kincaid reading grade levels for text spans.
package scoring

import (
	"math"

	"github.com/jonathan/readability-analyzer/internal/segmentation"
	"github.com/jonathan/readability-analyzer/internal/syllables"
)

// Flesch-Kincaid grade formula coefficients.
const (
	wordsPerSentenceWeight = 0.39
	syllablesPerWordWeight = 11.8
	gradeOffset            = 15.59
)

// Stats holds the raw counts behind a grade, for summary reporting.
type Stats struct {
	Words     int
	Sentences int
	Syllables int
	Grade     float64
}

// Analyze tokenizes text and returns its counts and grade. Total over all
// string inputs: degenerate spans (no words or no sentences) score 0.0
// rather than erroring.
func Analyze(text string) Stats {
	words := segmentation.Words(text)
	sentences := segmentation.Split(text)

	s := Stats{Words: len(words), Sentences: len(sentences)}
	for _, w := range words {
		s.Syllables += syllables.Count(w)
	}
	if s.Words == 0 || s.Sentences == 0 {
		return s
	}

	grade := wordsPerSentenceWeight*(float64(s.Words)/float64(s.Sentences)) +
		syllablesPerWordWeight*(float64(s.Syllables)/float64(s.Words)) -
		gradeOffset
	s.Grade = math.Max(math.Round(grade*10)/10, 0.0)
	return s
}

// Grade returns the Flesch-Kincaid grade for text, rounded to one decimal
// place and clamped to a minimum of 0.0.
func Grade(text string) float64 {
	return Analyze(text).Grade
}
