// Package segmentation splits raw text into sentence spans and word tokens.
// The boundary rule is an explicit scan, not a pattern matcher: a sentence ends
// at a terminal mark (. ! ?) followed by whitespace and then an uppercase letter
// or a quotation mark. Title abbreviations (Mr., Dr., ...) never end a sentence.
package segmentation

import (
	"iter"
	"strings"
	"unicode"
)

// titleAbbreviations lists period-terminated titles that precede a capitalized
// name. A period ending one of these is part of the abbreviation, not a
// sentence boundary. Other abbreviations (etc., e.g.) followed by a capital
// letter still split; that under-splitting is a known heuristic limitation.
var titleAbbreviations = map[string]bool{
	"mr":   true,
	"mrs":  true,
	"ms":   true,
	"dr":   true,
	"prof": true,
	"rev":  true,
	"st":   true,
	"sr":   true,
	"jr":   true,
}

func isTerminal(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// opensSentence reports whether r can begin a new sentence after a boundary.
func opensSentence(r rune) bool {
	return unicode.IsUpper(r) || r == '"' || r == '\''
}

func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// precededByTitle reports whether the alphabetic run ending at runes[end-1]
// is a title abbreviation. end is the index of the period.
func precededByTitle(runes []rune, end int) bool {
	start := end
	for start > 0 && isAlpha(runes[start-1]) {
		start--
	}
	if start == end {
		return false
	}
	return titleAbbreviations[strings.ToLower(string(runes[start:end]))]
}

// Sentences returns a lazy, restartable sequence of the trimmed, non-empty
// sentences of text, in original order. If no boundary exists the whole input
// is a single sentence. Ranging over the result again restarts the scan.
func Sentences(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		runes := []rune(text)
		start := 0
		i := 0
		for i < len(runes) {
			if !isTerminal(runes[i]) || i+1 >= len(runes) || !unicode.IsSpace(runes[i+1]) {
				i++
				continue
			}
			// Candidate boundary: consume the whitespace separator and check
			// what the next sentence would open with.
			j := i + 1
			for j < len(runes) && unicode.IsSpace(runes[j]) {
				j++
			}
			if j == len(runes) || !opensSentence(runes[j]) ||
				(runes[i] == '.' && precededByTitle(runes, i)) {
				i = j
				continue
			}
			if s := strings.TrimSpace(string(runes[start : i+1])); s != "" {
				if !yield(s) {
					return
				}
			}
			start = j
			i = j
		}
		if s := strings.TrimSpace(string(runes[start:])); s != "" {
			yield(s)
		}
	}
}

// Split returns all sentences of text as a slice.
func Split(text string) []string {
	var sentences []string
	for s := range Sentences(text) {
		sentences = append(sentences, s)
	}
	return sentences
}

// Words returns the maximal runs of alphabetic characters in text, in order.
// Punctuation and digits separate tokens, so "don't" yields "don" and "t".
func Words(text string) []string {
	var words []string
	start := -1
	for i, r := range text {
		if isAlpha(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			words = append(words, text[start:i])
			start = -1
		}
	}
	if start >= 0 {
		words = append(words, text[start:])
	}
	return words
}
