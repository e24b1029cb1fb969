// Package syllables estimates syllable counts for word tokens.
// Lookup runs against a pronunciation dictionary first and falls back to a
// vowel-group heuristic, so an estimate is always produced. Any token with at
// least one alphabetic character counts as at least one syllable.
package syllables

import (
	_ "embed"
	"encoding/json"
	"strings"
	"sync"
)

// HeavyThreshold is the syllable count at which a word is considered heavy.
const HeavyThreshold = 3

// Dictionary resolves a cleaned, lowercase word to a syllable count.
// Implementations return false when the word is unknown.
type Dictionary interface {
	Lookup(word string) (int, bool)
}

//go:embed dictionary.json
var dictionaryJSON []byte

type mapDictionary map[string]int

func (d mapDictionary) Lookup(word string) (int, bool) {
	n, ok := d[word]
	return n, ok
}

var (
	embeddedOnce sync.Once
	embeddedDict mapDictionary
)

// Embedded returns the built-in pronunciation dictionary. It covers common
// words and the cases the vowel-group heuristic gets wrong (consonant-le
// endings, adjacent-vowel hiatus like "idea" and "being").
func Embedded() Dictionary {
	embeddedOnce.Do(func() {
		// The embedded data is compiled in and validated by tests; a decode
		// failure would leave an empty map and every word on the heuristic.
		_ = json.Unmarshal(dictionaryJSON, &embeddedDict)
	})
	return embeddedDict
}

// Estimator estimates syllable counts with a dictionary-then-heuristic strategy.
type Estimator struct {
	dict Dictionary
}

// NewEstimator returns an Estimator backed by dict. A nil dict skips lookup
// and uses the heuristic alone.
func NewEstimator(dict Dictionary) *Estimator {
	return &Estimator{dict: dict}
}

// Estimate returns the syllable count for a word token. Non-alphabetic
// characters are stripped first; a token with no alphabetic characters counts
// zero. Dictionary unavailability never prevents a result.
func (e *Estimator) Estimate(word string) int {
	clean := Clean(word)
	if clean == "" {
		return 0
	}
	if e.dict != nil {
		if n, ok := e.dict.Lookup(clean); ok && n > 0 {
			return n
		}
	}
	return heuristic(clean)
}

var defaultEstimator = NewEstimator(Embedded())

// Count estimates syllables using the embedded dictionary.
func Count(word string) int {
	return defaultEstimator.Estimate(word)
}

// Clean strips non-alphabetic characters from word and lowercases the rest.
func Clean(word string) string {
	var b strings.Builder
	for _, r := range word {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		}
	}
	return b.String()
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

// heuristic counts contiguous vowel runs (a e i o u y), discounts a trailing
// silent e, and clamps to a minimum of one. clean must be non-empty lowercase.
func heuristic(clean string) int {
	count := 0
	prevVowel := false
	for _, r := range clean {
		v := isVowel(r)
		if v && !prevVowel {
			count++
		}
		prevVowel = v
	}
	if strings.HasSuffix(clean, "e") && count > 1 {
		count--
	}
	if count < 1 {
		return 1
	}
	return count
}
