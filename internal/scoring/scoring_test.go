package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrade_ClampedSimpleSentence(t *testing.T) {
	// 4 words, 1 sentence, 4 syllables:
	// 0.39*4 + 11.8*1 - 15.59 = -2.23, clamped to 0.0.
	assert.Equal(t, 0.0, Grade("The quick fox jumps."))
}

func TestGrade_DegenerateInputs(t *testing.T) {
	for _, text := range []string{"", "   ", "...", "!?!", "12 + 34 = 46"} {
		assert.Equal(t, 0.0, Grade(text), "text %q", text)
	}
}

func TestGrade_SingleWord(t *testing.T) {
	// 1 word, 1 sentence, 3 syllables:
	// 0.39*1 + 11.8*3 - 15.59 = 20.2.
	assert.Equal(t, 20.2, Grade("elephant"))
}

func TestGrade_NeverNegative(t *testing.T) {
	texts := []string{
		"Go now.",
		"The cat sat on the mat.",
		"A.",
		"Hi! Go! Up! Down!",
	}
	for _, text := range texts {
		assert.GreaterOrEqual(t, Grade(text), 0.0, "text %q", text)
	}
}

func TestGrade_RoundedToOneDecimal(t *testing.T) {
	g := Grade("The elephant calculated a terrible answer for the little people today.")
	assert.Equal(t, g, float64(int(g*10+0.5))/10)
}

func TestAnalyze_Counts(t *testing.T) {
	s := Analyze("The quick fox jumps.")
	assert.Equal(t, 4, s.Words)
	assert.Equal(t, 1, s.Sentences)
	assert.Equal(t, 4, s.Syllables)
	assert.Equal(t, 0.0, s.Grade)
}

func TestAnalyze_MultiSentence(t *testing.T) {
	s := Analyze("The cat sat. The dog ran.")
	assert.Equal(t, 6, s.Words)
	assert.Equal(t, 2, s.Sentences)
}

func TestAnalyze_DegenerateLeavesZeroGrade(t *testing.T) {
	s := Analyze("??!")
	assert.Equal(t, 0, s.Words)
	assert.Equal(t, 0.0, s.Grade)
}
