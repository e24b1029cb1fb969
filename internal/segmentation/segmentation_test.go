package segmentation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit_BasicBoundaries(t *testing.T) {
	sentences := Split("The cat sat. The dog ran! Did you see? Yes.")
	require.Equal(t, []string{
		"The cat sat.",
		"The dog ran!",
		"Did you see?",
		"Yes.",
	}, sentences)
}

func TestSplit_TitleAbbreviationDoesNotSplit(t *testing.T) {
	sentences := Split("Dr. Smith calculated the answer. The cat sat.")
	require.Equal(t, []string{
		"Dr. Smith calculated the answer.",
		"The cat sat.",
	}, sentences)
}

func TestSplit_QuoteOpensSentence(t *testing.T) {
	sentences := Split(`She nodded. "Let's go," he said.`)
	require.Len(t, sentences, 2)
	assert.Equal(t, "She nodded.", sentences[0])
	assert.Equal(t, `"Let's go," he said.`, sentences[1])
}

func TestSplit_LowercaseContinuationDoesNotSplit(t *testing.T) {
	// A terminal mark followed by a lowercase word is not a boundary.
	sentences := Split("It weighs approx. two pounds.")
	require.Equal(t, []string{"It weighs approx. two pounds."}, sentences)
}

func TestSplit_NoBoundary(t *testing.T) {
	sentences := Split("a single sentence without terminal punctuation")
	require.Equal(t, []string{"a single sentence without terminal punctuation"}, sentences)
}

func TestSplit_TrimsAndDropsEmpty(t *testing.T) {
	assert.Empty(t, Split(""))
	assert.Empty(t, Split("   \n\t "))

	sentences := Split("  Padded sentence. Another one.  ")
	require.Equal(t, []string{"Padded sentence.", "Another one."}, sentences)
}

func TestSplit_NewlineSeparator(t *testing.T) {
	sentences := Split("First line ends here.\nSecond line starts here.")
	require.Len(t, sentences, 2)
}

func TestSentences_Restartable(t *testing.T) {
	seq := Sentences("One here. Two here. Three here.")
	first := 0
	for range seq {
		first++
	}
	second := 0
	for range seq {
		second++
	}
	assert.Equal(t, 3, first)
	assert.Equal(t, first, second)
}

func TestSentences_EarlyStop(t *testing.T) {
	seq := Sentences("One here. Two here. Three here.")
	var got []string
	for s := range seq {
		got = append(got, s)
		if len(got) == 2 {
			break
		}
	}
	require.Equal(t, []string{"One here.", "Two here."}, got)
}

func TestSplit_StableUnderRejoin(t *testing.T) {
	texts := []string{
		"The cat sat. The dog ran! Did you see? Yes.",
		"Dr. Smith calculated the answer. The cat sat.",
		"One sentence only",
		"Lines split here.\n\nAnd here. \"Quoted start.\"",
	}
	for _, text := range texts {
		once := Split(text)
		again := Split(strings.Join(once, " "))
		assert.Equal(t, len(once), len(again), "text %q", text)
	}
}

func TestWords_AlphabeticRuns(t *testing.T) {
	assert.Equal(t, []string{"The", "quick", "fox", "jumps"}, Words("The quick fox jumps."))
	assert.Equal(t, []string{"don", "t"}, Words("don't"))
	assert.Equal(t, []string{"a", "b"}, Words("7a + 3b = 10"))
	assert.Empty(t, Words("12 + 34"))
	assert.Empty(t, Words(""))
}
