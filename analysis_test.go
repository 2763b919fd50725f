package lessonforge_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jbetz/lessonforge"
	"github.com/stretchr/testify/assert"
)

// scienceText is a shared fixture with enough qualifying sentences and
// vocabulary for every generator path that consumes real content.
const scienceText = "Photosynthesis is the process that green Plants use to convert sunlight into energy. " +
	"The Chloroplast contains special pigments that absorb light effectively. " +
	"Respiration occurs in every living Organism during both day and night. " +
	"Water travels from the Roots through the stem to reach every leaf. " +
	"The Equation for this reaction requires sunlight, water, and carbon dioxide. " +
	"Oxygen is released into the Atmosphere as a byproduct of the reaction. " +
	"Glucose provides the Energy that plants need for growth and development. " +
	"Scientists study these processes to improve Agriculture around the world."

func TestExtractVocabulary(t *testing.T) {
	t.Parallel()

	t.Run("keeps capitalized and suffix-bearing words", func(t *testing.T) {
		t.Parallel()

		words := lessonforge.ExtractVocabulary(
			"The Photosynthesis process helps Plants grow. Respiration occurs too.", 10)

		assert.Contains(t, words, "Photosynthesis")
		assert.Contains(t, words, "Plants")
		assert.Contains(t, words, "Respiration")
		assert.NotContains(t, words, "helps")
		assert.NotContains(t, words, "grow")
		assert.NotContains(t, words, "occurs")
		assert.NotContains(t, words, "too")
	})

	t.Run("strips punctuation before filtering", func(t *testing.T) {
		t.Parallel()

		words := lessonforge.ExtractVocabulary("Consider the Ecosystem, carefully.", 10)

		assert.Contains(t, words, "Ecosystem")
	})

	t.Run("deduplicates preserving first-seen order", func(t *testing.T) {
		t.Parallel()

		words := lessonforge.ExtractVocabulary("Gravity pulls. Gravity wins. Momentum builds.", 10)

		assert.Equal(t, []string{"Gravity", "Momentum"}, words)
	})

	t.Run("respects limit", func(t *testing.T) {
		t.Parallel()

		words := lessonforge.ExtractVocabulary(scienceText, 3)

		assert.Len(t, words, 3)
	})

	t.Run("returns empty slice on empty input", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, lessonforge.ExtractVocabulary("", 10))
	})
}

func TestExtractSentences(t *testing.T) {
	t.Parallel()

	t.Run("returns all sentences in order when count not exceeded", func(t *testing.T) {
		t.Parallel()

		text := "This first sentence is long enough to pass. Tiny. " +
			"Another qualifying sentence sits here nicely! A third one rounds out the set properly?"

		sentences := lessonforge.ExtractSentences(text, 3)

		assert.Equal(t, []string{
			"This first sentence is long enough to pass.",
			"Another qualifying sentence sits here nicely.",
			"A third one rounds out the set properly.",
		}, sentences)
	})

	t.Run("samples at even stride when more sentences exist", func(t *testing.T) {
		t.Parallel()

		var b strings.Builder
		for i := 0; i < 10; i++ {
			fmt.Fprintf(&b, "Sentence number %d is exactly long enough to qualify. ", i)
		}

		sentences := lessonforge.ExtractSentences(b.String(), 3)

		// 10 sentences, stride 3: indices 0, 3, 6.
		assert.Equal(t, []string{
			"Sentence number 0 is exactly long enough to qualify.",
			"Sentence number 3 is exactly long enough to qualify.",
			"Sentence number 6 is exactly long enough to qualify.",
		}, sentences)
	})

	t.Run("filters sentences outside length bounds", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("word ", 40)
		sentences := lessonforge.ExtractSentences("Short. "+long+".", 5)

		assert.Empty(t, sentences)
	})

	t.Run("returns empty slice on empty input", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, lessonforge.ExtractSentences("", 5))
	})
}

func TestExtractTopics(t *testing.T) {
	t.Parallel()

	t.Run("prefers list items then headings", func(t *testing.T) {
		t.Parallel()

		html := "<ul><li>The water cycle</li><li>Evaporation and condensation</li><li>42</li></ul>" +
			"<h2>Precipitation patterns</h2>"

		topics := lessonforge.ExtractTopics(html, 5)

		assert.Equal(t, []string{
			"The water cycle",
			"Evaporation and condensation",
			"Precipitation patterns",
		}, topics)
	})

	t.Run("strips nested tags from list items", func(t *testing.T) {
		t.Parallel()

		topics := lessonforge.ExtractTopics("<li>The <b>water</b> cycle</li>", 5)

		assert.Equal(t, []string{"The water cycle"}, topics)
	})

	t.Run("falls back to paragraph first sentences", func(t *testing.T) {
		t.Parallel()

		text := "The rock cycle shapes mountains over time.\nErosion carves valleys slowly."

		topics := lessonforge.ExtractTopics(text, 2)

		assert.Equal(t, []string{
			"The rock cycle shapes mountains over time.",
			"Erosion carves valleys slowly.",
		}, topics)
	})

	t.Run("never exceeds count", func(t *testing.T) {
		t.Parallel()

		html := "<li>first topic here</li><li>second topic here</li><li>third topic here</li>"

		assert.Len(t, lessonforge.ExtractTopics(html, 2), 2)
	})

	t.Run("returns empty slice on empty input", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, lessonforge.ExtractTopics("", 5))
	})
}

func TestExtractNumbers(t *testing.T) {
	t.Parallel()

	numbers := lessonforge.ExtractNumbers("We counted 12 apples, 5 oranges, and 12 pears in 2024.", 8)

	assert.Equal(t, []string{"12", "5", "2024"}, numbers)
}

func TestParseGradeLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		grade string
		want  int
	}{
		{"Kindergarten", 0},
		{"K-2", 0},
		{"1st Grade", 1},
		{"3rd Grade", 3},
		{"10th", 10},
		{"Grade 7", 7},
		{"preschool", 3},
		{"", 3},
	}

	for _, tt := range tests {
		t.Run(tt.grade, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, lessonforge.ParseGradeLevel(tt.grade))
		})
	}
}
