package goquery_test

import (
	"strings"
	"testing"

	"github.com/jbetz/lessonforge"
	"github.com/jbetz/lessonforge/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements lessonforge.Extractor.
var _ lessonforge.Extractor = (*goquery.Extractor)(nil)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("prefers article content", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<article>Plants convert sunlight into chemical energy through photosynthesis.</article>
			<main>Main fallback text that should not be duplicated.</main>
		</body></html>`

		e := goquery.NewExtractor()
		got, err := e.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, got, "Plants convert sunlight")
		assert.NotContains(t, got, "Main fallback text")
	})

	t.Run("falls back to main when no article", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><main>The water cycle moves water between land, ocean, and sky.</main></body></html>`

		e := goquery.NewExtractor()
		got, err := e.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, got, "water cycle")
	})

	t.Run("collects headings with a marker prefix", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<article>Body text for the lesson goes here in enough detail.</article>
			<h1>Photosynthesis</h1>
			<h2>Menu</h2>
			<h2>Navigation</h2>
			<h3>ab</h3>
		</body></html>`

		e := goquery.NewExtractor()
		got, err := e.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, got, "Heading: Photosynthesis")
		assert.NotContains(t, got, "Menu")
		assert.NotContains(t, got, "Navigation")
		assert.NotContains(t, got, "Heading: ab")
	})

	t.Run("collects deep heading levels", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<h4>Stages of the Water Cycle</h4>
			<h5>Evaporation</h5>
			<h6>Condensation</h6>
		</body></html>`

		e := goquery.NewExtractor()
		got, err := e.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, got, "Heading: Stages of the Water Cycle")
		assert.Contains(t, got, "Heading: Evaporation")
		assert.Contains(t, got, "Heading: Condensation")
	})

	t.Run("keeps headings that mention chrome words", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<h2>Search Strategies for Research</h2>
			<h3>The Menu of Options</h3>
			<h2>Search</h2>
		</body></html>`

		e := goquery.NewExtractor()
		got, err := e.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, got, "Heading: Search Strategies for Research")
		assert.Contains(t, got, "Heading: The Menu of Options")
		assert.NotContains(t, strings.Split(got, "\n"), "Heading: Search")
	})

	t.Run("collects lists with at least two items", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<article>Lesson body text.</article>
			<ol><li>Plant the seed</li><li>Water it daily</li></ol>
			<ul><li>Only one item</li></ul>
			<nav><ul><li>Home</li><li>About</li></ul></nav>
		</body></html>`

		e := goquery.NewExtractor()
		got, err := e.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, got, "Ordered List:")
		assert.Contains(t, got, "- Plant the seed")
		assert.NotContains(t, got, "Only one item")
		assert.NotContains(t, got, "- Home")
	})

	t.Run("uses known containers when semantic content is thin", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<div class="lesson">
				<p>Photosynthesis is how green plants turn light into food they can use.</p>
				<p>short</p>
			</div>
		</body></html>`

		e := goquery.NewExtractor()
		got, err := e.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, got, "turn light into food")
		assert.NotContains(t, got, "short")
	})

	t.Run("falls back to loose paragraphs outside chrome", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<header><p>This header paragraph is long enough but lives inside page chrome.</p></header>
			<div><p>` + strings.Repeat("Plants make their own food from light. ", 3) + `</p></div>
		</body></html>`

		e := goquery.NewExtractor()
		got, err := e.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, got, "Plants make their own food")
		assert.NotContains(t, got, "header paragraph")
	})

	t.Run("empty page yields empty content", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()
		got, err := e.Extract(`<html><body></body></html>`)

		require.NoError(t, err)
		assert.Equal(t, "", got)
	})

	t.Run("whitespace is collapsed", func(t *testing.T) {
		t.Parallel()

		html := "<html><body><article>Water\n\t  cycles   endlessly.</article></body></html>"

		e := goquery.NewExtractor()
		got, err := e.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, got, "Water cycles endlessly.")
	})
}
