package trafilatura_test

import (
	"testing"

	"github.com/jbetz/lessonforge"
	"github.com/jbetz/lessonforge/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements lessonforge.Extractor at compile time.
var _ lessonforge.Extractor = (*trafilatura.Extractor)(nil)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts main content as text", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<nav><a href="/">Home</a><a href="/lessons">Lessons</a></nav>
<article>
<h1>Photosynthesis</h1>
<p>This is important lesson content that should be extracted for the worksheet.</p>
</article>
<aside>Sidebar content</aside>
<footer>Copyright 2024</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		text, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, text, "important lesson content")
	})

	t.Run("removes navigation boilerplate", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<nav class="main-nav">
<ul>
<li><a href="/">Home</a></li>
<li><a href="/about">About</a></li>
<li><a href="/lessons">Lessons</a></li>
</ul>
</nav>
<main>
<h1>Main Content</h1>
<p>This paragraph contains the actual content we want.</p>
</main>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		text, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, text, "actual content we want")
		assert.NotContains(t, text, "main-nav")
	})

	t.Run("removes footer boilerplate", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<article>
<h1>Article Title</h1>
<p>Article body with substantive content for readers.</p>
</article>
<footer>
<p>Copyright 2024 Example Corp</p>
<nav>Privacy | Terms | Contact</nav>
</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		text, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, text, "substantive content")
		assert.NotContains(t, text, "Copyright 2024 Example Corp")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		_, err := ext.Extract("")

		require.Error(t, err)
		assert.Equal(t, lessonforge.EINVALID, lessonforge.ErrorCode(err))
	})

	t.Run("handles minimal valid HTML", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><p>Simple content</p></body></html>`

		ext := trafilatura.NewExtractor()
		text, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, text, "Simple content")
	})
}
