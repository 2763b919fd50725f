// Package trafilatura implements fallback content extraction using the
// go-trafilatura readability engine.
package trafilatura

import (
	"strings"

	"github.com/jbetz/lessonforge"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements lessonforge.Extractor at compile time.
var _ lessonforge.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML. It is
// used as the fallback when DOM-based extraction finds too little text.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content as plain text.
func (e *Extractor) Extract(rawHTML string) (string, error) {
	if rawHTML == "" {
		return "", lessonforge.Errorf(lessonforge.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return "", err
	}

	return result.ContentText, nil
}
