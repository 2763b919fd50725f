package mock

import "github.com/jbetz/lessonforge"

var _ lessonforge.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of lessonforge.Extractor.
type Extractor struct {
	ExtractFn func(html string) (string, error)
}

func (e *Extractor) Extract(html string) (string, error) {
	return e.ExtractFn(html)
}
