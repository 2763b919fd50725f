// Package goquery implements DOM-based content extraction.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jbetz/lessonforge"
)

// Ensure Extractor implements lessonforge.Extractor at compile time.
var _ lessonforge.Extractor = (*Extractor)(nil)

// contentContainers are selectors commonly used by educational sites for the
// primary lesson area, tried when the semantic elements yield little text.
const contentContainers = ".content, #content, .main-content, #main, .lesson, .resource, .worksheet, .activity, .article"

// Extractor pulls educational content out of rendered HTML using a cascade
// of DOM queries: semantic containers first, then headings and lists, then
// progressively looser fallbacks until enough text is collected.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses the HTML and returns the extracted content text. Sections
// found by different strategies are joined with blank lines. The result may
// be empty when the page has no usable content.
func (e *Extractor) Extract(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", lessonforge.Errorf(lessonforge.EINVALID, "failed to parse HTML: %v", err)
	}

	var sections []string

	// Articles are the strongest signal for lesson content.
	doc.Find("article").Each(func(_ int, sel *goquery.Selection) {
		if text := collapseSpace(sel.Text()); text != "" {
			sections = append(sections, text)
		}
	})

	// Main only when no article carried content, to avoid doubling up.
	if len(sections) == 0 {
		doc.Find("main").Each(func(_ int, sel *goquery.Selection) {
			if text := collapseSpace(sel.Text()); text != "" {
				sections = append(sections, text)
			}
		})
	}

	if headings := extractHeadings(doc); headings != "" {
		sections = append(sections, headings)
	}

	if lists := extractLists(doc); lists != "" {
		sections = append(sections, lists)
	}

	// Known container selectors when the semantic pass came up short.
	if len(sections) == 0 || len(sections[0]) < 200 {
		doc.Find(contentContainers).Each(func(_ int, sel *goquery.Selection) {
			var paragraphs []string
			sel.Find("p").Each(func(_ int, p *goquery.Selection) {
				if text := collapseSpace(p.Text()); len(text) > 30 {
					paragraphs = append(paragraphs, text)
				}
			})
			if len(paragraphs) > 0 {
				sections = append(sections, strings.Join(paragraphs, "\n\n"))
			}
		})
	}

	// Last resort: any substantial paragraph outside chrome elements.
	if totalLength(sections) < 200 {
		var paragraphs []string
		doc.Find("p").Each(func(_ int, p *goquery.Selection) {
			if insideChrome(p) {
				return
			}
			if text := collapseSpace(p.Text()); len(text) > 40 {
				paragraphs = append(paragraphs, text)
			}
		})
		if len(paragraphs) > 0 {
			sections = append(sections, strings.Join(paragraphs, "\n\n"))
		}
	}

	return strings.TrimSpace(strings.Join(sections, "\n\n")), nil
}

// extractHeadings collects page headings as "Heading: X" lines so the
// downstream processing can promote them to section markers.
func extractHeadings(doc *goquery.Document) string {
	var lines []string
	doc.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, sel *goquery.Selection) {
		text := collapseSpace(sel.Text())
		if len(text) <= 3 {
			return
		}
		// Only bare chrome labels are excluded; headings that merely
		// mention these words are real content.
		switch strings.ToLower(text) {
		case "menu", "navigation", "search":
			return
		}
		lines = append(lines, "Heading: "+text)
	})
	return strings.Join(lines, "\n")
}

// extractLists collects ordered and unordered lists with at least two items,
// skipping navigational lists.
func extractLists(doc *goquery.Document) string {
	var blocks []string
	doc.Find("ul, ol").Each(func(_ int, sel *goquery.Selection) {
		if insideChrome(sel) {
			return
		}

		items := sel.ChildrenFiltered("li")
		if items.Length() < 2 {
			return
		}

		header := "Unordered List:"
		if goquery.NodeName(sel) == "ol" {
			header = "Ordered List:"
		}

		lines := []string{header}
		items.Each(func(_ int, li *goquery.Selection) {
			if text := collapseSpace(li.Text()); text != "" {
				lines = append(lines, "- "+text)
			}
		})
		if len(lines) > 1 {
			blocks = append(blocks, strings.Join(lines, "\n"))
		}
	})
	return strings.Join(blocks, "\n\n")
}

// insideChrome reports whether the selection sits inside page chrome such as
// navigation bars, headers, or footers.
func insideChrome(sel *goquery.Selection) bool {
	return sel.Closest("nav, header, footer").Length() > 0
}

// collapseSpace normalizes all runs of whitespace to single spaces.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// totalLength sums the lengths of the collected sections.
func totalLength(sections []string) int {
	n := 0
	for _, s := range sections {
		n += len(s)
	}
	return n
}
