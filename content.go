package lessonforge

import (
	"regexp"
	"unicode/utf8"
)

// MaxContentLength is the hard cap on processed content text.
const MaxContentLength = 20000

var (
	excessNewlinesRe = regexp.MustCompile(`\n{3,}`)
	bulletRe         = regexp.MustCompile(`\n[-•*](\s)`)
	headingLineRe    = regexp.MustCompile(`Heading:\s*([^\n]+)`)

	// Section keywords wrapped in ===Name=== markers. Each pattern is
	// applied once against the whole text, case-insensitively.
	sectionRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(Introduction|Overview|Summary):`),
		regexp.MustCompile(`(?i)(Steps|Instructions|Procedure):`),
		regexp.MustCompile(`(?i)(Materials|Supplies|Resources):`),
		regexp.MustCompile(`(?i)(Conclusion|Results|Outcome):`),
		regexp.MustCompile(`(?i)(Assessment|Evaluation|Quiz):`),
	}
)

// ProcessContent cleans raw extracted text for worksheet generation:
// collapses excessive blank lines, marks recognized section boundaries with
// ===Name=== delimiters, normalizes bullet characters, promotes
// "Heading: X" lines to === X === markers, and truncates to
// MaxContentLength with an explicit suffix.
func ProcessContent(content string) string {
	if content == "" {
		return ""
	}

	content = excessNewlinesRe.ReplaceAllString(content, "\n\n")

	for _, re := range sectionRes {
		content = re.ReplaceAllString(content, "\n\n===$1===\n\n")
	}

	content = bulletRe.ReplaceAllString(content, "\n-$1")

	content = headingLineRe.ReplaceAllString(content, "=== $1 ===")

	if len(content) > MaxContentLength {
		content = TruncateText(content, MaxContentLength) + "...[content truncated]"
	}

	return content
}

// TruncateText cuts s to at most max bytes without splitting a multi-byte
// character.
func TruncateText(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}
