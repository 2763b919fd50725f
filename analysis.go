package lessonforge

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Text-analysis helpers shared by the worksheet generators. All of them are
// deterministic, return empty slices on empty input, and never exceed the
// requested limit.

var (
	punctRe     = regexp.MustCompile(`[^\w\s']`)
	sentenceRe  = regexp.MustCompile(`[.!?]+`)
	listItemRe  = regexp.MustCompile(`<li[^>]*>(.*?)</li>`)
	headingRe   = regexp.MustCompile(`<h[1-6][^>]*>(.*?)</h[1-6]>`)
	tagRe       = regexp.MustCompile(`<[^>]*>`)
	numericRe   = regexp.MustCompile(`^\d+$`)
	paragraphRe = regexp.MustCompile(`\n+`)
	numberRe    = regexp.MustCompile(`\b\d+\b`)
	gradeRe     = regexp.MustCompile(`(\d+)(st|nd|rd|th)?`)
)

// Noun suffixes accepted by ExtractVocabulary.
var nounSuffixes = []string{"tion", "ness", "ity", "ment", "ology", "ics"}

// ExtractVocabulary pulls likely nouns from content text: tokens of at least
// four characters that are either capitalized or carry a common noun suffix.
// Duplicates are removed preserving first-seen order.
func ExtractVocabulary(contentText string, limit int) []string {
	if contentText == "" || limit <= 0 {
		return []string{}
	}

	seen := make(map[string]struct{})
	words := []string{}

	for _, token := range strings.Fields(contentText) {
		cleaned := strings.TrimSpace(punctRe.ReplaceAllString(token, ""))
		if len(cleaned) < 4 {
			continue
		}
		if !isCapitalized(cleaned) && !hasNounSuffix(cleaned) {
			continue
		}
		if _, ok := seen[cleaned]; ok {
			continue
		}
		seen[cleaned] = struct{}{}
		words = append(words, cleaned)
		if len(words) == limit {
			break
		}
	}

	return words
}

// isCapitalized reports whether the first rune is not a lower-case letter.
// Digits and underscores count as capitalized, matching the loose
// proper-noun heuristic this filter implements.
func isCapitalized(word string) bool {
	r, _ := utf8.DecodeRuneInString(word)
	return !unicode.IsLower(r)
}

func hasNounSuffix(word string) bool {
	for _, suffix := range nounSuffixes {
		if strings.HasSuffix(word, suffix) {
			return true
		}
	}
	return false
}

// ExtractSentences splits content text on sentence terminators and keeps
// sentences of reasonable length (20 to 150 characters exclusive). When more
// qualifying sentences exist than requested, it samples them at an even
// stride so the selection spans the whole text; the selection is
// deterministic and order-preserving.
func ExtractSentences(contentText string, count int) []string {
	if contentText == "" || count <= 0 {
		return []string{}
	}

	var sentences []string
	for _, s := range sentenceRe.Split(contentText, -1) {
		s = strings.TrimSpace(s)
		if len(s) > 20 && len(s) < 150 {
			sentences = append(sentences, s)
		}
	}

	if len(sentences) <= count {
		result := make([]string, 0, len(sentences))
		for _, s := range sentences {
			result = append(result, s+".")
		}
		return result
	}

	step := len(sentences) / count
	result := make([]string, 0, count)
	for i := 0; i < count; i++ {
		index := i * step
		if index > len(sentences)-1 {
			index = len(sentences) - 1
		}
		result = append(result, sentences[index]+".")
	}

	return result
}

// ExtractTopics pulls a list of topic strings from content text. HTML list
// items are preferred, then headings, then the first sentence of short
// paragraphs. Each source is consulted only until count is reached.
func ExtractTopics(contentText string, count int) []string {
	if contentText == "" || count <= 0 {
		return []string{}
	}

	var topics []string

	for _, m := range listItemRe.FindAllStringSubmatch(contentText, -1) {
		if len(topics) >= count {
			break
		}
		inner := strings.TrimSpace(m[1])
		if len(inner) > 5 && !numericRe.MatchString(inner) {
			topics = append(topics, strings.TrimSpace(tagRe.ReplaceAllString(m[1], "")))
		}
	}

	if len(topics) < count {
		for _, m := range headingRe.FindAllStringSubmatch(contentText, -1) {
			if len(topics) >= count {
				break
			}
			inner := strings.TrimSpace(m[1])
			if len(inner) > 3 {
				topics = append(topics, strings.TrimSpace(tagRe.ReplaceAllString(m[1], "")))
			}
		}
	}

	if len(topics) < count {
		for _, paragraph := range paragraphRe.Split(contentText, -1) {
			if len(topics) >= count {
				break
			}
			paragraph = strings.TrimSpace(paragraph)
			if len(paragraph) > 10 && len(paragraph) < 100 {
				first := strings.TrimSpace(sentenceRe.Split(paragraph, -1)[0])
				if len(first) > 10 {
					topics = append(topics, first+".")
				}
			}
		}
	}

	if len(topics) > count {
		topics = topics[:count]
	}
	if topics == nil {
		topics = []string{}
	}
	return topics
}

// ExtractNumbers returns up to limit distinct integers (as written) found in
// the content text, preserving first-seen order.
func ExtractNumbers(contentText string, limit int) []string {
	if contentText == "" || limit <= 0 {
		return []string{}
	}

	seen := make(map[string]struct{})
	numbers := []string{}
	for _, n := range numberRe.FindAllString(contentText, -1) {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		numbers = append(numbers, n)
		if len(numbers) == limit {
			break
		}
	}
	return numbers
}

// ParseGradeLevel converts a grade string like "3rd Grade" or "Kindergarten"
// to a numeric level (Kindergarten is 0). Unparsable grades default to 3.
func ParseGradeLevel(grade string) int {
	gradeLower := strings.ToLower(grade)

	if strings.Contains(gradeLower, "kindergarten") || strings.Contains(gradeLower, "k-") {
		return 0
	}

	if m := gradeRe.FindStringSubmatch(gradeLower); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n
		}
	}

	return 3
}
