package lessonforge

import (
	"fmt"
	"strings"
)

// placeholderWords is the vocabulary used when a resource carries no
// content text.
var placeholderWords = []string{"Term 1", "Term 2", "Term 3", "Term 4", "Term 5"}

func generateVocabulary(r *Resource) Content {
	words := placeholderWords
	if r.ContentText != "" {
		if extracted := ExtractVocabulary(r.ContentText, 8); len(extracted) > 0 {
			words = extracted
		}
	}

	var examples []string
	if r.ContentText != "" {
		examples = ExtractSentences(r.ContentText, len(words)*2)
	}

	items := make([]VocabularyItem, 0, len(words))
	for i, word := range words {
		example := ""
		if len(examples) > 0 {
			for _, s := range examples {
				if strings.Contains(strings.ToLower(s), strings.ToLower(word)) {
					example = s
					break
				}
			}
			if example == "" {
				example = examples[i%len(examples)]
			}
		} else {
			example = fmt.Sprintf("This is an example sentence using the word %q.", word)
		}

		items = append(items, VocabularyItem{
			Word:            word,
			Definition:      vocabularyDefinition(r),
			ExampleSentence: example,
		})
	}

	// Derive the word bank and solutions views from the same items.
	solutions := make([]VocabularySolution, 0, len(items))
	for _, item := range items {
		solutions = append(solutions, VocabularySolution{Word: item.Word, Definition: item.Definition})
	}

	return VocabularyContent{
		Words:     words,
		Items:     items,
		WordBank:  words,
		Solutions: solutions,
	}
}

// vocabularyDefinition templates a definition from the resource subject.
// Definitions are scaffolding for the student to refine, not dictionary
// entries.
func vocabularyDefinition(r *Resource) string {
	if r.Subject == "" {
		return "An important term or concept related to this topic."
	}

	switch strings.ToLower(r.Subject) {
	case "math", "mathematics":
		return fmt.Sprintf("A mathematical term related to %s.", titleOr(r, "this topic"))
	case "science":
		return fmt.Sprintf("A scientific concept that relates to %s.", titleOr(r, "natural phenomena"))
	case "history", "social studies":
		return fmt.Sprintf("A historical term referring to %s.", titleOr(r, "past events or conditions"))
	case "english", "language arts":
		return "A literary term or concept used in language studies."
	default:
		return fmt.Sprintf("An important term related to %s.", titleOr(r, "this subject"))
	}
}
