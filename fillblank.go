package lessonforge

import (
	"regexp"
	"strings"
)

// BlankMarker is the underscore run standing in for a removed word.
const BlankMarker = "____________"

func generateFillInBlank(r *Resource) Content {
	wordBank := []string{"word1", "word2", "word3", "word4", "word5"}
	sentences := []string{
		"The " + BlankMarker + " is an important part of this lesson.",
		"We learned about " + BlankMarker + " in our class today.",
		"A " + BlankMarker + " is used to measure this property.",
		"The process of " + BlankMarker + " helps us understand the concept.",
		"Scientists use " + BlankMarker + " to explain this phenomenon.",
	}
	originalSentences := []string{
		"The word1 is an important part of this lesson.",
		"We learned about word2 in our class today.",
		"A word3 is used to measure this property.",
		"The process of word4 helps us understand the concept.",
		"Scientists use word5 to explain this phenomenon.",
	}

	if r.ContentText != "" {
		vocabulary := ExtractVocabulary(r.ContentText, 5)
		extracted := ExtractSentences(r.ContentText, 5)

		if len(vocabulary) > 0 {
			wordBank = vocabulary
		}

		if len(extracted) > 0 {
			originalSentences = extracted
			sentences = make([]string, 0, len(extracted))
			for i, sentence := range extracted {
				word := wordBank[i%len(wordBank)]
				if strings.Contains(strings.ToLower(sentence), strings.ToLower(word)) {
					sentences = append(sentences, blankFirst(sentence, word))
				} else {
					// The assigned word is absent; blank the middle word
					// instead so every sentence still has exactly one blank.
					words := strings.Split(sentence, " ")
					words[len(words)/2] = BlankMarker
					sentences = append(sentences, strings.Join(words, " "))
				}
			}
		}
	}

	items := make([]FillInBlankItem, 0, len(sentences))
	for i, sentence := range sentences {
		items = append(items, FillInBlankItem{
			Sentence:         sentence,
			Answer:           wordBank[i%len(wordBank)],
			OriginalSentence: originalSentences[i],
		})
	}

	solutions := make([]FillInBlankSolution, 0, len(items))
	for _, item := range items {
		solutions = append(solutions, FillInBlankSolution{
			Sentence:         item.Sentence,
			Answer:           item.Answer,
			CompleteSentence: item.OriginalSentence,
		})
	}

	return FillInBlankContent{
		WordBank:  wordBank,
		Sentences: sentences,
		Items:     items,
		Solutions: solutions,
	}
}

// blankFirst replaces the first case-insensitive occurrence of word in
// sentence with the blank marker.
func blankFirst(sentence, word string) string {
	re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(word))
	loc := re.FindStringIndex(sentence)
	if loc == nil {
		return sentence
	}
	return sentence[:loc[0]] + BlankMarker + sentence[loc[1]:]
}
