package lessonforge

import (
	"fmt"
	"strings"
)

func generateShortAnswer(r *Resource) Content {
	questions := []string{"Question 1?", "Question 2?", "Question 3?", "Question 4?"}
	sampleAnswers := []string{
		"Sample answer 1 for answer key.",
		"Sample answer 2 for answer key.",
		"Sample answer 3 for answer key.",
		"Sample answer 4 for answer key.",
	}

	if r.ContentText != "" {
		sentences := ExtractSentences(r.ContentText, 12)
		vocabulary := ExtractVocabulary(r.ContentText, 8)

		if len(sentences) >= 8 {
			// First batch of sentences becomes questions, second batch
			// becomes the sample answers that go with them.
			questions = questions[:0]
			for index, sentence := range sentences[:4] {
				questions = append(questions, toQuestion(r, sentence, index, vocabulary))
			}

			end := 10
			if end > len(sentences) {
				end = len(sentences)
			}
			sampleAnswers = sampleAnswers[:0]
			for index, sentence := range sentences[6:end] {
				sampleAnswers = append(sampleAnswers, phraseAnswer(questions[index%len(questions)], sentence))
			}
		}
	}

	items := make([]ShortAnswerItem, 0, len(questions))
	for i, question := range questions {
		items = append(items, ShortAnswerItem{
			Question:       question,
			QuestionNumber: i + 1,
			ResponseLines:  3,
		})
	}

	var keyPoints []string
	if r.ContentText != "" {
		for _, topic := range ExtractTopics(r.ContentText, 8) {
			keyPoints = append(keyPoints, fmt.Sprintf("Consider how %s relates to the question.", topic))
		}
	}
	if len(keyPoints) == 0 {
		for _, answer := range sampleAnswers {
			words := strings.Split(answer, " ")
			if len(words) > 5 {
				keyPoints = append(keyPoints, "Key point: "+strings.Join(words[:5], " ")+"...")
			} else {
				keyPoints = append(keyPoints, "Key point related to the answer.")
			}
		}
	}

	solutions := make([]ShortAnswerSolution, 0, len(questions))
	for i, question := range questions {
		solutions = append(solutions, ShortAnswerSolution{
			Question:    question,
			ModelAnswer: sampleAnswers[i%len(sampleAnswers)],
			KeyPoints: []string{
				keyPoints[i*2%len(keyPoints)],
				keyPoints[(i*2+1)%len(keyPoints)],
			},
		})
	}

	return ShortAnswerContent{
		Questions:     questions,
		SampleAnswers: sampleAnswers,
		Items:         items,
		Solutions:     solutions,
	}
}

// toQuestion turns a declarative sentence into a question using keyword and
// structure heuristics.
func toQuestion(r *Resource, sentence string, index int, vocabulary []string) string {
	if strings.HasSuffix(sentence, "?") {
		return sentence
	}

	lower := strings.ToLower(sentence)
	words := strings.Split(sentence, " ")

	key := ""
	if len(vocabulary) > 0 {
		key = vocabulary[index%len(vocabulary)]
	}

	switch {
	case key != "" && len(key) > 3 && strings.Contains(lower, strings.ToLower(key)):
		return fmt.Sprintf("What is the significance of %s in the context of %s?", key, titleOr(r, "this topic"))
	case len(words) > 8:
		switch {
		case strings.Contains(lower, "because") || strings.Contains(lower, "since"):
			return fmt.Sprintf("Why %s %s?", strings.ToLower(words[0]), strings.Join(words[1:4], " "))
		case strings.Contains(lower, "is") || strings.Contains(lower, "are"):
			return fmt.Sprintf("What %s and why is it important?", strings.Join(words[:3], " "))
		default:
			return fmt.Sprintf("How would you explain the concept that %s...?", strings.Join(words[:6], " "))
		}
	default:
		return fmt.Sprintf("What is the main idea expressed in: %q?", sentence)
	}
}

// phraseAnswer rewrites a source sentence so it reads as an answer to the
// question's opening word.
func phraseAnswer(question, sentence string) string {
	switch {
	case strings.HasPrefix(question, "Why"):
		return "This happens because " + strings.ToLower(sentence)
	case strings.HasPrefix(question, "How"):
		return "You can explain this by understanding that " + strings.ToLower(sentence)
	case strings.HasPrefix(question, "What is the main idea"):
		return "The main idea is that " + strings.ToLower(sentence)
	default:
		return sentence
	}
}
