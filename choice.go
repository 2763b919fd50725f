package lessonforge

import (
	"fmt"
	"strings"
)

func generateMultipleChoice(r *Resource) Content {
	questions := []ChoiceQuestion{
		{Question: "Question 1?", Options: []string{"Option 1", "Option 2", "Option 3", "Option 4"}, Answer: 0},
		{Question: "Question 2?", Options: []string{"Option 1", "Option 2", "Option 3", "Option 4"}, Answer: 1},
		{Question: "Question 3?", Options: []string{"Option 1", "Option 2", "Option 3", "Option 4"}, Answer: 2},
	}

	if r.ContentText != "" {
		sentences := ExtractSentences(r.ContentText, 5)
		vocabulary := ExtractVocabulary(r.ContentText, 12)

		// Three questions need four distinct options each; only replace the
		// defaults when the content supports that.
		if len(sentences) >= 3 && len(vocabulary) >= 12 {
			questions = questions[:0]
			for idx, sentence := range sentences[:3] {
				question := sentence
				if !strings.HasSuffix(question, "?") {
					question = "What is true about the following: " + sentence
				}

				// Option 0 is always the correct answer; the answer key
				// relies on this.
				questions = append(questions, ChoiceQuestion{
					Question: question,
					Options: []string{
						vocabulary[idx*4],
						vocabulary[idx*4+1],
						vocabulary[idx*4+2],
						vocabulary[idx*4+3],
					},
					Answer: 0,
				})
			}
		}
	}

	items := make([]ChoiceItem, 0, len(questions))
	solutions := make([]ChoiceSolution, 0, len(questions))
	for _, q := range questions {
		options := make([]ChoiceOption, 0, len(q.Options))
		for i, option := range q.Options {
			options = append(options, ChoiceOption{
				Text:      option,
				Letter:    optionLetter(i),
				IsCorrect: i == q.Answer,
			})
		}
		items = append(items, ChoiceItem{
			Question:           q.Question,
			Options:            options,
			CorrectAnswerIndex: q.Answer,
			CorrectAnswer:      q.Options[q.Answer],
		})
		solutions = append(solutions, ChoiceSolution{
			Question:      q.Question,
			CorrectOption: q.Options[q.Answer],
			CorrectLetter: optionLetter(q.Answer),
			Explanation:   fmt.Sprintf("The correct answer is %s: %s", optionLetter(q.Answer), q.Options[q.Answer]),
		})
	}

	return MultipleChoiceContent{
		Questions: questions,
		Items:     items,
		Solutions: solutions,
	}
}

// optionLetter converts an option index to its letter (0 is A).
func optionLetter(i int) string {
	return string(rune('A' + i))
}
