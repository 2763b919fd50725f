package lessonforge

// AnswerKey is the solutions-only projection of a generated worksheet.
// Exactly one of the per-type fields is populated, matching Type. Because it
// is derived from the same content the worksheet was generated from, it can
// never drift from the printed sheet.
type AnswerKey struct {
	Type Type `json:"type"`

	// Note explains types without deterministic answers.
	Note string `json:"note,omitempty"`

	Pairs         []MatchingPair     `json:"pairs,omitempty"`
	Answers       []BlankAnswer      `json:"answers,omitempty"`
	Choices       []ChoiceAnswer     `json:"choices,omitempty"`
	SampleAnswers []SampleAnswer     `json:"sampleAnswers,omitempty"`
	Labels        []LabelingSolution `json:"labels,omitempty"`
	CorrectOrder  []OrderedEvent     `json:"correctOrder,omitempty"`
	Solutions     []SolvedProblem    `json:"solutions,omitempty"`
}

// BlankAnswer is one fill-in-blank answer.
type BlankAnswer struct {
	Sentence string `json:"sentence"`
	Answer   string `json:"answer"`
}

// ChoiceAnswer is one multiple-choice answer.
type ChoiceAnswer struct {
	Question      string `json:"question"`
	CorrectOption string `json:"correctOption"`
	CorrectIndex  int    `json:"correctIndex"`
}

// SampleAnswer is one short-answer model response.
type SampleAnswer struct {
	Question     string `json:"question"`
	SampleAnswer string `json:"sampleAnswer"`
}

// OrderedEvent is one sequencing event with its correct position.
type OrderedEvent struct {
	Position int    `json:"position"`
	Event    string `json:"event"`
}

// SolvedProblem is one math problem with its worked solution.
type SolvedProblem struct {
	Problem  string `json:"problem"`
	Solution string `json:"solution"`
}

// GenerateAnswerKey regenerates the worksheet for the resource with a
// neutral name and grade, then projects out the type-specific solutions.
// Generation is deterministic for a given resource, so the key always
// matches a worksheet generated from the same content.
func GenerateAnswerKey(r *Resource, typ Type) *AnswerKey {
	ws := Generate(r, "Answer Key", "N/A", typ)
	key := &AnswerKey{Type: typ}

	switch content := ws.Content.(type) {
	case VocabularyContent:
		key.Note = "Vocabulary definitions will vary. Check for accuracy and completeness."

	case MatchingContent:
		for _, s := range content.Solutions {
			key.Pairs = append(key.Pairs, MatchingPair{Left: s.LeftItem, Right: s.RightItem})
		}

	case FillInBlankContent:
		for _, s := range content.Solutions {
			key.Answers = append(key.Answers, BlankAnswer{Sentence: s.Sentence, Answer: s.Answer})
		}

	case MultipleChoiceContent:
		for i, s := range content.Solutions {
			key.Choices = append(key.Choices, ChoiceAnswer{
				Question:      s.Question,
				CorrectOption: s.CorrectOption,
				CorrectIndex:  content.Questions[i].Answer,
			})
		}

	case ShortAnswerContent:
		for _, s := range content.Solutions {
			key.SampleAnswers = append(key.SampleAnswers, SampleAnswer{
				Question:     s.Question,
				SampleAnswer: s.ModelAnswer,
			})
		}

	case DrawingContent:
		key.Note = "Drawings will vary. Evaluate against the criteria on the worksheet."

	case LabelingContent:
		key.Labels = content.Solutions

	case SequencingContent:
		for i, position := range content.CorrectOrder {
			key.CorrectOrder = append(key.CorrectOrder, OrderedEvent{
				Position: position,
				Event:    content.Events[i],
			})
		}

	case MathPracticeContent:
		for i, problem := range content.Problems {
			key.Solutions = append(key.Solutions, SolvedProblem{
				Problem:  problem,
				Solution: content.Solutions[i],
			})
		}

	default:
		key.Note = "Answer key not available for this worksheet type."
	}

	return key
}
