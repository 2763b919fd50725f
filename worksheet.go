package lessonforge

// Type identifies one of the worksheet activity categories. The string
// values are stable identifiers shared with API clients.
type Type string

// Worksheet types.
const (
	TypeVocabulary     Type = "vocabulary"
	TypeMatching       Type = "matching"
	TypeFillInBlank    Type = "fill-in-blank"
	TypeMultipleChoice Type = "multiple-choice"
	TypeShortAnswer    Type = "short-answer"
	TypeDrawing        Type = "drawing"
	TypeLabeling       Type = "labeling"
	TypeSequencing     Type = "sequencing"
	TypeMathPractice   Type = "math-practice"
)

// Types returns all worksheet types in stable order.
func Types() []Type {
	return []Type{
		TypeVocabulary,
		TypeMatching,
		TypeFillInBlank,
		TypeMultipleChoice,
		TypeShortAnswer,
		TypeDrawing,
		TypeLabeling,
		TypeSequencing,
		TypeMathPractice,
	}
}

// Valid reports whether t is a known worksheet type.
func (t Type) Valid() bool {
	for _, known := range Types() {
		if t == known {
			return true
		}
	}
	return false
}

// Worksheet is a fully generated, printable activity sheet. It is a pure
// function result with no persisted identity.
type Worksheet struct {
	Title        string  `json:"title"`
	ChildName    string  `json:"childName"`
	Grade        string  `json:"grade"`
	Date         string  `json:"date"`
	Instructions string  `json:"instructions"`
	Type         Type    `json:"type"`
	Content      Content `json:"content"`
	Source       string  `json:"source"`
}

// Content is the type-specific payload of a worksheet. Every content shape
// carries both a rendering view and a solutions view derived from the same
// items, so answer keys never drift from the printed sheet.
type Content interface {
	// WorksheetType returns the worksheet type this content belongs to.
	WorksheetType() Type
}

// Renderer produces printable documents from generated worksheets.
type Renderer interface {
	RenderWorksheet(ws *Worksheet) ([]byte, error)
	RenderAnswerKey(key *AnswerKey) ([]byte, error)
}

// VocabularyItem pairs an extracted word with its templated definition and
// an example sentence drawn from the source content.
type VocabularyItem struct {
	Word            string `json:"word"`
	Definition      string `json:"definition"`
	ExampleSentence string `json:"exampleSentence"`
}

// VocabularySolution is the answer-key view of a vocabulary item.
type VocabularySolution struct {
	Word       string `json:"word"`
	Definition string `json:"definition"`
}

// VocabularyContent is the payload for vocabulary worksheets.
type VocabularyContent struct {
	Words     []string             `json:"words"`
	Items     []VocabularyItem     `json:"items"`
	WordBank  []string             `json:"wordBank"`
	Solutions []VocabularySolution `json:"solutions"`
}

func (VocabularyContent) WorksheetType() Type { return TypeVocabulary }

// MatchingPair is one left/right match.
type MatchingPair struct {
	Left  string `json:"left"`
	Right string `json:"right"`
}

// MatchingSolution is the answer-key view of a matching pair.
type MatchingSolution struct {
	LeftItem  string `json:"leftItem"`
	RightItem string `json:"rightItem"`
}

// MatchingContent is the payload for matching worksheets.
type MatchingContent struct {
	LeftItems  []string           `json:"leftItems"`
	RightItems []string           `json:"rightItems"`
	Pairs      []MatchingPair     `json:"pairs"`
	Solutions  []MatchingSolution `json:"solutions"`
}

func (MatchingContent) WorksheetType() Type { return TypeMatching }

// FillInBlankItem is one sentence with a blanked word.
type FillInBlankItem struct {
	Sentence         string `json:"sentence"`
	Answer           string `json:"answer"`
	OriginalSentence string `json:"originalSentence"`
}

// FillInBlankSolution is the answer-key view of a blanked sentence.
type FillInBlankSolution struct {
	Sentence         string `json:"sentence"`
	Answer           string `json:"answer"`
	CompleteSentence string `json:"completeSentence"`
}

// FillInBlankContent is the payload for fill-in-blank worksheets.
type FillInBlankContent struct {
	WordBank  []string              `json:"wordBank"`
	Sentences []string              `json:"sentences"`
	Items     []FillInBlankItem     `json:"items"`
	Solutions []FillInBlankSolution `json:"solutions"`
}

func (FillInBlankContent) WorksheetType() Type { return TypeFillInBlank }

// ChoiceQuestion is a multiple-choice question with the index of the
// correct option.
type ChoiceQuestion struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   int      `json:"answer"`
}

// ChoiceOption is one lettered option in the rendering view.
type ChoiceOption struct {
	Text      string `json:"text"`
	Letter    string `json:"letter"`
	IsCorrect bool   `json:"isCorrect"`
}

// ChoiceItem is the rendering view of a multiple-choice question.
type ChoiceItem struct {
	Question           string         `json:"question"`
	Options            []ChoiceOption `json:"options"`
	CorrectAnswerIndex int            `json:"correctAnswerIndex"`
	CorrectAnswer      string         `json:"correctAnswer"`
}

// ChoiceSolution is the answer-key view of a multiple-choice question.
type ChoiceSolution struct {
	Question      string `json:"question"`
	CorrectOption string `json:"correctOption"`
	CorrectLetter string `json:"correctLetter"`
	Explanation   string `json:"explanation"`
}

// MultipleChoiceContent is the payload for multiple-choice worksheets.
type MultipleChoiceContent struct {
	Questions []ChoiceQuestion `json:"questions"`
	Items     []ChoiceItem     `json:"items"`
	Solutions []ChoiceSolution `json:"solutions"`
}

func (MultipleChoiceContent) WorksheetType() Type { return TypeMultipleChoice }

// ShortAnswerItem is the rendering view of a short-answer question.
type ShortAnswerItem struct {
	Question       string `json:"question"`
	QuestionNumber int    `json:"questionNumber"`
	ResponseLines  int    `json:"responseLines"`
}

// ShortAnswerSolution is the answer-key view of a short-answer question.
type ShortAnswerSolution struct {
	Question    string   `json:"question"`
	ModelAnswer string   `json:"modelAnswer"`
	KeyPoints   []string `json:"keyPoints"`
}

// ShortAnswerContent is the payload for short-answer worksheets.
type ShortAnswerContent struct {
	Questions     []string              `json:"questions"`
	SampleAnswers []string              `json:"sampleAnswers"`
	Items         []ShortAnswerItem     `json:"items"`
	Solutions     []ShortAnswerSolution `json:"solutions"`
}

func (ShortAnswerContent) WorksheetType() Type { return TypeShortAnswer }

// DrawingItem is one drawing sub-task with its allotted area.
type DrawingItem struct {
	Prompt            string `json:"prompt"`
	DrawingAreaHeight int    `json:"drawingAreaHeight"`
	DrawingAreaWidth  int    `json:"drawingAreaWidth"`
}

// DrawingContent is the payload for drawing worksheets. Drawing has no
// deterministic answers; EvaluationCriteria stand in for a solutions view.
type DrawingContent struct {
	Prompt             string        `json:"prompt"`
	Suggestions        []string      `json:"suggestions"`
	Items              []DrawingItem `json:"items"`
	EvaluationCriteria []string      `json:"evaluationCriteria"`
}

func (DrawingContent) WorksheetType() Type { return TypeDrawing }

// DiagramPoint is one labeled coordinate on a labeling diagram.
type DiagramPoint struct {
	ID    string  `json:"id"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Label string  `json:"label"`
}

// LabelingSolution is the answer-key view of a diagram point.
type LabelingSolution struct {
	PointID      string `json:"pointId"`
	CorrectLabel string `json:"correctLabel"`
	Description  string `json:"description"`
}

// LabelingContent is the payload for labeling worksheets.
type LabelingContent struct {
	Labels             []string           `json:"labels"`
	DiagramTitle       string             `json:"diagramTitle"`
	DiagramDescription string             `json:"diagramDescription"`
	DiagramPoints      []DiagramPoint     `json:"diagramPoints"`
	Solutions          []LabelingSolution `json:"solutions"`
	Items              []DiagramPoint     `json:"items"`
}

func (LabelingContent) WorksheetType() Type { return TypeLabeling }

// SequencingContent is the payload for sequencing worksheets. CorrectOrder
// is always a permutation of 1..len(Events).
type SequencingContent struct {
	Events       []string `json:"events"`
	CorrectOrder []int    `json:"correctOrder"`
}

func (SequencingContent) WorksheetType() Type { return TypeSequencing }

// MathPracticeContent is the payload for math-practice worksheets.
// Solutions[i] is the worked form of Problems[i].
type MathPracticeContent struct {
	Problems  []string `json:"problems"`
	Solutions []string `json:"solutions"`
}

func (MathPracticeContent) WorksheetType() Type { return TypeMathPractice }

// GenericContent is the fallback payload for unrecognized worksheet types.
type GenericContent struct {
	Items []string `json:"items"`
}

func (GenericContent) WorksheetType() Type { return "" }
