package lessonforge

import "strings"

// RecommendedTypes returns up to three worksheet types suited to a subject
// and grade, most appropriate first. Grades bucket into K-2, 3-5, and 6+;
// subjects bucket by keyword into math, science, reading/language, and a
// generic default. The mapping is a static table, not a learned model.
func RecommendedTypes(subject, grade string) []Type {
	subjectLower := strings.ToLower(subject)
	gradeLevel := ParseGradeLevel(grade)

	switch {
	case gradeLevel <= 2:
		switch {
		case strings.Contains(subjectLower, "math"):
			return []Type{TypeMatching, TypeDrawing, TypeMathPractice}
		case strings.Contains(subjectLower, "science"):
			return []Type{TypeLabeling, TypeDrawing, TypeMatching}
		case strings.Contains(subjectLower, "reading"), strings.Contains(subjectLower, "language"):
			return []Type{TypeMatching, TypeFillInBlank, TypeDrawing}
		default:
			return []Type{TypeDrawing, TypeMatching, TypeLabeling}
		}

	case gradeLevel <= 5:
		switch {
		case strings.Contains(subjectLower, "math"):
			return []Type{TypeMathPractice, TypeMultipleChoice, TypeFillInBlank}
		case strings.Contains(subjectLower, "science"):
			return []Type{TypeLabeling, TypeSequencing, TypeShortAnswer}
		case strings.Contains(subjectLower, "reading"), strings.Contains(subjectLower, "language"):
			return []Type{TypeVocabulary, TypeFillInBlank, TypeShortAnswer}
		default:
			return []Type{TypeMultipleChoice, TypeShortAnswer, TypeSequencing}
		}

	default:
		switch {
		case strings.Contains(subjectLower, "math"):
			return []Type{TypeMathPractice, TypeShortAnswer, TypeMultipleChoice}
		case strings.Contains(subjectLower, "science"):
			return []Type{TypeLabeling, TypeShortAnswer, TypeSequencing}
		case strings.Contains(subjectLower, "reading"), strings.Contains(subjectLower, "language"):
			return []Type{TypeVocabulary, TypeShortAnswer, TypeFillInBlank}
		default:
			return []Type{TypeShortAnswer, TypeMultipleChoice, TypeSequencing}
		}
	}
}

// Progression categorizes a resource's place in a learning sequence. It is
// a lighter-weight tagging scheme than worksheet types, used for resource
// ordering rather than activity generation.
type Progression string

// Progression categories.
const (
	ProgressionIntroduction Progression = "Introduction"
	ProgressionPractice     Progression = "Practice"
	ProgressionMastery      Progression = "Mastery"
	ProgressionExtension    Progression = "Extension"
)

// Description returns a one-line explanation of the category.
func (p Progression) Description() string {
	switch p {
	case ProgressionIntroduction:
		return "Introduces new concepts and foundational knowledge"
	case ProgressionPractice:
		return "Reinforces learning through guided practice and application"
	case ProgressionMastery:
		return "Demonstrates understanding and mastery of concepts"
	case ProgressionExtension:
		return "Extends learning with advanced exploration and challenges"
	}
	return ""
}

var (
	introductionWords = []string{"introduction", "intro ", "getting started", "basics", "fundamental"}
	introductionDescs = []string{"introduction to", "introduces", "learn about", "basic concepts"}
	practiceWords     = []string{"practice", "worksheet", "exercise", "activity"}
	practiceDescs     = []string{"practice", "reinforce", "apply what you", "try these"}
	masteryWords      = []string{"quiz", "test", "assessment", "mastery", "demonstrate"}
	masteryDescs      = []string{"demonstrate your", "show what you", "mastery", "assessment"}
	extensionWords    = []string{"advanced", "extension", "challenge", "project", "explore further"}
	extensionDescs    = []string{"extension", "advanced", "challenge yourself", "dig deeper"}
)

// Classify assigns a progression category to a resource based on keyword
// heuristics over its title, description, and type.
func Classify(r *Resource) Progression {
	titleLower := strings.ToLower(r.Title)
	descLower := strings.ToLower(r.Description)
	typeLower := strings.ToLower(r.Type)

	if containsAny(titleLower, introductionWords) || containsAny(descLower, introductionDescs) {
		return ProgressionIntroduction
	}
	if containsAny(titleLower, practiceWords) || containsAny(typeLower, []string{"worksheet", "activity"}) ||
		containsAny(descLower, practiceDescs) {
		return ProgressionPractice
	}
	if containsAny(titleLower, masteryWords) || containsAny(descLower, masteryDescs) {
		return ProgressionMastery
	}
	if containsAny(titleLower, extensionWords) || containsAny(descLower, extensionDescs) {
		return ProgressionExtension
	}

	// Fall back to the resource type alone.
	switch {
	case containsAny(typeLower, []string{"video", "lesson"}):
		return ProgressionIntroduction
	case containsAny(typeLower, []string{"worksheet", "activity"}):
		return ProgressionPractice
	case containsAny(typeLower, []string{"quiz", "assessment"}):
		return ProgressionMastery
	case containsAny(typeLower, []string{"game", "project"}):
		return ProgressionExtension
	}
	return ProgressionPractice
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
