package lessonforge

import "time"

// generatorFunc builds type-specific content from a resource. Generators are
// total: a resource without content text yields placeholder content, never
// an error.
type generatorFunc func(r *Resource) Content

// generators is the single dispatch point for worksheet generation. Every
// member of Types() must have an entry; TestGeneratorCoverage enforces this,
// so a new type cannot ship without its generator.
var generators = map[Type]generatorFunc{
	TypeVocabulary:     generateVocabulary,
	TypeMatching:       generateMatching,
	TypeFillInBlank:    generateFillInBlank,
	TypeMultipleChoice: generateMultipleChoice,
	TypeShortAnswer:    generateShortAnswer,
	TypeDrawing:        generateDrawing,
	TypeLabeling:       generateLabeling,
	TypeSequencing:     generateSequencing,
	TypeMathPractice:   generateMathPractice,
}

// Generate builds a complete worksheet for the resource. It is a pure
// function of its arguments (the date stamp aside) and never fails: unknown
// types and missing content text degrade to placeholder activities so the
// worksheet pipeline always produces usable output.
func Generate(r *Resource, childName, grade string, typ Type) *Worksheet {
	var content Content
	if gen, ok := generators[typ]; ok {
		content = gen(r)
	} else {
		content = GenericContent{Items: []string{"Complete the activities below."}}
	}

	source := r.Source
	if source == "" {
		source = "Educational Resource"
	}

	return &Worksheet{
		Title:        r.Title + " - Activity Worksheet",
		ChildName:    childName,
		Grade:        grade,
		Date:         time.Now().Format("1/2/2006"),
		Instructions: Instructions(typ),
		Type:         typ,
		Content:      content,
		Source:       source,
	}
}

// Instructions returns the student-facing directions for a worksheet type.
func Instructions(typ Type) string {
	switch typ {
	case TypeVocabulary:
		return "Define each vocabulary word and use it in a sentence."
	case TypeMatching:
		return "Draw a line to match each item in the left column with its correct match in the right column."
	case TypeFillInBlank:
		return "Fill in each blank with the correct word from the word bank."
	case TypeMultipleChoice:
		return "Circle the letter of the best answer for each question."
	case TypeShortAnswer:
		return "Answer each question with complete sentences."
	case TypeDrawing:
		return "Draw a picture based on the instructions for each section."
	case TypeLabeling:
		return "Label each part of the diagram using the words provided."
	case TypeSequencing:
		return "Number the events in the correct order."
	case TypeMathPractice:
		return "Solve each math problem. Show your work."
	}
	return "Complete the activities on this worksheet."
}

// titleOr returns the resource title, or the fallback when it is empty.
func titleOr(r *Resource, fallback string) string {
	if r.Title != "" {
		return r.Title
	}
	return fallback
}
