package lessonforge

import (
	"fmt"
	"strings"
)

func generateDrawing(r *Resource) Content {
	mainTopic := "what you learned from this lesson"
	if r.Title != "" {
		mainTopic = r.Title
	}

	contextDetails := ""
	var subTopics []string

	if r.ContentText != "" {
		sentences := ExtractSentences(r.ContentText, 3)
		if len(sentences) > 0 {
			contextDetails = sentences[0]
			if len(contextDetails) > 60 {
				contextDetails = TruncateText(contextDetails, 60) + "..."
			}

			if topics := ExtractTopics(r.ContentText, 4); len(topics) > 0 {
				subTopics = topics
			} else if vocabulary := ExtractVocabulary(r.ContentText, 4); len(vocabulary) > 0 {
				for _, word := range vocabulary {
					subTopics = append(subTopics, "the "+word)
				}
			}
		}
	}

	prompt, secondaryPrompt := drawingPrompts(r, mainTopic)

	if contextDetails != "" {
		prompt += fmt.Sprintf(": %q", contextDetails)
	}

	items := []DrawingItem{
		{Prompt: prompt, DrawingAreaHeight: 300, DrawingAreaWidth: 400},
	}
	if len(subTopics) > 0 {
		items = append(items, DrawingItem{
			Prompt:            fmt.Sprintf("Add %s to your drawing", subTopics[0]),
			DrawingAreaHeight: 150,
			DrawingAreaWidth:  400,
		})
		if len(subTopics) > 1 {
			items = append(items, DrawingItem{
				Prompt:            secondaryPrompt,
				DrawingAreaHeight: 150,
				DrawingAreaWidth:  400,
			})
		}
	} else {
		items = append(items, DrawingItem{
			Prompt:            secondaryPrompt,
			DrawingAreaHeight: 200,
			DrawingAreaWidth:  400,
		})
	}

	suggestions := []string{
		"Include at least 3 key elements from the lesson",
		"Label the important parts of your drawing",
		"Use colors to show different aspects",
	}
	if len(subTopics) > 1 {
		suggestions = []string{
			fmt.Sprintf("Include %s and %s in your drawing", subTopics[0], subTopics[1]),
			"Show the relationship between different elements",
			"Use color to highlight important parts",
		}
	}

	return DrawingContent{
		Prompt:      prompt,
		Suggestions: suggestions,
		Items:       items,
		EvaluationCriteria: []string{
			fmt.Sprintf("Accurate representation of %s", mainTopic),
			"Clear labels on important parts",
			"Creative use of space and color",
			"Inclusion of key details from the lesson",
		},
	}
}

// drawingPrompts selects subject-appropriate framing for the main and
// secondary drawing prompts.
func drawingPrompts(r *Resource, mainTopic string) (string, string) {
	subject := strings.ToLower(r.Subject)
	switch {
	case strings.Contains(subject, "science") || strings.Contains(subject, "biology"):
		return "Draw a labeled diagram of " + mainTopic, "Include the important parts and label them"
	case strings.Contains(subject, "history") || strings.Contains(subject, "social studies"):
		return "Illustrate an important event from " + mainTopic, "Include key people, dates, or symbols"
	case strings.Contains(subject, "math"):
		return "Create a visual representation of " + mainTopic, "Show your understanding through shapes and symbols"
	case strings.Contains(subject, "language") || strings.Contains(subject, "english"):
		return "Create a scene that relates to " + mainTopic, "Illustrate the main concepts or characters"
	}
	return "Draw a picture of " + mainTopic, "Label the key parts of your drawing"
}
