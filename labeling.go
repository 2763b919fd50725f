package lessonforge

import (
	"fmt"
	"math"
	"strings"
)

// Diagram layout constants. The specific magic numbers are deliberate
// product choices carried over as-is; see DESIGN.md.
const (
	diagramCenterX    = 150.0
	diagramCenterY    = 150.0
	organismDistance  = 80.0
	organismYCompress = 0.7
	shapeRadius       = 100.0
	mapOriginX        = 70.0
	mapOriginY        = 70.0
	mapSpacing        = 100.0
)

func generateLabeling(r *Resource) Content {
	labels := []string{"label1", "label2", "label3", "label4", "label5"}
	diagramTitle := "Lesson Diagram"
	diagramDescription := "A diagram related to the lesson topic"

	if r.ContentText != "" {
		if topics := ExtractTopics(r.ContentText, 5); len(topics) > 0 {
			labels = labels[:0]
			for _, topic := range topics {
				// Long topics get trimmed to the first couple of words so
				// labels stay concise.
				words := strings.Split(topic, " ")
				if len(words) > 3 {
					labels = append(labels, strings.Join(words[:2], " "))
				} else {
					labels = append(labels, topic)
				}
			}
		} else if vocabulary := ExtractVocabulary(r.ContentText, 5); len(vocabulary) > 0 {
			labels = vocabulary
		}

		if sentences := ExtractSentences(r.ContentText, 5); len(sentences) > 0 {
			diagramDescription = sentences[0]
		}
	}

	if r.Title != "" {
		diagramTitle = r.Title + " Diagram"
	} else if r.Subject != "" {
		diagramTitle = r.Subject + " Diagram"
	}

	points := layoutPoints(diagramKind(r.Subject), labels)

	descriptions := pointDescriptions(r, labels)
	solutions := make([]LabelingSolution, 0, len(labels))
	for i, label := range labels {
		solutions = append(solutions, LabelingSolution{
			PointID:      points[i].ID,
			CorrectLabel: label,
			Description:  descriptions[i%len(descriptions)],
		})
	}

	return LabelingContent{
		Labels:             labels,
		DiagramTitle:       diagramTitle,
		DiagramDescription: diagramDescription,
		DiagramPoints:      points,
		Solutions:          solutions,
		Items:              points,
	}
}

// diagramKind buckets the subject into a diagram layout family.
func diagramKind(subject string) string {
	s := strings.ToLower(subject)
	switch {
	case strings.Contains(s, "science") || strings.Contains(s, "biology"):
		return "organism"
	case strings.Contains(s, "geography") || strings.Contains(s, "map"):
		return "map"
	case strings.Contains(s, "math") || strings.Contains(s, "geometry"):
		return "shape"
	case strings.Contains(s, "anatomy") || strings.Contains(s, "body"):
		return "body"
	}
	return "generic"
}

// layoutPoints places one point per label according to the diagram kind.
// All layouts are index-deterministic.
func layoutPoints(kind string, labels []string) []DiagramPoint {
	points := make([]DiagramPoint, 0, len(labels))

	for i, label := range labels {
		var x, y float64

		switch kind {
		case "organism":
			// Oval pattern, vertically compressed.
			angle := float64(i) / float64(len(labels)) * 2 * math.Pi
			x = diagramCenterX + math.Cos(angle)*organismDistance
			y = diagramCenterY + math.Sin(angle)*organismDistance*organismYCompress

		case "map":
			// Three-column grid.
			x = mapOriginX + float64(i%3)*mapSpacing
			y = mapOriginY + float64(i/3)*mapSpacing

		case "shape":
			// Regular polygon starting at the top.
			angle := float64(i)/float64(len(labels))*2*math.Pi - math.Pi/2
			x = diagramCenterX + math.Cos(angle)*shapeRadius
			y = diagramCenterY + math.Sin(angle)*shapeRadius

		case "body":
			x, y = bodyPosition(i)

		default:
			// Pseudo-random but index-deterministic grid spread.
			x = 80 + float64(i%3)*70 + float64(i*13%30)
			y = 80 + float64(i/3)*70 + float64(i*7%20)
		}

		points = append(points, DiagramPoint{
			ID:    fmt.Sprintf("point-%d", i+1),
			X:     x,
			Y:     y,
			Label: label,
		})
	}

	return points
}

// bodyPosition returns the fixed anatomical coordinate for the given index.
func bodyPosition(i int) (float64, float64) {
	switch i {
	case 0:
		return 150, 50 // head
	case 1:
		return 150, 100 // chest
	case 2:
		return 150, 150 // abdomen
	case 3:
		return 100, 130 // left side
	case 4:
		return 200, 130 // right side
	}
	return 150, 200 + float64(i-5)*30
}

// pointDescriptions finds a content sentence mentioning each label, falling
// back to the sentence at the label's position, then to a generic line.
func pointDescriptions(r *Resource, labels []string) []string {
	descriptions := make([]string, 0, len(labels))

	if r.ContentText != "" {
		sentences := ExtractSentences(r.ContentText, len(labels)*2)
		for i, label := range labels {
			matched := ""
			for _, s := range sentences {
				if strings.Contains(strings.ToLower(s), strings.ToLower(label)) {
					matched = s
					break
				}
			}
			switch {
			case matched != "":
				descriptions = append(descriptions, matched)
			case i < len(sentences):
				descriptions = append(descriptions, sentences[i])
			default:
				descriptions = append(descriptions, fmt.Sprintf("This identifies the %s in the diagram.", label))
			}
		}
		return descriptions
	}

	for _, label := range labels {
		descriptions = append(descriptions, fmt.Sprintf("This identifies the %s in the diagram.", label))
	}
	return descriptions
}
