package lessonforge

import "strings"

func generateMatching(r *Resource) Content {
	leftItems := []string{"Item A", "Item B", "Item C", "Item D", "Item E"}
	rightItems := []string{"Description 1", "Description 2", "Description 3", "Description 4", "Description 5"}

	if r.ContentText != "" {
		vocabulary := ExtractVocabulary(r.ContentText, 5)
		sentences := ExtractSentences(r.ContentText, 5)

		if len(vocabulary) >= 5 {
			leftItems = vocabulary[:5]
		}

		if len(sentences) >= 5 {
			// Truncate sentences to short fragments for the right column.
			rightItems = make([]string, 0, len(sentences))
			for _, sentence := range sentences {
				words := strings.Split(sentence, " ")
				n := len(words)
				if n > 4 {
					n = 4
				}
				rightItems = append(rightItems, strings.Join(words[:n], " ")+"...")
			}
		}
	}

	// Left item i matches right item i; both views derive from the same
	// index pairing.
	pairs := make([]MatchingPair, 0, len(leftItems))
	solutions := make([]MatchingSolution, 0, len(leftItems))
	for i, item := range leftItems {
		right := rightItems[i%len(rightItems)]
		pairs = append(pairs, MatchingPair{Left: item, Right: right})
		solutions = append(solutions, MatchingSolution{LeftItem: item, RightItem: right})
	}

	return MatchingContent{
		LeftItems:  leftItems,
		RightItems: rightItems,
		Pairs:      pairs,
		Solutions:  solutions,
	}
}
