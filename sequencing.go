package lessonforge

import "strings"

// sequenceIndicators mark sentences that describe ordered process steps.
var sequenceIndicators = []string{
	"first", "second", "third", "fourth", "fifth", "then", "next", "finally", "lastly",
	"step 1", "step 2", "step 3", "step 4", "step 5",
	"begin", "start", "initially", "after", "before", "following", "subsequently",
}

// Temporal scoring for inferring order when no explicit ordinals line up.
var (
	earlyWords = []string{"begin", "start", "initial", "prepare"}
	midWords   = []string{"then", "next", "after", "continue"}
	lateWords  = []string{"finally", "last", "complete", "finish"}
)

// scrambledOrder is the fixed fallback when the events carry no ordering
// signal at all. The particular permutation is arbitrary but stable.
var scrambledOrder = []int{2, 4, 1, 5, 3}

func generateSequencing(r *Resource) Content {
	events := []string{
		"Event description 1",
		"Event description 2",
		"Event description 3",
		"Event description 4",
		"Event description 5",
	}

	if r.ContentText != "" {
		// Prefer sentences that talk about sequence.
		all := ExtractSentences(r.ContentText, 20)
		var sequenced []string
		for _, sentence := range all {
			if containsAny(strings.ToLower(sentence), sequenceIndicators) {
				sequenced = append(sequenced, sentence)
			}
		}

		if len(sequenced) >= 5 {
			events = sequenced[:5]
		} else if sentences := ExtractSentences(r.ContentText, 5); len(sentences) > 0 {
			events = sentences
		} else if topics := ExtractTopics(r.ContentText, 5); len(topics) > 0 {
			events = topics
		}
	}

	return SequencingContent{
		Events:       events,
		CorrectOrder: inferOrder(events),
	}
}

// inferOrder derives the correct sequence for the events: identity when the
// events already carry ordinals at matching positions, a temporal-word score
// sort when they suggest an order, and a fixed scramble otherwise.
func inferOrder(events []string) []int {
	if hasPositionalIndicators(events) {
		order := make([]int, len(events))
		for i := range events {
			order[i] = i + 1
		}
		return order
	}

	scores := make([]int, len(events))
	signal := false
	for i, event := range events {
		lower := strings.ToLower(event)
		if containsAny(lower, earlyWords) {
			scores[i] -= 3
		}
		if containsAny(lower, lateWords) {
			scores[i] += 3
		}
		if scores[i] != 0 {
			signal = true
		}
	}

	if !signal {
		// Drop positions beyond the event count so the result stays a
		// permutation of 1..len(events) even with short event lists.
		order := make([]int, 0, len(events))
		for _, p := range scrambledOrder {
			if p <= len(events) {
				order = append(order, p)
			}
		}
		return order
	}

	// Stable sort of indices by ascending score.
	indices := make([]int, len(events))
	for i := range indices {
		indices[i] = i
	}
	for i := 1; i < len(indices); i++ {
		for j := i; j > 0 && scores[indices[j-1]] > scores[indices[j]]; j-- {
			indices[j-1], indices[j] = indices[j], indices[j-1]
		}
	}

	order := make([]int, len(indices))
	for i, idx := range indices {
		order[i] = idx + 1
	}
	return order
}

// hasPositionalIndicators reports whether any event carries an explicit
// ordinal matching its position ("first" as the first event, "finally" as
// the last, or "step N" anywhere).
func hasPositionalIndicators(events []string) bool {
	ordinals := []string{"first", "second", "third", "fourth", "fifth"}

	for i, event := range events {
		lower := strings.ToLower(event)
		if strings.Contains(lower, "step "+string(rune('1'+i))) {
			return true
		}
		if i < len(ordinals) && strings.Contains(lower, ordinals[i]) {
			return true
		}
		if i == len(events)-1 && (strings.Contains(lower, "finally") || strings.Contains(lower, "lastly")) {
			return true
		}
	}
	return false
}
