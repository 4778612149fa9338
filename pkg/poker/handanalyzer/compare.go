package handanalyzer

import "holdemtable-server/pkg/deck"

// Compare compares two analyzed hands
// Returns 1 if a wins, -1 if b wins, and 0 on a tie
// Hands are ranked by category, then by each card of the best five in turn. An ace
// at the bottom of a wheel counts as one.
func Compare(a, b *HandAnalyzer) int {
	if a.hand != b.hand {
		if a.hand > b.hand {
			return 1
		}

		return -1
	}

	for i := 0; i < len(a.values) && i < len(b.values); i++ {
		if a.values[i] > b.values[i] {
			return 1
		} else if a.values[i] < b.values[i] {
			return -1
		}
	}

	return 0
}

// CompareCards analyzes and compares two sets of cards
func CompareCards(a, b []*deck.Card) int {
	return Compare(New(a), New(b))
}
