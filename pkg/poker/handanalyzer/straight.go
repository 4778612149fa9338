package handanalyzer

import "holdemtable-server/pkg/deck"

// findStraight returns the best five-card run, high to low, from cards sorted
// by rank descending. Aces are also tried as the low end of a wheel, in which
// case the ace is the last card of the run.
func findStraight(cards deck.Hand) deck.Hand {
	ranked := uniqueRanks(cards)
	n := len(ranked)
	for _, card := range ranked {
		if card.Rank != deck.Ace {
			break
		}

		ranked = append(ranked, card)
	}

	run := make(deck.Hand, 0, 5)
	prevRank := 0
	for i, card := range ranked {
		rank := card.Rank
		if i >= n {
			rank = deck.LowAce
		}

		if len(run) > 0 && prevRank-rank == 1 {
			run = append(run, card)
		} else {
			run = append(run[:0], card)
		}

		prevRank = rank
		if len(run) == 5 {
			return run
		}
	}

	return nil
}

// uniqueRanks keeps the first card of each rank
func uniqueRanks(cards deck.Hand) deck.Hand {
	ranked := make(deck.Hand, 0, len(cards))
	for _, card := range cards {
		if last := ranked.LastCard(); last != nil && last.Rank == card.Rank {
			continue
		}

		ranked = append(ranked, card)
	}

	return ranked
}

func isWheel(run deck.Hand) bool {
	return len(run) == 5 && run[0].Rank == 5 && run[4].Rank == deck.Ace
}
