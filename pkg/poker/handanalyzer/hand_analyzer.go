package handanalyzer

import (
	"math"
	"sort"

	"holdemtable-server/pkg/deck"
)

// HandSize is the number of cards that make up a poker hand
const HandSize = 5

// HandAnalyzer can analyze a hand
type HandAnalyzer struct {
	cards         deck.Hand
	flush         deck.Hand
	straightFlush deck.Hand
	straight      deck.Hand
	quads         []int
	trips         []int
	pairs         []int

	hand     Hand
	best     deck.Hand
	values   []int
	strength int
}

// New will return a new HandAnalyzer instance
// Any number of cards may be provided, but a poker hand is made of the best five
func New(cards []*deck.Card) *HandAnalyzer {
	// clone to prevent modifying original
	sortedCards := make(deck.Hand, len(cards))
	copy(sortedCards, cards)
	sort.SliceStable(sortedCards, func(i, j int) bool {
		return sortedCards[i].Rank > sortedCards[j].Rank
	})

	h := &HandAnalyzer{
		cards: sortedCards,
	}

	h.analyzeHand()
	h.calculateHand()
	return h
}

// analyzeHand will loop through a players hand and calculate the various combinations
// This method should only be called once from the constructor
func (h *HandAnalyzer) analyzeHand() {
	suitCounts := make(map[deck.Suit]deck.Hand)
	for _, card := range h.cards {
		suitCounts[card.Suit] = append(suitCounts[card.Suit], card)
	}

	for _, suit := range deck.Suits {
		if suited := suitCounts[suit]; len(suited) >= HandSize {
			h.flush = suited
			h.straightFlush = findStraight(suited)
			break
		}
	}

	h.straight = findStraight(h.cards)

	for i := 0; i < len(h.cards); {
		rank := h.cards[i].Rank
		n := 1
		for i+n < len(h.cards) && h.cards[i+n].Rank == rank {
			n++
		}

		switch {
		case n >= 4:
			h.quads = append(h.quads, rank)
		case n == 3:
			h.trips = append(h.trips, rank)
		case n == 2:
			h.pairs = append(h.pairs, rank)
		}

		i += n
	}
}

func (h *HandAnalyzer) calculateHand() {
	if h.GetRoyalFlush() {
		h.hand = RoyalFlush
		h.best = h.straightFlush
	} else if sf, ok := h.GetStraightFlush(); ok {
		h.hand = StraightFlush
		h.best = sf
	} else if quads, ok := h.GetFourOfAKind(); ok {
		h.hand = FourOfAKind
		h.best = h.withKickers([]int{quads}, 4)
	} else if fh, ok := h.GetFullHouse(); ok {
		h.hand = FullHouse
		h.best = append(h.cardsOfRank(fh[0], 3), h.cardsOfRank(fh[1], 2)...)
	} else if flush, ok := h.GetFlush(); ok {
		h.hand = Flush
		h.best = flush
	} else if straight, ok := h.GetStraight(); ok {
		h.hand = Straight
		h.best = straight
	} else if trips, ok := h.GetThreeOfAKind(); ok {
		h.hand = ThreeOfAKind
		h.best = h.withKickers([]int{trips}, 3)
	} else if twoPair, ok := h.GetTwoPair(); ok {
		h.hand = TwoPair
		h.best = h.withKickers(twoPair, 2)
	} else if pair, ok := h.GetPair(); ok {
		h.hand = OnePair
		h.best = h.withKickers([]int{pair}, 2)
	} else {
		h.hand = HighCard
		h.best = h.withKickers(nil, 0)
	}

	h.values = make([]int, len(h.best))
	wheel := (h.hand == Straight || h.hand == StraightFlush) && isWheel(h.best)
	for i, card := range h.best {
		h.values[i] = card.Rank
		if wheel && card.Rank == deck.Ace {
			h.values[i] = deck.LowAce
		}
	}

	h.strength = calculateStrength(h.hand, h.values)
}

// withKickers returns the cards of the given ranks (each up to perRank) followed by the highest
// remaining cards until the hand is complete
func (h *HandAnalyzer) withKickers(ranks []int, perRank int) deck.Hand {
	best := make(deck.Hand, 0, HandSize)
	used := make(map[int]bool, len(ranks))
	for _, rank := range ranks {
		best = append(best, h.cardsOfRank(rank, perRank)...)
		used[rank] = true
	}

	for _, card := range h.cards {
		if len(best) >= HandSize {
			break
		}

		if !used[card.Rank] {
			best = append(best, card)
		}
	}

	return best
}

func (h *HandAnalyzer) cardsOfRank(rank, max int) deck.Hand {
	cards := make(deck.Hand, 0, max)
	for _, card := range h.cards {
		if card.Rank == rank && len(cards) < max {
			cards = append(cards, card)
		}
	}

	return cards
}

// GetHand will return the best possible hand the cards can make
func (h *HandAnalyzer) GetHand() Hand {
	return h.hand
}

// GetCards returns the best five cards, combination cards first followed by kickers
func (h *HandAnalyzer) GetCards() deck.Hand {
	return h.best.Clone()
}

// GetRoyalFlush will return true if there's a royal flush
func (h *HandAnalyzer) GetRoyalFlush() bool {
	return h.straightFlush != nil && h.straightFlush[0].Rank == deck.Ace
}

// GetStraightFlush will return the best straight flush, if possible
func (h *HandAnalyzer) GetStraightFlush() (deck.Hand, bool) {
	if h.straightFlush != nil {
		return h.straightFlush, true
	}

	return nil, false
}

// GetFourOfAKind will return the best four of a kind, if possible
func (h *HandAnalyzer) GetFourOfAKind() (int, bool) {
	if len(h.quads) > 0 {
		return h.quads[0], true
	}

	return 0, false
}

// GetFullHouse will return the rank of the trips and the rank of the pair, if possible
func (h *HandAnalyzer) GetFullHouse() ([]int, bool) {
	if len(h.trips) == 0 {
		return nil, false
	}

	trips := h.trips[0]
	pair, ok := h.GetPair()
	if len(h.trips) >= 2 && (!ok || h.trips[1] > pair) {
		// the second set of trips plays as the pair
		pair, ok = h.trips[1], true
	}

	if !ok {
		return nil, false
	}

	return []int{trips, pair}, true
}

// GetFlush will return the best possible flush, if possible
func (h *HandAnalyzer) GetFlush() (deck.Hand, bool) {
	if h.flush != nil {
		return h.flush[0:HandSize], true
	}

	return nil, false
}

// GetStraight will return the best straight, if possible
func (h *HandAnalyzer) GetStraight() (deck.Hand, bool) {
	if h.straight != nil {
		return h.straight, true
	}

	return nil, false
}

// GetThreeOfAKind will return the best three of a kind, if possible
func (h *HandAnalyzer) GetThreeOfAKind() (int, bool) {
	if len(h.trips) > 0 {
		return h.trips[0], true
	}

	return 0, false
}

// GetTwoPair will return the best two pairs, if possible
func (h *HandAnalyzer) GetTwoPair() ([]int, bool) {
	if len(h.pairs) >= 2 {
		return h.pairs[0:2], true
	}

	return nil, false
}

// GetPair will return the best pair, if possible
func (h *HandAnalyzer) GetPair() (int, bool) {
	if len(h.pairs) > 0 {
		return h.pairs[0], true
	}

	return 0, false
}

func calculateStrength(hand Hand, values []int) int {
	fiveCards := make([]int, HandSize)
	copy(fiveCards, values)

	strength := math.Pow(15, HandSize) * float64(hand)
	for i := 0; i < HandSize; i++ {
		val := fiveCards[HandSize-1-i]
		strength += math.Pow(15, float64(i)) * float64(val)
	}

	return int(strength)
}

// GetStrength returns the strength of the hand
// A stronger hand always has a higher strength, equal hands have equal strengths
func (h *HandAnalyzer) GetStrength() int {
	return h.strength
}
