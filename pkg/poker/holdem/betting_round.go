package holdem

import (
	"encoding/json"
)

// BettingRound is the phase of the hand
type BettingRound int

// constants for BettingRound
const (
	BettingRoundNone BettingRound = iota
	BettingRoundPreFlop
	BettingRoundFlop
	BettingRoundTurn
	BettingRoundRiver
	BettingRoundShowdown
)

func (b BettingRound) String() string {
	switch b {
	case BettingRoundNone:
		return "none"
	case BettingRoundPreFlop:
		return "pre-flop"
	case BettingRoundFlop:
		return "flop"
	case BettingRoundTurn:
		return "turn"
	case BettingRoundRiver:
		return "river"
	case BettingRoundShowdown:
		return "showdown"
	}

	return ""
}

// MarshalJSON encodes JSON
func (b BettingRound) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{
		ID:   int(b),
		Name: b.String(),
	})
}

// InProgress returns true if a hand is being played
func (b BettingRound) InProgress() bool {
	return b >= BettingRoundPreFlop && b <= BettingRoundRiver
}

// Street returns the next street and the number of community cards it reveals
// ok is false if no further cards are dealt from this betting round
func (b BettingRound) Street() (next BettingRound, reveal int, ok bool) {
	switch b {
	case BettingRoundPreFlop:
		return BettingRoundFlop, 3, true
	case BettingRoundFlop:
		return BettingRoundTurn, 1, true
	case BettingRoundTurn:
		return BettingRoundRiver, 1, true
	}

	return b, 0, false
}

// CanTransitionTo returns true if moving from b to next is legal
func (b BettingRound) CanTransitionTo(next BettingRound) bool {
	switch next {
	case BettingRoundNone:
		// a reset is always possible
		return true
	case BettingRoundPreFlop:
		return b == BettingRoundNone || b == BettingRoundShowdown
	case BettingRoundShowdown:
		// everyone folding ends the hand on any street
		return b.InProgress()
	}

	street, _, ok := b.Street()
	return ok && street == next
}

func (t *Table) transition(next BettingRound) error {
	if !t.bettingRound.CanTransitionTo(next) {
		return ErrInvalidPhase
	}

	t.bettingRound = next
	return nil
}
