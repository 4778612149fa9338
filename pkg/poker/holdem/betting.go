package holdem

import (
	"fmt"

	"holdemtable-server/pkg/poker/action"
)

// Act performs the action for the player
// amount is only used for action.Bet (the chips to add) and action.Raise (the total to raise to)
func (t *Table) Act(name string, a action.Action, amount int) error {
	switch a {
	case action.Bet:
		return t.Bet(name, amount)
	case action.Raise:
		return t.Raise(name, amount)
	case action.Call:
		return t.Call(name)
	case action.Check:
		return t.Check(name)
	case action.Fold:
		return t.Fold(name)
	}

	return fmt.Errorf("%w: %q", ErrUnknownAction, string(a))
}

// actor returns the player if they are allowed to make a decision right now
func (t *Table) actor(name string) (int, *Player, error) {
	if !t.InProgress() {
		return NoSeat, nil, ErrNoHandInProgress
	}

	seat, p := t.findPlayer(name)
	if p == nil {
		return NoSeat, nil, ErrPlayerNotFound
	}

	if seat != t.currentPlayer {
		return NoSeat, nil, ErrNotYourTurn
	}

	if !p.canAct() {
		return NoSeat, nil, ErrCannotAct
	}

	return seat, p, nil
}

// Bet adds amount chips to the player's bet
// The bet must at least call and add a minimum raise, unless it puts the player all-in
func (t *Table) Bet(name string, amount int) error {
	seat, p, err := t.actor(name)
	if err != nil {
		return err
	}

	if amount <= 0 {
		return ErrInvalidAmount
	}

	if amount < p.chips {
		owed := p.owes(t.currentBet)
		if amount < owed {
			return fmt.Errorf("%w: must be at least ${%d} to call", ErrBetTooSmall, owed)
		}

		if min := owed + t.minimumRaise; amount < min {
			return fmt.Errorf("%w: must be at least ${%d}", ErrBetTooSmall, min)
		}
	}

	wagered := p.debit(amount)
	t.completeAction(seat, p, action.Bet, wagered)
	return nil
}

// Raise raises the player's total bet for the betting round to total
func (t *Table) Raise(name string, total int) error {
	seat, p, err := t.actor(name)
	if err != nil {
		return err
	}

	if total <= 0 {
		return ErrInvalidAmount
	}

	if min := t.currentBet + t.minimumRaise; total < min {
		return fmt.Errorf("%w: must raise to at least ${%d}", ErrRaiseTooSmall, min)
	}

	p.debit(total - p.bet)
	t.completeAction(seat, p, action.Raise, p.bet)
	return nil
}

// Call matches the current bet, or puts the player all-in if they cannot cover it
func (t *Table) Call(name string) error {
	seat, p, err := t.actor(name)
	if err != nil {
		return err
	}

	owed := p.owes(t.currentBet)
	if owed == 0 {
		return ErrNothingToCall
	}

	wagered := p.debit(owed)
	t.completeAction(seat, p, action.Call, wagered)
	return nil
}

// Check passes the action without betting
func (t *Table) Check(name string) error {
	seat, p, err := t.actor(name)
	if err != nil {
		return err
	}

	if p.owes(t.currentBet) > 0 {
		return ErrMustCallOrRaise
	}

	t.completeAction(seat, p, action.Check, 0)
	return nil
}

// Fold gives up the hand
func (t *Table) Fold(name string) error {
	seat, p, err := t.actor(name)
	if err != nil {
		return err
	}

	p.folded = true
	t.completeAction(seat, p, action.Fold, 0)
	return nil
}

// LegalActions returns the actions the player can take right now
func (t *Table) LegalActions(name string) []action.Action {
	_, p, err := t.actor(name)
	if err != nil {
		return nil
	}

	owed := p.owes(t.currentBet)

	actions := make([]action.Action, 0, 4)
	if owed == 0 {
		actions = append(actions, action.Check)
	} else {
		actions = append(actions, action.Call)
	}

	if t.currentBet == 0 {
		actions = append(actions, action.Bet)
	} else if p.chips > owed {
		actions = append(actions, action.Raise)
	}

	return append(actions, action.Fold)
}

func (t *Table) completeAction(seat int, p *Player, a action.Action, amount int) {
	p.acted = true
	if seat == t.bigBlind {
		t.bigBlindOption = false
	}

	if p.bet > t.currentBet {
		t.reopenBetting(seat, p)
	}

	message := a.LogMessage(amount)
	if p.allIn && a != action.Fold {
		message += " and is all-in"
	}

	t.record(p.name, message)
	t.advanceTurn(seat)
}

// reopenBetting is called when a player's bet exceeds the current bet
// Everybody else who can still act has to respond to it
func (t *Table) reopenBetting(seat int, p *Player) {
	increment := p.bet - t.currentBet
	t.currentBet = p.bet

	// a short all-in does not change the minimum raise
	if increment >= t.minimumRaise {
		t.minimumRaise = increment
		t.lastRaiser = seat
		t.bigBlindOption = false
	}

	// one for the player who just acted, which advanceTurn() accounts for
	t.playersToAct = 1
	for i, other := range t.seats {
		if i != seat && other != nil && other.canAct() {
			other.acted = false
			t.playersToAct++
		}
	}
}

// advanceTurn moves the action to the next player, or closes the betting round
func (t *Table) advanceTurn(from int) {
	t.playersToAct--

	if t.count((*Player).contending) <= 1 {
		t.showdown()
		return
	}

	if t.streetComplete() {
		t.currentPlayer = NoSeat
		return
	}

	next := t.nextSeat(from, (*Player).canAct)
	if next == t.lastRaiser && t.seats[next].owes(t.currentBet) == 0 && !(next == t.bigBlind && t.bigBlindOption) {
		// action is back to the aggressor and everyone has matched
		t.currentPlayer = NoSeat
		return
	}

	t.currentPlayer = next
}

// streetComplete returns true if no more decisions are required this betting round
func (t *Table) streetComplete() bool {
	if t.playersToAct <= 0 {
		return true
	}

	able := 0
	owed := 0
	for _, p := range t.seats {
		if p != nil && p.canAct() {
			able++
			owed += p.owes(t.currentBet)
		}
	}

	// a lone player with nothing to call has nobody to bet against
	return able == 0 || (able == 1 && owed == 0)
}

// forfeit folds a player who is leaving the table mid-hand
func (t *Table) forfeit(seat int, p *Player) {
	couldAct := p.canAct() && !p.acted
	p.folded = true
	t.pot += p.collect()
	t.record(p.name, "left the table and forfeits the hand")

	switch {
	case seat == t.currentPlayer:
		t.advanceTurn(seat)
	case t.count((*Player).contending) <= 1:
		t.showdown()
	case t.currentPlayer != NoSeat:
		if couldAct {
			t.playersToAct--
		}

		if t.streetComplete() {
			t.currentPlayer = NoSeat
		}
	}
}
