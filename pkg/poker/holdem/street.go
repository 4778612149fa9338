package holdem

import (
	"fmt"

	"holdemtable-server/pkg/deck"
	"holdemtable-server/pkg/poker/handanalyzer"
	"holdemtable-server/pkg/poker/potmanager"

	"github.com/sirupsen/logrus"
)

// StreetDealt is the result of DealNextStreet
type StreetDealt struct {
	BettingRound BettingRound        `json:"bettingRound"`
	Cards        deck.Hand           `json:"cards,omitempty"`
	Winner       *Winner             `json:"winner,omitempty"`
	Payouts      []potmanager.Payout `json:"payouts,omitempty"`
}

// DealNextStreet deals the flop, turn, or river once betting has closed
// After the river it runs the showdown instead
func (t *Table) DealNextStreet() (*StreetDealt, error) {
	if !t.InProgress() {
		return nil, ErrNoHandInProgress
	}

	if t.currentPlayer != NoSeat {
		return nil, ErrBettingNotClosed
	}

	if len(t.community) == 5 {
		t.showdown()
		return t.streetResult(nil), nil
	}

	next, reveal, ok := t.bettingRound.Street()
	if !ok {
		return nil, ErrInvalidPhase
	}

	// one burn card for each street
	if !t.deck.CanDraw(reveal + 1) {
		return nil, ErrEmptyDeck
	}

	if err := t.transition(next); err != nil {
		return nil, err
	}

	if _, err := t.deck.Draw(); err != nil {
		panic(err)
	}

	cards := make(deck.Hand, 0, reveal)
	for i := 0; i < reveal; i++ {
		card, err := t.deck.Draw()
		if err != nil {
			panic(err)
		}

		cards.AddCard(card)
		t.community.AddCard(card)
	}

	t.record("", fmt.Sprintf("dealt the %s: %s", next, cards))
	t.openStreet()

	return t.streetResult(cards), nil
}

func (t *Table) streetResult(cards deck.Hand) *StreetDealt {
	return &StreetDealt{
		BettingRound: t.bettingRound,
		Cards:        cards,
		Winner:       t.winner,
		Payouts:      t.payouts,
	}
}

// CommunityCards returns the cards on the board
func (t *Table) CommunityCards() deck.Hand {
	return t.community.Clone()
}

// openStreet starts a new betting round after cards are dealt
func (t *Table) openStreet() {
	t.collectBets()
	t.currentBet = 0
	t.minimumRaise = t.options.BigBlind
	t.lastRaiser = NoSeat
	t.bigBlindOption = false
	t.playersToAct = t.count((*Player).canAct)

	t.currentPlayer = t.nextSeat(t.dealerButton, (*Player).canAct)
	if t.currentPlayer == NoSeat || t.streetComplete() {
		t.currentPlayer = NoSeat
	}
}

func (t *Table) collectBets() {
	for _, p := range t.seats {
		if p != nil {
			t.pot += p.collect()
		}
	}
}

// showdown ends the hand and pays the pot
// Ties split the pot, with odd chips going to the first winners left of the button
func (t *Table) showdown() {
	t.collectBets()
	t.currentPlayer = NoSeat
	if err := t.transition(BettingRoundShowdown); err != nil {
		panic(err)
	}

	contenders := make([]*Player, 0, MaxSeats)
	for _, seat := range t.seatsFrom(t.dealerButton) {
		if p := t.seats[seat]; p.contending() {
			contenders = append(contenders, p)
		}
	}

	pot := t.pot
	t.pot = 0

	if len(contenders) == 1 {
		p := contenders[0]
		t.winner = &Winner{Name: p.name}
		t.payouts = potmanager.PayWinners(pot, []potmanager.Participant{p})
		t.record(p.name, fmt.Sprintf("won ${%d} uncontested", pot))
		t.logShowdown(pot)
		return
	}

	var best *handanalyzer.HandAnalyzer
	wm := potmanager.NewWinManager()
	for _, p := range contenders {
		cards := make(deck.Hand, 0, len(p.cards)+len(t.community))
		cards = append(cards, p.cards...)
		cards = append(cards, t.community...)

		ha := handanalyzer.New(cards)
		wm.AddParticipant(p, ha.GetStrength())
		t.record(p.name, fmt.Sprintf("showed %s for a %s", p.cards, ha.GetHand()))

		if best == nil || handanalyzer.Compare(ha, best) > 0 {
			best = ha
			hand := ha.GetHand()
			t.winner = &Winner{
				Name:  p.name,
				Hand:  &hand,
				Cards: ha.GetCards(),
			}
		}
	}

	t.payouts = potmanager.PayWinners(pot, wm.GetWinners())
	for _, payout := range t.payouts {
		t.record(payout.Name, fmt.Sprintf("won ${%d}", payout.Amount))
	}

	t.logShowdown(pot)
}

func (t *Table) logShowdown(pot int) {
	t.logger.WithFields(logrus.Fields{
		"hand":    t.handNumber,
		"pot":     pot,
		"winner":  t.winner.Name,
		"payouts": len(t.payouts),
	}).Info("hand complete")
}
