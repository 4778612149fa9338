package holdem

import (
	"fmt"

	"holdemtable-server/pkg/deck"

	"github.com/sirupsen/logrus"
)

func hasChips(p *Player) bool {
	return p.chips > 0
}

func inHand(p *Player) bool {
	return p.inHand
}

// StartRound starts a new hand
// The button moves, the blinds are posted, and two cards are dealt to every player with chips
func (t *Table) StartRound() error {
	if t.InProgress() {
		return ErrHandInProgress
	}

	players := t.count(hasChips)
	if players < 2 {
		return ErrInsufficientPlayers
	}

	d := deck.New()
	d.Shuffle(t.rng)
	if !d.CanDraw(players * 2) {
		return ErrEmptyDeck
	}

	if err := t.transition(BettingRoundPreFlop); err != nil {
		return err
	}

	t.resetHand()
	t.deck = d
	t.handNumber++
	for _, p := range t.seats {
		if p != nil && hasChips(p) {
			p.inHand = true
		}
	}

	t.dealerButton = t.nextSeat(t.dealerButton, inHand)
	t.smallBlind = t.nextSeat(t.dealerButton, inHand)
	t.bigBlind = t.nextSeat(t.smallBlind, inHand)

	t.postBlind(t.smallBlind, t.options.SmallBlind)
	t.postBlind(t.bigBlind, t.options.BigBlind)
	t.currentBet = t.options.BigBlind
	t.minimumRaise = t.options.BigBlind

	for i := 0; i < 2; i++ {
		for _, seat := range t.seatsFrom(t.dealerButton) {
			p := t.seats[seat]
			if !p.inHand {
				continue
			}

			card, err := t.deck.Draw()
			if err != nil {
				// guarded by CanDraw() above
				panic(err)
			}

			p.cards.AddCard(card)
		}
	}

	t.lastRaiser = t.bigBlind
	t.bigBlindOption = true
	t.playersToAct = t.count((*Player).canAct)
	t.currentPlayer = t.nextSeat(t.bigBlind, (*Player).canAct)
	if t.currentPlayer == NoSeat || t.streetComplete() {
		t.currentPlayer = NoSeat
	}

	t.logger.WithFields(logrus.Fields{
		"hand":       t.handNumber,
		"button":     t.dealerButton,
		"smallBlind": t.smallBlind,
		"bigBlind":   t.bigBlind,
		"players":    players,
	}).Info("hand started")

	return nil
}

func (t *Table) postBlind(seat int, amount int) {
	p := t.seats[seat]
	posted := p.debit(amount)
	p.posted += posted
	t.pot += posted

	t.record(p.name, fmt.Sprintf("posted a blind of ${%d}", posted))
}

// ResetRound clears the hand, keeping seats and stacks
// If a hand is in progress, it is voided and each seated player gets back what they wagered
func (t *Table) ResetRound() {
	if t.InProgress() {
		wagered := t.pot
		refunded := 0
		for _, p := range t.seats {
			if p != nil {
				wagered += p.bet - p.posted
				refunded += p.total
				p.chips += p.total
			}
		}

		entry := t.logger.WithFields(logrus.Fields{
			"hand":     t.handNumber,
			"refunded": refunded,
		})

		// chips wagered by players who already left are not returned
		if forfeited := wagered - refunded; forfeited > 0 {
			entry = entry.WithField("forfeited", forfeited)
		}

		entry.Warn("hand voided")
	}

	t.resetHand()
	_ = t.transition(BettingRoundNone)
}

// resetHand clears everything scoped to a single hand
func (t *Table) resetHand() {
	t.deck = deck.New()
	t.community = make(deck.Hand, 0, 5)
	t.pot = 0
	t.currentBet = 0
	t.minimumRaise = t.options.BigBlind
	t.smallBlind = NoSeat
	t.bigBlind = NoSeat
	t.currentPlayer = NoSeat
	t.lastRaiser = NoSeat
	t.bigBlindOption = false
	t.playersToAct = 0
	t.winner = nil
	t.payouts = nil
	t.log = make([]*LogEntry, 0)

	for _, p := range t.seats {
		if p != nil {
			p.resetHand()
		}
	}
}
