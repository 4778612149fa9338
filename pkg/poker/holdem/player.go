package holdem

import (
	"holdemtable-server/pkg/deck"
)

// Player is a player sitting in a seat
type Player struct {
	name  string
	chips int
	cards deck.Hand

	// bet is what the player committed this betting round
	bet int
	// posted is the part of bet that is already in the pot (the blinds)
	posted int
	// total is what the player committed this hand
	total int

	inHand bool
	folded bool
	allIn  bool
	acted  bool
}

func newPlayer(name string, chips int) *Player {
	return &Player{
		name:  name,
		chips: chips,
		cards: make(deck.Hand, 0, 2),
	}
}

// Name returns the player's name
func (p *Player) Name() string {
	return p.name
}

// Chips returns the player's stack
func (p *Player) Chips() int {
	return p.chips
}

// Bet returns what the player committed this betting round
func (p *Player) Bet() int {
	return p.bet
}

// Cards returns the player's hole cards
func (p *Player) Cards() deck.Hand {
	return p.cards.Clone()
}

// Folded returns true if the player folded this hand
func (p *Player) Folded() bool {
	return p.folded
}

// AllIn returns true if the player has no chips left to wager
func (p *Player) AllIn() bool {
	return p.allIn
}

// AdjustBalance credits the player's stack
func (p *Player) AdjustBalance(amount int) {
	p.chips += amount
}

// debit moves up to amount chips from the stack into the current bet
// The amount actually wagered is returned
func (p *Player) debit(amount int) int {
	if amount > p.chips {
		amount = p.chips
	}

	p.chips -= amount
	p.bet += amount
	p.total += amount
	if p.chips == 0 {
		p.allIn = true
	}

	return amount
}

// owes returns how much the player needs to add to match the current bet
func (p *Player) owes(currentBet int) int {
	if diff := currentBet - p.bet; diff > 0 {
		return diff
	}

	return 0
}

// contending returns true if the player can still win the pot
func (p *Player) contending() bool {
	return p.inHand && !p.folded
}

// canAct returns true if the player can still make decisions this hand
func (p *Player) canAct() bool {
	return p.contending() && !p.allIn
}

// collect zeros the current bet and returns what still needs to go into the pot
func (p *Player) collect() int {
	amount := p.bet - p.posted
	p.bet = 0
	p.posted = 0
	p.acted = false
	return amount
}

func (p *Player) resetHand() {
	p.cards = make(deck.Hand, 0, 2)
	p.bet = 0
	p.posted = 0
	p.total = 0
	p.inHand = false
	p.folded = false
	p.allIn = false
	p.acted = false
}
