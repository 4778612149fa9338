package holdem

import (
	"holdemtable-server/pkg/deck"
	"holdemtable-server/pkg/poker/action"
	"holdemtable-server/pkg/poker/handanalyzer"
	"holdemtable-server/pkg/poker/potmanager"
)

// PlayerState is the public view of a seat
type PlayerState struct {
	Seat      int                `json:"seat"`
	Name      string             `json:"name"`
	Chips     int                `json:"chips"`
	Bet       int                `json:"bet"`
	InHand    bool               `json:"inHand"`
	Folded    bool               `json:"folded"`
	AllIn     bool               `json:"allIn"`
	CardCount int                `json:"cardCount"`
	Cards     deck.Hand          `json:"cards,omitempty"`
	Hand      *handanalyzer.Hand `json:"hand,omitempty"`
}

// TableState is a snapshot of the table as seen by one viewer
// Seats has MaxSeats entries, nil for an empty seat
type TableState struct {
	ID             string              `json:"id"`
	HandNumber     int                 `json:"handNumber"`
	BettingRound   BettingRound        `json:"bettingRound"`
	Pot            int                 `json:"pot"`
	CurrentBet     int                 `json:"currentBet"`
	MinimumRaise   int                 `json:"minimumRaise"`
	DealerButton   int                 `json:"dealerButton"`
	SmallBlind     int                 `json:"smallBlind"`
	BigBlind       int                 `json:"bigBlind"`
	CurrentPlayer  int                 `json:"currentPlayer"`
	LastRaiser     int                 `json:"lastRaiser"`
	PlayersToAct   int                 `json:"playersToAct"`
	InProgress     bool                `json:"inProgress"`
	CommunityCards deck.Hand           `json:"communityCards"`
	Seats          []*PlayerState      `json:"seats"`
	Winner         *Winner             `json:"winner,omitempty"`
	Winners        []string            `json:"winners,omitempty"`
	Payouts        []potmanager.Payout `json:"payouts,omitempty"`
	LegalActions   []action.Action     `json:"legalActions,omitempty"`
	Options        Options             `json:"options"`
}

// State returns the table as seen by viewer
// Hole cards are only shown to their owner, except at showdown where every player who
// did not fold shows their hand. An empty viewer sees no hole cards before showdown.
func (t *Table) State(viewer string) *TableState {
	seats := make([]*PlayerState, MaxSeats)
	for i, p := range t.seats {
		if p == nil {
			continue
		}

		ps := &PlayerState{
			Seat:      i,
			Name:      p.name,
			Chips:     p.chips,
			Bet:       p.bet,
			InHand:    p.inHand,
			Folded:    p.folded,
			AllIn:     p.allIn,
			CardCount: len(p.cards),
		}

		revealed := t.bettingRound == BettingRoundShowdown && p.contending()
		if len(p.cards) > 0 && (revealed || (viewer != "" && p.name == viewer)) {
			ps.Cards = p.cards.Clone()
		}

		if revealed && len(p.cards)+len(t.community) >= handanalyzer.HandSize {
			cards := append(p.cards.Clone(), t.community...)
			hand := handanalyzer.New(cards).GetHand()
			ps.Hand = &hand
		}

		seats[i] = ps
	}

	var winners []string
	for _, payout := range t.payouts {
		winners = append(winners, payout.Name)
	}

	state := &TableState{
		ID:             t.id,
		HandNumber:     t.handNumber,
		BettingRound:   t.bettingRound,
		Pot:            t.pot,
		CurrentBet:     t.currentBet,
		MinimumRaise:   t.minimumRaise,
		DealerButton:   t.dealerButton,
		SmallBlind:     t.smallBlind,
		BigBlind:       t.bigBlind,
		CurrentPlayer:  t.currentPlayer,
		LastRaiser:     t.lastRaiser,
		PlayersToAct:   t.playersToAct,
		InProgress:     t.InProgress(),
		CommunityCards: t.community.Clone(),
		Seats:          seats,
		Winner:         t.winner,
		Winners:        winners,
		Payouts:        t.payouts,
		Options:        t.options,
	}

	if viewer != "" {
		state.LegalActions = t.LegalActions(viewer)
	}

	return state
}
