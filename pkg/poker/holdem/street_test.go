package holdem

import (
	"math/rand"
	"testing"

	"holdemtable-server/pkg/deck"
	"holdemtable-server/pkg/poker/action"
	"holdemtable-server/pkg/poker/handanalyzer"
	"holdemtable-server/pkg/poker/potmanager"

	"github.com/stretchr/testify/assert"
)

func TestTable_DealNextStreet(t *testing.T) {
	a := assert.New(t)
	tbl := setupTable(t, testOptions(), 3)

	_, err := tbl.DealNextStreet()
	a.Equal(ErrNoHandInProgress, err)

	a.NoError(tbl.StartRound())
	_, err = tbl.DealNextStreet()
	a.Equal(ErrBettingNotClosed, err)
	a.Equal(KindPhase, KindOf(err))

	assertAct(t, tbl, "alice", action.Call, 0)
	assertAct(t, tbl, "bob", action.Call, 0)
	assertAct(t, tbl, "carol", action.Check, 0)

	flop := assertDeal(t, tbl, BettingRoundFlop)
	a.Len(flop.Cards, 3)
	a.Nil(flop.Winner)
	a.Equal(60, tbl.Pot())
	a.Equal(52-6-4, tbl.deck.CardsLeft())
	a.Equal(flop.Cards, tbl.CommunityCards())
	for i := 0; i < 3; i++ {
		a.Equal(0, tbl.Seat(i).Bet())
	}

	checkAround(t, tbl, "bob", "carol", "alice")
	turn := assertDeal(t, tbl, BettingRoundTurn)
	a.Len(turn.Cards, 1)
	a.Len(tbl.CommunityCards(), 4)

	checkAround(t, tbl, "bob", "carol", "alice")
	river := assertDeal(t, tbl, BettingRoundRiver)
	a.Len(river.Cards, 1)
	a.Len(tbl.CommunityCards(), 5)
	a.Equal(52-6-8, tbl.deck.CardsLeft())

	checkAround(t, tbl, "bob", "carol", "alice")
	showdown := assertDeal(t, tbl, BettingRoundShowdown)
	a.Len(showdown.Cards, 0)
	a.NotNil(showdown.Winner)
	a.NotEmpty(showdown.Payouts)
	a.Equal(0, tbl.Pot())
	a.Equal(3000, tbl.TotalChips())
	a.Equal(NoSeat, tbl.CurrentPlayerIndex())

	_, err = tbl.DealNextStreet()
	a.Equal(ErrNoHandInProgress, err)
}

func TestTable_DealNextStreet_EmptyDeck(t *testing.T) {
	a := assert.New(t)
	tbl := setupRound(t, testOptions(), 2)
	assertAct(t, tbl, "bob", action.Call, 0)
	assertAct(t, tbl, "alice", action.Check, 0)

	tbl.deck.Cards = tbl.deck.Cards[:3]
	_, err := tbl.DealNextStreet()
	a.Equal(ErrEmptyDeck, err)
	a.Equal(KindResourceExhaustion, KindOf(err))
	a.Equal(BettingRoundPreFlop, tbl.BettingRound())
	a.Len(tbl.CommunityCards(), 0)
}

func TestTable_Showdown(t *testing.T) {
	a := assert.New(t)
	tbl := setupRound(t, testOptions(), 3)
	rigHand(tbl, map[string]string{
		"alice": "14h,14d",
		"bob":   "2h,7s",
		"carol": "2c,7d",
	}, "14c,13s,9d,5h,3c")

	assertAct(t, tbl, "alice", action.Call, 0)
	assertAct(t, tbl, "bob", action.Call, 0)
	assertAct(t, tbl, "carol", action.Check, 0)

	flop := assertDeal(t, tbl, BettingRoundFlop)
	a.Equal("14c,13s,9d", deck.CardsToString(flop.Cards))
	checkAround(t, tbl, "bob", "carol", "alice")
	assertDeal(t, tbl, BettingRoundTurn)
	checkAround(t, tbl, "bob", "carol", "alice")
	assertDeal(t, tbl, BettingRoundRiver)
	checkAround(t, tbl, "bob", "carol", "alice")

	result := assertDeal(t, tbl, BettingRoundShowdown)
	if a.NotNil(result.Winner) {
		a.Equal("alice", result.Winner.Name)
		a.Equal(handanalyzer.ThreeOfAKind, *result.Winner.Hand)
		a.Equal("14h,14d,14c,13s,9d", deck.CardsToString(result.Winner.Cards))
	}

	a.Equal([]potmanager.Payout{{Name: "alice", Amount: 60}}, result.Payouts)
	a.Equal(1040, chips(tbl, "alice"))
	a.Equal(980, chips(tbl, "bob"))
	a.Equal(980, chips(tbl, "carol"))
}

func TestTable_Showdown_SplitPot(t *testing.T) {
	a := assert.New(t)
	opts := testOptions()
	opts.SmallBlind = 5
	opts.BigBlind = 10

	tbl := setupRound(t, opts, 3)
	rigHand(tbl, map[string]string{
		"alice": "2c,3d",
		"carol": "2d,3c",
	}, "14s,13s,12d,11c,10h")

	assertAct(t, tbl, "alice", action.Call, 0)
	assertAct(t, tbl, "bob", action.Fold, 0)
	assertAct(t, tbl, "carol", action.Check, 0)
	for _, round := range []BettingRound{BettingRoundFlop, BettingRoundTurn, BettingRoundRiver} {
		assertDeal(t, tbl, round)
		checkAround(t, tbl, "carol", "alice")
	}

	a.Equal(25, tbl.Pot())
	result := assertDeal(t, tbl, BettingRoundShowdown)

	// the odd chip goes to the first winner left of the button
	a.Equal([]potmanager.Payout{
		{Name: "carol", Amount: 13},
		{Name: "alice", Amount: 12},
	}, result.Payouts)
	a.Equal("carol", result.Winner.Name)
	a.Equal(handanalyzer.Straight, *result.Winner.Hand)

	a.Equal(1002, chips(tbl, "alice"))
	a.Equal(995, chips(tbl, "bob"))
	a.Equal(1003, chips(tbl, "carol"))
	a.Equal(3000, tbl.TotalChips())
	a.Equal([]string{"carol", "alice"}, tbl.State("").Winners)
}

func TestTable_Showdown_AllInRunsOut(t *testing.T) {
	a := assert.New(t)
	tbl := setupRound(t, testOptions(), 2)

	assertAct(t, tbl, "bob", action.Bet, 990)
	assertAct(t, tbl, "alice", action.Call, 0)
	a.Equal(NoSeat, tbl.CurrentPlayerIndex())
	a.Equal(2000, tbl.TotalChips())

	assertDeal(t, tbl, BettingRoundFlop)
	a.Equal(NoSeat, tbl.CurrentPlayerIndex(), "nobody can act")
	assertDeal(t, tbl, BettingRoundTurn)
	assertDeal(t, tbl, BettingRoundRiver)
	result := assertDeal(t, tbl, BettingRoundShowdown)

	total := 0
	for _, payout := range result.Payouts {
		total += payout.Amount
	}

	a.Equal(2000, total)
	a.Equal(2000, chips(tbl, "alice")+chips(tbl, "bob"))
}

func TestBettingRound_CanTransitionTo(t *testing.T) {
	a := assert.New(t)

	a.True(BettingRoundNone.CanTransitionTo(BettingRoundPreFlop))
	a.True(BettingRoundPreFlop.CanTransitionTo(BettingRoundFlop))
	a.True(BettingRoundFlop.CanTransitionTo(BettingRoundTurn))
	a.True(BettingRoundTurn.CanTransitionTo(BettingRoundRiver))
	a.True(BettingRoundRiver.CanTransitionTo(BettingRoundShowdown))
	a.True(BettingRoundFlop.CanTransitionTo(BettingRoundShowdown))
	a.True(BettingRoundShowdown.CanTransitionTo(BettingRoundPreFlop))
	a.True(BettingRoundRiver.CanTransitionTo(BettingRoundNone))

	a.False(BettingRoundNone.CanTransitionTo(BettingRoundFlop))
	a.False(BettingRoundPreFlop.CanTransitionTo(BettingRoundTurn))
	a.False(BettingRoundRiver.CanTransitionTo(BettingRoundFlop))
	a.False(BettingRoundNone.CanTransitionTo(BettingRoundShowdown))
	a.False(BettingRoundFlop.CanTransitionTo(BettingRoundPreFlop))

	tbl := setupTable(t, testOptions(), 2)
	a.Equal(ErrInvalidPhase, tbl.transition(BettingRoundRiver))
	a.Equal(BettingRoundNone, tbl.BettingRound())

	a.Equal("pre-flop", BettingRoundPreFlop.String())
	b, err := BettingRoundRiver.MarshalJSON()
	a.NoError(err)
	a.JSONEq(`{"id":4,"name":"river"}`, string(b))
}

// play random legal actions and check the invariants after every step
func TestTable_RandomHands(t *testing.T) {
	a := assert.New(t)
	r := rand.New(rand.NewSource(7))

	for game := 0; game < 20; game++ {
		opts := testOptions()
		opts.Seed = int64(game + 1)
		tbl := setupTable(t, opts, 2+game%7)
		total := tbl.TotalChips()

		for hand := 0; hand < 25; hand++ {
			if err := tbl.StartRound(); err != nil {
				a.Equal(ErrInsufficientPlayers, err)
				break
			}

			for steps := 0; tbl.InProgress(); steps++ {
				if !a.Less(steps, 500, "hand did not finish") {
					return
				}

				if tbl.CurrentPlayerIndex() == NoSeat {
					_, err := tbl.DealNextStreet()
					a.NoError(err)
					continue
				}

				p := tbl.Seat(tbl.CurrentPlayerIndex())
				a.True(p.canAct())

				legal := tbl.LegalActions(p.Name())
				act := legal[r.Intn(len(legal))]
				amount := 0
				switch act {
				case action.Bet:
					amount = p.owes(tbl.currentBet) + tbl.minimumRaise + r.Intn(50)
				case action.Raise:
					amount = tbl.currentBet + tbl.minimumRaise + r.Intn(50)
				}

				assertAct(t, tbl, p.Name(), act, amount)
			}

			a.Equal(total, tbl.TotalChips())
			a.Equal(0, tbl.Pot())
		}
	}
}
