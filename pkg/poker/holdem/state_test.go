package holdem

import (
	"encoding/json"
	"testing"

	"holdemtable-server/pkg/poker/action"

	"github.com/stretchr/testify/assert"
)

func TestTable_State(t *testing.T) {
	a := assert.New(t)
	tbl := setupRound(t, testOptions(), 3)

	state := tbl.State("alice")
	a.Equal("test", state.ID)
	a.Equal(1, state.HandNumber)
	a.Equal(BettingRoundPreFlop, state.BettingRound)
	a.True(state.InProgress)
	a.Equal(30, state.Pot)
	a.Equal(20, state.CurrentBet)
	a.Equal(0, state.CurrentPlayer)
	a.Equal(2, state.LastRaiser)
	a.Equal(3, state.PlayersToAct)
	a.Len(state.Seats, MaxSeats)
	a.Nil(state.Seats[3])
	a.Equal([]action.Action{action.Call, action.Raise, action.Fold}, state.LegalActions)

	// only the viewer's own cards are visible
	a.Len(state.Seats[0].Cards, 2)
	a.Nil(state.Seats[1].Cards)
	a.Equal(2, state.Seats[1].CardCount)
	a.Nil(state.Seats[2].Cards)
	a.Nil(state.Seats[0].Hand)

	state = tbl.State("")
	for i := 0; i < 3; i++ {
		a.Nil(state.Seats[i].Cards)
		a.Equal(2, state.Seats[i].CardCount)
	}
	a.Nil(state.LegalActions)

	state = tbl.State("bob")
	a.Nil(state.Seats[0].Cards)
	a.Equal(tbl.Seat(1).Cards(), state.Seats[1].Cards)
	a.Nil(state.LegalActions)
}

func TestTable_State_Showdown(t *testing.T) {
	a := assert.New(t)
	tbl := setupRound(t, testOptions(), 3)
	rigHand(tbl, map[string]string{
		"alice": "14h,14d",
		"bob":   "2h,7s",
		"carol": "2c,7d",
	}, "14c,13s,9d,5h,3c")

	assertAct(t, tbl, "alice", action.Call, 0)
	assertAct(t, tbl, "bob", action.Fold, 0)
	assertAct(t, tbl, "carol", action.Check, 0)
	for _, round := range []BettingRound{BettingRoundFlop, BettingRoundTurn, BettingRoundRiver} {
		assertDeal(t, tbl, round)
		checkAround(t, tbl, "carol", "alice")
	}

	assertDeal(t, tbl, BettingRoundShowdown)

	state := tbl.State("")
	a.False(state.InProgress)
	a.Len(state.Seats[0].Cards, 2, "players who did not fold show their cards")
	a.Len(state.Seats[2].Cards, 2)
	a.Nil(state.Seats[1].Cards, "folded cards stay hidden")
	if a.NotNil(state.Seats[0].Hand) {
		a.Equal("Three of a kind", state.Seats[0].Hand.String())
	}
	a.Nil(state.Seats[1].Hand)
	a.Equal("alice", state.Winner.Name)
	a.Equal([]string{"alice"}, state.Winners)
}

func TestTable_State_JSON(t *testing.T) {
	a := assert.New(t)
	tbl := setupRound(t, testOptions(), 2)

	b, err := json.Marshal(tbl.State("alice"))
	a.NoError(err)

	var decoded map[string]interface{}
	a.NoError(json.Unmarshal(b, &decoded))
	a.Equal("test", decoded["id"])
	a.Equal(map[string]interface{}{"id": float64(1), "name": "pre-flop"}, decoded["bettingRound"])

	seats := decoded["seats"].([]interface{})
	a.Len(seats, MaxSeats)
	a.Nil(seats[2])
	a.Contains(seats[0], "cards")
	a.NotContains(seats[1], "cards")
}

func TestTable_HandLog(t *testing.T) {
	a := assert.New(t)
	tbl := setupRound(t, testOptions(), 3)

	assertAct(t, tbl, "alice", action.Raise, 60)
	assertAct(t, tbl, "bob", action.Fold, 0)
	assertAct(t, tbl, "carol", action.Call, 0)
	assertDeal(t, tbl, BettingRoundFlop)

	log := tbl.HandLog()
	if a.Len(log, 6) {
		a.Equal("bob", log[0].Player)
		a.Equal("posted a blind of ${10}", log[0].Message)
		a.Equal("posted a blind of ${20}", log[1].Message)
		a.Equal("raised to ${60}", log[2].Message)
		a.Equal("folded", log[3].Message)
		a.Equal("called ${40}", log[4].Message)
		a.Equal("", log[5].Player)
		a.Equal(BettingRoundFlop, log[5].BettingRound)
		a.Contains(log[5].Message, "dealt the flop: ")
		a.Equal(1, log[5].HandNumber)
	}

	// the returned slice is a copy
	log[0] = nil
	a.NotNil(tbl.HandLog()[0])

	tbl.ResetRound()
	a.Len(tbl.HandLog(), 0)
}
