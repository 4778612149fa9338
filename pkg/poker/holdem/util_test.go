package holdem

import (
	"errors"
	"testing"

	"holdemtable-server/pkg/deck"
	"holdemtable-server/pkg/poker/action"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

var testPlayers = []string{"alice", "bob", "carol", "dave", "erin", "frank", "grace", "heidi"}

func testOptions() Options {
	opts := DefaultOptions()
	opts.Seed = 42
	return opts
}

// setupTable seats the first n test players in seats 0..n-1
func setupTable(t *testing.T, opts Options, n int) *Table {
	t.Helper()

	tbl, err := NewTable(logrus.StandardLogger(), "test", opts)
	if err != nil {
		t.Fatalf("could not create table: %v", err)
	}

	for i := 0; i < n; i++ {
		if err := tbl.Join(testPlayers[i], i); err != nil {
			t.Fatalf("could not seat %s: %v", testPlayers[i], err)
		}
	}

	return tbl
}

// setupRound seats n players and starts a hand
func setupRound(t *testing.T, opts Options, n int) *Table {
	t.Helper()

	tbl := setupTable(t, opts, n)
	if err := tbl.StartRound(); err != nil {
		t.Fatalf("could not start round: %v", err)
	}

	return tbl
}

// rigHand replaces hole cards and stacks the deck so the board comes out as specified
func rigHand(tbl *Table, holes map[string]string, board string) {
	for name, cards := range holes {
		_, p := tbl.findPlayer(name)
		p.cards = deck.CardsFromString(cards)
	}

	b := deck.CardsFromString(board)
	burn := func() *deck.Card {
		return &deck.Card{Rank: 2, Suit: deck.Spades}
	}

	tbl.deck.Cards = []*deck.Card{burn(), b[0], b[1], b[2], burn(), b[3], burn(), b[4]}
}

func assertAct(t *testing.T, tbl *Table, name string, a action.Action, amount int, msgAndArgs ...interface{}) {
	t.Helper()

	before := tbl.TotalChips()
	assert.NoError(t, tbl.Act(name, a, amount), msgAndArgs...)
	assert.Equal(t, before, tbl.TotalChips(), "chips are conserved")
	assertCurrentPlayer(t, tbl)
}

func assertActFailed(t *testing.T, tbl *Table, name string, a action.Action, amount int, expected error, msgAndArgs ...interface{}) {
	t.Helper()

	before := tbl.State("")
	err := tbl.Act(name, a, amount)
	assert.True(t, errors.Is(err, expected), "expected %v, got %v", expected, err)
	assert.Equal(t, before, tbl.State(""), "a failed action changes nothing")
}

func assertCurrentPlayer(t *testing.T, tbl *Table) {
	t.Helper()

	if tbl.currentPlayer == NoSeat {
		return
	}

	p := tbl.seats[tbl.currentPlayer]
	if assert.NotNil(t, p, "current player is seated") {
		assert.True(t, p.canAct(), "current player can act")
	}
}

func assertTurn(t *testing.T, tbl *Table, name string) {
	t.Helper()

	p, err := tbl.GetCurrentTurn()
	if assert.NoError(t, err) {
		assert.Equal(t, name, p.Name())
	}
}

func assertDeal(t *testing.T, tbl *Table, expected BettingRound) *StreetDealt {
	t.Helper()

	before := tbl.TotalChips()
	result, err := tbl.DealNextStreet()
	assert.NoError(t, err)
	if assert.NotNil(t, result) {
		assert.Equal(t, expected, result.BettingRound)
	}

	assert.Equal(t, before, tbl.TotalChips(), "chips are conserved")
	return result
}

func checkAround(t *testing.T, tbl *Table, names ...string) {
	t.Helper()

	for _, name := range names {
		assertTurn(t, tbl, name)
		assertAct(t, tbl, name, action.Check, 0)
	}

	assert.Equal(t, NoSeat, tbl.CurrentPlayerIndex())
}

func chips(tbl *Table, name string) int {
	_, p := tbl.findPlayer(name)
	if p == nil {
		return -1
	}

	return p.chips
}
