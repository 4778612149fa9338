package holdem

import (
	"errors"
	"strings"

	"holdemtable-server/internal/rng"
	"holdemtable-server/pkg/deck"
	"holdemtable-server/pkg/poker/handanalyzer"
	"holdemtable-server/pkg/poker/potmanager"

	"github.com/sirupsen/logrus"
)

var errBettingRoundIsOver = errors.New("betting round is over")

// Table is a single No-Limit Texas Hold'em table
// A Table is not safe for concurrent use. Callers must serialize access to it.
type Table struct {
	id      string
	logger  logrus.FieldLogger
	options Options
	rng     rng.Generator

	seats     [MaxSeats]*Player
	deck      *deck.Deck
	community deck.Hand
	pot       int

	currentBet   int
	minimumRaise int
	dealerButton int
	smallBlind   int
	bigBlind     int

	bettingRound  BettingRound
	currentPlayer int
	lastRaiser    int
	// bigBlindOption is true until the big blind acts pre-flop, or the bet is raised
	bigBlindOption bool
	playersToAct   int

	handNumber int
	winner     *Winner
	payouts    []potmanager.Payout
	log        []*LogEntry
}

// Winner is the best hand of the last showdown
// Hand and Cards are empty if everybody else folded
type Winner struct {
	Name  string             `json:"name"`
	Hand  *handanalyzer.Hand `json:"hand"`
	Cards deck.Hand          `json:"cards"`
}

// NewTable returns a new table with every seat empty
func NewTable(logger logrus.FieldLogger, id string, opts Options) (*Table, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	t := &Table{
		id:           id,
		logger:       logger.WithField("table", id),
		options:      opts,
		rng:          rng.New(opts.Seed),
		dealerButton: NoSeat,
	}

	t.resetHand()
	return t, nil
}

// ID returns the table identifier
func (t *Table) ID() string {
	return t.id
}

// Options returns the table options
func (t *Table) Options() Options {
	return t.options
}

// BettingRound returns the current betting round
func (t *Table) BettingRound() BettingRound {
	return t.bettingRound
}

// InProgress returns true if a hand is being played
func (t *Table) InProgress() bool {
	return t.bettingRound.InProgress()
}

// HandNumber returns the number of hands started at this table
func (t *Table) HandNumber() int {
	return t.handNumber
}

// Pot returns the chips collected into the pot
func (t *Table) Pot() int {
	return t.pot
}

// CurrentPlayerIndex returns the seat that is to act, or NoSeat
func (t *Table) CurrentPlayerIndex() int {
	return t.currentPlayer
}

// Seat returns the player in the seat, or nil if the seat is empty
func (t *Table) Seat(seat int) *Player {
	if seat < 0 || seat >= MaxSeats {
		return nil
	}

	return t.seats[seat]
}

// Winner returns the winner of the last showdown, if any
func (t *Table) Winner() *Winner {
	return t.winner
}

// TotalChips returns every chip at the table: stacks, bets not yet collected, and the pot
func (t *Table) TotalChips() int {
	total := t.pot
	for _, p := range t.seats {
		if p != nil {
			total += p.chips + p.bet - p.posted
		}
	}

	return total
}

// GetCurrentTurn returns the player who is to act
func (t *Table) GetCurrentTurn() (*Player, error) {
	if !t.InProgress() {
		return nil, ErrNoHandInProgress
	}

	if t.currentPlayer == NoSeat {
		return nil, errBettingRoundIsOver
	}

	return t.seats[t.currentPlayer], nil
}

// Join seats the player with the starting stack
func (t *Table) Join(name string, seat int) error {
	if strings.TrimSpace(name) == "" {
		return ErrInvalidName
	}

	if seat < 0 || seat >= MaxSeats {
		return ErrInvalidSeat
	}

	if t.seats[seat] != nil {
		return ErrSeatOccupied
	}

	if idx, _ := t.findPlayer(name); idx != NoSeat {
		return ErrAlreadySeated
	}

	t.seats[seat] = newPlayer(name, t.options.StartingChips)
	t.logger.WithFields(logrus.Fields{
		"player": name,
		"seat":   seat,
	}).Info("player joined")

	return nil
}

// Leave removes the player from the table
// A player who leaves during a hand folds, and anything they wagered stays in the pot
func (t *Table) Leave(name string) error {
	seat, p := t.findPlayer(name)
	if p == nil {
		return ErrPlayerNotFound
	}

	if t.InProgress() && p.contending() {
		t.forfeit(seat, p)
	} else if t.InProgress() && p.inHand {
		// folded earlier, but this street's bet is still in front of them
		t.pot += p.collect()
	}

	t.seats[seat] = nil
	t.logger.WithFields(logrus.Fields{
		"player": name,
		"seat":   seat,
		"chips":  p.chips,
	}).Info("player left")

	return nil
}

// AddChips grants chips to a seated player
// Players cannot receive chips while they are playing a hand
func (t *Table) AddChips(name string, amount int) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	_, p := t.findPlayer(name)
	if p == nil {
		return ErrPlayerNotFound
	}

	if t.InProgress() && p.inHand {
		return ErrHandInProgress
	}

	p.chips += amount
	t.logger.WithFields(logrus.Fields{
		"player": name,
		"amount": amount,
	}).Info("chips added")

	return nil
}

func (t *Table) findPlayer(name string) (int, *Player) {
	for i, p := range t.seats {
		if p != nil && p.name == name {
			return i, p
		}
	}

	return NoSeat, nil
}

// nextSeat returns the first seat clockwise after from that matches, or NoSeat
// from may be NoSeat, in which case seat 0 is checked first
func (t *Table) nextSeat(from int, match func(p *Player) bool) int {
	for i := 1; i <= MaxSeats; i++ {
		seat := (from + i) % MaxSeats
		if p := t.seats[seat]; p != nil && match(p) {
			return seat
		}
	}

	return NoSeat
}

// seatsFrom returns the occupied seats in clockwise order, starting after from
func (t *Table) seatsFrom(from int) []int {
	seats := make([]int, 0, MaxSeats)
	for i := 1; i <= MaxSeats; i++ {
		seat := (from + i + MaxSeats) % MaxSeats
		if t.seats[seat] != nil {
			seats = append(seats, seat)
		}
	}

	return seats
}

func (t *Table) count(match func(p *Player) bool) int {
	n := 0
	for _, p := range t.seats {
		if p != nil && match(p) {
			n++
		}
	}

	return n
}
