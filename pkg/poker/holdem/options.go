package holdem

import (
	"errors"
)

// MaxSeats is the number of seats at a table
const MaxSeats = 8

// NoSeat is used when a seat index does not apply, e.g., nobody is to act
const NoSeat = -1

// Options configures the stakes of a table
type Options struct {
	SmallBlind    int `json:"smallBlind" yaml:"smallBlind"`
	BigBlind      int `json:"bigBlind" yaml:"bigBlind"`
	StartingChips int `json:"startingChips" yaml:"startingChips"`

	// Seed makes shuffles reproducible. Zero uses crypto/rand.
	Seed int64 `json:"-" yaml:"-"`
}

// DefaultOptions returns the default options for a table
func DefaultOptions() Options {
	return Options{
		SmallBlind:    10,
		BigBlind:      20,
		StartingChips: 1000,
	}
}

func validateOptions(opts Options) error {
	if opts.SmallBlind <= 0 {
		return errors.New("small blind must be > 0")
	}

	if opts.BigBlind < opts.SmallBlind {
		return errors.New("big blind must be >= the small blind")
	}

	if opts.StartingChips <= 0 {
		return errors.New("starting chips must be > 0")
	}

	return nil
}
