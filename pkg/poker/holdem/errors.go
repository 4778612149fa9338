package holdem

import (
	"errors"
	"fmt"
)

// Kind classifies a rules violation
type Kind int

// Kind constants
const (
	KindUnknown Kind = iota
	KindValidation
	KindTurn
	KindActionLegality
	KindPhase
	KindResourceExhaustion
	KindNotFound
	KindPrecondition
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindTurn:
		return "turn"
	case KindActionLegality:
		return "action-legality"
	case KindPhase:
		return "phase"
	case KindResourceExhaustion:
		return "resource-exhaustion"
	case KindNotFound:
		return "not-found"
	case KindPrecondition:
		return "precondition"
	}

	return "unknown"
}

// Error is an error caused by a request the table cannot honor
// Nothing is modified when an Error is returned
type Error struct {
	Kind    Kind
	message string
}

// NewError returns a new Error of the specified kind
func NewError(kind Kind, message string) *Error {
	return &Error{
		Kind:    kind,
		message: message,
	}
}

func (e *Error) Error() string {
	return e.message
}

// KindOf returns the Kind of the first *Error in the chain, or KindUnknown
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return KindUnknown
}

// seating and input validation
var (
	ErrInvalidSeat   = NewError(KindValidation, fmt.Sprintf("seat must be between 0 and %d", MaxSeats-1))
	ErrSeatOccupied  = NewError(KindValidation, "seat is already occupied")
	ErrAlreadySeated = NewError(KindValidation, "player is already seated")
	ErrInvalidName   = NewError(KindValidation, "name is required")
	ErrInvalidAmount = NewError(KindValidation, "amount must be greater than zero")
	ErrUnknownAction = NewError(KindValidation, "unknown action")
)

// turn order
var (
	ErrNotYourTurn = NewError(KindTurn, "it is not your turn")
	ErrCannotAct   = NewError(KindTurn, "player cannot act")
)

// action legality
var (
	ErrNothingToCall   = NewError(KindActionLegality, "there is nothing to call")
	ErrMustCallOrRaise = NewError(KindActionLegality, "cannot check, you must call or raise")
	ErrBetTooSmall     = NewError(KindActionLegality, "bet is too small")
	ErrRaiseTooSmall   = NewError(KindActionLegality, "raise is too small")
)

// phase
var (
	ErrBettingNotClosed = NewError(KindPhase, "betting round is not over")
	ErrNoHandInProgress = NewError(KindPhase, "no hand in progress")
	ErrHandInProgress   = NewError(KindPhase, "hand is in progress")
	ErrInvalidPhase     = NewError(KindPhase, "invalid betting round transition")
)

// ErrEmptyDeck is returned if the deck runs out of cards
var ErrEmptyDeck = NewError(KindResourceExhaustion, "deck is empty")

// ErrPlayerNotFound is returned when the named player is not seated
var ErrPlayerNotFound = NewError(KindNotFound, "player not found")

// ErrInsufficientPlayers is returned when a round is started without enough players
var ErrInsufficientPlayers = NewError(KindPrecondition, "at least two players with chips are required")
