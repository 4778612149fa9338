package potmanager

// Participant is a player who can be paid out of a pot
type Participant interface {
	Name() string
	AdjustBalance(amount int)
}
