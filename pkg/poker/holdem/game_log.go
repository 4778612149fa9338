package holdem

import (
	"time"

	"github.com/sirupsen/logrus"
)

// LogEntry is a single event in the hand history
type LogEntry struct {
	HandNumber   int          `json:"handNumber"`
	BettingRound BettingRound `json:"bettingRound"`
	Player       string       `json:"player,omitempty"`
	Message      string       `json:"message"`
	Time         time.Time    `json:"time"`
}

// HandLog returns the history of the current hand, or the last one if no hand is running
func (t *Table) HandLog() []*LogEntry {
	entries := make([]*LogEntry, len(t.log))
	copy(entries, t.log)
	return entries
}

func (t *Table) record(player, message string) {
	entry := &LogEntry{
		HandNumber:   t.handNumber,
		BettingRound: t.bettingRound,
		Player:       player,
		Message:      message,
		Time:         time.Now(),
	}

	t.log = append(t.log, entry)
	t.logger.WithFields(logrus.Fields{
		"hand":   entry.HandNumber,
		"round":  entry.BettingRound.String(),
		"player": player,
	}).Debug(message)
}
