package room

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"holdemtable-server/pkg/poker/holdem"

	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Options configures the tables a PitBoss creates
type Options struct {
	Table holdem.Options

	// ActionTimeout folds a player who takes longer to act. Zero disables it.
	ActionTimeout time.Duration
}

// PitBoss is the registry of tables
// Each table is run by its own Dealer, so distinct tables never contend on a lock
type PitBoss struct {
	logger  logrus.FieldLogger
	clock   quartz.Clock
	options Options

	lock    sync.RWMutex
	dealers map[string]*Dealer
}

// NewPitBoss returns an empty registry
func NewPitBoss(logger logrus.FieldLogger, clock quartz.Clock, opts Options) *PitBoss {
	return &PitBoss{
		logger:  logger,
		clock:   clock,
		options: opts,
		dealers: make(map[string]*Dealer),
	}
}

// CreateTable creates a table with the default options
// If id is empty, a random one is generated
func (p *PitBoss) CreateTable(id string) (*Dealer, error) {
	if id == "" {
		id = uuid.New().String()
	}

	tbl, err := holdem.NewTable(p.logger, id, p.options.Table)
	if err != nil {
		return nil, err
	}

	p.lock.Lock()
	defer p.lock.Unlock()

	if _, found := p.dealers[id]; found {
		return nil, fmt.Errorf("%w: %s", ErrTableExists, id)
	}

	dealer := newDealer(p.logger, p.clock, tbl, p.options.ActionTimeout)
	p.dealers[id] = dealer

	p.logger.WithField("table", id).Info("table created")
	return dealer, nil
}

// Dealer returns the dealer for the table
func (p *PitBoss) Dealer(id string) (*Dealer, error) {
	p.lock.RLock()
	defer p.lock.RUnlock()

	dealer, found := p.dealers[id]
	if !found {
		return nil, ErrTableNotFound
	}

	return dealer, nil
}

// DestroyTable removes the table and disconnects its clients
func (p *PitBoss) DestroyTable(id string) error {
	p.lock.Lock()
	dealer, found := p.dealers[id]
	delete(p.dealers, id)
	p.lock.Unlock()

	if !found {
		return ErrTableNotFound
	}

	dealer.EndShift()
	p.logger.WithField("table", id).Info("table destroyed")
	return nil
}

// TableIDs returns the id of every table, sorted
func (p *PitBoss) TableIDs() []string {
	p.lock.RLock()
	defer p.lock.RUnlock()

	ids := make([]string, 0, len(p.dealers))
	for id := range p.dealers {
		ids = append(ids, id)
	}

	sort.Strings(ids)
	return ids
}
