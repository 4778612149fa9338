package room

import (
	"sync"
	"time"

	"holdemtable-server/pkg/poker/action"
	"holdemtable-server/pkg/poker/holdem"

	"github.com/coder/quartz"
	"github.com/sirupsen/logrus"
)

// Dealer owns a single table and serializes every operation on it
// Subscribed clients receive their view of the table after each change
type Dealer struct {
	id     string
	logger logrus.FieldLogger
	clock  quartz.Clock

	actionTimeout time.Duration

	lock    sync.Mutex
	table   *holdem.Table
	clients map[*Client]bool
	timer   *quartz.Timer
	// version increments with every change, so a timer can tell if its turn is still pending
	version int
	closed  bool
}

func newDealer(logger logrus.FieldLogger, clock quartz.Clock, tbl *holdem.Table, actionTimeout time.Duration) *Dealer {
	return &Dealer{
		id:            tbl.ID(),
		logger:        logger.WithField("table", tbl.ID()),
		clock:         clock,
		actionTimeout: actionTimeout,
		table:         tbl,
		clients:       make(map[*Client]bool),
	}
}

// ID returns the table id
func (d *Dealer) ID() string {
	return d.id
}

// exec runs fn while holding the table lock
// If fn succeeds, clients are notified and the turn timer is re-armed
func (d *Dealer) exec(fn func(tbl *holdem.Table) error) error {
	d.lock.Lock()
	defer d.lock.Unlock()

	if d.closed {
		return ErrTableNotFound
	}

	if err := fn(d.table); err != nil {
		return err
	}

	d.changed()
	return nil
}

// changed must be called with the lock held
func (d *Dealer) changed() {
	d.version++
	d.armTimer()
	d.broadcast()
}

// Join seats a player
func (d *Dealer) Join(name string, seat int) error {
	return d.exec(func(tbl *holdem.Table) error {
		return tbl.Join(name, seat)
	})
}

// Leave removes a player from the table
func (d *Dealer) Leave(name string) error {
	return d.exec(func(tbl *holdem.Table) error {
		return tbl.Leave(name)
	})
}

// AddChips grants chips to a player
func (d *Dealer) AddChips(name string, amount int) error {
	return d.exec(func(tbl *holdem.Table) error {
		return tbl.AddChips(name, amount)
	})
}

// StartRound starts a new hand
func (d *Dealer) StartRound() error {
	return d.exec(func(tbl *holdem.Table) error {
		return tbl.StartRound()
	})
}

// DealNextStreet deals the next street, or runs the showdown after the river
func (d *Dealer) DealNextStreet() (*holdem.StreetDealt, error) {
	var result *holdem.StreetDealt
	err := d.exec(func(tbl *holdem.Table) error {
		var err error
		result, err = tbl.DealNextStreet()
		return err
	})

	return result, err
}

// Act performs a betting action
func (d *Dealer) Act(name string, a action.Action, amount int) error {
	return d.exec(func(tbl *holdem.Table) error {
		return tbl.Act(name, a, amount)
	})
}

// ResetRound voids the current hand
func (d *Dealer) ResetRound() error {
	return d.exec(func(tbl *holdem.Table) error {
		tbl.ResetRound()
		return nil
	})
}

// State returns the table as seen by viewer
func (d *Dealer) State(viewer string) *holdem.TableState {
	d.lock.Lock()
	defer d.lock.Unlock()

	return d.table.State(viewer)
}

// LegalActions returns the actions the player may take right now
func (d *Dealer) LegalActions(name string) []action.Action {
	d.lock.Lock()
	defer d.lock.Unlock()

	return d.table.LegalActions(name)
}

// HandLog returns the history of the current or last hand
func (d *Dealer) HandLog() []*holdem.LogEntry {
	d.lock.Lock()
	defer d.lock.Unlock()

	return d.table.HandLog()
}

// Subscribe returns a client that receives viewer's state now and after every change
func (d *Dealer) Subscribe(viewer string) *Client {
	d.lock.Lock()
	defer d.lock.Unlock()

	client := newClient(d, viewer)
	if d.closed {
		close(client.Close)
		return client
	}

	d.clients[client] = true
	client.Send(newStateResponse(d.table.State(viewer)))

	d.logger.WithField("viewer", viewer).Debug("client subscribed")
	return client
}

// Unsubscribe stops sending updates to the client
func (d *Dealer) Unsubscribe(client *Client) {
	d.lock.Lock()
	defer d.lock.Unlock()

	delete(d.clients, client)
	d.logger.WithField("viewer", client.viewer).Debug("client unsubscribed")
}

// Clients returns the number of subscribed clients
func (d *Dealer) Clients() int {
	d.lock.Lock()
	defer d.lock.Unlock()

	return len(d.clients)
}

// EndShift is called when the table is destroyed
func (d *Dealer) EndShift() {
	d.lock.Lock()
	defer d.lock.Unlock()

	if d.closed {
		return
	}

	d.closed = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}

	for client := range d.clients {
		client.Close <- "table closed"
		close(client.Close)
	}

	d.clients = make(map[*Client]bool)
}

// NOTE: must be called with the lock held
func (d *Dealer) broadcast() {
	for client := range d.clients {
		if !client.Send(newStateResponse(d.table.State(client.viewer))) {
			d.logger.WithField("viewer", client.viewer).Warn("client is not keeping up, dropping state")
		}
	}
}

// armTimer starts the clock for the player to act, replacing any running timer
// NOTE: must be called with the lock held
func (d *Dealer) armTimer() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}

	if d.actionTimeout <= 0 || d.closed {
		return
	}

	if _, err := d.table.GetCurrentTurn(); err != nil {
		return
	}

	version := d.version
	d.timer = d.clock.AfterFunc(d.actionTimeout, func() {
		d.expire(version)
	}, "dealer", "turn")
}

// expire folds the player to act if nobody has acted since the timer was armed
func (d *Dealer) expire(version int) {
	d.lock.Lock()
	defer d.lock.Unlock()

	if d.closed || version != d.version {
		return
	}

	p, err := d.table.GetCurrentTurn()
	if err != nil {
		return
	}

	name := p.Name()
	if err := d.table.Fold(name); err != nil {
		d.logger.WithError(err).WithField("player", name).Error("could not fold player after timeout")
		return
	}

	d.logger.WithFields(logrus.Fields{
		"player":  name,
		"timeout": d.actionTimeout.String(),
	}).Info("player timed out and folded")

	d.changed()
}
