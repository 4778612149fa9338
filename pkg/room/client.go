package room

import (
	"errors"
	"fmt"

	"holdemtable-server/pkg/poker/action"

	"github.com/sirupsen/logrus"
)

const clientBuffer = 256

var errSpectator = errors.New("spectators cannot act")

// Client is a subscriber that receives the table state after every change
// Viewer is the seated player whose hole cards the client may see, or empty for a spectator
type Client struct {
	viewer string

	// send is a channel for sending messages to the client
	send chan interface{}

	// Close is closed, with a reason sent first if possible, when the table is destroyed
	Close chan string

	// CloseError contains the reason why the connection was closed
	CloseError error

	dealer *Dealer
}

func newClient(d *Dealer, viewer string) *Client {
	return &Client{
		viewer: viewer,
		send:   make(chan interface{}, clientBuffer),
		Close:  make(chan string, 1),
		dealer: d,
	}
}

// Viewer returns the player the client is watching as
func (c *Client) Viewer() string {
	return c.viewer
}

// Send sends a message to the client without blocking
// false is returned if the client is not keeping up
func (c *Client) Send(msg interface{}) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// SendChan returns a read-only channel
func (c *Client) SendChan() <-chan interface{} {
	return c.send
}

// String returns a traceable identifier for the viewer and table
func (c *Client) String() string {
	return fmt.Sprintf("%s:%s", c.viewer, c.dealer.ID())
}

// ReceivedMessage is called when the server receives a message from a connected client
// Only a seated viewer can act, and only as themselves
func (c *Client) ReceivedMessage(msg *PayloadIn) {
	if c.viewer == "" {
		c.Send(newErrorResponse(msg.Context, errSpectator))
		return
	}

	a, err := action.FromString(msg.Action)
	if err != nil {
		c.Send(newErrorResponse(msg.Context, err))
		return
	}

	if err := c.dealer.Act(c.viewer, a, msg.Amount); err != nil {
		logrus.WithError(err).WithField("client", c.String()).Debug("rejected action")
		c.Send(newErrorResponse(msg.Context, err))
		return
	}

	c.Send(OK(msg.Context))
}
