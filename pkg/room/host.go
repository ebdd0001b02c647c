package room

import (
	"fmt"

	"blackjack-server/pkg/blackjack"

	"github.com/sirupsen/logrus"
	"sync"
)

// Host owns a single room's run loop. Every mutation of the underlying
// blackjack.Room happens on that loop, so concurrent client intents against
// the same room never interleave mid-mutation.
type Host struct {
	registry *Registry
	room     *blackjack.Room

	clients map[string]*Client
	lock    sync.RWMutex

	execInRunLoop chan func()

	closeLock sync.Mutex
	closed    bool
	close     chan bool

	logger logrus.FieldLogger
}

func newHost(registry *Registry, room *blackjack.Room) *Host {
	return &Host{
		registry:      registry,
		room:          room,
		clients:       make(map[string]*Client),
		execInRunLoop: make(chan func(), 256),
		close:         make(chan bool),
		logger: logrus.WithFields(logrus.Fields{
			"room": room.ID,
			"name": room.Name,
		}),
	}
}

// StartShift starts the run loop
func (h *Host) StartShift() {
	go h.runLoop()
}

func (h *Host) runLoop() {
	h.logger.Debug("creating host run loop")
	for {
		select {
		case fn := <-h.execInRunLoop:
			fn()
		case <-h.close:
			// run whatever was queued before the shift ended
			for {
				select {
				case fn := <-h.execInRunLoop:
					fn()
				default:
					h.logger.Debug("terminating host run loop")
					return
				}
			}
		}
	}
}

// EndShift is called when the host is no longer needed.
// Work queued before this call still runs; exec rejects everything after.
func (h *Host) EndShift() {
	h.closeLock.Lock()
	defer h.closeLock.Unlock()

	if h.closed {
		return
	}

	h.closed = true
	close(h.close)
}

// exec queues fn on the run loop.
// Returns false if the host has ended its shift or the queue is full; the
// caller must respond to the client itself in that case.
func (h *Host) exec(fn func()) bool {
	h.closeLock.Lock()
	defer h.closeLock.Unlock()

	if h.closed {
		return false
	}

	select {
	case h.execInRunLoop <- fn:
		return true
	default:
		return false
	}
}

// Clients will return a slice of connected (at the time) clients
func (h *Host) Clients() []*Client {
	h.lock.RLock()
	defer h.lock.RUnlock()

	clients := make([]*Client, 0, len(h.clients))
	for _, client := range h.clients {
		clients = append(clients, client)
	}

	return clients
}

// ClientCount returns the number of connected clients
func (h *Host) ClientCount() int {
	h.lock.RLock()
	defer h.lock.RUnlock()
	return len(h.clients)
}

// Summary returns the lobby view of the hosted room.
// ID and name are immutable and occupancy equals the connected client count,
// so this is safe without entering the run loop.
func (h *Host) Summary() blackjack.RoomSummary {
	return blackjack.RoomSummary{
		ID:       h.room.ID,
		Name:     h.room.Name,
		Players:  h.ClientCount(),
		Capacity: blackjack.NumSeats,
	}
}

// AddClient registers the client's player in the room.
// This method must return quickly.
func (h *Host) AddClient(client *Client, ctx string) {
	ok := h.exec(func() {
		if _, err := h.room.AddPlayer(client.ID, client.Name); err != nil {
			client.Send(newErrorResponse(ctx, err))
			return
		}

		h.lock.Lock()
		h.clients[client.ID] = client
		h.lock.Unlock()

		client.setHost(h)
		client.Send(OK(ctx))
		h.flushEvents()
	})

	// the room was disposed between lookup and join
	if !ok {
		client.Send(newErrorResponse(ctx, blackjack.ErrRoomNotFound))
	}
}

// RemoveClient runs the leave transaction: advance the turn if the leaving
// player holds it, vacate the seat, drop the player, and dispose the room if
// it is ad-hoc and now empty.
// This method must return quickly.
func (h *Host) RemoveClient(client *Client) {
	ok := h.exec(func() {
		h.lock.Lock()
		delete(h.clients, client.ID)
		empty := len(h.clients) == 0
		h.lock.Unlock()

		client.setHost(nil)
		h.room.RemovePlayer(client.ID)
		h.flushEvents()

		if empty && !h.room.Permanent {
			h.logger.Debug("disposing empty room")
			h.registry.removeRoom(h.room.ID)
			h.EndShift()
		}
	})

	if !ok {
		client.setHost(nil)
	}
}

// ReceivedMessage is called when a client sends a message to the server
func (h *Host) ReceivedMessage(c *Client, msg *PayloadIn) {
	ok := h.exec(func() {
		if err := h.performAction(c, msg); err != nil {
			c.Send(newErrorResponse(msg.Context, err))
			return
		}

		c.Send(OK(msg.Context))
		h.flushEvents()
	})

	if !ok {
		c.Send(newErrorResponse(msg.Context, blackjack.ErrRoomNotFound))
	}
}

// performAction must only be called from the run loop
func (h *Host) performAction(c *Client, msg *PayloadIn) error {
	switch msg.Action {
	case "setPos":
		pos, ok := msg.AdditionalData.GetInt("pos")
		if !ok {
			return fmt.Errorf("missing 'pos' parameter")
		}

		return h.room.Sit(c.ID, pos)
	case "placeBet":
		amount, ok := msg.AdditionalData.GetInt("amount")
		if !ok {
			return fmt.Errorf("missing 'amount' parameter")
		}

		return h.room.PlaceBet(c.ID, amount)
	case "hit":
		// hand defaults to 0; splits are not driven yet
		hand, _ := msg.AdditionalData.GetInt("hand")
		return h.room.Hit(c.ID, hand)
	case "stand":
		return h.room.Stand(c.ID)
	default:
		logrus.WithField("msg", msg).Warn("unknown message")
		return fmt.Errorf("unknown action: %s", msg.Action)
	}
}

// flushEvents drains the room's notifications and routes them to clients.
// Must only be called from the run loop.
func (h *Host) flushEvents() {
	for _, ev := range h.room.PopEvents() {
		res := &Response{Key: ev.Key, Data: ev.Data}

		if ev.Recipient == "" {
			for _, client := range h.Clients() {
				if !client.Send(res) {
					h.logger.WithField("client", client.String()).Warn("send buffer full, dropping message")
				}
			}
			continue
		}

		h.lock.RLock()
		client, ok := h.clients[ev.Recipient]
		h.lock.RUnlock()

		if ok {
			client.Send(res)
		}
	}
}
