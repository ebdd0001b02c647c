package room

import (
	"fmt"
	"sort"
	"sync"

	"blackjack-server/pkg/blackjack"

	"github.com/sirupsen/logrus"
)

// Registry owns the process-wide set of rooms and dispatches clients to
// their hosts. Rooms are independent; only the room map itself is guarded
// here.
type Registry struct {
	lock    sync.RWMutex
	hosts   map[string]*Host
	options blackjack.Options
}

// NewRegistry returns a new, empty registry
func NewRegistry(options blackjack.Options) *Registry {
	return &Registry{
		hosts:   make(map[string]*Host),
		options: options,
	}
}

// CreateDefaultRooms creates the permanent lobby rooms.
// Called once at process start; permanent rooms are never destroyed, even
// when empty.
func (r *Registry) CreateDefaultRooms(count int) {
	for i := 1; i <= count; i++ {
		summary := r.CreateRoom(fmt.Sprintf("Table %d", i), true)
		logrus.WithFields(logrus.Fields{
			"room": summary.ID,
			"name": summary.Name,
		}).Info("created room")
	}
}

// CreateRoom creates a room with a fresh shuffled shoe and starts its host
func (r *Registry) CreateRoom(name string, permanent bool) blackjack.RoomSummary {
	room := blackjack.NewRoom(name, permanent, r.options)
	host := newHost(r, room)
	host.StartShift()

	r.lock.Lock()
	r.hosts[room.ID] = host
	r.lock.Unlock()

	return host.Summary()
}

func (r *Registry) removeRoom(id string) {
	r.lock.Lock()
	delete(r.hosts, id)
	r.lock.Unlock()
}

func (r *Registry) host(id string) (*Host, bool) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	host, ok := r.hosts[id]
	return host, ok
}

// Summaries returns the lobby view of every room, ordered by name
func (r *Registry) Summaries() []blackjack.RoomSummary {
	r.lock.RLock()
	summaries := make([]blackjack.RoomSummary, 0, len(r.hosts))
	for _, host := range r.hosts {
		summaries = append(summaries, host.Summary())
	}
	r.lock.RUnlock()

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].Name == summaries[j].Name {
			return summaries[i].ID < summaries[j].ID
		}

		return summaries[i].Name < summaries[j].Name
	})

	return summaries
}

// ClientConnected is called when a client connects to the server.
// The client is shown the room list and nothing else until it joins a room.
func (r *Registry) ClientConnected(client *Client) {
	logrus.WithField("client", client.String()).Debug("client connected")

	client.Send(&Response{
		Key:  "showRooms",
		Data: r.Summaries(),
	})
}

// JoinRoom routes the client into the requested room
func (r *Registry) JoinRoom(client *Client, msg *PayloadIn) {
	if client.Host() != nil {
		client.Send(newErrorResponse(msg.Context, fmt.Errorf("already in a room")))
		return
	}

	roomID, ok := msg.AdditionalData.GetString("roomId")
	if !ok {
		client.Send(newErrorResponse(msg.Context, fmt.Errorf("missing 'roomId' parameter")))
		return
	}

	host, found := r.host(roomID)
	if !found {
		client.Send(newErrorResponse(msg.Context, blackjack.ErrRoomNotFound))
		return
	}

	host.AddClient(client, msg.Context)
}

// ClientDisconnected is called when a client disconnects from the server
func (r *Registry) ClientDisconnected(client *Client) {
	logrus.WithField("client", client.String()).Debug("client disconnected")

	if host := client.Host(); host != nil {
		host.RemoveClient(client)
	}
}
