package room

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// errNotInRoom is returned for room actions sent before joining a room
var errNotInRoom = errors.New("you are not in a room")

// Client is a client connected to the server via websockets.
// The ID doubles as the player identity; it is connection-scoped and stable
// for the life of the session.
type Client struct {
	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// ID is the connection-scoped player identity
	ID string

	// Name is the display name
	Name string

	// send is a channel for sending messages to the client
	send chan interface{}

	// Close is a channel for closing the client
	Close chan string

	// CloseError contains the reason why the connection was closed
	CloseError error

	registry *Registry

	mu   sync.Mutex
	host *Host
}

// NewClient returns a new client object
func NewClient(conn *websocket.Conn, registry *Registry, id, name string) *Client {
	return &Client{
		Conn:     conn,
		ID:       id,
		Name:     name,
		send:     make(chan interface{}, 256),
		Close:    make(chan string),
		registry: registry,
	}
}

// Send sends a message to the web client.
// Returns false if the client's send buffer is full.
func (c *Client) Send(msg interface{}) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// SendChan returns a read-only channel of outbound messages
func (c *Client) SendChan() <-chan interface{} {
	return c.send
}

// String returns a traceable identifier for the client
func (c *Client) String() string {
	return fmt.Sprintf("%s:%s", c.Name, c.ID)
}

// Host returns the host of the room the client is in, or nil
func (c *Client) Host() *Host {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.host
}

func (c *Client) setHost(host *Host) {
	c.mu.Lock()
	c.host = host
	c.mu.Unlock()
}

// ReceivedMessage is called when the server receives a message from a connected client
func (c *Client) ReceivedMessage(msg *PayloadIn) {
	if msg.Action == "joinRoom" {
		c.registry.JoinRoom(c, msg)
		return
	}

	host := c.Host()
	if host == nil {
		logrus.WithField("msg", msg).WithField("client", c.String()).Warn("received message, but client is not in a room")
		c.Send(newErrorResponse(msg.Context, errNotInRoom))
		return
	}

	host.ReceivedMessage(c, msg)
}
