package mux

import (
	"net/http"

	"blackjack-server/pkg/room"

	gmux "github.com/gorilla/mux"
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version  string
	registry *room.Registry
}

// NewMux returns a new HTTP mux
func NewMux(version string, registry *room.Registry) *Mux {
	this := &Mux{
		Router:   gmux.NewRouter(),
		version:  version,
		registry: registry,
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodGet).Path("/rooms").Handler(this.getRooms())
	r.Methods(http.MethodPost).Path("/rooms").Handler(this.postRooms())
	r.Methods(http.MethodGet).Path("/ws").Handler(this.getWS())

	return this
}
