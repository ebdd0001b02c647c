package mux

import (
	"errors"
	"net/http"
	"strings"

	"blackjack-server/internal/util"
)

func (m *Mux) getRooms() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, m.registry.Summaries())
	}
}

type postRoomsPayload struct {
	Name string `json:"name"`
}

// postRooms creates an ad-hoc room. Unlike the default rooms created at
// startup, it is destroyed when its last player leaves.
func (m *Mux) postRooms() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postRoomsPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		name := strings.TrimSpace(pp.Name)
		if name == "" {
			name = util.GetRandomName()
		}

		if len(name) > 40 {
			writeJSONError(w, http.StatusBadRequest, errors.New("name must be 40 characters or fewer"))
			return
		}

		writeJSON(w, http.StatusCreated, m.registry.CreateRoom(name, false))
	}
}
