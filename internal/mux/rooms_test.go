package mux

import (
	"net/http/httptest"
	"strings"
	"testing"

	"blackjack-server/pkg/blackjack"
	"blackjack-server/pkg/room"

	"github.com/stretchr/testify/assert"
)

func TestGetRooms(t *testing.T) {
	a := assert.New(t)

	registry := room.NewRegistry(blackjack.Options{})
	registry.CreateDefaultRooms(2)

	ts := httptest.NewServer(NewMux("", registry))
	defer ts.Close()

	var summaries []blackjack.RoomSummary
	assertGet(t, ts, "/rooms", &summaries, 200)
	a.Len(summaries, 2)
	a.Equal("Table 1", summaries[0].Name)
	a.Equal(5, summaries[0].Capacity)
}

func TestPostRooms(t *testing.T) {
	a := assert.New(t)

	registry := room.NewRegistry(blackjack.Options{})
	ts := httptest.NewServer(NewMux("", registry))
	defer ts.Close()

	var summary blackjack.RoomSummary
	assertPost(t, ts, "/rooms", postRoomsPayload{Name: "My Table"}, &summary, 201)
	a.Equal("My Table", summary.Name)
	a.NotEmpty(summary.ID)
	a.Len(registry.Summaries(), 1)

	// a blank name gets a generated one
	summary = blackjack.RoomSummary{}
	assertPost(t, ts, "/rooms", postRoomsPayload{}, &summary, 201)
	a.NotEmpty(summary.Name)

	var errObj errorResponse
	assertPost(t, ts, "/rooms", postRoomsPayload{Name: strings.Repeat("x", 41)}, &errObj, 400)
	assertPost(t, ts, "/rooms", "{bad json", &errObj, 400)
}
