package blackjack

import "blackjack-server/pkg/deck"

// event keys pushed to clients
const (
	KeyCurrentPlayers = "currentPlayers"
	KeyNewPlayer      = "newPlayer"
	KeyDeletePlayer   = "deletePlayer"
	KeyStartTurn      = "startTurn"
	KeyDealHands      = "dealHands"
	KeyDealCard       = "dealCard"
	KeyWinStatus      = "winStatus"
)

// Event is a state-change notification produced by a room.
// If Recipient is empty, the event is a room-wide broadcast; otherwise it is
// delivered only to the named player.
type Event struct {
	Key       string      `json:"key"`
	Data      interface{} `json:"data"`
	Recipient string      `json:"-"`
}

// DealHandsData announces a fresh round. The dealer's hole card is replaced
// by the face-down sentinel.
type DealHandsData struct {
	Players map[string]*Player `json:"players"`
	Dealer  *Dealer            `json:"dealer"`
}

// DealCardData announces a single card dealt to a player's hand
type DealCardData struct {
	PlayerID string     `json:"playerId"`
	Card     *deck.Card `json:"card"`
	Hand     int        `json:"hand"`
}

// WinStatusData is the private end-of-round result for one player.
// The dealer hand here is fully revealed.
type WinStatusData struct {
	Dealer  *Dealer `json:"dealer"`
	Outcome Outcome `json:"outcome"`
	Payout  int     `json:"payout"`
}

func (r *Room) emit(key string, data interface{}) {
	r.events = append(r.events, &Event{Key: key, Data: data})
}

func (r *Room) emitTo(recipient, key string, data interface{}) {
	r.events = append(r.events, &Event{Key: key, Data: data, Recipient: recipient})
}

// PopEvents drains the room's pending notifications.
// Must be called under the same serialization as the mutating calls.
func (r *Room) PopEvents() []*Event {
	events := r.events
	r.events = nil
	return events
}
