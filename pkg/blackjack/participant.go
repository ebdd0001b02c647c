package blackjack

// Player is a connected participant. The identity is connection-scoped and
// stable for the life of the session.
// Hands is a slice to leave room for splits, but only slot 0 is driven.
type Player struct {
	ID        string  `json:"playerId"`
	Name      string  `json:"name"`
	Pos       int     `json:"pos"`
	Hands     []*Hand `json:"hands"`
	Balance   int     `json:"balance"`
	Bet       int     `json:"betAmount"`
	BetPlaced bool    `json:"betPlaced"`
}

// NewPlayer returns a new, unseated player
func NewPlayer(id, name string, balance int) *Player {
	return &Player{
		ID:      id,
		Name:    name,
		Pos:     NoSeat,
		Hands:   []*Hand{NewHand()},
		Balance: balance,
	}
}

// Hand returns the hand at the given index
func (p *Player) Hand(index int) (*Hand, bool) {
	if index < 0 || index >= len(p.Hands) {
		return nil, false
	}

	return p.Hands[index], true
}

// ResetHands discards all cards and leaves the player with one empty hand
func (p *Player) ResetHands() {
	p.Hands = []*Hand{NewHand()}
}

// IsSeated returns true if the player occupies a seat
func (p *Player) IsSeated() bool {
	return p.Pos != NoSeat
}

// Dealer is the house participant. Its position is the sentinel one past the
// last seat so the deal order puts it after every player.
type Dealer struct {
	Pos   int     `json:"pos"`
	Hands []*Hand `json:"hands"`
}

// NewDealer returns a new dealer with an empty hand
func NewDealer() *Dealer {
	return &Dealer{
		Pos:   NumSeats,
		Hands: []*Hand{NewHand()},
	}
}

// ResetHands discards all cards and leaves the dealer with one empty hand
func (d *Dealer) ResetHands() {
	d.Hands = []*Hand{NewHand()}
}
