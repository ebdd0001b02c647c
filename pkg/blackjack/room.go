package blackjack

import (
	"blackjack-server/pkg/deck"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// maxCardsPerHand is a safe upper bound on the cards a single blackjack hand
// can consume before it busts or the dealer stands. Used to decide whether
// the shoe must be rebuilt before a round is dealt.
const maxCardsPerHand = 12

// dealerStandsAt is the total at which the dealer stops drawing
const dealerStandsAt = 17

// Turn tracks whose action is currently awaited.
// When InProgress is true, Pos refers to an occupied seat.
type Turn struct {
	InProgress bool `json:"inProgress"`
	Pos        int  `json:"pos"`
}

// Options configure a new room
type Options struct {
	// ShoeSize is the number of 52-card decks in the shoe (default 6)
	ShoeSize int
	// StartingBalance is the balance given to each joining player (default 1000)
	StartingBalance int
}

func (o *Options) applyDefaults() {
	if o.ShoeSize <= 0 {
		o.ShoeSize = 6
	}

	if o.StartingBalance <= 0 {
		o.StartingBalance = 1000
	}
}

// Room is a single blackjack table: one shoe, one seat table, one dealer,
// and the players connected to it.
//
// A room is not safe for concurrent use. All calls, including PopEvents,
// must be serialized by the owner (one run loop per room).
type Room struct {
	ID        string
	Name      string
	Permanent bool

	Seats   SeatTable
	Players map[string]*Player
	Dealer  *Dealer

	deck    *deck.Deck
	turn    Turn
	options Options

	events []*Event
	logger logrus.FieldLogger
}

// NewRoom returns a new room with a fresh, shuffled shoe.
// Permanent rooms survive their last player leaving; ad-hoc rooms do not.
func NewRoom(name string, permanent bool, options Options) *Room {
	options.applyDefaults()

	id := uuid.New().String()
	d := deck.New(options.ShoeSize)
	d.Shuffle()

	return &Room{
		ID:        id,
		Name:      name,
		Permanent: permanent,
		Players:   make(map[string]*Player),
		Dealer:    NewDealer(),
		deck:      d,
		turn:      Turn{Pos: NoSeat},
		options:   options,
		logger:    logrus.WithFields(logrus.Fields{"room": id, "name": name}),
	}
}

// Turn returns the current turn cursor
func (r *Room) Turn() Turn {
	return r.turn
}

// Deck returns the room's shoe. Exposed for tests that need a stacked or
// seeded deck.
func (r *Room) Deck() *deck.Deck {
	return r.deck
}

// AddPlayer registers a player in the room without assigning a seat
func (r *Room) AddPlayer(id, name string) (*Player, error) {
	if len(r.Players) >= NumSeats {
		return nil, ErrRoomFull
	}

	player := NewPlayer(id, name, r.options.StartingBalance)
	r.Players[id] = player

	r.emit(KeyCurrentPlayers, r.Players)
	return player, nil
}

// RemovePlayer removes the player from the room.
// If the player holds the active turn, the turn advances before the seat is
// vacated so the round does not stall on an absent seat.
func (r *Room) RemovePlayer(id string) bool {
	player, ok := r.Players[id]
	if !ok {
		return false
	}

	if player.IsSeated() {
		if r.turn.InProgress && r.turn.Pos == player.Pos {
			r.advance(player.Pos)
		}

		r.Seats.Vacate(player.Pos)
	}

	delete(r.Players, id)
	r.emit(KeyDeletePlayer, id)

	return true
}

// Sit assigns the player to the given seat.
// A player who is already seated is moved; the old seat is vacated.
// Seats are locked while a round is in progress, otherwise the turn cursor
// could be left pointing at a vacated seat.
func (r *Room) Sit(id string, pos int) error {
	player, ok := r.Players[id]
	if !ok {
		return ErrPlayerNotFound
	}

	if r.turn.InProgress {
		return ErrRoundInProgress
	}

	if err := r.Seats.Assign(pos, id); err != nil {
		return err
	}

	if player.IsSeated() {
		r.Seats.Vacate(player.Pos)
	}

	player.Pos = pos
	r.emit(KeyNewPlayer, player)

	return nil
}

// PlaceBet deducts the bet from the player's balance and marks the bet as
// placed. When every seated player has a bet down, the round starts.
func (r *Room) PlaceBet(id string, amount int) error {
	player, ok := r.Players[id]
	if !ok {
		return ErrPlayerNotFound
	}

	if r.turn.InProgress {
		return ErrRoundInProgress
	}

	if amount <= 0 {
		return ErrInvalidBet
	}

	// changing the bet before the round starts refunds the previous one
	available := player.Balance
	if player.BetPlaced {
		available += player.Bet
	}

	if amount > available {
		return ErrInsufficientFunds
	}

	player.Balance = available - amount
	player.Bet = amount
	player.BetPlaced = true

	if r.allSeatedPlayersBet() {
		r.startRound()
	}

	return nil
}

// allSeatedPlayersBet reports whether the betting gate is satisfied.
// At least one seated player must exist; a lone unseated bettor must not
// start an empty round.
func (r *Room) allSeatedPlayersBet() bool {
	seated := 0
	for _, player := range r.Players {
		if !player.IsSeated() {
			continue
		}

		seated++
		if !player.BetPlaced {
			return false
		}
	}

	return seated > 0
}

// Hit draws one card onto the player's hand. Busting the hand forfeits the
// rest of the player's turn.
func (r *Room) Hit(id string, handIndex int) error {
	player, err := r.currentTurnPlayer(id)
	if err != nil {
		return err
	}

	hand, ok := player.Hand(handIndex)
	if !ok {
		return ErrInvalidHand
	}

	card, err := r.deck.Draw()
	if err != nil {
		return err
	}

	hand.AddCard(card)
	r.emit(KeyDealCard, &DealCardData{
		PlayerID: player.ID,
		Card:     card,
		Hand:     handIndex,
	})

	if hand.Total > 21 {
		r.advance(player.Pos)
	}

	return nil
}

// Stand ends the player's turn
func (r *Room) Stand(id string) error {
	player, err := r.currentTurnPlayer(id)
	if err != nil {
		return err
	}

	r.advance(player.Pos)
	return nil
}

// currentTurnPlayer returns the player if they hold the active turn
func (r *Room) currentTurnPlayer(id string) (*Player, error) {
	player, ok := r.Players[id]
	if !ok {
		return nil, ErrPlayerNotFound
	}

	if !r.turn.InProgress || !player.IsSeated() || r.turn.Pos != player.Pos {
		return nil, ErrActionOutOfTurn
	}

	return player, nil
}

// startRound clears the betting gate, deals a fresh round, and hands the
// turn to the first occupied seat. No-op if a round is already in progress.
func (r *Room) startRound() {
	if r.turn.InProgress {
		return
	}

	for _, player := range r.Players {
		player.BetPlaced = false
	}

	if err := r.dealInitialHands(); err != nil {
		// cannot happen: the shoe is rebuilt before dealing
		r.logger.WithError(err).Error("could not deal hands")
		return
	}

	r.emit(KeyDealHands, &DealHandsData{
		Players: r.Players,
		Dealer:  r.maskedDealer(),
	})

	r.advance(NoSeat)
}

// dealInitialHands resets every hand and deals one card at a time around the
// occupied seats in ascending order, then the dealer, twice.
func (r *Room) dealInitialHands() error {
	if r.turn.InProgress {
		return nil
	}

	// worst case every participant draws until bust; make sure the shoe
	// cannot run dry mid-round
	needed := (r.Seats.OccupiedCount() + 1) * maxCardsPerHand
	if !r.deck.CanDraw(needed) {
		r.logger.WithField("cardsLeft", r.deck.CardsLeft()).Info("rebuilding shoe")
		r.deck.Rebuild()
	}

	for pos := 0; pos < NumSeats; pos++ {
		if id, ok := r.Seats.OccupantAt(pos); ok {
			r.Players[id].ResetHands()
		}
	}
	r.Dealer.ResetHands()

	for i := 0; i < 2; i++ {
		for pos := 0; pos < NumSeats; pos++ {
			id, ok := r.Seats.OccupantAt(pos)
			if !ok {
				continue
			}

			card, err := r.deck.Draw()
			if err != nil {
				return err
			}

			r.Players[id].Hands[0].AddCard(card)
		}

		card, err := r.deck.Draw()
		if err != nil {
			return err
		}

		r.Dealer.Hands[0].AddCard(card)
	}

	return nil
}

// advance moves the turn to the first occupied seat after fromSeat. If none
// remains, the dealer plays out its hand and the round settles.
func (r *Room) advance(fromSeat int) {
	r.turn.InProgress = false

	for pos := fromSeat + 1; pos < NumSeats; pos++ {
		if r.Seats.IsOccupied(pos) {
			r.turn.InProgress = true
			r.turn.Pos = pos
			r.emit(KeyStartTurn, pos)
			return
		}
	}

	r.turn.Pos = NoSeat
	r.settleRound()
}

// settleRound draws the dealer to 17 and sends each player a private result
func (r *Room) settleRound() {
	dealerHand := r.Dealer.Hands[0]
	for dealerHand.Total < dealerStandsAt {
		card, err := r.deck.Draw()
		if err != nil {
			// cannot happen: the shoe is rebuilt before dealing
			r.logger.WithError(err).Error("shoe exhausted during dealer draw")
			r.deck.Rebuild()
			continue
		}

		dealerHand.AddCard(card)
	}

	dealerTotal := dealerHand.Total
	for _, player := range r.Players {
		for _, hand := range player.Hands {
			// players without cards were not part of the round
			if len(hand.Cards) == 0 {
				continue
			}

			outcome := Settle(hand.Total, dealerTotal)
			payout := outcome.Payout(player.Bet)
			player.Balance += payout

			r.emitTo(player.ID, KeyWinStatus, &WinStatusData{
				Dealer:  r.Dealer,
				Outcome: outcome,
				Payout:  payout,
			})
		}

		player.Bet = 0
	}
}

// maskedDealer returns a copy of the dealer with the hole card replaced by
// the face-down sentinel and the total computed over visible cards only
func (r *Room) maskedDealer() *Dealer {
	masked := NewDealer()
	for i, card := range r.Dealer.Hands[0].Cards {
		if i == 1 {
			masked.Hands[0].Cards = append(masked.Hands[0].Cards, deck.FaceDown)
			continue
		}

		masked.Hands[0].AddCard(card)
	}

	return masked
}

// RoomSummary is the lobby view of a room
type RoomSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Players  int    `json:"players"`
	Capacity int    `json:"capacity"`
}

// Summary returns the lobby view of the room
func (r *Room) Summary() RoomSummary {
	return RoomSummary{
		ID:       r.ID,
		Name:     r.Name,
		Players:  len(r.Players),
		Capacity: NumSeats,
	}
}
