package deck

import (
	"errors"

	"blackjack-server/internal/rng"
)

// ErrDeckExhausted is an error when Draw() is attempted and there are no more cards
var ErrDeckExhausted = errors.New("deck is exhausted")

// DeckSize is the number of cards in a single 52-card deck
const DeckSize = 52

// Deck represents a shoe of one or more 52-card decks
type Deck struct {
	Cards []*Card `json:"cards"`

	shoeSize int
	random   rng.Generator
}

// New returns a new shoe built from shoeSize 52-card decks.
// Important! the shoe is unshuffled. You must call the Shuffle() method to shuffle the cards
func New(shoeSize int) *Deck {
	if shoeSize < 1 {
		shoeSize = 1
	}

	d := &Deck{
		shoeSize: shoeSize,
		random:   rng.Crypto{},
	}

	d.buildDeck()
	return d
}

// SetRandom replaces the random source.
// This should only be used by tests to obtain a deterministic shuffle.
func (d *Deck) SetRandom(random rng.Generator) {
	d.random = random
}

func (d *Deck) buildDeck() {
	cards := make([]*Card, 0, d.shoeSize*DeckSize)
	for i := 0; i < d.shoeSize; i++ {
		for _, suit := range []Suit{Clubs, Diamonds, Hearts, Spades} {
			for rank := 2; rank <= Ace; rank++ {
				cards = append(cards, &Card{
					Rank: rank,
					Suit: suit,
				})
			}
		}
	}

	d.Cards = cards
}

// Shuffle will shuffle the cards currently in the shoe.
// The swap index is drawn from [0, j] so every permutation is equally likely.
func (d *Deck) Shuffle() {
	for j := len(d.Cards) - 1; j > 0; j-- {
		i := d.random.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// Rebuild replaces the remaining cards with a fresh, shuffled shoe
func (d *Deck) Rebuild() {
	d.buildDeck()
	d.Shuffle()
}

// Draw will remove and return the top card of the shoe
// If there are no more cards, an ErrDeckExhausted is returned along with a nil card.
func (d *Deck) Draw() (*Card, error) {
	n := len(d.Cards)
	if n == 0 {
		return nil, ErrDeckExhausted
	}

	card := d.Cards[n-1]
	d.Cards = d.Cards[:n-1]

	return card, nil
}

// CanDraw returns true if there are {want} cards left in the shoe
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the shoe
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}
