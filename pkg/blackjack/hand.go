package blackjack

import "blackjack-server/pkg/deck"

// Hand is an ordered set of cards with a derived blackjack total.
// The total is recomputed from scratch on every append; hands are small
// enough that incremental bookkeeping isn't worth it.
type Hand struct {
	Cards []*deck.Card `json:"cards"`
	Total int          `json:"total"`
}

// NewHand returns a new, empty hand
func NewHand() *Hand {
	return &Hand{Cards: []*deck.Card{}}
}

// AddCard appends a card to the hand and recomputes the total
func (h *Hand) AddCard(card *deck.Card) {
	h.Cards = append(h.Cards, card)
	h.Total = Evaluate(h.Cards)
}

// Evaluate computes the blackjack total for the cards.
// Aces are deferred and then counted as 11 while doing so keeps the running
// total at or below 21, otherwise as 1. The result is independent of the
// order the aces are processed in.
func Evaluate(cards []*deck.Card) int {
	total := 0
	aces := 0

	for _, card := range cards {
		switch {
		case card.Rank == deck.Ace:
			aces++
		case card.Rank >= 10:
			total += 10
		default:
			total += card.Rank
		}
	}

	for i := 0; i < aces; i++ {
		if total+11 <= 21 {
			total += 11
		} else {
			total++
		}
	}

	return total
}
