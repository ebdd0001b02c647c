package blackjack

// Outcome is the result of a player's hand against the dealer
type Outcome string

// outcome constants
const (
	OutcomeBust Outcome = "bust"
	OutcomeWin  Outcome = "win"
	OutcomePush Outcome = "push"
	OutcomeLose Outcome = "lose"
)

// Settle computes the outcome of a player hand against a completed dealer
// hand. The player busting loses regardless of what the dealer did.
func Settle(playerTotal, dealerTotal int) Outcome {
	switch {
	case playerTotal > 21:
		return OutcomeBust
	case dealerTotal > 21 || dealerTotal < playerTotal:
		return OutcomeWin
	case dealerTotal == playerTotal:
		return OutcomePush
	default:
		return OutcomeLose
	}
}

// Payout returns the amount credited back for a bet with this outcome.
// A win pays even money (the bet back plus the same again), a push refunds
// the bet, and a bust or loss forfeits it.
func (o Outcome) Payout(bet int) int {
	switch o {
	case OutcomeWin:
		return bet * 2
	case OutcomePush:
		return bet
	default:
		return 0
	}
}
