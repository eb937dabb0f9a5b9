package app

import "blackjack/internal/domain"

// Outcome is the terminal result of a game. OutcomeNone means the game goes on.
type Outcome string

const (
	OutcomeNone               Outcome = ""
	OutcomePlayerBlackjackWin Outcome = "player_blackjack_win"
	OutcomePlayerBustLoss     Outcome = "player_bust_loss"
	OutcomeDealerBlackjackWin Outcome = "dealer_blackjack_win"
	OutcomeDealerBustWin      Outcome = "dealer_bust_player_win"
	OutcomeTie                Outcome = "tie"
	OutcomeDealerWin          Outcome = "dealer_win"
)

// Terminal reports whether the outcome ends the game.
func (o Outcome) Terminal() bool {
	return o != OutcomeNone
}

// PlayerWon reports whether the outcome is a player win.
func (o Outcome) PlayerWon() bool {
	return o == OutcomePlayerBlackjackWin || o == OutcomeDealerBustWin
}

// Message is the announcement shown to the player.
func (o Outcome) Message() string {
	switch o {
	case OutcomePlayerBlackjackWin:
		return "You Hit A Blackjack! You Win!"
	case OutcomePlayerBustLoss:
		return "Oh No! You Busted...You Lose"
	case OutcomeDealerBlackjackWin:
		return "Dealer Hit A Blackjack! Dealer Wins!"
	case OutcomeDealerBustWin:
		return "Dealer Busted! You Win!"
	case OutcomeTie:
		return "Tie Game!"
	case OutcomeDealerWin:
		return "Dealer Has A Higher Score. Dealer Wins!"
	default:
		return ""
	}
}

// record adds the outcome to the tally.
func (o Outcome) record(stats *domain.Stats) {
	switch {
	case !o.Terminal():
	case o.PlayerWon():
		stats.Wins++
	case o == OutcomeTie:
		stats.Ties++
	default:
		stats.Losses++
	}
}

// resolveStand decides a game after the dealer has finished drawing.
// Checks run in priority order.
func resolveStand(player, dealer int) Outcome {
	switch {
	case dealer == domain.Blackjack:
		return OutcomeDealerBlackjackWin
	case dealer > domain.Blackjack:
		return OutcomeDealerBustWin
	case dealer == player:
		return OutcomeTie
	default:
		return OutcomeDealerWin
	}
}
