package ports

import (
	"context"
	"unicode/utf8"

	"blackjack/internal/domain"
)

// MaxMessageLength is the hard limit of the messaging surface, in characters.
const MaxMessageLength = 256

// Presenter shows game progress to a participant.
type Presenter interface {
	// RenderHands renders both hands and delivers the result. While
	// concealHole is set the dealer's second card is hidden.
	RenderHands(ctx context.Context, userID string, dealer, player domain.Hand, concealHole bool) error

	// EmitMessage sends a text message of at most MaxMessageLength characters.
	EmitMessage(ctx context.Context, userID, text string) error
}

// TruncateMessage cuts text to at most max characters.
func TruncateMessage(text string, max int) string {
	if max <= 0 || utf8.RuneCountInString(text) <= max {
		return text
	}
	runes := []rune(text)
	return string(runes[:max])
}

// VisibleDealer returns the part of the dealer hand the player may see and
// its score.
func VisibleDealer(dealer domain.Hand, concealHole bool) (domain.Hand, int) {
	if concealHole && len(dealer) > 1 {
		shown := dealer[:1:1]
		return shown, shown.Score()
	}
	return dealer, dealer.Score()
}
