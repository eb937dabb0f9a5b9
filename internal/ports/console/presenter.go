package console

import (
	"context"
	"fmt"
	"io"
	"strings"

	"blackjack/internal/domain"
	"blackjack/internal/ports"

	"github.com/pterm/pterm"
)

const hiddenCard = "??"

// Presenter implements ports.Presenter on a terminal. The console has a
// single participant, so userID is ignored.
type Presenter struct {
	out    io.Writer
	maxLen int
}

// NewPresenter writes to out, cutting messages to maxLen characters.
func NewPresenter(out io.Writer, maxLen int) *Presenter {
	if maxLen <= 0 || maxLen > ports.MaxMessageLength {
		maxLen = ports.MaxMessageLength
	}
	return &Presenter{out: out, maxLen: maxLen}
}

// RenderHands prints the dealer and player hands side by side.
func (p *Presenter) RenderHands(ctx context.Context, userID string, dealer, player domain.Hand, concealHole bool) error {
	shown, dealerScore := ports.VisibleDealer(dealer, concealHole)
	dealerCards := styleCards(shown)
	if len(shown) < len(dealer) {
		dealerCards = append(dealerCards, pterm.Gray(hiddenCard))
	}

	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	dealerBox := pbox.WithTitle(pterm.LightYellow("|DEALER|")).WithTitleTopCenter().
		Sprintf("%s\nScore: %d", strings.Join(dealerCards, " "), dealerScore)
	playerBox := pbox.WithTitle(pterm.LightCyan("|YOU|")).WithTitleTopCenter().
		Sprintf("%s\nScore: %d", strings.Join(styleCards(player), " "), player.Score())

	rendered, err := pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		{{Data: dealerBox}, {Data: playerBox}},
	}).Srender()
	if err != nil {
		return fmt.Errorf("render hands: %w", err)
	}
	_, err = fmt.Fprintln(p.out, rendered)
	return err
}

// EmitMessage prints text cut to the message limit.
func (p *Presenter) EmitMessage(ctx context.Context, userID, text string) error {
	_, err := fmt.Fprint(p.out, pterm.Info.Sprintln(ports.TruncateMessage(text, p.maxLen)))
	return err
}

func styleCards(hand domain.Hand) []string {
	out := make([]string, 0, len(hand))
	for _, c := range hand {
		if c.Suit == domain.Hearts || c.Suit == domain.Diamonds {
			out = append(out, pterm.LightRed(c.Code()))
		} else {
			out = append(out, pterm.LightWhite(c.Code()))
		}
	}
	return out
}

var _ ports.Presenter = (*Presenter)(nil)
