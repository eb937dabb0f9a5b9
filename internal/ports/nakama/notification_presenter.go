package nakama

import (
	"context"
	"fmt"

	"blackjack/internal/domain"
	"blackjack/internal/ports"
)

const (
	notificationSubjectHands   = "blackjack_hands"
	notificationSubjectMessage = "blackjack_message"
)

// NotificationSender is the subset of runtime.NakamaModule the presenter needs.
type NotificationSender interface {
	NotificationSend(ctx context.Context, userID, subject string, content map[string]interface{}, code int, sender string, persistent bool) error
}

// NakamaPresenter implements ports.Presenter with in-app notifications.
type NakamaPresenter struct {
	nk         NotificationSender
	code       int
	persistent bool
	maxLen     int
}

// NewNakamaPresenter creates a presenter sending notifications tagged with code.
func NewNakamaPresenter(nk NotificationSender, code int, persistent bool, maxLen int) *NakamaPresenter {
	if maxLen <= 0 || maxLen > ports.MaxMessageLength {
		maxLen = ports.MaxMessageLength
	}
	return &NakamaPresenter{nk: nk, code: code, persistent: persistent, maxLen: maxLen}
}

// RenderHands sends both hands, hiding the hole card while concealHole is set.
func (p *NakamaPresenter) RenderHands(ctx context.Context, userID string, dealer, player domain.Hand, concealHole bool) error {
	content, err := handsToStruct(dealer, player, concealHole, p.maxLen)
	if err != nil {
		return fmt.Errorf("failed to build hands notification: %w", err)
	}
	return p.send(ctx, userID, notificationSubjectHands, content.AsMap())
}

// EmitMessage sends text cut to the message limit.
func (p *NakamaPresenter) EmitMessage(ctx context.Context, userID, text string) error {
	content := map[string]interface{}{
		"text": ports.TruncateMessage(text, p.maxLen),
	}
	return p.send(ctx, userID, notificationSubjectMessage, content)
}

func (p *NakamaPresenter) send(ctx context.Context, userID, subject string, content map[string]interface{}) error {
	// An empty sender marks a system notification.
	if err := p.nk.NotificationSend(ctx, userID, subject, content, p.code, "", p.persistent); err != nil {
		return fmt.Errorf("failed to send %s notification: %w", subject, err)
	}
	return nil
}

var _ ports.Presenter = (*NakamaPresenter)(nil)
