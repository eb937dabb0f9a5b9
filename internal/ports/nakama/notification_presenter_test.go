package nakama

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"blackjack/internal/domain"
)

func mustHand(t *testing.T, codes ...string) domain.Hand {
	t.Helper()
	cards, err := domain.ParseCards(codes)
	if err != nil {
		t.Fatalf("ParseCards(%v) error: %v", codes, err)
	}
	return domain.Hand(cards)
}

func TestPresenterRenderHandsConcealsHoleCard(t *testing.T) {
	nk := newFakeNakama()
	p := NewNakamaPresenter(nk, 2100, true, 256)

	dealer := mustHand(t, "KS", "AH")
	player := mustHand(t, "9C", "7D")
	if err := p.RenderHands(context.Background(), "user-1", dealer, player, true); err != nil {
		t.Fatalf("RenderHands error: %v", err)
	}

	if len(nk.notifications) != 1 {
		t.Fatalf("notifications = %d, want 1", len(nk.notifications))
	}
	n := nk.notifications[0]
	if n.subject != notificationSubjectHands || n.code != 2100 || !n.persistent {
		t.Fatalf("unexpected notification %+v", n)
	}

	d := n.content["dealer"].(map[string]interface{})
	if d["concealed"] != true {
		t.Fatalf("dealer concealed = %v, want true", d["concealed"])
	}
	// Only the up-card counts while the hole card is hidden.
	if d["score"].(float64) != 10 {
		t.Fatalf("dealer score = %v, want 10", d["score"])
	}
	cards := d["cards"].([]interface{})
	if len(cards) != 2 || cards[0] != "KS" || cards[1] != hiddenCardCode {
		t.Fatalf("dealer cards = %v", cards)
	}
	text := n.content["text"].(string)
	if strings.Contains(text, "AH") {
		t.Fatalf("hole card leaked in text %q", text)
	}

	pl := n.content["player"].(map[string]interface{})
	if pl["score"].(float64) != 16 {
		t.Fatalf("player score = %v, want 16", pl["score"])
	}
}

func TestPresenterRenderHandsRevealed(t *testing.T) {
	nk := newFakeNakama()
	p := NewNakamaPresenter(nk, 2100, false, 256)

	if err := p.RenderHands(context.Background(), "user-1", mustHand(t, "KS", "AH"), mustHand(t, "9C"), false); err != nil {
		t.Fatalf("RenderHands error: %v", err)
	}
	d := nk.notifications[0].content["dealer"].(map[string]interface{})
	if d["concealed"] != false || d["score"].(float64) != 21 {
		t.Fatalf("dealer = %v, want revealed 21", d)
	}
}

func TestPresenterEmitMessageTruncates(t *testing.T) {
	nk := newFakeNakama()
	p := NewNakamaPresenter(nk, 2100, false, 1000)

	if err := p.EmitMessage(context.Background(), "user-1", strings.Repeat("é", 300)); err != nil {
		t.Fatalf("EmitMessage error: %v", err)
	}
	text := nk.messages()[0]
	if n := utf8.RuneCountInString(text); n != 256 {
		t.Fatalf("message length = %d, want 256", n)
	}
}

func TestPresenterSendFailure(t *testing.T) {
	nk := newFakeNakama()
	nk.notifyErr = errBackend
	p := NewNakamaPresenter(nk, 2100, false, 256)

	if err := p.EmitMessage(context.Background(), "user-1", "hi"); err == nil {
		t.Fatal("expected error when notification fails")
	}
}
