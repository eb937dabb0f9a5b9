package table

import (
	"errors"
	"reflect"
	"testing"

	"blackjack/internal/domain"
	"blackjack/internal/ports"
)

func TestDefaultRecord(t *testing.T) {
	rec := DefaultRecord()
	if rec.IsPlaying || len(rec.PlayerCards) != 0 || len(rec.DealerCards) != 0 {
		t.Fatalf("default record should be idle with empty hands: %+v", rec)
	}
	if len(rec.Deck) != 52 {
		t.Fatalf("default deck size = %d, want 52", len(rec.Deck))
	}
}

// activeRecord builds a player-turn record whose deck holds every card not
// dealt. Legacy "10X" codes are accepted in the hands.
func activeRecord(t *testing.T, player, dealer []string) ports.SessionRecord {
	t.Helper()
	deck := domain.NewDeck()
	for _, code := range append(append([]string{}, player...), dealer...) {
		c, err := domain.ParseCard(code)
		if err != nil {
			t.Fatalf("ParseCard(%q) error: %v", code, err)
		}
		if deck, err = deck.Remove(c); err != nil {
			t.Fatalf("Remove error: %v", err)
		}
	}
	return ports.SessionRecord{
		IsPlaying:   true,
		GameID:      "g1",
		PlayerCards: player,
		DealerCards: dealer,
		Deck:        domain.CardCodes(deck),
	}
}

func TestRecordRoundTrip(t *testing.T) {
	s := domain.NewSession()
	s.Active = true
	s.GameID = "g1"
	s.Stats = domain.Stats{Wins: 1, Losses: 2, Ties: 3}
	s.Player = domain.Hand{s.Deck[0], s.Deck[9]}
	s.Dealer = domain.Hand{s.Deck[12], s.Deck[11]}
	for _, c := range append(s.Player.Clone(), s.Dealer...) {
		var err error
		if s.Deck, err = s.Deck.Remove(c); err != nil {
			t.Fatalf("Remove error: %v", err)
		}
	}

	got, err := FromRecord(ToRecord(s))
	if err != nil {
		t.Fatalf("FromRecord error: %v", err)
	}
	if !reflect.DeepEqual(got, s) {
		t.Fatalf("round trip = %+v, want %+v", got, s)
	}
}

func TestFromRecordLegacyCodes(t *testing.T) {
	rec := activeRecord(t, []string{"10H", "9C"}, []string{"AS", "KD"})
	s, err := FromRecord(rec)
	if err != nil {
		t.Fatalf("FromRecord error: %v", err)
	}
	if s.Player.Score() != 19 {
		t.Fatalf("player score = %d, want 19", s.Player.Score())
	}
	if got := ToRecord(s).PlayerCards[0]; got != "TH" {
		t.Fatalf("re-encoded ten = %q, want TH", got)
	}
}

func TestFromRecordIdleIgnoresCards(t *testing.T) {
	// Records written by the chat bot were created with an empty deck.
	s, err := FromRecord(ports.SessionRecord{Deck: []string{}, Stats: ports.SessionStats{Wins: 2}})
	if err != nil {
		t.Fatalf("FromRecord error: %v", err)
	}
	if s.Active || len(s.Deck) != 52 || s.Stats.Wins != 2 {
		t.Fatalf("idle record should decode to baseline: %+v", s)
	}
}

func TestFromRecordRejectsCorruption(t *testing.T) {
	tests := []struct {
		name string
		rec  ports.SessionRecord
	}{
		{name: "bad player code", rec: ports.SessionRecord{IsPlaying: true, PlayerCards: []string{"1X"}}},
		{name: "bad dealer code", rec: ports.SessionRecord{IsPlaying: true, DealerCards: []string{"ZZ"}}},
		{name: "bad deck code", rec: ports.SessionRecord{IsPlaying: true, Deck: []string{""}}},
		{name: "duplicate card", rec: ports.SessionRecord{IsPlaying: true, PlayerCards: []string{"AS"}, Deck: []string{"AS"}}},
		{name: "empty hands", rec: activeRecord(t, nil, nil)},
		{name: "one-card dealer hand", rec: activeRecord(t, []string{"9C", "7D"}, []string{"KS"})},
		{name: "cards missing from deck", rec: func() ports.SessionRecord {
			r := activeRecord(t, []string{"9C", "7D"}, []string{"KS", "AH"})
			r.Deck = r.Deck[1:]
			return r
		}()},
		{name: "duplicate within full count", rec: func() ports.SessionRecord {
			r := activeRecord(t, []string{"9C", "7D"}, []string{"KS", "AH"})
			r.Deck[0] = "9C"
			return r
		}()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromRecord(tt.rec); !errors.Is(err, ErrCorruptSession) {
				t.Fatalf("FromRecord error = %v, want ErrCorruptSession", err)
			}
		})
	}
}
