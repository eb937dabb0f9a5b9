package table

import (
	"errors"
	"fmt"

	"blackjack/internal/app"
	"blackjack/internal/domain"
	"blackjack/internal/ports"
)

// ErrCorruptSession is returned when a stored record cannot be turned back
// into a valid session.
var ErrCorruptSession = errors.New("corrupt session record")

// DefaultRecord is the record stored on a participant's first contact: idle,
// empty hands, full deck.
func DefaultRecord() ports.SessionRecord {
	return ToRecord(domain.NewSession())
}

// ToRecord encodes a session for the store.
func ToRecord(s *domain.Session) ports.SessionRecord {
	return ports.SessionRecord{
		IsPlaying:   s.Active,
		GameID:      s.GameID,
		PlayerCards: s.Player.Codes(),
		DealerCards: s.Dealer.Codes(),
		Deck:        domain.CardCodes(s.Deck),
		Stats: ports.SessionStats{
			Wins:   s.Stats.Wins,
			Losses: s.Stats.Losses,
			Ties:   s.Stats.Ties,
		},
	}
}

// minDealtCards is the size of each hand after the deal.
const minDealtCards = app.InitialDealRounds

// Baseline returns the idle session carrying the record's stats.
func Baseline(r ports.SessionRecord) *domain.Session {
	s := domain.NewSession()
	s.Stats = domain.Stats{Wins: r.Stats.Wins, Losses: r.Stats.Losses, Ties: r.Stats.Ties}
	return s
}

// FromRecord decodes a stored record. Idle records decode to the idle
// baseline whatever their card lists hold. Active records must have valid
// codes, at least the dealt cards in each hand, and hands plus deck must
// hold every card of the deck exactly once.
func FromRecord(r ports.SessionRecord) (*domain.Session, error) {
	s := Baseline(r)
	if !r.IsPlaying {
		return s, nil
	}

	player, err := domain.ParseCards(r.PlayerCards)
	if err != nil {
		return nil, fmt.Errorf("%w: player cards: %w", ErrCorruptSession, err)
	}
	dealer, err := domain.ParseCards(r.DealerCards)
	if err != nil {
		return nil, fmt.Errorf("%w: dealer cards: %w", ErrCorruptSession, err)
	}
	deck, err := domain.ParseCards(r.Deck)
	if err != nil {
		return nil, fmt.Errorf("%w: deck: %w", ErrCorruptSession, err)
	}

	if len(player) < minDealtCards || len(dealer) < minDealtCards {
		return nil, fmt.Errorf("%w: hands of %d and %d cards", ErrCorruptSession, len(player), len(dealer))
	}
	if total := len(player) + len(dealer) + len(deck); total != len(domain.NewDeck()) {
		return nil, fmt.Errorf("%w: %d cards in play", ErrCorruptSession, total)
	}

	seen := make(map[domain.Card]bool, len(player)+len(dealer)+len(deck))
	for _, group := range [][]domain.Card{player, dealer, deck} {
		for _, c := range group {
			if seen[c] {
				return nil, fmt.Errorf("%w: duplicate card %s", ErrCorruptSession, c.Code())
			}
			seen[c] = true
		}
	}

	s.Active = true
	s.GameID = r.GameID
	s.Player = domain.Hand(player)
	s.Dealer = domain.Hand(dealer)
	s.Deck = domain.Deck(deck)
	return s, nil
}
