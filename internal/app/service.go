package app

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"blackjack/internal/domain"

	"github.com/google/uuid"
)

// ErrNoActiveGame is returned by Hit and Stand when no game is in progress.
var ErrNoActiveGame = errors.New("no active game")

// Service is the Blackjack turn controller. Every transition takes a session
// and returns a new one; the input is never modified.
//
// Callers must serialize transitions per participant.
type Service struct {
	rng       domain.Rand
	newGameID func() string
}

// NewService constructs a Service with provided rng or a time-seeded default.
func NewService(rng domain.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{rng: rng, newGameID: uuid.NewString}
}

// StartGame deals a new game, silently replacing any game in progress.
// A natural 21 for the player wins at once and leaves the session idle.
func (s *Service) StartGame(session *domain.Session) (*Turn, error) {
	next := domain.NewSession()
	if session != nil {
		next.Stats = session.Stats
	}
	next.GameID = s.newGameID()
	next.Active = true

	player, dealer, deck := domain.Hand{}, domain.Hand{}, next.Deck
	var err error
	for i := 0; i < InitialDealRounds; i++ {
		if player, deck, err = player.Draw(deck, s.rng); err != nil {
			return nil, fmt.Errorf("deal player: %w", err)
		}
		if dealer, deck, err = dealer.Draw(deck, s.rng); err != nil {
			return nil, fmt.Errorf("deal dealer: %w", err)
		}
	}
	next.Player, next.Dealer, next.Deck = player, dealer, deck

	gameID := next.GameID
	outcome := OutcomeNone
	if player.Score() == domain.Blackjack {
		outcome = OutcomePlayerBlackjackWin
		finish(next, outcome)
	}

	turn := &Turn{Session: next, Outcome: outcome, GameID: gameID, Player: player, Dealer: dealer, ConcealHole: true}
	turn.events = func(yield func(Event) bool) {
		if !yield(handsEvent(EventHandsShown, dealer, player, true)) {
			return
		}
		yield(closingEvent(outcome))
	}
	return turn, nil
}

// Hit draws one card for the player. Reaching 21 wins, passing it loses; both
// end the game.
func (s *Service) Hit(session *domain.Session) (*Turn, error) {
	if session == nil || session.Phase() != domain.PhasePlayerTurn {
		return nil, ErrNoActiveGame
	}

	next := session.Clone()
	player, deck, err := next.Player.Draw(next.Deck, s.rng)
	if err != nil {
		return nil, fmt.Errorf("player draw: %w", err)
	}
	next.Player, next.Deck = player, deck
	dealer := next.Dealer

	outcome := OutcomeNone
	switch score := player.Score(); {
	case score == domain.Blackjack:
		outcome = OutcomePlayerBlackjackWin
	case score > domain.Blackjack:
		outcome = OutcomePlayerBustLoss
	}
	if outcome.Terminal() {
		finish(next, outcome)
	}

	turn := &Turn{Session: next, Outcome: outcome, GameID: session.GameID, Player: player, Dealer: dealer, ConcealHole: true}
	turn.events = func(yield func(Event) bool) {
		if !yield(handsEvent(EventHandsShown, dealer, player, true)) {
			return
		}
		yield(closingEvent(outcome))
	}
	return turn, nil
}

// Stand ends the player's turn. The hole card is revealed and the dealer
// draws while under 21 and behind the player, stopping as soon as it ties or
// leads. The game always ends.
func (s *Service) Stand(session *domain.Session) (*Turn, error) {
	if session == nil || session.Phase() != domain.PhasePlayerTurn {
		return nil, ErrNoActiveGame
	}

	next := session.Clone()
	player := next.Player
	playerScore := player.Score()

	dealer, deck := next.Dealer, next.Deck
	revealed := len(dealer)
	for dealer.Score() < domain.Blackjack && dealer.Score() < playerScore {
		var err error
		if dealer, deck, err = dealer.Draw(deck, s.rng); err != nil {
			return nil, fmt.Errorf("dealer draw: %w", err)
		}
	}

	outcome := resolveStand(playerScore, dealer.Score())
	finish(next, outcome)

	turn := &Turn{Session: next, Outcome: outcome, GameID: session.GameID, Player: player, Dealer: dealer}
	turn.events = func(yield func(Event) bool) {
		if !yield(messageEvent(EventDealerRevealing, MessageDealerReveal)) {
			return
		}
		if !yield(handsEvent(EventHandsShown, dealer[:revealed], player, false)) {
			return
		}
		for n := revealed + 1; n <= len(dealer); n++ {
			if !yield(handsEvent(EventDealerDrew, dealer[:n], player, false)) {
				return
			}
		}
		yield(endedEvent(outcome))
	}
	return turn, nil
}

func finish(session *domain.Session, outcome Outcome) {
	outcome.record(&session.Stats)
	session.Reset()
}
