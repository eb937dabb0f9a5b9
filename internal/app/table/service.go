package table

import (
	"context"
	"errors"
	"fmt"

	"blackjack/internal/app"
	"blackjack/internal/domain"
	"blackjack/internal/ports"
)

// Service runs player commands against stored sessions: load, apply one
// turn-controller transition, save, then present the turn.
//
// Commands for the same participant must not overlap; the caller's
// dispatcher is responsible for that.
type Service struct {
	games     *app.Service
	store     ports.SessionStore
	presenter ports.Presenter
	logger    ports.Logger
}

// NewService wires the table. logger may be nil.
func NewService(games *app.Service, store ports.SessionStore, presenter ports.Presenter, logger ports.Logger) *Service {
	if logger == nil {
		logger = nopLogger{}
	}
	return &Service{
		games:     games,
		store:     store,
		presenter: presenter,
		logger:    logger,
	}
}

// Play starts a new game, replacing any game in progress. An unreadable
// stored session is replaced too; its stats are kept.
func (s *Service) Play(ctx context.Context, userID string) (*app.Turn, error) {
	return s.run(ctx, userID, "play", s.games.StartGame)
}

// Hit draws a card for the player.
func (s *Service) Hit(ctx context.Context, userID string) (*app.Turn, error) {
	return s.run(ctx, userID, "hit", s.games.Hit)
}

// Stand ends the player's turn and lets the dealer play out.
func (s *Service) Stand(ctx context.Context, userID string) (*app.Turn, error) {
	return s.run(ctx, userID, "stand", s.games.Stand)
}

// Status returns the participant's current session and, when a game is in
// progress, shows the hands again.
func (s *Service) Status(ctx context.Context, userID string) (*domain.Session, error) {
	session, err := s.Session(ctx, userID)
	if err != nil {
		return nil, err
	}
	if session.Active {
		if err := s.presenter.RenderHands(ctx, userID, session.Dealer, session.Player, true); err != nil {
			s.logger.Warn("status: render hands for user %s failed: %v", userID, err)
		}
		s.emit(ctx, userID, app.PromptHitOrStand)
	}
	return session, nil
}

// Session loads the participant's session, creating the default record on
// first contact.
func (s *Service) Session(ctx context.Context, userID string) (*domain.Session, error) {
	session, _, err := s.load(ctx, userID)
	return session, err
}

func (s *Service) load(ctx context.Context, userID string) (*domain.Session, ports.SessionRecord, error) {
	rec, err := s.store.EnsureDefault(ctx, userID, DefaultRecord())
	if err != nil {
		return nil, rec, err
	}
	session, err := FromRecord(rec)
	if err != nil {
		s.logger.Error("session for user %s is unreadable: %v", userID, err)
		return nil, rec, err
	}
	return session, rec, nil
}

func (s *Service) run(ctx context.Context, userID, command string, transition func(*domain.Session) (*app.Turn, error)) (*app.Turn, error) {
	session, rec, err := s.load(ctx, userID)
	if errors.Is(err, ErrCorruptSession) && command == "play" {
		// A new game only needs the stats; the unreadable game is dropped.
		s.logger.Warn("play for user %s replaces the unreadable session", userID)
		session, err = Baseline(rec), nil
	}
	if err != nil {
		return nil, err
	}

	turn, err := transition(session)
	if errors.Is(err, app.ErrNoActiveGame) {
		s.emit(ctx, userID, guidance(command))
		return nil, err
	}
	if err != nil {
		s.logger.Error("%s for user %s failed: %v", command, userID, err)
		return nil, fmt.Errorf("%s: %w", command, err)
	}

	if err := s.store.Save(ctx, userID, ToRecord(turn.Session)); err != nil {
		return nil, err
	}
	if turn.Outcome.Terminal() {
		s.logger.Info("user %s %s: game ended with %s", userID, command, turn.Outcome)
	} else {
		s.logger.Debug("user %s %s: game %s continues", userID, command, turn.Session.GameID)
	}

	s.present(ctx, userID, turn)
	return turn, nil
}

// present drains the turn's events into the presenter. Delivery failures
// are logged; the turn is already saved.
func (s *Service) present(ctx context.Context, userID string, turn *app.Turn) {
	for ev := range turn.Events() {
		var err error
		switch p := ev.Payload.(type) {
		case app.HandsPayload:
			err = s.presenter.RenderHands(ctx, userID, p.Dealer, p.Player, p.ConcealHole)
		case app.MessagePayload:
			err = s.presenter.EmitMessage(ctx, userID, p.Text)
		case app.GameEndedPayload:
			err = s.presenter.EmitMessage(ctx, userID, p.Message)
		}
		if err != nil {
			s.logger.Warn("present %s to user %s failed: %v", ev.Kind, userID, err)
		}
	}
}

func (s *Service) emit(ctx context.Context, userID, text string) {
	if err := s.presenter.EmitMessage(ctx, userID, text); err != nil {
		s.logger.Warn("emit message to user %s failed: %v", userID, err)
	}
}

func guidance(command string) string {
	if command == "stand" {
		return app.MessageNoGameStand
	}
	return app.MessageNoGameHit
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
