package domain

// Phase represents where a participant's game stands.
type Phase string

const (
	// PhaseIdle means no game is in progress.
	PhaseIdle Phase = "idle"
	// PhasePlayerTurn means cards are dealt and the player may hit or stand.
	PhasePlayerTurn Phase = "player_turn"
)

// Stats is the participant's running tally across games.
type Stats struct {
	Wins   int
	Losses int
	Ties   int
}

// Session is one participant's game snapshot. The store owns it durably;
// callers work on copies.
type Session struct {
	GameID string
	Player Hand
	Dealer Hand
	Deck   Deck
	Active bool
	Stats  Stats
}

// NewSession returns the idle baseline: empty hands and a full deck.
func NewSession() *Session {
	return &Session{
		Player: Hand{},
		Dealer: Hand{},
		Deck:   NewDeck(),
	}
}

// Phase derives the lifecycle phase from the active flag. The dealer plays
// out inside a single Stand, so a session is only ever idle or in the
// player's turn.
func (s *Session) Phase() Phase {
	if s.Active {
		return PhasePlayerTurn
	}
	return PhaseIdle
}

// Reset returns the session to the idle baseline while keeping stats.
func (s *Session) Reset() {
	stats := s.Stats
	*s = *NewSession()
	s.Stats = stats
}

// Clone returns a deep copy.
func (s *Session) Clone() *Session {
	out := *s
	out.Player = s.Player.Clone()
	out.Dealer = s.Dealer.Clone()
	out.Deck = append(Deck(nil), s.Deck...)
	return &out
}
