package onboarding

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"blackjack/internal/app/table"
	"blackjack/internal/ports"
)

// Result captures non-fatal onboarding outcomes.
type Result struct {
	// DisplayName is the generated name applied to the account.
	DisplayName string
	// ProfileUpdateErr is set when the profile update failed but onboarding continued.
	ProfileUpdateErr error
	// Session is the participant's stored record after onboarding.
	Session ports.SessionRecord
}

// Service handles post-auth onboarding for new users.
type Service struct {
	accounts ports.AccountPort
	sessions ports.SessionStore
	rng      *rand.Rand
}

// NewService constructs an onboarding service with required ports.
// accounts/sessions must be non-nil; rng may be nil to use a time-seeded default.
func NewService(accounts ports.AccountPort, sessions ports.SessionStore, rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{
		accounts: accounts,
		sessions: sessions,
		rng:      rng,
	}
}

// OnboardNewUser names a newly created account and seats it at the table
// with an idle session.
// Returns a Result with any non-fatal issues and an error if the session cannot be stored.
func (s *Service) OnboardNewUser(ctx context.Context, userID string) (Result, error) {
	if s.accounts == nil || s.sessions == nil {
		return Result{}, fmt.Errorf("onboarding service not configured")
	}

	result := Result{DisplayName: s.generateFriendlyName()}
	if err := s.accounts.UpdateProfile(ctx, userID, result.DisplayName, result.DisplayName); err != nil {
		// Profile updates are best-effort; the session record is what commands need.
		result.ProfileUpdateErr = err
	}

	rec, err := s.sessions.EnsureDefault(ctx, userID, table.DefaultRecord())
	if err != nil {
		return result, fmt.Errorf("failed to create session: %w", err)
	}
	result.Session = rec

	return result, nil
}

func (s *Service) generateFriendlyName() string {
	adjectives := []string{"Lucky", "Bold", "Steady", "Clever", "Swift", "Calm", "Sharp", "Witty", "Sly", "Cool"}
	nouns := []string{"Ace", "King", "Queen", "Jack", "Dealer", "Shark", "Gambler", "Card", "Chip", "Shuffler"}

	adj := adjectives[s.rng.Intn(len(adjectives))]
	noun := nouns[s.rng.Intn(len(nouns))]
	num := s.rng.Intn(9000) + 1000

	return fmt.Sprintf("%s%s%d", adj, noun, num)
}
