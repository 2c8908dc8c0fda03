package onboarding

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/Nargog/TheBridgeSystem/internal/convention"
	"github.com/Nargog/TheBridgeSystem/internal/ports"
)

// Result captures non-fatal onboarding outcomes.
type Result struct {
	// ProfileUpdateErr is set when the profile update failed but onboarding continued.
	ProfileUpdateErr error
	// StarterPackSeeded is false when the user already received the pack.
	StarterPackSeeded bool
}

// Service handles post-auth onboarding for new users: a friendly display
// name and a one-time starter convention pack.
type Service struct {
	accounts ports.AccountPort
	starter  ports.StarterPackPort
	records  []convention.Record
	rng      *rand.Rand
}

// NewService constructs an onboarding service with required ports.
// accounts/starter must be non-nil; records is the starter pack to seed
// (may be empty); rng may be nil to use a time-seeded default.
func NewService(accounts ports.AccountPort, starter ports.StarterPackPort, records []convention.Record, rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{
		accounts: accounts,
		starter:  starter,
		records:  records,
		rng:      rng,
	}
}

// OnboardNewUser initializes profile and convention tree for a newly created
// account. Profile updates are best-effort; a starter pack failure is
// returned as the error.
func (s *Service) OnboardNewUser(ctx context.Context, userID string) (Result, error) {
	if s.accounts == nil || s.starter == nil {
		return Result{}, fmt.Errorf("onboarding service not configured")
	}

	result := Result{}
	displayName := s.generateFriendlyName()
	if err := s.accounts.UpdateProfile(ctx, userID, displayName, displayName); err != nil {
		// The starter pack matters more than the display name.
		result.ProfileUpdateErr = err
	}

	seeded, err := s.starter.SeedOnce(ctx, userID, s.records)
	if err != nil {
		return result, fmt.Errorf("failed to seed starter conventions: %w", err)
	}
	result.StarterPackSeeded = seeded

	return result, nil
}

func (s *Service) generateFriendlyName() string {
	adjectives := []string{"Bold", "Quiet", "Lucky", "Clever", "Swift", "Calm", "Daring", "Witty", "Sly", "Steady"}
	nouns := []string{"Declarer", "Finesse", "Gambit", "Overcall", "Preempt", "Squeeze", "Cuebid", "Ruff", "Tenace", "Slam"}

	adj := adjectives[s.rng.Intn(len(adjectives))]
	noun := nouns[s.rng.Intn(len(nouns))]
	num := s.rng.Intn(9000) + 1000

	return fmt.Sprintf("%s%s%d", adj, noun, num)
}
