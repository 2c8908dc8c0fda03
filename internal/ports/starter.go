package ports

import (
	"context"

	"github.com/Nargog/TheBridgeSystem/internal/convention"
)

// StarterPackPort seeds a new user's convention tree at most once.
type StarterPackPort interface {
	// SeedOnce attempts to write the starter records for the user.
	// Returns seeded=false when the user already received the pack.
	SeedOnce(ctx context.Context, userID string, records []convention.Record) (bool, error)
}
