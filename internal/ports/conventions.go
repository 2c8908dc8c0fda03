package ports

import (
	"context"

	"github.com/Nargog/TheBridgeSystem/internal/convention"
)

// ConventionStore defines the interface for durable per-user convention
// records. Records survive restarts; insertion order is preserved through
// the Order field of each record.
type ConventionStore interface {
	// List retrieves every stored convention record owned by the user.
	List(ctx context.Context, userID string) ([]convention.Record, error)

	// Put writes the given records, creating or replacing each by id.
	Put(ctx context.Context, userID string, records []convention.Record) error

	// Delete removes the records with the given ids in a single operation.
	// Callers pass a whole subtree at once so no partial cascade is ever
	// visible.
	Delete(ctx context.Context, userID string, ids []string) error
}
