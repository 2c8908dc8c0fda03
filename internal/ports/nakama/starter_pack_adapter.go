package nakama

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Nargog/TheBridgeSystem/internal/convention"
	"github.com/Nargog/TheBridgeSystem/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

const (
	starterPackCollection = "onboarding"
	starterPackMarkerKey  = "starter_pack_v1"
)

// StarterPackAdapter seeds a user's convention tree at most once, using a
// conditional-create marker object: the whole batch is one storage write, and
// the marker's version "*" makes Nakama reject it entirely when the user was
// seeded before.
type StarterPackAdapter struct {
	nk storageAPI
}

// NewStarterPackAdapter creates a new starter pack adapter.
func NewStarterPackAdapter(nk storageAPI) *StarterPackAdapter {
	return &StarterPackAdapter{nk: nk}
}

// SeedOnce writes the starter records for the user. Returns seeded=false
// when the user already received the pack.
func (a *StarterPackAdapter) SeedOnce(ctx context.Context, userID string, records []convention.Record) (bool, error) {
	if userID == "" {
		return false, fmt.Errorf("userID is required")
	}

	marker := map[string]interface{}{
		"node_count": len(records),
		"seeded_at":  time.Now().UTC().Format(time.RFC3339),
	}
	markerValue, err := json.Marshal(marker)
	if err != nil {
		return false, fmt.Errorf("failed to marshal starter pack marker: %w", err)
	}

	writes := make([]*runtime.StorageWrite, 0, len(records)+1)
	writes = append(writes, &runtime.StorageWrite{
		Collection:      starterPackCollection,
		Key:             starterPackMarkerKey,
		UserID:          userID,
		Value:           string(markerValue),
		Version:         "*",
		PermissionRead:  runtime.STORAGE_PERMISSION_NO_READ,
		PermissionWrite: runtime.STORAGE_PERMISSION_NO_WRITE,
	})
	for _, r := range records {
		value, err := json.Marshal(r)
		if err != nil {
			return false, fmt.Errorf("failed to marshal starter record %s: %w", r.ID, err)
		}
		writes = append(writes, &runtime.StorageWrite{
			Collection:      conventionCollection,
			Key:             r.ID,
			UserID:          userID,
			Value:           string(value),
			PermissionRead:  runtime.STORAGE_PERMISSION_OWNER_READ,
			PermissionWrite: runtime.STORAGE_PERMISSION_NO_WRITE,
		})
	}

	if _, err := a.nk.StorageWrite(ctx, writes); err != nil {
		if errors.Is(err, runtime.ErrStorageRejectedVersion) {
			return false, nil
		}
		return false, fmt.Errorf("failed to seed starter pack: %w", err)
	}
	return true, nil
}

var _ ports.StarterPackPort = (*StarterPackAdapter)(nil)
