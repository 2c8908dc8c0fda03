package nakama

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Nargog/TheBridgeSystem/internal/convention"
	"github.com/Nargog/TheBridgeSystem/internal/ports"

	"github.com/heroiclabs/nakama-common/api"
	"github.com/heroiclabs/nakama-common/runtime"
)

const (
	conventionCollection = "conventions"
	storageListPageSize  = 100
)

// storageAPI is the narrow slice of runtime.NakamaModule the storage
// adapters need, so tests can fake it.
type storageAPI interface {
	StorageList(ctx context.Context, callerID, userID, collection string, limit int, cursor string) ([]*api.StorageObject, string, error)
	StorageWrite(ctx context.Context, writes []*runtime.StorageWrite) ([]*api.StorageObjectAck, error)
	StorageDelete(ctx context.Context, deletes []*runtime.StorageDelete) error
}

// ConventionStorageAdapter implements ports.ConventionStore over the Nakama
// storage engine: one object per node, keyed by node id, owned by the user.
type ConventionStorageAdapter struct {
	nk storageAPI
}

// NewConventionStorageAdapter creates a new convention storage adapter.
func NewConventionStorageAdapter(nk storageAPI) *ConventionStorageAdapter {
	return &ConventionStorageAdapter{nk: nk}
}

// List retrieves every stored convention record owned by the user, paging
// through the collection until the cursor runs out.
func (a *ConventionStorageAdapter) List(ctx context.Context, userID string) ([]convention.Record, error) {
	var records []convention.Record
	cursor := ""
	for {
		objects, next, err := a.nk.StorageList(ctx, "", userID, conventionCollection, storageListPageSize, cursor)
		if err != nil {
			return nil, fmt.Errorf("failed to list convention objects: %w", err)
		}
		for _, obj := range objects {
			var r convention.Record
			if err := json.Unmarshal([]byte(obj.GetValue()), &r); err != nil {
				return nil, fmt.Errorf("corrupt convention object %s: %w", obj.GetKey(), err)
			}
			records = append(records, r)
		}
		if next == "" {
			break
		}
		cursor = next
	}
	return records, nil
}

// Put writes the given records, creating or replacing each by id.
func (a *ConventionStorageAdapter) Put(ctx context.Context, userID string, records []convention.Record) error {
	if len(records) == 0 {
		return nil
	}
	writes := make([]*runtime.StorageWrite, 0, len(records))
	for _, r := range records {
		value, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("failed to marshal convention record %s: %w", r.ID, err)
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
		return fmt.Errorf("failed to write convention records: %w", err)
	}
	return nil
}

// Delete removes the records with the given ids in one batched call, so a
// subtree cascade is never partially visible.
func (a *ConventionStorageAdapter) Delete(ctx context.Context, userID string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	deletes := make([]*runtime.StorageDelete, 0, len(ids))
	for _, id := range ids {
		deletes = append(deletes, &runtime.StorageDelete{
			Collection: conventionCollection,
			Key:        id,
			UserID:     userID,
		})
	}
	if err := a.nk.StorageDelete(ctx, deletes); err != nil {
		return fmt.Errorf("failed to delete convention records: %w", err)
	}
	return nil
}

var _ ports.ConventionStore = (*ConventionStorageAdapter)(nil)
