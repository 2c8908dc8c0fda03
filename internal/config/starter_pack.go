package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/Nargog/TheBridgeSystem/internal/convention"
)

// StarterEntry is one line of the starter pack data file: a call path, its
// meaning, and an optional structured definition.
type StarterEntry struct {
	Path    []string               `json:"path"`
	Meaning string                 `json:"meaning"`
	Def     *convention.Definition `json:"definition,omitempty"`
}

var (
	starterEntries []StarterEntry
	starterOnce    sync.Once
	starterErr     error
)

// LoadStarterPack loads the starter convention entries from the given path.
// The file is read once per process; later calls return the first result.
func LoadStarterPack(path string) ([]StarterEntry, error) {
	starterOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			starterErr = fmt.Errorf("failed to read starter pack: %w", err)
			return
		}
		if err := json.Unmarshal(data, &starterEntries); err != nil {
			starterErr = fmt.Errorf("failed to unmarshal starter pack: %w", err)
			return
		}
	})
	return starterEntries, starterErr
}

// BuildStarterRecords turns starter entries into persistable convention
// records by replaying them through a fresh tree, so ids and creation order
// come out consistent.
func BuildStarterRecords(entries []StarterEntry) ([]convention.Record, error) {
	tree := convention.NewTree(nil)
	for _, e := range entries {
		_, leaf, err := tree.Materialize(e.Path)
		if err != nil {
			return nil, fmt.Errorf("starter entry %v: %w", e.Path, err)
		}
		if e.Meaning != "" {
			if err := tree.SetMeaning(leaf.ID, e.Meaning); err != nil {
				return nil, err
			}
		}
		if e.Def != nil {
			if err := tree.SetDefinition(leaf.ID, e.Def); err != nil {
				return nil, err
			}
		}
	}
	return tree.Export(), nil
}
