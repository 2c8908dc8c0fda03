package app

import (
	"context"
	"fmt"

	"github.com/Nargog/TheBridgeSystem/internal/convention"
	"github.com/Nargog/TheBridgeSystem/internal/ports"
)

// ConventionService is the store-backed authoring facade over a user's
// convention tree. Every operation loads the user's records, rebuilds the
// tree, applies one tree operation, and persists whatever changed. Users own
// disjoint trees, so concurrent sessions never contend.
type ConventionService struct {
	store ports.ConventionStore
	idgen func() string // nil outside tests
}

// NewConventionService constructs the service. idgen overrides node id
// generation for tests.
func NewConventionService(store ports.ConventionStore, idgen func() string) *ConventionService {
	return &ConventionService{store: store, idgen: idgen}
}

func (s *ConventionService) load(ctx context.Context, userID string) (*convention.Tree, error) {
	records, err := s.store.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list convention records: %w", err)
	}
	tree, err := convention.FromRecords(records, s.idgen)
	if err != nil {
		return nil, fmt.Errorf("rebuild convention tree: %w", err)
	}
	return tree, nil
}

func (s *ConventionService) persist(ctx context.Context, userID string, tree *convention.Tree, nodes []*convention.Node) error {
	if len(nodes) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(nodes))
	records := make([]convention.Record, 0, len(nodes))
	for _, n := range nodes {
		if seen[n.ID] {
			continue
		}
		seen[n.ID] = true
		if r, ok := tree.RecordOf(n.ID); ok {
			records = append(records, r)
		}
	}
	if err := s.store.Put(ctx, userID, records); err != nil {
		return fmt.Errorf("persist convention records: %w", err)
	}
	return nil
}

// Record materializes the node chain for a call path, persisting any nodes
// created along the way, and returns the leaf. Implements Recorder.
func (s *ConventionService) Record(ctx context.Context, userID string, path []string) (convention.Record, error) {
	tree, err := s.load(ctx, userID)
	if err != nil {
		return convention.Record{}, err
	}
	created, leaf, err := tree.Materialize(path)
	if err != nil {
		return convention.Record{}, err
	}
	if err := s.persist(ctx, userID, tree, created); err != nil {
		return convention.Record{}, err
	}
	r, _ := tree.RecordOf(leaf.ID)
	return r, nil
}

// Get looks up the node at the given path. found is false for an unknown
// path; nothing is created.
func (s *ConventionService) Get(ctx context.Context, userID string, path []string) (convention.Record, bool, error) {
	tree, err := s.load(ctx, userID)
	if err != nil {
		return convention.Record{}, false, err
	}
	node, ok := tree.Find(path)
	if !ok {
		return convention.Record{}, false, nil
	}
	r, _ := tree.RecordOf(node.ID)
	return r, true, nil
}

// Children returns the child records at the given path in creation order.
// An empty path lists the opening calls.
func (s *ConventionService) Children(ctx context.Context, userID string, path []string) ([]convention.Record, error) {
	tree, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	parentID := ""
	if len(path) > 0 {
		node, ok := tree.Find(path)
		if !ok {
			return nil, convention.ErrPathNotFound
		}
		parentID = node.ID
	}
	children := tree.ChildrenOrdered(parentID)
	out := make([]convention.Record, 0, len(children))
	for _, c := range children {
		if r, ok := tree.RecordOf(c.ID); ok {
			out = append(out, r)
		}
	}
	return out, nil
}

// SetMeaning materializes the path and replaces the leaf's meaning text.
func (s *ConventionService) SetMeaning(ctx context.Context, userID string, path []string, meaning string) (convention.Record, error) {
	return s.mutate(ctx, userID, path, func(tree *convention.Tree, leaf *convention.Node) error {
		return tree.SetMeaning(leaf.ID, meaning)
	})
}

// SetDefinition materializes the path and replaces the leaf's structured
// definition. nil clears it. Values are stored as supplied; range enforcement
// is the client's concern.
func (s *ConventionService) SetDefinition(ctx context.Context, userID string, path []string, def *convention.Definition) (convention.Record, error) {
	return s.mutate(ctx, userID, path, func(tree *convention.Tree, leaf *convention.Node) error {
		return tree.SetDefinition(leaf.ID, def)
	})
}

func (s *ConventionService) mutate(ctx context.Context, userID string, path []string, apply func(*convention.Tree, *convention.Node) error) (convention.Record, error) {
	tree, err := s.load(ctx, userID)
	if err != nil {
		return convention.Record{}, err
	}
	created, leaf, err := tree.Materialize(path)
	if err != nil {
		return convention.Record{}, err
	}
	if err := apply(tree, leaf); err != nil {
		return convention.Record{}, err
	}
	if err := s.persist(ctx, userID, tree, append(created, leaf)); err != nil {
		return convention.Record{}, err
	}
	r, _ := tree.RecordOf(leaf.ID)
	return r, nil
}

// Delete removes the subtree rooted at the given path and returns how many
// nodes were removed. The store delete is a single batched call, so the
// cascade is never partially visible.
func (s *ConventionService) Delete(ctx context.Context, userID string, path []string) (int, error) {
	tree, err := s.load(ctx, userID)
	if err != nil {
		return 0, err
	}
	node, ok := tree.Find(path)
	if !ok {
		return 0, convention.ErrPathNotFound
	}
	removed, err := tree.DeleteSubtree(node.ID)
	if err != nil {
		return 0, err
	}
	if err := s.store.Delete(ctx, userID, removed); err != nil {
		return 0, fmt.Errorf("delete convention records: %w", err)
	}
	return len(removed), nil
}

// ImportBatch applies (label, meaning) pairs under parentPath in input order
// and persists the result. Duplicate labels collapse onto one node with the
// last meaning winning.
func (s *ConventionService) ImportBatch(ctx context.Context, userID string, parentPath []string, entries []convention.BatchEntry) ([]convention.Record, error) {
	tree, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	var created []*convention.Node
	if len(parentPath) > 0 {
		created, _, err = tree.Materialize(parentPath)
		if err != nil {
			return nil, err
		}
	}
	nodes, err := tree.ImportBatch(parentPath, entries)
	if err != nil {
		return nil, err
	}
	if err := s.persist(ctx, userID, tree, append(created, nodes...)); err != nil {
		return nil, err
	}
	out := make([]convention.Record, 0, len(nodes))
	for _, n := range nodes {
		if r, ok := tree.RecordOf(n.ID); ok {
			out = append(out, r)
		}
	}
	return out, nil
}

var _ Recorder = (*ConventionService)(nil)
