package convention

import (
	"fmt"
	"sort"
)

// Record is the flat persisted form of a node. Order is the durable sort key
// that keeps sibling display order stable across restarts.
type Record struct {
	ID       string      `json:"id"`
	ParentID string      `json:"parent_id,omitempty"`
	Label    string      `json:"label"`
	Meaning  string      `json:"meaning,omitempty"`
	Order    int64       `json:"order"`
	Def      *Definition `json:"definition,omitempty"`
}

func recordOf(n *Node) Record {
	return Record{
		ID:       n.ID,
		ParentID: n.ParentID,
		Label:    n.Label,
		Meaning:  n.Meaning,
		Order:    n.Order,
		Def:      n.Def.Clone(),
	}
}

// RecordOf returns the persisted form of one node.
func (t *Tree) RecordOf(id string) (Record, bool) {
	n, ok := t.nodes[id]
	if !ok {
		return Record{}, false
	}
	return recordOf(n), true
}

// Export returns every node as a record, ascending by Order. Replaying the
// result through FromRecords reproduces the tree.
func (t *Tree) Export() []Record {
	out := make([]Record, 0, len(t.nodes))
	for _, n := range t.nodes {
		out = append(out, recordOf(n))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// FromRecords rebuilds a tree from persisted records. Sibling order follows
// the Order field regardless of input order. A record naming a parent id
// that is absent from the batch is an error.
func FromRecords(records []Record, idgen func() string) (*Tree, error) {
	t := NewTree(idgen)
	for _, r := range records {
		if r.ID == "" {
			return nil, fmt.Errorf("convention record with empty id (label %q)", r.Label)
		}
		if _, dup := t.nodes[r.ID]; dup {
			return nil, fmt.Errorf("duplicate convention record id %s", r.ID)
		}
		t.nodes[r.ID] = &Node{
			ID:       r.ID,
			ParentID: r.ParentID,
			Label:    r.Label,
			Meaning:  r.Meaning,
			Order:    r.Order,
			Def:      r.Def.Clone(),
		}
		if r.Order >= t.nextOrder {
			t.nextOrder = r.Order + 1
		}
	}

	for _, n := range t.nodes {
		if n.ParentID == "" {
			t.roots = append(t.roots, n.ID)
			continue
		}
		parent, ok := t.nodes[n.ParentID]
		if !ok {
			return nil, fmt.Errorf("convention record %s references missing parent %s", n.ID, n.ParentID)
		}
		parent.children = append(parent.children, n.ID)
	}

	t.sortByOrder(t.roots)
	for _, n := range t.nodes {
		t.sortByOrder(n.children)
	}
	return t, nil
}

func (t *Tree) sortByOrder(ids []string) {
	sort.Slice(ids, func(i, j int) bool {
		return t.nodes[ids[i]].Order < t.nodes[ids[j]].Order
	})
}
