// Package convention stores the meanings a partnership attaches to call
// sequences. Each distinct sequence of call labels maps to one node; nodes
// are created lazily the first time a sequence is used and keep their
// creation order for stable display.
package convention

import (
	"errors"

	"github.com/google/uuid"
)

var (
	// ErrPathNotFound means a parent path did not resolve to an existing node.
	ErrPathNotFound = errors.New("convention path not found")
	// ErrNodeNotFound means no node carries the given id.
	ErrNodeNotFound = errors.New("convention node not found")
)

// Node is one entry of the tree: a call label under a specific parent, with
// the authored meaning and optional structured definition. ParentID is a weak
// back-reference; ownership runs strictly downward through the child list.
type Node struct {
	ID       string
	ParentID string
	Label    string
	Meaning  string
	Order    int64
	Def      *Definition

	children []string
}

// Tree is an arena of nodes keyed by opaque id. Roots are the opening calls.
// A Tree is owned by a single session or request and is not safe for
// concurrent use.
type Tree struct {
	nodes     map[string]*Node
	roots     []string
	nextOrder int64
	newID     func() string
}

// NewTree returns an empty tree. idgen overrides node id generation and is
// nil outside tests, selecting random uuids.
func NewTree(idgen func() string) *Tree {
	if idgen == nil {
		idgen = uuid.NewString
	}
	return &Tree{
		nodes:     make(map[string]*Node),
		nextOrder: 1,
		newID:     idgen,
	}
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int { return len(t.nodes) }

// Node returns the node with the given id.
func (t *Tree) Node(id string) (*Node, bool) {
	n, ok := t.nodes[id]
	return n, ok
}

// Find resolves a full path of call labels from the root, without creating
// anything. An empty path finds nothing.
func (t *Tree) Find(path []string) (*Node, bool) {
	if len(path) == 0 {
		return nil, false
	}
	var current *Node
	siblings := t.roots
	for _, label := range path {
		next := t.childByLabel(siblings, label)
		if next == nil {
			return nil, false
		}
		current = next
		siblings = next.children
	}
	return current, true
}

func (t *Tree) childByLabel(ids []string, label string) *Node {
	for _, id := range ids {
		if n := t.nodes[id]; n != nil && n.Label == label {
			return n
		}
	}
	return nil
}

// FindOrCreate returns the child of the node at parentPath (or the root set,
// for an empty parentPath) carrying the given label, creating it when absent.
// Repeated calls with the same arguments return the same node. The parent
// path itself must already exist.
func (t *Tree) FindOrCreate(parentPath []string, label string) (node *Node, created bool, err error) {
	var parent *Node
	siblings := t.roots
	if len(parentPath) > 0 {
		p, ok := t.Find(parentPath)
		if !ok {
			return nil, false, ErrPathNotFound
		}
		parent = p
		siblings = p.children
	}

	if existing := t.childByLabel(siblings, label); existing != nil {
		return existing, false, nil
	}

	n := &Node{
		ID:    t.newID(),
		Label: label,
		Order: t.nextOrder,
	}
	t.nextOrder++
	t.nodes[n.ID] = n
	if parent == nil {
		t.roots = append(t.roots, n.ID)
	} else {
		n.ParentID = parent.ID
		parent.children = append(parent.children, n.ID)
	}
	return n, true, nil
}

// Materialize find-or-creates every prefix of path in order, so the whole
// chain exists afterwards. It returns the nodes created along the way, for
// persistence, and the leaf node.
func (t *Tree) Materialize(path []string) (createdNodes []*Node, leaf *Node, err error) {
	if len(path) == 0 {
		return nil, nil, ErrPathNotFound
	}
	for i, label := range path {
		n, created, err := t.FindOrCreate(path[:i], label)
		if err != nil {
			return nil, nil, err
		}
		if created {
			createdNodes = append(createdNodes, n)
		}
		leaf = n
	}
	return createdNodes, leaf, nil
}

// SetMeaning replaces the meaning text of an existing node.
func (t *Tree) SetMeaning(id, text string) error {
	n, ok := t.nodes[id]
	if !ok {
		return ErrNodeNotFound
	}
	n.Meaning = text
	return nil
}

// SetDefinition replaces the structured definition of an existing node.
// nil clears it. The value is stored as supplied, unvalidated.
func (t *Tree) SetDefinition(id string, def *Definition) error {
	n, ok := t.nodes[id]
	if !ok {
		return ErrNodeNotFound
	}
	n.Def = def.Clone()
	return nil
}

// DeleteSubtree removes the node and all its descendants, walking the owned
// child lists only, and returns every removed id. The caller never observes
// a partial deletion.
func (t *Tree) DeleteSubtree(id string) ([]string, error) {
	root, ok := t.nodes[id]
	if !ok {
		return nil, ErrNodeNotFound
	}

	var removed []string
	stack := []string{id}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := t.nodes[cur]
		if n == nil {
			continue
		}
		removed = append(removed, cur)
		stack = append(stack, n.children...)
	}

	if root.ParentID == "" {
		t.roots = removeID(t.roots, id)
	} else if parent, ok := t.nodes[root.ParentID]; ok {
		parent.children = removeID(parent.children, id)
	}
	for _, rid := range removed {
		delete(t.nodes, rid)
	}
	return removed, nil
}

func removeID(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}

// ChildrenOrdered returns the children of the node with the given id, or the
// roots for id "", in ascending creation order.
func (t *Tree) ChildrenOrdered(id string) []*Node {
	ids := t.roots
	if id != "" {
		n, ok := t.nodes[id]
		if !ok {
			return nil
		}
		ids = n.children
	}
	out := make([]*Node, 0, len(ids))
	for _, cid := range ids {
		if n := t.nodes[cid]; n != nil {
			out = append(out, n)
		}
	}
	return out
}

// BatchEntry is one imported line: a call label and its meaning.
type BatchEntry struct {
	Label   string `json:"label"`
	Meaning string `json:"meaning"`
}

// ImportBatch applies find-or-create plus set-meaning for each entry under
// parentPath, in input order. Duplicate labels collapse onto the same node
// with the last meaning winning. The returned slice holds one node per
// entry, so duplicates repeat.
func (t *Tree) ImportBatch(parentPath []string, entries []BatchEntry) ([]*Node, error) {
	out := make([]*Node, 0, len(entries))
	for _, e := range entries {
		n, _, err := t.FindOrCreate(parentPath, e.Label)
		if err != nil {
			return nil, err
		}
		n.Meaning = e.Meaning
		out = append(out, n)
	}
	return out, nil
}

// NodePath returns the label path from the root to the node, following
// parent back-references.
func (t *Tree) NodePath(id string) ([]string, error) {
	n, ok := t.nodes[id]
	if !ok {
		return nil, ErrNodeNotFound
	}
	var rev []string
	for n != nil {
		rev = append(rev, n.Label)
		if n.ParentID == "" {
			break
		}
		n = t.nodes[n.ParentID]
	}
	path := make([]string, len(rev))
	for i, label := range rev {
		path[len(rev)-1-i] = label
	}
	return path, nil
}
