package phylo

import "sort"

// NewTree returns an empty Tree with capacity hints for small phylogenies.
// Complexity: O(1).
func NewTree() *Tree {
	return &Tree{Nodes: make([]Node, 0, 16), Root: None}
}

// Add appends a node to the arena and wires it under parent (pass None
// for the root). It returns the new node's arena index.
// Complexity: O(1) amortized.
func (t *Tree) Add(parent int, label string, length float64) int {
	id := len(t.Nodes)
	t.Nodes = append(t.Nodes, Node{Label: label, Parent: parent, Length: length})
	if parent != None {
		t.Nodes[parent].Children = append(t.Nodes[parent].Children, id)
	} else {
		t.Root = id
	}

	return id
}

// Len reports the number of nodes in the arena.
func (t *Tree) Len() int { return len(t.Nodes) }

// IsLeaf reports whether node i has no children.
// Panics with ErrNodeRange semantics if i is outside the arena.
func (t *Tree) IsLeaf(i int) bool {
	t.check(i)

	return len(t.Nodes[i].Children) == 0
}

// RefreshLeaves rebuilds the sorted leaf registry from the arena.
// Call it once after construction and again after any structural
// mutation. Complexity: O(M + L log L).
func (t *Tree) RefreshLeaves() {
	// 1. Collect leaf indices. A taxon is childless AND labeled; an
	// unlabeled childless node (an old unary root stranded by rerooting)
	// is not a taxon and stays out of the registry.
	t.leaves = t.leaves[:0]
	for i := range t.Nodes {
		if len(t.Nodes[i].Children) == 0 && t.Nodes[i].Label != "" {
			t.leaves = append(t.leaves, i)
		}
	}

	// 2. Sort by label; ties cannot occur since labels are unique.
	sort.Slice(t.leaves, func(a, b int) bool {
		return t.Nodes[t.leaves[a]].Label < t.Nodes[t.leaves[b]].Label
	})

	// 3. Derive the matching label view.
	t.labels = t.labels[:0]
	for _, id := range t.leaves {
		t.labels = append(t.labels, t.Nodes[id].Label)
	}
}

// Leaves returns leaf arena indices in ascending label order.
// The returned slice is owned by the Tree; callers must not modify it.
func (t *Tree) Leaves() []int { return t.leaves }

// Labels returns leaf labels in the same order as Leaves.
// The returned slice is owned by the Tree; callers must not modify it.
func (t *Tree) Labels() []string { return t.labels }

// LeafCount reports the number of registered leaves.
func (t *Tree) LeafCount() int { return len(t.leaves) }

// check panics on an out-of-range index. Out-of-range indices indicate
// a defect in tree construction, not a recoverable runtime condition.
func (t *Tree) check(i int) {
	if i < 0 || i >= len(t.Nodes) {
		panic(ErrNodeRange)
	}
}
