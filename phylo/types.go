// Package phylo: core types and sentinel errors.
// This file declares Node, Tree, DepthTable and the package sentinels.
package phylo

import "errors"

// None marks the absence of a parent index (only the root carries it).
const None = -1

// Sentinel errors for phylo operations.
var (
	// ErrNilTree indicates a nil *Tree was passed where one is required.
	ErrNilTree = errors.New("phylo: tree is nil")

	// ErrNodeRange indicates a node index outside the arena bounds.
	ErrNodeRange = errors.New("phylo: node index out of range")
)

// Node is one entry of the tree arena.
//
// A node is a leaf iff Children is empty; only leaves are expected to
// carry a non-empty Label, though internal labels from the source text
// are retained for round-trip fidelity.
type Node struct {
	// Label is the taxon name for leaves, or an optional internal label.
	Label string

	// Parent is the arena index of the parent node, or None at the root.
	Parent int

	// Children holds arena indices of child nodes in source order.
	Children []int

	// Length is the branch length from this node up to its parent.
	// Meaningless at the root (kept at 0).
	Length float64
}

// Tree owns the node arena and the derived sorted leaf registry.
//
// Invariants (enforced by the newick parser and midpoint rerooter, not
// re-checked on every read):
//   - exactly one node has Parent == None, and it is Root;
//   - every node is reachable from Root;
//   - leaf labels are pairwise distinct and non-empty.
type Tree struct {
	// Nodes is the arena; indices are stable for the Tree's lifetime.
	Nodes []Node

	// Root is the arena index of the parentless node.
	Root int

	// leaves holds leaf arena indices in ascending label order;
	// labels holds the matching labels. Both are rebuilt by RefreshLeaves.
	leaves []int
	labels []string
}

// DepthTable caches per-node depths relative to the root.
//
// It is owned by, and invalidated together with, the Tree: any
// structural mutation (rerooting) requires calling BuildDepths again.
type DepthTable struct {
	// Topo[i] is the edge count from node i up to the root.
	Topo []int

	// Weighted[i] is the cumulative branch length from node i up to the root.
	Weighted []float64
}
