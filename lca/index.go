package lca

import (
	"math/bits"

	"github.com/distree/distree/phylo"
)

// Index is the immutable Euler-tour LCA structure for one frozen tree.
type Index struct {
	// pos[u] is one position of node u in the Euler tour.
	pos []int32

	// depth[u] is the topological depth of node u (root = 0), the
	// quantity minimized over tour windows.
	depth []int32

	// table[k][i] holds the node of minimum depth on the tour window
	// [i, i+2^k); table[0] is the tour itself.
	table [][]int32
}

// New builds the Index for t using the topological depths in d.
// Both structures must describe the same (post-mutation) tree shape.
//
// Complexity: O(M log M) time and memory.
func New(t *phylo.Tree, d *phylo.DepthTable) *Index {
	n := t.Len()
	x := &Index{
		pos:   make([]int32, n),
		depth: make([]int32, n),
	}
	for i := 0; i < n; i++ {
		x.depth[i] = int32(d.Topo[i])
	}

	// 1. Euler tour: append a node on first entry and again after each
	// child returns. Tour length is 2M-1 for M nodes.
	tour := make([]int32, 0, 2*n-1)
	type frame struct {
		node int
		next int // index of the next child to descend into
	}
	stack := make([]frame, 0, n)
	stack = append(stack, frame{t.Root, 0})
	x.pos[t.Root] = 0
	tour = append(tour, int32(t.Root))

	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		kids := t.Nodes[f.node].Children
		if f.next < len(kids) {
			c := kids[f.next]
			f.next++
			x.pos[c] = int32(len(tour))
			tour = append(tour, int32(c))
			stack = append(stack, frame{c, 0})

			continue
		}
		stack = stack[:len(stack)-1]
		if len(stack) > 0 {
			tour = append(tour, int32(stack[len(stack)-1].node))
		}
	}

	// 2. Sparse table: doubling windows, keeping the shallower node of
	// the two half-windows.
	x.table = append(x.table, tour)
	for k, s := 1, 2; s <= len(tour); k, s = k+1, s*2 {
		prev := x.table[k-1]
		row := make([]int32, len(tour)-s+1)
		for i := range row {
			a, b := prev[i], prev[i+s/2]
			if x.depth[b] < x.depth[a] {
				a = b
			}
			row[i] = a
		}
		x.table = append(x.table, row)
	}

	return x
}

// Find returns the arena index of the lowest common ancestor of u and v.
// Passing an out-of-range index is a programming error and panics.
//
// Complexity: O(1).
func (x *Index) Find(u, v int) int {
	if u < 0 || u >= len(x.pos) || v < 0 || v >= len(x.pos) {
		panic(phylo.ErrNodeRange)
	}
	if u == v {
		return u
	}

	p1, p2 := x.pos[u], x.pos[v]
	if p1 > p2 {
		p1, p2 = p2, p1
	}

	// The LCA is the minimum-depth node on the tour span [p1, p2].
	// Two precomputed power-of-two windows cover the span.
	k := bits.Len32(uint32(p2-p1)) - 1
	a := x.table[k][p1]
	b := x.table[k][int(p2)-1<<k+1]
	if x.depth[b] < x.depth[a] {
		a = b
	}

	return int(a)
}

// Len reports the number of nodes the index was built over.
func (x *Index) Len() int { return len(x.pos) }
