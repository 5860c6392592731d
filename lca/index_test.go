// Package lca_test contains unit tests for the Euler-tour LCA index:
// known-answer queries, a randomized cross-check against the naive
// ancestor walk, and the out-of-range contract.
package lca_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/distree/distree/lca"
	"github.com/distree/distree/newick"
	"github.com/distree/distree/phylo"
)

// naiveLCA walks u's ancestor set, then climbs from v until it hits it.
func naiveLCA(t *phylo.Tree, u, v int) int {
	anc := make(map[int]bool)
	for cur := u; cur != phylo.None; cur = t.Nodes[cur].Parent {
		anc[cur] = true
	}
	for cur := v; ; cur = t.Nodes[cur].Parent {
		if anc[cur] {
			return cur
		}
	}
}

// TestIndex_KnownTree pins queries on (A:1,(B:2,C:3):1);.
func TestIndex_KnownTree(t *testing.T) {
	tr, err := newick.Parse("(A:1,(B:2,C:3):1);")
	require.NoError(t, err)
	d := phylo.BuildDepths(tr)
	x := lca.New(tr, d)

	a, b, c := tr.Leaves()[0], tr.Leaves()[1], tr.Leaves()[2]

	assert.Equal(t, tr.Root, x.Find(a, b), "A and B only meet at the root")
	assert.Equal(t, tr.Root, x.Find(a, c))
	assert.Equal(t, tr.Nodes[b].Parent, x.Find(b, c), "B and C meet at their shared parent")
	assert.Equal(t, a, x.Find(a, a), "lca of a node with itself is the node")
	assert.Equal(t, tr.Len(), x.Len())
}

// TestIndex_SymmetricQueries: Find(u,v) == Find(v,u) for all pairs.
func TestIndex_SymmetricQueries(t *testing.T) {
	tr, err := newick.Parse("((A:1,B:4)x:2,(C:3,(D:2,E:1)y:1)z:5,F:7);")
	require.NoError(t, err)
	d := phylo.BuildDepths(tr)
	x := lca.New(tr, d)

	for u := 0; u < tr.Len(); u++ {
		for v := u; v < tr.Len(); v++ {
			assert.Equal(t, x.Find(u, v), x.Find(v, u), "asymmetry for (%d,%d)", u, v)
		}
	}
}

// TestIndex_RandomTreesMatchNaive cross-checks every pair on randomly
// grown trees against the ancestor-walk answer. Fixed seed keeps the
// test deterministic.
func TestIndex_RandomTreesMatchNaive(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 20; trial++ {
		// Grow a random tree: each new node attaches under a uniformly
		// chosen existing node.
		tr := phylo.NewTree()
		tr.Add(phylo.None, "", 0)
		n := 2 + rng.Intn(60)
		for i := 1; i < n; i++ {
			parent := rng.Intn(i)
			tr.Add(parent, "", rng.Float64())
		}
		tr.RefreshLeaves()

		d := phylo.BuildDepths(tr)
		x := lca.New(tr, d)

		for u := 0; u < n; u++ {
			for v := 0; v < n; v++ {
				require.Equal(t, naiveLCA(tr, u, v), x.Find(u, v),
					"trial %d: mismatch for (%d,%d)", trial, u, v)
			}
		}
	}
}

// TestIndex_OutOfRangePanics: contract violations must not be silent.
func TestIndex_OutOfRangePanics(t *testing.T) {
	tr, err := newick.Parse("(A:1,B:2);")
	require.NoError(t, err)
	x := lca.New(tr, phylo.BuildDepths(tr))

	assert.Panics(t, func() { x.Find(-1, 0) })
	assert.Panics(t, func() { x.Find(0, tr.Len()) })
}
