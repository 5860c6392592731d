// Package phylo_test contains unit tests for the arena tree model and
// the DepthTable builder.
package phylo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/distree/distree/phylo"
)

// buildCaterpillar constructs (A:1,(B:2,C:3):1); by hand:
// root ── A(1)
//     └── inner(1) ── B(2)
//                 └── C(3)
func buildCaterpillar(t *testing.T) *phylo.Tree {
	t.Helper()
	tr := phylo.NewTree()
	root := tr.Add(phylo.None, "", 0)
	tr.Add(root, "A", 1)
	inner := tr.Add(root, "", 1)
	tr.Add(inner, "B", 2)
	tr.Add(inner, "C", 3)
	tr.RefreshLeaves()

	return tr
}

// TestTree_AddWiresParentAndChildren verifies the arena links after Add.
func TestTree_AddWiresParentAndChildren(t *testing.T) {
	tr := buildCaterpillar(t)

	require.Equal(t, 5, tr.Len())
	assert.Equal(t, 0, tr.Root, "first parentless node is the root")
	assert.Equal(t, []int{1, 2}, tr.Nodes[0].Children)
	assert.Equal(t, 0, tr.Nodes[2].Parent)
	assert.Equal(t, []int{3, 4}, tr.Nodes[2].Children)
}

// TestTree_LeavesSortedByLabel verifies the derived leaf registry order.
func TestTree_LeavesSortedByLabel(t *testing.T) {
	tr := phylo.NewTree()
	root := tr.Add(phylo.None, "", 0)
	tr.Add(root, "zebra", 1)
	tr.Add(root, "ant", 1)
	tr.Add(root, "moth", 1)
	tr.RefreshLeaves()

	assert.Equal(t, []string{"ant", "moth", "zebra"}, tr.Labels())
	assert.Equal(t, []int{2, 3, 1}, tr.Leaves(), "leaf indices follow label order")
	assert.Equal(t, 3, tr.LeafCount())
}

// TestTree_LeavesSkipUnlabeledChildless: a childless node without a
// label (such as an old unary root detached by rerooting) must never
// enter the registry.
func TestTree_LeavesSkipUnlabeledChildless(t *testing.T) {
	tr := phylo.NewTree()
	root := tr.Add(phylo.None, "", 0)
	tr.Add(root, "A", 1)
	tr.Add(root, "B", 2)
	ghost := tr.Add(root, "", 5)
	tr.RefreshLeaves()

	assert.Equal(t, []string{"A", "B"}, tr.Labels())
	assert.NotContains(t, tr.Leaves(), ghost)
	assert.Equal(t, 2, tr.LeafCount())
}

// TestTree_IsLeaf covers both leaf classes and the range contract.
func TestTree_IsLeaf(t *testing.T) {
	tr := buildCaterpillar(t)

	assert.True(t, tr.IsLeaf(1), "A is a leaf")
	assert.False(t, tr.IsLeaf(2), "inner node is not a leaf")
	assert.Panics(t, func() { tr.IsLeaf(99) }, "out-of-range index is a contract violation")
	assert.Panics(t, func() { tr.IsLeaf(-1) })
}

// TestBuildDepths verifies both depth columns on the known tree.
func TestBuildDepths(t *testing.T) {
	tr := buildCaterpillar(t)
	d := phylo.BuildDepths(tr)

	// Topological depths (edges from root).
	assert.Equal(t, []int{0, 1, 1, 2, 2}, d.Topo)

	// Weighted depths (cumulative branch lengths).
	assert.Equal(t, []float64{0, 1, 1, 3, 4}, d.Weighted)
}

// TestBuildDepths_EmptyTree must not panic on a zero-node arena.
func TestBuildDepths_EmptyTree(t *testing.T) {
	d := phylo.BuildDepths(phylo.NewTree())
	assert.Empty(t, d.Topo)
	assert.Empty(t, d.Weighted)
}
