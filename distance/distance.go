package distance

import (
	"github.com/distree/distree/lca"
	"github.com/distree/distree/phylo"
)

// Patristic distance between nodes i and j: the sum of branch lengths
// along their unique connecting path. Zero on the diagonal.
func PatristicBetween(idx *lca.Index, d *phylo.DepthTable, i, j int) float64 {
	m := idx.Find(i, j)

	return d.Weighted[i] + d.Weighted[j] - 2*d.Weighted[m]
}

// Steps is the topological distance between nodes i and j: the number
// of edges along their unique connecting path. Zero on the diagonal.
func Steps(idx *lca.Index, d *phylo.DepthTable, i, j int) int {
	m := idx.Find(i, j)

	return d.Topo[i] + d.Topo[j] - 2*d.Topo[m]
}

// Covariance is the LMM / var-covar entry for nodes i and j: the
// weighted depth of their lowest common ancestor. On the diagonal this
// is the weighted depth of the leaf itself, not zero.
func Covariance(idx *lca.Index, d *phylo.DepthTable, i, j int) float64 {
	return d.Weighted[idx.Find(i, j)]
}

// Between dispatches on mode. Topological values are returned as exact
// float64 (edge counts are far below the 2^53 integer bound).
func Between(m Mode, idx *lca.Index, d *phylo.DepthTable, i, j int) float64 {
	switch m {
	case Topological:
		return float64(Steps(idx, d, i, j))
	case LMM:
		return Covariance(idx, d, i, j)
	default:
		return PatristicBetween(idx, d, i, j)
	}
}
