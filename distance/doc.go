// Package distance turns (leaf, leaf) pairs into metric values using
// one LCA query and the cached depth tables.
//
// Modes:
//
//	Patristic   — sum of branch lengths along the unique path:
//	              w(i) + w(j) − 2·w(lca(i,j)).       Diagonal: 0.
//	Topological — edge count along the unique path:
//	              t(i) + t(j) − 2·t(lca(i,j)).       Diagonal: 0.
//	LMM         — phylogenetic var-covar entry: w(lca(i,j)).
//	              Diagonal: w(i), NOT zero.
//
// All three are symmetric by construction, since lca(i,j) == lca(j,i).
//
// Mode precedence mirrors the CLI: LMM overrides a simultaneous
// Topological request; absent both, Patristic is the default. ModeOf
// encodes that rule.
//
// The functions are pure and stateless; they read only immutable
// structures and are safe to call from any number of goroutines.
package distance
