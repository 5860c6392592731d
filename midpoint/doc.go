// Package midpoint relocates a phylogeny's root to the midpoint of its
// diameter (the longest weighted leaf-to-leaf path).
//
// What:
//
//   - Diameter(t): the two endpoint leaves and the weighted length of a
//     longest path, found with the standard two-pass farthest-leaf
//     technique for trees.
//   - Reroot(t): walks the diameter path until the running length first
//     reaches D/2, then either promotes the node sitting exactly at the
//     midpoint or splits the edge the midpoint falls inside, and
//     re-orients every parent link on the old-root→new-root path.
//
// Why:
//
//   - Midpoint rooting balances the two sides of the root as closely as
//     the topology permits, which is the usual default when a phylogeny
//     comes unrooted.
//
// Edge cases:
//
//   - Zero-length diameter: D/2 = 0 is reached immediately; the
//     procedure terminates with a degenerate split at the path start.
//   - Farthest-leaf ties break by traversal order; the diameter length
//     is invariant under the tie-break.
//
// After Reroot, any DepthTable or LCA index built from the tree is
// stale and must be rebuilt.
//
// Complexity: O(M) time and memory per pass (two passes + one walk).
//
// Errors:
//
//   - ErrNilTree:   t is nil.
//   - ErrNoDiameter: fewer than two leaves, so no leaf pair exists.
package midpoint
