// Package phylo defines the central Tree and Node types for rooted
// phylogenies, plus the DepthTable cache derived from them.
//
// What:
//
//   - Node: dense-index arena entry with parent link, ordered children,
//     branch length to its parent, and (for leaves) a taxon label.
//   - Tree: owns the node arena, the root index, and the derived
//     alphabetically-sorted leaf registry used for matrix output order.
//   - DepthTable: per-node topological depth (edge count from root) and
//     weighted depth (cumulative branch length from root), built by a
//     single traversal.
//
// Why:
//
//   - Arena-of-indices instead of a pointer graph: parent/child
//     back-references never form ownership cycles, rerooting is index
//     reassignment, and a frozen Tree is trivially safe to share
//     read-only across goroutines.
//
// Complexity:
//
//   - Add: O(1) amortized. RefreshLeaves: O(L log L). BuildDepths: O(M).
//     (L = leaf count, M = node count.)
//
// Concurrency:
//
//   - Tree is NOT synchronized. Build and mutate it in one goroutine,
//     then treat it as immutable; concurrent reads are always safe after
//     the last mutation.
//
// Errors:
//
//   - ErrNodeRange: node index outside the arena (programmer error in
//     callers that bypass Add).
package phylo
