// Package lca answers lowest-common-ancestor queries over a frozen
// phylogeny in O(1) per query after O(M log M) preprocessing.
//
// What:
//
//   - New(t, d): one depth-first walk emits the Euler tour of the tree
//     (each node re-visited at every backtrack), then a sparse
//     range-minimum table over per-visit topological depths is layered
//     on top.
//   - (*Index).Find(u, v): the shallowest node between the two tour
//     positions of u and v, read from two overlapping power-of-two
//     windows of the table.
//
// Why:
//
//   - A build-once immutable index means parallel readers never contend
//     and per-pair cost stays constant, unlike recursive ancestor walks
//     that are linear in tree height.
//
// Complexity:
//
//   - Build: O(M log M) time and memory (tour length 2M-1).
//   - Find:  O(1).
//
// Concurrency: an Index is immutable after New; concurrent Find calls
// are always safe.
//
// Failure mode: none at query time — any two in-range nodes share at
// least the root. An out-of-range index is a contract violation and
// panics with phylo.ErrNodeRange.
package lca
