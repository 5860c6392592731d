// Package distmat streams a pairwise leaf-distance matrix from a
// phylogeny without ever materializing the full N×N matrix.
//
// What:
//
//   - Compute(ctx, text, w, opts...): the single batch entry point —
//     parse Newick text, optionally midpoint-reroot, freeze the tree,
//     build depth and LCA caches, then stream the matrix to w.
//   - Stream(ctx, ...): the parallel row scheduler and ordered writer,
//     for callers that already hold the frozen structures.
//
// Wire format:
//
//	Tab-separated, Unix newlines. Header: one empty cell, then leaf
//	labels in ascending lexical order. One data row per leaf in the
//	same order, led by the leaf's label. Patristic and LMM values are
//	fixed-point with 3 fractional digits; Topological values are
//	integers.
//
// Scheduling:
//
//	Rows are independent work units fanned out to a bounded
//	errgroup-managed pool (size defaults to GOMAXPROCS). Workers read
//	only the immutable tree, depth table and LCA index, so computation
//	needs no locking. A channel-of-channels reorder stage restores
//	ascending row order before the single writer, keeping at most
//	O(pool·N) cells in flight. Output is byte-identical for any pool
//	size.
//
// Failure:
//
//	Parse and build failures abort before any worker is spawned, with
//	no output written. A write failure cancels remaining row
//	production; rows already flushed stay on the stream (documented
//	side effect, not corruption). There is no partial-success mode.
//
// Errors:
//
//   - ErrNilTree, ErrNilWriter, ErrNilIndex, ErrNilDepths — nil inputs.
//   - ErrIO — wraps the sink's write error.
//   - parse failures surface the newick package sentinels unchanged.
package distmat
