// Package distree extracts pairwise distance matrices from phylogenies
// — in parallel, streaming row by row, never holding the full N×N
// matrix in memory.
//
// 🌲 What is distree?
//
//	A small, focused toolkit (and a CLI of the same name) that turns a
//	Newick tree into a tab-separated distance matrix over its leaves:
//		• Patristic distances: branch-length path sums
//		• Topological distances: edge counts
//		• LMM / var-covar matrices: MRCA weighted depths
//		• Optional midpoint rooting before any index is built
//
// ✨ Why distree?
//
//   - Low memory – rows stream through a bounded reorder stage, O(k·N)
//     resident, never O(N²)
//   - Parallel – independent rows fan out to a worker pool; output is
//     byte-identical for any pool size
//   - Deterministic – leaves always emit in ascending label order
//
// Under the hood, everything is organized under six subpackages:
//
//	phylo/    — arena tree model, leaf registry, depth caches
//	newick/   — Newick parser with byte-offset error reporting
//	midpoint/ — diameter search & midpoint rerooting
//	lca/      — Euler-tour + sparse-RMQ lowest-common-ancestor index
//	distance/ — the three metrics over (leaf, leaf) pairs
//	distmat/  — parallel row scheduler, ordered streaming TSV writer
//
// Quick start:
//
//	err := distmat.Compute(ctx, "(A:1,(B:2,C:3):1);", os.Stdout)
//
// or from the shell:
//
//	distree --midpoint --lmm -o matrix.tsv tree.nwk
package distree
