// Package newick parses Newick-format phylogeny text into a phylo.Tree.
//
// What:
//
//   - Parse(s): one tree per input, `(...)label:length;` grammar with
//     nested descendant lists, optional labels and branch lengths.
//   - Read(r): convenience wrapper that slurps an io.Reader first.
//
// Grammar (informal):
//
//	subtree := '(' subtree (',' subtree)* ')' [label] [':' number]
//	         | label [':' number]
//	tree    := subtree ';'
//
// Rules:
//
//   - Whitespace between tokens is skipped; it can never be part of a
//     label, which enforces the no-tab/no-newline label invariant.
//   - Leaves must carry a unique, non-empty label. Internal labels are
//     accepted and retained on the node but excluded from the leaf
//     registry.
//   - Branch lengths must be finite and non-negative; omitted lengths
//     default to 0.
//   - A tree with fewer than two leaves is rejected: there is no pair
//     to compute a distance for.
//
// Errors:
//
//	All parse failures wrap ErrParse and carry the byte offset of the
//	offending input. Match specific causes with errors.Is against
//	ErrUnbalanced, ErrMissingTerminal, ErrBadLength, ErrEmptyLabel,
//	ErrDuplicateLabel, ErrBadLabelChar, ErrTooFewLeaves, ErrTrailingData.
//
// Complexity: O(len(input)) time, O(M) memory for the arena.
package newick
