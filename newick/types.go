// Package newick: sentinel error set.
// All parse failures wrap ErrParse so callers can match the whole class
// with a single errors.Is; the finer sentinels identify the cause.
package newick

import (
	"errors"
	"fmt"
)

var (
	// ErrParse is the umbrella sentinel for every malformed-input failure.
	ErrParse = errors.New("newick: parse error")

	// ErrUnbalanced indicates mismatched parentheses in a descendant list.
	ErrUnbalanced = fmt.Errorf("%w: unbalanced parentheses", ErrParse)

	// ErrMissingTerminal indicates the input ended without the closing ';'.
	ErrMissingTerminal = fmt.Errorf("%w: missing ';' terminator", ErrParse)

	// ErrBadLength indicates a branch length that is not a finite
	// non-negative number.
	ErrBadLength = fmt.Errorf("%w: invalid branch length", ErrParse)

	// ErrEmptyLabel indicates a leaf without a label.
	ErrEmptyLabel = fmt.Errorf("%w: empty leaf label", ErrParse)

	// ErrDuplicateLabel indicates two leaves sharing one label.
	ErrDuplicateLabel = fmt.Errorf("%w: duplicate leaf label", ErrParse)

	// ErrBadLabelChar indicates whitespace or a reserved character where
	// label text was expected to end.
	ErrBadLabelChar = fmt.Errorf("%w: forbidden character in label", ErrParse)

	// ErrTooFewLeaves indicates a tree with fewer than two labeled leaves.
	ErrTooFewLeaves = fmt.Errorf("%w: fewer than two leaves", ErrParse)

	// ErrTrailingData indicates non-whitespace bytes after the ';'.
	ErrTrailingData = fmt.Errorf("%w: trailing data after ';'", ErrParse)
)
