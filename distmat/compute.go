package distmat

import (
	"context"
	"io"

	"github.com/distree/distree/lca"
	"github.com/distree/distree/midpoint"
	"github.com/distree/distree/newick"
	"github.com/distree/distree/phylo"
)

// Compute runs the whole pipeline: parse text as one Newick tree,
// optionally midpoint-reroot it, build the depth table and LCA index,
// and stream the distance matrix for the requested mode to w.
//
// Any failure before streaming leaves w untouched; see Stream for the
// mid-write failure contract.
func Compute(ctx context.Context, text string, w io.Writer, opts ...Option) error {
	// 1. Apply options.
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if w == nil {
		return ErrNilWriter
	}

	// 2. Parse; the parser enforces all label and shape invariants.
	t, err := newick.Parse(text)
	if err != nil {
		return err
	}

	// 3. Optional structural transform, before any cache exists.
	if o.Midpoint {
		if err = midpoint.Reroot(t); err != nil {
			return err
		}
	}

	// 4. Freeze: caches are built exactly once and never mutated.
	d := phylo.BuildDepths(t)
	idx := lca.New(t, d)

	// 5. Fan out rows and emit in leaf-sorted order.
	return Stream(ctx, t, d, idx, o.Mode, o.Workers, w)
}
