package distmat

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"runtime"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/distree/distree/distance"
	"github.com/distree/distree/lca"
	"github.com/distree/distree/phylo"
)

// fracDigits is the fixed fractional precision for Patristic and LMM
// cells. Topological cells are integers.
const fracDigits = 3

// rowJob pairs a sorted-order row index with the channel its rendered
// bytes must be delivered on.
type rowJob struct {
	row int
	out chan []byte
}

// Stream writes the N×N matrix for the frozen (t, d, idx) triple to w:
// header first, then one row per leaf in ascending label order.
//
// Rows are computed concurrently by a pool of `workers` goroutines
// (GOMAXPROCS when workers < 1) but emitted strictly in order: the
// producer queues one result channel per row into an ordered stream,
// and the single writer drains that stream front to back. At most
// pool+queue rows are in flight, so memory stays O(k·N), never O(N²).
//
// A write failure cancels the group; rows already flushed remain.
func Stream(ctx context.Context, t *phylo.Tree, d *phylo.DepthTable, idx *lca.Index,
	mode distance.Mode, workers int, w io.Writer) error {
	// 1. Validate inputs.
	if t == nil {
		return ErrNilTree
	}
	if d == nil {
		return ErrNilDepths
	}
	if idx == nil {
		return ErrNilIndex
	}
	if w == nil {
		return ErrNilWriter
	}
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	// An already-cancelled context aborts before any byte is written.
	if err := ctx.Err(); err != nil {
		return err
	}

	leaves := t.Leaves()
	labels := t.Labels()
	bw := bufio.NewWriter(w)

	// 2. Header: empty leading cell, labels in sorted order.
	if err := writeHeader(bw, labels); err != nil {
		return err
	}

	// 3. Parallel phase. Workers read only immutable structures; the
	// ordered channel-of-channels restores sorted emission no matter
	// which rows finish first.
	g, ctx := errgroup.WithContext(ctx)
	jobs := make(chan rowJob)
	ordered := make(chan chan []byte, workers)

	g.Go(func() error {
		defer close(jobs)
		defer close(ordered)
		for i := range leaves {
			out := make(chan []byte, 1)
			select {
			case ordered <- out:
			case <-ctx.Done():
				return ctx.Err()
			}
			select {
			case jobs <- rowJob{row: i, out: out}:
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		return nil
	})

	for n := 0; n < workers; n++ {
		g.Go(func() error {
			for job := range jobs {
				// out is buffered for exactly one result; never blocks.
				job.out <- renderRow(mode, idx, d, leaves, labels, job.row)
			}

			return nil
		})
	}

	g.Go(func() error {
		for out := range ordered {
			select {
			case row := <-out:
				if _, err := bw.Write(row); err != nil {
					return fmt.Errorf("%w: %v", ErrIO, err)
				}
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		return nil
	})

	// 4. Join, then flush what the buffer still holds.
	if err := g.Wait(); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}

	return nil
}

// writeHeader emits the empty first cell and the sorted labels.
func writeHeader(bw *bufio.Writer, labels []string) error {
	for _, lab := range labels {
		if err := bw.WriteByte('\t'); err != nil {
			return fmt.Errorf("%w: %v", ErrIO, err)
		}
		if _, err := bw.WriteString(lab); err != nil {
			return fmt.Errorf("%w: %v", ErrIO, err)
		}
	}
	if err := bw.WriteByte('\n'); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}

	return nil
}

// renderRow formats one complete data row, label first, then N cells in
// header column order. Topological cells print as integers, the other
// modes as fixed-point with fracDigits decimals.
func renderRow(mode distance.Mode, idx *lca.Index, d *phylo.DepthTable,
	leaves []int, labels []string, row int) []byte {
	// Label + N cells of ~8 bytes is a fair starting size.
	buf := make([]byte, 0, len(labels[row])+8*len(leaves)+2)
	buf = append(buf, labels[row]...)

	i := leaves[row]
	for _, j := range leaves {
		buf = append(buf, '\t')
		if mode == distance.Topological {
			buf = strconv.AppendInt(buf, int64(distance.Steps(idx, d, i, j)), 10)

			continue
		}
		buf = strconv.AppendFloat(buf, distance.Between(mode, idx, d, i, j), 'f', fracDigits, 64)
	}

	return append(buf, '\n')
}
