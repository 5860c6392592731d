// Package newick_test contains unit tests for the Newick parser:
// happy-path structure, whitespace tolerance, internal labels, and the
// full error taxonomy with byte offsets.
package newick_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/distree/distree/newick"
	"github.com/distree/distree/phylo"
)

// TestParse_Caterpillar verifies arena shape and branch lengths for the
// canonical three-taxon tree.
func TestParse_Caterpillar(t *testing.T) {
	tr, err := newick.Parse("(A:1,(B:2,C:3):1);")
	require.NoError(t, err)

	require.Equal(t, 5, tr.Len())
	assert.Equal(t, []string{"A", "B", "C"}, tr.Labels())
	assert.Equal(t, phylo.None, tr.Nodes[tr.Root].Parent)

	// A hangs off the root with length 1; C carries length 3.
	a := tr.Leaves()[0]
	c := tr.Leaves()[2]
	assert.Equal(t, tr.Root, tr.Nodes[a].Parent)
	assert.Equal(t, 1.0, tr.Nodes[a].Length)
	assert.Equal(t, 3.0, tr.Nodes[c].Length)
}

// TestParse_WhitespaceBetweenTokens must be tolerated everywhere.
func TestParse_WhitespaceBetweenTokens(t *testing.T) {
	tr, err := newick.Parse(" ( A:1 ,\n\t( B:2 , C:3 ) : 1 ) ;\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, tr.Labels())
}

// TestParse_OmittedLengthsDefaultToZero covers the optional ':' suffix.
func TestParse_OmittedLengthsDefaultToZero(t *testing.T) {
	tr, err := newick.Parse("(A,B:2);")
	require.NoError(t, err)

	a := tr.Leaves()[0]
	assert.Equal(t, 0.0, tr.Nodes[a].Length)
}

// TestParse_InternalLabelRetainedNotRegistered: internal labels stay on
// the node but never enter the leaf registry, and may even repeat a
// leaf label without tripping duplicate detection.
func TestParse_InternalLabelRetainedNotRegistered(t *testing.T) {
	tr, err := newick.Parse("(A:1,B:2)A:5;")
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B"}, tr.Labels())
	assert.Equal(t, "A", tr.Nodes[tr.Root].Label)
	assert.Equal(t, 5.0, tr.Nodes[tr.Root].Length)
}

// TestParse_ScientificNotationLength accepts exponent forms.
func TestParse_ScientificNotationLength(t *testing.T) {
	tr, err := newick.Parse("(A:1e-2,B:2.5E1);")
	require.NoError(t, err)

	a := tr.Leaves()[0]
	b := tr.Leaves()[1]
	assert.InDelta(t, 0.01, tr.Nodes[a].Length, 1e-12)
	assert.InDelta(t, 25.0, tr.Nodes[b].Length, 1e-12)
}

// TestParse_Errors drives the whole sentinel taxonomy. Every failure
// must wrap ErrParse and report a byte offset.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
	}{
		{"unbalanced open", "(A:1,B:2", newick.ErrUnbalanced},
		{"semicolon inside list", "(A:1;B:2)", newick.ErrUnbalanced},
		{"extra close", "(A:1,B:2));", newick.ErrUnbalanced},
		{"missing terminal", "(A:1,B:2)", newick.ErrMissingTerminal},
		{"empty input", "   ", newick.ErrMissingTerminal},
		{"negative length", "(A:1,B:-2);", newick.ErrBadLength},
		{"non-numeric length", "(A:1,B:xyz);", newick.ErrBadLength},
		{"dangling colon", "(A:1,B:);", newick.ErrBadLength},
		{"empty leaf label", "(A:1,:2);", newick.ErrEmptyLabel},
		{"duplicate label", "(A:1,A:2);", newick.ErrDuplicateLabel},
		{"space inside label", "(A B,C);", newick.ErrBadLabelChar},
		{"single leaf", "A:1;", newick.ErrTooFewLeaves},
		{"no leaf pair in list", "(A:1);", newick.ErrTooFewLeaves},
		{"trailing data", "(A:1,B:2); junk", newick.ErrTrailingData},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := newick.Parse(tc.in)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, newick.ErrParse, "every failure wraps the umbrella sentinel")
		})
	}
}

// TestParse_ErrorCarriesOffset pins the reported byte position for one
// representative failure.
func TestParse_ErrorCarriesOffset(t *testing.T) {
	_, err := newick.Parse("(A:1,B:-2);")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "byte 7", "offset of the bad length literal")
}

// TestRead_DelegatesToParse exercises the io.Reader front door.
func TestRead_DelegatesToParse(t *testing.T) {
	tr, err := newick.Read(strings.NewReader("(A:1,(B:2,C:3):1);"))
	require.NoError(t, err)
	assert.Equal(t, 3, tr.LeafCount())
}
