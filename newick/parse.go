package newick

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/distree/distree/phylo"
)

// Structural bytes of the grammar.
const (
	terminal   = ';'
	descStart  = '('
	descEnd    = ')'
	descDelim  = ','
	lengthMark = ':'
)

// parser carries the cursor state for one Parse call.
type parser struct {
	in   string              // full input text
	pos  int                 // current byte offset
	tree *phylo.Tree         // arena under construction
	seen map[string]struct{} // leaf labels, for duplicate detection
}

// Read slurps r and parses its contents as a single Newick tree.
// Read failures are reported as-is (an IOError class, not ErrParse).
func Read(r io.Reader) (*phylo.Tree, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("newick: read input: %w", err)
	}

	return Parse(string(data))
}

// Parse consumes exactly one Newick tree and returns the built arena
// with its leaf registry refreshed. See package doc for the grammar and
// the error taxonomy; every failure carries the byte offset of the
// offending input.
func Parse(s string) (*phylo.Tree, error) {
	p := &parser{in: s, tree: phylo.NewTree(), seen: make(map[string]struct{})}

	// 1. Parse the outermost subtree.
	p.skipSpace()
	if p.eof() {
		return nil, p.errAt(ErrMissingTerminal)
	}
	if err := p.subtree(phylo.None); err != nil {
		return nil, err
	}

	// 2. Demand the ';' terminator.
	p.skipSpace()
	switch {
	case p.eof():
		return nil, p.errAt(ErrMissingTerminal)
	case p.in[p.pos] == terminal:
		p.pos++
	case p.in[p.pos] == descEnd:
		return nil, p.errAt(ErrUnbalanced)
	default:
		return nil, p.errAt(ErrBadLabelChar)
	}

	// 3. Nothing but whitespace may follow.
	p.skipSpace()
	if !p.eof() {
		return nil, p.errAt(ErrTrailingData)
	}

	// 4. Freeze the leaf registry and enforce the pair minimum.
	p.tree.RefreshLeaves()
	if p.tree.LeafCount() < 2 {
		return nil, fmt.Errorf("%w (found %d)", ErrTooFewLeaves, p.tree.LeafCount())
	}

	return p.tree, nil
}

// subtree dispatches on the next significant byte: '(' opens an internal
// node's descendant list, anything else must be a leaf label.
func (p *parser) subtree(parent int) error {
	p.skipSpace()
	if !p.eof() && p.in[p.pos] == descStart {
		return p.internal(parent)
	}

	return p.leaf(parent)
}

// internal parses '(' subtree (',' subtree)* ')' [label] [':' number].
func (p *parser) internal(parent int) error {
	open := p.pos
	p.pos++ // consume '('
	id := p.tree.Add(parent, "", 0)

list:
	for {
		if err := p.subtree(id); err != nil {
			return err
		}
		p.skipSpace()
		if p.eof() {
			return p.errFrom(open, ErrUnbalanced)
		}
		switch p.in[p.pos] {
		case descDelim:
			p.pos++
		case descEnd:
			p.pos++
			break list
		case terminal:
			return p.errFrom(open, ErrUnbalanced)
		default:
			return p.errAt(ErrBadLabelChar)
		}
	}

	// Optional internal label: retained on the node, never registered.
	p.skipSpace()
	if lbl := p.label(); lbl != "" {
		p.tree.Nodes[id].Label = lbl
	}

	length, err := p.maybeLength()
	if err != nil {
		return err
	}
	p.tree.Nodes[id].Length = length

	return nil
}

// leaf parses label [':' number] and registers the label.
func (p *parser) leaf(parent int) error {
	p.skipSpace()
	at := p.pos
	lbl := p.label()
	if lbl == "" {
		return p.errFrom(at, ErrEmptyLabel)
	}
	if _, dup := p.seen[lbl]; dup {
		return fmt.Errorf("%w %q (byte %d)", ErrDuplicateLabel, lbl, at)
	}
	p.seen[lbl] = struct{}{}

	id := p.tree.Add(parent, lbl, 0)
	length, err := p.maybeLength()
	if err != nil {
		return err
	}
	p.tree.Nodes[id].Length = length

	return nil
}

// label consumes a maximal run of non-structural, non-whitespace bytes.
func (p *parser) label() string {
	start := p.pos
	for p.pos < len(p.in) {
		c := p.in[p.pos]
		if isStructural(c) || isSpace(c) {
			break
		}
		p.pos++
	}

	return p.in[start:p.pos]
}

// maybeLength consumes an optional ':' number suffix. Omitted lengths
// default to 0; present lengths must parse as finite non-negative floats.
func (p *parser) maybeLength() (float64, error) {
	p.skipSpace()
	if p.eof() || p.in[p.pos] != lengthMark {
		return 0, nil
	}
	p.pos++ // consume ':'
	p.skipSpace()

	at := p.pos
	for p.pos < len(p.in) && isNumeric(p.in[p.pos]) {
		p.pos++
	}
	raw := p.in[at:p.pos]
	if raw == "" {
		return 0, p.errFrom(at, ErrBadLength)
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) || v < 0 {
		return 0, fmt.Errorf("%w %q (byte %d)", ErrBadLength, raw, at)
	}

	return v, nil
}

func (p *parser) skipSpace() {
	for p.pos < len(p.in) && isSpace(p.in[p.pos]) {
		p.pos++
	}
}

func (p *parser) eof() bool { return p.pos >= len(p.in) }

// errAt reports sentinel at the current cursor position.
func (p *parser) errAt(sentinel error) error { return p.errFrom(p.pos, sentinel) }

// errFrom reports sentinel at an explicit byte offset.
func (p *parser) errFrom(off int, sentinel error) error {
	return fmt.Errorf("%w (byte %d)", sentinel, off)
}

func isStructural(c byte) bool {
	return c == descStart || c == descEnd || c == descDelim || c == lengthMark || c == terminal
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isNumeric(c byte) bool {
	return (c >= '0' && c <= '9') || c == '.' || c == 'e' || c == 'E' || c == '+' || c == '-'
}
