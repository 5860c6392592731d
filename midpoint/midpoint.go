package midpoint

import "github.com/distree/distree/phylo"

// Diameter locates a longest weighted leaf-to-leaf path with the
// two-pass technique: from any leaf, find the farthest leaf a; from a,
// find the farthest leaf b. The a↔b path is a diameter of length D.
// Ties break by traversal order; D is invariant under the tie-break.
//
// Complexity: O(M) time and memory.
func Diameter(t *phylo.Tree) (a, b int, length float64, err error) {
	if t == nil {
		return 0, 0, 0, ErrNilTree
	}
	if t.LeafCount() < 2 {
		return 0, 0, 0, ErrNoDiameter
	}

	a, _, _ = farthestFrom(t, t.Leaves()[0])
	b, length, _ = farthestFrom(t, a)

	return a, b, length, nil
}

// Reroot relocates t's root to the midpoint of the diameter, mutating
// the arena in place. If the midpoint sits exactly on an internal node
// that node is promoted; otherwise the containing edge is split by a
// fresh node whose two sides sum to the original edge length. Every
// parent link on the old-root→new-root path is then re-oriented.
//
// Depth and LCA caches built from t beforehand are stale afterwards.
func Reroot(t *phylo.Tree) error {
	if t == nil {
		return ErrNilTree
	}
	if t.LeafCount() < 2 {
		return ErrNoDiameter
	}

	// 1. Diameter endpoints and length (second pass keeps the trace).
	a, _, _ := farthestFrom(t, t.Leaves()[0])
	b, total, trace := farthestFrom(t, a)

	// 2. Reconstruct the b→a path from the trace.
	path := make([]int, 0, 8)
	for cur := b; ; cur = trace[cur] {
		path = append(path, cur)
		if cur == a {
			break
		}
	}
	if len(path) < 2 {
		// Both passes landed on the same leaf: every path has zero
		// length, so the current root already sits at a midpoint.
		return nil
	}

	// 3. Walk from b until the running length first reaches D/2.
	// The last edge is forced so floating drift between the two
	// summations cannot leave the loop without a decision.
	half := total / 2
	accum := 0.0
	for i := 0; i+1 < len(path); i++ {
		u, v := path[i], path[i+1]
		el := edgeLength(t, u, v)
		if accum+el < half && i+2 < len(path) {
			accum += el

			continue
		}

		// 4. Promote an exact on-node midpoint, else split the edge.
		// Clamping absorbs floating drift between the diameter sum and
		// this walk's partial sums.
		into := half - accum // distance from u toward v
		if into < 0 {
			into = 0
		}
		if into > el {
			into = el
		}
		var newRoot int
		switch {
		case into == 0 && !t.IsLeaf(u):
			newRoot = u
		case into == el && !t.IsLeaf(v):
			newRoot = v
		default:
			newRoot = splitEdge(t, u, v, into)
		}
		rerootAt(t, newRoot)
		t.RefreshLeaves()

		return nil
	}

	return ErrNoDiameter // unreachable with >= 2 leaves
}

// farthestFrom runs an undirected traversal from start, accumulating
// weighted distance over both child and parent edges. It returns the
// first leaf found at maximum distance, that distance, and a trace
// mapping every visited node to its predecessor on the path from start.
func farthestFrom(t *phylo.Tree, start int) (leaf int, dist float64, trace []int) {
	n := t.Len()
	trace = make([]int, n)
	for i := range trace {
		trace[i] = phylo.None
	}
	visited := make([]bool, n)

	type item struct {
		node int
		dist float64
	}
	stack := make([]item, 0, n)
	stack = append(stack, item{start, 0})
	visited[start] = true
	leaf, dist = start, -1

	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// Only labeled childless nodes are taxa; a stranded unary old
		// root must never become a diameter endpoint.
		if len(t.Nodes[it.node].Children) == 0 && t.Nodes[it.node].Label != "" && it.dist > dist {
			leaf, dist = it.node, it.dist
		}
		if p := t.Nodes[it.node].Parent; p != phylo.None && !visited[p] {
			visited[p] = true
			trace[p] = it.node
			stack = append(stack, item{p, it.dist + t.Nodes[it.node].Length})
		}
		for _, c := range t.Nodes[it.node].Children {
			if !visited[c] {
				visited[c] = true
				trace[c] = it.node
				stack = append(stack, item{c, it.dist + t.Nodes[c].Length})
			}
		}
	}

	return leaf, dist, trace
}

// edgeLength returns the weight of the tree edge between adjacent nodes
// u and v, regardless of which one is the parent.
func edgeLength(t *phylo.Tree, u, v int) float64 {
	if t.Nodes[v].Parent == u {
		return t.Nodes[v].Length
	}

	return t.Nodes[u].Length
}

// splitEdge inserts a fresh node on the edge between adjacent u and v,
// at weighted distance into from u, and returns its arena index. The
// two new branch lengths sum to the original edge length.
func splitEdge(t *phylo.Tree, u, v int, into float64) int {
	// Orient the edge: exactly one of u, v is the other's parent.
	par, chi := u, v
	if t.Nodes[u].Parent == v {
		par, chi = v, u
	}
	el := t.Nodes[chi].Length
	fromPar := into
	if par != u {
		fromPar = el - into
	}

	m := len(t.Nodes)
	t.Nodes = append(t.Nodes, phylo.Node{
		Parent:   par,
		Length:   fromPar,
		Children: []int{chi},
	})
	for i, c := range t.Nodes[par].Children {
		if c == chi {
			t.Nodes[par].Children[i] = m

			break
		}
	}
	t.Nodes[chi].Parent = m
	t.Nodes[chi].Length = el - fromPar

	return m
}

// rerootAt re-orients every parent link on the path from the current
// root down to r, so r ends up parentless and all former ancestors
// point toward it. Branch lengths travel with their edges.
func rerootAt(t *phylo.Tree, r int) {
	if r == t.Root {
		return
	}

	// Snapshot the r→root chain with the original child→parent lengths;
	// flipping in place would clobber the links still to be read.
	chain := []int{r}
	lens := make([]float64, 0, 8)
	for cur := r; t.Nodes[cur].Parent != phylo.None; {
		p := t.Nodes[cur].Parent
		lens = append(lens, t.Nodes[cur].Length)
		chain = append(chain, p)
		cur = p
	}

	for i := 0; i+1 < len(chain); i++ {
		c, p := chain[i], chain[i+1]
		kids := t.Nodes[p].Children
		for j, k := range kids {
			if k == c {
				t.Nodes[p].Children = append(kids[:j], kids[j+1:]...)

				break
			}
		}
		t.Nodes[c].Children = append(t.Nodes[c].Children, p)
		t.Nodes[p].Parent = c
		t.Nodes[p].Length = lens[i]
	}

	t.Nodes[r].Parent = phylo.None
	t.Nodes[r].Length = 0
	t.Root = r
}
