package phylo

// BuildDepths computes the DepthTable for t in one iterative traversal
// from the root. The table is valid until the next structural mutation.
//
// Complexity: O(M) time and memory, M = node count.
func BuildDepths(t *Tree) *DepthTable {
	n := len(t.Nodes)
	d := &DepthTable{
		Topo:     make([]int, n),
		Weighted: make([]float64, n),
	}
	if n == 0 {
		return d
	}

	// Iterative preorder walk; children inherit parent depths plus their
	// own branch length / one edge.
	stack := make([]int, 0, n)
	stack = append(stack, t.Root)
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, v := range t.Nodes[u].Children {
			d.Topo[v] = d.Topo[u] + 1
			d.Weighted[v] = d.Weighted[u] + t.Nodes[v].Length
			stack = append(stack, v)
		}
	}

	return d
}
