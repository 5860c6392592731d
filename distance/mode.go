package distance

// Mode selects which of the three metrics a run computes.
// It is chosen once at startup and immutable for the run.
type Mode uint8

const (
	// Patristic sums branch lengths along the leaf-to-leaf path.
	Patristic Mode = iota

	// Topological counts edges along the leaf-to-leaf path.
	Topological

	// LMM emits the weighted depth of the pair's lowest common
	// ancestor (the var-covar matrix entry).
	LMM
)

// ModeOf resolves the CLI-style flag pair into a Mode:
// LMM wins over Topological; neither means Patristic.
func ModeOf(lmm, topology bool) Mode {
	switch {
	case lmm:
		return LMM
	case topology:
		return Topological
	default:
		return Patristic
	}
}

// String implements fmt.Stringer for diagnostics.
func (m Mode) String() string {
	switch m {
	case Patristic:
		return "patristic"
	case Topological:
		return "topological"
	case LMM:
		return "lmm"
	default:
		return "unknown"
	}
}
