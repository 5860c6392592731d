package distance_test

import (
	"fmt"

	"github.com/distree/distree/distance"
)

// ExampleModeOf demonstrates the flag-resolution precedence.
func ExampleModeOf() {
	fmt.Println(distance.ModeOf(false, false))
	fmt.Println(distance.ModeOf(false, true))
	fmt.Println(distance.ModeOf(true, true))
	// Output:
	// patristic
	// topological
	// lmm
}
