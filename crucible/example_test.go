// Package crucible_test provides examples of the run-bounded search.
// Each example is runnable via “go test -run Example”.
package crucible_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/crucible/costgrid"
	"github.com/katalvlaran/crucible/crucible"
)

// ExampleSearch computes the classic (1..3) and ultra (4..10) answers for the
// 13×13 reference map.
func ExampleSearch() {
	g, err := costgrid.ParseString(referenceGrid)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, b := range [][2]int{{1, 3}, {4, 10}} {
		res, err := crucible.Search(g, crucible.WithRunBounds(b[0], b[1]))
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("runs %d..%d: %d\n", b[0], b[1], res.Cost)
	}
	// Output:
	// runs 1..3: 102
	// runs 4..10: 94
}

// ExampleSearch_path shows path reconstruction on a tiny map where the
// cheap cells form an L.
func ExampleSearch_path() {
	g, _ := costgrid.ParseString("115\n991\n991\n")

	res, err := crucible.Search(g, crucible.WithRunBounds(1, 3), crucible.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("cost:", res.Cost)
	fmt.Println("path:", res.Path)
	// Output:
	// cost: 8
	// path: [(0,0) (1,0) (2,0) (2,1) (2,2)]
}

// ExampleSearch_unreachable shows the typed failure for bounds the map
// cannot satisfy.
func ExampleSearch_unreachable() {
	g, _ := costgrid.ParseString("12\n34\n")

	_, err := crucible.Search(g, crucible.WithRunBounds(4, 10))
	fmt.Println(errors.Is(err, crucible.ErrUnreachableGoal))
	// Output: true
}
