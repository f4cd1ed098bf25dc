package costgrid_test

import (
	"fmt"

	"github.com/katalvlaran/crucible/costgrid"
)

// ExampleParse reads a small digit grid and inspects it.
func ExampleParse() {
	g, err := costgrid.ParseString("241\n321\n")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%dx%d goal=%s cost=%d\n", g.Width(), g.Height(), g.Goal(), g.Cost(g.Goal().X, g.Goal().Y))
	// Output: 3x2 goal=(2,1) cost=1
}
