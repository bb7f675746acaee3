package traversal_test

import (
	"fmt"

	"github.com/aganezov/bg-sub000/core"
	"github.com/aganezov/bg-sub000/multicolor"
	"github.com/aganezov/bg-sub000/traversal"
	"github.com/aganezov/bg-sub000/vertex"
)

// ExampleBlocksOrder reconstructs the circular chromosome "a b" of a
// single-genome graph.
func ExampleBlocksOrder() {
	g := core.NewBreakpointGraph()
	ah, _ := vertex.NewBlockVertex("ah")
	at, _ := vertex.NewBlockVertex("at")
	bh, _ := vertex.NewBlockVertex("bh")
	bt, _ := vertex.NewBlockVertex("bt")
	_, _ = g.AddEdge(ah, bt, multicolor.New("red"), true)
	_, _ = g.AddEdge(bh, at, multicolor.New("red"), true)

	chromosomes, _ := traversal.BlocksOrder(g, "red")
	for _, chr := range chromosomes {
		fmt.Println(chr.Topology, chr.Blocks)
	}
	// Output:
	// circular [-a -b]
}
