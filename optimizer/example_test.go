package optimizer_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/passivetree/optimizer"
	"github.com/katalvlaran/passivetree/tree"
)

func ExampleOptimize() {
	ten := 10.0
	g, err := tree.Build(&tree.Definition{Nodes: []tree.NodeDef{
		{ID: "S", StartFor: []string{"Witch"}, Edges: []string{"A"}},
		{ID: "A", Stats: []string{"10% increased Damage"}, Offense: &ten, Edges: []string{"B"}},
		{ID: "B", Stats: []string{"10% increased Damage"}, Offense: &ten},
	}})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := optimizer.Optimize(context.Background(), g, optimizer.NewConfig("Witch", 1, 1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("start:", res.StartNode)
	for _, n := range res.AllocatedNodes {
		fmt.Printf("%s %s %.1f\n", n.Node.ID, n.Node.Kind, n.Score)
	}
	fmt.Println("points:", res.TotalPoints, "efficiency:", res.Efficiency)
	// Output:
	// start: S
	// A small 10.0
	// S travel 0.0
	// points: 1 efficiency: 100
}
