package jackson_test

import (
	"fmt"

	"github.com/katalvlaran/queueing/jackson"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleNewOpen
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A two-stage pipeline: requests arrive at a gateway (γ₁ = 1), half of
//	them continue to a worker node, the rest leave. Both nodes serve at
//	μ = 2 with a single server.
//
// The traffic solve yields λ = (1, 0.5), so the gateway runs at ρ = 0.5
// and the worker at ρ = 0.25.
func ExampleNewOpen() {
	specs := []jackson.NodeSpec{
		{Mu: 2, Servers: 1},
		{Mu: 2, Servers: 1},
	}
	routing := jackson.RoutingMatrix{
		{0, 0.5},
		{0, 0},
	}
	n, err := jackson.NewOpen(specs, routing, []float64{1, 0})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	l1, _ := n.Lambda(1)
	l2, _ := n.Lambda(2)
	fmt.Printf("lambda=(%.2f, %.2f)\n", l1, l2)
	fmt.Printf("L=%.4f W=%.4f\n", n.L(), n.W())
	// Output:
	// lambda=(1.00, 0.50)
	// L=1.3333 W=1.3333
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleNewClosed
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Two identical single-server stations pass N = 3 customers back and
//	forth. The weight tables are flat, so G = (1, 2, 3, 4), every marginal
//	is uniform, and the cycle rate is G(2)/G(3) = 0.75.
func ExampleNewClosed() {
	specs := []jackson.NodeSpec{
		{Mu: 1, Servers: 1},
		{Mu: 1, Servers: 1},
	}
	routing := jackson.RoutingMatrix{
		{0, 1},
		{1, 0},
	}
	c, err := jackson.NewClosed(specs, routing, 3)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	p1, _ := c.Pi([]int{0, 1, 2, 3}, 1)
	fmt.Printf("P1=%v\n", p1)
	fmt.Printf("throughput=%.2f\n", c.SystemThroughput())
	// Output:
	// P1=[0.25 0.25 0.25 0.25]
	// throughput=0.75
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleSolveTraffic
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A node that routes 30% of the flow it receives from node 2 back to
//	node 1 amplifies the external stream: λ₁ = λ₂ = 1/(1−0.3) = 10/7.
func ExampleSolveTraffic() {
	routing := jackson.RoutingMatrix{
		{0, 1},
		{0.3, 0},
	}
	lambda, err := jackson.SolveTraffic(routing, []float64{1, 0})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("lambda=(%.4f, %.4f)\n", lambda[0], lambda[1])
	// Output:
	// lambda=(1.4286, 1.4286)
}
