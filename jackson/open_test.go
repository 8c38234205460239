package jackson_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/queueing/jackson"
	"github.com/katalvlaran/queueing/station"
)

// tandem builds the reference two-node open network: γ = (1, 0), node 1
// forwards half of its flow to node 2, both nodes serve at μ = 2 with a
// single server. Effective rates are λ = (1, 0.5), so ρ = (0.5, 0.25).
func tandem(t *testing.T) *jackson.OpenNetwork {
	t.Helper()
	specs := []jackson.NodeSpec{
		{Mu: 2, Servers: 1},
		{Mu: 2, Servers: 1},
	}
	p := jackson.RoutingMatrix{
		{0, 0.5},
		{0, 0},
	}
	n, err := jackson.NewOpen(specs, p, []float64{1, 0})
	require.NoError(t, err)

	return n
}

func TestNewOpen_SolvesTraffic(t *testing.T) {
	n := tandem(t)
	require.Equal(t, 2, n.Size())

	l1, err := n.Lambda(1)
	require.NoError(t, err)
	require.InDelta(t, 1.0, l1, eps)

	l2, err := n.Lambda(2)
	require.NoError(t, err)
	require.InDelta(t, 0.5, l2, eps)
}

// Each node behaves as an independent M/M/1 at its solved rate.
func TestOpenNetwork_NodeMarginals(t *testing.T) {
	n := tandem(t)

	m1, err := n.Node(1)
	require.NoError(t, err)
	require.InDelta(t, 0.5, m1.Rho(), eps)
	require.InDelta(t, 1.0, m1.L(), eps) // ρ/(1−ρ) at ρ=0.5

	m2, err := n.Node(2)
	require.NoError(t, err)
	require.InDelta(t, 0.25, m2.Rho(), eps)
	require.InDelta(t, 1.0/3.0, m2.L(), eps)
}

// The joint distribution is the product of the per-node geometrics.
func TestOpenNetwork_ProductForm(t *testing.T) {
	n := tandem(t)

	for _, tc := range []struct {
		occ  []int
		want float64
	}{
		{[]int{0, 0}, 0.5 * 0.75},
		{[]int{1, 0}, 0.5 * 0.5 * 0.75},
		{[]int{0, 2}, 0.5 * 0.75 * 0.25 * 0.25},
		{[]int{2, 1}, 0.5 * 0.25 * 0.75 * 0.25},
	} {
		got, err := n.Pn(tc.occ)
		require.NoError(t, err)
		require.InDelta(t, tc.want, got, eps)
	}
}

// Pi0 is the gateway-node marginal and carries (almost) unit mass.
func TestOpenNetwork_GatewayMarginal(t *testing.T) {
	n := tandem(t)

	require.InDelta(t, 0.5, n.Pi0(0), eps)
	require.InDelta(t, 0.25, n.Pi0(1), eps)

	var mass float64
	for k := 0; k < 64; k++ {
		mass += n.Pi0(k)
	}
	require.InDelta(t, 1.0, mass, 1e-12)

	p0, err := n.P0i(2)
	require.NoError(t, err)
	require.InDelta(t, 0.75, p0, eps)

	// Every node's marginal carries unit mass over its support.
	for i := 1; i <= n.Size(); i++ {
		m, merr := n.Node(i)
		require.NoError(t, merr)
		var total float64
		for k := 0; k < 64; k++ {
			total += m.Pn(k)
		}
		require.InDelta(t, 1.0, total, 1e-12)
	}
}

// Network aggregates: sums of node means, Little's law over Λ = Σγ.
func TestOpenNetwork_Aggregates(t *testing.T) {
	n := tandem(t)

	require.InDelta(t, 4.0/3.0, n.L(), eps) // 1 + 1/3
	require.InDelta(t, 4.0/3.0, n.W(), eps) // Λ = 1
	require.InDelta(t, n.Lq(), n.Wq(), eps)

	// Lq = Σ ρ²/(1−ρ) = 0.5 + 0.25²/0.75.
	require.InDelta(t, 0.5+0.25*0.25/0.75, n.Lq(), eps)
}

// An infinite-server node never saturates, whatever its inflow.
func TestNewOpen_InfiniteServerNode(t *testing.T) {
	specs := []jackson.NodeSpec{
		{Mu: 1, Servers: 2},
		{Mu: 0.001, Servers: jackson.InfServers},
	}
	p := jackson.RoutingMatrix{
		{0, 1},
		{0, 0},
	}
	n, err := jackson.NewOpen(specs, p, []float64{1, 0})
	require.NoError(t, err)

	m, err := n.Node(2)
	require.NoError(t, err)
	require.InDelta(t, 0.0, m.Rho(), eps)
	require.True(t, math.IsInf(m.MaxCustomers(), 1))
	require.InDelta(t, 1000.0, m.L(), 1e-6) // λ/μ offered load
}

// Saturation at any node is a construction-time error with the node index
// in the message and the station sentinel in the chain.
func TestNewOpen_SaturationPropagates(t *testing.T) {
	specs := []jackson.NodeSpec{
		{Mu: 2, Servers: 1},
		{Mu: 0.4, Servers: 1},
	}
	p := jackson.RoutingMatrix{
		{0, 0.5},
		{0, 0},
	}
	_, err := jackson.NewOpen(specs, p, []float64{1, 0})
	require.ErrorIs(t, err, station.ErrSaturated)
	require.Contains(t, err.Error(), "node 2")
}

func TestNewOpen_Validation(t *testing.T) {
	okP := jackson.RoutingMatrix{{0}}

	t.Run("spec count mismatch", func(t *testing.T) {
		_, err := jackson.NewOpen(nil, okP, []float64{1})
		require.ErrorIs(t, err, jackson.ErrNodeCountMismatch)
	})
	t.Run("finite capacity rejected", func(t *testing.T) {
		specs := []jackson.NodeSpec{{Mu: 1, Servers: 1, Capacity: 5}}
		_, err := jackson.NewOpen(specs, okP, []float64{0.5})
		require.ErrorIs(t, err, jackson.ErrCapacityUnsupported)
	})
	t.Run("bad servers", func(t *testing.T) {
		specs := []jackson.NodeSpec{{Mu: 1, Servers: 0}}
		_, err := jackson.NewOpen(specs, okP, []float64{0.5})
		require.ErrorIs(t, err, jackson.ErrBadServers)
	})
	t.Run("non-positive service rate", func(t *testing.T) {
		specs := []jackson.NodeSpec{{Mu: 0, Servers: 1}}
		_, err := jackson.NewOpen(specs, okP, []float64{0.5})
		require.ErrorIs(t, err, jackson.ErrNonPositiveRate)
	})
}

func TestOpenNetwork_IndexAndShapeErrors(t *testing.T) {
	n := tandem(t)

	for _, i := range []int{0, 3, -1} {
		_, err := n.Node(i)
		require.ErrorIs(t, err, jackson.ErrNodeIndex)
		_, err = n.Lambda(i)
		require.ErrorIs(t, err, jackson.ErrNodeIndex)
		_, err = n.P0i(i)
		require.ErrorIs(t, err, jackson.ErrNodeIndex)
	}

	_, err := n.Pn([]int{1})
	require.ErrorIs(t, err, jackson.ErrDimensionMismatch)
}
