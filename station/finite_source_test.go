package station_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/queueing/station"
)

func TestFiniteSource_Validation(t *testing.T) {
	_, err := station.NewMM1H(1, 2, 0)
	require.ErrorIs(t, err, station.ErrBadPopulation)

	_, err = station.NewMMCHY(1, 2, 2, 3, -1)
	require.ErrorIs(t, err, station.ErrBadPopulation)

	_, err = station.NewMMCH(1, 2, 0, 3)
	require.ErrorIs(t, err, station.ErrBadServers)

	_, err = station.NewMM1H(0, 2, 3)
	require.ErrorIs(t, err, station.ErrNonPositiveRate)
}

// TestMM1H_ClosedForm checks the machine-repair chain against the direct
// product form Pn = P0 · H!/(H−n)! · (λ/μ)ⁿ for H=3, λ=1, μ=2.
func TestMM1H_ClosedForm(t *testing.T) {
	m, err := station.NewMM1H(1, 2, 3)
	require.NoError(t, err)

	// Unnormalized weights: w(n) = H!/(H−n)!·(1/2)ⁿ → 1, 3/2, 3/2, 3/4.
	weights := []float64{1, 1.5, 1.5, 0.75}
	var norm float64
	for _, w := range weights {
		norm += w
	}
	var sum float64
	for n := 0; n <= 3; n++ {
		require.InDelta(t, weights[n]/norm, m.Pn(n), eps, "Pn(%d)", n)
		sum += m.Pn(n)
	}
	require.InDelta(t, 1.0, sum, eps)
	require.Zero(t, m.Pn(4))
	require.Equal(t, 3.0, m.MaxCustomers())
}

// TestFiniteSource_QnDiffersFromPn: the arrival rate is state-dependent, so
// the arriving-failure view over-samples lightly loaded states.
func TestFiniteSource_QnDiffersFromPn(t *testing.T) {
	m, err := station.NewMM1H(1, 2, 3)
	require.NoError(t, err)

	// Qn(n) ∝ (H−n)·Pn(n) with H = 3.
	var norm float64
	for n := 0; n < 3; n++ {
		norm += float64(3-n) * m.Pn(n)
	}
	var qsum float64
	for n := 0; n < 3; n++ {
		require.InDelta(t, float64(3-n)*m.Pn(n)/norm, m.Qn(n), eps, "Qn(%d)", n)
		qsum += m.Qn(n)
	}
	require.InDelta(t, 1.0, qsum, eps)
	require.Zero(t, m.Qn(3)) // no operating source left to fail
	require.Greater(t, math.Abs(m.Pn(0)-m.Qn(0)), 1e-3)
}

// TestFiniteSource_ThroughputBalance: the failure inflow Σ a(n)Pn must equal
// the repair outflow Σ min(n,c)·μ·Pn.
func TestFiniteSource_ThroughputBalance(t *testing.T) {
	m, err := station.NewMMCHY(0.5, 2, 2, 4, 1)
	require.NoError(t, err)

	var outflow float64
	for n := 1; n <= 5; n++ { // support is 0..H+Y = 0..5
		busy := n
		if busy > 2 {
			busy = 2
		}
		outflow += float64(busy) * 2 * m.Pn(n)
	}
	require.InDelta(t, outflow, m.Throughput(), eps)
	require.InDelta(t, m.Throughput()/(2*2), m.Rho(), eps)

	// Little's law over the failure flow.
	require.InDelta(t, m.L(), m.Throughput()*m.W(), eps)
	require.InDelta(t, m.Lq(), m.Throughput()*m.Wq(), eps)
}

func TestFiniteSource_SparesExtendSupport(t *testing.T) {
	plain, err := station.NewMMCH(1, 3, 2, 4)
	require.NoError(t, err)
	spared, err := station.NewMMCHY(1, 3, 2, 4, 2)
	require.NoError(t, err)

	require.Equal(t, 4.0, plain.MaxCustomers())
	require.Equal(t, 6.0, spared.MaxCustomers())

	var sum float64
	for n := 0; n <= 6; n++ {
		sum += spared.Pn(n)
	}
	require.InDelta(t, 1.0, sum, eps)
}

func TestFiniteSource_WaitCDFs(t *testing.T) {
	m, err := station.NewMMCH(1, 2, 2, 5)
	require.NoError(t, err)

	require.InDelta(t, m.Qn(0)+m.Qn(1), m.FWq(0), eps)
	require.Zero(t, m.FW(0))
	require.InDelta(t, 1.0, m.FW(500), eps)
	require.InDelta(t, 1.0, m.FWq(500), eps)
	for _, tt := range []float64{0.2, 1, 2} {
		require.LessOrEqual(t, m.FW(tt), m.FWq(tt)+eps)
	}
}
