package station_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/queueing/station"
)

func TestMMC_Validation(t *testing.T) {
	_, err := station.NewMMC(1, 1, 0)
	require.ErrorIs(t, err, station.ErrBadServers)

	_, err = station.NewMMC(0, 1, 2)
	require.ErrorIs(t, err, station.ErrNonPositiveRate)

	// λ = c·μ: saturated.
	_, err = station.NewMMC(4, 2, 2)
	require.ErrorIs(t, err, station.ErrSaturated)
}

// TestMMC_KnownValues checks the classic M/M/2 example λ=3, μ=2:
// a=1.5, ρ=0.75, P0=1/7, Erlang-C=4.5/7, Lq=13.5/7.
func TestMMC_KnownValues(t *testing.T) {
	m, err := station.NewMMC(3, 2, 2)
	require.NoError(t, err)

	require.InDelta(t, 1.0/7.0, m.Pn(0), eps)
	require.InDelta(t, 1.5/7.0, m.Pn(1), eps)        // a¹/1!·P0
	require.InDelta(t, 2.25/(2*7.0), m.Pn(2), eps)   // a²/2!·P0
	require.InDelta(t, 0.75, m.Rho(), eps)
	require.InDelta(t, 13.5/7.0, m.Lq(), eps)
	require.InDelta(t, 13.5/7.0+1.5, m.L(), eps)
	require.InDelta(t, 1-4.5/7.0, m.FWq(0), eps) // atom: free server found

	// Little's law.
	require.InDelta(t, m.L(), 3*m.W(), eps)
	require.InDelta(t, m.Lq(), 3*m.Wq(), eps)

	// Mass sums to 1 over the truncated support.
	var sum float64
	for n := 0; n <= 150; n++ {
		sum += m.Pn(n)
	}
	require.InDelta(t, 1.0, sum, eps)
}

// TestMMC_SingleServerMatchesMM1 pins the c=1 specialization to the closed
// forms of M/M/1 across occupancy, aggregates and both wait CDFs.
func TestMMC_SingleServerMatchesMM1(t *testing.T) {
	mm1, err := station.NewMM1(3, 5)
	require.NoError(t, err)
	mmc, err := station.NewMMC(3, 5, 1)
	require.NoError(t, err)

	for n := 0; n <= 20; n++ {
		require.InDelta(t, mm1.Pn(n), mmc.Pn(n), eps, "Pn(%d)", n)
	}
	require.InDelta(t, mm1.L(), mmc.L(), eps)
	require.InDelta(t, mm1.Lq(), mmc.Lq(), eps)
	require.InDelta(t, mm1.W(), mmc.W(), eps)
	require.InDelta(t, mm1.Wq(), mmc.Wq(), eps)
	for _, tt := range []float64{0, 0.25, 1, 3} {
		require.InDelta(t, mm1.FW(tt), mmc.FW(tt), eps, "FW(%v)", tt)
		require.InDelta(t, mm1.FWq(tt), mmc.FWq(tt), eps, "FWq(%v)", tt)
	}
}

func TestMMC_WaitCDFShape(t *testing.T) {
	m, err := station.NewMMC(3, 2, 2)
	require.NoError(t, err)

	require.Zero(t, m.FW(-0.5))
	require.Zero(t, m.FW(0))
	require.InDelta(t, 1.0, m.FW(200), eps)
	require.InDelta(t, 1.0, m.FWq(200), eps)

	// Monotone non-decreasing CDFs.
	prevW, prevWq := 0.0, 0.0
	for _, tt := range []float64{0.1, 0.2, 0.5, 1, 2, 4, 8} {
		require.GreaterOrEqual(t, m.FW(tt), prevW)
		require.GreaterOrEqual(t, m.FWq(tt), prevWq)
		prevW, prevWq = m.FW(tt), m.FWq(tt)
	}

	// The a = c−1 removable singularity: λ=2, μ=2, c=2 → a=1=c−1.
	edge, err := station.NewMMC(2, 2, 2)
	require.NoError(t, err)
	require.Zero(t, edge.FW(0))
	require.InDelta(t, 1.0, edge.FW(100), eps)
	require.Greater(t, edge.FW(1), edge.FW(0.5))
}

func TestMMInf_PoissonOccupancy(t *testing.T) {
	m, err := station.NewMMInf(4, 2) // a = 2
	require.NoError(t, err)

	var sum float64
	for n := 0; n <= 40; n++ {
		want := math.Exp(-2) * math.Pow(2, float64(n)) / factorial(n)
		require.InDelta(t, want, m.Pn(n), eps, "Pn(%d)", n)
		sum += m.Pn(n)
	}
	require.InDelta(t, 1.0, sum, eps)

	require.InDelta(t, 2.0, m.L(), eps)
	require.Zero(t, m.Lq())
	require.InDelta(t, 0.5, m.W(), eps)
	require.Zero(t, m.Wq())
	require.Zero(t, m.Rho())

	// Nobody ever queues: FWq is the unit step at 0.
	require.Zero(t, m.FWq(-1))
	require.Equal(t, 1.0, m.FWq(0))
	// The sojourn is the service itself.
	require.InDelta(t, 1-math.Exp(-2*1.5), m.FW(1.5), eps)
}

func factorial(n int) float64 {
	f := 1.0
	for k := 2; k <= n; k++ {
		f *= float64(k)
	}

	return f
}
