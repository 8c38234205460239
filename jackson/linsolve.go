package jackson

// solveSquare solves A·x = b for a dense square system held as a flat
// row-major slice (a[i*n+j]), using Doolittle LU factorization without
// pivoting followed by forward/backward substitution.
//
// Implementation:
//   - Stage 1: Factor A = L·U in place over fresh flat buffers; L carries a
//     unit diagonal. Fixed i→{j≥i} order for U rows, then {j>i}→i for L
//     columns.
//   - Stage 2: Forward solve L·y = b (top-down), backward solve U·x = y
//     (bottom-up) with a zero-pivot guard at each diagonal read.
//
// No pivoting is intentional: the traffic systems this package builds are
// diagonally dominant for any substochastic routing matrix, and skipping
// pivoting keeps the solve bit-for-bit reproducible across runs.
//
// Errors:
//   - ErrUnstableTopology — zero pivot: the system is singular, which for
//     (I−Pᵀ) means the routing implies unbounded recirculation.
//
// Determinism: fixed traversal orders, no data-dependent reordering.
// Complexity: Time O(n³), Space O(n²) for the factors.
func solveSquare(a []float64, n int, b []float64) ([]float64, error) {
	lower := make([]float64, n*n)
	upper := make([]float64, n*n)

	var i, j, k, base int
	var sum, pivot float64

	// Unit diagonal on L.
	for i = 0; i < n; i++ {
		lower[i*n+i] = 1.0
	}

	// Doolittle factorization.
	for i = 0; i < n; i++ {
		base = i * n
		// Row i of U for j >= i.
		for j = i; j < n; j++ {
			sum = 0
			for k = 0; k < i; k++ {
				sum += lower[base+k] * upper[k*n+j]
			}
			upper[base+j] = a[base+j] - sum
		}

		// Zero-pivot guard (deterministic singularity detection).
		pivot = upper[base+i]
		if pivot == 0 {
			return nil, ErrUnstableTopology
		}

		// Column i of L for j > i.
		for j = i + 1; j < n; j++ {
			sum = 0
			for k = 0; k < i; k++ {
				sum += lower[j*n+k] * upper[k*n+i]
			}
			lower[j*n+i] = (a[j*n+i] - sum) / pivot
		}
	}

	// Forward substitution: L·y = b.
	y := make([]float64, n)
	for i = 0; i < n; i++ {
		sum = 0
		base = i * n
		for k = 0; k < i; k++ {
			sum += lower[base+k] * y[k]
		}
		y[i] = b[i] - sum
	}

	// Backward substitution: U·x = y.
	x := make([]float64, n)
	for i = n - 1; i >= 0; i-- {
		sum = 0
		base = i * n
		for k = i + 1; k < n; k++ {
			sum += upper[base+k] * x[k]
		}
		pivot = upper[base+i]
		if pivot == 0 {
			return nil, ErrUnstableTopology
		}
		x[i] = (y[i] - sum) / pivot
	}

	return x, nil
}
