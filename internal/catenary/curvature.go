package catenary

import (
	"math"
	"sort"
)

// flatCurvature is the threshold below which the sampled path is treated as
// perfectly straight.
const flatCurvature = 1e-12

// gradient returns finite-difference derivatives with respect to sample
// index: central differences in the interior, one-sided at the endpoints.
func gradient(vals []float64) []float64 {
	n := len(vals)
	g := make([]float64, n)
	if n < 2 {
		return g
	}
	g[0] = vals[1] - vals[0]
	g[n-1] = vals[n-1] - vals[n-2]
	for i := 1; i < n-1; i++ {
		g[i] = 0.5 * (vals[i+1] - vals[i-1])
	}
	return g
}

// percentile returns the p-th percentile of vals (0-100) with linear
// interpolation between order statistics.
func percentile(vals []float64, p float64) float64 {
	n := len(vals)
	if n == 0 {
		return 0
	}
	sorted := make([]float64, n)
	copy(sorted, vals)
	sort.Float64s(sorted)

	if p <= 0 {
		return sorted[0]
	}
	if p >= 100 {
		return sorted[n-1]
	}
	pos := p / 100 * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

// minBendRadius computes the minimum radius of curvature over the sampled
// polyline, in metres, +Inf for a straight path. Curvature values are
// clipped at the given percentile before taking the maximum so that a single
// point-load kink (a model artifact, not a physical bend) cannot dominate.
// A configured chute radius is always a candidate minimum.
func minBendRadius(x, y []float64, clipPercentile, chuteRadius float64) float64 {
	r := math.Inf(1)

	if len(x) >= 3 && len(x) == len(y) {
		dx := gradient(x)
		dy := gradient(y)
		ddx := gradient(dx)
		ddy := gradient(dy)

		kappa := make([]float64, len(x))
		for i := range kappa {
			denom := math.Pow(dx[i]*dx[i]+dy[i]*dy[i], 1.5)
			if denom > 0 {
				kappa[i] = math.Abs(dx[i]*ddy[i]-dy[i]*ddx[i]) / denom
			}
		}

		clip := percentile(kappa, clipPercentile)
		maxKappa := 0.0
		for _, k := range kappa {
			if k > clip {
				k = clip
			}
			if k > maxKappa {
				maxKappa = k
			}
		}
		if maxKappa > flatCurvature {
			r = 1 / maxKappa
		}
	}

	if chuteRadius > 0 && chuteRadius < r {
		r = chuteRadius
	}
	return r
}
