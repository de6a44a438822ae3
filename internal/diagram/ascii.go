package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"
)

// ProfileData holds the solved cable profile and the scalars the diagrams
// annotate. Coordinates follow the solver convention: sea level at y = 0,
// seabed at y = -Depth, x positive from the touchdown point toward the ship.
type ProfileData struct {
	// Solved polyline (equal length slices)
	S []float64 // arc length from touchdown point (m)
	X []float64 // horizontal position (m)
	Y []float64 // elevation (m)

	Depth           float64 // water depth (m)
	ChuteRadius     float64 // m, 0 when no chute
	ChuteContactLen float64 // m
	FreeSpan        float64 // m
	Layback         float64 // m
	ExitAngleDeg    float64
	TopTensionKN    float64
	BottomTensionKN float64
	MinBendRadius   float64 // m

	SurfaceCrossingS float64
	Crossed          bool
}

// resampleY interpolates the profile elevation onto a uniform horizontal
// grid of n points, which is what a terminal plot needs.
func resampleY(x, y []float64, n int) []float64 {
	if len(x) < 2 || n < 2 {
		return y
	}
	out := make([]float64, n)
	x0, x1 := x[0], x[len(x)-1]
	j := 0
	for i := 0; i < n; i++ {
		xi := x0 + (x1-x0)*float64(i)/float64(n-1)
		for j < len(x)-2 && x[j+1] < xi {
			j++
		}
		span := x[j+1] - x[j]
		if span <= 0 {
			out[i] = y[j]
			continue
		}
		frac := (xi - x[j]) / span
		out[i] = y[j] + frac*(y[j+1]-y[j])
	}
	return out
}

// xAtArcLength interpolates the horizontal position at arc length target
// along the sampled profile.
func xAtArcLength(s, x []float64, target float64) float64 {
	if len(s) == 0 {
		return 0
	}
	for i := 1; i < len(s); i++ {
		if s[i] >= target {
			span := s[i] - s[i-1]
			if span <= 0 {
				return x[i]
			}
			frac := (target - s[i-1]) / span
			return x[i-1] + frac*(x[i]-x[i-1])
		}
	}
	return x[len(x)-1]
}

// DrawASCIIProfile renders the cable elevation profile as a terminal plot
// with a summary annotation block.
func DrawASCIIProfile(data ProfileData) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString("  CABLE PROFILE (elevation vs horizontal distance)\n")
	sb.WriteString("  ────────────────────────────────────────────────\n\n")

	if len(data.X) < 2 {
		sb.WriteString("  (profile too short to plot)\n")
		return sb.String()
	}

	series := resampleY(data.X, data.Y, 72)
	plot := asciigraph.Plot(series,
		asciigraph.Height(16),
		asciigraph.Width(72),
		asciigraph.Precision(1),
		asciigraph.Caption(fmt.Sprintf("x: 0 .. %.1f m (y in m, sea level = 0)", data.X[len(data.X)-1])),
	)
	for _, line := range strings.Split(plot, "\n") {
		sb.WriteString("  " + line + "\n")
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  TDP at (0.0, %.1f)  ·  departure at (%.1f, %.1f), %.1f° from horizontal\n",
		-data.Depth, data.X[len(data.X)-1], data.Y[len(data.Y)-1], data.ExitAngleDeg))
	if data.Crossed {
		sb.WriteString(fmt.Sprintf("  Sea surface crossed at s = %.1f m along the cable\n", data.SurfaceCrossingS))
	}
	if data.ChuteRadius > 0 {
		sb.WriteString(fmt.Sprintf("  Chute contact: %.2f m of a %.1f m radius quarter circle\n",
			data.ChuteContactLen, data.ChuteRadius))
	}
	if math.IsInf(data.MinBendRadius, 1) {
		sb.WriteString("  Minimum bend radius: straight (no measurable curvature)\n")
	} else {
		sb.WriteString(fmt.Sprintf("  Minimum bend radius: %.1f m\n", data.MinBendRadius))
	}

	return sb.String()
}
