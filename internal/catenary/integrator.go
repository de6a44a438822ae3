package catenary

import (
	"fmt"
	"math"
	"sort"
)

// mediumEps nudges y off the sea surface after a crossing split so the load
// lookup picks the correct medium on each side.
const mediumEps = 1e-9

// crossingEndTol suppresses crossing reports this close to the span end: a
// departure point converged onto sea level overshoots it by the span root
// tolerance, and that overshoot is not a surface transit.
const crossingEndTol = 1e-2

// integState is the cable state advanced along arc length from the
// touchdown point: position (x, y) and the vertical tension component v (N).
// It is a plain value threaded through the stepping loop.
type integState struct {
	s, x, y, v float64
}

// integResult is the end state and sampled polyline of one integration pass
// over the free span.
type integResult struct {
	S, X, Y []float64

	XEnd, YEnd, VEnd float64
	ExitAngle        float64 // radians from horizontal
	TopTension       float64 // N

	SurfaceCrossingS float64
	Crossed          bool
}

// event is an arc-length location the stepping loop must land on exactly:
// a point load application and/or a discontinuity in the distributed load.
type event struct {
	s    float64
	load float64 // N, added to V when the event is crossed
}

// loadAt returns the effective distributed load (N/m) at arc position s
// from the touchdown point, for the medium selected by the sign of y.
func loadAt(cfg *Config, freeSpan, chuteContact, s, y float64) float64 {
	inWater := y < 0

	if len(cfg.Assembly) > 0 {
		// Assembly positions are measured from the chute top, through the
		// contact arc and down the free span.
		// d decreases as s advances, so a step starting exactly on a
		// segment boundary (d == cum) runs inside that segment.
		d := freeSpan + chuteContact - s
		cum := 0.0
		for _, item := range cfg.Assembly {
			if item.Kind != "segment" {
				continue
			}
			cum += item.Length
			if d <= cum {
				if inWater {
					return item.QWater
				}
				return item.QAir
			}
		}
		// Past the end of the assembly: base cable.
	}

	q := cfg.QAir
	if inWater {
		q = cfg.QWater
	}
	for _, comp := range cfg.Components {
		if s >= comp.Position && s < comp.Position+comp.Length {
			if inWater {
				q += comp.DeltaQWater
			} else {
				q += comp.DeltaQAir
			}
		}
	}
	return q
}

// buildEvents collects point-load and load-discontinuity positions within
// [0, freeSpan), sorted ascending, with events closer than 0.25 ds merged
// (point loads summed).
func buildEvents(cfg *Config, freeSpan, chuteContact, dsEff float64) []event {
	var raw []event

	add := func(s, load float64) {
		if s >= 0 && s < freeSpan {
			raw = append(raw, event{s: s, load: load})
		}
	}

	if len(cfg.Assembly) > 0 {
		cum := 0.0
		for _, item := range cfg.Assembly {
			switch item.Kind {
			case "segment":
				cum += item.Length
				add(freeSpan+chuteContact-cum, 0)
			case "body":
				add(freeSpan+chuteContact-cum, item.PointLoadKN*1000)
			}
		}
	}
	for _, comp := range cfg.Components {
		add(comp.Position, comp.PointLoadKN*1000)
		if comp.Length > 0 {
			add(comp.Position+comp.Length, 0)
		}
	}

	if len(raw) == 0 {
		return nil
	}
	sort.Slice(raw, func(i, j int) bool { return raw[i].s < raw[j].s })

	tol := 0.25 * dsEff
	merged := raw[:1]
	for _, ev := range raw[1:] {
		last := &merged[len(merged)-1]
		if ev.s-last.s < tol {
			last.load += ev.load
		} else {
			merged = append(merged, ev)
		}
	}
	return merged
}

// integrate advances the cable shape from the touchdown point (s=0, x=0,
// y=-Depth, V=0) over freeSpan metres of arc length at horizontal tension H,
// using a midpoint (second order Runge-Kutta) step. The loop lands exactly
// on every event boundary and splits steps at sea-surface crossings.
func integrate(cfg *Config, H, freeSpan, chuteContact float64) (*integResult, error) {
	if H <= 0 || math.IsNaN(H) {
		return nil, fmt.Errorf("%w: horizontal tension H=%g N must be positive", ErrNonPhysicalTension, H)
	}
	if freeSpan <= 0 {
		return nil, fmt.Errorf("%w: free span length %g m must be positive", ErrInvalidInput, freeSpan)
	}

	nSteps := int(math.Ceil(freeSpan / cfg.DS))
	if nSteps < 1 {
		nSteps = 1
	}
	if limit := cfg.maxSteps(); nSteps > limit {
		return nil, fmt.Errorf("%w: span %g m at step %g m needs %d steps, limit is %d (coarsen ds_m or raise max_integration_steps)",
			ErrStepLimit, freeSpan, cfg.DS, nSteps, limit)
	}
	dsEff := freeSpan / float64(nSteps)

	events := buildEvents(cfg, freeSpan, chuteContact, dsEff)

	res := &integResult{
		S: make([]float64, 0, nSteps+len(events)+2),
		X: make([]float64, 0, nSteps+len(events)+2),
		Y: make([]float64, 0, nSteps+len(events)+2),
	}

	st := integState{s: 0, x: 0, y: -cfg.Depth, v: 0}
	res.S = append(res.S, st.s)
	res.X = append(res.X, st.x)
	res.Y = append(res.Y, st.y)

	// Point loads sitting exactly at the touchdown point apply before any
	// stepping.
	evIdx := 0
	for evIdx < len(events) && events[evIdx].s <= 0 {
		st.v += events[evIdx].load
		evIdx++
	}

	// Safety valve against pathological split loops; the nominal count plus
	// event and crossing splits stays well inside it.
	budget := 2*nSteps + 4*len(events) + 16

	advance := func(ds float64) error {
		for ds > 1e-15 {
			if budget <= 0 {
				return fmt.Errorf("%w: step splitting exceeded the integration budget at s=%g m", ErrStepLimit, st.s)
			}
			budget--

			q := loadAt(cfg, freeSpan, chuteContact, st.s, st.y)
			vMid := st.v + 0.5*q*ds
			tMid := math.Sqrt(H*H + vMid*vMid)
			if !(tMid > 0) || math.IsNaN(tMid) {
				return fmt.Errorf("%w: total tension %g N at s=%g m (H=%g N, V=%g N)",
					ErrNonPhysicalTension, tMid, st.s, H, vMid)
			}

			xNew := st.x + (H/tMid)*ds
			yNew := st.y + (vMid/tMid)*ds

			if (st.y < 0) != (yNew < 0) && yNew != st.y {
				frac := (0 - st.y) / (yNew - st.y)
				if frac < 0 {
					frac = 0
				} else if frac > 1 {
					frac = 1
				}
				if frac > 0 && frac < 1 {
					// Split at the crossing: take the sub-step on this side
					// of the surface, then force the medium for the far side.
					ds1 := frac * ds
					vMid1 := st.v + 0.5*q*ds1
					tMid1 := math.Sqrt(H*H + vMid1*vMid1)
					st.x += (H / tMid1) * ds1
					st.v += q * ds1
					st.s += ds1
					if yNew > st.y {
						st.y = mediumEps
					} else {
						st.y = -mediumEps
					}
					res.S = append(res.S, st.s)
					res.X = append(res.X, st.x)
					res.Y = append(res.Y, st.y)
					if !res.Crossed && st.s < freeSpan-crossingEndTol {
						res.Crossed = true
						res.SurfaceCrossingS = st.s
					}
					ds -= ds1
					continue
				}
			}

			st.x = xNew
			st.y = yNew
			st.v += q * ds
			st.s += ds
			res.S = append(res.S, st.s)
			res.X = append(res.X, st.x)
			res.Y = append(res.Y, st.y)
			ds = 0
		}
		return nil
	}

	// March boundary to boundary: every event location, then the span end.
	runTo := func(target float64) error {
		for st.s < target-1e-12 {
			if err := advance(math.Min(dsEff, target-st.s)); err != nil {
				return err
			}
		}
		st.s = target
		return nil
	}

	for ; evIdx < len(events); evIdx++ {
		if err := runTo(events[evIdx].s); err != nil {
			return nil, err
		}
		st.v += events[evIdx].load
	}
	if err := runTo(freeSpan); err != nil {
		return nil, err
	}

	res.XEnd = st.x
	res.YEnd = st.y
	res.VEnd = st.v
	res.ExitAngle = math.Atan2(st.v, H)
	res.TopTension = math.Sqrt(H*H + st.v*st.v)
	return res, nil
}
