package main

import (
	"math"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/interp"
)

// Coordinate is a point in table space, in the same units as TrackConfig.Radius.
type Coordinate struct {
	X, Y float64
}

// Track is one continuous stroke, in drawing order.
type Track []Coordinate

func dist(a, b Coordinate) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Length is the total polyline length of the track.
func (t Track) Length() float64 {
	total := 0.0
	for i := 1; i < len(t); i++ {
		total += dist(t[i-1], t[i])
	}

	return total
}

// darkness cutoff below which the spiral runs straight
const shadingCutoff = 0.05

// GenerateShading converts the grid into a single spiral stroke from the rim
// to the center. The spiral's radial zig-zag is modulated by local darkness:
// dark cells get taller and more frequent deviations, so the ball packs more
// line into the same band of sand, which reads as shading. Light cells leave
// the plain spiral. Same grid and config always produce the same track.
func GenerateShading(g *Grid, cfg TrackConfig) (Track, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rings := int(math.Round(cfg.Density * float64(min(g.W, g.H)) / 2))
	if rings < 1 {
		rings = 1
	}

	spacing := cfg.Radius / float64(rings+1)
	chordBase := math.Min(0.9*spacing, cfg.MaxStep)

	var track Track

	theta := 0.0
	radius := cfg.Radius - spacing
	zig := false

	for steps := 0; radius > 0.55*spacing; steps++ {
		if steps > 10_000_000 {
			log.Warn().Int("steps", steps).Msg("spiral step limit hit")

			break
		}

		sin, cos := math.Sincos(theta)

		dark := 1.0 - g.sampleAt(radius*cos, radius*sin, cfg.Radius)

		offset := 0.0
		if dark > shadingCutoff {
			// 0.45*spacing keeps the deviated point inside the
			// neighbouring bands and inside the rim.
			offset = 0.45 * spacing * dark
			if zig {
				offset = -offset
			}
			zig = !zig
		}

		track = append(track, Coordinate{
			X: (radius + offset) * cos,
			Y: (radius + offset) * sin,
		})

		// Darker cells also shorten the chord, raising the zig-zag
		// frequency along the band.
		chord := chordBase * (1.0 - 0.8*dark)

		arg := chord / (2.0 * radius)
		if arg >= 1.0 {
			break
		}

		thetaDelta := 2.0 * math.Asin(arg)
		theta += thetaDelta
		if theta >= 2.0*math.Pi {
			theta -= 2.0 * math.Pi
		}

		radius -= spacing * thetaDelta / (2.0 * math.Pi)
	}

	track = append(track, Coordinate{X: 0, Y: 0})

	return finishTrack(track, cfg), nil
}

// finishTrack applies the shared constraints: drop segments shorter than
// MinSegment, then subdivide anything longer than MaxStep. Both invariants
// hold by construction on the result.
func finishTrack(t Track, cfg TrackConfig) Track {
	return enforceStep(filterShort(t, cfg.MinSegment), cfg.MaxStep)
}

func filterShort(t Track, minSeg float64) Track {
	if len(t) < 2 {
		return t
	}

	kept := Track{t[0]}
	for _, c := range t[1:] {
		if dist(kept[len(kept)-1], c) > minSeg {
			kept = append(kept, c)
		}
	}

	return kept
}

// enforceStep subdivides long segments by interpolating the polyline over
// cumulative arc length. Original vertices are preserved exactly; inserted
// points lie on the original segments.
func enforceStep(t Track, maxStep float64) Track {
	if len(t) < 2 {
		return t
	}

	ts := make([]float64, len(t))
	xs := make([]float64, len(t))
	ys := make([]float64, len(t))

	for i, c := range t {
		if i > 0 {
			ts[i] = ts[i-1] + dist(t[i-1], c)
		}

		xs[i] = c.X
		ys[i] = c.Y
	}

	var px, py interp.PiecewiseLinear
	if err := px.Fit(ts, xs); err != nil {
		return t
	}
	if err := py.Fit(ts, ys); err != nil {
		return t
	}

	out := Track{t[0]}

	for i := 1; i < len(t); i++ {
		seg := ts[i] - ts[i-1]

		if seg > maxStep {
			n := int(math.Ceil(seg / maxStep))
			for k := 1; k < n; k++ {
				at := ts[i-1] + seg*float64(k)/float64(n)
				out = append(out, Coordinate{X: px.Predict(at), Y: py.Predict(at)})
			}
		}

		out = append(out, t[i])
	}

	return out
}

// sampleAt maps a table-space point into the grid and returns the nearest
// cell's intensity. The grid spans the square [-radius, radius] on both axes.
func (g *Grid) sampleAt(x, y, radius float64) float64 {
	cx := clampInt(int((x+radius)/(2.0*radius)*float64(g.W)), 0, g.W-1)
	cy := clampInt(int((y+radius)/(2.0*radius)*float64(g.H)), 0, g.H-1)

	return g.At(cx, cy)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
