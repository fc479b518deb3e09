package scene

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/spatial/r3"
)

// Layout holds the geometry constants for the two item formations.
type Layout struct {
	// Height is the total tree height H.
	Height float64
	// Radius is the base radius R; the spiral radius shrinks linearly
	// from R at the base to zero at the apex.
	Radius float64
	// AngleStep is the constant azimuth increment k between consecutive
	// items, chosen so the spiral wraps the cone several times.
	AngleStep float64
	// ScatterHalfWidth is the half-width of the symmetric cube that
	// scattered targets are drawn from.
	ScatterHalfWidth float64
}

// DefaultLayout returns the tuned display geometry.
func DefaultLayout() Layout {
	return Layout{
		Height:           9,
		Radius:           4,
		AngleStep:        0.55,
		ScatterHalfWidth: 12,
	}
}

// AssembledTarget places item i of n on the conical spiral: height rises
// linearly with index, radius shrinks toward the apex, azimuth advances
// by a constant step.
func (l Layout) AssembledTarget(i, n int) r3.Vec {
	if n <= 0 {
		n = 1
	}
	h := (float64(i)/float64(n))*l.Height - l.Height/2
	r := ((l.Height/2 - h) / l.Height) * l.Radius
	a := float64(i) * l.AngleStep
	return r3.Vec{X: math.Cos(a) * r, Y: h, Z: math.Sin(a) * r}
}

// ScatteredTarget draws one gallery position uniformly from the scatter
// cube. Called exactly once per item, at creation; the result is held
// for the item's lifetime.
func (l Layout) ScatteredTarget(rng *rand.Rand) r3.Vec {
	w := l.ScatterHalfWidth
	return r3.Vec{
		X: rng.Float64()*2*w - w,
		Y: rng.Float64()*2*w - w,
		Z: rng.Float64()*2*w - w,
	}
}
