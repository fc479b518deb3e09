package scene

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestLayout_AssembledSpiral(t *testing.T) {
	l := DefaultLayout()
	n := 24

	prevY := math.Inf(-1)
	prevR := math.Inf(1)

	for i := 0; i < n; i++ {
		p := l.AssembledTarget(i, n)

		if p.Y <= prevY && i > 0 {
			t.Errorf("item %d: height %.3f did not rise above %.3f", i, p.Y, prevY)
		}
		prevY = p.Y

		r := math.Hypot(p.X, p.Z)
		if r >= prevR && i > 0 {
			t.Errorf("item %d: radius %.3f did not shrink below %.3f", i, r, prevR)
		}
		prevR = r

		if p.Y < -l.Height/2-1e-9 || p.Y > l.Height/2+1e-9 {
			t.Errorf("item %d: height %.3f outside tree bounds", i, p.Y)
		}
	}

	// The base item sits at the bottom of the cone at full radius.
	base := l.AssembledTarget(0, n)
	if base.Y != -l.Height/2 {
		t.Errorf("base height = %.3f, want %.3f", base.Y, -l.Height/2)
	}
	if got := math.Hypot(base.X, base.Z); math.Abs(got-l.Radius) > 1e-9 {
		t.Errorf("base radius = %.3f, want %.3f", got, l.Radius)
	}
}

func TestLayout_AssembledIsPureFunctionOfIndexAndCount(t *testing.T) {
	l := DefaultLayout()

	a := l.AssembledTarget(7, 20)
	b := l.AssembledTarget(7, 20)
	if a != b {
		t.Errorf("same (index, count) produced different targets: %v vs %v", a, b)
	}

	c := l.AssembledTarget(7, 21)
	if a == c {
		t.Error("changing the item count must move interior spiral positions")
	}
}

func TestLayout_ScatteredWithinCube(t *testing.T) {
	l := DefaultLayout()
	rng := rand.New(rand.NewPCG(3, 7))

	for i := 0; i < 200; i++ {
		p := l.ScatteredTarget(rng)
		for axis, v := range []float64{p.X, p.Y, p.Z} {
			if v < -l.ScatterHalfWidth || v > l.ScatterHalfWidth {
				t.Fatalf("sample %d axis %d: %.3f outside ±%.1f", i, axis, v, l.ScatterHalfWidth)
			}
		}
	}
}

func TestLayout_ScatteredSeedDeterminism(t *testing.T) {
	l := DefaultLayout()

	a := rand.New(rand.NewPCG(11, 13))
	b := rand.New(rand.NewPCG(11, 13))

	for i := 0; i < 16; i++ {
		if pa, pb := l.ScatteredTarget(a), l.ScatteredTarget(b); pa != pb {
			t.Fatalf("draw %d differs under identical seeds: %v vs %v", i, pa, pb)
		}
	}
}
