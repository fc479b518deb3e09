package scene

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Tuning holds the animation constants for the blender.
type Tuning struct {
	// Rate is the exponential easing rate for item position and scale,
	// per second. Larger is snappier.
	Rate float64
	// SpinRate is the ornamental spin about the vertical axis while
	// assembled, radians per second.
	SpinRate float64
	// CameraRate is the easing rate for camera-follow steering.
	CameraRate float64
	// AssembledScale and ScatteredScale are the mode-dependent item
	// scale targets. A zoomed selection eases toward zero instead.
	AssembledScale float64
	ScatteredScale float64
	// CameraPan and CameraTilt map the hand's normalized position onto
	// a camera offset in world units.
	CameraPan  float64
	CameraTilt float64
	// Focal is the pinhole focal length used to project items into
	// normalized screen space for picking.
	Focal float64
}

// DefaultTuning returns the tuned animation constants.
func DefaultTuning() Tuning {
	return Tuning{
		Rate:           6,
		SpinRate:       0.8,
		CameraRate:     3,
		AssembledScale: 0.6,
		ScatteredScale: 1.5,
		CameraPan:      10,
		CameraTilt:     6,
		Focal:          1.2,
	}
}

// blendFactor converts an easing rate and a frame delta into a blend
// fraction, clamped to 1 so a stalled frame (large delta) can never
// overshoot the target.
func blendFactor(rate, delta float64) float64 {
	a := rate * delta
	if a > 1 {
		return 1
	}
	if a < 0 {
		return 0
	}
	return a
}

// easeVec moves cur toward target by fraction a of the remaining distance.
func easeVec(cur, target r3.Vec, a float64) r3.Vec {
	return r3.Add(cur, r3.Scale(a, r3.Sub(target, cur)))
}

// easeScalar moves cur toward target by fraction a of the remaining gap.
func easeScalar(cur, target, a float64) float64 {
	return cur + (target-cur)*a
}

// easeAngle eases an angle toward a target along the shortest arc.
func easeAngle(cur, target, a float64) float64 {
	diff := math.Mod(target-cur, 2*math.Pi)
	if diff > math.Pi {
		diff -= 2 * math.Pi
	} else if diff < -math.Pi {
		diff += 2 * math.Pi
	}
	return cur + diff*a
}
