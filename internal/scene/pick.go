package scene

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/ayusman/tinsel/internal/gesture"
)

// nearPlane guards the projection against items at or behind the camera.
const nearPlane = 1e-3

// pickNearest chooses the photo whose screen projection is closest to
// the hand's position. Ornaments are not selectable. Returns nil when no
// photo projects in front of the camera. Callers hold mu.
func (s *Scene) pickNearest(hand gesture.Point) *Item {
	var best *Item
	bestDist := math.Inf(1)

	for _, it := range s.items {
		if it.Kind != KindPhoto {
			continue
		}
		sx, sy, ok := s.project(it.Position)
		if !ok {
			continue
		}
		d := math.Hypot(sx-hand.X, sy-hand.Y)
		if d < bestDist {
			bestDist = d
			best = it
		}
	}

	return best
}

// project maps a world position into normalized screen space using a
// pinhole at the current camera position looking down -Z. ok is false
// for points at or behind the camera.
func (s *Scene) project(p r3.Vec) (x, y float64, ok bool) {
	depth := s.camera.Z - p.Z
	if depth < nearPlane {
		return 0, 0, false
	}
	f := s.cfg.Tuning.Focal
	x = 0.5 + (p.X-s.camera.X)*f/depth
	y = 0.5 - (p.Y-s.camera.Y)*f/depth
	return x, y, true
}

// faceYaw is the yaw that turns an item toward the viewing position.
func faceYaw(pos, camera r3.Vec) float64 {
	return math.Atan2(camera.X-pos.X, camera.Z-pos.Z)
}
