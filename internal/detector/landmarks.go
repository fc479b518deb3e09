// Package detector provides hand landmark detection for gesture control.
package detector

import "math"

// Hand landmark indices following MediaPipe convention.
// See: https://developers.google.com/mediapipe/solutions/vision/hand_landmarker
const (
	Wrist        = 0
	ThumbCMC     = 1
	ThumbMCP     = 2
	ThumbIP      = 3
	ThumbTip     = 4
	IndexMCP     = 5
	IndexPIP     = 6
	IndexDIP     = 7
	IndexTip     = 8
	MiddleMCP    = 9
	MiddlePIP    = 10
	MiddleDIP    = 11
	MiddleTip    = 12
	RingMCP      = 13
	RingPIP      = 14
	RingDIP      = 15
	RingTip      = 16
	PinkyMCP     = 17
	PinkyPIP     = 18
	PinkyDIP     = 19
	PinkyTip     = 20
	NumLandmarks = 21
)

// Point3D is a single landmark position. X and Y are normalized image
// coordinates in [0,1]; Z is the model's relative depth estimate.
type Point3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// HandLandmarks is one detected hand: the 21 landmarks plus handedness
// and the model's confidence score. A fresh value is produced per frame
// and never mutated afterward.
type HandLandmarks struct {
	Points     [NumLandmarks]Point3D `json:"points"`
	Handedness string                `json:"handedness"` // "Left" or "Right"
	Score      float64               `json:"score"`
}

// PlanarDistance returns the Euclidean distance between two landmarks in
// the normalized image plane, ignoring depth. Gesture thresholds are
// defined over image-plane distances because the model's depth estimate
// is far noisier than x/y.
func (h *HandLandmarks) PlanarDistance(i, j int) float64 {
	dx := h.Points[i].X - h.Points[j].X
	dy := h.Points[i].Y - h.Points[j].Y
	return math.Hypot(dx, dy)
}

// Midpoint returns the image-plane midpoint of two landmarks.
func (h *HandLandmarks) Midpoint(i, j int) (x, y float64) {
	return (h.Points[i].X + h.Points[j].X) / 2, (h.Points[i].Y + h.Points[j].Y) / 2
}
