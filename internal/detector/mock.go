package detector

import (
	"gocv.io/x/gocv"
)

// MockDetector is a test implementation of the Detector interface.
// It allows tests to control the detection results, including scripting
// a per-frame sequence of hands.
type MockDetector struct {
	hands  []HandLandmarks
	script [][]HandLandmarks
	cursor int
	err    error
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetHands sets the hands that will be returned by every Detect call.
func (m *MockDetector) SetHands(hands []HandLandmarks) {
	m.hands = hands
	m.script = nil
	m.cursor = 0
}

// SetScript sets a per-frame sequence of detection results. Each Detect
// call consumes one entry; after the script runs out, Detect reports no
// hands (the camera sees an empty room).
func (m *MockDetector) SetScript(script [][]HandLandmarks) {
	m.script = script
	m.cursor = 0
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.err = err
}

// Detect returns the pre-configured hands, the next script entry, or error.
func (m *MockDetector) Detect(frame *gocv.Mat) ([]HandLandmarks, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.script != nil {
		if m.cursor >= len(m.script) {
			return nil, nil
		}
		hands := m.script[m.cursor]
		m.cursor++
		return hands, nil
	}
	return m.hands, nil
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}

// FistLandmarks returns a preset HandLandmarks for a closed fist: all
// four fingertips curled back to their knuckles, thumb wrapped across.
func FistLandmarks() HandLandmarks {
	lm := HandLandmarks{Handedness: "Right", Score: 0.96}

	lm.Points[Wrist] = Point3D{X: 0.50, Y: 0.85, Z: 0.0}

	// Thumb wrapped over the curled fingers
	lm.Points[ThumbCMC] = Point3D{X: 0.56, Y: 0.80, Z: 0.0}
	lm.Points[ThumbMCP] = Point3D{X: 0.60, Y: 0.77, Z: 0.01}
	lm.Points[ThumbIP] = Point3D{X: 0.61, Y: 0.75, Z: 0.01}
	lm.Points[ThumbTip] = Point3D{X: 0.60, Y: 0.74, Z: 0.02}

	// Index finger curled into the palm
	lm.Points[IndexMCP] = Point3D{X: 0.56, Y: 0.66, Z: -0.01}
	lm.Points[IndexPIP] = Point3D{X: 0.56, Y: 0.63, Z: -0.04}
	lm.Points[IndexDIP] = Point3D{X: 0.54, Y: 0.66, Z: -0.05}
	lm.Points[IndexTip] = Point3D{X: 0.53, Y: 0.70, Z: -0.04}

	// Middle finger curled
	lm.Points[MiddleMCP] = Point3D{X: 0.51, Y: 0.65, Z: -0.01}
	lm.Points[MiddlePIP] = Point3D{X: 0.51, Y: 0.61, Z: -0.04}
	lm.Points[MiddleDIP] = Point3D{X: 0.49, Y: 0.65, Z: -0.05}
	lm.Points[MiddleTip] = Point3D{X: 0.48, Y: 0.70, Z: -0.04}

	// Ring finger curled
	lm.Points[RingMCP] = Point3D{X: 0.46, Y: 0.66, Z: -0.01}
	lm.Points[RingPIP] = Point3D{X: 0.46, Y: 0.63, Z: -0.04}
	lm.Points[RingDIP] = Point3D{X: 0.45, Y: 0.67, Z: -0.05}
	lm.Points[RingTip] = Point3D{X: 0.44, Y: 0.71, Z: -0.04}

	// Pinky curled
	lm.Points[PinkyMCP] = Point3D{X: 0.42, Y: 0.68, Z: -0.01}
	lm.Points[PinkyPIP] = Point3D{X: 0.42, Y: 0.66, Z: -0.03}
	lm.Points[PinkyDIP] = Point3D{X: 0.41, Y: 0.69, Z: -0.04}
	lm.Points[PinkyTip] = Point3D{X: 0.40, Y: 0.72, Z: -0.03}

	return lm
}

// OpenPalmLandmarks returns a preset HandLandmarks for an open palm with
// all fingers extended.
func OpenPalmLandmarks() HandLandmarks {
	lm := HandLandmarks{Handedness: "Right", Score: 0.97}

	lm.Points[Wrist] = Point3D{X: 0.50, Y: 0.85, Z: 0.0}

	// Thumb extended to the side
	lm.Points[ThumbCMC] = Point3D{X: 0.56, Y: 0.79, Z: 0.01}
	lm.Points[ThumbMCP] = Point3D{X: 0.63, Y: 0.72, Z: 0.02}
	lm.Points[ThumbIP] = Point3D{X: 0.68, Y: 0.65, Z: 0.02}
	lm.Points[ThumbTip] = Point3D{X: 0.72, Y: 0.58, Z: 0.02}

	// Index finger extended
	lm.Points[IndexMCP] = Point3D{X: 0.56, Y: 0.67, Z: 0.0}
	lm.Points[IndexPIP] = Point3D{X: 0.57, Y: 0.55, Z: 0.0}
	lm.Points[IndexDIP] = Point3D{X: 0.58, Y: 0.44, Z: 0.0}
	lm.Points[IndexTip] = Point3D{X: 0.58, Y: 0.34, Z: 0.0}

	// Middle finger extended
	lm.Points[MiddleMCP] = Point3D{X: 0.50, Y: 0.66, Z: 0.0}
	lm.Points[MiddlePIP] = Point3D{X: 0.50, Y: 0.52, Z: 0.0}
	lm.Points[MiddleDIP] = Point3D{X: 0.50, Y: 0.39, Z: 0.0}
	lm.Points[MiddleTip] = Point3D{X: 0.50, Y: 0.28, Z: 0.0}

	// Ring finger extended
	lm.Points[RingMCP] = Point3D{X: 0.45, Y: 0.67, Z: 0.0}
	lm.Points[RingPIP] = Point3D{X: 0.44, Y: 0.55, Z: 0.0}
	lm.Points[RingDIP] = Point3D{X: 0.43, Y: 0.44, Z: 0.0}
	lm.Points[RingTip] = Point3D{X: 0.42, Y: 0.34, Z: 0.0}

	// Pinky extended
	lm.Points[PinkyMCP] = Point3D{X: 0.40, Y: 0.70, Z: 0.0}
	lm.Points[PinkyPIP] = Point3D{X: 0.37, Y: 0.60, Z: 0.0}
	lm.Points[PinkyDIP] = Point3D{X: 0.35, Y: 0.50, Z: 0.0}
	lm.Points[PinkyTip] = Point3D{X: 0.34, Y: 0.42, Z: 0.0}

	return lm
}

// PinchLandmarks returns a preset HandLandmarks for a thumb-index pinch:
// thumb tip and index tip touching, remaining fingers half-extended so
// the pose reads neither as a fist nor as an open palm.
func PinchLandmarks() HandLandmarks {
	lm := HandLandmarks{Handedness: "Right", Score: 0.95}

	lm.Points[Wrist] = Point3D{X: 0.50, Y: 0.85, Z: 0.0}

	// Thumb reaching toward the index tip
	lm.Points[ThumbCMC] = Point3D{X: 0.55, Y: 0.78, Z: 0.01}
	lm.Points[ThumbMCP] = Point3D{X: 0.59, Y: 0.70, Z: 0.01}
	lm.Points[ThumbIP] = Point3D{X: 0.59, Y: 0.60, Z: 0.01}
	lm.Points[ThumbTip] = Point3D{X: 0.575, Y: 0.50, Z: 0.01}

	// Index finger bent to meet the thumb
	lm.Points[IndexMCP] = Point3D{X: 0.55, Y: 0.68, Z: 0.0}
	lm.Points[IndexPIP] = Point3D{X: 0.57, Y: 0.60, Z: 0.0}
	lm.Points[IndexDIP] = Point3D{X: 0.58, Y: 0.55, Z: 0.0}
	lm.Points[IndexTip] = Point3D{X: 0.59, Y: 0.52, Z: 0.0}

	// Middle finger half-extended
	lm.Points[MiddleMCP] = Point3D{X: 0.50, Y: 0.66, Z: 0.0}
	lm.Points[MiddlePIP] = Point3D{X: 0.50, Y: 0.57, Z: 0.0}
	lm.Points[MiddleDIP] = Point3D{X: 0.49, Y: 0.52, Z: 0.0}
	lm.Points[MiddleTip] = Point3D{X: 0.49, Y: 0.48, Z: 0.0}

	// Ring finger half-extended
	lm.Points[RingMCP] = Point3D{X: 0.45, Y: 0.67, Z: 0.0}
	lm.Points[RingPIP] = Point3D{X: 0.44, Y: 0.58, Z: 0.0}
	lm.Points[RingDIP] = Point3D{X: 0.43, Y: 0.54, Z: 0.0}
	lm.Points[RingTip] = Point3D{X: 0.43, Y: 0.50, Z: 0.0}

	// Pinky half-extended
	lm.Points[PinkyMCP] = Point3D{X: 0.40, Y: 0.70, Z: 0.0}
	lm.Points[PinkyPIP] = Point3D{X: 0.38, Y: 0.62, Z: 0.0}
	lm.Points[PinkyDIP] = Point3D{X: 0.37, Y: 0.58, Z: 0.0}
	lm.Points[PinkyTip] = Point3D{X: 0.37, Y: 0.55, Z: 0.0}

	return lm
}

// RestingLandmarks returns a preset HandLandmarks for a relaxed,
// half-open hand that should trigger no gesture flag at all.
func RestingLandmarks() HandLandmarks {
	lm := HandLandmarks{Handedness: "Right", Score: 0.94}

	lm.Points[Wrist] = Point3D{X: 0.50, Y: 0.85, Z: 0.0}

	lm.Points[ThumbCMC] = Point3D{X: 0.55, Y: 0.79, Z: 0.01}
	lm.Points[ThumbMCP] = Point3D{X: 0.61, Y: 0.72, Z: 0.01}
	lm.Points[ThumbIP] = Point3D{X: 0.64, Y: 0.66, Z: 0.01}
	lm.Points[ThumbTip] = Point3D{X: 0.67, Y: 0.60, Z: 0.01}

	lm.Points[IndexMCP] = Point3D{X: 0.55, Y: 0.68, Z: 0.0}
	lm.Points[IndexPIP] = Point3D{X: 0.56, Y: 0.60, Z: 0.0}
	lm.Points[IndexDIP] = Point3D{X: 0.57, Y: 0.54, Z: 0.0}
	lm.Points[IndexTip] = Point3D{X: 0.57, Y: 0.50, Z: 0.0}

	lm.Points[MiddleMCP] = Point3D{X: 0.50, Y: 0.66, Z: 0.0}
	lm.Points[MiddlePIP] = Point3D{X: 0.50, Y: 0.57, Z: 0.0}
	lm.Points[MiddleDIP] = Point3D{X: 0.50, Y: 0.51, Z: 0.0}
	lm.Points[MiddleTip] = Point3D{X: 0.50, Y: 0.47, Z: 0.0}

	lm.Points[RingMCP] = Point3D{X: 0.45, Y: 0.67, Z: 0.0}
	lm.Points[RingPIP] = Point3D{X: 0.44, Y: 0.58, Z: 0.0}
	lm.Points[RingDIP] = Point3D{X: 0.44, Y: 0.53, Z: 0.0}
	lm.Points[RingTip] = Point3D{X: 0.44, Y: 0.49, Z: 0.0}

	lm.Points[PinkyMCP] = Point3D{X: 0.40, Y: 0.70, Z: 0.0}
	lm.Points[PinkyPIP] = Point3D{X: 0.39, Y: 0.63, Z: 0.0}
	lm.Points[PinkyDIP] = Point3D{X: 0.38, Y: 0.58, Z: 0.0}
	lm.Points[PinkyTip] = Point3D{X: 0.38, Y: 0.54, Z: 0.0}

	return lm
}
