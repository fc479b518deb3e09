// Package gesture turns hand landmarks into discrete gesture descriptors.
package gesture

import (
	"fmt"

	"github.com/ayusman/tinsel/internal/detector"
)

// Point is a normalized 2D position in [0,1]x[0,1] image coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Descriptor is the per-frame gesture read of a single hand. The three
// flags are independent predicates, not a mutually exclusive
// classification: a hand can satisfy none of them.
type Descriptor struct {
	Fist     bool  `json:"fist"`
	Open     bool  `json:"open"`
	Grabbing bool  `json:"grabbing"`
	Position Point `json:"position"`
}

// Thresholds holds the distance cutoffs, in normalized image units, that
// define the gesture vocabulary.
type Thresholds struct {
	// FistSpan: mean fingertip-to-knuckle span below which the hand
	// reads as a closed fist.
	FistSpan float64
	// OpenSpan: span above which the hand reads as an open palm.
	// Must be greater than FistSpan so the two can never both hold.
	OpenSpan float64
	// PinchDist: thumb-tip to index-tip distance below which the hand
	// reads as a pinch/grab.
	PinchDist float64
}

// DefaultThresholds returns the tuned gesture thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		FistSpan:  0.12,
		OpenSpan:  0.25,
		PinchDist: 0.05,
	}
}

// Validate checks that the thresholds are internally consistent.
func (t Thresholds) Validate() error {
	if t.FistSpan <= 0 || t.OpenSpan <= 0 || t.PinchDist <= 0 {
		return fmt.Errorf("gesture thresholds must be positive")
	}
	if t.FistSpan >= t.OpenSpan {
		return fmt.Errorf("fist span %.3f must be below open span %.3f", t.FistSpan, t.OpenSpan)
	}
	return nil
}

// Classifier maps a landmark set to a gesture descriptor.
type Classifier struct {
	thresholds Thresholds
}

// NewClassifier creates a Classifier with the given thresholds.
func NewClassifier(t Thresholds) (*Classifier, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &Classifier{thresholds: t}, nil
}

// fingertip/knuckle pairs for the four non-thumb fingers
var spanPairs = [4][2]int{
	{detector.IndexTip, detector.IndexMCP},
	{detector.MiddleTip, detector.MiddleMCP},
	{detector.RingTip, detector.RingMCP},
	{detector.PinkyTip, detector.PinkyMCP},
}

// Classify derives a Descriptor from one detected hand. A nil hand (no
// detection this frame) yields a nil descriptor; downstream consumers
// keep their previous state in that case.
func (c *Classifier) Classify(hand *detector.HandLandmarks) *Descriptor {
	if hand == nil {
		return nil
	}

	span := 0.0
	for _, pair := range spanPairs {
		span += hand.PlanarDistance(pair[0], pair[1])
	}
	span /= float64(len(spanPairs))

	pinch := hand.PlanarDistance(detector.ThumbTip, detector.IndexTip)

	// The hand's reference point: midpoint of wrist and middle knuckle,
	// a stable spot near the center of the palm.
	px, py := hand.Midpoint(detector.Wrist, detector.MiddleMCP)

	return &Descriptor{
		Fist:     span < c.thresholds.FistSpan,
		Open:     span > c.thresholds.OpenSpan,
		Grabbing: pinch < c.thresholds.PinchDist,
		Position: Point{X: px, Y: py},
	}
}

// FingerSpan exposes the openness signal for diagnostics and tuning.
func FingerSpan(hand *detector.HandLandmarks) float64 {
	if hand == nil {
		return 0
	}
	span := 0.0
	for _, pair := range spanPairs {
		span += hand.PlanarDistance(pair[0], pair[1])
	}
	return span / float64(len(spanPairs))
}
