package detector

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.MaxHands != 1 {
		t.Errorf("MaxHands = %d, want 1 (single-hand vocabulary)", cfg.MaxHands)
	}
	if cfg.MinConfidence <= 0 || cfg.MinConfidence > 1 {
		t.Errorf("MinConfidence = %v out of range", cfg.MinConfidence)
	}
	if cfg.MinTrackingConf <= 0 || cfg.MinTrackingConf > 1 {
		t.Errorf("MinTrackingConf = %v out of range", cfg.MinTrackingConf)
	}
}

func TestPlanarDistance(t *testing.T) {
	var h HandLandmarks
	h.Points[ThumbTip] = Point3D{X: 0.1, Y: 0.2, Z: 0.9}
	h.Points[IndexTip] = Point3D{X: 0.4, Y: 0.6, Z: -0.9}

	// Depth must not contribute.
	if got := h.PlanarDistance(ThumbTip, IndexTip); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("PlanarDistance = %v, want 0.5", got)
	}
}

func TestMidpoint(t *testing.T) {
	var h HandLandmarks
	h.Points[Wrist] = Point3D{X: 0.2, Y: 0.8}
	h.Points[MiddleMCP] = Point3D{X: 0.6, Y: 0.4}

	x, y := h.Midpoint(Wrist, MiddleMCP)
	if x != 0.4 || y != 0.6 {
		t.Errorf("Midpoint = (%v, %v), want (0.4, 0.6)", x, y)
	}
}

func TestMockDetector_Script(t *testing.T) {
	m := NewMockDetector()
	m.SetScript([][]HandLandmarks{
		{OpenPalmLandmarks()},
		nil,
		{FistLandmarks()},
	})

	hands, err := m.Detect(nil)
	if err != nil || len(hands) != 1 {
		t.Fatalf("frame 0: hands=%d err=%v", len(hands), err)
	}

	hands, err = m.Detect(nil)
	if err != nil || len(hands) != 0 {
		t.Fatalf("frame 1: expected no hands, got %d (err=%v)", len(hands), err)
	}

	hands, err = m.Detect(nil)
	if err != nil || len(hands) != 1 {
		t.Fatalf("frame 2: hands=%d err=%v", len(hands), err)
	}

	// Script exhausted: the camera sees an empty room.
	hands, err = m.Detect(nil)
	if err != nil || len(hands) != 0 {
		t.Fatalf("frame 3: expected no hands after script end, got %d (err=%v)", len(hands), err)
	}
}

func TestMockDetector_Error(t *testing.T) {
	m := NewMockDetector()
	wantErr := errors.New("tracker crashed")
	m.SetError(wantErr)

	if _, err := m.Detect(nil); !errors.Is(err, wantErr) {
		t.Errorf("Detect error = %v, want %v", err, wantErr)
	}
}

func TestFixtures_WithinNormalizedBounds(t *testing.T) {
	fixtures := map[string]HandLandmarks{
		"fist":    FistLandmarks(),
		"open":    OpenPalmLandmarks(),
		"pinch":   PinchLandmarks(),
		"resting": RestingLandmarks(),
	}

	for name, hand := range fixtures {
		for i, p := range hand.Points {
			if p.X < 0 || p.X > 1 || p.Y < 0 || p.Y > 1 {
				t.Errorf("%s landmark %d at (%v, %v) outside the unit square", name, i, p.X, p.Y)
			}
		}
		if hand.Score <= 0 || hand.Score > 1 {
			t.Errorf("%s score = %v", name, hand.Score)
		}
	}
}

func TestFixtures_PinchDistance(t *testing.T) {
	pinch := PinchLandmarks()
	if d := pinch.PlanarDistance(ThumbTip, IndexTip); d >= 0.05 {
		t.Errorf("pinch fixture thumb-index distance = %.3f, want < 0.05", d)
	}

	open := OpenPalmLandmarks()
	if d := open.PlanarDistance(ThumbTip, IndexTip); d < 0.05 {
		t.Errorf("open fixture thumb-index distance = %.3f, should not read as a pinch", d)
	}
}
