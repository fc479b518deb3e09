package capture

import (
	"errors"
	"testing"
)

func TestMockCamera_Lifecycle(t *testing.T) {
	cam := NewMockCamera(nil, false)

	if cam.IsOpen() {
		t.Error("camera should start closed")
	}

	if _, err := cam.ReadFrame(); !errors.Is(err, ErrCameraNotOpen) {
		t.Errorf("ReadFrame before Open: err = %v, want ErrCameraNotOpen", err)
	}

	if err := cam.Open(); err != nil {
		t.Fatalf("Open: %v", err)
	}
	if !cam.IsOpen() {
		t.Error("camera should report open")
	}

	if err := cam.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if cam.IsOpen() {
		t.Error("camera should report closed after Close")
	}
}

func TestMockCamera_NoFrames(t *testing.T) {
	cam := NewMockCamera(nil, true)
	if err := cam.Open(); err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer cam.Close()

	if _, err := cam.ReadFrame(); err == nil {
		t.Error("expected an error reading from a camera with no frames")
	}
}
