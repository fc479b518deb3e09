// Package app wires the camera, the landmark detector, the gesture
// classifier, and the scene into the running display.
package app

import (
	"log"
	"sync"

	"github.com/ayusman/tinsel/internal/capture"
	"github.com/ayusman/tinsel/internal/detector"
	"github.com/ayusman/tinsel/internal/gesture"
	"github.com/ayusman/tinsel/internal/scene"
	"github.com/ayusman/tinsel/internal/store"
)

// Pipeline timing constants.
const (
	// IdleFPS is the tracking rate while the room is still.
	IdleFPS = 5
	// ActiveFPS is the tracking rate while motion is detected.
	ActiveFPS = 15
	// IdleTimeoutMs is how long after the last motion the tracker drops
	// back to the idle rate.
	IdleTimeoutMs = 2000
	// DefaultRenderFPS paces the animation loop.
	DefaultRenderFPS = 30
)

// Config holds application configuration.
type Config struct {
	Store        *store.Store
	CameraID     int
	MotionThresh float64
	// Detector overrides the MediaPipe detector when set (tests, demos).
	Detector detector.Detector
	Scene    scene.Config
	// RenderFPS overrides DefaultRenderFPS when positive.
	RenderFPS int
}

// App owns the two loops of the display: the tracking loop
// (camera -> motion gate -> detector -> classifier -> latch) and the
// render loop (latch -> scene.Advance). The loops race by design; the
// latch's read-latest contract is the only coupling between them.
type App struct {
	config     Config
	camera     capture.Camera
	motion     *capture.MotionGate
	detector   detector.Detector
	classifier *gesture.Classifier
	latch      *gesture.Latch
	scene      *scene.Scene

	trackingErr error
	enabled     bool
	mu          sync.RWMutex
	stopCh      chan struct{}
	wg          sync.WaitGroup
}

// New creates an App. A missing or broken landmark detector is a
// persistent, non-fatal condition: the scene still renders and the
// tracking error is surfaced over the API.
func New(config Config) *App {
	motionThreshold := config.MotionThresh
	if motionThreshold <= 0 {
		motionThreshold = 1.0 // 1% pixel change
	}

	classifier, err := gesture.NewClassifier(gesture.DefaultThresholds())
	if err != nil {
		// Defaults are validated in tests; this only fires on a bad
		// hand-edited build.
		log.Fatalf("gesture thresholds: %v", err)
	}

	a := &App{
		config:     config,
		camera:     capture.NewCamera(config.CameraID),
		motion:     capture.NewMotionGate(motionThreshold),
		classifier: classifier,
		latch:      &gesture.Latch{},
		scene:      scene.New(config.Scene),
		enabled:    true,
	}

	if config.Detector != nil {
		a.detector = config.Detector
	} else if mp, err := detector.NewMediaPipeDetector(detector.DefaultConfig()); err == nil {
		a.detector = mp
		log.Println("Using MediaPipe hand tracking")
	} else {
		a.trackingErr = err
		log.Printf("Hand tracking unavailable (%v); display runs without gesture control", err)
	}

	return a
}

// SetEnabled toggles gesture control. Disabling clears the latched
// descriptor so the scene freezes toward its last targets.
func (a *App) SetEnabled(enabled bool) {
	a.mu.Lock()
	a.enabled = enabled
	a.mu.Unlock()

	if !enabled {
		a.latch.Clear()
	}
}

// IsEnabled reports whether gesture control is active.
func (a *App) IsEnabled() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.enabled
}

// TrackingError returns the persistent landmark-source error, if any.
func (a *App) TrackingError() error {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.trackingErr
}

// Scene returns the owned scene.
func (a *App) Scene() *scene.Scene {
	return a.scene
}

// Camera returns the camera instance.
func (a *App) Camera() capture.Camera {
	return a.camera
}

// LoadPhotos populates the scene from the photo library.
func (a *App) LoadPhotos() error {
	if a.config.Store == nil {
		return nil
	}

	photos, err := a.config.Store.Photos().List()
	if err != nil {
		return err
	}

	for _, p := range photos {
		a.scene.AddPhoto(p.ID, p.FileName)
	}

	log.Printf("Loaded %d photos from library", len(photos))
	return nil
}

// Start begins the tracking and render loops. A camera that fails to
// open degrades the same way a missing detector does: the render loop
// still runs, gesture control stays off.
func (a *App) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopCh != nil {
		return nil
	}
	a.stopCh = make(chan struct{})

	stop := a.stopCh

	if a.detector != nil {
		if err := a.camera.Open(); err != nil {
			a.trackingErr = err
			log.Printf("Camera unavailable (%v); display runs without gesture control", err)
		} else {
			a.camera.SetFPS(IdleFPS)
			a.wg.Add(1)
			go a.trackLoop(stop)
		}
	}

	a.wg.Add(1)
	go a.renderLoop(stop)

	log.Println("Display pipeline started")
	return nil
}

// Stop halts both loops and releases the camera and detector.
func (a *App) Stop() {
	a.mu.Lock()
	if a.stopCh == nil {
		a.mu.Unlock()
		return
	}
	close(a.stopCh)
	a.stopCh = nil
	a.mu.Unlock()

	a.wg.Wait()

	if err := a.camera.Close(); err != nil {
		log.Printf("Error closing camera: %v", err)
	}

	a.motion.Close()

	if a.detector != nil {
		if err := a.detector.Close(); err != nil {
			log.Printf("Error closing detector: %v", err)
		}
	}

	log.Println("Display pipeline stopped")
}
