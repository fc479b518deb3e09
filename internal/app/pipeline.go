package app

import (
	"log"
	"time"
)

// trackLoop is the camera-side loop: read a frame, gate on motion,
// detect hands, classify, latch the descriptor. It runs at a low rate
// while the room is still and speeds up when something moves.
//
// The loop never blocks the render loop. Frames with no hand latch
// nothing, so the scene keeps easing toward its last known targets.
func (a *App) trackLoop(stop <-chan struct{}) {
	defer a.wg.Done()

	activeMode := false
	lastMotionTime := time.Now()

	frameInterval := time.Second / time.Duration(IdleFPS)
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if !a.IsEnabled() {
				continue
			}

			frame, err := a.camera.ReadFrame()
			if err != nil {
				log.Printf("Error reading frame: %v", err)
				continue
			}

			motionDetected, _ := a.motion.Detect(frame)

			if motionDetected {
				lastMotionTime = time.Now()

				if !activeMode {
					activeMode = true
					a.camera.SetFPS(ActiveFPS)
					frameInterval = time.Second / time.Duration(ActiveFPS)
					ticker.Reset(frameInterval)
					log.Println("Tracking switched to active rate")
				}
			} else if activeMode {
				if time.Since(lastMotionTime) > time.Duration(IdleTimeoutMs)*time.Millisecond {
					activeMode = false
					a.camera.SetFPS(IdleFPS)
					frameInterval = time.Second / time.Duration(IdleFPS)
					ticker.Reset(frameInterval)
					log.Println("Tracking switched to idle rate")
				}
			}

			if !activeMode {
				frame.Close()
				continue
			}

			hands, err := a.detector.Detect(frame)
			frame.Close()

			if err != nil {
				log.Printf("Error detecting hands: %v", err)
				continue
			}

			if len(hands) == 0 {
				// NoHandDetected is not an error: no update this frame.
				continue
			}

			// Single-hand vocabulary: only the first hand steers.
			if d := a.classifier.Classify(&hands[0]); d != nil {
				a.latch.Store(d)
			}
		}
	}
}

// renderLoop is the animation-side loop: once per tick it hands the
// latest latched descriptor and the measured elapsed time to the scene.
func (a *App) renderLoop(stop <-chan struct{}) {
	defer a.wg.Done()

	fps := a.config.RenderFPS
	if fps <= 0 {
		fps = DefaultRenderFPS
	}

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	last := time.Now()

	for {
		select {
		case <-stop:
			return
		case now := <-ticker.C:
			delta := now.Sub(last).Seconds()
			last = now

			d := a.latch.Load()
			if !a.IsEnabled() {
				d = nil
			}
			a.scene.Advance(d, delta)
		}
	}
}
