package scene

import (
	"math/rand/v2"
	"sync"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/ayusman/tinsel/internal/gesture"
)

// defaultOrnamentColors cycles through classic tree ornament colors.
var defaultOrnamentColors = []string{
	"#e63946", "#f1c40f", "#2a9d8f", "#4a90d9", "#e76f51", "#f4f1de",
}

// Config holds scene construction parameters.
type Config struct {
	Layout Layout
	Tuning Tuning
	// Ornaments is the number of decorative particles created at scene
	// initialization.
	Ornaments int
	// OrnamentColors overrides the default color cycle when non-empty.
	OrnamentColors []string
	// Seed seeds the scatter-target source so a scene is reproducible.
	Seed uint64
	// CameraBase is the resting camera position; hand steering offsets
	// pan/tilt around it.
	CameraBase r3.Vec
}

// DefaultConfig returns a scene configuration with the tuned layout and
// animation constants.
func DefaultConfig() Config {
	return Config{
		Layout:     DefaultLayout(),
		Tuning:     DefaultTuning(),
		Ornaments:  120,
		Seed:       1,
		CameraBase: r3.Vec{Z: 16},
	}
}

// Scene owns the display mode, the item set, the selection, and the
// eased camera. It is the single owned context for all mutable display
// state: the tracking and serving goroutines never touch items directly.
type Scene struct {
	mu  sync.Mutex
	cfg Config
	rng *rand.Rand

	mode     Mode
	items    []*Item
	selected *Item

	camera    r3.Vec
	camTarget r3.Vec
}

// New creates a Scene in Assembled mode with the configured number of
// ornaments. Items start at their scattered positions with zero scale,
// so the opening frames materialize the tree out of the void.
func New(cfg Config) *Scene {
	if cfg.Ornaments < 0 {
		cfg.Ornaments = 0
	}
	colors := cfg.OrnamentColors
	if len(colors) == 0 {
		colors = defaultOrnamentColors
	}

	s := &Scene{
		cfg:       cfg,
		rng:       rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)),
		mode:      ModeAssembled,
		camera:    cfg.CameraBase,
		camTarget: cfg.CameraBase,
	}

	for i := 0; i < cfg.Ornaments; i++ {
		s.items = append(s.items, s.newItem(KindOrnament, "", colors[i%len(colors)]))
	}
	s.recomputeAssembled()

	return s
}

// newItem builds an item with a freshly drawn scattered target. The
// assembled target is filled in by recomputeAssembled. Callers hold mu.
func (s *Scene) newItem(kind Kind, fileName, color string) *Item {
	it := &Item{
		ID:        uuid.NewString(),
		Kind:      kind,
		Color:     color,
		FileName:  fileName,
		scattered: s.cfg.Layout.ScatteredTarget(s.rng),
		Scale:     0,
	}
	it.Position = it.scattered
	return it
}

// recomputeAssembled reassigns every item's spiral position from its
// current index. Scattered targets are untouched. Callers hold mu.
func (s *Scene) recomputeAssembled() {
	n := len(s.items)
	for i, it := range s.items {
		it.assembled = s.cfg.Layout.AssembledTarget(i, n)
	}
}

// Mode returns the current display mode.
func (s *Scene) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// SelectedID returns the selected item's identity, or "" if none.
func (s *Scene) SelectedID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return ""
	}
	return s.selected.ID
}

// ItemCount returns the current number of items.
func (s *Scene) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// AddPhoto appends a photo item. Every item's assembled target shifts
// because the spiral is a function of (index, count); in-flight scattered
// targets remain valid.
func (s *Scene) AddPhoto(id, fileName string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it := s.newItem(KindPhoto, fileName, "")
	if id != "" {
		it.ID = id
	}
	s.items = append(s.items, it)
	s.recomputeAssembled()
}

// RemovePhoto removes a photo item by identity. Removing the selected
// photo drops the selection and, if the viewer was zoomed into it,
// returns to Scattered. Reports whether an item was removed.
func (s *Scene) RemovePhoto(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, it := range s.items {
		if it.Kind != KindPhoto || it.ID != id {
			continue
		}
		s.items = append(s.items[:i], s.items[i+1:]...)
		if s.selected == it {
			s.selected = nil
			if s.mode == ModeZoomed {
				s.mode = ModeScattered
			}
		}
		s.recomputeAssembled()
		return true
	}
	return false
}

// Deselect is the explicit close-viewer action: it clears the selection
// and returns a zoomed display to Scattered.
func (s *Scene) Deselect() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selected = nil
	if s.mode == ModeZoomed {
		s.mode = ModeScattered
	}
}

// Advance is the per-frame step: apply the latest gesture descriptor (if
// any) to the state machine, then ease every transform toward its active
// target. A nil descriptor means no hand was seen; the mode and targets
// are retained and blending simply continues.
func (s *Scene) Advance(d *gesture.Descriptor, delta float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if d != nil {
		s.apply(*d)
	}
	s.blend(delta)
}

// apply runs one state-machine step. A fist is treated as an interrupt:
// it wins over any other flag the descriptor happens to carry, and is a
// no-op when the display is already assembled. Callers hold mu.
func (s *Scene) apply(d gesture.Descriptor) {
	switch {
	case d.Fist:
		if s.mode != ModeAssembled {
			s.mode = ModeAssembled
			s.selected = nil
		}
	case s.mode == ModeAssembled && d.Open:
		s.mode = ModeScattered
	case s.mode == ModeScattered && d.Grabbing && s.selected == nil:
		if it := s.pickNearest(d.Position); it != nil {
			s.selected = it
			s.mode = ModeZoomed
		}
	}

	// Camera-follow steering: the hand's position pans and tilts the
	// camera around its base pose.
	s.camTarget = r3.Vec{
		X: s.cfg.CameraBase.X + (d.Position.X-0.5)*s.cfg.Tuning.CameraPan,
		Y: s.cfg.CameraBase.Y + (0.5-d.Position.Y)*s.cfg.Tuning.CameraTilt,
		Z: s.cfg.CameraBase.Z,
	}
}

// blend eases every transform one step toward its active target.
// The blend fraction is clamped so rate*delta > 1 (a stall) lands
// exactly on the target instead of oscillating. Callers hold mu.
func (s *Scene) blend(delta float64) {
	t := s.cfg.Tuning
	a := blendFactor(t.Rate, delta)
	ca := blendFactor(t.CameraRate, delta)

	s.camera = easeVec(s.camera, s.camTarget, ca)

	for _, it := range s.items {
		target := it.assembled
		scaleTarget := t.AssembledScale

		switch s.mode {
		case ModeScattered:
			target = it.scattered
			scaleTarget = t.ScatteredScale
		case ModeZoomed:
			// Non-selected items keep the scattered behavior; the
			// selection shrinks away while the viewer takes over.
			target = it.scattered
			scaleTarget = t.ScatteredScale
			if it == s.selected {
				scaleTarget = 0
			}
		}

		it.Position = easeVec(it.Position, target, a)
		it.Scale = easeScalar(it.Scale, scaleTarget, a)

		if s.mode == ModeAssembled {
			it.Yaw += t.SpinRate * delta
		} else {
			face := faceYaw(it.Position, s.camera)
			it.Yaw = easeAngle(it.Yaw, face, a)
		}
	}
}

// Camera returns the current eased camera position.
func (s *Scene) Camera() r3.Vec {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.camera
}
