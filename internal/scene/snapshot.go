package scene

// ItemState is one item's transform as consumed by the renderer.
type ItemState struct {
	ID       string     `json:"id"`
	Kind     string     `json:"kind"`
	Color    string     `json:"color,omitempty"`
	FileName string     `json:"fileName,omitempty"`
	Position [3]float64 `json:"position"`
	Scale    float64    `json:"scale"`
	Yaw      float64    `json:"yaw"`
	Selected bool       `json:"selected"`
}

// Snapshot is one frame of the presentation contract: every item's
// transform plus the mode, selection, and camera the overlay needs.
type Snapshot struct {
	Mode       string      `json:"mode"`
	SelectedID string      `json:"selectedId,omitempty"`
	Camera     [3]float64  `json:"camera"`
	Items      []ItemState `json:"items"`
}

// Snapshot captures the current display state for the renderer.
func (s *Scene) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Mode:   s.mode.String(),
		Camera: [3]float64{s.camera.X, s.camera.Y, s.camera.Z},
		Items:  make([]ItemState, 0, len(s.items)),
	}
	if s.selected != nil {
		snap.SelectedID = s.selected.ID
	}

	for _, it := range s.items {
		snap.Items = append(snap.Items, ItemState{
			ID:       it.ID,
			Kind:     it.Kind.String(),
			Color:    it.Color,
			FileName: it.FileName,
			Position: [3]float64{it.Position.X, it.Position.Y, it.Position.Z},
			Scale:    it.Scale,
			Yaw:      it.Yaw,
			Selected: it == s.selected,
		})
	}

	return snap
}
