// Package scene holds the display state machine, the tree and gallery
// layouts, and the per-frame animation blender that eases every item
// toward its active target.
package scene

// Mode is the current display mode. Exactly one mode is active at a
// time; transitions are driven by gesture descriptors.
type Mode int

const (
	// ModeAssembled: items form the spiral tree. Initial mode.
	ModeAssembled Mode = iota
	// ModeScattered: items drift to their gallery positions.
	ModeScattered
	// ModeZoomed: one selected photo cedes focus to the full-screen
	// viewer; everything else keeps its scattered behavior.
	ModeZoomed
)

func (m Mode) String() string {
	switch m {
	case ModeAssembled:
		return "assembled"
	case ModeScattered:
		return "scattered"
	case ModeZoomed:
		return "zoomed"
	default:
		return "unknown"
	}
}
