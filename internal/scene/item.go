package scene

import "gonum.org/v1/gonum/spatial/r3"

// Kind distinguishes displayable photos from decorative ornaments.
type Kind int

const (
	KindOrnament Kind = iota
	KindPhoto
)

func (k Kind) String() string {
	if k == KindPhoto {
		return "photo"
	}
	return "ornament"
}

// Item is one animated element of the display: a photo card or a
// decorative ornament particle. Its live transform is continuously eased
// by the blender toward one of two fixed targets; nothing else moves it.
type Item struct {
	ID       string
	Kind     Kind
	Color    string // ornaments: display color, hex
	FileName string // photos: image file served to the front-end

	// Live transform, mutated only by Advance.
	Position r3.Vec
	Scale    float64
	Yaw      float64

	// Fixed targets. The assembled target is recomputed when the item
	// count changes; the scattered target is drawn once at creation and
	// held for the item's lifetime.
	assembled r3.Vec
	scattered r3.Vec
}

// AssembledTarget returns the item's spiral-tree position.
func (it *Item) AssembledTarget() r3.Vec { return it.assembled }

// ScatteredTarget returns the item's fixed gallery position.
func (it *Item) ScatteredTarget() r3.Vec { return it.scattered }
