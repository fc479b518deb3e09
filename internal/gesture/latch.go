package gesture

import "sync/atomic"

// Latch is a single-slot, read-latest holder for the most recent gesture
// descriptor. The tracking loop overwrites it whenever a hand is seen;
// the render loop reads whatever is current. Descriptors are never
// queued: a burst of camera frames faster than render frames simply
// overwrites, which is safe because state transitions are idempotent
// under repeated identical descriptors.
type Latch struct {
	current atomic.Pointer[Descriptor]
}

// Store latches a new descriptor. Nil descriptors are ignored so that
// hand-free frames leave the last known gesture in place.
func (l *Latch) Store(d *Descriptor) {
	if d == nil {
		return
	}
	l.current.Store(d)
}

// Load returns the latest latched descriptor, or nil if no hand has been
// seen yet.
func (l *Latch) Load() *Descriptor {
	return l.current.Load()
}

// Clear drops the latched descriptor, e.g. when tracking is toggled off.
func (l *Latch) Clear() {
	l.current.Store(nil)
}
