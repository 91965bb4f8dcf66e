// Package control turns raw window pointer and touch events into stage
// input.
package control

import "github.com/Faultbox/lionfan/pkg/math"

// Target receives pointer offsets from the viewport center and engagement
// changes. *stage.Stage implements it.
type Target interface {
	SetPointer(x, y float32)
	Engage()
	Release()
}

// Tracker converts window coordinates to center offsets and applies the
// mouse and touch engagement rules.
type Tracker struct {
	target Target
	half   math.Vec2
	last   math.Vec2
	seen   bool
}

// NewTracker returns a tracker for a width x height viewport.
func NewTracker(target Target, width, height int) *Tracker {
	t := &Tracker{target: target}
	t.Resize(width, height)
	return t
}

// Resize updates the viewport size. The last pointer position, if any, is
// re-sent so the offset stays relative to the new center.
func (t *Tracker) Resize(width, height int) {
	t.half = math.Vec2{X: float32(width) / 2, Y: float32(height) / 2}
	t.send()
}

// Offset converts a window position to an offset from the viewport center.
func (t *Tracker) Offset(x, y float32) math.Vec2 {
	return math.Vec2{X: x, Y: y}.Sub(t.half)
}

// MouseMove tracks the cursor without changing engagement.
func (t *Tracker) MouseMove(x, y float32) {
	t.move(x, y)
}

// MouseDown engages.
func (t *Tracker) MouseDown() {
	t.target.Engage()
}

// MouseUp releases.
func (t *Tracker) MouseUp() {
	t.target.Release()
}

// TouchStart engages at (x, y) for a single contact. Multi-finger starts
// are ignored and leave engagement as it was.
func (t *Tracker) TouchStart(x, y float32, contacts int) {
	t.touch(x, y, contacts)
}

// TouchMove behaves like TouchStart: a single contact moves and engages.
func (t *Tracker) TouchMove(x, y float32, contacts int) {
	t.touch(x, y, contacts)
}

// TouchEnd always releases.
func (t *Tracker) TouchEnd() {
	t.target.Release()
}

func (t *Tracker) touch(x, y float32, contacts int) {
	if contacts != 1 {
		return
	}
	t.move(x, y)
	t.target.Engage()
}

func (t *Tracker) move(x, y float32) {
	t.last = math.Vec2{X: x, Y: y}
	t.seen = true
	t.send()
}

func (t *Tracker) send() {
	if !t.seen {
		return
	}
	off := t.Offset(t.last.X, t.last.Y)
	t.target.SetPointer(off.X, off.Y)
}
