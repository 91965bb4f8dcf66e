package control

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/lionfan/pkg/math"
)

type recorder struct {
	pointer  math.Vec2
	engaged  bool
	engages  int
	releases int
}

func (r *recorder) SetPointer(x, y float32) { r.pointer = math.Vec2{X: x, Y: y} }
func (r *recorder) Engage()                 { r.engaged = true; r.engages++ }
func (r *recorder) Release()                { r.engaged = false; r.releases++ }

func TestMouse(t *testing.T) {
	r := &recorder{}
	tr := NewTracker(r, 800, 600)

	tr.MouseMove(400, 300)
	assert.Equal(t, math.Vec2{}, r.pointer)
	assert.False(t, r.engaged)

	tr.MouseMove(500, 100)
	assert.Equal(t, math.Vec2{X: 100, Y: -200}, r.pointer)

	tr.MouseDown()
	assert.True(t, r.engaged)
	tr.MouseMove(0, 0)
	assert.True(t, r.engaged, "moving does not release")
	tr.MouseUp()
	assert.False(t, r.engaged)
}

func TestTouchSemantics(t *testing.T) {
	tests := []struct {
		name    string
		events  func(tr *Tracker)
		engaged bool
		pointer math.Vec2
	}{
		{
			name:    "single contact start engages",
			events:  func(tr *Tracker) { tr.TouchStart(300, 200, 1) },
			engaged: true,
			pointer: math.Vec2{X: -100, Y: -100},
		},
		{
			name:    "multi contact start is ignored",
			events:  func(tr *Tracker) { tr.TouchStart(300, 200, 2) },
			engaged: false,
			pointer: math.Vec2{},
		},
		{
			name: "multi contact start keeps engagement",
			events: func(tr *Tracker) {
				tr.TouchStart(500, 300, 1)
				tr.TouchStart(100, 100, 3)
			},
			engaged: true,
			pointer: math.Vec2{X: 100},
		},
		{
			name:    "single contact move engages",
			events:  func(tr *Tracker) { tr.TouchMove(400, 500, 1) },
			engaged: true,
			pointer: math.Vec2{Y: 200},
		},
		{
			name: "end always releases",
			events: func(tr *Tracker) {
				tr.TouchStart(400, 300, 1)
				tr.TouchStart(0, 0, 2)
				tr.TouchEnd()
			},
			engaged: false,
			pointer: math.Vec2{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &recorder{}
			tr := NewTracker(r, 800, 600)
			tr.MouseMove(400, 300)
			tt.events(tr)
			assert.Equal(t, tt.engaged, r.engaged)
			assert.Equal(t, tt.pointer, r.pointer)
		})
	}
}

func TestResizeRecentres(t *testing.T) {
	r := &recorder{pointer: math.Vec2{X: 7, Y: 7}}
	tr := NewTracker(r, 800, 600)
	tr.Resize(640, 480)
	assert.Equal(t, math.Vec2{X: 7, Y: 7}, r.pointer, "no pointer sent before the first event")

	tr.Resize(800, 600)
	tr.MouseMove(400, 300)
	assert.Equal(t, math.Vec2{}, r.pointer)

	tr.Resize(1000, 1000)
	assert.Equal(t, math.Vec2{X: -100, Y: -200}, r.pointer)
	assert.Equal(t, math.Vec2{X: 500, Y: 500}, tr.Offset(1000, 1000))
}
