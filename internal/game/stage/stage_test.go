package stage

import (
	stdmath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/lionfan/internal/anim"
	"github.com/Faultbox/lionfan/internal/config"
)

func newStage(t *testing.T) *Stage {
	t.Helper()
	cfg := config.Default().Animation
	cfg.Seed = 11
	s, err := New(cfg)
	require.NoError(t, err)
	return s
}

func TestIdleCenterPointer(t *testing.T) {
	s := newStage(t)
	for i := 0; i < 60; i++ {
		s.Tick()
		pose := s.Lion().Pose
		assert.InDelta(t, 0, pose.HeadRotX.Target, 1e-6)
		assert.InDelta(t, 0, pose.HeadRotY.Target, 1e-6)
		assert.Equal(t, float32(1), pose.EyeScale.Target)
		assert.Equal(t, anim.Look, s.Mode())
	}
	assert.Zero(t, s.Fan().Dynamics.State.Speed)
}

func TestEngageReleaseScenario(t *testing.T) {
	s := newStage(t)
	s.SetPointer(100, 0)
	s.Engage()

	var prev float32
	for i := 1; i <= 50; i++ {
		s.Tick()
		require.Equal(t, anim.Cool, s.Mode(), "tick %d", i)
		speed := s.Fan().Dynamics.State.Speed
		assert.GreaterOrEqual(t, speed, prev)
		prev = speed
	}
	assert.Greater(t, prev, float32(0))
	assert.True(t, s.Fan().Dynamics.State.Blowing)

	s.Release()
	for i := 51; i <= 100; i++ {
		s.Tick()
		require.Equal(t, anim.Look, s.Mode(), "tick %d", i)
		st := s.Fan().Dynamics.State
		assert.Zero(t, st.Acceleration)
		assert.Less(t, st.Speed, prev, "tick %d", i)
		assert.Greater(t, st.Speed, float32(0))
		prev = st.Speed
	}
	assert.Equal(t, uint64(100), s.Frames())
}

func TestSetPointerIgnoresNonFinite(t *testing.T) {
	s := newStage(t)
	s.SetPointer(30, -20)
	s.SetPointer(float32(stdmath.NaN()), 0)
	s.SetPointer(0, float32(stdmath.Inf(-1)))
	assert.Equal(t, float32(30), s.Pointer().X)
	assert.Equal(t, float32(-20), s.Pointer().Y)
}

func TestSeedReproducesMane(t *testing.T) {
	a, b := newStage(t), newStage(t)
	assert.Equal(t, uint64(11), a.Seed())
	assert.Equal(t, a.Lion().Wind.Mane(), b.Lion().Wind.Mane())
}

func TestZeroSeedIsReplaced(t *testing.T) {
	s, err := New(config.Default().Animation)
	require.NoError(t, err)
	assert.NotZero(t, s.Seed())
}

func TestRootHoldsLionAndFan(t *testing.T) {
	s := newStage(t)
	assert.Equal(t, 1+51+8, s.Root().Count())
	assert.Same(t, s.Lion().Root, s.Root().Find("lion"))
	assert.Same(t, s.Fan().Root, s.Root().Find("fan"))
}

type fakeSource struct {
	subs map[int]func()
	next int
}

func (f *fakeSource) Subscribe(fn func()) func() {
	if f.subs == nil {
		f.subs = map[int]func(){}
	}
	id := f.next
	f.next++
	f.subs[id] = fn
	return func() { delete(f.subs, id) }
}

func (f *fakeSource) frame() {
	for _, fn := range f.subs {
		fn()
	}
}

func TestAttachDetach(t *testing.T) {
	s := newStage(t)
	src := &fakeSource{}

	s.Attach(src)
	src.frame()
	src.frame()
	assert.Equal(t, uint64(2), s.Frames())

	// Re-attaching does not double-register.
	s.Attach(src)
	src.frame()
	assert.Equal(t, uint64(3), s.Frames())
	assert.Len(t, src.subs, 1)

	s.Detach()
	s.Detach()
	src.frame()
	assert.Equal(t, uint64(3), s.Frames())
	assert.Empty(t, src.subs)
}
