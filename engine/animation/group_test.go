package animation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jaswant99/propanim/common"
)

func scalarTrack(name string, frames ...float32) *Track {
	kfs := make([]Keyframe, len(frames))
	for i, f := range frames {
		kfs[i] = Keyframe{Frame: f, Value: common.Float(f)}
	}
	return &Track{
		Name:      name,
		ValueType: ValueTypeFloat,
		Keyframes: kfs,
	}
}

func TestGroupFrameBounds(t *testing.T) {
	g := NewGroup("walk",
		WithTrack(scalarTrack("a", 0.5, 2)),
		WithTrack(scalarTrack("b", 1, 3)),
	)

	assert.InDelta(t, 0.5, g.From(), 1e-6)
	assert.InDelta(t, 3, g.To(), 1e-6)
}

func TestGroupEmptyBoundsAreZero(t *testing.T) {
	g := NewGroup("empty")

	assert.Zero(t, g.From())
	assert.Zero(t, g.To())
}

func TestGroupTrackLookup(t *testing.T) {
	g := NewGroup("walk", WithTrack(scalarTrack("a", 0, 1)))

	require.NotNil(t, g.Track("a"))
	assert.Nil(t, g.Track("missing"))
}

func TestGroupNormalizePadsToSharedBounds(t *testing.T) {
	late := scalarTrack("late", 1, 3)
	early := scalarTrack("early", 0, 2)

	g := NewGroup("walk", WithTrack(late), WithTrack(early))
	g.Normalize()

	// The late track gains a copy of its first keyframe at the group start.
	require.Len(t, late.Keyframes, 3)
	assert.InDelta(t, 0, late.Keyframes[0].Frame, 1e-6)
	assert.Equal(t, late.Keyframes[1].Value, late.Keyframes[0].Value)

	// The early track gains a copy of its last keyframe at the group end.
	require.Len(t, early.Keyframes, 3)
	assert.InDelta(t, 3, early.Keyframes[2].Frame, 1e-6)
	assert.Equal(t, early.Keyframes[1].Value, early.Keyframes[2].Value)
}

func TestGroupNormalizeLeavesAlignedTracksAlone(t *testing.T) {
	a := scalarTrack("a", 0, 2)
	b := scalarTrack("b", 0, 2)

	g := NewGroup("walk", WithTrack(a), WithTrack(b))
	g.Normalize()

	assert.Len(t, a.Keyframes, 2)
	assert.Len(t, b.Keyframes, 2)
}

func TestGroupTargetedTracksKeepTargets(t *testing.T) {
	target := &struct{ name string }{name: "obj"}
	tr := scalarTrack("a", 0, 1)

	g := NewGroup("walk")
	g.AddTargetedTrack(tr, target)
	g.AddTrack(scalarTrack("b", 0, 1))

	targeted := g.TargetedTracks()
	require.Len(t, targeted, 1)
	assert.Same(t, tr, targeted[0].Track)
	assert.Same(t, target, targeted[0].Target)

	// Both tracks are visible through Tracks regardless of targeting.
	assert.Len(t, g.Tracks(), 2)
}
