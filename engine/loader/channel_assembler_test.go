package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jaswant99/propanim/common"
	"github.com/Jaswant99/propanim/engine/animation"
)

// assemblerFixture parses the document and wires an assembler for its first
// animation against the standard test scene.
func assemblerFixture(t *testing.T, doc *gltfDocument) *channelAssembler {
	t.Helper()

	p := parseTestDoc(t, doc)
	anim := &p.Document().Animations[0]
	decoder := newSamplerDecoder(p, anim, 0)
	return newChannelAssembler(decoder, testScene(), 0)
}

func TestAssembleStepScalarTrack(t *testing.T) {
	doc := &gltfDocument{}
	input := addFloatAccessor(doc, gltfAccessorTypeScalar, 0, 1, 2)
	output := addFloatAccessor(doc, gltfAccessorTypeScalar, 1, 2, 3)
	doc.Animations = []gltfAnimation{
		{Samplers: []gltfAnimSampler{{Input: input, Output: output, Interpolation: gltfAnimInterpolationStep}}},
	}

	a := assemblerFixture(t, doc)

	tracks, err := a.assemble(propertyChannel{
		samplerIndex: 0,
		target:       "materials/0/alphaCutoff",
		trackName:    "anim_channel0",
	})
	require.NoError(t, err)
	require.Len(t, tracks, 1)

	track := tracks[0].Track
	assert.Equal(t, "anim_channel0", track.Name)
	assert.Equal(t, "alphaCutOff", track.TargetPath)
	assert.Equal(t, animation.ValueTypeFloat, track.ValueType)
	assert.Equal(t, animation.InterpolationStep, track.Interpolation)

	require.Len(t, track.Keyframes, 3)
	for i, kf := range track.Keyframes {
		assert.InDelta(t, float32(i), kf.Frame, 1e-6)
		assert.Equal(t, common.Float(i+1), kf.Value)
		assert.Nil(t, kf.InTangent)
		assert.Nil(t, kf.OutTangent)
	}
}

func TestAssembleColor4SplitsAlphaTrack(t *testing.T) {
	doc := &gltfDocument{}
	input := addFloatAccessor(doc, gltfAccessorTypeScalar, 0, 0.5)
	output := addFloatAccessor(doc, gltfAccessorTypeVec4,
		1, 0, 0, 1,
		0, 1, 0, 0.25,
	)
	doc.Animations = []gltfAnimation{
		{Samplers: []gltfAnimSampler{{Input: input, Output: output}}},
	}

	a := assemblerFixture(t, doc)

	tracks, err := a.assemble(propertyChannel{
		samplerIndex: 0,
		target:       "materials/0/pbrMetallicRoughness/baseColorFactor",
		trackName:    "fade_channel0",
	})
	require.NoError(t, err)
	require.Len(t, tracks, 2)

	primary := tracks[0].Track
	assert.Equal(t, "fade_channel0", primary.Name)
	assert.Equal(t, "albedoColor", primary.TargetPath)
	assert.Equal(t, animation.ValueTypeColor3, primary.ValueType)
	require.Len(t, primary.Keyframes, 2)
	assert.Equal(t, common.Color3{1, 0, 0}, primary.Keyframes[0].Value)
	assert.Equal(t, common.Color3{0, 1, 0}, primary.Keyframes[1].Value)

	alpha := tracks[1].Track
	assert.Equal(t, "fade_channel0_alpha", alpha.Name)
	assert.Equal(t, "alpha", alpha.TargetPath)
	assert.Equal(t, animation.ValueTypeFloat, alpha.ValueType)
	require.Len(t, alpha.Keyframes, 2)
	assert.Equal(t, common.Float(1), alpha.Keyframes[0].Value)
	assert.Equal(t, common.Float(0.25), alpha.Keyframes[1].Value)

	// Both tracks are time-aligned and bound to the same material.
	for i := range primary.Keyframes {
		assert.Equal(t, primary.Keyframes[i].Frame, alpha.Keyframes[i].Frame)
	}
	assert.Same(t, tracks[0].Target, tracks[1].Target)
}

func TestAssembleCubicSplineTangentOrder(t *testing.T) {
	doc := &gltfDocument{}
	input := addFloatAccessor(doc, gltfAccessorTypeScalar, 0, 1)
	// Two keyframes, three samples each: in-tangent, value, out-tangent.
	output := addFloatAccessor(doc, gltfAccessorTypeScalar,
		-1, 10, 1,
		-2, 20, 2,
	)
	doc.Animations = []gltfAnimation{
		{Samplers: []gltfAnimSampler{{Input: input, Output: output, Interpolation: gltfAnimInterpolationCubicSpline}}},
	}

	a := assemblerFixture(t, doc)

	tracks, err := a.assemble(propertyChannel{
		samplerIndex: 0,
		target:       "cameras/0/perspective/yfov",
		trackName:    "zoom_channel0",
	})
	require.NoError(t, err)
	require.Len(t, tracks, 1)

	track := tracks[0].Track
	assert.Equal(t, "fov", track.TargetPath)
	assert.Equal(t, animation.InterpolationCubicSpline, track.Interpolation)

	require.Len(t, track.Keyframes, 2)
	assert.Equal(t, common.Float(-1), track.Keyframes[0].InTangent)
	assert.Equal(t, common.Float(10), track.Keyframes[0].Value)
	assert.Equal(t, common.Float(1), track.Keyframes[0].OutTangent)
	assert.Equal(t, common.Float(-2), track.Keyframes[1].InTangent)
	assert.Equal(t, common.Float(20), track.Keyframes[1].Value)
	assert.Equal(t, common.Float(2), track.Keyframes[1].OutTangent)
}

func TestAssembleShortOutputFails(t *testing.T) {
	doc := &gltfDocument{}
	input := addFloatAccessor(doc, gltfAccessorTypeScalar, 0, 1, 2)
	// VEC3 target needs 9 components for 3 keyframes; provide 6.
	output := addFloatAccessor(doc, gltfAccessorTypeVec3, 1, 2, 3, 4, 5, 6)
	doc.Animations = []gltfAnimation{
		{Samplers: []gltfAnimSampler{{Input: input, Output: output}}},
	}

	a := assemblerFixture(t, doc)

	_, err := a.assemble(propertyChannel{
		samplerIndex: 0,
		target:       "nodes/0/translation",
		trackName:    "move_channel0",
	})
	require.ErrorIs(t, err, ErrAccessorRange)
	assert.Contains(t, err.Error(), "nodes/0/translation")
}

func TestAssembleInvalidTargetFails(t *testing.T) {
	doc := &gltfDocument{}
	input := addFloatAccessor(doc, gltfAccessorTypeScalar, 0)
	output := addFloatAccessor(doc, gltfAccessorTypeScalar, 1)
	doc.Animations = []gltfAnimation{
		{Samplers: []gltfAnimSampler{{Input: input, Output: output}}},
	}

	a := assemblerFixture(t, doc)

	_, err := a.assemble(propertyChannel{
		samplerIndex: 0,
		target:       "textures/0/sampler",
		trackName:    "bad_channel0",
	})
	require.ErrorIs(t, err, ErrInvalidTargetPath)
	assert.Contains(t, err.Error(), "textures/0/sampler")
}
