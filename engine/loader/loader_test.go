package loader

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jaswant99/propanim/common"
	"github.com/Jaswant99/propanim/engine/animation"
	"github.com/Jaswant99/propanim/engine/light"
)

// animatedDoc builds a document with a node, a material, a spot light, a
// camera, and one animation mixing a core rotation channel with an extension
// color channel of a longer duration.
func animatedDoc() *gltfDocument {
	doc := &gltfDocument{}

	rotInput := addFloatAccessor(doc, gltfAccessorTypeScalar, 0, 1)
	rotOutput := addFloatAccessor(doc, gltfAccessorTypeVec4,
		0, 0, 0, 1,
		0, 0.7071, 0, 0.7071,
	)
	colorInput := addFloatAccessor(doc, gltfAccessorTypeScalar, 0, 2)
	colorOutput := addFloatAccessor(doc, gltfAccessorTypeVec4,
		1, 0, 0, 1,
		0, 0, 1, 0.5,
	)

	nodeIndex := 0
	aspect := float32(1.5)
	doc.Nodes = []gltfNode{{Name: "spinner"}}
	doc.Materials = []gltfMaterial{{Name: "paint"}}
	doc.Cameras = []gltfCamera{
		{
			Name: "main",
			Type: gltfCameraTypePerspective,
			Perspective: &gltfCameraPerspective{
				Yfov:        1.2,
				Znear:       0.01,
				AspectRatio: &aspect,
			},
		},
	}
	doc.Extensions = &gltfDocumentExtensions{
		LightsPunctual: &gltfLightsPunctual{
			Lights: []gltfLight{{Name: "lamp", Type: gltfLightTypeSpot}},
		},
	}
	doc.Animations = []gltfAnimation{
		{
			Name: "spin",
			Channels: []gltfAnimChannel{
				{Sampler: 0, Target: gltfAnimTarget{Node: &nodeIndex, Path: gltfAnimPathRotation}},
			},
			Samplers: []gltfAnimSampler{
				{Input: rotInput, Output: rotOutput},
				{Input: colorInput, Output: colorOutput},
			},
			Extensions: &gltfAnimationExtensions{
				PropertyAnimation: &gltfPropertyAnimation{
					Channels: []gltfPropertyChannel{
						{Sampler: 1, Target: "materials/0/pbrMetallicRoughness/baseColorFactor"},
					},
				},
			},
		},
	}

	return doc
}

func marshalDoc(t *testing.T, doc *gltfDocument) []byte {
	t.Helper()

	if doc.Asset.Version == "" {
		doc.Asset.Version = "2.0"
	}
	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	return raw
}

func TestLoaderLoadReaderBuildsScene(t *testing.T) {
	l := NewLoader(BackendTypeGLTF, WithWorkers(2))

	scn, err := l.LoadReader("spin.gltf", bytes.NewReader(marshalDoc(t, animatedDoc())), false)
	require.NoError(t, err)

	// Inventories.
	require.NotNil(t, scn.Node(0))
	assert.Equal(t, "spinner", scn.Node(0).Name())
	require.NotNil(t, scn.Material(0))
	assert.Equal(t, "paint", scn.Material(0).Name())
	require.NotNil(t, scn.Camera(0))
	assert.InDelta(t, 1.2, scn.Camera(0).Fov(), 1e-6)
	assert.InDelta(t, 1.5, scn.Camera(0).Aspect(), 1e-6)
	require.NotNil(t, scn.Light(0))
	assert.Equal(t, light.LightTypeSpot, scn.Light(0).Type())

	// Animation groups.
	groups := scn.AnimationGroups()
	require.Len(t, groups, 1)
	group := groups[0]
	assert.Equal(t, "spin", group.Name())

	// One core channel plus one color4 extension channel that split in two.
	tracks := group.Tracks()
	require.Len(t, tracks, 3)
	assert.Equal(t, "spin_channel0", tracks[0].Name)
	assert.Equal(t, "spin_channel1", tracks[1].Name)
	assert.Equal(t, "spin_channel1_alpha", tracks[2].Name)

	rotation := group.Track("spin_channel0")
	require.NotNil(t, rotation)
	assert.Equal(t, "rotationQuaternion", rotation.TargetPath)
	assert.Equal(t, animation.ValueTypeQuaternion, rotation.ValueType)

	// The group spans the longest channel and the shorter rotation track was
	// padded to the shared end frame.
	assert.InDelta(t, 0, group.From(), 1e-6)
	assert.InDelta(t, 2, group.To(), 1e-6)
	require.Len(t, rotation.Keyframes, 3)
	assert.InDelta(t, 2, rotation.Keyframes[2].Frame, 1e-6)
	assert.Equal(t, rotation.Keyframes[1].Value, rotation.Keyframes[2].Value)

	// All tracks resolved to live objects.
	targeted := group.TargetedTracks()
	require.Len(t, targeted, 3)
	assert.Same(t, scn.Node(0), targeted[0].Target)
	assert.Same(t, scn.Material(0), targeted[1].Target)
	assert.Same(t, scn.Material(0), targeted[2].Target)

	alpha := group.Track("spin_channel1_alpha")
	require.NotNil(t, alpha)
	assert.Equal(t, "alpha", alpha.TargetPath)
	assert.Equal(t, common.Float(1), alpha.Keyframes[0].Value)
	assert.Equal(t, common.Float(0.5), alpha.Keyframes[1].Value)
}

func TestLoaderCachesByName(t *testing.T) {
	l := NewLoader(BackendTypeGLTF, WithWorkers(1))

	raw := marshalDoc(t, animatedDoc())

	first, err := l.LoadReader("cached.gltf", bytes.NewReader(raw), false)
	require.NoError(t, err)

	// Second load with the same key never re-reads the stream.
	second, err := l.LoadReader("cached.gltf", bytes.NewReader(nil), false)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Same(t, first, l.Get("cached.gltf"))
	assert.Len(t, l.Scenes(), 1)
}

func TestLoaderInvalidExtensionTargetFailsLoad(t *testing.T) {
	doc := animatedDoc()
	doc.Animations[0].Extensions.PropertyAnimation.Channels[0].Target = "materials/0/nope"

	l := NewLoader(BackendTypeGLTF, WithWorkers(2))

	_, err := l.LoadReader("bad.gltf", bytes.NewReader(marshalDoc(t, doc)), false)
	require.ErrorIs(t, err, ErrInvalidTargetPath)
	assert.Contains(t, err.Error(), "materials/0/nope")
}

func TestLoaderRejectsUnknownExtension(t *testing.T) {
	l := NewLoader(BackendTypeGLTF)

	_, err := l.Load("model.obj")
	assert.Error(t, err)
}
