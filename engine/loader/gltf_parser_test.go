package loader

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// floatBytes encodes float32 values as little-endian bytes.
func floatBytes(values ...float32) []byte {
	buf := new(bytes.Buffer)
	if err := binary.Write(buf, binary.LittleEndian, values); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// addFloatAccessor appends a dedicated buffer, bufferView, and FLOAT accessor
// holding the given components to the document and returns the accessor index.
func addFloatAccessor(doc *gltfDocument, accType string, components ...float32) int {
	data := floatBytes(components...)

	bufferIndex := len(doc.Buffers)
	doc.Buffers = append(doc.Buffers, gltfBuffer{
		URI:        "data:application/octet-stream;base64," + base64.StdEncoding.EncodeToString(data),
		ByteLength: len(data),
	})

	viewIndex := len(doc.BufferViews)
	doc.BufferViews = append(doc.BufferViews, gltfBufferView{
		Buffer:     bufferIndex,
		ByteLength: len(data),
	})

	accessorIndex := len(doc.Accessors)
	doc.Accessors = append(doc.Accessors, gltfAccessor{
		BufferView:    &viewIndex,
		ComponentType: gltfComponentTypeFloat,
		Count:         len(components) / gltfAccessorTypeComponentCount(accType),
		Type:          accType,
	})

	return accessorIndex
}

// parseTestDoc marshals the document and runs it through the parser the way a
// .gltf file would load.
func parseTestDoc(t *testing.T, doc *gltfDocument) gltfParser {
	t.Helper()

	if doc.Asset.Version == "" {
		doc.Asset.Version = "2.0"
	}

	raw, err := json.Marshal(doc)
	require.NoError(t, err)

	p := newGLTFParser()
	require.NoError(t, p.ParseReader(bytes.NewReader(raw), false))
	return p
}

// buildGLB wraps a JSON document and an optional binary chunk in the GLB
// container format, padding chunks to the 4-byte alignment GLB requires.
func buildGLB(t *testing.T, jsonData, binData []byte) []byte {
	t.Helper()

	for len(jsonData)%4 != 0 {
		jsonData = append(jsonData, ' ')
	}
	for len(binData)%4 != 0 {
		binData = append(binData, 0)
	}

	total := 12 + 8 + len(jsonData)
	if binData != nil {
		total += 8 + len(binData)
	}

	buf := new(bytes.Buffer)
	require.NoError(t, binary.Write(buf, binary.LittleEndian, gltfGLBHeader{
		Magic:   gltfGLBMagic,
		Version: gltfGLBVersion,
		Length:  uint32(total),
	}))

	require.NoError(t, binary.Write(buf, binary.LittleEndian, gltfGLBChunkHeader{
		ChunkLength: uint32(len(jsonData)),
		ChunkType:   gltfGLBChunkJSON,
	}))
	buf.Write(jsonData)

	if binData != nil {
		require.NoError(t, binary.Write(buf, binary.LittleEndian, gltfGLBChunkHeader{
			ChunkLength: uint32(len(binData)),
			ChunkType:   gltfGLBChunkBIN,
		}))
		buf.Write(binData)
	}

	return buf.Bytes()
}

func TestParseGLTFLoadsDataURIBuffers(t *testing.T) {
	doc := &gltfDocument{}
	acc := addFloatAccessor(doc, gltfAccessorTypeScalar, 0, 1, 2)

	p := parseTestDoc(t, doc)

	values, err := p.ReadScalarAccessor(acc)
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 1, 2}, values)
}

func TestParseRejectsWrongVersion(t *testing.T) {
	doc := &gltfDocument{Asset: gltfAsset{Version: "1.0"}}
	raw, err := json.Marshal(doc)
	require.NoError(t, err)

	p := newGLTFParser()
	err = p.ParseReader(bytes.NewReader(raw), false)
	assert.ErrorIs(t, err, errInvalidGLTFVersion)
}

func TestParseGLBUsesBinaryChunk(t *testing.T) {
	binData := floatBytes(1, 2, 3)

	viewIndex := 0
	doc := &gltfDocument{
		Asset: gltfAsset{Version: "2.0"},
		Buffers: []gltfBuffer{
			{ByteLength: len(binData)}, // no URI: sourced from the GLB BIN chunk
		},
		BufferViews: []gltfBufferView{
			{Buffer: 0, ByteLength: len(binData)},
		},
		Accessors: []gltfAccessor{
			{
				BufferView:    &viewIndex,
				ComponentType: gltfComponentTypeFloat,
				Count:         3,
				Type:          gltfAccessorTypeScalar,
			},
		},
	}

	raw, err := json.Marshal(doc)
	require.NoError(t, err)

	p := newGLTFParser()
	require.NoError(t, p.ParseReader(bytes.NewReader(buildGLB(t, raw, binData)), true))

	values, err := p.ReadScalarAccessor(0)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2, 3}, values)
}

func TestParseGLBRejectsBadMagic(t *testing.T) {
	data := buildGLB(t, []byte(`{"asset":{"version":"2.0"}}`), nil)
	data[0] = 'x'

	p := newGLTFParser()
	err := p.ParseReader(bytes.NewReader(data), true)
	assert.ErrorIs(t, err, errInvalidGLBMagic)
}

func TestReadFloatAccessorFlattensVectors(t *testing.T) {
	doc := &gltfDocument{}
	acc := addFloatAccessor(doc, gltfAccessorTypeVec3, 1, 2, 3, 4, 5, 6)

	p := parseTestDoc(t, doc)

	values, err := p.ReadFloatAccessor(acc)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6}, values)
}

func TestReadFloatAccessorRejectsNonFloat(t *testing.T) {
	doc := &gltfDocument{}
	acc := addFloatAccessor(doc, gltfAccessorTypeScalar, 0, 1)
	doc.Accessors[acc].ComponentType = gltfComponentTypeUnsignedShort

	p := parseTestDoc(t, doc)

	_, err := p.ReadFloatAccessor(acc)
	assert.Error(t, err)
}

func TestParseExtensionChannels(t *testing.T) {
	doc := &gltfDocument{}
	input := addFloatAccessor(doc, gltfAccessorTypeScalar, 0, 1)
	output := addFloatAccessor(doc, gltfAccessorTypeVec4, 1, 1, 1, 1, 0, 0, 0, 0)
	doc.Animations = []gltfAnimation{
		{
			Name: "fade",
			Samplers: []gltfAnimSampler{
				{Input: input, Output: output, Interpolation: gltfAnimInterpolationLinear},
			},
			Extensions: &gltfAnimationExtensions{
				PropertyAnimation: &gltfPropertyAnimation{
					Channels: []gltfPropertyChannel{
						{Sampler: 0, Target: "materials/0/pbrMetallicRoughness/baseColorFactor"},
					},
				},
			},
		},
	}

	p := parseTestDoc(t, doc)

	parsed := p.Document()
	require.Len(t, parsed.Animations, 1)
	require.NotNil(t, parsed.Animations[0].Extensions)
	require.NotNil(t, parsed.Animations[0].Extensions.PropertyAnimation)
	channels := parsed.Animations[0].Extensions.PropertyAnimation.Channels
	require.Len(t, channels, 1)
	assert.Equal(t, "materials/0/pbrMetallicRoughness/baseColorFactor", channels[0].Target)
}
