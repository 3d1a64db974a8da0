package loader

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jaswant99/propanim/engine/animation"
)

// decoderFixture builds a parsed single-animation document with one scalar
// sampler and returns its decoder.
func decoderFixture(t *testing.T, interpolation string) *samplerDecoder {
	t.Helper()

	doc := &gltfDocument{}
	input := addFloatAccessor(doc, gltfAccessorTypeScalar, 0, 1, 2)
	output := addFloatAccessor(doc, gltfAccessorTypeScalar, 10, 20, 30)
	doc.Animations = []gltfAnimation{
		{
			Samplers: []gltfAnimSampler{
				{Input: input, Output: output, Interpolation: interpolation},
			},
		},
	}

	p := parseTestDoc(t, doc)
	return newSamplerDecoder(p, &p.Document().Animations[0], 0)
}

func TestSamplerDecoderReadsData(t *testing.T) {
	d := decoderFixture(t, gltfAnimInterpolationStep)

	data, err := d.decode(0)
	require.NoError(t, err)

	assert.Equal(t, []float32{0, 1, 2}, data.input)
	assert.Equal(t, []float32{10, 20, 30}, data.output)
	assert.Equal(t, animation.InterpolationStep, data.interpolation)
}

func TestSamplerDecoderDefaultsToLinear(t *testing.T) {
	d := decoderFixture(t, "")

	data, err := d.decode(0)
	require.NoError(t, err)
	assert.Equal(t, animation.InterpolationLinear, data.interpolation)
}

func TestSamplerDecoderMemoizes(t *testing.T) {
	d := decoderFixture(t, gltfAnimInterpolationLinear)

	first, err := d.decode(0)
	require.NoError(t, err)
	second, err := d.decode(0)
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestSamplerDecoderConcurrentCallersShareOneDecode(t *testing.T) {
	d := decoderFixture(t, gltfAnimInterpolationLinear)

	const callers = 16
	results := make([]*samplerData, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			data, err := d.decode(0)
			assert.NoError(t, err)
			results[i] = data
		}(i)
	}
	wg.Wait()

	for i := 1; i < callers; i++ {
		assert.Same(t, results[0], results[i])
	}
}

func TestSamplerDecoderRejectsUnknownInterpolation(t *testing.T) {
	d := decoderFixture(t, "SMOOTH")

	_, err := d.decode(0)
	require.ErrorIs(t, err, ErrMalformedAnimation)
	assert.Contains(t, err.Error(), "/animations/0/samplers/0")
	assert.Contains(t, err.Error(), "SMOOTH")
}

func TestSamplerDecoderRejectsOutOfRangeIndex(t *testing.T) {
	d := decoderFixture(t, gltfAnimInterpolationLinear)

	_, err := d.decode(5)
	assert.ErrorIs(t, err, ErrMalformedAnimation)
}
