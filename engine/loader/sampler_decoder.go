package loader

import (
	"fmt"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/Jaswant99/propanim/engine/animation"
)

// samplerData is the decoded form of one animation sampler: keyframe times,
// the flattened value component stream, and the validated interpolation mode.
// Instances are shared between every channel that references the sampler, so
// they are treated as immutable after decode.
type samplerData struct {
	// input holds the keyframe times in seconds, one per keyframe.
	input []float32

	// output holds the flattened value components. Channels slice it through
	// their own cursors; the decoder makes no assumption about element width.
	output []float32

	// interpolation is the validated interpolation mode.
	interpolation animation.Interpolation
}

// samplerDecoder decodes the samplers of a single animation on demand and
// memoizes the results. Channels referencing the same sampler concurrently get
// the same *samplerData back: duplicate decodes are collapsed in flight and the
// result is cached for the life of the decoder.
type samplerDecoder struct {
	parser    gltfParser
	anim      *gltfAnimation
	animIndex int

	flight singleflight.Group

	mu    sync.Mutex
	cache map[int]*samplerData
}

// newSamplerDecoder creates a decoder for the samplers of one animation.
//
// Parameters:
//   - parser: the parser holding the loaded document and buffer data
//   - anim: the animation whose samplers to decode
//   - animIndex: the animation's index in the document, for error context
//
// Returns:
//   - *samplerDecoder: the decoder
func newSamplerDecoder(parser gltfParser, anim *gltfAnimation, animIndex int) *samplerDecoder {
	return &samplerDecoder{
		parser:    parser,
		anim:      anim,
		animIndex: animIndex,
		cache:     make(map[int]*samplerData),
	}
}

// decode returns the decoded data for the given sampler index, decoding it at
// most once. Safe for concurrent use.
//
// Parameters:
//   - samplerIndex: index into the animation's samplers array
//
// Returns:
//   - *samplerData: the shared decoded sampler
//   - error: ErrMalformedAnimation for an out-of-range index or unknown
//     interpolation mode, or the underlying accessor read error
func (d *samplerDecoder) decode(samplerIndex int) (*samplerData, error) {
	d.mu.Lock()
	if cached, ok := d.cache[samplerIndex]; ok {
		d.mu.Unlock()
		return cached, nil
	}
	d.mu.Unlock()

	v, err, _ := d.flight.Do(strconv.Itoa(samplerIndex), func() (any, error) {
		d.mu.Lock()
		if cached, ok := d.cache[samplerIndex]; ok {
			d.mu.Unlock()
			return cached, nil
		}
		d.mu.Unlock()

		data, err := d.decodeSampler(samplerIndex)
		if err != nil {
			return nil, err
		}

		d.mu.Lock()
		d.cache[samplerIndex] = data
		d.mu.Unlock()
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*samplerData), nil
}

// decodeSampler performs the actual accessor reads and interpolation
// validation for one sampler.
func (d *samplerDecoder) decodeSampler(samplerIndex int) (*samplerData, error) {
	if samplerIndex < 0 || samplerIndex >= len(d.anim.Samplers) {
		return nil, fmt.Errorf("%w: /animations/%d: sampler index %d out of range",
			ErrMalformedAnimation, d.animIndex, samplerIndex)
	}
	sampler := &d.anim.Samplers[samplerIndex]

	interpolation, err := parseInterpolation(sampler.Interpolation)
	if err != nil {
		return nil, fmt.Errorf("%w: /animations/%d/samplers/%d: %s",
			ErrMalformedAnimation, d.animIndex, samplerIndex, err)
	}

	input, err := d.parser.ReadScalarAccessor(sampler.Input)
	if err != nil {
		return nil, fmt.Errorf("/animations/%d/samplers/%d input: %w",
			d.animIndex, samplerIndex, err)
	}

	output, err := d.parser.ReadFloatAccessor(sampler.Output)
	if err != nil {
		return nil, fmt.Errorf("/animations/%d/samplers/%d output: %w",
			d.animIndex, samplerIndex, err)
	}

	return &samplerData{
		input:         input,
		output:        output,
		interpolation: interpolation,
	}, nil
}

// parseInterpolation maps a sampler interpolation string to the typed mode.
// An empty string defaults to LINEAR per the glTF spec.
func parseInterpolation(s string) (animation.Interpolation, error) {
	switch s {
	case "", gltfAnimInterpolationLinear:
		return animation.InterpolationLinear, nil
	case gltfAnimInterpolationStep:
		return animation.InterpolationStep, nil
	case gltfAnimInterpolationCubicSpline:
		return animation.InterpolationCubicSpline, nil
	default:
		return 0, fmt.Errorf("unknown interpolation mode %q", s)
	}
}
