package loader

import (
	"fmt"

	"github.com/Jaswant99/propanim/engine/animation"
	"github.com/Jaswant99/propanim/engine/scene"
)

// propertyChannel is one channel queued for assembly: a sampler index, the
// textual property target, and the track name assigned by the extractor.
type propertyChannel struct {
	samplerIndex int
	target       string
	trackName    string
}

// channelAssembler turns property channels into typed keyframe tracks. One
// assembler serves all channels of a single animation; assemble is safe for
// concurrent use because the decoder memoizes sampler reads and everything
// else is per-call state.
type channelAssembler struct {
	decoder   *samplerDecoder
	registry  *registryNode
	scene     scene.Scene
	animIndex int
}

// newChannelAssembler creates an assembler for one animation's channels.
//
// Parameters:
//   - decoder: the animation's sampler decoder
//   - scn: the scene whose objects resolved targets bind to
//   - animIndex: the animation's index in the document, for error context
//
// Returns:
//   - *channelAssembler: the assembler
func newChannelAssembler(decoder *samplerDecoder, scn scene.Scene, animIndex int) *channelAssembler {
	return &channelAssembler{
		decoder:   decoder,
		registry:  propertyRegistry,
		scene:     scn,
		animIndex: animIndex,
	}
}

// assemble resolves one channel's target, decodes its sampler, and composes
// the keyframe track. A color4 target yields two tracks: the RGB track and a
// time-aligned alpha scalar track suffixed "_alpha" targeting "alpha".
//
// Parameters:
//   - ch: the channel to assemble
//
// Returns:
//   - []animation.TargetedTrack: one or two assembled tracks with their targets
//   - error: ErrInvalidTargetPath, ErrMalformedAnimation, or ErrAccessorRange
//     with file-local context
func (a *channelAssembler) assemble(ch propertyChannel) ([]animation.TargetedTrack, error) {
	desc, err := resolveTarget(a.registry, a.scene, ch.target)
	if err != nil {
		return nil, fmt.Errorf("/animations/%d: %w", a.animIndex, err)
	}

	data, err := a.decoder.decode(ch.samplerIndex)
	if err != nil {
		return nil, err
	}

	samplesPerKeyframe := 1
	if data.interpolation == animation.InterpolationCubicSpline {
		samplesPerKeyframe = 3
	}

	composer := newValueComposer(desc.valueType)

	needed := len(data.input) * samplesPerKeyframe * composer.stride
	if len(data.output) < needed {
		return nil, fmt.Errorf("%w: /animations/%d sampler %d: output has %d components, target %q needs %d",
			ErrAccessorRange, a.animIndex, ch.samplerIndex, len(data.output), ch.target, needed)
	}

	track, err := a.composeTrack(ch.trackName, desc.propertyPath, composer, data)
	if err != nil {
		return nil, fmt.Errorf("/animations/%d target %q: %w", a.animIndex, ch.target, err)
	}

	tracks := []animation.TargetedTrack{{Track: track, Target: desc.object}}

	if desc.valueType == animation.ValueTypeColor4 {
		alphaTrack, err := a.composeTrack(ch.trackName+"_alpha", "alpha", newAlphaComposer(), data)
		if err != nil {
			return nil, fmt.Errorf("/animations/%d target %q alpha: %w", a.animIndex, ch.target, err)
		}
		tracks = append(tracks, animation.TargetedTrack{Track: alphaTrack, Target: desc.object})
	}

	return tracks, nil
}

// composeTrack builds one track from decoded sampler data. Each consumer gets
// its own cursor; for CUBICSPLINE samplers the per-keyframe sample order is
// in-tangent, value, out-tangent.
func (a *channelAssembler) composeTrack(name, propertyPath string, composer *valueComposer, data *samplerData) (*animation.Track, error) {
	cur := &floatCursor{data: data.output}
	cubic := data.interpolation == animation.InterpolationCubicSpline

	keyframes := make([]animation.Keyframe, 0, len(data.input))
	for _, frame := range data.input {
		kf := animation.Keyframe{Frame: frame}

		var err error
		if cubic {
			if kf.InTangent, err = composer.compose(cur); err != nil {
				return nil, err
			}
			if kf.Value, err = composer.compose(cur); err != nil {
				return nil, err
			}
			if kf.OutTangent, err = composer.compose(cur); err != nil {
				return nil, err
			}
		} else {
			if kf.Value, err = composer.compose(cur); err != nil {
				return nil, err
			}
		}

		keyframes = append(keyframes, kf)
	}

	return &animation.Track{
		Name:          name,
		TargetPath:    propertyPath,
		ValueType:     composer.valueType,
		Interpolation: data.interpolation,
		Keyframes:     keyframes,
	}, nil
}
