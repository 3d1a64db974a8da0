package loader

import (
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/automation/tools/worker"

	"github.com/Jaswant99/propanim/engine/animation"
	"github.com/Jaswant99/propanim/engine/scene"
)

// gltfAnimationExtractorImpl is the implementation of the gltfAnimationExtractor interface.
type gltfAnimationExtractorImpl struct {
	parser gltfParser
	pool   worker.DynamicWorkerPool
}

// gltfAnimationExtractor defines the interface for extracting animation data from a
// parsed glTF document. It converts core node channels and property-animation
// extension channels into engine-ready animation groups with typed keyframe tracks.
//
// Core node channels (translation, rotation, scale, weights) are funneled through
// the same property registry as extension channels by synthesizing a
// "nodes/<index>/<path>" target string, so both kinds share one resolution and
// composition pipeline.
type gltfAnimationExtractor interface {
	// ExtractAnimation extracts a single animation by index, binding its tracks
	// to the given scene's object inventories.
	//
	// Channel assembly fans out across the worker pool; every channel is
	// submitted before any is awaited, so samplers shared between channels are
	// decoded once and handed to all waiters.
	//
	// Parameters:
	//   - animIndex: the index of the animation in the document
	//   - scn: the scene whose objects the tracks target
	//
	// Returns:
	//   - animation.Group: the assembled and normalized animation group
	//   - error: error if extraction fails
	ExtractAnimation(animIndex int, scn scene.Scene) (animation.Group, error)

	// ExtractAllAnimations extracts every animation from the document.
	//
	// Parameters:
	//   - scn: the scene whose objects the tracks target
	//
	// Returns:
	//   - []animation.Group: all extracted animation groups, in document order
	//   - error: error if extraction fails
	ExtractAllAnimations(scn scene.Scene) ([]animation.Group, error)
}

var _ gltfAnimationExtractor = &gltfAnimationExtractorImpl{}

// newGLTFAnimationExtractor creates a new animation extractor for a parsed document.
//
// Parameters:
//   - parser: the parser containing a loaded document
//   - pool: the worker pool channel assembly fans out on
//
// Returns:
//   - gltfAnimationExtractor: the animation extractor
func newGLTFAnimationExtractor(parser gltfParser, pool worker.DynamicWorkerPool) gltfAnimationExtractor {
	return &gltfAnimationExtractorImpl{parser: parser, pool: pool}
}

func (e *gltfAnimationExtractorImpl) ExtractAnimation(animIndex int, scn scene.Scene) (animation.Group, error) {
	doc := e.parser.Document()
	if doc == nil {
		return nil, fmt.Errorf("no document loaded")
	}
	if animIndex < 0 || animIndex >= len(doc.Animations) {
		return nil, fmt.Errorf("animation index %d out of range", animIndex)
	}

	anim := &doc.Animations[animIndex]

	name := anim.Name
	if name == "" {
		name = fmt.Sprintf("animation_%d", animIndex)
	}

	channels := collectChannels(anim, name)

	decoder := newSamplerDecoder(e.parser, anim, animIndex)
	assembler := newChannelAssembler(decoder, scn, animIndex)

	// Fan out one task per channel. All tasks are submitted before the join so
	// channels sharing a sampler pile onto the decoder's single flight instead
	// of serializing behind each other.
	results := make([][]animation.TargetedTrack, len(channels))

	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for i := range channels {
		wg.Add(1)
		idx := i
		ch := channels[i]
		e.pool.SubmitTask(worker.Task{
			ID: idx,
			Do: func() (any, error) {
				defer wg.Done()

				tracks, err := assembler.assemble(ch)

				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					if firstErr == nil {
						firstErr = err
					}
					return nil, err
				}
				results[idx] = tracks
				return nil, nil
			},
		})
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	group := animation.NewGroup(name)
	for _, tracks := range results {
		for _, tt := range tracks {
			if tt.Target == nil {
				group.AddTrack(tt.Track)
				continue
			}
			group.AddTargetedTrack(tt.Track, tt.Target)
		}
	}

	// Normalize once, after every track is in, so all tracks share the group's
	// final frame bounds.
	group.Normalize()

	return group, nil
}

func (e *gltfAnimationExtractorImpl) ExtractAllAnimations(scn scene.Scene) ([]animation.Group, error) {
	doc := e.parser.Document()
	if doc == nil {
		return nil, fmt.Errorf("no document loaded")
	}

	groups := make([]animation.Group, len(doc.Animations))
	for i := range doc.Animations {
		group, err := e.ExtractAnimation(i, scn)
		if err != nil {
			return nil, fmt.Errorf("animation %d: %w", i, err)
		}
		groups[i] = group
	}

	return groups, nil
}

// collectChannels flattens an animation's core and extension channels into one
// ordered list with track names assigned from a single running counter, so
// names stay stable regardless of how assembly is scheduled.
func collectChannels(anim *gltfAnimation, animName string) []propertyChannel {
	channels := make([]propertyChannel, 0, len(anim.Channels))

	for i := range anim.Channels {
		ch := &anim.Channels[i]

		// Core channels without a target node animate nothing addressable.
		if ch.Target.Node == nil {
			continue
		}

		channels = append(channels, propertyChannel{
			samplerIndex: ch.Sampler,
			target:       fmt.Sprintf("nodes/%d/%s", *ch.Target.Node, ch.Target.Path),
		})
	}

	if anim.Extensions != nil && anim.Extensions.PropertyAnimation != nil {
		for _, ch := range anim.Extensions.PropertyAnimation.Channels {
			channels = append(channels, propertyChannel{
				samplerIndex: ch.Sampler,
				target:       ch.Target,
			})
		}
	}

	for i := range channels {
		channels[i].trackName = fmt.Sprintf("%s_channel%d", animName, i)
	}

	return channels
}
