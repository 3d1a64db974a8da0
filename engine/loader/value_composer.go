package loader

import (
	"fmt"

	"github.com/Jaswant99/propanim/common"
	"github.com/Jaswant99/propanim/engine/animation"
)

// floatCursor is a forward-only reader over a flattened component stream.
// Each consumer of a sampler's output owns its own cursor; the shared decoded
// data is never mutated.
type floatCursor struct {
	data []float32
	pos  int
}

// next returns the next n components and advances the cursor.
//
// Parameters:
//   - n: number of components to consume
//
// Returns:
//   - []float32: a subslice of the underlying data, valid until the data is released
//   - error: ErrAccessorRange if fewer than n components remain
func (c *floatCursor) next(n int) ([]float32, error) {
	if c.pos+n > len(c.data) {
		return nil, fmt.Errorf("%w: need %d components at offset %d, have %d",
			ErrAccessorRange, n, c.pos, len(c.data))
	}
	out := c.data[c.pos : c.pos+n]
	c.pos += n
	return out, nil
}

// valueComposer reconstructs typed keyframe values from a flat component
// stream. Each compose call consumes exactly stride components from the cursor
// and builds a value from the [offset, offset+width) window, so composers that
// read only part of an element (the alpha channel of an RGBA color) still keep
// the cursor element-aligned.
type valueComposer struct {
	// valueType is the playback value type this composer produces.
	valueType animation.ValueType

	// stride is the number of source components consumed per sample.
	stride int

	// offset is the index of the first component used within a sample.
	offset int

	// width is the number of components used to build the value.
	width int
}

// newValueComposer returns the composer for an animated value type.
//
// A color4 target composes as color3: the primary track carries RGB and a
// separate alpha composer consumes the same stream for the fourth component.
//
// Panics if no composer is registered for the type; the registry only emits
// types listed here, so a miss is a programming error, not input data.
func newValueComposer(valueType animation.ValueType) *valueComposer {
	switch valueType {
	case animation.ValueTypeFloat:
		return &valueComposer{valueType: animation.ValueTypeFloat, stride: 1, width: 1}
	case animation.ValueTypeVector2:
		return &valueComposer{valueType: animation.ValueTypeVector2, stride: 2, width: 2}
	case animation.ValueTypeVector3:
		return &valueComposer{valueType: animation.ValueTypeVector3, stride: 3, width: 3}
	case animation.ValueTypeQuaternion:
		return &valueComposer{valueType: animation.ValueTypeQuaternion, stride: 4, width: 4}
	case animation.ValueTypeColor3:
		return &valueComposer{valueType: animation.ValueTypeColor3, stride: 3, width: 3}
	case animation.ValueTypeColor4:
		return &valueComposer{valueType: animation.ValueTypeColor3, stride: 4, width: 3}
	default:
		panic(fmt.Sprintf("loader: no value composer registered for value type %s", valueType))
	}
}

// newAlphaComposer returns the composer for the alpha component of a color4
// stream: it consumes full RGBA samples and emits the A component as a float.
func newAlphaComposer() *valueComposer {
	return &valueComposer{valueType: animation.ValueTypeFloat, stride: 4, offset: 3, width: 1}
}

// compose consumes one sample from the cursor and builds the typed value.
//
// Parameters:
//   - cur: the cursor over the sampler's output components
//
// Returns:
//   - common.Value: the composed value
//   - error: ErrAccessorRange if the stream is exhausted
func (vc *valueComposer) compose(cur *floatCursor) (common.Value, error) {
	sample, err := cur.next(vc.stride)
	if err != nil {
		return nil, err
	}
	u := sample[vc.offset : vc.offset+vc.width]

	switch vc.valueType {
	case animation.ValueTypeFloat:
		return common.Float(u[0]), nil
	case animation.ValueTypeVector2:
		return common.Vector2{u[0], u[1]}, nil
	case animation.ValueTypeVector3:
		return common.Vector3{u[0], u[1], u[2]}, nil
	case animation.ValueTypeQuaternion:
		return common.Quaternion{u[0], u[1], u[2], u[3]}, nil
	case animation.ValueTypeColor3:
		return common.Color3{u[0], u[1], u[2]}, nil
	default:
		panic(fmt.Sprintf("loader: value composer holds uncomposable type %s", vc.valueType))
	}
}
