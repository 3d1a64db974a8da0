package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jaswant99/propanim/common"
	"github.com/Jaswant99/propanim/engine/animation"
)

func TestFloatCursorAdvances(t *testing.T) {
	cur := &floatCursor{data: []float32{1, 2, 3, 4, 5, 6}}

	first, err := cur.next(3)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2, 3}, first)

	second, err := cur.next(3)
	require.NoError(t, err)
	assert.Equal(t, []float32{4, 5, 6}, second)

	_, err = cur.next(1)
	assert.ErrorIs(t, err, ErrAccessorRange)
}

func TestComposeTypedValues(t *testing.T) {
	tests := []struct {
		name      string
		valueType animation.ValueType
		data      []float32
		want      common.Value
	}{
		{"float", animation.ValueTypeFloat, []float32{0.5}, common.Float(0.5)},
		{"vector2", animation.ValueTypeVector2, []float32{1, 2}, common.Vector2{1, 2}},
		{"vector3", animation.ValueTypeVector3, []float32{1, 2, 3}, common.Vector3{1, 2, 3}},
		{"quaternion", animation.ValueTypeQuaternion, []float32{0, 0, 0, 1}, common.Quaternion{0, 0, 0, 1}},
		{"color3", animation.ValueTypeColor3, []float32{1, 0.5, 0}, common.Color3{1, 0.5, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			composer := newValueComposer(tt.valueType)
			cur := &floatCursor{data: tt.data}

			got, err := composer.compose(cur)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, len(tt.data), cur.pos)
		})
	}
}

func TestColor4ComposersShareElementAlignment(t *testing.T) {
	// Two RGBA samples.
	data := []float32{
		1, 0, 0, 0.5,
		0, 1, 0, 0.25,
	}

	primary := newValueComposer(animation.ValueTypeColor4)
	cur := &floatCursor{data: data}

	v, err := primary.compose(cur)
	require.NoError(t, err)
	assert.Equal(t, common.Color3{1, 0, 0}, v)

	v, err = primary.compose(cur)
	require.NoError(t, err)
	assert.Equal(t, common.Color3{0, 1, 0}, v)

	// The primary composer consumed whole RGBA elements.
	assert.Equal(t, len(data), cur.pos)

	// The alpha composer reads the same stream through its own cursor.
	alpha := newAlphaComposer()
	cur = &floatCursor{data: data}

	v, err = alpha.compose(cur)
	require.NoError(t, err)
	assert.Equal(t, common.Float(0.5), v)

	v, err = alpha.compose(cur)
	require.NoError(t, err)
	assert.Equal(t, common.Float(0.25), v)

	assert.Equal(t, len(data), cur.pos)
}

func TestComposeExhaustedStreamFails(t *testing.T) {
	composer := newValueComposer(animation.ValueTypeVector3)
	cur := &floatCursor{data: []float32{1, 2}}

	_, err := composer.compose(cur)
	assert.ErrorIs(t, err, ErrAccessorRange)
}

func TestNewValueComposerPanicsWithoutEntry(t *testing.T) {
	assert.Panics(t, func() {
		newValueComposer(animation.ValueTypeNone)
	})
}
