package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLerp(t *testing.T) {
	assert.InDelta(t, 5, Lerp(0, 10, 0.5), 1e-6)
	assert.InDelta(t, 0, Lerp(0, 10, 0), 1e-6)
	assert.InDelta(t, 10, Lerp(0, 10, 1), 1e-6)
}

func TestVector3Normalize(t *testing.T) {
	v := Vector3{3, 0, 4}.Normalize()
	assert.InDelta(t, 1, v.Length(), 1e-6)
	assert.InDelta(t, 0.6, v[0], 1e-6)
	assert.InDelta(t, 0.8, v[2], 1e-6)

	// Zero vector stays zero.
	assert.Equal(t, Vector3{}, Vector3{}.Normalize())
}

func TestQuaternionNormalize(t *testing.T) {
	q := Quaternion{0, 2, 0, 0}.Normalize()
	assert.Equal(t, Quaternion{0, 1, 0, 0}, q)

	// Zero quaternion becomes the identity rotation.
	assert.Equal(t, Quaternion{0, 0, 0, 1}, Quaternion{}.Normalize())
}

func TestValueFloats(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  []float32
	}{
		{"float", Float(0.5), []float32{0.5}},
		{"vector2", Vector2{1, 2}, []float32{1, 2}},
		{"vector3", Vector3{1, 2, 3}, []float32{1, 2, 3}},
		{"quaternion", Quaternion{0, 0, 0, 1}, []float32{0, 0, 0, 1}},
		{"color3", Color3{1, 0.5, 0}, []float32{1, 0.5, 0}},
		{"color4", Color4{1, 0.5, 0, 0.25}, []float32{1, 0.5, 0, 0.25}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.value.Floats())
		})
	}
}

func TestColor4Split(t *testing.T) {
	c := Color4{0.1, 0.2, 0.3, 0.4}
	assert.Equal(t, Color3{0.1, 0.2, 0.3}, c.RGB())
	assert.InDelta(t, 0.4, c.Alpha(), 1e-6)
}
