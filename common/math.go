package common

import (
	"github.com/chewxy/math32"
)

// Lerp linearly interpolates between a and b by t.
//
// Parameters:
//   - a: start value
//   - b: end value
//   - t: interpolation factor, normally in [0, 1]
//
// Returns:
//   - float32: the interpolated value
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// Length returns the Euclidean length of the vector.
//
// Returns:
//   - float32: the vector length
func (v Vector3) Length() float32 {
	return math32.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// Normalize returns a unit-length copy of the vector.
// A zero vector is returned unchanged.
//
// Returns:
//   - Vector3: the normalized vector
func (v Vector3) Normalize() Vector3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return Vector3{v[0] / l, v[1] / l, v[2] / l}
}

// Length returns the Euclidean length of the quaternion.
//
// Returns:
//   - float32: the quaternion length
func (q Quaternion) Length() float32 {
	return math32.Sqrt(q[0]*q[0] + q[1]*q[1] + q[2]*q[2] + q[3]*q[3])
}

// Normalize returns a unit-length copy of the quaternion.
// A zero quaternion is replaced with the identity rotation.
//
// Returns:
//   - Quaternion: the normalized quaternion
func (q Quaternion) Normalize() Quaternion {
	l := q.Length()
	if l == 0 {
		return Quaternion{0, 0, 0, 1}
	}
	return Quaternion{q[0] / l, q[1] / l, q[2] / l, q[3] / l}
}
