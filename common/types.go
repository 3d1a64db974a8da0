// package common contains common types that are used throughout this engine. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

// Value is a typed animation value reconstructed from flat float data.
// All concrete value shapes (scalar, vectors, quaternion, colors) implement it.
type Value interface {
	// Floats returns the value's components as a flat float32 slice.
	//
	// Returns:
	//   - []float32: the component values in declaration order
	Floats() []float32
}

// Float is a scalar animation value.
type Float float32

// Vector2 is a 2-component vector (x, y).
type Vector2 [2]float32

// Vector3 is a 3-component vector (x, y, z).
type Vector3 [3]float32

// Quaternion is a rotation quaternion stored as (x, y, z, w).
type Quaternion [4]float32

// Color3 is an RGB color.
type Color3 [3]float32

// Color4 is an RGBA color.
type Color4 [4]float32

func (f Float) Floats() []float32 {
	return []float32{float32(f)}
}

func (v Vector2) Floats() []float32 {
	return v[:]
}

func (v Vector3) Floats() []float32 {
	return v[:]
}

func (q Quaternion) Floats() []float32 {
	return q[:]
}

func (c Color3) Floats() []float32 {
	return c[:]
}

func (c Color4) Floats() []float32 {
	return c[:]
}

// RGB returns the color's RGB components without the alpha channel.
//
// Returns:
//   - Color3: the (r, g, b) components
func (c Color4) RGB() Color3 {
	return Color3{c[0], c[1], c[2]}
}

// Alpha returns the color's alpha component.
//
// Returns:
//   - float32: the alpha value
func (c Color4) Alpha() float32 {
	return c[3]
}
