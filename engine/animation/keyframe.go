package animation

import (
	"github.com/Jaswant99/propanim/common"
)

// Interpolation identifies how values between two keyframes are computed during playback.
type Interpolation int

const (
	// InterpolationLinear interpolates linearly between adjacent keyframe values.
	// This is the default when an asset does not declare an interpolation mode.
	InterpolationLinear Interpolation = iota

	// InterpolationStep holds each keyframe value until the next keyframe.
	InterpolationStep

	// InterpolationCubicSpline interpolates with cubic Hermite splines. Each
	// keyframe carries an in-tangent and an out-tangent alongside its value.
	InterpolationCubicSpline
)

func (i Interpolation) String() string {
	switch i {
	case InterpolationLinear:
		return "LINEAR"
	case InterpolationStep:
		return "STEP"
	case InterpolationCubicSpline:
		return "CUBICSPLINE"
	default:
		return "unknown"
	}
}

// Keyframe is a single typed sample of an animation track.
type Keyframe struct {
	// Frame is the keyframe timestamp, copied verbatim from the source asset's
	// input accessor (no unit conversion is performed).
	Frame float32

	// Value is the typed value at this keyframe.
	Value common.Value

	// InTangent is the incoming tangent for cubic-spline interpolation.
	// Nil for step and linear tracks.
	InTangent common.Value

	// OutTangent is the outgoing tangent for cubic-spline interpolation.
	// Nil for step and linear tracks.
	OutTangent common.Value
}
