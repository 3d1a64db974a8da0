package light

import (
	"github.com/Jaswant99/propanim/common"
)

// LightBuilderOption is a function that configures a light instance during construction.
type LightBuilderOption func(*lightImpl)

// WithName is an option builder that sets the name of the light.
//
// Parameters:
//   - name: the identifier for the light
//
// Returns:
//   - LightBuilderOption: a function that applies the name option to a light
func WithName(name string) LightBuilderOption {
	return func(l *lightImpl) {
		l.name = name
	}
}

// WithColor is an option builder that sets the RGB color of the light.
//
// Parameters:
//   - c: the light color
//
// Returns:
//   - LightBuilderOption: a function that applies the color option to a light
func WithColor(c common.Color3) LightBuilderOption {
	return func(l *lightImpl) {
		l.color = c
	}
}

// WithIntensity is an option builder that sets the intensity multiplier of the light.
//
// Parameters:
//   - intensity: the intensity value
//
// Returns:
//   - LightBuilderOption: a function that applies the intensity option to a light
func WithIntensity(intensity float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.intensity = intensity
	}
}

// WithRange is an option builder that sets the attenuation range of the light.
//
// Parameters:
//   - r: the range value (0 = unlimited)
//
// Returns:
//   - LightBuilderOption: a function that applies the range option to a light
func WithRange(r float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.lightRange = r
	}
}

// WithDirection is an option builder that sets the direction of the light.
// The vector is normalized.
//
// Parameters:
//   - d: the direction
//
// Returns:
//   - LightBuilderOption: a function that applies the direction option to a light
func WithDirection(d common.Vector3) LightBuilderOption {
	return func(l *lightImpl) {
		l.direction = d.Normalize()
	}
}

// WithConeAngles is an option builder that sets the spot light's inner and outer
// cone angles in radians.
//
// Parameters:
//   - inner: the inner cone angle
//   - outer: the outer cone angle
//
// Returns:
//   - LightBuilderOption: a function that applies the cone angle options to a light
func WithConeAngles(inner, outer float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.innerConeAngle = inner
		l.outerConeAngle = outer
	}
}

// WithEnabled is an option builder that sets whether the light is enabled.
//
// Parameters:
//   - enabled: true to enable the light
//
// Returns:
//   - LightBuilderOption: a function that applies the enabled option to a light
func WithEnabled(enabled bool) LightBuilderOption {
	return func(l *lightImpl) {
		l.enabled = enabled
	}
}
