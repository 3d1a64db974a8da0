package light

import (
	"github.com/Jaswant99/propanim/common"
)

// LightType identifies the kind of punctual light source.
type LightType int

const (
	// LightTypeDirectional represents a light with no position, only direction.
	// Used for large distant sources like the sun or moon. Affects the whole
	// scene uniformly with no distance attenuation.
	LightTypeDirectional LightType = iota

	// LightTypePoint represents a light that emits in all directions from a position.
	// Attenuates with distance up to a configurable range.
	LightTypePoint

	// LightTypeSpot represents a light that emits in a cone along a direction.
	// Attenuates with both distance and angle from the cone axis, controlled by
	// inner and outer cone angles.
	LightTypeSpot
)

// lightImpl is the implementation of the Light interface.
type lightImpl struct {
	lightType      LightType
	name           string
	color          common.Color3
	intensity      float32
	lightRange     float32
	direction      common.Vector3
	innerConeAngle float32 // radians
	outerConeAngle float32 // radians
	enabled        bool
}

// Light defines the interface for a punctual light source in a loaded scene.
//
// Lights are animation targets: the loader resolves asset property paths under
// "extensions/KHR_lights_punctual/lights" to a Light plus a dotted sub-property
// path ("color", "intensity", "range", cone angles), and the playback engine
// drives the property through the setters. Type-specific properties (e.g. cone
// angles for spot lights) return zero values when not applicable.
type Light interface {
	// Type returns the kind of light source.
	//
	// Returns:
	//   - LightType: the light type (directional, point, or spot)
	Type() LightType

	// Name returns the light's identifier.
	Name() string

	// Color returns the RGB color of the light.
	//
	// Returns:
	//   - common.Color3: the light color
	Color() common.Color3

	// Intensity returns the scalar intensity multiplier for the light.
	//
	// Returns:
	//   - float32: the intensity value
	Intensity() float32

	// Range returns the distance beyond which the light no longer contributes.
	// Zero means unlimited range. Meaningless for directional lights.
	//
	// Returns:
	//   - float32: the range value
	Range() float32

	// Direction returns the normalized direction of the light.
	// For directional lights this is the light direction. For spot lights this
	// is the cone axis. Meaningless for point lights.
	//
	// Returns:
	//   - common.Vector3: the normalized direction
	Direction() common.Vector3

	// InnerConeAngle returns the spot light's inner cone angle in radians.
	// Zero for non-spot lights.
	InnerConeAngle() float32

	// OuterConeAngle returns the spot light's outer cone angle in radians.
	// Zero for non-spot lights.
	OuterConeAngle() float32

	// Enabled returns whether the light contributes to the scene.
	Enabled() bool

	// SetColor sets the RGB color of the light.
	//
	// Parameters:
	//   - c: the light color
	SetColor(c common.Color3)

	// SetIntensity sets the scalar intensity multiplier.
	//
	// Parameters:
	//   - intensity: the intensity value
	SetIntensity(intensity float32)

	// SetRange sets the light's attenuation range.
	//
	// Parameters:
	//   - r: the range value
	SetRange(r float32)

	// SetDirection sets the light's direction. The vector is normalized.
	//
	// Parameters:
	//   - d: the direction
	SetDirection(d common.Vector3)

	// SetInnerConeAngle sets the spot light's inner cone angle in radians.
	//
	// Parameters:
	//   - angle: the inner cone angle
	SetInnerConeAngle(angle float32)

	// SetOuterConeAngle sets the spot light's outer cone angle in radians.
	//
	// Parameters:
	//   - angle: the outer cone angle
	SetOuterConeAngle(angle float32)

	// SetEnabled sets whether the light contributes to the scene.
	//
	// Parameters:
	//   - enabled: true to enable the light
	SetEnabled(enabled bool)
}

var _ Light = &lightImpl{}

// NewLight creates a new Light of the given type configured with the provided options.
// Defaults follow the KHR_lights_punctual defaults: white color, intensity 1,
// unlimited range, enabled.
//
// Parameters:
//   - lightType: the kind of light source to create
//   - options: functional options to configure the light
//
// Returns:
//   - Light: a new Light instance
func NewLight(lightType LightType, options ...LightBuilderOption) Light {
	l := &lightImpl{
		lightType: lightType,
		color:     common.Color3{1, 1, 1},
		intensity: 1.0,
		direction: common.Vector3{0, 0, -1},
		enabled:   true,
	}
	for _, option := range options {
		option(l)
	}
	return l
}

func (l *lightImpl) Type() LightType {
	return l.lightType
}

func (l *lightImpl) Name() string {
	return l.name
}

func (l *lightImpl) Color() common.Color3 {
	return l.color
}

func (l *lightImpl) Intensity() float32 {
	return l.intensity
}

func (l *lightImpl) Range() float32 {
	return l.lightRange
}

func (l *lightImpl) Direction() common.Vector3 {
	return l.direction
}

func (l *lightImpl) InnerConeAngle() float32 {
	return l.innerConeAngle
}

func (l *lightImpl) OuterConeAngle() float32 {
	return l.outerConeAngle
}

func (l *lightImpl) Enabled() bool {
	return l.enabled
}

func (l *lightImpl) SetColor(c common.Color3) {
	l.color = c
}

func (l *lightImpl) SetIntensity(intensity float32) {
	l.intensity = intensity
}

func (l *lightImpl) SetRange(r float32) {
	l.lightRange = r
}

func (l *lightImpl) SetDirection(d common.Vector3) {
	l.direction = d.Normalize()
}

func (l *lightImpl) SetInnerConeAngle(angle float32) {
	l.innerConeAngle = angle
}

func (l *lightImpl) SetOuterConeAngle(angle float32) {
	l.outerConeAngle = angle
}

func (l *lightImpl) SetEnabled(enabled bool) {
	l.enabled = enabled
}
