package material

import (
	"github.com/Jaswant99/propanim/common"
)

// MaterialBuilderOption is a function that configures a material instance during construction.
type MaterialBuilderOption func(*material)

// WithName is an option builder that sets the name of the material.
//
// Parameters:
//   - name: the identifier for the material
//
// Returns:
//   - MaterialBuilderOption: a function that applies the name option to a material
func WithName(name string) MaterialBuilderOption {
	return func(m *material) {
		m.name = name
	}
}

// WithBaseColor is an option builder that sets the albedo color and alpha from an
// RGBA base color factor. The RGB part lands on albedoColor, the fourth component
// on alpha.
//
// Parameters:
//   - color: the base color as RGBA
//
// Returns:
//   - MaterialBuilderOption: a function that applies the base color option to a material
func WithBaseColor(color common.Color4) MaterialBuilderOption {
	return func(m *material) {
		m.albedoColor = color.RGB()
		m.alpha = color.Alpha()
	}
}

// WithMetallic is an option builder that sets the metallic factor of the material.
//
// Parameters:
//   - metallic: the metallic factor (0.0 = dielectric, 1.0 = metal)
//
// Returns:
//   - MaterialBuilderOption: a function that applies the metallic option to a material
func WithMetallic(metallic float32) MaterialBuilderOption {
	return func(m *material) {
		m.metallic = metallic
	}
}

// WithRoughness is an option builder that sets the roughness factor of the material.
//
// Parameters:
//   - roughness: the roughness factor (0.0 = smooth, 1.0 = rough)
//
// Returns:
//   - MaterialBuilderOption: a function that applies the roughness option to a material
func WithRoughness(roughness float32) MaterialBuilderOption {
	return func(m *material) {
		m.roughness = roughness
	}
}

// WithEmissiveColor is an option builder that sets the emissive RGB color of the material.
//
// Parameters:
//   - c: the emissive color
//
// Returns:
//   - MaterialBuilderOption: a function that applies the emissive color option to a material
func WithEmissiveColor(c common.Color3) MaterialBuilderOption {
	return func(m *material) {
		m.emissiveColor = c
	}
}

// WithAlphaCutOff is an option builder that sets the alpha cutoff threshold of the material.
//
// Parameters:
//   - cutoff: the alpha cutoff
//
// Returns:
//   - MaterialBuilderOption: a function that applies the alpha cutoff option to a material
func WithAlphaCutOff(cutoff float32) MaterialBuilderOption {
	return func(m *material) {
		m.alphaCutOff = cutoff
	}
}

// WithBumpLevel is an option builder that sets the normal/bump map strength of the material.
//
// Parameters:
//   - level: the bump level
//
// Returns:
//   - MaterialBuilderOption: a function that applies the bump level option to a material
func WithBumpLevel(level float32) MaterialBuilderOption {
	return func(m *material) {
		m.bumpLevel = level
	}
}
