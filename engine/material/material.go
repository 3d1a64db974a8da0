package material

import (
	"github.com/Jaswant99/propanim/common"
)

// material is the implementation of the Material interface.
type material struct {
	name          string
	albedoColor   common.Color3
	alpha         float32
	metallic      float32
	roughness     float32
	emissiveColor common.Color3
	alphaCutOff   float32
	bumpLevel     float32
}

// Material defines the interface for a PBR surface material in a loaded scene.
//
// Materials are animation targets: the loader resolves asset property paths like
// "materials/0/pbrMetallicRoughness/baseColorFactor" to a Material plus a dotted
// sub-property path ("albedoColor"), and the playback engine drives the property
// through the setters. An RGBA base color is split across two properties —
// albedoColor holds the RGB part and alpha the fourth component — so each can be
// animated independently.
type Material interface {
	// Name retrieves the material identifier.
	//
	// Returns:
	//   - string: the name of the material
	Name() string

	// AlbedoColor retrieves the albedo/diffuse RGB color of the material.
	//
	// Returns:
	//   - common.Color3: the albedo color
	AlbedoColor() common.Color3

	// Alpha retrieves the opacity of the material (0.0 = transparent, 1.0 = opaque).
	//
	// Returns:
	//   - float32: the alpha value
	Alpha() float32

	// Metallic retrieves the metallic factor of the material.
	// A value of 0.0 represents a dielectric surface, 1.0 represents a fully metallic surface.
	//
	// Returns:
	//   - float32: the metallic factor
	Metallic() float32

	// Roughness retrieves the roughness factor of the material.
	// A value of 0.0 represents a perfectly smooth surface, 1.0 represents a fully rough surface.
	//
	// Returns:
	//   - float32: the roughness factor
	Roughness() float32

	// EmissiveColor retrieves the emissive RGB color of the material.
	//
	// Returns:
	//   - common.Color3: the emissive color
	EmissiveColor() common.Color3

	// AlphaCutOff retrieves the alpha cutoff threshold used in masked alpha mode.
	//
	// Returns:
	//   - float32: the alpha cutoff
	AlphaCutOff() float32

	// BumpLevel retrieves the strength of the normal/bump map.
	//
	// Returns:
	//   - float32: the bump level
	BumpLevel() float32

	// SetAlbedoColor sets the albedo/diffuse RGB color.
	//
	// Parameters:
	//   - c: the albedo color
	SetAlbedoColor(c common.Color3)

	// SetAlpha sets the opacity of the material.
	//
	// Parameters:
	//   - a: the alpha value
	SetAlpha(a float32)

	// SetMetallic sets the metallic factor.
	//
	// Parameters:
	//   - metallic: the metallic factor (0.0 = dielectric, 1.0 = metal)
	SetMetallic(metallic float32)

	// SetRoughness sets the roughness factor.
	//
	// Parameters:
	//   - roughness: the roughness factor (0.0 = smooth, 1.0 = rough)
	SetRoughness(roughness float32)

	// SetEmissiveColor sets the emissive RGB color.
	//
	// Parameters:
	//   - c: the emissive color
	SetEmissiveColor(c common.Color3)

	// SetAlphaCutOff sets the alpha cutoff threshold.
	//
	// Parameters:
	//   - cutoff: the alpha cutoff
	SetAlphaCutOff(cutoff float32)

	// SetBumpLevel sets the strength of the normal/bump map.
	//
	// Parameters:
	//   - level: the bump level
	SetBumpLevel(level float32)
}

var _ Material = &material{}

// NewMaterial creates a new Material instance configured with the provided options.
// Defaults follow the glTF 2.0 material defaults: white opaque albedo, fully
// metallic and fully rough, black emissive, 0.5 alpha cutoff, unit bump level.
//
// Parameters:
//   - options: variadic list of MaterialBuilderOption functions to configure the material
//
// Returns:
//   - Material: a new Material instance
func NewMaterial(options ...MaterialBuilderOption) Material {
	m := &material{
		albedoColor: common.Color3{1, 1, 1},
		alpha:       1.0,
		metallic:    1.0,
		roughness:   1.0,
		alphaCutOff: 0.5,
		bumpLevel:   1.0,
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

func (m *material) Name() string {
	return m.name
}

func (m *material) AlbedoColor() common.Color3 {
	return m.albedoColor
}

func (m *material) Alpha() float32 {
	return m.alpha
}

func (m *material) Metallic() float32 {
	return m.metallic
}

func (m *material) Roughness() float32 {
	return m.roughness
}

func (m *material) EmissiveColor() common.Color3 {
	return m.emissiveColor
}

func (m *material) AlphaCutOff() float32 {
	return m.alphaCutOff
}

func (m *material) BumpLevel() float32 {
	return m.bumpLevel
}

func (m *material) SetAlbedoColor(c common.Color3) {
	m.albedoColor = c
}

func (m *material) SetAlpha(a float32) {
	m.alpha = a
}

func (m *material) SetMetallic(metallic float32) {
	m.metallic = metallic
}

func (m *material) SetRoughness(roughness float32) {
	m.roughness = roughness
}

func (m *material) SetEmissiveColor(c common.Color3) {
	m.emissiveColor = c
}

func (m *material) SetAlphaCutOff(cutoff float32) {
	m.alphaCutOff = cutoff
}

func (m *material) SetBumpLevel(level float32) {
	m.bumpLevel = level
}
