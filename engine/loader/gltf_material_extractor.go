package loader

import (
	"fmt"

	"github.com/Jaswant99/propanim/common"
	"github.com/Jaswant99/propanim/engine/material"
)

// gltfMaterialExtractorImpl is the implementation of the gltfMaterialExtractor interface.
type gltfMaterialExtractorImpl struct {
	parser gltfParser
}

// gltfMaterialExtractor defines the interface for extracting material data from
// a parsed glTF document into engine materials. Index order is preserved
// because animation target paths address materials by index.
type gltfMaterialExtractor interface {
	// ExtractAllMaterials builds the material inventory from the document's
	// materials array.
	//
	// Returns:
	//   - []material.Material: one material per document material, in index order
	//   - error: error if extraction fails
	ExtractAllMaterials() ([]material.Material, error)
}

var _ gltfMaterialExtractor = &gltfMaterialExtractorImpl{}

// newGLTFMaterialExtractor creates a material extractor for a parsed document.
//
// Parameters:
//   - parser: the parser containing a loaded document
//
// Returns:
//   - gltfMaterialExtractor: the material extractor
func newGLTFMaterialExtractor(parser gltfParser) gltfMaterialExtractor {
	return &gltfMaterialExtractorImpl{parser: parser}
}

func (e *gltfMaterialExtractorImpl) ExtractAllMaterials() ([]material.Material, error) {
	doc := e.parser.Document()
	if doc == nil {
		return nil, fmt.Errorf("no document loaded")
	}

	materials := make([]material.Material, len(doc.Materials))
	for i := range doc.Materials {
		gm := &doc.Materials[i]

		options := []material.MaterialBuilderOption{material.WithName(gm.Name)}

		if pbr := gm.PbrMetallicRoughness; pbr != nil {
			if pbr.BaseColorFactor != nil {
				options = append(options, material.WithBaseColor(common.Color4(*pbr.BaseColorFactor)))
			}
			if pbr.MetallicFactor != nil {
				options = append(options, material.WithMetallic(*pbr.MetallicFactor))
			}
			if pbr.RoughnessFactor != nil {
				options = append(options, material.WithRoughness(*pbr.RoughnessFactor))
			}
		}
		if gm.EmissiveFactor != nil {
			options = append(options, material.WithEmissiveColor(common.Color3(*gm.EmissiveFactor)))
		}
		if gm.AlphaCutoff != nil {
			options = append(options, material.WithAlphaCutOff(*gm.AlphaCutoff))
		}
		if gm.NormalTexture != nil && gm.NormalTexture.Scale != nil {
			options = append(options, material.WithBumpLevel(*gm.NormalTexture.Scale))
		}

		materials[i] = material.NewMaterial(options...)
	}

	return materials, nil
}
