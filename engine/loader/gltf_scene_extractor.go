package loader

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/Jaswant99/propanim/common"
	"github.com/Jaswant99/propanim/engine/camera"
	"github.com/Jaswant99/propanim/engine/light"
	"github.com/Jaswant99/propanim/engine/node"
)

// gltfSceneExtractorImpl is the implementation of the gltfSceneExtractor interface.
type gltfSceneExtractorImpl struct {
	parser gltfParser
}

// gltfSceneExtractor defines the interface for extracting scene object
// inventories from a parsed glTF document: transform nodes, perspective
// cameras, and punctual lights. The inventories preserve document index order
// because animation target paths address objects by index.
type gltfSceneExtractor interface {
	// ExtractNodes builds the node inventory from the document's nodes array.
	//
	// Returns:
	//   - []node.Node: one node per document node, in index order
	//   - error: error if extraction fails
	ExtractNodes() ([]node.Node, error)

	// ExtractCameras builds the camera inventory from the document's cameras array.
	//
	// Returns:
	//   - []camera.Camera: one camera per document camera, in index order
	//   - error: error if extraction fails
	ExtractCameras() ([]camera.Camera, error)

	// ExtractLights builds the light inventory from the document's
	// KHR_lights_punctual extension. Returns an empty slice when the extension
	// is absent.
	//
	// Returns:
	//   - []light.Light: one light per extension light, in index order
	//   - error: error if extraction fails
	ExtractLights() ([]light.Light, error)
}

var _ gltfSceneExtractor = &gltfSceneExtractorImpl{}

// newGLTFSceneExtractor creates a scene extractor for a parsed document.
//
// Parameters:
//   - parser: the parser containing a loaded document
//
// Returns:
//   - gltfSceneExtractor: the scene extractor
func newGLTFSceneExtractor(parser gltfParser) gltfSceneExtractor {
	return &gltfSceneExtractorImpl{parser: parser}
}

func (e *gltfSceneExtractorImpl) ExtractNodes() ([]node.Node, error) {
	doc := e.parser.Document()
	if doc == nil {
		return nil, fmt.Errorf("no document loaded")
	}

	nodes := make([]node.Node, len(doc.Nodes))
	for i := range doc.Nodes {
		gn := &doc.Nodes[i]

		options := []node.NodeBuilderOption{node.WithName(gn.Name)}

		// Matrix-form transforms are left at identity: animated nodes must use
		// TRS per the glTF spec, so decomposition buys nothing here.
		if gn.Matrix == nil {
			if gn.Translation != nil {
				options = append(options, node.WithPosition(common.Vector3(*gn.Translation)))
			}
			if gn.Rotation != nil {
				options = append(options, node.WithRotationQuaternion(common.Quaternion(*gn.Rotation)))
			}
			if gn.Scale != nil {
				options = append(options, node.WithScaling(common.Vector3(*gn.Scale)))
			}
		}
		if len(gn.Weights) > 0 {
			options = append(options, node.WithInfluence(gn.Weights[0]))
		}

		nodes[i] = node.NewNode(options...)
	}

	return nodes, nil
}

func (e *gltfSceneExtractorImpl) ExtractCameras() ([]camera.Camera, error) {
	doc := e.parser.Document()
	if doc == nil {
		return nil, fmt.Errorf("no document loaded")
	}

	cameras := make([]camera.Camera, len(doc.Cameras))
	for i := range doc.Cameras {
		gc := &doc.Cameras[i]

		options := []camera.CameraBuilderOption{camera.WithName(gc.Name)}

		if gc.Type == gltfCameraTypePerspective && gc.Perspective != nil {
			p := gc.Perspective
			options = append(options,
				camera.WithFov(p.Yfov),
				camera.WithNear(p.Znear),
			)
			if p.AspectRatio != nil {
				options = append(options, camera.WithAspect(*p.AspectRatio))
			}
			// A missing zfar means an infinite projection; the default far
			// plane stands in for it.
			if p.Zfar != nil {
				options = append(options, camera.WithFar(*p.Zfar))
			}
		}

		cameras[i] = camera.NewCamera(options...)
	}

	return cameras, nil
}

func (e *gltfSceneExtractorImpl) ExtractLights() ([]light.Light, error) {
	doc := e.parser.Document()
	if doc == nil {
		return nil, fmt.Errorf("no document loaded")
	}
	if doc.Extensions == nil || doc.Extensions.LightsPunctual == nil {
		return []light.Light{}, nil
	}

	defs := doc.Extensions.LightsPunctual.Lights
	lights := make([]light.Light, len(defs))
	for i := range defs {
		gl := &defs[i]

		var lightType light.LightType
		switch gl.Type {
		case gltfLightTypeDirectional:
			lightType = light.LightTypeDirectional
		case gltfLightTypePoint:
			lightType = light.LightTypePoint
		case gltfLightTypeSpot:
			lightType = light.LightTypeSpot
		default:
			return nil, fmt.Errorf("light %d: unknown light type %q", i, gl.Type)
		}

		options := []light.LightBuilderOption{light.WithName(gl.Name)}

		if gl.Color != nil {
			options = append(options, light.WithColor(common.Color3(*gl.Color)))
		}
		if gl.Intensity != nil {
			options = append(options, light.WithIntensity(*gl.Intensity))
		}
		if gl.Range != nil {
			options = append(options, light.WithRange(*gl.Range))
		}
		if lightType == light.LightTypeSpot {
			inner := float32(0)
			outer := math32.Pi / 4
			if gl.Spot != nil {
				if gl.Spot.InnerConeAngle != nil {
					inner = *gl.Spot.InnerConeAngle
				}
				if gl.Spot.OuterConeAngle != nil {
					outer = *gl.Spot.OuterConeAngle
				}
			}
			options = append(options, light.WithConeAngles(inner, outer))
		}

		lights[i] = light.NewLight(lightType, options...)
	}

	return lights, nil
}
