package scene

import (
	"github.com/Jaswant99/propanim/engine/camera"
	"github.com/Jaswant99/propanim/engine/light"
	"github.com/Jaswant99/propanim/engine/material"
	"github.com/Jaswant99/propanim/engine/node"
)

// SceneBuilderOption is a functional option for configuring a Scene via NewScene.
type SceneBuilderOption func(*sceneImpl)

// WithNodes is an option builder that appends transform nodes to the scene's
// node inventory in the given order.
//
// Parameters:
//   - nodes: the nodes to add
//
// Returns:
//   - SceneBuilderOption: a function that applies the node option to a scene
func WithNodes(nodes ...node.Node) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.nodes = append(s.nodes, nodes...)
	}
}

// WithMaterials is an option builder that appends materials to the scene's
// material inventory in the given order.
//
// Parameters:
//   - materials: the materials to add
//
// Returns:
//   - SceneBuilderOption: a function that applies the material option to a scene
func WithMaterials(materials ...material.Material) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.materials = append(s.materials, materials...)
	}
}

// WithLights is an option builder that appends lights to the scene's light
// inventory in the given order.
//
// Parameters:
//   - lights: the lights to add
//
// Returns:
//   - SceneBuilderOption: a function that applies the light option to a scene
func WithLights(lights ...light.Light) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.lights = append(s.lights, lights...)
	}
}

// WithCameras is an option builder that appends cameras to the scene's camera
// inventory in the given order.
//
// Parameters:
//   - cameras: the cameras to add
//
// Returns:
//   - SceneBuilderOption: a function that applies the camera option to a scene
func WithCameras(cameras ...camera.Camera) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.cameras = append(s.cameras, cameras...)
	}
}
