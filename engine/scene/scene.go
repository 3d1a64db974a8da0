package scene

import (
	"sync"

	"github.com/Jaswant99/propanim/engine/animation"
	"github.com/Jaswant99/propanim/engine/camera"
	"github.com/Jaswant99/propanim/engine/light"
	"github.com/Jaswant99/propanim/engine/material"
	"github.com/Jaswant99/propanim/engine/node"
)

// Scene manages the object inventories of one loaded asset: transform nodes,
// materials, cameras, and punctual lights, each addressable by their index in the
// source file, plus the animation groups assembled against those objects.
//
// The indexed accessors (Node, Material, Light, Camera) are the lookup surface
// the loader's path resolver binds indexed registry segments to. They return nil
// when no object exists at the given index; the resolver treats that as a hard
// path-resolution failure.
//
// Thread-safe for concurrent access.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// SetName sets the scene's identifier.
	SetName(name string)

	// AddNode appends a transform node to the scene's node inventory.
	//
	// Parameters:
	//   - n: the node to add
	AddNode(n node.Node)

	// Node retrieves a node by its index in the source file.
	// Returns nil if the index is out of range.
	//
	// Parameters:
	//   - index: the node index
	//
	// Returns:
	//   - node.Node: the node or nil
	Node(index int) node.Node

	// Nodes returns all nodes in index order.
	Nodes() []node.Node

	// AddMaterial appends a material to the scene's material inventory.
	//
	// Parameters:
	//   - m: the material to add
	AddMaterial(m material.Material)

	// Material retrieves a material by its index in the source file.
	// Returns nil if the index is out of range.
	//
	// Parameters:
	//   - index: the material index
	//
	// Returns:
	//   - material.Material: the material or nil
	Material(index int) material.Material

	// Materials returns all materials in index order.
	Materials() []material.Material

	// AddLight appends a light to the scene's light inventory.
	//
	// Parameters:
	//   - l: the light to add
	AddLight(l light.Light)

	// Light retrieves a light by its index in the source file's punctual-lights
	// extension. Returns nil if the index is out of range.
	//
	// Parameters:
	//   - index: the light index
	//
	// Returns:
	//   - light.Light: the light or nil
	Light(index int) light.Light

	// Lights returns all lights in index order.
	Lights() []light.Light

	// AddCamera appends a camera to the scene's camera inventory.
	//
	// Parameters:
	//   - c: the camera to add
	AddCamera(c camera.Camera)

	// Camera retrieves a camera by its index in the source file.
	// Returns nil if the index is out of range.
	//
	// Parameters:
	//   - index: the camera index
	//
	// Returns:
	//   - camera.Camera: the camera or nil
	Camera(index int) camera.Camera

	// Cameras returns all cameras in index order.
	Cameras() []camera.Camera

	// AddAnimationGroup appends an assembled animation group to the scene.
	//
	// Parameters:
	//   - g: the group to add
	AddAnimationGroup(g animation.Group)

	// AnimationGroups returns all animation groups in load order.
	AnimationGroups() []animation.Group

	// AnimationGroup retrieves an animation group by name.
	// Returns nil if not found.
	//
	// Parameters:
	//   - name: the group name to look up
	//
	// Returns:
	//   - animation.Group: the group or nil
	AnimationGroup(name string) animation.Group
}

// sceneImpl is the implementation of the Scene interface.
type sceneImpl struct {
	mu sync.RWMutex

	name string

	nodes     []node.Node
	materials []material.Material
	lights    []light.Light
	cameras   []camera.Camera

	groups []animation.Group
}

var _ Scene = &sceneImpl{}

// NewScene creates a new Scene with the given name and options applied.
//
// Parameters:
//   - name: the name of the scene
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, options ...SceneBuilderOption) Scene {
	s := &sceneImpl{
		name: name,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *sceneImpl) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *sceneImpl) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *sceneImpl) AddNode(n node.Node) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nodes = append(s.nodes, n)
}

func (s *sceneImpl) Node(index int) node.Node {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if index < 0 || index >= len(s.nodes) {
		return nil
	}
	return s.nodes[index]
}

func (s *sceneImpl) Nodes() []node.Node {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]node.Node, len(s.nodes))
	copy(out, s.nodes)
	return out
}

func (s *sceneImpl) AddMaterial(m material.Material) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.materials = append(s.materials, m)
}

func (s *sceneImpl) Material(index int) material.Material {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if index < 0 || index >= len(s.materials) {
		return nil
	}
	return s.materials[index]
}

func (s *sceneImpl) Materials() []material.Material {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]material.Material, len(s.materials))
	copy(out, s.materials)
	return out
}

func (s *sceneImpl) AddLight(l light.Light) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lights = append(s.lights, l)
}

func (s *sceneImpl) Light(index int) light.Light {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if index < 0 || index >= len(s.lights) {
		return nil
	}
	return s.lights[index]
}

func (s *sceneImpl) Lights() []light.Light {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]light.Light, len(s.lights))
	copy(out, s.lights)
	return out
}

func (s *sceneImpl) AddCamera(c camera.Camera) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cameras = append(s.cameras, c)
}

func (s *sceneImpl) Camera(index int) camera.Camera {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if index < 0 || index >= len(s.cameras) {
		return nil
	}
	return s.cameras[index]
}

func (s *sceneImpl) Cameras() []camera.Camera {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]camera.Camera, len(s.cameras))
	copy(out, s.cameras)
	return out
}

func (s *sceneImpl) AddAnimationGroup(g animation.Group) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.groups = append(s.groups, g)
}

func (s *sceneImpl) AnimationGroups() []animation.Group {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]animation.Group, len(s.groups))
	copy(out, s.groups)
	return out
}

func (s *sceneImpl) AnimationGroup(name string) animation.Group {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, g := range s.groups {
		if g.Name() == name {
			return g
		}
	}
	return nil
}
