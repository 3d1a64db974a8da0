package node

import (
	"github.com/Jaswant99/propanim/common"
)

// nodeImpl is the implementation of the Node interface.
type nodeImpl struct {
	name               string
	position           common.Vector3
	rotationQuaternion common.Quaternion
	scaling            common.Vector3
	influence          float32
}

// Node is a transform node in a loaded scene. It is the animation target for
// translation, rotation, scale, and morph-weight channels; the playback engine
// addresses its properties through the dotted paths produced by the loader
// ("position", "rotationQuaternion", "scaling", "influence").
type Node interface {
	// Name returns the node's identifier.
	Name() string

	// SetName sets the node's identifier.
	SetName(name string)

	// Position returns the node's translation.
	Position() common.Vector3

	// SetPosition sets the node's translation.
	//
	// Parameters:
	//   - p: the translation as (x, y, z)
	SetPosition(p common.Vector3)

	// RotationQuaternion returns the node's orientation.
	RotationQuaternion() common.Quaternion

	// SetRotationQuaternion sets the node's orientation.
	//
	// Parameters:
	//   - q: the orientation as (x, y, z, w)
	SetRotationQuaternion(q common.Quaternion)

	// Scaling returns the node's per-axis scale.
	Scaling() common.Vector3

	// SetScaling sets the node's per-axis scale.
	//
	// Parameters:
	//   - s: the scale as (sx, sy, sz)
	SetScaling(s common.Vector3)

	// Influence returns the node's morph-target influence weight.
	Influence() float32

	// SetInfluence sets the node's morph-target influence weight.
	//
	// Parameters:
	//   - w: the influence weight
	SetInfluence(w float32)
}

var _ Node = &nodeImpl{}

// NewNode creates a new Node configured with the provided options.
// The default node sits at the origin with identity rotation and unit scale.
//
// Parameters:
//   - options: functional options to configure the node
//
// Returns:
//   - Node: a new Node instance
func NewNode(options ...NodeBuilderOption) Node {
	n := &nodeImpl{
		rotationQuaternion: common.Quaternion{0, 0, 0, 1},
		scaling:            common.Vector3{1, 1, 1},
	}
	for _, option := range options {
		option(n)
	}
	return n
}

func (n *nodeImpl) Name() string {
	return n.name
}

func (n *nodeImpl) SetName(name string) {
	n.name = name
}

func (n *nodeImpl) Position() common.Vector3 {
	return n.position
}

func (n *nodeImpl) SetPosition(p common.Vector3) {
	n.position = p
}

func (n *nodeImpl) RotationQuaternion() common.Quaternion {
	return n.rotationQuaternion
}

func (n *nodeImpl) SetRotationQuaternion(q common.Quaternion) {
	n.rotationQuaternion = q
}

func (n *nodeImpl) Scaling() common.Vector3 {
	return n.scaling
}

func (n *nodeImpl) SetScaling(s common.Vector3) {
	n.scaling = s
}

func (n *nodeImpl) Influence() float32 {
	return n.influence
}

func (n *nodeImpl) SetInfluence(w float32) {
	n.influence = w
}
