package node

import (
	"github.com/Jaswant99/propanim/common"
)

// NodeBuilderOption is a function that configures a node instance during construction.
type NodeBuilderOption func(*nodeImpl)

// WithName is an option builder that sets the name of the node.
//
// Parameters:
//   - name: the identifier for the node
//
// Returns:
//   - NodeBuilderOption: a function that applies the name option to a node
func WithName(name string) NodeBuilderOption {
	return func(n *nodeImpl) {
		n.name = name
	}
}

// WithPosition is an option builder that sets the node's translation.
//
// Parameters:
//   - p: the translation as (x, y, z)
//
// Returns:
//   - NodeBuilderOption: a function that applies the position option to a node
func WithPosition(p common.Vector3) NodeBuilderOption {
	return func(n *nodeImpl) {
		n.position = p
	}
}

// WithRotationQuaternion is an option builder that sets the node's orientation.
// The quaternion is normalized to guard against drift in authored assets.
//
// Parameters:
//   - q: the orientation as (x, y, z, w)
//
// Returns:
//   - NodeBuilderOption: a function that applies the rotation option to a node
func WithRotationQuaternion(q common.Quaternion) NodeBuilderOption {
	return func(n *nodeImpl) {
		n.rotationQuaternion = q.Normalize()
	}
}

// WithScaling is an option builder that sets the node's per-axis scale.
//
// Parameters:
//   - s: the scale as (sx, sy, sz)
//
// Returns:
//   - NodeBuilderOption: a function that applies the scaling option to a node
func WithScaling(s common.Vector3) NodeBuilderOption {
	return func(n *nodeImpl) {
		n.scaling = s
	}
}

// WithInfluence is an option builder that sets the node's morph-target influence weight.
//
// Parameters:
//   - w: the influence weight
//
// Returns:
//   - NodeBuilderOption: a function that applies the influence option to a node
func WithInfluence(w float32) NodeBuilderOption {
	return func(n *nodeImpl) {
		n.influence = w
	}
}
