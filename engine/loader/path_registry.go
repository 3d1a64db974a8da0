package loader

import (
	"github.com/Jaswant99/propanim/engine/animation"
	"github.com/Jaswant99/propanim/engine/scene"
)

// registryNode is one level of the property registry tree. The resolver walks
// it segment by segment: literal segments select children, and a node marked
// indexed consumes the following numeric segment to bind a scene object.
//
// Walking accumulates the fragment strings (joined with ".") into the engine
// property path and carries the deepest valueType seen, so an inner node can
// set a default that a leaf overrides.
type registryNode struct {
	// children maps the next literal path segment to its subtree.
	children map[string]*registryNode

	// indexed marks a node whose following segment is a numeric index.
	indexed bool

	// lookup binds the consumed index to a scene object. Only meaningful on
	// indexed nodes; a nil lookup leaves the target object unbound and the
	// assembled track unattached.
	lookup func(scn scene.Scene, index int) any

	// fragment is the dotted engine property-path piece this node contributes.
	fragment string

	// valueType, when not ValueTypeNone, is the animated value type at or
	// below this node.
	valueType animation.ValueType
}

// propertyRegistry is the tree of animatable glTF document properties. Keys
// are glTF JSON property names; fragments and value types are the engine-side
// view the playback layer consumes.
var propertyRegistry = &registryNode{
	children: map[string]*registryNode{
		"nodes": {
			indexed: true,
			lookup: func(scn scene.Scene, index int) any {
				return scn.Node(index)
			},
			children: map[string]*registryNode{
				"translation": {fragment: "position", valueType: animation.ValueTypeVector3},
				"rotation":    {fragment: "rotationQuaternion", valueType: animation.ValueTypeQuaternion},
				"scale":       {fragment: "scaling", valueType: animation.ValueTypeVector3},
				"weights":     {fragment: "influence", valueType: animation.ValueTypeFloat},
			},
		},
		"materials": {
			indexed: true,
			lookup: func(scn scene.Scene, index int) any {
				return scn.Material(index)
			},
			children: map[string]*registryNode{
				"pbrMetallicRoughness": {
					children: map[string]*registryNode{
						"baseColorFactor": {fragment: "albedoColor", valueType: animation.ValueTypeColor4},
						"metallicFactor":  {fragment: "metallic", valueType: animation.ValueTypeFloat},
						"roughnessFactor": {fragment: "roughness", valueType: animation.ValueTypeFloat},
					},
				},
				"emissiveFactor": {fragment: "emissiveColor", valueType: animation.ValueTypeColor3},
				"alphaCutoff":    {fragment: "alphaCutOff", valueType: animation.ValueTypeFloat},
				"normalTexture": {
					fragment: "bumpTexture",
					children: map[string]*registryNode{
						"scale": {fragment: "level", valueType: animation.ValueTypeFloat},
					},
				},
			},
		},
		"cameras": {
			indexed: true,
			lookup: func(scn scene.Scene, index int) any {
				return scn.Camera(index)
			},
			children: map[string]*registryNode{
				"perspective": {
					children: map[string]*registryNode{
						"yfov":  {fragment: "fov", valueType: animation.ValueTypeFloat},
						"znear": {fragment: "near", valueType: animation.ValueTypeFloat},
						"zfar":  {fragment: "far", valueType: animation.ValueTypeFloat},
					},
				},
			},
		},
		"extensions": {
			children: map[string]*registryNode{
				"KHR_lights_punctual": {
					children: map[string]*registryNode{
						"lights": {
							indexed: true,
							lookup: func(scn scene.Scene, index int) any {
								return scn.Light(index)
							},
							children: map[string]*registryNode{
								"color":     {fragment: "color", valueType: animation.ValueTypeColor3},
								"intensity": {fragment: "intensity", valueType: animation.ValueTypeFloat},
								"range":     {fragment: "range", valueType: animation.ValueTypeFloat},
								"spot": {
									children: map[string]*registryNode{
										"innerConeAngle": {fragment: "innerConeAngle", valueType: animation.ValueTypeFloat},
										"outerConeAngle": {fragment: "outerConeAngle", valueType: animation.ValueTypeFloat},
									},
								},
							},
						},
					},
				},
			},
		},
	},
}
