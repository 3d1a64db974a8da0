package animation

import "fmt"

// ValueType tags the typed shape of an animated property. It determines how many
// flat floats make up one sample when decoding keyframe data.
type ValueType int

const (
	// ValueTypeNone means no value type has been declared.
	ValueTypeNone ValueType = iota

	// ValueTypeFloat is a scalar property (e.g. a metallic factor).
	ValueTypeFloat

	// ValueTypeVector2 is a 2-component vector property.
	ValueTypeVector2

	// ValueTypeVector3 is a 3-component vector property (e.g. a translation).
	ValueTypeVector3

	// ValueTypeQuaternion is a rotation quaternion property.
	ValueTypeQuaternion

	// ValueTypeColor3 is an RGB color property.
	ValueTypeColor3

	// ValueTypeColor4 is an RGBA color property. During track assembly it is split
	// into an RGB track and a separate scalar alpha track.
	ValueTypeColor4
)

// ComponentCount returns the number of flat floats that make up one sample of
// this value type.
//
// Returns:
//   - int: the per-sample component count (0 for ValueTypeNone)
func (vt ValueType) ComponentCount() int {
	switch vt {
	case ValueTypeFloat:
		return 1
	case ValueTypeVector2:
		return 2
	case ValueTypeVector3:
		return 3
	case ValueTypeQuaternion:
		return 4
	case ValueTypeColor3:
		return 3
	case ValueTypeColor4:
		return 4
	default:
		return 0
	}
}

func (vt ValueType) String() string {
	switch vt {
	case ValueTypeNone:
		return "none"
	case ValueTypeFloat:
		return "float"
	case ValueTypeVector2:
		return "vector2"
	case ValueTypeVector3:
		return "vector3"
	case ValueTypeQuaternion:
		return "quaternion"
	case ValueTypeColor3:
		return "color3"
	case ValueTypeColor4:
		return "color4"
	default:
		return fmt.Sprintf("ValueType(%d)", int(vt))
	}
}
