package loader

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Jaswant99/propanim/engine/animation"
	"github.com/Jaswant99/propanim/engine/scene"
)

// targetDescriptor is the resolved form of a property channel target: the
// scene object to animate (nil for an unattached track), the dotted engine
// property path on that object, and the animated value type.
type targetDescriptor struct {
	object       any
	propertyPath string
	valueType    animation.ValueType
}

// resolveTarget walks a slash-delimited glTF property target through the
// registry tree and binds any indexed segments against the scene inventories.
//
// Empty segments (leading, trailing, or doubled slashes) are skipped. A
// segment with no registry child, a non-numeric index where one is expected, a
// bound lookup yielding no object, or a walk ending without a value type all
// fail with ErrInvalidTargetPath naming the full target.
//
// Parameters:
//   - reg: the registry tree root
//   - scn: the scene whose inventories indexed segments bind against
//   - target: the slash-delimited property target string
//
// Returns:
//   - *targetDescriptor: the resolved target
//   - error: ErrInvalidTargetPath if the walk fails
func resolveTarget(reg *registryNode, scn scene.Scene, target string) (*targetDescriptor, error) {
	segments := make([]string, 0, 8)
	for _, seg := range strings.Split(target, "/") {
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	if len(segments) == 0 {
		return nil, fmt.Errorf("%w: %q: empty target", ErrInvalidTargetPath, target)
	}

	cur := reg
	desc := &targetDescriptor{valueType: animation.ValueTypeNone}
	var fragments []string

	for i := 0; i < len(segments); i++ {
		seg := segments[i]

		child, ok := cur.children[seg]
		if !ok {
			return nil, fmt.Errorf("%w: %q: unknown segment %q", ErrInvalidTargetPath, target, seg)
		}
		cur = child

		if cur.fragment != "" {
			fragments = append(fragments, cur.fragment)
		}
		if cur.valueType != animation.ValueTypeNone {
			desc.valueType = cur.valueType
		}

		if cur.indexed {
			i++
			if i >= len(segments) {
				return nil, fmt.Errorf("%w: %q: segment %q expects an index", ErrInvalidTargetPath, target, seg)
			}
			index, err := strconv.Atoi(segments[i])
			if err != nil {
				return nil, fmt.Errorf("%w: %q: segment %q is not an index", ErrInvalidTargetPath, target, segments[i])
			}
			if cur.lookup != nil {
				obj := cur.lookup(scn, index)
				if obj == nil {
					return nil, fmt.Errorf("%w: %q: no %s object at index %d", ErrInvalidTargetPath, target, seg, index)
				}
				desc.object = obj
			}
		}
	}

	if desc.valueType == animation.ValueTypeNone {
		return nil, fmt.Errorf("%w: %q: path does not name an animatable property", ErrInvalidTargetPath, target)
	}

	desc.propertyPath = strings.Join(fragments, ".")
	return desc, nil
}
