package loader

import "errors"

// Sentinel errors returned by animation decoding. Callers match them with
// errors.Is; the wrapped messages carry the file-local context (animation,
// sampler, or channel indices and the offending value).
var (
	// ErrMalformedAnimation indicates structurally invalid animation data, such
	// as an unknown interpolation mode or a sampler index out of range.
	ErrMalformedAnimation = errors.New("malformed animation")

	// ErrInvalidTargetPath indicates a property channel target string that does
	// not resolve through the property registry.
	ErrInvalidTargetPath = errors.New("invalid animation target path")

	// ErrAccessorRange indicates a sampler output accessor too short for the
	// keyframe values a channel needs to compose.
	ErrAccessorRange = errors.New("accessor data out of range")
)
