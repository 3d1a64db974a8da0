package animation

// Track is a playback-ready, time-ordered sequence of typed keyframes bound to
// one sub-property of one target object.
type Track struct {
	// Name is the track identifier, unique within its owning Group.
	Name string

	// TargetPath is the dotted sub-property path on the resolved target object
	// (e.g. "albedoColor" or "bumpTexture.level"). May be empty when the track
	// animates the object itself.
	TargetPath string

	// ValueType is the typed shape of the track's keyframe values.
	ValueType ValueType

	// Interpolation is the playback interpolation mode for this track.
	Interpolation Interpolation

	// Keyframes are the track's samples in input order. The source asset
	// guarantees ascending timestamps; the loader does not re-sort.
	Keyframes []Keyframe
}

// TargetedTrack pairs a track with the scene object it animates.
type TargetedTrack struct {
	// Track is the keyframe track.
	Track *Track

	// Target is the resolved scene object the track drives. The playback engine
	// applies Track.TargetPath to this object.
	Target any
}
