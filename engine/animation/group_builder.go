package animation

// GroupBuilderOption is a functional option for configuring a Group via NewGroup.
type GroupBuilderOption func(*group)

// WithTrack is an option builder that attaches an untargeted track to the group.
//
// Parameters:
//   - t: the track to attach
//
// Returns:
//   - GroupBuilderOption: a function that applies the track option to a group
func WithTrack(t *Track) GroupBuilderOption {
	return func(g *group) {
		g.tracks = append(g.tracks, t)
	}
}

// WithTargetedTrack is an option builder that attaches a track bound to a target object.
//
// Parameters:
//   - t: the track to attach
//   - target: the scene object the track animates
//
// Returns:
//   - GroupBuilderOption: a function that applies the targeted track option to a group
func WithTargetedTrack(t *Track, target any) GroupBuilderOption {
	return func(g *group) {
		g.tracks = append(g.tracks, t)
		g.targeted = append(g.targeted, TargetedTrack{Track: t, Target: target})
	}
}
