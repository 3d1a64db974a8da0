package animation

import (
	"sync"
)

// group is the implementation of the Group interface.
type group struct {
	mu sync.RWMutex

	name     string
	tracks   []*Track
	targeted []TargetedTrack
}

// Group is a container of keyframe tracks that are loaded, normalized, and played
// back together, typically one Group per animation in the source asset.
// Thread-safe for concurrent access: track attachment is append-only, so channels
// of one animation may attach tracks concurrently during load.
type Group interface {
	// Name returns the group's identifier.
	Name() string

	// SetName sets the group's identifier.
	SetName(name string)

	// AddTrack attaches a track to the group without binding it to any target
	// object. Used for channels whose target could not be bound to a live scene
	// object; the track is still produced for determinism.
	//
	// Parameters:
	//   - t: the track to attach
	AddTrack(t *Track)

	// AddTargetedTrack attaches a track bound to a resolved scene object.
	//
	// Parameters:
	//   - t: the track to attach
	//   - target: the scene object the track animates
	AddTargetedTrack(t *Track, target any)

	// Tracks returns all tracks in the group, targeted and untargeted, in
	// attachment order.
	//
	// Returns:
	//   - []*Track: the group's tracks
	Tracks() []*Track

	// TargetedTracks returns the tracks that are bound to a scene object.
	//
	// Returns:
	//   - []TargetedTrack: track/target pairs in attachment order
	TargetedTracks() []TargetedTrack

	// Track retrieves a track by name. Returns nil if not found.
	//
	// Parameters:
	//   - name: the track name to look up
	//
	// Returns:
	//   - *Track: the track or nil
	Track(name string) *Track

	// From returns the earliest keyframe timestamp across all tracks.
	//
	// Returns:
	//   - float32: the group's start frame (0 when the group is empty)
	From() float32

	// To returns the latest keyframe timestamp across all tracks.
	//
	// Returns:
	//   - float32: the group's end frame (0 when the group is empty)
	To() float32

	// Normalize pads every track so that all tracks share the group's first and
	// last frame: a track starting after From gets a copy of its first keyframe
	// at From, and a track ending before To gets a copy of its last keyframe at
	// To. Must be called once, after all of an animation's channels have been
	// assembled and attached.
	Normalize()
}

var _ Group = &group{}

// NewGroup creates a new animation Group with the given name and options applied.
//
// Parameters:
//   - name: the group's identifier
//   - options: functional options to further configure the group
//
// Returns:
//   - Group: the newly created group
func NewGroup(name string, options ...GroupBuilderOption) Group {
	g := &group{
		name: name,
	}
	for _, option := range options {
		option(g)
	}
	return g
}

func (g *group) Name() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.name
}

func (g *group) SetName(name string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.name = name
}

func (g *group) AddTrack(t *Track) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.tracks = append(g.tracks, t)
}

func (g *group) AddTargetedTrack(t *Track, target any) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.tracks = append(g.tracks, t)
	g.targeted = append(g.targeted, TargetedTrack{Track: t, Target: target})
}

func (g *group) Tracks() []*Track {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Track, len(g.tracks))
	copy(out, g.tracks)
	return out
}

func (g *group) TargetedTracks() []TargetedTrack {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]TargetedTrack, len(g.targeted))
	copy(out, g.targeted)
	return out
}

func (g *group) Track(name string) *Track {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, t := range g.tracks {
		if t.Name == name {
			return t
		}
	}
	return nil
}

func (g *group) From() float32 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	from, _ := g.frameBounds()
	return from
}

func (g *group) To() float32 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, to := g.frameBounds()
	return to
}

func (g *group) Normalize() {
	g.mu.Lock()
	defer g.mu.Unlock()

	from, to := g.frameBounds()

	for _, t := range g.tracks {
		if len(t.Keyframes) == 0 {
			continue
		}

		if first := t.Keyframes[0]; first.Frame > from {
			pad := first
			pad.Frame = from
			t.Keyframes = append([]Keyframe{pad}, t.Keyframes...)
		}
		if last := t.Keyframes[len(t.Keyframes)-1]; last.Frame < to {
			pad := last
			pad.Frame = to
			t.Keyframes = append(t.Keyframes, pad)
		}
	}
}

// frameBounds returns the earliest and latest keyframe timestamps across all
// tracks. Caller must hold g.mu.
func (g *group) frameBounds() (from, to float32) {
	first := true
	for _, t := range g.tracks {
		if len(t.Keyframes) == 0 {
			continue
		}
		start := t.Keyframes[0].Frame
		end := t.Keyframes[len(t.Keyframes)-1].Frame
		if first {
			from, to = start, end
			first = false
			continue
		}
		if start < from {
			from = start
		}
		if end > to {
			to = end
		}
	}
	return from, to
}
