package loader

import (
	"github.com/Jaswant99/propanim/engine/profiler"
	"github.com/Jaswant99/propanim/engine/scene"
)

// LoaderBuilderOption is a functional option for configuring a Loader via NewLoader.
type LoaderBuilderOption func(*loader)

// WithWorkers is an option builder that sets the number of workers in the
// loader's animation assembly pool. Values below 1 are clamped to 1.
//
// Parameters:
//   - n: the worker count
//
// Returns:
//   - LoaderBuilderOption: a function that applies the worker count option to a loader
func WithWorkers(n int) LoaderBuilderOption {
	return func(l *loader) {
		l.workers = max(n, 1)
	}
}

// WithProfiling is an option builder that enables load-time profiling. Every
// cache-miss load logs its duration and memory stats.
//
// Parameters:
//   - enabled: true to enable profiling
//
// Returns:
//   - LoaderBuilderOption: a function that applies the profiling option to a loader
func WithProfiling(enabled bool) LoaderBuilderOption {
	return func(l *loader) {
		if enabled {
			l.profiler = profiler.NewProfiler()
		} else {
			l.profiler = nil
		}
	}
}

// WithScene is an option builder that pre-populates the scene cache with a scene.
//
// Parameters:
//   - key: the cache key for the scene
//   - scn: the scene to cache
//
// Returns:
//   - LoaderBuilderOption: a function that applies the scene option to a loader
func WithScene(key string, scn scene.Scene) LoaderBuilderOption {
	return func(l *loader) {
		l.sceneCache[key] = scn
	}
}
