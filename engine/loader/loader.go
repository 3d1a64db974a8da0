package loader

import (
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"

	"github.com/Jaswant99/propanim/engine/profiler"
	"github.com/Jaswant99/propanim/engine/scene"
)

// LoaderBackendType identifies the asset file format backend to use.
type LoaderBackendType int

const (
	// BackendTypeGLTF selects the glTF/GLB loader backend.
	BackendTypeGLTF LoaderBackendType = iota
)

// loader is the implementation of the Loader interface.
type loader struct {
	mu sync.RWMutex

	sceneCache map[string]scene.Scene

	backend loaderBackend

	// pool is shared by all imports this loader performs; animation channel
	// assembly fans out on it.
	pool    worker.DynamicWorkerPool
	workers int // stored so we can log/inspect the configured count

	// profiler, when set, measures and logs every cache-miss load.
	profiler *profiler.Profiler
}

// Loader defines the public-facing interface for loading and caching animated
// scenes. It abstracts the file format (glTF, GLB) behind a generic backend
// and manages a cache of previously loaded scenes.
type Loader interface {
	// Load imports an asset file and caches the result.
	// If the scene is already cached (by file path), the cached version is returned.
	// The backend is selected based on the file extension (.gltf/.glb → glTF backend).
	//
	// Parameters:
	//   - path: the file path to the asset file
	//
	// Returns:
	//   - scene.Scene: the loaded and cached scene
	//   - error: error if loading fails
	Load(path string) (scene.Scene, error)

	// LoadStatic imports only object inventories, skipping animation extraction.
	// Useful for assets that don't need playback support.
	//
	// Parameters:
	//   - path: the file path to the asset file
	//
	// Returns:
	//   - scene.Scene: the loaded scene (inventories only)
	//   - error: error if loading fails
	LoadStatic(path string) (scene.Scene, error)

	// LoadReader imports a scene from a reader stream and caches it by the given name.
	//
	// Parameters:
	//   - name: the cache key for the loaded scene
	//   - r: the reader providing asset data
	//   - isGLB: true if the reader provides GLB binary data
	//
	// Returns:
	//   - scene.Scene: the loaded scene
	//   - error: error if loading fails
	LoadReader(name string, r io.Reader, isGLB bool) (scene.Scene, error)

	// Get retrieves a cached scene by name. Returns nil if not found.
	//
	// Parameters:
	//   - name: the cache key to look up
	//
	// Returns:
	//   - scene.Scene: the cached scene or nil
	Get(name string) scene.Scene

	// Scenes returns the full scene cache.
	//
	// Returns:
	//   - map[string]scene.Scene: all cached scenes keyed by name
	Scenes() map[string]scene.Scene
}

var _ Loader = &loader{}

// NewLoader creates a new Loader instance with the specified backend type and options applied.
//
// Parameters:
//   - backendType: the type of loader backend to use (e.g., BackendTypeGLTF)
//   - options: a variadic list of LoaderBuilderOption functions to configure the Loader
//
// Returns:
//   - Loader: a new instance of Loader configured with the provided backend and options
func NewLoader(backendType LoaderBackendType, options ...LoaderBuilderOption) Loader {
	l := &loader{
		mu:         sync.RWMutex{},
		sceneCache: make(map[string]scene.Scene),
		workers:    max(runtime.NumCPU()-1, 1),
	}

	for _, option := range options {
		option(l)
	}

	// Initialize the pool after options so WithWorkers can override the default.
	// Queue size of 256 accommodates typical channel counts with headroom.
	l.pool = worker.NewDynamicWorkerPool(l.workers, 256, 1*time.Second)

	switch backendType {
	case BackendTypeGLTF:
		l.backend = newGLTFLoaderBackend(l.pool)
	}

	return l
}

func (l *loader) Load(path string) (scene.Scene, error) {
	l.mu.RLock()
	if cached, ok := l.sceneCache[path]; ok {
		l.mu.RUnlock()
		return cached, nil
	}
	l.mu.RUnlock()

	backend, err := l.resolveBackend(path)
	if err != nil {
		return nil, err
	}

	if l.profiler != nil {
		defer l.profiler.Measure("load " + path)()
	}

	scn, err := backend.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	l.mu.Lock()
	l.sceneCache[path] = scn
	l.mu.Unlock()

	return scn, nil
}

func (l *loader) LoadStatic(path string) (scene.Scene, error) {
	l.mu.RLock()
	if cached, ok := l.sceneCache[path]; ok {
		l.mu.RUnlock()
		return cached, nil
	}
	l.mu.RUnlock()

	backend, err := l.resolveBackend(path)
	if err != nil {
		return nil, err
	}

	if l.profiler != nil {
		defer l.profiler.Measure("load static " + path)()
	}

	scn, err := backend.LoadStatic(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	l.mu.Lock()
	l.sceneCache[path] = scn
	l.mu.Unlock()

	return scn, nil
}

func (l *loader) LoadReader(name string, r io.Reader, isGLB bool) (scene.Scene, error) {
	l.mu.RLock()
	if cached, ok := l.sceneCache[name]; ok {
		l.mu.RUnlock()
		return cached, nil
	}
	l.mu.RUnlock()

	if l.profiler != nil {
		defer l.profiler.Measure("load reader " + name)()
	}

	scn, err := l.backend.LoadReader(r, isGLB)
	if err != nil {
		return nil, fmt.Errorf("failed to load from reader %q: %w", name, err)
	}

	l.mu.Lock()
	l.sceneCache[name] = scn
	l.mu.Unlock()

	return scn, nil
}

func (l *loader) Get(name string) scene.Scene {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.sceneCache[name]
}

func (l *loader) Scenes() map[string]scene.Scene {
	l.mu.RLock()
	defer l.mu.RUnlock()

	result := make(map[string]scene.Scene, len(l.sceneCache))
	for k, v := range l.sceneCache {
		result[k] = v
	}
	return result
}

// resolveBackend selects an appropriate loader backend based on the file extension.
// Currently only glTF/GLB is supported.
func (l *loader) resolveBackend(path string) (loaderBackend, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".gltf", ".glb":
		return l.backend, nil
	default:
		return nil, fmt.Errorf("unsupported asset format: %s", ext)
	}
}
