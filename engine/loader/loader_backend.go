package loader

import (
	"io"

	"github.com/Jaswant99/propanim/engine/scene"
)

// loaderBackend defines the generic interface for loading scenes from files or streams.
// Concrete implementations (e.g., gltfLoaderBackend) handle format-specific details.
type loaderBackend interface {
	// Load performs a full scene import from the given file path.
	// This extracts nodes, materials, cameras, lights, and animation groups.
	//
	// Parameters:
	//   - path: the file path to load
	//
	// Returns:
	//   - scene.Scene: the imported scene
	//   - error: error if loading fails
	Load(path string) (scene.Scene, error)

	// LoadStatic imports only the object inventories from the given file path.
	// Animation extraction is skipped for faster loading of assets used
	// without playback.
	//
	// Parameters:
	//   - path: the file path to load
	//
	// Returns:
	//   - scene.Scene: the imported scene without animation groups
	//   - error: error if loading fails
	LoadStatic(path string) (scene.Scene, error)

	// LoadReader imports a scene from a reader stream.
	//
	// Parameters:
	//   - r: the reader providing scene data
	//   - isGLB: true if the reader provides GLB binary data, false for text-based formats
	//
	// Returns:
	//   - scene.Scene: the imported scene
	//   - error: error if loading fails
	LoadReader(r io.Reader, isGLB bool) (scene.Scene, error)
}
