package loader

import (
	"fmt"
	"io"

	"github.com/Carmen-Shannon/automation/tools/worker"

	"github.com/Jaswant99/propanim/engine/scene"
)

// gltfImporterImpl is the implementation of the gltfImporter interface.
type gltfImporterImpl struct {
	pool worker.DynamicWorkerPool
}

// gltfImporter defines the interface for orchestrating a full glTF/GLB import.
// It combines the parser and all extractors to produce a populated Scene:
// object inventories first, then the animation groups bound against them.
type gltfImporter interface {
	// Import loads a glTF/GLB file and extracts everything into a Scene.
	// This includes nodes, materials, cameras, lights, and animation groups.
	//
	// Parameters:
	//   - path: the file path to the glTF or GLB file
	//
	// Returns:
	//   - scene.Scene: the fully populated scene
	//   - error: error if import fails
	Import(path string) (scene.Scene, error)

	// ImportReader loads a glTF document from a reader and extracts all data.
	// The reader should provide a complete glTF JSON or GLB binary stream.
	//
	// Parameters:
	//   - r: the reader providing glTF/GLB data
	//   - isGLB: true if the reader provides GLB binary data, false for glTF JSON
	//
	// Returns:
	//   - scene.Scene: the fully populated scene
	//   - error: error if import fails
	ImportReader(r io.Reader, isGLB bool) (scene.Scene, error)

	// ImportStatic loads a glTF/GLB file and extracts only the object
	// inventories. Animation extraction is skipped for faster loading of
	// assets used without playback.
	//
	// Parameters:
	//   - path: the file path to the glTF or GLB file
	//
	// Returns:
	//   - scene.Scene: the scene with inventories only
	//   - error: error if import fails
	ImportStatic(path string) (scene.Scene, error)
}

var _ gltfImporter = &gltfImporterImpl{}

// newGLTFImporter creates a new glTF importer.
//
// Parameters:
//   - pool: the worker pool animation assembly fans out on
//
// Returns:
//   - gltfImporter: the importer
func newGLTFImporter(pool worker.DynamicWorkerPool) gltfImporter {
	return &gltfImporterImpl{pool: pool}
}

func (imp *gltfImporterImpl) Import(path string) (scene.Scene, error) {
	parser := newGLTFParser()
	if err := parser.Parse(path); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return imp.importFromParser(parser, path, true)
}

func (imp *gltfImporterImpl) ImportReader(r io.Reader, isGLB bool) (scene.Scene, error) {
	parser := newGLTFParser()
	if err := parser.ParseReader(r, isGLB); err != nil {
		return nil, fmt.Errorf("failed to parse from reader: %w", err)
	}

	return imp.importFromParser(parser, "", true)
}

func (imp *gltfImporterImpl) ImportStatic(path string) (scene.Scene, error) {
	parser := newGLTFParser()
	if err := parser.Parse(path); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return imp.importFromParser(parser, path, false)
}

// importFromParser performs an import from a parser that has already loaded a
// document. Inventories are extracted before animations because the animation
// extractor binds tracks against the scene's indexed lookups.
//
// Parameters:
//   - parser: the glTF parser that has already loaded a document
//   - fallbackPath: optional file path used as a fallback for scene naming
//   - withAnimations: false to skip animation extraction
func (imp *gltfImporterImpl) importFromParser(parser gltfParser, fallbackPath string, withAnimations bool) (scene.Scene, error) {
	doc := parser.Document()
	if doc == nil {
		return nil, fmt.Errorf("no document after parsing")
	}

	sceneExtractor := newGLTFSceneExtractor(parser)
	materialExtractor := newGLTFMaterialExtractor(parser)

	nodes, err := sceneExtractor.ExtractNodes()
	if err != nil {
		return nil, fmt.Errorf("node extraction failed: %w", err)
	}

	materials, err := materialExtractor.ExtractAllMaterials()
	if err != nil {
		return nil, fmt.Errorf("material extraction failed: %w", err)
	}

	cameras, err := sceneExtractor.ExtractCameras()
	if err != nil {
		return nil, fmt.Errorf("camera extraction failed: %w", err)
	}

	lights, err := sceneExtractor.ExtractLights()
	if err != nil {
		return nil, fmt.Errorf("light extraction failed: %w", err)
	}

	scn := scene.NewScene(
		gltfExtractSceneName(doc, fallbackPath),
		scene.WithNodes(nodes...),
		scene.WithMaterials(materials...),
		scene.WithCameras(cameras...),
		scene.WithLights(lights...),
	)

	if withAnimations && len(doc.Animations) > 0 {
		animationExtractor := newGLTFAnimationExtractor(parser, imp.pool)
		groups, err := animationExtractor.ExtractAllAnimations(scn)
		if err != nil {
			return nil, fmt.Errorf("animation extraction failed: %w", err)
		}
		for _, g := range groups {
			scn.AddAnimationGroup(g)
		}
	}

	return scn, nil
}

// gltfExtractSceneName derives a scene name from the document's default scene
// or a file path fallback.
func gltfExtractSceneName(doc *gltfDocument, fallbackPath string) string {
	if doc.Scene != nil && *doc.Scene >= 0 && *doc.Scene < len(doc.Scenes) {
		if name := doc.Scenes[*doc.Scene].Name; name != "" {
			return name
		}
	}

	if fallbackPath != "" {
		return fallbackPath
	}

	return "unnamed_scene"
}
