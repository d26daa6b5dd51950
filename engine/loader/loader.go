// Package loader imports mesh files into model.Geometry for the renderer.
package loader

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-view/engine/model"
	"github.com/qmuntal/gltf"
)

// loader is the implementation of the Loader interface.
type loader struct {
	mu sync.RWMutex

	zUpToYUp bool
	workers  int

	pool  worker.DynamicWorkerPool
	cache map[string]*model.Geometry
}

// Loader imports glTF/GLB and Wavefront OBJ files into drawable geometry and caches the
// results by path.
type Loader interface {
	// Load imports a glTF, GLB or OBJ file, chosen by extension, and caches the result.
	// If the file was loaded before, the cached geometry is returned.
	//
	// Parameters:
	//   - path: the file path to the model file
	//
	// Returns:
	//   - *model.Geometry: every triangle primitive of the file merged into one indexed list
	//   - error: error if the file cannot be read or holds no drawable triangles
	Load(path string) (*model.Geometry, error)

	// LoadDocument converts an already decoded glTF document and caches it under name.
	//
	// Parameters:
	//   - name: the cache key and geometry label
	//   - doc: the decoded document
	//
	// Returns:
	//   - *model.Geometry: the merged geometry
	//   - error: error if a primitive cannot be read or no triangles were found
	LoadDocument(name string, doc *gltf.Document) (*model.Geometry, error)

	// LoadOBJ parses Wavefront OBJ text and caches it under name.
	//
	// Parameters:
	//   - name: the cache key and geometry label
	//   - r: the OBJ source
	//
	// Returns:
	//   - *model.Geometry: the triangulated geometry
	//   - error: error if the source is malformed or holds no faces
	LoadOBJ(name string, r io.Reader) (*model.Geometry, error)

	// Get retrieves cached geometry by name. Returns nil if not found.
	Get(name string) *model.Geometry
}

var _ Loader = &loader{}

// NewLoader creates a Loader with the given options applied.
//
// Parameters:
//   - options: a variadic list of LoaderBuilderOption functions to configure the Loader
//
// Returns:
//   - Loader: the configured loader
func NewLoader(options ...LoaderBuilderOption) Loader {
	l := &loader{
		workers: 4,
		cache:   make(map[string]*model.Geometry),
	}
	for _, option := range options {
		option(l)
	}
	l.workers = max(l.workers, 1)
	l.pool = worker.NewDynamicWorkerPool(l.workers, 256, 1*time.Second)
	return l
}

func (l *loader) Load(path string) (*model.Geometry, error) {
	if g := l.Get(path); g != nil {
		return g, nil
	}

	if strings.EqualFold(filepath.Ext(path), ".obj") {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open obj %s: %w", filepath.Base(path), err)
		}
		defer f.Close()
		return l.LoadOBJ(path, f)
	}

	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf %s: %w", filepath.Base(path), err)
	}
	return l.LoadDocument(path, doc)
}

func (l *loader) LoadDocument(name string, doc *gltf.Document) (*model.Geometry, error) {
	g, err := l.convert(filepath.Base(name), doc)
	if err != nil {
		return nil, err
	}
	l.store(name, g)
	return g, nil
}

func (l *loader) LoadOBJ(name string, r io.Reader) (*model.Geometry, error) {
	g, err := parseOBJ(filepath.Base(name), r, l.zUpToYUp)
	if err != nil {
		return nil, fmt.Errorf("obj %s: %w", filepath.Base(name), err)
	}
	l.store(name, g)
	return g, nil
}

func (l *loader) store(name string, g *model.Geometry) {
	l.mu.Lock()
	l.cache[name] = g
	l.mu.Unlock()
}

func (l *loader) Get(name string) *model.Geometry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.cache[name]
}
