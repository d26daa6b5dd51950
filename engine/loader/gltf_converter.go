package loader

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-view/engine/model"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// ErrNoGeometry is returned when a document holds no triangle primitive with positions.
var ErrNoGeometry = errors.New("no triangle geometry found")

type primitiveRef struct {
	mesh      int
	primitive int
	prim      *gltf.Primitive
}

// convert reads every triangle primitive of doc into one Geometry. Primitives are converted
// concurrently on the worker pool and merged in document order.
func (l *loader) convert(label string, doc *gltf.Document) (*model.Geometry, error) {
	var refs []primitiveRef
	for mi, m := range doc.Meshes {
		for pi, prim := range m.Primitives {
			if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
				continue
			}
			if _, ok := prim.Attributes[gltf.POSITION]; !ok {
				continue
			}
			refs = append(refs, primitiveRef{mesh: mi, primitive: pi, prim: prim})
		}
	}
	if len(refs) == 0 {
		return nil, fmt.Errorf("%s: %w", label, ErrNoGeometry)
	}

	results := make([]*model.Geometry, len(refs))
	errs := make([]error, len(refs))

	// The pool keeps its workers alive between loads; the WaitGroup is the per-load barrier.
	var wg sync.WaitGroup
	for i, ref := range refs {
		wg.Add(1)
		l.pool.SubmitTask(worker.Task{
			ID: i,
			Do: func() (any, error) {
				defer wg.Done()
				g, err := l.convertPrimitive(doc, ref.prim)
				if err != nil {
					err = fmt.Errorf("mesh %d primitive %d: %w", ref.mesh, ref.primitive, err)
				}
				results[i], errs[i] = g, err
				return nil, err
			},
		})
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("%s: %w", label, err)
	}

	merged := model.NewGeometry(label, nil, nil)
	for _, g := range results {
		merged.Append(g)
	}
	return merged, nil
}

// accessor returns doc.Accessors[idx], or an error when the index is out of range.
func accessor(doc *gltf.Document, idx int, what string) (*gltf.Accessor, error) {
	if idx < 0 || idx >= len(doc.Accessors) || doc.Accessors[idx] == nil {
		return nil, fmt.Errorf("%s accessor %d of %d does not exist", what, idx, len(doc.Accessors))
	}
	return doc.Accessors[idx], nil
}

func (l *loader) convertPrimitive(doc *gltf.Document, prim *gltf.Primitive) (*model.Geometry, error) {
	acc, err := accessor(doc, prim.Attributes[gltf.POSITION], "position")
	if err != nil {
		return nil, err
	}
	positions, err := modeler.ReadPosition(doc, acc, nil)
	if err != nil {
		return nil, fmt.Errorf("read positions: %w", err)
	}

	var uvs [][2]float32
	if idx, ok := prim.Attributes[gltf.TEXCOORD_0]; ok {
		acc, err := accessor(doc, idx, "texture coordinate")
		if err != nil {
			return nil, err
		}
		uvs, err = modeler.ReadTextureCoord(doc, acc, nil)
		if err != nil {
			return nil, fmt.Errorf("read texture coordinates: %w", err)
		}
	}

	vertices := make([]model.GPUVertex, len(positions))
	for i, p := range positions {
		if l.zUpToYUp {
			p = zUpToYUp(p)
		}
		vertices[i].Position = p
		if i < len(uvs) {
			vertices[i].TexCoord = uvs[i]
		}
	}

	var indices []uint32
	if prim.Indices != nil {
		acc, err := accessor(doc, *prim.Indices, "index")
		if err != nil {
			return nil, err
		}
		indices, err = modeler.ReadIndices(doc, acc, nil)
		if err != nil {
			return nil, fmt.Errorf("read indices: %w", err)
		}
	} else {
		indices = make([]uint32, len(positions)-len(positions)%3)
		for i := range indices {
			indices[i] = uint32(i)
		}
	}

	g := model.NewGeometry("", vertices, indices)
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

func zUpToYUp(p [3]float32) [3]float32 {
	return [3]float32{-p[0], p[2], -p[1]}
}
