// Package model holds the CPU-side mesh data handed from the loader to the renderer.
package model

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-view/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Geometry is an indexed triangle list ready for upload.
type Geometry struct {
	// Label names the geometry in GPU debug labels.
	Label string

	Vertices []GPUVertex
	Indices  []uint32
}

// NewGeometry creates a Geometry from vertices and triangle-list indices.
//
// Parameters:
//   - label: debug label used for GPU buffers
//   - vertices: the mesh vertices
//   - indices: triangle-list indices into vertices
//
// Returns:
//   - *Geometry: the geometry
func NewGeometry(label string, vertices []GPUVertex, indices []uint32) *Geometry {
	return &Geometry{Label: label, Vertices: vertices, Indices: indices}
}

// Append adds other's triangles to g, rebasing its indices past g's existing vertices.
func (g *Geometry) Append(other *Geometry) {
	if other == nil {
		return
	}
	base := uint32(len(g.Vertices))
	g.Vertices = append(g.Vertices, other.Vertices...)
	for _, idx := range other.Indices {
		g.Indices = append(g.Indices, idx+base)
	}
}

// IndexCount returns the number of indices to draw.
func (g *Geometry) IndexCount() uint32 {
	return uint32(len(g.Indices))
}

// VertexBytes returns a byte view of the vertices that aliases g.Vertices.
func (g *Geometry) VertexBytes() []byte {
	return common.SliceToBytes(g.Vertices)
}

// IndexBytes returns a byte view of the indices that aliases g.Indices.
func (g *Geometry) IndexBytes() []byte {
	return common.SliceToBytes(g.Indices)
}

// Validate checks that the geometry is drawable: non-empty, a whole number of triangles and
// every index inside the vertex range.
//
// Returns:
//   - error: the first problem found, or nil
func (g *Geometry) Validate() error {
	if len(g.Vertices) == 0 || len(g.Indices) == 0 {
		return fmt.Errorf("geometry %q is empty", g.Label)
	}
	if len(g.Indices)%3 != 0 {
		return fmt.Errorf("geometry %q has %d indices, not a multiple of 3", g.Label, len(g.Indices))
	}
	n := uint32(len(g.Vertices))
	for i, idx := range g.Indices {
		if idx >= n {
			return fmt.Errorf("geometry %q index %d references vertex %d of %d", g.Label, i, idx, n)
		}
	}
	return nil
}

// Bounds returns the axis-aligned bounding box of the vertex positions.
// Both corners are zero for an empty geometry.
func (g *Geometry) Bounds() (lo, hi mgl32.Vec3) {
	if len(g.Vertices) == 0 {
		return lo, hi
	}
	lo = mgl32.Vec3(g.Vertices[0].Position)
	hi = lo
	for _, v := range g.Vertices[1:] {
		for i := range 3 {
			lo[i] = min(lo[i], v.Position[i])
			hi[i] = max(hi[i], v.Position[i])
		}
	}
	return lo, hi
}
