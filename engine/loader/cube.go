package loader

import (
	"github.com/Carmen-Shannon/oxy-view/engine/model"
)

// cubeFaces lists each face as its outward normal followed by the two in-plane axes, ordered so
// that normal = u x v and the face winds counter-clockwise seen from outside.
var cubeFaces = [6][3][3]float32{
	{{1, 0, 0}, {0, 0, -1}, {0, 1, 0}},
	{{-1, 0, 0}, {0, 0, 1}, {0, 1, 0}},
	{{0, 1, 0}, {1, 0, 0}, {0, 0, -1}},
	{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}},
	{{0, 0, 1}, {1, 0, 0}, {0, 1, 0}},
	{{0, 0, -1}, {-1, 0, 0}, {0, 1, 0}},
}

// Cube returns a unit cube centered on the origin with per-face texture coordinates.
// It stands in for a model file when none is configured.
//
// Returns:
//   - *model.Geometry: 24 vertices and 36 indices
func Cube() *model.Geometry {
	corners := [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	uvs := [4][2]float32{{0, 1}, {1, 1}, {1, 0}, {0, 0}}

	vertices := make([]model.GPUVertex, 0, 24)
	indices := make([]uint32, 0, 36)
	for _, face := range cubeFaces {
		n, u, v := face[0], face[1], face[2]
		base := uint32(len(vertices))
		for i, c := range corners {
			var p [3]float32
			for axis := range 3 {
				p[axis] = 0.5 * (n[axis] + c[0]*u[axis] + c[1]*v[axis])
			}
			vertices = append(vertices, model.GPUVertex{Position: p, TexCoord: uvs[i]})
		}
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}
	return model.NewGeometry("cube", vertices, indices)
}
