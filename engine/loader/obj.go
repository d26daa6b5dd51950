package loader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Carmen-Shannon/oxy-view/engine/model"
)

// objCorner is one face corner: a position index and an optional texture coordinate index, both 0-based.
type objCorner struct {
	v  int
	vt int // -1 when absent
}

// parseOBJ reads Wavefront OBJ geometry. Polygons are fan-triangulated and every distinct
// position/texcoord pair becomes one vertex. Normals, lines, points, groups and materials are ignored.
func parseOBJ(label string, r io.Reader, zUp bool) (*model.Geometry, error) {
	var (
		positions [][3]float32
		texCoords [][2]float32
		vertices  []model.GPUVertex
		indices   []uint32
	)
	seen := make(map[objCorner]uint32)

	sc := bufio.NewScanner(r)
	for lineNum := 1; sc.Scan(); lineNum++ {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "v":
			p, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("line %d: vertex: %w", lineNum, err)
			}
			pos := [3]float32{p[0], p[1], p[2]}
			if zUp {
				pos = zUpToYUp(pos)
			}
			positions = append(positions, pos)
		case "vt":
			uv, err := parseFloats(fields[1:], 2)
			if err != nil {
				return nil, fmt.Errorf("line %d: texture coordinate: %w", lineNum, err)
			}
			texCoords = append(texCoords, [2]float32{uv[0], uv[1]})
		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face needs at least 3 corners, got %d", lineNum, len(fields)-1)
			}
			face := make([]uint32, 0, len(fields)-1)
			for _, tok := range fields[1:] {
				c, err := parseCorner(tok, len(positions), len(texCoords))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNum, err)
				}
				idx, ok := seen[c]
				if !ok {
					v := model.GPUVertex{Position: positions[c.v]}
					if c.vt >= 0 {
						v.TexCoord = texCoords[c.vt]
					}
					idx = uint32(len(vertices))
					vertices = append(vertices, v)
					seen[c] = idx
				}
				face = append(face, idx)
			}
			for i := 1; i+1 < len(face); i++ {
				indices = append(indices, face[0], face[i], face[i+1])
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read obj: %w", err)
	}
	if len(indices) == 0 {
		return nil, fmt.Errorf("%s: %w", label, ErrNoGeometry)
	}

	g := model.NewGeometry(label, vertices, indices)
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

func parseFloats(fields []string, n int) ([]float32, error) {
	if len(fields) < n {
		return nil, fmt.Errorf("expected %d components, got %d", n, len(fields))
	}
	out := make([]float32, n)
	for i := range n {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return nil, err
		}
		out[i] = float32(f)
	}
	return out, nil
}

// parseCorner parses "v", "v/vt", "v//vn" or "v/vt/vn". Indices are 1-based; negative
// indices count back from the most recent element.
func parseCorner(tok string, nv, nvt int) (objCorner, error) {
	parts := strings.Split(tok, "/")
	v, err := resolveIndex(parts[0], nv)
	if err != nil {
		return objCorner{}, fmt.Errorf("face corner %q: position: %w", tok, err)
	}
	c := objCorner{v: v, vt: -1}
	if len(parts) > 1 && parts[1] != "" {
		if c.vt, err = resolveIndex(parts[1], nvt); err != nil {
			return objCorner{}, fmt.Errorf("face corner %q: texture coordinate: %w", tok, err)
		}
	}
	return c, nil
}

func resolveIndex(s string, n int) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	switch {
	case i > 0 && i <= n:
		return i - 1, nil
	case i < 0 && -i <= n:
		return n + i, nil
	}
	return 0, fmt.Errorf("index %d out of range for %d elements", i, n)
}
