package loader

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

func triangleDocument(t *testing.T, withIndices bool, primitives int) *gltf.Document {
	t.Helper()
	doc := gltf.NewDocument()
	mesh := &gltf.Mesh{Name: "tri"}
	for p := range primitives {
		z := float32(p)
		prim := &gltf.Primitive{
			Attributes: gltf.PrimitiveAttributes{
				gltf.POSITION:   modeler.WritePosition(doc, [][3]float32{{0, 0, z}, {1, 0, z}, {0, 1, z}}),
				gltf.TEXCOORD_0: modeler.WriteTextureCoord(doc, [][2]float32{{0, 0}, {1, 0}, {0, 1}}),
			},
		}
		if withIndices {
			prim.Indices = gltf.Index(modeler.WriteIndices(doc, []uint16{0, 2, 1}))
		}
		mesh.Primitives = append(mesh.Primitives, prim)
	}
	doc.Meshes = []*gltf.Mesh{mesh}
	return doc
}

func TestLoadDocumentMergesPrimitivesInOrder(t *testing.T) {
	l := NewLoader(WithWorkers(3))
	g, err := l.LoadDocument("tri.glb", triangleDocument(t, true, 4))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(g.Vertices) != 12 || g.IndexCount() != 12 {
		t.Fatalf("expected 12 vertices and indices, got %d and %d", len(g.Vertices), g.IndexCount())
	}
	for p := range 4 {
		if z := g.Vertices[p*3].Position[2]; z != float32(p) {
			t.Fatalf("primitive %d out of order: z=%v", p, z)
		}
		want := []uint32{0, 2, 1}
		for i := range 3 {
			if got := g.Indices[p*3+i]; got != want[i]+uint32(p*3) {
				t.Fatalf("primitive %d index %d: expected %d, got %d", p, i, want[i]+uint32(p*3), got)
			}
		}
	}
	if g.Vertices[1].TexCoord != [2]float32{1, 0} {
		t.Fatalf("expected texture coordinates preserved, got %v", g.Vertices[1].TexCoord)
	}
	if l.Get("tri.glb") != g {
		t.Fatal("expected geometry cached under its name")
	}
}

func TestLoadDocumentSequentialIndices(t *testing.T) {
	g, err := NewLoader(WithWorkers(0)).LoadDocument("seq", triangleDocument(t, false, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, idx := range g.Indices {
		if idx != uint32(i) {
			t.Fatalf("expected sequential indices, got %v", g.Indices)
		}
	}
}

func TestLoadDocumentZUpRemap(t *testing.T) {
	g, err := NewLoader(WithZUpToYUp(true)).LoadDocument("zup", triangleDocument(t, true, 2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// (1, 0, 1) in the second primitive becomes (-1, 1, 0).
	if got := g.Vertices[4].Position; got != [3]float32{-1, 1, 0} {
		t.Fatalf("expected remapped position (-1, 1, 0), got %v", got)
	}
}

func TestLoadDocumentWithoutTriangles(t *testing.T) {
	_, err := NewLoader().LoadDocument("empty", gltf.NewDocument())
	if !errors.Is(err, ErrNoGeometry) {
		t.Fatalf("expected ErrNoGeometry, got %v", err)
	}
}

func TestLoadFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tri.glb")
	if err := gltf.SaveBinary(triangleDocument(t, true, 1), path); err != nil {
		t.Fatalf("save fixture: %v", err)
	}

	l := NewLoader()
	g, err := l.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := g.Validate(); err != nil {
		t.Fatalf("expected drawable geometry: %v", err)
	}
	again, err := l.Load(path)
	if err != nil || again != g {
		t.Fatalf("expected cached geometry on second load, got %v %v", again, err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := NewLoader().Load(filepath.Join(t.TempDir(), "missing.glb")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestCube(t *testing.T) {
	g := Cube()
	if len(g.Vertices) != 24 || g.IndexCount() != 36 {
		t.Fatalf("expected 24 vertices and 36 indices, got %d and %d", len(g.Vertices), g.IndexCount())
	}
	if err := g.Validate(); err != nil {
		t.Fatalf("expected valid cube: %v", err)
	}
	lo, hi := g.Bounds()
	if lo != (mgl32.Vec3{-0.5, -0.5, -0.5}) || hi != (mgl32.Vec3{0.5, 0.5, 0.5}) {
		t.Fatalf("unexpected cube bounds %v %v", lo, hi)
	}

	// Every triangle must face away from the center.
	for i := 0; i < len(g.Indices); i += 3 {
		a := mgl32.Vec3(g.Vertices[g.Indices[i]].Position)
		b := mgl32.Vec3(g.Vertices[g.Indices[i+1]].Position)
		c := mgl32.Vec3(g.Vertices[g.Indices[i+2]].Position)
		normal := b.Sub(a).Cross(c.Sub(a))
		if normal.Dot(a.Add(b).Add(c)) <= 0 {
			t.Fatalf("triangle %d winds inward", i/3)
		}
	}
}

func TestLoadDocumentMissingAccessor(t *testing.T) {
	tests := []struct {
		name    string
		corrupt func(p *gltf.Primitive)
	}{
		{"position", func(p *gltf.Primitive) { p.Attributes[gltf.POSITION] = 99 }},
		{"texture coordinate", func(p *gltf.Primitive) { p.Attributes[gltf.TEXCOORD_0] = -1 }},
		{"index", func(p *gltf.Primitive) { p.Indices = gltf.Index(42) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := triangleDocument(t, true, 2)
			tt.corrupt(doc.Meshes[0].Primitives[1])

			_, err := NewLoader(WithWorkers(2)).LoadDocument("broken", doc)
			if err == nil || !strings.Contains(err.Error(), "mesh 0 primitive 1") {
				t.Fatalf("expected error naming the broken primitive, got %v", err)
			}
		})
	}
}

const quadOBJ = `# unit quad
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vt 0 0
vt 1 0
vt 1 1
vt 0 1
vn 0 0 1
l 1 2
f 1/1/1 2/2/1 3/3/1 4/4/1
f -4/-4 -2/-2 -1/-1
`

func TestLoadOBJTriangulatesAndSharesVertices(t *testing.T) {
	l := NewLoader()
	g, err := l.LoadOBJ("quad.obj", strings.NewReader(quadOBJ))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(g.Vertices) != 4 {
		t.Fatalf("expected 4 shared vertices, got %d", len(g.Vertices))
	}
	want := []uint32{0, 1, 2, 0, 2, 3, 0, 2, 3}
	if len(g.Indices) != len(want) {
		t.Fatalf("expected indices %v, got %v", want, g.Indices)
	}
	for i := range want {
		if g.Indices[i] != want[i] {
			t.Fatalf("expected indices %v, got %v", want, g.Indices)
		}
	}
	if g.Vertices[2].TexCoord != [2]float32{1, 1} {
		t.Fatalf("expected texture coordinate (1, 1), got %v", g.Vertices[2].TexCoord)
	}
	if l.Get("quad.obj") != g {
		t.Fatal("expected geometry cached under its name")
	}
}

func TestLoadOBJZUpRemap(t *testing.T) {
	g, err := NewLoader(WithZUpToYUp(true)).LoadOBJ("tri.obj", strings.NewReader("v 1 2 3\nv 0 0 0\nv 0 1 0\nf 1 2 3\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := g.Vertices[0].Position; got != [3]float32{-1, 3, -2} {
		t.Fatalf("expected remapped position (-1, 3, -2), got %v", got)
	}
	if g.Vertices[0].TexCoord != [2]float32{} {
		t.Fatalf("expected zero texture coordinate, got %v", g.Vertices[0].TexCoord)
	}
}

func TestLoadOBJErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"no faces", "v 0 0 0\n"},
		{"short face", "v 0 0 0\nv 1 0 0\nf 1 2\n"},
		{"index out of range", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 4\n"},
		{"bad number", "v 0 x 0\n"},
		{"missing texture coordinate", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1/1 2/1 3/1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewLoader().LoadOBJ("bad.obj", strings.NewReader(tt.src)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestLoadOBJFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Quad.OBJ")
	if err := os.WriteFile(path, []byte(quadOBJ), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	g, err := NewLoader().Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.IndexCount() != 9 {
		t.Fatalf("expected 9 indices, got %d", g.IndexCount())
	}
}
