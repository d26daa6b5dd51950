package model

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func triangle(label string, z float32) *Geometry {
	return NewGeometry(label, []GPUVertex{
		{Position: [3]float32{0, 0, z}},
		{Position: [3]float32{1, 0, z}, TexCoord: [2]float32{1, 0}},
		{Position: [3]float32{0, 1, z}, TexCoord: [2]float32{0, 1}},
	}, []uint32{0, 1, 2})
}

func TestGPUVertexLayout(t *testing.T) {
	v := GPUVertex{Position: [3]float32{1, 2, 3}, TexCoord: [2]float32{4, 5}}
	if v.Size() != GPUVertexSize {
		t.Fatalf("expected %d-byte vertex, got %d", GPUVertexSize, v.Size())
	}
	g := NewGeometry("v", []GPUVertex{v}, nil)
	if string(g.VertexBytes()) != string(v.Marshal()) {
		t.Fatal("expected vertex byte view to match marshal")
	}
}

func TestGeometryAppendRebasesIndices(t *testing.T) {
	g := triangle("a", 0)
	g.Append(triangle("b", 1))
	g.Append(nil)

	if len(g.Vertices) != 6 || g.IndexCount() != 6 {
		t.Fatalf("expected 6 vertices and indices, got %d and %d", len(g.Vertices), g.IndexCount())
	}
	want := []uint32{0, 1, 2, 3, 4, 5}
	for i, idx := range g.Indices {
		if idx != want[i] {
			t.Fatalf("index %d: expected %d, got %d", i, want[i], idx)
		}
	}
	if len(g.IndexBytes()) != 24 {
		t.Fatalf("expected 24 index bytes, got %d", len(g.IndexBytes()))
	}
	if err := g.Validate(); err != nil {
		t.Fatalf("expected valid geometry: %v", err)
	}
}

func TestGeometryValidate(t *testing.T) {
	tests := []struct {
		name string
		g    *Geometry
	}{
		{"empty", NewGeometry("empty", nil, nil)},
		{"partial triangle", NewGeometry("partial", triangle("", 0).Vertices, []uint32{0, 1})},
		{"out of range", NewGeometry("range", triangle("", 0).Vertices, []uint32{0, 1, 3})},
	}
	for _, tt := range tests {
		if err := tt.g.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", tt.name)
		}
	}
}

func TestGeometryBounds(t *testing.T) {
	g := triangle("a", -2)
	g.Append(triangle("b", 3))
	lo, hi := g.Bounds()
	if lo != (mgl32.Vec3{0, 0, -2}) || hi != (mgl32.Vec3{1, 1, 3}) {
		t.Fatalf("unexpected bounds %v %v", lo, hi)
	}
}
