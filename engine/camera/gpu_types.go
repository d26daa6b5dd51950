package camera

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/Carmen-Shannon/oxy-view/common"
	"github.com/go-gl/mathgl/mgl32"
)

// GPUCameraUniformSource is the canonical WGSL definition of the CameraUniform struct.
// Matches GPUCameraUniform layout exactly (64 bytes).
//
//go:embed assets/camera_uniform.wgsl
var GPUCameraUniformSource string

// GPUCameraUniform is the GPU-aligned representation of the camera uniform buffer.
// A single column-major mat4x4<f32> with no padding, so the struct can be copied
// byte-for-byte into a uniform buffer.
type GPUCameraUniform struct {
	ViewProj [16]float32 // offset 0: combined view-projection matrix (mat4x4<f32>)
}

// NewGPUCameraUniform returns a uniform holding the identity matrix.
//
// Returns:
//   - GPUCameraUniform: the identity uniform
func NewGPUCameraUniform() GPUCameraUniform {
	return GPUCameraUniform{ViewProj: mgl32.Ident4()}
}

// Update overwrites the stored matrix with the view-projection of c. It is called once
// per frame and never skips an unchanged camera.
//
// Parameters:
//   - c: the camera to derive the matrix from
func (g *GPUCameraUniform) Update(c *Camera) {
	g.ViewProj = BuildViewProjection(c)
}

// Size returns the size of the GPUCameraUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (64)
func (g *GPUCameraUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Bytes returns a zero-copy view of the uniform for queue writes.
// The slice aliases g and must not outlive it.
func (g *GPUCameraUniform) Bytes() []byte {
	return common.StructToBytes(g)
}

// Marshal serializes the GPUCameraUniform struct into a little-endian byte buffer.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUCameraUniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.ViewProj[i]))
	}
	return buf
}
