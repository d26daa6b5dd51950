package common

import (
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// OpenGLToWGPU remaps clip-space depth from the [-1, 1] range produced by mgl32.Perspective
// to the [0, 1] range WebGPU expects. Applied as OpenGLToWGPU * projection * view.
// Column-major: z' = 0.5*z + 0.5*w, x, y and w pass through.
var OpenGLToWGPU = mgl32.Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 0.5, 0,
	0, 0, 0.5, 1,
}

// WorldUp is the fixed world-space up axis used by every camera basis.
var WorldUp = mgl32.Vec3{0, 1, 0}

// SliceToBytes converts any slice to a byte slice for GPU buffer uploads.
// Uses unsafe pointer operations to create a view into the original data.
// WARNING: The returned slice shares memory with the input - do not modify.
//
// Parameters:
//   - data: source slice of any type
//
// Returns:
//   - []byte: byte slice view of the input data, or nil if input is empty
func SliceToBytes[T any](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	var zero T
	size := unsafe.Sizeof(zero)
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), int(size)*len(data))
}

// StructToBytes reinterprets a pointer to a struct as a raw byte slice.
// The returned slice aliases the struct's memory.
//
// Parameters:
//   - v: pointer to the struct to reinterpret
//
// Returns:
//   - []byte: byte slice view of the struct's memory
func StructToBytes[T any](v *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), int(unsafe.Sizeof(*v)))
}
