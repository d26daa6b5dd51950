package camera

import (
	"math"

	"github.com/Carmen-Shannon/oxy-view/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Forward returns the unit view direction for an orientation: yaw rotates about +Y,
// positive pitch tilts the view downward. Zero orientation looks down +Z.
func Forward(o Euler) mgl32.Vec3 {
	sinYaw, cosYaw := math.Sincos(float64(mgl32.DegToRad(o.Yaw)))
	sinPitch, cosPitch := math.Sincos(float64(mgl32.DegToRad(o.Pitch)))
	return mgl32.Vec3{
		float32(cosPitch * sinYaw),
		float32(-sinPitch),
		float32(cosPitch * cosYaw),
	}.Normalize()
}

// Basis returns the forward, right and up movement axes for an orientation.
// Right stays in the horizontal plane and up is forward x right, so up tilts with pitch.
func Basis(o Euler) (forward, right, up mgl32.Vec3) {
	forward = Forward(o)
	sinYaw, cosYaw := math.Sincos(float64(mgl32.DegToRad(o.Yaw)))
	right = mgl32.Vec3{float32(cosYaw), 0, float32(-sinYaw)}.Normalize()
	up = forward.Cross(right)
	return forward, right, up
}

// ViewMatrix builds the right-handed look-to view matrix for a pose.
// The basis degenerates when forward is parallel to world up (pitch of +-90 degrees);
// no guard is applied and the result then contains NaN.
func ViewMatrix(p Pose) mgl32.Mat4 {
	return mgl32.LookAtV(p.Position, p.Position.Add(Forward(p.Orientation)), common.WorldUp)
}

// ProjectionMatrix builds the right-handed perspective matrix for a frustum, producing
// clip-space depth in [-1, 1].
func ProjectionMatrix(f Frustum) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(f.FovY), f.Aspect, f.ZNear, f.ZFar)
}

// BuildViewProjection computes the WebGPU-ready view-projection matrix of c:
// OpenGLToWGPU * projection * view. Inputs are not validated.
//
// Parameters:
//   - c: the camera to read pose and frustum from
//
// Returns:
//   - mgl32.Mat4: the column-major view-projection matrix with depth in [0, 1]
func BuildViewProjection(c *Camera) mgl32.Mat4 {
	viewProj := ProjectionMatrix(c.Frustum).Mul4(ViewMatrix(c.Pose))
	return common.OpenGLToWGPU.Mul4(viewProj)
}
