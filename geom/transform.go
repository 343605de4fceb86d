// Package geom holds the rigid-body transform shared by every scene entity.
package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	// Origin is the world origin, the pivot for orbiting entities.
	Origin = mgl32.Vec3{0, 0, 0}

	AxisX = mgl32.Vec3{1, 0, 0}
	AxisY = mgl32.Vec3{0, 1, 0}
	AxisZ = mgl32.Vec3{0, 0, 1}
)

// Transform is the position, orientation and scale of one entity.
// Rotation is kept at unit length by every method that composes it.
type Transform struct {
	Translation mgl32.Vec3
	Rotation    mgl32.Quat
	Scale       mgl32.Vec3
}

// Identity returns a transform at the origin with no rotation and unit scale.
func Identity() Transform {
	return Transform{
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

// FromXYZ returns an identity transform translated to (x, y, z).
func FromXYZ(x, y, z float32) Transform {
	t := Identity()
	t.Translation = mgl32.Vec3{x, y, z}
	return t
}

// WithRotation returns a copy of t with its rotation replaced by q.
func (t Transform) WithRotation(q mgl32.Quat) Transform {
	t.Rotation = q.Normalize()
	return t
}

// LookingAt returns a copy of t rotated so that its forward axis (-Z) points
// at target and its up axis lies in the plane of forward and up.
// If target coincides with the translation, or up is parallel to the view
// direction, t is returned unchanged.
func (t Transform) LookingAt(target, up mgl32.Vec3) Transform {
	forward := target.Sub(t.Translation)
	if forward.Len() < 1e-6 {
		return t
	}
	forward = forward.Normalize()

	right := forward.Cross(up)
	if right.Len() < 1e-6 {
		return t
	}
	right = right.Normalize()
	upOrtho := right.Cross(forward)

	basis := mgl32.Mat3FromCols(right, upOrtho, forward.Mul(-1))
	t.Rotation = mgl32.Mat4ToQuat(basis.Mat4()).Normalize()
	return t
}

// Rotate applies q in world space: the rotation is pre-multiplied.
func (t *Transform) Rotate(q mgl32.Quat) {
	t.Rotation = q.Mul(t.Rotation).Normalize()
}

// RotateLocal applies q in the transform's own frame: the rotation is
// post-multiplied.
func (t *Transform) RotateLocal(q mgl32.Quat) {
	t.Rotation = t.Rotation.Mul(q).Normalize()
}

// RotateX rotates about the world X axis by angle radians.
func (t *Transform) RotateX(angle float32) {
	t.Rotate(mgl32.QuatRotate(angle, AxisX))
}

// RotateY rotates about the world Y axis by angle radians.
func (t *Transform) RotateY(angle float32) {
	t.Rotate(mgl32.QuatRotate(angle, AxisY))
}

// RotateLocalX rotates about the transform's own X axis by angle radians.
func (t *Transform) RotateLocalX(angle float32) {
	t.RotateLocal(mgl32.QuatRotate(angle, AxisX))
}

// RotateLocalY rotates about the transform's own Y axis by angle radians.
func (t *Transform) RotateLocalY(angle float32) {
	t.RotateLocal(mgl32.QuatRotate(angle, AxisY))
}

// RotateAround rotates the whole transform about point: the translation
// swings around point and the orientation turns by the same rotation.
func (t *Transform) RotateAround(point mgl32.Vec3, q mgl32.Quat) {
	t.Translation = point.Add(q.Rotate(t.Translation.Sub(point)))
	t.Rotate(q)
}

// Translate moves the transform by delta in world space.
func (t *Transform) Translate(delta mgl32.Vec3) {
	t.Translation = t.Translation.Add(delta)
}

// Forward returns the unit vector the transform faces (-Z).
func (t Transform) Forward() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{0, 0, -1})
}

// Right returns the transform's local +X axis in world space.
func (t Transform) Right() mgl32.Vec3 {
	return t.Rotation.Rotate(AxisX)
}

// Up returns the transform's local +Y axis in world space.
func (t Transform) Up() mgl32.Vec3 {
	return t.Rotation.Rotate(AxisY)
}

// Matrix returns the local-to-world matrix (translation * rotation * scale).
func (t Transform) Matrix() mgl32.Mat4 {
	scale := t.Scale
	if scale == (mgl32.Vec3{}) {
		scale = mgl32.Vec3{1, 1, 1}
	}
	return mgl32.Translate3D(t.Translation.X(), t.Translation.Y(), t.Translation.Z()).
		Mul4(t.Rotation.Mat4()).
		Mul4(mgl32.Scale3D(scale.X(), scale.Y(), scale.Z()))
}

// ViewMatrix returns the world-to-local matrix used when the transform is a camera.
func (t Transform) ViewMatrix() mgl32.Mat4 {
	return t.Rotation.Inverse().Mat4().
		Mul4(mgl32.Translate3D(-t.Translation.X(), -t.Translation.Y(), -t.Translation.Z()))
}

// YawPitchRoll decomposes the rotation into Y-X-Z Euler angles in radians.
// Only used for display; the quaternion stays authoritative.
func (t Transform) YawPitchRoll() (yaw, pitch, roll float32) {
	q := t.Rotation.Normalize()
	w, x, y, z := float64(q.W), float64(q.V[0]), float64(q.V[1]), float64(q.V[2])

	sinPitch := 2 * (w*x - y*z)
	if sinPitch > 1 {
		sinPitch = 1
	} else if sinPitch < -1 {
		sinPitch = -1
	}

	pitch = float32(math.Asin(sinPitch))
	yaw = float32(math.Atan2(2*(w*y+x*z), 1-2*(x*x+y*y)))
	roll = float32(math.Atan2(2*(w*z+x*y), 1-2*(x*x+z*z)))
	return
}
