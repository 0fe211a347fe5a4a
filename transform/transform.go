// Package transform implements the 2D and 3D local/global transform
// components and the hierarchy propagation pass (spec.md §3.8/§4.H). 3D
// transforms use quaternion rotation; 2D transforms use a scalar radian
// angle. Both are plain components stored in an ecs.World like any other.
package transform

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/goud-engine/core/ecs"
)

// Transform is the local, editable 3D pose of an entity (spec.md §3.8).
// Rotation is kept unit-length: every rotational mutator renormalizes it.
type Transform struct {
	ecs.Marker
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
}

// Identity returns the transform at the origin with no rotation and unit scale.
func Identity() Transform {
	return Transform{Position: mgl32.Vec3{}, Rotation: mgl32.QuatIdent(), Scale: mgl32.Vec3{1, 1, 1}}
}

// FromPosition returns an identity-rotation, unit-scale transform at p.
func FromPosition(p mgl32.Vec3) Transform {
	t := Identity()
	t.Position = p
	return t
}

// FromRotation returns an origin, unit-scale transform with rotation q,
// normalized.
func FromRotation(q mgl32.Quat) Transform {
	t := Identity()
	t.Rotation = q.Normalize()
	return t
}

// FromScale returns an origin, identity-rotation transform scaled by s on
// every axis.
func FromScale(s mgl32.Vec3) Transform {
	t := Identity()
	t.Scale = s
	return t
}

// FromScaleUniform returns an origin, identity-rotation transform scaled by
// s uniformly on all three axes.
func FromScaleUniform(s float32) Transform {
	return FromScale(mgl32.Vec3{s, s, s})
}

// FromPositionRotation returns a unit-scale transform at p with rotation q,
// normalized.
func FromPositionRotation(p mgl32.Vec3, q mgl32.Quat) Transform {
	t := FromRotation(q)
	t.Position = p
	return t
}

// LookAt constructs a transform at eye whose forward vector (-Z) points at
// target, using up to resolve roll.
//
// Parameters:
//   - eye: the transform's position
//   - target: the point the forward vector should point toward
//   - up: the reference up vector, typically (0,1,0)
func LookAt(eye, target, up mgl32.Vec3) Transform {
	forward := target.Sub(eye)
	if forward.Len() == 0 {
		forward = mgl32.Vec3{0, 0, -1}
	} else {
		forward = forward.Normalize()
	}
	right := forward.Cross(up)
	if right.Len() == 0 {
		right = mgl32.Vec3{1, 0, 0}
	} else {
		right = right.Normalize()
	}
	trueUp := right.Cross(forward)

	// Columns are right, trueUp, -forward (camera looks down -Z in its own frame).
	m := mgl32.Mat3FromCols(right, trueUp, forward.Mul(-1))
	return FromPositionRotation(eye, mgl32.Mat3ToQuat(m))
}

// Translate moves the transform by delta in its parent's (world, for a
// root) coordinate frame.
func (t *Transform) Translate(delta mgl32.Vec3) { t.Position = t.Position.Add(delta) }

// TranslateLocal moves the transform by delta expressed in its own local
// axes (rotated by Rotation first).
func (t *Transform) TranslateLocal(delta mgl32.Vec3) {
	t.Position = t.Position.Add(t.Rotation.Rotate(delta))
}

// Rotate composes q onto the current rotation (q applied after Rotation)
// and renormalizes.
func (t *Transform) Rotate(q mgl32.Quat) {
	t.Rotation = q.Mul(t.Rotation).Normalize()
}

// RotateX rotates by angle radians around the world X axis.
func (t *Transform) RotateX(angle float32) { t.Rotate(mgl32.QuatRotate(angle, mgl32.Vec3{1, 0, 0})) }

// RotateY rotates by angle radians around the world Y axis.
func (t *Transform) RotateY(angle float32) { t.Rotate(mgl32.QuatRotate(angle, mgl32.Vec3{0, 1, 0})) }

// RotateZ rotates by angle radians around the world Z axis.
func (t *Transform) RotateZ(angle float32) { t.Rotate(mgl32.QuatRotate(angle, mgl32.Vec3{0, 0, 1})) }

// rotateLocal composes q onto the current rotation about the transform's
// own axis (q applied before Rotation) and renormalizes.
func (t *Transform) rotateLocal(q mgl32.Quat) {
	t.Rotation = t.Rotation.Mul(q).Normalize()
}

// RotateLocalX rotates by angle radians around the transform's own local X axis.
func (t *Transform) RotateLocalX(angle float32) {
	t.rotateLocal(mgl32.QuatRotate(angle, mgl32.Vec3{1, 0, 0}))
}

// RotateLocalY rotates by angle radians around the transform's own local Y axis.
func (t *Transform) RotateLocalY(angle float32) {
	t.rotateLocal(mgl32.QuatRotate(angle, mgl32.Vec3{0, 1, 0}))
}

// RotateLocalZ rotates by angle radians around the transform's own local Z axis.
func (t *Transform) RotateLocalZ(angle float32) {
	t.rotateLocal(mgl32.QuatRotate(angle, mgl32.Vec3{0, 0, 1}))
}

// SetRotationEuler replaces the rotation with one built from pitch (X), yaw
// (Y), roll (Z) radians, applied yaw then pitch then roll.
func (t *Transform) SetRotationEuler(pitch, yaw, roll float32) {
	qy := mgl32.QuatRotate(yaw, mgl32.Vec3{0, 1, 0})
	qx := mgl32.QuatRotate(pitch, mgl32.Vec3{1, 0, 0})
	qz := mgl32.QuatRotate(roll, mgl32.Vec3{0, 0, 1})
	t.Rotation = qz.Mul(qx).Mul(qy).Normalize()
}

// SetScale replaces the scale vector outright.
func (t *Transform) SetScale(s mgl32.Vec3) { t.Scale = s }

// ScaleBy multiplies the current scale component-wise by s.
func (t *Transform) ScaleBy(s mgl32.Vec3) {
	t.Scale = mgl32.Vec3{t.Scale[0] * s[0], t.Scale[1] * s[1], t.Scale[2] * s[2]}
}

// Forward returns the transform's local -Z axis rotated into its current orientation.
func (t Transform) Forward() mgl32.Vec3 { return t.Rotation.Rotate(mgl32.Vec3{0, 0, -1}) }

// Backward returns the negation of Forward.
func (t Transform) Backward() mgl32.Vec3 { return t.Forward().Mul(-1) }

// Right returns the transform's local +X axis rotated into its current orientation.
func (t Transform) Right() mgl32.Vec3 { return t.Rotation.Rotate(mgl32.Vec3{1, 0, 0}) }

// Left returns the negation of Right.
func (t Transform) Left() mgl32.Vec3 { return t.Right().Mul(-1) }

// Up returns the transform's local +Y axis rotated into its current orientation.
func (t Transform) Up() mgl32.Vec3 { return t.Rotation.Rotate(mgl32.Vec3{0, 1, 0}) }

// Down returns the negation of Up.
func (t Transform) Down() mgl32.Vec3 { return t.Up().Mul(-1) }

// Matrix returns the T·R·S local transform matrix.
func (t Transform) Matrix() mgl32.Mat4 {
	return mgl32.Translate3D(t.Position[0], t.Position[1], t.Position[2]).
		Mul4(t.Rotation.Mat4()).
		Mul4(mgl32.Scale3D(t.Scale[0], t.Scale[1], t.Scale[2]))
}

// MatrixInverse returns the inverse of Matrix().
func (t Transform) MatrixInverse() mgl32.Mat4 {
	return t.Matrix().Inv()
}

// TransformPoint applies the full T·R·S matrix to p.
func (t Transform) TransformPoint(p mgl32.Vec3) mgl32.Vec3 {
	v := t.Matrix().Mul4x1(mgl32.Vec4{p[0], p[1], p[2], 1})
	return mgl32.Vec3{v[0], v[1], v[2]}
}

// TransformDirection applies rotation and scale to d, ignoring translation.
func (t Transform) TransformDirection(d mgl32.Vec3) mgl32.Vec3 {
	scaled := mgl32.Vec3{d[0] * t.Scale[0], d[1] * t.Scale[1], d[2] * t.Scale[2]}
	return t.Rotation.Rotate(scaled)
}

// InverseTransformPoint maps a world-space point p back into this transform's
// local space.
func (t Transform) InverseTransformPoint(p mgl32.Vec3) mgl32.Vec3 {
	v := t.MatrixInverse().Mul4x1(mgl32.Vec4{p[0], p[1], p[2], 1})
	return mgl32.Vec3{v[0], v[1], v[2]}
}

// InverseTransformDirection maps a world-space direction d back into this
// transform's local space, ignoring translation.
func (t Transform) InverseTransformDirection(d mgl32.Vec3) mgl32.Vec3 {
	inv := t.Rotation.Inverse()
	rotated := inv.Rotate(d)
	return mgl32.Vec3{rotated[0] / t.Scale[0], rotated[1] / t.Scale[1], rotated[2] / t.Scale[2]}
}

// Lerp interpolates position and scale linearly and rotation via slerp,
// at parameter t01 in [0, 1].
func (t Transform) Lerp(other Transform, t01 float32) Transform {
	return Transform{
		Position: lerpVec3(t.Position, other.Position, t01),
		Rotation: mgl32.QuatSlerp(t.Rotation, other.Rotation, t01),
		Scale:    lerpVec3(t.Scale, other.Scale, t01),
	}
}

func lerpVec3(a, b mgl32.Vec3, t01 float32) mgl32.Vec3 {
	return mgl32.Vec3{
		a[0] + (b[0]-a[0])*t01,
		a[1] + (b[1]-a[1])*t01,
		a[2] + (b[2]-a[2])*t01,
	}
}

// normalizeAngle wraps a radian angle into [-π, π), used by Transform2D.
func normalizeAngle(a float32) float32 {
	const twoPi = 2 * math.Pi
	a = float32(math.Mod(float64(a), twoPi))
	if a >= math.Pi {
		a -= twoPi
	} else if a < -math.Pi {
		a += twoPi
	}
	return a
}
