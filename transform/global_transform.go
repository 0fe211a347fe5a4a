package transform

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/goud-engine/core/ecs"
)

// GlobalTransform is the cached world-space pose a propagation pass
// computes from Transform (and, transitively, ancestor transforms). It
// stores only the resulting matrix; direct mutation is unsupported by
// design since the next propagation pass overwrites it (spec.md §3.8).
type GlobalTransform struct {
	ecs.Marker
	matrix mgl32.Mat4
}

// GlobalTransformFromMatrix wraps an already-computed matrix, used by the
// propagation pass.
func GlobalTransformFromMatrix(m mgl32.Mat4) GlobalTransform {
	return GlobalTransform{matrix: m}
}

// GlobalIdentity returns the global transform at the origin.
func GlobalIdentity() GlobalTransform {
	return GlobalTransform{matrix: mgl32.Ident4()}
}

// Matrix returns the cached world matrix.
func (g GlobalTransform) Matrix() mgl32.Mat4 { return g.matrix }

// ToColsArray returns the matrix in column-major flat form, the layout GPU
// uniform buffers expect.
func (g GlobalTransform) ToColsArray() [16]float32 {
	var out [16]float32
	for i, v := range g.matrix {
		out[i] = v
	}
	return out
}

// Translation extracts the world-space position from the matrix's
// translation column.
func (g GlobalTransform) Translation() mgl32.Vec3 {
	return mgl32.Vec3{g.matrix[12], g.matrix[13], g.matrix[14]}
}

// Scale extracts the per-axis world-space scale as the length of each basis column.
func (g GlobalTransform) Scale() mgl32.Vec3 {
	sx := mgl32.Vec3{g.matrix[0], g.matrix[1], g.matrix[2]}.Len()
	sy := mgl32.Vec3{g.matrix[4], g.matrix[5], g.matrix[6]}.Len()
	sz := mgl32.Vec3{g.matrix[8], g.matrix[9], g.matrix[10]}.Len()
	return mgl32.Vec3{sx, sy, sz}
}

// Rotation extracts the world-space rotation by normalizing out scale from
// the matrix's basis columns.
func (g GlobalTransform) Rotation() mgl32.Quat {
	s := g.Scale()
	m3 := mgl32.Mat3{
		g.matrix[0] / s[0], g.matrix[1] / s[0], g.matrix[2] / s[0],
		g.matrix[4] / s[1], g.matrix[5] / s[1], g.matrix[6] / s[1],
		g.matrix[8] / s[2], g.matrix[9] / s[2], g.matrix[10] / s[2],
	}
	return mgl32.Mat3ToQuat(m3)
}

// Decompose splits the matrix into translation, rotation, and scale.
func (g GlobalTransform) Decompose() (position mgl32.Vec3, rotation mgl32.Quat, scale mgl32.Vec3) {
	return g.Translation(), g.Rotation(), g.Scale()
}

// TransformPoint applies the world matrix to p.
func (g GlobalTransform) TransformPoint(p mgl32.Vec3) mgl32.Vec3 {
	v := g.matrix.Mul4x1(mgl32.Vec4{p[0], p[1], p[2], 1})
	return mgl32.Vec3{v[0], v[1], v[2]}
}

// TransformDirection applies the world matrix to direction d, ignoring translation.
func (g GlobalTransform) TransformDirection(d mgl32.Vec3) mgl32.Vec3 {
	v := g.matrix.Mul4x1(mgl32.Vec4{d[0], d[1], d[2], 0})
	return mgl32.Vec3{v[0], v[1], v[2]}
}

// Forward returns the world-space -Z basis direction.
func (g GlobalTransform) Forward() mgl32.Vec3 {
	return g.TransformDirection(mgl32.Vec3{0, 0, -1}).Normalize()
}

// Right returns the world-space +X basis direction.
func (g GlobalTransform) Right() mgl32.Vec3 {
	return g.TransformDirection(mgl32.Vec3{1, 0, 0}).Normalize()
}

// Up returns the world-space +Y basis direction.
func (g GlobalTransform) Up() mgl32.Vec3 {
	return g.TransformDirection(mgl32.Vec3{0, 1, 0}).Normalize()
}

// Inverse returns the inverse world matrix wrapped as a GlobalTransform.
func (g GlobalTransform) Inverse() GlobalTransform { return GlobalTransform{matrix: g.matrix.Inv()} }

// MulTransform composes this world matrix with other's, returning
// this · other.
func (g GlobalTransform) MulTransform(other GlobalTransform) GlobalTransform {
	return GlobalTransform{matrix: g.matrix.Mul4(other.matrix)}
}

// TransformBy returns the result of applying a child's local Transform
// under this world transform: g.matrix · local.Matrix(). This is the
// operation the propagation pass uses for child.global = parent.global ·
// child.local.
func (g GlobalTransform) TransformBy(local Transform) GlobalTransform {
	return GlobalTransform{matrix: g.matrix.Mul4(local.Matrix())}
}

// Lerp interpolates two world matrices by decomposing both and
// interpolating position/scale linearly and rotation via slerp.
func (g GlobalTransform) Lerp(other GlobalTransform, t01 float32) GlobalTransform {
	p1, r1, s1 := g.Decompose()
	p2, r2, s2 := other.Decompose()
	lt := Transform{Position: p1, Rotation: r1, Scale: s1}.Lerp(Transform{Position: p2, Rotation: r2, Scale: s2}, t01)
	return GlobalTransformFromMatrix(lt.Matrix())
}
