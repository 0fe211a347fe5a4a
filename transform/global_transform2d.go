package transform

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/goud-engine/core/ecs"
)

// GlobalTransform2D is the 2D analogue of GlobalTransform: a cached 3x3
// affine world matrix produced by propagation.
type GlobalTransform2D struct {
	ecs.Marker
	matrix mgl32.Mat3
}

// GlobalTransform2DFromMatrix wraps an already-computed matrix, used by the
// propagation pass.
func GlobalTransform2DFromMatrix(m mgl32.Mat3) GlobalTransform2D {
	return GlobalTransform2D{matrix: m}
}

// GlobalIdentity2D returns the global transform at the origin.
func GlobalIdentity2D() GlobalTransform2D { return GlobalTransform2D{matrix: mgl32.Ident3()} }

// Matrix returns the cached world matrix.
func (g GlobalTransform2D) Matrix() mgl32.Mat3 { return g.matrix }

// ToColsArray returns the matrix in column-major flat form.
func (g GlobalTransform2D) ToColsArray() [9]float32 {
	var out [9]float32
	for i, v := range g.matrix {
		out[i] = v
	}
	return out
}

// Translation extracts the world-space position from the matrix's
// translation column.
func (g GlobalTransform2D) Translation() mgl32.Vec2 { return mgl32.Vec2{g.matrix[6], g.matrix[7]} }

// Scale extracts the per-axis world-space scale as the length of each basis column.
func (g GlobalTransform2D) Scale() mgl32.Vec2 {
	sx := mgl32.Vec2{g.matrix[0], g.matrix[1]}.Len()
	sy := mgl32.Vec2{g.matrix[3], g.matrix[4]}.Len()
	return mgl32.Vec2{sx, sy}
}

// Rotation extracts the world-space rotation angle by normalizing out scale
// from the matrix's first basis column.
func (g GlobalTransform2D) Rotation() float32 {
	s := g.Scale()
	return float32(math.Atan2(float64(g.matrix[1]/s[0]), float64(g.matrix[0]/s[0])))
}

// Decompose splits the matrix into translation, rotation, and scale.
func (g GlobalTransform2D) Decompose() (position mgl32.Vec2, rotation float32, scale mgl32.Vec2) {
	return g.Translation(), g.Rotation(), g.Scale()
}

// TransformPoint applies the world matrix to p.
func (g GlobalTransform2D) TransformPoint(p mgl32.Vec2) mgl32.Vec2 {
	v := g.matrix.Mul3x1(mgl32.Vec3{p[0], p[1], 1})
	return mgl32.Vec2{v[0], v[1]}
}

// TransformDirection applies the world matrix to direction d, ignoring translation.
func (g GlobalTransform2D) TransformDirection(d mgl32.Vec2) mgl32.Vec2 {
	v := g.matrix.Mul3x1(mgl32.Vec3{d[0], d[1], 0})
	return mgl32.Vec2{v[0], v[1]}
}

// Inverse returns the inverse world matrix wrapped as a GlobalTransform2D.
func (g GlobalTransform2D) Inverse() GlobalTransform2D {
	return GlobalTransform2D{matrix: g.matrix.Inv()}
}

// MulTransform composes this world matrix with other's, returning this · other.
func (g GlobalTransform2D) MulTransform(other GlobalTransform2D) GlobalTransform2D {
	return GlobalTransform2D{matrix: g.matrix.Mul3(other.matrix)}
}

// TransformBy returns g.matrix · local.Matrix(), the operation the
// propagation pass uses for child.global = parent.global · child.local.
func (g GlobalTransform2D) TransformBy(local Transform2D) GlobalTransform2D {
	return GlobalTransform2D{matrix: g.matrix.Mul3(local.Matrix())}
}

// Lerp interpolates two world matrices by decomposing both and
// interpolating position/scale linearly and rotation along the shorter
// angular path.
func (g GlobalTransform2D) Lerp(other GlobalTransform2D, t01 float32) GlobalTransform2D {
	p1, r1, s1 := g.Decompose()
	p2, r2, s2 := other.Decompose()
	lt := Transform2D{Position: p1, Rotation: r1, Scale: s1}.Lerp(Transform2D{Position: p2, Rotation: r2, Scale: s2}, t01)
	return GlobalTransform2DFromMatrix(lt.Matrix())
}
