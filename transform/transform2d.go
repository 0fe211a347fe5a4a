package transform

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/goud-engine/core/ecs"
)

// Transform2D is the local, editable 2D pose of an entity (spec.md §3.8).
// Rotation is a scalar radian angle, kept normalized to [-π, π).
type Transform2D struct {
	ecs.Marker
	Position mgl32.Vec2
	Rotation float32
	Scale    mgl32.Vec2
}

// Identity2D returns the transform at the origin with no rotation and unit scale.
func Identity2D() Transform2D {
	return Transform2D{Scale: mgl32.Vec2{1, 1}}
}

// FromPosition2D returns an identity-rotation, unit-scale transform at p.
func FromPosition2D(p mgl32.Vec2) Transform2D {
	t := Identity2D()
	t.Position = p
	return t
}

// FromRotation2D returns an origin, unit-scale transform rotated by angle
// radians, normalized.
func FromRotation2D(angle float32) Transform2D {
	t := Identity2D()
	t.Rotation = normalizeAngle(angle)
	return t
}

// FromScale2D returns an origin, zero-rotation transform scaled by s.
func FromScale2D(s mgl32.Vec2) Transform2D {
	t := Identity2D()
	t.Scale = s
	return t
}

// Translate2D moves the transform by delta in its parent's coordinate frame.
func (t *Transform2D) Translate2D(delta mgl32.Vec2) { t.Position = t.Position.Add(delta) }

// TranslateLocal2D moves the transform by delta expressed in its own
// rotated local axes.
func (t *Transform2D) TranslateLocal2D(delta mgl32.Vec2) {
	c, s := float32(math.Cos(float64(t.Rotation))), float32(math.Sin(float64(t.Rotation)))
	t.Position = t.Position.Add(mgl32.Vec2{c*delta[0] - s*delta[1], s*delta[0] + c*delta[1]})
}

// Rotate2D adds angle radians to the current rotation, normalizing the result.
func (t *Transform2D) Rotate2D(angle float32) { t.Rotation = normalizeAngle(t.Rotation + angle) }

// SetRotation2D replaces the rotation outright, normalizing it.
func (t *Transform2D) SetRotation2D(angle float32) { t.Rotation = normalizeAngle(angle) }

// SetScale2D replaces the scale vector outright.
func (t *Transform2D) SetScale2D(s mgl32.Vec2) { t.Scale = s }

// ScaleBy2D multiplies the current scale component-wise by s.
func (t *Transform2D) ScaleBy2D(s mgl32.Vec2) {
	t.Scale = mgl32.Vec2{t.Scale[0] * s[0], t.Scale[1] * s[1]}
}

// LookAtTarget2D sets the rotation to atan2(dy, dx) so the local +X axis
// points from the transform's position toward target.
func (t *Transform2D) LookAtTarget2D(target mgl32.Vec2) {
	d := target.Sub(t.Position)
	t.Rotation = normalizeAngle(float32(math.Atan2(float64(d[1]), float64(d[0]))))
}

// Matrix returns the 3x3 affine T·R·S local transform matrix.
func (t Transform2D) Matrix() mgl32.Mat3 {
	c, s := float32(math.Cos(float64(t.Rotation))), float32(math.Sin(float64(t.Rotation)))
	return mgl32.Mat3{
		c * t.Scale[0], s * t.Scale[0], 0,
		-s * t.Scale[1], c * t.Scale[1], 0,
		t.Position[0], t.Position[1], 1,
	}
}

// Lerp interpolates position and scale linearly and rotation along the
// shorter angular path, at parameter t01 in [0, 1].
func (t Transform2D) Lerp(other Transform2D, t01 float32) Transform2D {
	dr := normalizeAngle(other.Rotation - t.Rotation)
	return Transform2D{
		Position: mgl32.Vec2{
			t.Position[0] + (other.Position[0]-t.Position[0])*t01,
			t.Position[1] + (other.Position[1]-t.Position[1])*t01,
		},
		Rotation: normalizeAngle(t.Rotation + dr*t01),
		Scale: mgl32.Vec2{
			t.Scale[0] + (other.Scale[0]-t.Scale[0])*t01,
			t.Scale[1] + (other.Scale[1]-t.Scale[1])*t01,
		},
	}
}
