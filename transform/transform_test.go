package transform_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/goud-engine/core/transform"
	"github.com/stretchr/testify/require"
)

func TestRotationStaysUnitLengthAfterMutators(t *testing.T) {
	tr := transform.Identity()
	tr.RotateX(0.3)
	tr.RotateY(1.7)
	tr.RotateLocalZ(-0.9)

	require.InDelta(t, 1.0, tr.Rotation.Len(), 1e-5)
}

func TestForwardRightUpAreOrthonormalAtIdentity(t *testing.T) {
	tr := transform.Identity()
	require.InDelta(t, 0, tr.Forward().Dot(tr.Right()), 1e-6)
	require.InDelta(t, 0, tr.Right().Dot(tr.Up()), 1e-6)
	require.Equal(t, tr.Forward(), tr.Backward().Mul(-1))
}

func TestLookAtPointsForwardAtTarget(t *testing.T) {
	eye := mgl32.Vec3{0, 0, 0}
	target := mgl32.Vec3{0, 0, -5}
	tr := transform.LookAt(eye, target, mgl32.Vec3{0, 1, 0})

	fwd := tr.Forward()
	require.InDelta(t, 0, fwd[0], 1e-4)
	require.InDelta(t, 0, fwd[1], 1e-4)
	require.InDelta(t, -1, fwd[2], 1e-4)
}

func TestLerpInterpolatesPositionLinearly(t *testing.T) {
	a := transform.FromPosition(mgl32.Vec3{0, 0, 0})
	b := transform.FromPosition(mgl32.Vec3{10, 0, 0})

	mid := a.Lerp(b, 0.5)
	require.InDelta(t, 5, mid.Position[0], 1e-4)
}

func TestTransform2DRotationNormalizesToRange(t *testing.T) {
	tr := transform.Identity2D()
	tr.Rotate2D(float32(3 * math.Pi))

	require.True(t, tr.Rotation >= -math.Pi && tr.Rotation < math.Pi)
}

func TestTransform2DLookAtTargetUsesAtan2(t *testing.T) {
	tr := transform.FromPosition2D(mgl32.Vec2{0, 0})
	tr.LookAtTarget2D(mgl32.Vec2{1, 1})

	require.InDelta(t, math.Pi/4, tr.Rotation, 1e-4)
}
