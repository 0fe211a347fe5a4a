package transform_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/goud-engine/core/ecs"
	"github.com/goud-engine/core/transform"
	"github.com/stretchr/testify/require"
)

func TestPropagate3DRootGetsLocalAsGlobal(t *testing.T) {
	w := ecs.NewWorld()
	e := w.SpawnEmpty()
	local := transform.FromPosition(mgl32.Vec3{1, 2, 3})
	ecs.Insert(w.Components(), e, local)

	h := transform.NewHierarchy()
	errs := transform.Propagate3D(w, h)
	require.Empty(t, errs)

	g, err := ecs.Get[transform.GlobalTransform](w.Components(), e)
	require.NoError(t, err)
	require.NotNil(t, g)
	require.Equal(t, local.Matrix(), g.Matrix())
}

func TestPropagate3DChildComposesWithParent(t *testing.T) {
	w := ecs.NewWorld()
	parent := w.SpawnEmpty()
	child := w.SpawnEmpty()

	ecs.Insert(w.Components(), parent, transform.FromPosition(mgl32.Vec3{10, 0, 0}))
	ecs.Insert(w.Components(), child, transform.FromPosition(mgl32.Vec3{1, 0, 0}))
	ecs.Insert(w.Components(), child, transform.Parent{Entity: parent})

	h := transform.NewHierarchy()
	errs := transform.Propagate3D(w, h)
	require.Empty(t, errs)

	g, err := ecs.Get[transform.GlobalTransform](w.Components(), child)
	require.NoError(t, err)
	pos := g.Translation()
	require.InDelta(t, 11, pos[0], 1e-4)
}

func TestPropagate3DDetectsCycleAndExcludesIt(t *testing.T) {
	w := ecs.NewWorld()
	a := w.SpawnEmpty()
	b := w.SpawnEmpty()

	ecs.Insert(w.Components(), a, transform.Identity())
	ecs.Insert(w.Components(), b, transform.Identity())
	ecs.Insert(w.Components(), a, transform.Parent{Entity: b})
	ecs.Insert(w.Components(), b, transform.Parent{Entity: a})

	h := transform.NewHierarchy()
	errs := transform.Propagate3D(w, h)
	require.NotEmpty(t, errs, "a 2-cycle must be reported")

	ga, err := ecs.Get[transform.GlobalTransform](w.Components(), a)
	require.NoError(t, err)
	require.Nil(t, ga, "cycle members receive no GlobalTransform")
	gb, err := ecs.Get[transform.GlobalTransform](w.Components(), b)
	require.NoError(t, err)
	require.Nil(t, gb, "cycle members receive no GlobalTransform")
}

func TestPropagate2DRootGetsLocalAsGlobal(t *testing.T) {
	w := ecs.NewWorld()
	e := w.SpawnEmpty()
	local := transform.FromPosition2D(mgl32.Vec2{4, 5})
	ecs.Insert(w.Components(), e, local)

	h := transform.NewHierarchy()
	errs := transform.Propagate2D(w, h)
	require.Empty(t, errs)

	g, err := ecs.Get[transform.GlobalTransform2D](w.Components(), e)
	require.NoError(t, err)
	pos := g.Translation()
	require.InDelta(t, 4, pos[0], 1e-4)
	require.InDelta(t, 5, pos[1], 1e-4)
}
