package ecs_test

import (
	"testing"

	"github.com/goud-engine/core/ecs"
	"github.com/stretchr/testify/require"
)

type qposition struct {
	ecs.Marker
	X float32
}

type qvelocity struct {
	ecs.Marker
	DX float32
}

type qtag struct {
	ecs.Marker
}

func TestQuery2ReturnsOnlyEntitiesWithBothComponents(t *testing.T) {
	r := ecs.NewComponentRegistry()
	world := ecs.NewWorld()

	both := world.SpawnEmpty()
	_, _, err := ecs.Insert(r, both, qposition{X: 1})
	require.NoError(t, err)
	_, _, err = ecs.Insert(r, both, qvelocity{DX: 2})
	require.NoError(t, err)

	onlyPosition := world.SpawnEmpty()
	_, _, err = ecs.Insert(r, onlyPosition, qposition{X: 9})
	require.NoError(t, err)

	rows := ecs.Query2[qposition, qvelocity](r)
	require.Len(t, rows, 1)
	require.Equal(t, both, rows[0].Entity)
	require.Equal(t, float32(1), rows[0].A.X)
	require.Equal(t, float32(2), rows[0].B.DX)
}

func TestQuery2EmptyWhenOneStorageNeverPopulated(t *testing.T) {
	r := ecs.NewComponentRegistry()
	require.Nil(t, ecs.Query2[qposition, qvelocity](r))
}

func TestQuery3DrivesOffSmallestStorage(t *testing.T) {
	r := ecs.NewComponentRegistry()
	world := ecs.NewWorld()

	all := world.SpawnEmpty()
	_, _, err := ecs.Insert(r, all, qposition{X: 1})
	require.NoError(t, err)
	_, _, err = ecs.Insert(r, all, qvelocity{DX: 2})
	require.NoError(t, err)
	_, _, err = ecs.Insert(r, all, qtag{})
	require.NoError(t, err)

	partial := world.SpawnEmpty()
	_, _, err = ecs.Insert(r, partial, qposition{X: 5})
	require.NoError(t, err)
	_, _, err = ecs.Insert(r, partial, qvelocity{DX: 6})
	require.NoError(t, err)

	rows := ecs.Query3[qposition, qvelocity, qtag](r)
	require.Len(t, rows, 1)
	require.Equal(t, all, rows[0].Entity)
}
