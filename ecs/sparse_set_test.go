package ecs_test

import (
	"testing"

	"github.com/goud-engine/core/ecs"
	"github.com/stretchr/testify/require"
)

func TestSparseSetRoundTrip(t *testing.T) {
	reg := ecs.NewEntityRegistry()
	e := reg.Create()

	set := ecs.NewSparseSet[int]()
	_, had := set.Insert(e, 42)
	require.False(t, had)

	v, ok := set.Get(e)
	require.True(t, ok)
	require.Equal(t, 42, *v)

	removed, ok := set.Remove(e)
	require.True(t, ok)
	require.Equal(t, 42, removed)

	_, ok = set.Get(e)
	require.False(t, ok)
}

func TestSparseSetSwapRemovePreservesMembership(t *testing.T) {
	reg := ecs.NewEntityRegistry()
	e1, e2, e3 := reg.Create(), reg.Create(), reg.Create()

	set := ecs.NewSparseSet[string]()
	set.Insert(e1, "a")
	set.Insert(e2, "b")
	set.Insert(e3, "c")

	set.Remove(e1) // forces swap-with-last

	require.False(t, set.Contains(e1))
	require.True(t, set.Contains(e2))
	require.True(t, set.Contains(e3))
	require.Equal(t, 2, set.Len())

	v2, _ := set.Get(e2)
	require.Equal(t, "b", *v2)
	v3, _ := set.Get(e3)
	require.Equal(t, "c", *v3)
}

func TestSparseSetIterationCoversMembership(t *testing.T) {
	reg := ecs.NewEntityRegistry()
	entities := []ecs.Entity{reg.Create(), reg.Create(), reg.Create()}

	set := ecs.NewSparseSet[int]()
	for i, e := range entities {
		set.Insert(e, i)
	}
	set.Remove(entities[1])

	seen := map[ecs.Entity]bool{}
	set.Each(func(e ecs.Entity, v *int) bool {
		seen[e] = true
		return true
	})

	require.True(t, seen[entities[0]])
	require.False(t, seen[entities[1]])
	require.True(t, seen[entities[2]])
	require.Len(t, seen, 2)
}

func TestSparseSetOutOfRangeAndEmptyEdgeCases(t *testing.T) {
	set := ecs.NewSparseSet[int]()
	reg := ecs.NewEntityRegistry()
	e := reg.Create()

	_, ok := set.Get(e)
	require.False(t, ok, "out-of-range entity returns false, not a panic")

	_, ok = set.Remove(e)
	require.False(t, ok, "removing from an empty set returns false")
}

func TestSparseSetPlaceholderEntityIgnored(t *testing.T) {
	set := ecs.NewSparseSet[int]()
	_, had := set.Insert(ecs.InvalidEntity(), 1)
	require.False(t, had)
	require.Equal(t, 0, set.Len())
}
