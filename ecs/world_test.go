package ecs_test

import (
	"testing"

	"github.com/goud-engine/core/ecs"
	"github.com/goud-engine/core/event"
	"github.com/stretchr/testify/require"
)

type position struct {
	ecs.Marker
	X, Y float32
}

type velocity struct {
	ecs.Marker
	X, Y float32
}

type tick struct{ Frame int }

// TestEntityLifecycleScenario covers spec.md Scenario S1: spawn, insert
// components, despawn, and confirm the handle is dead and reuse advances
// the generation (spec.md Testable Property 1).
func TestEntityLifecycleScenario(t *testing.T) {
	w := ecs.NewWorld()

	e := w.SpawnEmpty()
	require.True(t, w.IsAlive(e))

	_, had, err := ecs.Insert(w.Components(), e, position{X: 1, Y: 2})
	require.NoError(t, err)
	require.False(t, had)

	_, had, err = ecs.Insert(w.Components(), e, velocity{X: 0.5, Y: -0.5})
	require.NoError(t, err)
	require.False(t, had)

	ok := w.Despawn(e)
	require.True(t, ok, "despawn of a live entity succeeds")
	require.False(t, w.IsAlive(e))

	p, err := ecs.Get[position](w.Components(), e)
	require.NoError(t, err)
	require.Nil(t, p, "components were removed on despawn")

	e2 := w.SpawnEmpty()
	require.NotEqual(t, e, e2, "reused slot carries a fresh generation, so the old handle is never valid again")
	require.Equal(t, e.Index(), e2.Index(), "the freed slot is reused")
	require.Equal(t, e.Generation()+1, e2.Generation())
}

// TestDespawnRemovesEverything covers spec.md Testable Property 4: despawn
// removes every component the entity held, across multiple component types.
func TestDespawnRemovesEverything(t *testing.T) {
	w := ecs.NewWorld()
	e := w.SpawnEmpty()

	ecs.Insert(w.Components(), e, position{X: 3, Y: 4})
	ecs.Insert(w.Components(), e, velocity{X: 1, Y: 1})

	w.Despawn(e)

	hasPos, err := ecs.Contains[position](w.Components(), e)
	require.NoError(t, err)
	require.False(t, hasPos)

	hasVel, err := ecs.Contains[velocity](w.Components(), e)
	require.NoError(t, err)
	require.False(t, hasVel)
}

func TestDespawnUnknownEntityReturnsFalse(t *testing.T) {
	w := ecs.NewWorld()
	require.False(t, w.Despawn(ecs.InvalidEntity()))
}

func TestResourceInsertGetRemoveRoundTrip(t *testing.T) {
	w := ecs.NewWorld()

	ecs.InsertResource(w, tick{Frame: 1})
	got, ok := ecs.GetResource[tick](w)
	require.True(t, ok)
	require.Equal(t, tick{Frame: 1}, got)

	ecs.InsertResource(w, tick{Frame: 2})
	got, ok = ecs.GetResource[tick](w)
	require.True(t, ok)
	require.Equal(t, 2, got.Frame, "a second insert replaces the prior singleton")

	ecs.RemoveResource[tick](w)
	_, ok = ecs.GetResource[tick](w)
	require.False(t, ok)
}

func TestNonSendResourceSameGoroutineSucceeds(t *testing.T) {
	w := ecs.NewWorld()
	ecs.InsertNonSendResource(w, 42)

	v, err := ecs.GetNonSendResource[int](w)
	require.NoError(t, err)
	require.Equal(t, 42, v)
}

func TestEventsLazyCreationThroughWorld(t *testing.T) {
	w := ecs.NewWorld()

	type collided struct{ A, B ecs.Entity }

	ev := event.EventsOf[collided](w.Events())
	ev.Send(collided{A: w.SpawnEmpty(), B: w.SpawnEmpty()})

	w.UpdateEvents()
	r := event.EventsOf[collided](w.Events()).Reader()
	require.Len(t, r.Read(), 1)
}
