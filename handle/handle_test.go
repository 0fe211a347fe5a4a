package handle_test

import (
	"testing"

	"github.com/goud-engine/core/handle"
	"github.com/stretchr/testify/require"
)

type testTag struct{}

func TestAllocateFirstGenerationIsOne(t *testing.T) {
	a := handle.NewAllocator[testTag]()
	h, err := a.Allocate()
	require.NoError(t, err)
	require.EqualValues(t, 0, h.Index())
	require.EqualValues(t, 1, h.Generation())
	require.True(t, a.IsAlive(h))
}

func TestDeallocateThenAliveFalse(t *testing.T) {
	a := handle.NewAllocator[testTag]()
	h, _ := a.Allocate()
	require.True(t, a.Deallocate(h))
	require.False(t, a.IsAlive(h))
	require.False(t, a.Deallocate(h), "double free returns false")
}

func TestReuseIncrementsGenerationAndMayLowerIndex(t *testing.T) {
	a := handle.NewAllocator[testTag]()
	h1, _ := a.Allocate()
	h2, _ := a.Allocate()
	require.True(t, a.Deallocate(h1))

	h3, err := a.Allocate()
	require.NoError(t, err)
	require.Equal(t, h1.Index(), h3.Index(), "freed slot is reused before growing")
	require.EqualValues(t, h1.Generation()+1, h3.Generation())
	require.NotEqual(t, h1, h3)
	require.True(t, a.IsAlive(h3))
	require.True(t, a.IsAlive(h2))
}

func TestInvalidSentinelNeverAlive(t *testing.T) {
	a := handle.NewAllocator[testTag]()
	require.False(t, a.IsAlive(handle.Invalid[testTag]()))
}

func TestTagsAreDistinctTypes(t *testing.T) {
	type otherTag struct{}
	a := handle.Invalid[testTag]()
	b := handle.Invalid[otherTag]()
	// This line exists to document intent: a and b cannot be compared
	// directly (handle.Handle[testTag] != handle.Handle[otherTag]); the
	// compiler enforces the tag separation spec.md §3.1 requires.
	require.Equal(t, a.Index(), b.Index())
}
