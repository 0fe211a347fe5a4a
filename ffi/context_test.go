package ffi_test

import (
	"testing"

	"github.com/goud-engine/core/ffi"
	"github.com/stretchr/testify/require"
)

func TestCreateReturnsValidContext(t *testing.T) {
	r := ffi.NewRegistry()
	id, err := r.Create()
	require.NoError(t, err)
	require.False(t, id.IsInvalid())
	require.True(t, r.IsValid(id))
	require.Equal(t, 1, r.Len())

	ctx, ok := r.Get(id)
	require.True(t, ok)
	require.NotNil(t, ctx.World())
}

func TestDestroyInvalidatesIdAndFreesSlot(t *testing.T) {
	r := ffi.NewRegistry()
	id, err := r.Create()
	require.NoError(t, err)

	require.NoError(t, r.Destroy(id))
	require.False(t, r.IsValid(id))
	require.Equal(t, 0, r.Len())

	_, ok := r.Get(id)
	require.False(t, ok)
}

func TestDestroyTwiceReturnsInvalidContextError(t *testing.T) {
	r := ffi.NewRegistry()
	id, err := r.Create()
	require.NoError(t, err)
	require.NoError(t, r.Destroy(id))
	require.Error(t, r.Destroy(id))
}

func TestDestroyInvalidSentinelReturnsError(t *testing.T) {
	r := ffi.NewRegistry()
	require.Error(t, r.Destroy(ffi.InvalidContextId))
}

func TestStaleIdAfterSlotReuseIsRejected(t *testing.T) {
	r := ffi.NewRegistry()
	first, err := r.Create()
	require.NoError(t, err)
	require.NoError(t, r.Destroy(first))

	second, err := r.Create()
	require.NoError(t, err)
	require.Equal(t, first.Index(), second.Index(), "freed slot should be reused")
	require.NotEqual(t, first.Generation(), second.Generation())

	require.False(t, r.IsValid(first), "the stale id from before reuse must not validate")
	require.True(t, r.IsValid(second))
}

func TestEachContextHasAnIsolatedWorld(t *testing.T) {
	r := ffi.NewRegistry()
	a, err := r.Create()
	require.NoError(t, err)
	b, err := r.Create()
	require.NoError(t, err)

	ctxA, _ := r.Get(a)
	ctxB, _ := r.Get(b)
	require.NotSame(t, ctxA.World(), ctxB.World())

	e := ctxA.World().SpawnEmpty()
	require.True(t, ctxA.World().IsAlive(e))
	require.False(t, ctxB.World().IsAlive(e), "entity ids are per-world, a coincidentally equal id must not appear alive in another world")
}
