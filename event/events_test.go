package event_test

import (
	"testing"

	"github.com/goud-engine/core/event"
	"github.com/stretchr/testify/require"
)

type hit struct{ ID int }

func TestDoubleBufferVisibility(t *testing.T) {
	q := event.NewQueue[hit]()
	q.Send(hit{ID: 1})

	r := q.NewReader()
	require.Empty(t, r.Read(), "not visible before a swap")

	q.SwapBuffers()
	fresh := q.NewReader()
	got := fresh.Read()
	require.Equal(t, []hit{{ID: 1}}, got)

	q.SwapBuffers()
	gone := q.NewReader()
	require.Empty(t, gone.Read(), "gone after a second swap")
}

func TestReaderCursorIdempotence(t *testing.T) {
	q := event.NewQueue[hit]()
	q.Send(hit{ID: 1})
	q.Send(hit{ID: 2})
	q.SwapBuffers()

	r := q.NewReader()
	require.Len(t, r.Read(), 2)
	require.Empty(t, r.Read(), "no swap since last read")

	r.Clear()
	require.Len(t, r.Read(), 2, "clear rewinds the cursor to re-read the frame")
}

func TestMultipleIndependentReaders(t *testing.T) {
	q := event.NewQueue[hit]()
	q.Send(hit{ID: 1})
	q.SwapBuffers()

	r1 := q.NewReader()
	r2 := q.NewReader()
	require.Len(t, r1.Read(), 1)
	require.Len(t, r2.Read(), 1, "second reader is independent of the first")
	require.Empty(t, r1.Read())
}

func TestSwapExactlyOncePerFrameContract(t *testing.T) {
	q := event.NewQueue[hit]()
	q.Send(hit{ID: 1})
	q.SwapBuffers()
	q.SwapBuffers() // double swap drops the event per spec.md §3.6

	r := q.NewReader()
	require.Empty(t, r.Read())
}

func TestEventsOfLazyCreateAndUpdateAll(t *testing.T) {
	reg := event.NewRegistry()
	ev := event.EventsOf[hit](reg)
	ev.Send(hit{ID: 7})

	reg.UpdateAll()
	r := event.EventsOf[hit](reg).Reader()
	require.Equal(t, []hit{{ID: 7}}, r.Read())

	same := event.EventsOf[hit](reg)
	require.Same(t, ev, same, "EventsOf returns the same instance on repeat access")
}
