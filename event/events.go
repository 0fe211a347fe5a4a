package event

// Events is the ECS-facing wrapper around a Queue, used as a World
// resource (spec.md §4.F's "ECS wrapper Events<E>"). Update swaps the
// underlying double buffer; the host calls Update once per frame per event
// type via World's update-all pass (spec.md §9 Open Questions: "the host
// calls update_all() once per frame").
type Events[E any] struct {
	queue *Queue[E]
}

// NewEvents creates an Events wrapper around a fresh Queue.
func NewEvents[E any]() *Events[E] {
	return &Events[E]{queue: NewQueue[E]()}
}

// Update swaps the double buffer for this event type.
func (ev *Events[E]) Update() { ev.queue.SwapBuffers() }

// Send appends e to the write buffer.
func (ev *Events[E]) Send(e E) { ev.queue.Send(e) }

// SendBatch appends every element of es, in order.
func (ev *Events[E]) SendBatch(es []E) { ev.queue.SendBatch(es) }

// Reader returns a fresh Reader over this event type's queue.
func (ev *Events[E]) Reader() *Reader[E] { return ev.queue.NewReader() }

// Writer returns a fresh Writer over this event type's queue.
func (ev *Events[E]) Writer() *Writer[E] { return ev.queue.NewWriter() }

// Drain returns and clears every event in the read buffer.
func (ev *Events[E]) Drain() []E { return ev.queue.Drain() }

// Clear empties both buffers.
func (ev *Events[E]) Clear() { ev.queue.Clear() }

// IsEmpty reports whether the write buffer is empty.
func (ev *Events[E]) IsEmpty() bool { return ev.queue.IsEmpty() }

// Len returns the write buffer's length.
func (ev *Events[E]) Len() int { return ev.queue.Len() }

// ReadLen returns the read buffer's length.
func (ev *Events[E]) ReadLen() int { return ev.queue.ReadLen() }

// updatable is implemented by every *Events[E] regardless of E, letting a
// Registry (see registry.go) call Update on every registered event type
// without knowing E at compile time — the same type-erasure shape the
// component registry uses for despawn (spec.md §4.D).
type updatable interface {
	Update()
}
