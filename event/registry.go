package event

import "reflect"

// Registry holds one Events[E] per event type, created lazily on first
// access (spec.md §4.E: "events<E>() — lazily creates the queue on first
// access"). It is the type World embeds to host every event queue.
type Registry struct {
	queues    map[reflect.Type]any
	updatable map[reflect.Type]updatable
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		queues:    make(map[reflect.Type]any),
		updatable: make(map[reflect.Type]updatable),
	}
}

// EventsOf returns the Events[E] for type E, creating it on first access.
// Go methods cannot carry their own type parameters, so this is a
// package-level generic function over *Registry rather than a method —
// the same shape ecs.Get[T] uses for components.
func EventsOf[E any](r *Registry) *Events[E] {
	t := reflect.TypeFor[E]()
	if v, ok := r.queues[t]; ok {
		return v.(*Events[E])
	}
	ev := NewEvents[E]()
	r.queues[t] = ev
	r.updatable[t] = ev
	return ev
}

// UpdateAll swaps the double buffer for every event type that has ever been
// accessed via EventsOf. The host calls this exactly once per frame (spec.md
// §2 control flow, §9 Open Questions).
func (r *Registry) UpdateAll() {
	for _, u := range r.updatable {
		u.Update()
	}
}
