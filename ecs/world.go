package ecs

import (
	"reflect"

	"github.com/goud-engine/core/event"
	"github.com/goud-engine/core/internal/engdebug"
	"github.com/goud-engine/core/internal/engerr"
	"github.com/goud-engine/core/internal/enginelog"
)

// nonSendSlot pairs a non-send resource's value with the goroutine that
// registered it, for the debug-build ownership check spec.md §4.E and §5
// require ("Access from a non-origin thread is a programmer error").
type nonSendSlot struct {
	value    any
	ownerGID uint64
}

// World is the aggregate root of the ECS (spec.md §3.5): entity registry,
// component registry, a typed-resource map, a separate non-send resource
// map for thread-pinned values like GPU state, and the event registry.
// Grounded on the teacher's single-aggregate-owner shape (engine/engine.go
// holds window+scenes+profiler as the one root object).
type World struct {
	entities   *EntityRegistry
	components *ComponentRegistry
	resources  map[reflect.Type]any
	nonSend    map[reflect.Type]nonSendSlot
	events     *event.Registry
	logger     *enginelog.Logger
}

// Option configures a World at construction time.
type Option func(*World)

// WithLogger attaches l so World can report debug-build diagnostics, such as
// a non-send resource accessed from a foreign goroutine.
func WithLogger(l *enginelog.Logger) Option {
	return func(w *World) { w.logger = l }
}

// NewWorld constructs an empty World.
func NewWorld(opts ...Option) *World {
	w := &World{
		entities:   NewEntityRegistry(),
		components: NewComponentRegistry(),
		resources:  make(map[reflect.Type]any),
		nonSend:    make(map[reflect.Type]nonSendSlot),
		events:     event.NewRegistry(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// SpawnEmpty creates a new entity with no components.
func (w *World) SpawnEmpty() Entity { return w.entities.Create() }

// IsAlive reports whether e is currently a live entity.
func (w *World) IsAlive(e Entity) bool { return w.entities.IsAlive(e) }

// Despawn removes every component e has, then destroys e (spec.md §4.E).
//
// Returns:
//   - bool: true if e was alive and is now despawned
func (w *World) Despawn(e Entity) bool {
	if !w.entities.IsAlive(e) {
		return false
	}
	w.components.RemoveEntity(e)
	return w.entities.Destroy(e)
}

// Components exposes the underlying ComponentRegistry for the package-level
// generic accessors (ecs.Insert[T], ecs.Get[T], ...), since those cannot be
// World methods (Go methods can't carry their own type parameters).
func (w *World) Components() *ComponentRegistry { return w.components }

// Events exposes the underlying event.Registry for event.EventsOf[E](w.Events()).
func (w *World) Events() *event.Registry { return w.events }

// UpdateEvents swaps the double buffer for every event type (spec.md §2's
// per-frame world.events.update_all()).
func (w *World) UpdateEvents() { w.events.UpdateAll() }

// EntityCount returns the number of slots ever allocated (live + freed).
func (w *World) EntityCount() int { return w.entities.Count() }

// InsertResource stores r as the World's singleton of type R, replacing any
// prior value.
func InsertResource[R any](w *World, r R) {
	w.resources[reflect.TypeFor[R]()] = r
}

// RemoveResource deletes the R resource, if present.
func RemoveResource[R any](w *World) {
	delete(w.resources, reflect.TypeFor[R]())
}

// GetResource returns the R resource and whether it was present.
func GetResource[R any](w *World) (R, bool) {
	v, ok := w.resources[reflect.TypeFor[R]()]
	if !ok {
		var zero R
		return zero, false
	}
	return v.(R), true
}

// InsertNonSendResource stores r in the non-send resource namespace,
// recording the calling goroutine as its owner (debug builds only — see
// internal/engdebug). Non-send resources are for values that must not
// cross threads, such as GPU handles (spec.md §4.E, §5).
func InsertNonSendResource[R any](w *World, r R) {
	w.nonSend[reflect.TypeFor[R]()] = nonSendSlot{value: r, ownerGID: engdebug.CurrentGoroutineID()}
}

// GetNonSendResource returns the R non-send resource. In a debug build
// (enginedebug tag), accessing it from a goroutine other than the one that
// registered it logs the access and returns an InternalError instead of the
// value; it does not panic. Release builds skip the check entirely since
// engdebug.Enabled is false there.
func GetNonSendResource[R any](w *World) (R, error) {
	slot, ok := w.nonSend[reflect.TypeFor[R]()]
	var zero R
	if !ok {
		return zero, nil
	}
	if engdebug.Enabled && engdebug.CurrentGoroutineID() != slot.ownerGID {
		w.logger.Printf("non-send resource %s accessed from goroutine %d, owned by %d", reflect.TypeFor[R](), engdebug.CurrentGoroutineID(), slot.ownerGID)
		return zero, &engerr.InternalError{Message: "non-send resource accessed from a foreign goroutine"}
	}
	return slot.value.(R), nil
}

// RemoveNonSendResource deletes the R non-send resource, if present.
func RemoveNonSendResource[R any](w *World) {
	delete(w.nonSend, reflect.TypeFor[R]())
}
