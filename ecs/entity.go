// Package ecs implements the entity-component-system core (spec.md §3.2-3.5,
// §4.B-4.E): the sparse-set component storage, the generational entity
// registry, the type-erased component registry, and the World aggregate
// root.
//
// Grounded on the teacher's unexported-struct/exported-interface pairing
// (engine/camera/camera.go) and its generic free-function style
// (common/utils.go's Coalesce[T]) for the typed component accessors, since
// Go methods cannot carry their own type parameters.
package ecs

import "github.com/goud-engine/core/handle"

// EntityTag is the compile-time tag distinguishing Entity handles from any
// other Handle[Tag] in the engine (buffers, textures, FFI contexts, ...).
type EntityTag struct{}

// Entity is a Handle[EntityTag]: a generational identity for a game object
// (spec.md §3.2).
type Entity = handle.Handle[EntityTag]

// InvalidEntity is the reserved placeholder entity. Inserting a component
// against InvalidEntity is a programmer error (spec.md §3.3).
func InvalidEntity() Entity { return handle.Invalid[EntityTag]() }

// EntityRegistry allocates entities and tracks their liveness via
// generation (spec.md §3.2, §4.C). Destroying an entity here does not
// cascade to components; World.Despawn does that by walking every
// registered component storage (spec.md §4.C).
type EntityRegistry struct {
	alloc *handle.Allocator[EntityTag]
}

// NewEntityRegistry creates an empty EntityRegistry.
func NewEntityRegistry() *EntityRegistry {
	return &EntityRegistry{alloc: handle.NewAllocator[EntityTag]()}
}

// Create allocates a fresh entity, reusing a freed index (and bumping its
// generation) when one is available.
func (r *EntityRegistry) Create() Entity {
	// The only failure mode is index-space exhaustion (2^32-1 live slots),
	// which we treat the same way the teacher's atomic ID counters do: it
	// is not a condition callers are expected to handle per-call, so we
	// surface it as the invalid-entity sentinel rather than threading an
	// error through every Spawn call site.
	e, err := r.alloc.Allocate()
	if err != nil {
		return InvalidEntity()
	}
	return e
}

// Destroy frees e's slot if e is alive, incrementing the slot's generation.
//
// Returns:
//   - bool: true if e was alive and is now destroyed
func (r *EntityRegistry) Destroy(e Entity) bool {
	return r.alloc.Deallocate(e)
}

// IsAlive reports whether e's generation matches what is currently stored
// in its slot.
func (r *EntityRegistry) IsAlive(e Entity) bool {
	return r.alloc.IsAlive(e)
}

// Count returns the number of slots ever allocated (live + freed).
func (r *EntityRegistry) Count() int { return r.alloc.Len() }
