package ecs

import (
	"reflect"

	"github.com/goud-engine/core/internal/engerr"
)

// Component is the explicit opt-in marker interface component types must
// satisfy (spec.md §5, §9 "Component marker trait vs. event blanket" design
// note: components are persistent and the explicit opt-in documents intent,
// unlike the blanket rule used for events). Embed Marker to satisfy it:
//
//	type Position struct {
//		ecs.Marker
//		X, Y, Z float32
//	}
type Component interface {
	isComponent()
}

// Marker is embedded by every component type to satisfy the Component
// interface at zero runtime cost (it carries no fields).
type Marker struct{}

func (Marker) isComponent() {}

// ComponentID is a stable-within-process identifier for a component type,
// wrapping the runtime type identifier the language provides (spec.md
// §3.4): ComponentIDOf[T]() == ComponentIDOf[T]() for all T, and distinct
// generic instantiations produce distinct IDs because reflect.TypeFor does.
type ComponentID struct {
	rtype reflect.Type
}

// ComponentIDOf returns the stable ComponentID for T.
func ComponentIDOf[T Component]() ComponentID {
	return ComponentID{rtype: reflect.TypeFor[T]()}
}

// String returns the underlying type's name, for debug display.
func (c ComponentID) String() string {
	if c.rtype == nil {
		return "<nil>"
	}
	return c.rtype.String()
}

// erasedStorage is the type-erased vtable contract spec.md §4.D requires so
// World.despawn can walk every registered component type without knowing
// it at compile time: {insert, remove_erased, contains, len, iter_entities}.
// insert is intentionally absent here — inserting requires a typed value,
// so it only exists on the generic path (see Insert[T]); the erased half
// only needs the operations despawn/queries actually perform without T.
type erasedStorage interface {
	removeErased(e Entity) bool
	contains(e Entity) bool
	len() int
	entities() []Entity
}

// typedStorage adapts a *SparseSet[T] to erasedStorage. It is the only
// concrete implementation of erasedStorage; a failed type assertion back to
// typedStorage[T] signals a corrupted registry (spec.md §4.D) and can only
// happen if a ComponentRegistry's internal map was populated by a path
// other than storageFor, which this package never does.
type typedStorage[T Component] struct {
	set *SparseSet[T]
}

func (s *typedStorage[T]) removeErased(e Entity) bool { _, ok := s.set.Remove(e); return ok }
func (s *typedStorage[T]) contains(e Entity) bool     { return s.set.Contains(e) }
func (s *typedStorage[T]) len() int                   { return s.set.Len() }
func (s *typedStorage[T]) entities() []Entity         { return s.set.Entities() }

// ComponentRegistry maps ComponentID to a type-erased sparse set (spec.md
// §3.4, §4.D). A component type that has ever been stored has exactly one
// sparse set here, created lazily on first access.
type ComponentRegistry struct {
	storages map[ComponentID]erasedStorage
}

// NewComponentRegistry creates an empty ComponentRegistry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{storages: make(map[ComponentID]erasedStorage)}
}

// storageFor returns T's backing SparseSet, creating it on first access.
func storageFor[T Component](r *ComponentRegistry) (*SparseSet[T], error) {
	id := ComponentIDOf[T]()
	if es, ok := r.storages[id]; ok {
		ts, ok := es.(*typedStorage[T])
		if !ok {
			return nil, &engerr.InternalError{Message: "component registry corrupted: " + id.String() + " downcast mismatch"}
		}
		return ts.set, nil
	}
	ts := &typedStorage[T]{set: NewSparseSet[T]()}
	r.storages[id] = ts
	return ts.set, nil
}

// Insert stores component v for entity e, replacing any existing value of
// type T. Inserting against the placeholder entity is ignored, per
// SparseSet's contract.
func Insert[T Component](r *ComponentRegistry, e Entity, v T) (T, bool, error) {
	set, err := storageFor[T](r)
	if err != nil {
		var zero T
		return zero, false, err
	}
	old, had := set.Insert(e, v)
	return old, had, nil
}

// Remove deletes e's component of type T, returning it if present.
func Remove[T Component](r *ComponentRegistry, e Entity) (T, bool, error) {
	set, err := storageFor[T](r)
	if err != nil {
		var zero T
		return zero, false, err
	}
	v, ok := set.Remove(e)
	return v, ok, nil
}

// Get returns a pointer to e's component of type T, if present. The pointer
// aliases the dense storage array and is invalidated by any subsequent
// Insert/Remove of type T (swap-with-last may relocate it).
func Get[T Component](r *ComponentRegistry, e Entity) (*T, error) {
	set, err := storageFor[T](r)
	if err != nil {
		return nil, err
	}
	v, _ := set.Get(e)
	return v, nil
}

// Contains reports whether e has a component of type T.
func Contains[T Component](r *ComponentRegistry, e Entity) (bool, error) {
	set, err := storageFor[T](r)
	if err != nil {
		return false, err
	}
	return set.Contains(e), nil
}

// RemoveEntity walks every registered component storage and removes e's
// value from each (spec.md §4.C, §4.D): this is where type erasure makes
// despawn possible without enumerating every component type at compile
// time.
func (r *ComponentRegistry) RemoveEntity(e Entity) {
	for _, es := range r.storages {
		es.removeErased(e)
	}
}

// entitiesWith returns the dense entity slice for T's storage (used as a
// query driver). Returns nil if T has never been stored.
func entitiesWith[T Component](r *ComponentRegistry) []Entity {
	id := ComponentIDOf[T]()
	es, ok := r.storages[id]
	if !ok {
		return nil
	}
	return es.entities()
}

// EntitiesWith is the exported form of entitiesWith, for callers outside
// this package that need the raw membership of a component type without a
// second component to join against (e.g. transform.Hierarchy.Rebuild).
func EntitiesWith[T Component](r *ComponentRegistry) []Entity {
	return entitiesWith[T](r)
}

// containsErased reports whether the storage for ComponentID id contains e,
// used internally by the query path to intersect candidate entities against
// storages it does not otherwise need typed access to.
func (r *ComponentRegistry) containsErased(id ComponentID, e Entity) bool {
	es, ok := r.storages[id]
	if !ok {
		return false
	}
	return es.contains(e)
}
