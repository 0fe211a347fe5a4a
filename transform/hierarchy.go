package transform

import "github.com/goud-engine/core/ecs"

// Parent is the component recording an entity's parent in the transform
// hierarchy (spec.md §3.8, §4.H). An entity with no Parent component is a
// hierarchy root.
type Parent struct {
	ecs.Marker
	Entity ecs.Entity
}

// Hierarchy is the resource caching the children adjacency derived from
// every entity's Parent component, rebuilt once per propagation pass.
// Grounded on the teacher's engine/scene/scene.go, which keeps a similar
// parent-indexed child list alongside its GameObject tree.
type Hierarchy struct {
	children map[ecs.Entity][]ecs.Entity
}

// NewHierarchy returns an empty Hierarchy.
func NewHierarchy() *Hierarchy {
	return &Hierarchy{children: make(map[ecs.Entity][]ecs.Entity)}
}

// Children returns the direct children of e, or nil if e has none.
func (h *Hierarchy) Children(e ecs.Entity) []ecs.Entity { return h.children[e] }

// Rebuild recomputes the children adjacency from every Parent component
// currently registered in the world's component registry.
func (h *Hierarchy) Rebuild(w *ecs.World) {
	for k := range h.children {
		delete(h.children, k)
	}
	for _, e := range ecs.EntitiesWith[Parent](w.Components()) {
		p, err := ecs.Get[Parent](w.Components(), e)
		if err != nil || p == nil {
			continue
		}
		h.children[p.Entity] = append(h.children[p.Entity], e)
	}
}
