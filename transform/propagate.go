package transform

import (
	"github.com/goud-engine/core/ecs"
	"github.com/goud-engine/core/internal/engerr"
)

// visitState tracks a DFS node's status while walking the Parent relation,
// the classic white/gray/black scheme for cycle detection.
type visitState int

const (
	unvisited visitState = iota
	visiting
	done
)

// Propagate3D recomputes GlobalTransform for every entity that has a
// Transform component, walking the hierarchy parent-before-child (spec.md
// §4.H). Root entities (no Parent, or a Parent that is no longer alive) get
// global = local; an entity whose live parent has no Transform is skipped
// and gets no GlobalTransform update. Cycles reachable from an entity through Parent are
// detected, excluded from propagation, and reported as CyclicHierarchyError
// — one per distinct cycle entry point found during this pass.
func Propagate3D(w *ecs.World, h *Hierarchy) []error {
	h.Rebuild(w)

	entities := ecs.EntitiesWith[Transform](w.Components())
	states := make(map[ecs.Entity]visitState, len(entities))
	var errs []error

	var visit func(e ecs.Entity) (GlobalTransform, bool)
	visit = func(e ecs.Entity) (GlobalTransform, bool) {
		switch states[e] {
		case done:
			g, _ := ecs.Get[GlobalTransform](w.Components(), e)
			if g == nil {
				return GlobalIdentity(), false
			}
			return *g, true
		case visiting:
			errs = append(errs, &engerr.CyclicHierarchyError{EntityIndex: e.Index(), EntityGeneration: e.Generation()})
			return GlobalIdentity(), false
		}
		states[e] = visiting

		local, err := ecs.Get[Transform](w.Components(), e)
		if err != nil || local == nil {
			states[e] = done
			return GlobalIdentity(), false
		}

		var global GlobalTransform
		parent, err := ecs.Get[Parent](w.Components(), e)
		if err == nil && parent != nil && w.IsAlive(parent.Entity) {
			parentGlobal, ok := visit(parent.Entity)
			if !ok {
				// Parent is mid-cycle or failed; this subtree is excluded too.
				states[e] = done
				return GlobalIdentity(), false
			}
			global = parentGlobal.TransformBy(*local)
		} else {
			global = GlobalTransformFromMatrix(local.Matrix())
		}

		ecs.Insert(w.Components(), e, global)
		states[e] = done
		return global, true
	}

	for _, e := range entities {
		if states[e] == unvisited {
			visit(e)
		}
	}
	return errs
}

// Propagate2D is the 2D analogue of Propagate3D, operating on Transform2D /
// GlobalTransform2D.
func Propagate2D(w *ecs.World, h *Hierarchy) []error {
	h.Rebuild(w)

	entities := ecs.EntitiesWith[Transform2D](w.Components())
	states := make(map[ecs.Entity]visitState, len(entities))
	var errs []error

	var visit func(e ecs.Entity) (GlobalTransform2D, bool)
	visit = func(e ecs.Entity) (GlobalTransform2D, bool) {
		switch states[e] {
		case done:
			g, _ := ecs.Get[GlobalTransform2D](w.Components(), e)
			if g == nil {
				return GlobalIdentity2D(), false
			}
			return *g, true
		case visiting:
			errs = append(errs, &engerr.CyclicHierarchyError{EntityIndex: e.Index(), EntityGeneration: e.Generation()})
			return GlobalIdentity2D(), false
		}
		states[e] = visiting

		local, err := ecs.Get[Transform2D](w.Components(), e)
		if err != nil || local == nil {
			states[e] = done
			return GlobalIdentity2D(), false
		}

		var global GlobalTransform2D
		parent, err := ecs.Get[Parent](w.Components(), e)
		if err == nil && parent != nil && w.IsAlive(parent.Entity) {
			parentGlobal, ok := visit(parent.Entity)
			if !ok {
				states[e] = done
				return GlobalIdentity2D(), false
			}
			global = parentGlobal.TransformBy(*local)
		} else {
			global = GlobalTransform2DFromMatrix(local.Matrix())
		}

		ecs.Insert(w.Components(), e, global)
		states[e] = done
		return global, true
	}

	for _, e := range entities {
		if states[e] == unvisited {
			visit(e)
		}
	}
	return errs
}
