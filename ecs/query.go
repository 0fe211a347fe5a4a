package ecs

// Go has no variadic type parameters, so the variadic query<A,B,...> from
// spec.md §4.D is expressed as one generic function per arity. Each walks
// the smallest participating storage as the driver and looks up the others,
// yielding a tuple only when every component is present — exactly the
// algorithm spec.md describes, just monomorphized per arity instead of
// generic over a type list.

// Pair2 is one query result row for Query2.
type Pair2[A, B Component] struct {
	Entity Entity
	A      *A
	B      *B
}

// Query2 iterates entities having both A and B, driven by whichever
// storage currently has fewer entities (spec.md §4.D, §5 "Query iteration
// order is the smallest storage's current dense order").
func Query2[A, B Component](r *ComponentRegistry) []Pair2[A, B] {
	idA, idB := ComponentIDOf[A](), ComponentIDOf[B]()
	esA, okA := r.storages[idA]
	esB, okB := r.storages[idB]
	if !okA || !okB {
		return nil
	}

	driveB := esB.len() < esA.len()
	out := make([]Pair2[A, B], 0, min(esA.len(), esB.len()))
	if !driveB {
		for _, e := range esA.entities() {
			if !esB.contains(e) {
				continue
			}
			a, _ := Get[A](r, e)
			b, _ := Get[B](r, e)
			out = append(out, Pair2[A, B]{Entity: e, A: a, B: b})
		}
		return out
	}
	for _, e := range esB.entities() {
		if !esA.contains(e) {
			continue
		}
		a, _ := Get[A](r, e)
		b, _ := Get[B](r, e)
		out = append(out, Pair2[A, B]{Entity: e, A: a, B: b})
	}
	return out
}

// Pair3 is one query result row for Query3.
type Pair3[A, B, C Component] struct {
	Entity Entity
	A      *A
	B      *B
	C      *C
}

// Query3 iterates entities having A, B and C, driven by the smallest of the
// three storages.
func Query3[A, B, C Component](r *ComponentRegistry) []Pair3[A, B, C] {
	idA, idB, idC := ComponentIDOf[A](), ComponentIDOf[B](), ComponentIDOf[C]()
	esA, okA := r.storages[idA]
	esB, okB := r.storages[idB]
	esC, okC := r.storages[idC]
	if !okA || !okB || !okC {
		return nil
	}

	type driver struct {
		id ComponentID
		es erasedStorage
	}
	drivers := []driver{{idA, esA}, {idB, esB}, {idC, esC}}
	best := drivers[0]
	for _, d := range drivers[1:] {
		if d.es.len() < best.es.len() {
			best = d
		}
	}

	result := make([]Pair3[A, B, C], 0, best.es.len())
	for _, e := range best.es.entities() {
		if !r.containsErased(idA, e) || !r.containsErased(idB, e) || !r.containsErased(idC, e) {
			continue
		}
		a, _ := Get[A](r, e)
		b, _ := Get[B](r, e)
		c, _ := Get[C](r, e)
		result = append(result, Pair3[A, B, C]{Entity: e, A: a, B: b, C: c})
	}
	return result
}
