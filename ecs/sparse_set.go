package ecs

// SparseSet stores a value of type T per Entity with O(1) insert/remove/get
// and cache-friendly dense iteration (spec.md §3.3, §4.B). sparse maps an
// entity's index to a position in the parallel dense/values arrays; dense
// and values are always the same length and move in lockstep.
type SparseSet[T any] struct {
	sparse []int // entity.Index() -> dense index, or -1 if absent
	dense  []Entity
	values []T
}

// sparseAbsent marks "no dense index" in the sparse array. Using -1 instead
// of a pointer/option keeps the slice a flat, branch-light []int as spec.md
// §9 calls for ("trades untouched-slot memory for branchless O(1) lookup").
const sparseAbsent = -1

// NewSparseSet creates an empty SparseSet.
func NewSparseSet[T any]() *SparseSet[T] {
	return &SparseSet[T]{}
}

func (s *SparseSet[T]) growSparse(toIndex uint32) {
	if int(toIndex) < len(s.sparse) {
		return
	}
	old := len(s.sparse)
	grown := make([]int, toIndex+1)
	copy(grown, s.sparse)
	for i := old; i < len(grown); i++ {
		grown[i] = sparseAbsent
	}
	s.sparse = grown
}

// Insert stores v for e, replacing and returning any prior value. Inserting
// against the placeholder entity is a programmer error; it is ignored and
// returns the zero value, consistent across every SparseSet (spec.md §3.3,
// §4.B).
func (s *SparseSet[T]) Insert(e Entity, v T) (old T, hadOld bool) {
	if e.IsSentinel() {
		return old, false
	}
	idx := e.Index()
	if int(idx) < len(s.sparse) && s.sparse[idx] != sparseAbsent {
		di := s.sparse[idx]
		old = s.values[di]
		s.values[di] = v
		return old, true
	}

	s.growSparse(idx)
	s.sparse[idx] = len(s.dense)
	s.dense = append(s.dense, e)
	s.values = append(s.values, v)
	return old, false
}

// Remove deletes e's value via swap-with-last (spec.md §3.3) and returns it.
func (s *SparseSet[T]) Remove(e Entity) (T, bool) {
	var zero T
	idx := e.Index()
	if int(idx) >= len(s.sparse) || s.sparse[idx] == sparseAbsent {
		return zero, false
	}

	di := s.sparse[idx]
	removed := s.values[di]
	lastDi := len(s.dense) - 1

	if di != lastDi {
		lastEntity := s.dense[lastDi]
		s.dense[di] = lastEntity
		s.values[di] = s.values[lastDi]
		s.sparse[lastEntity.Index()] = di
	}

	s.dense = s.dense[:lastDi]
	s.values = s.values[:lastDi]
	s.sparse[idx] = sparseAbsent
	return removed, true
}

// Get returns e's value, if present.
func (s *SparseSet[T]) Get(e Entity) (*T, bool) {
	idx := e.Index()
	if int(idx) >= len(s.sparse) || s.sparse[idx] == sparseAbsent {
		return nil, false
	}
	return &s.values[s.sparse[idx]], true
}

// Contains reports whether e has a value in this set.
func (s *SparseSet[T]) Contains(e Entity) bool {
	idx := e.Index()
	return int(idx) < len(s.sparse) && s.sparse[idx] != sparseAbsent
}

// Len returns the number of stored entities.
func (s *SparseSet[T]) Len() int { return len(s.dense) }

// DenseIndex returns e's position in the dense/values arrays, for composite
// storage operations layered on top of SparseSet (spec.md §4.B).
func (s *SparseSet[T]) DenseIndex(e Entity) (int, bool) {
	idx := e.Index()
	if int(idx) >= len(s.sparse) || s.sparse[idx] == sparseAbsent {
		return 0, false
	}
	return s.sparse[idx], true
}

// Entities returns the dense entity array. Iteration order is
// insertion-with-swaps order; it is NOT stable across removals (spec.md
// §3.3) and callers must not depend on it.
func (s *SparseSet[T]) Entities() []Entity { return s.dense }

// Values returns the dense value array, index-aligned with Entities().
func (s *SparseSet[T]) Values() []T { return s.values }

// ValuesMut returns a mutable view of the dense value array.
func (s *SparseSet[T]) ValuesMut() []T { return s.values }

// Each calls fn for every (entity, value) pair in dense order, stopping
// early if fn returns false.
func (s *SparseSet[T]) Each(fn func(Entity, *T) bool) {
	for i := range s.dense {
		if !fn(s.dense[i], &s.values[i]) {
			return
		}
	}
}

// Clear empties the set without releasing the backing dense/values
// capacity.
func (s *SparseSet[T]) Clear() {
	for i := range s.sparse {
		s.sparse[i] = sparseAbsent
	}
	s.dense = s.dense[:0]
	s.values = s.values[:0]
}

// Reserve grows dense/values capacity to hold at least n entries.
func (s *SparseSet[T]) Reserve(n int) {
	if cap(s.dense) >= n {
		return
	}
	grownDense := make([]Entity, len(s.dense), n)
	copy(grownDense, s.dense)
	s.dense = grownDense

	grownValues := make([]T, len(s.values), n)
	copy(grownValues, s.values)
	s.values = grownValues
}
