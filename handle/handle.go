// Package handle implements generational index allocation (spec.md §3.1,
// §4.A). A Handle is a 64-bit logical value {index, generation} parameterized
// by a compile-time tag so handles of different kinds (buffer, texture,
// shader, entity, context, ...) cannot be interchanged by the type system.
//
// Grounded on the teacher's unexported-struct-plus-exported-API shape
// (engine/camera/camera.go), generalized here to a generic allocator since
// every leaf subsystem (ecs, render, ffi) needs its own tag.
package handle

import "github.com/goud-engine/core/internal/engerr"

// invalidWord is the all-bits-set sentinel used for both index and
// generation on an invalid handle (spec.md §3.1).
const invalidWord = ^uint32(0)

// Handle is a {index, generation} pair tagged at compile time by Tag so a
// Handle[BufferTag] and a Handle[TextureTag] are distinct types even though
// their representations are identical. Equality is component-wise; ordering
// is unspecified.
type Handle[Tag any] struct {
	index      uint32
	generation uint32
}

// Invalid returns the sentinel handle (all bits set) for Tag.
//
// Returns:
//   - Handle[Tag]: the invalid sentinel
func Invalid[Tag any]() Handle[Tag] {
	return Handle[Tag]{index: invalidWord, generation: invalidWord}
}

// IsSentinel reports whether h is the reserved "invalid" sentinel value.
// A sentinel handle is never alive in any allocator.
func (h Handle[Tag]) IsSentinel() bool {
	return h.index == invalidWord && h.generation == invalidWord
}

// Index returns the slot index this handle refers to.
func (h Handle[Tag]) Index() uint32 { return h.index }

// Generation returns the generation this handle was allocated at.
func (h Handle[Tag]) Generation() uint32 { return h.generation }

// slotState distinguishes an occupied allocator slot from a free one.
type slotState uint8

const (
	slotFree slotState = iota
	slotOccupied
)

// slot is one entry in an Allocator's table. For an occupied slot,
// generation is the generation currently live in that slot. For a free
// slot, generation is the generation the *next* allocation into that slot
// will receive.
type slot struct {
	state      slotState
	generation uint32
}

// Allocator is a generational index allocator parameterized by Tag. It is
// not internally synchronized — spec.md §5 places the engine core in a
// single-threaded cooperative model; callers needing cross-thread handle
// tables (the FFI context registry) wrap an Allocator in their own
// sync.RWMutex rather than have this type pay for locking nobody else needs.
type Allocator[Tag any] struct {
	slots    []slot
	freeList []uint32
}

// NewAllocator creates an empty Allocator.
//
// Returns:
//   - *Allocator[Tag]: the newly created allocator
func NewAllocator[Tag any]() *Allocator[Tag] {
	return &Allocator[Tag]{}
}

// Allocate reuses a freed slot if one exists (receiving its stored next
// generation), otherwise appends a new slot at generation 1. Fails only if
// the next index would overflow the 32-bit index width.
//
// Returns:
//   - Handle[Tag]: the newly allocated handle
//   - error: *engerr.InternalError if the index space is exhausted
func (a *Allocator[Tag]) Allocate() (Handle[Tag], error) {
	if n := len(a.freeList); n > 0 {
		idx := a.freeList[n-1]
		a.freeList = a.freeList[:n-1]
		gen := a.slots[idx].generation
		a.slots[idx] = slot{state: slotOccupied, generation: gen}
		return Handle[Tag]{index: idx, generation: gen}, nil
	}

	if uint64(len(a.slots)) >= uint64(invalidWord) {
		return Handle[Tag]{}, &engerr.InternalError{Message: "handle allocator index space exhausted"}
	}

	idx := uint32(len(a.slots))
	a.slots = append(a.slots, slot{state: slotOccupied, generation: 1})
	return Handle[Tag]{index: idx, generation: 1}, nil
}

// Deallocate frees h's slot if h is currently alive, bumping the stored
// generation for the next occupant (wrapping to 1 on overflow, since 0 is
// reserved for "never allocated").
//
// Returns:
//   - bool: true if h was alive and is now freed, false otherwise
func (a *Allocator[Tag]) Deallocate(h Handle[Tag]) bool {
	if !a.IsAlive(h) {
		return false
	}

	next := a.slots[h.index].generation + 1
	if next == 0 {
		next = 1
	}
	a.slots[h.index] = slot{state: slotFree, generation: next}
	a.freeList = append(a.freeList, h.index)
	return true
}

// IsAlive reports whether h's slot is occupied and holds h's generation.
func (a *Allocator[Tag]) IsAlive(h Handle[Tag]) bool {
	if h.IsSentinel() || int(h.index) >= len(a.slots) {
		return false
	}
	s := a.slots[h.index]
	return s.state == slotOccupied && s.generation == h.generation
}

// Len returns the number of slots ever allocated (occupied + freed), i.e.
// the current table size, not the live count.
func (a *Allocator[Tag]) Len() int { return len(a.slots) }
